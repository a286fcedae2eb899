//go:build !nocrypto

package cipher

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/des"

	"github.com/aead/serpent"
	"github.com/dgryski/go-rc2"
	"golang.org/x/crypto/blowfish"
	"golang.org/x/crypto/cast5"
	"golang.org/x/crypto/twofish"
	"golang.org/x/crypto/xtea"

	"github.com/jinmeng260/nscp/internal/gost28147"
)

// rc2EffectiveBits is the effective key length legacy peers use for RC2.
const rc2EffectiveBits = 1024

func init() {
	register(DES, des.NewCipher)
	register(TripleDES, des.NewTripleDESCipher)
	register(CAST128, newCAST128)
	register(XTEA, newXTEA)
	register(Blowfish, newBlowfish)
	register(Twofish, newTwofish)
	register(RC2, newRC2)
	register(Rijndael128, aes.NewCipher)
	register(Serpent, serpent.NewCipher)
	register(GOST, newGOST)
}

func newCAST128(key []byte) (cipher.Block, error)  { return cast5.NewCipher(key) }
func newXTEA(key []byte) (cipher.Block, error)     { return xtea.NewCipher(key) }
func newBlowfish(key []byte) (cipher.Block, error) { return blowfish.NewCipher(key) }
func newTwofish(key []byte) (cipher.Block, error)  { return twofish.NewCipher(key) }
func newRC2(key []byte) (cipher.Block, error)      { return rc2.New(key, rc2EffectiveBits) }

// GOST runs with the S-box of the GOST R 34.11-94 test parameter set, the one
// legacy peers use.
func newGOST(key []byte) (cipher.Block, error) { return gost28147.NewCipher(key) }
