// Package gost28147 implements the GOST 28147-89 block cipher with the S-box
// of the GOST R 34.11-94 test parameter set. Key and block words are little
// endian.
package gost28147

import (
	"crypto/cipher"
	"encoding/binary"
	"math/bits"
	"strconv"
)

const (
	BlockSize = 8
	KeySize   = 32
)

type KeySizeError int

func (k KeySizeError) Error() string {
	return "gost28147: invalid key size " + strconv.Itoa(int(k))
}

var sbox = [8][16]byte{
	{4, 10, 9, 2, 13, 8, 0, 14, 6, 11, 1, 12, 7, 15, 5, 3},
	{14, 11, 4, 12, 6, 13, 15, 10, 2, 3, 8, 1, 0, 7, 5, 9},
	{5, 8, 1, 13, 10, 3, 4, 2, 14, 15, 12, 7, 6, 0, 9, 11},
	{7, 13, 10, 1, 0, 8, 9, 15, 14, 4, 6, 12, 11, 2, 5, 3},
	{6, 12, 7, 1, 5, 15, 13, 8, 4, 10, 9, 14, 0, 3, 11, 2},
	{4, 11, 10, 0, 7, 2, 1, 13, 3, 6, 8, 5, 9, 12, 15, 14},
	{13, 11, 4, 1, 3, 15, 5, 9, 0, 10, 14, 7, 6, 8, 2, 12},
	{1, 15, 13, 0, 5, 7, 10, 4, 9, 2, 3, 14, 6, 11, 8, 12},
}

// substitution of one input byte at position i, shifted into place and
// rotated left by 11
var sTable [4][256]uint32

func init() {
	for i := 0; i < 4; i++ {
		for j := 0; j < 256; j++ {
			v := uint32(sbox[2*i][j&15]) | uint32(sbox[2*i+1][j>>4])<<4
			sTable[i][j] = bits.RotateLeft32(v<<(8*uint(i)), 11)
		}
	}
}

func f(x uint32) uint32 {
	return sTable[0][x&0xff] ^ sTable[1][x>>8&0xff] ^ sTable[2][x>>16&0xff] ^ sTable[3][x>>24]
}

type gostCipher struct {
	k [8]uint32
}

// NewCipher returns a GOST 28147-89 block for a 32-byte key.
func NewCipher(key []byte) (cipher.Block, error) {
	if len(key) != KeySize {
		return nil, KeySizeError(len(key))
	}
	c := new(gostCipher)
	for i := range c.k {
		c.k[i] = binary.LittleEndian.Uint32(key[4*i:])
	}
	return c, nil
}

func (c *gostCipher) BlockSize() int { return BlockSize }

func (c *gostCipher) Encrypt(dst, src []byte) {
	checkBlock(dst, src)
	n1 := binary.LittleEndian.Uint32(src[0:])
	n2 := binary.LittleEndian.Uint32(src[4:])
	for r := 0; r < 3; r++ {
		for i := 0; i < 8; i += 2 {
			n2 ^= f(n1 + c.k[i])
			n1 ^= f(n2 + c.k[i+1])
		}
	}
	for i := 7; i > 0; i -= 2 {
		n2 ^= f(n1 + c.k[i])
		n1 ^= f(n2 + c.k[i-1])
	}
	binary.LittleEndian.PutUint32(dst[0:], n2)
	binary.LittleEndian.PutUint32(dst[4:], n1)
}

func (c *gostCipher) Decrypt(dst, src []byte) {
	checkBlock(dst, src)
	n1 := binary.LittleEndian.Uint32(src[0:])
	n2 := binary.LittleEndian.Uint32(src[4:])
	for i := 0; i < 8; i += 2 {
		n2 ^= f(n1 + c.k[i])
		n1 ^= f(n2 + c.k[i+1])
	}
	for r := 0; r < 3; r++ {
		for i := 7; i > 0; i -= 2 {
			n2 ^= f(n1 + c.k[i])
			n1 ^= f(n2 + c.k[i-1])
		}
	}
	binary.LittleEndian.PutUint32(dst[0:], n2)
	binary.LittleEndian.PutUint32(dst[4:], n1)
}

func checkBlock(dst, src []byte) {
	if len(src) < BlockSize {
		panic("gost28147: input not full block")
	}
	if len(dst) < BlockSize {
		panic("gost28147: output not full block")
	}
}
