// Package cipher provides the payload ciphers of the NSCA protocol.
package cipher

import (
	"crypto/cipher"
	"fmt"
)

// Descriptor describes one entry of the legacy algorithm enumeration.
type Descriptor struct {
	Algorithm Algorithm
	Name      string // display name, stable for logging

	// KeySize is the key length peers derive from the password. Some
	// variable-key ciphers use more than the primitive's default by convention.
	KeySize int

	// DefaultKeySize is the primitive's own default key length.
	DefaultKeySize int

	// BlockSize is the number of IV bytes the algorithm consumes.
	BlockSize int

	reserved  bool
	newCipher func(d *Descriptor, keySize int) Cipher
	newBlock  func(key []byte) (cipher.Block, error)
}

// Supported reports whether a working implementation is built in.
func (d *Descriptor) Supported() bool { return d.newCipher != nil }

// List of every enumerated algorithm, indexed by id. Reserved entries keep
// their identifiers for wire compatibility and never get an implementation.
var descriptors = [LastAlgorithm + 1]Descriptor{
	None:        {Name: noneName, BlockSize: 1, newCipher: newNone},
	XOR:         {Name: xorName, BlockSize: 1, newCipher: newXOR},
	DES:         {Name: "DES", KeySize: 8, DefaultKeySize: 8, BlockSize: 8},
	TripleDES:   {Name: "DES-EDE3", KeySize: 24, DefaultKeySize: 24, BlockSize: 8},
	CAST128:     {Name: "CAST-128", KeySize: 16, DefaultKeySize: 16, BlockSize: 8},
	CAST256:     {Name: "CAST-256", KeySize: 16, DefaultKeySize: 16, BlockSize: 16, reserved: true},
	XTEA:        {Name: "XTEA", KeySize: 16, DefaultKeySize: 16, BlockSize: 8},
	ThreeWay:    {Name: "3-Way", KeySize: 12, DefaultKeySize: 12, BlockSize: 12, reserved: true},
	Blowfish:    {Name: "Blowfish", KeySize: 56, DefaultKeySize: 16, BlockSize: 8},
	Twofish:     {Name: "Twofish", KeySize: 32, DefaultKeySize: 16, BlockSize: 16},
	LOKI97:      {Name: "LOKI97", KeySize: 16, DefaultKeySize: 16, BlockSize: 16, reserved: true},
	RC2:         {Name: "RC2", KeySize: 128, DefaultKeySize: 16, BlockSize: 8},
	ARCFOUR:     {Name: "ARC4", KeySize: 16, DefaultKeySize: 16, BlockSize: 1, reserved: true},
	RC6:         {Name: "RC6", KeySize: 16, DefaultKeySize: 16, BlockSize: 16, reserved: true},
	Rijndael128: {Name: "AES", KeySize: 32, DefaultKeySize: 16, BlockSize: 16},
	Rijndael192: {Name: "Rijndael-192", KeySize: 32, DefaultKeySize: 24, BlockSize: 24, reserved: true},
	Rijndael256: {Name: "Rijndael-256", KeySize: 32, DefaultKeySize: 32, BlockSize: 32, reserved: true},
	MARS:        {Name: "MARS", KeySize: 16, DefaultKeySize: 16, BlockSize: 16, reserved: true},
	PANAMA:      {Name: "Panama", KeySize: 32, DefaultKeySize: 32, BlockSize: 1, reserved: true},
	WAKE:        {Name: "WAKE", KeySize: 32, DefaultKeySize: 32, BlockSize: 1, reserved: true},
	Serpent:     {Name: "Serpent", KeySize: 32, DefaultKeySize: 16, BlockSize: 16},
	IDEA:        {Name: "IDEA", KeySize: 16, DefaultKeySize: 16, BlockSize: 8, reserved: true},
	ENIGMA:      {Name: "Enigma", KeySize: 13, DefaultKeySize: 13, BlockSize: 1, reserved: true},
	GOST:        {Name: "GOST", KeySize: 32, DefaultKeySize: 32, BlockSize: 8},
	SAFER64:     {Name: "SAFER-SK64", KeySize: 8, DefaultKeySize: 8, BlockSize: 8, reserved: true},
	SAFER128:    {Name: "SAFER-SK128", KeySize: 16, DefaultKeySize: 16, BlockSize: 8, reserved: true},
	SAFERPlus:   {Name: "SAFER+", KeySize: 16, DefaultKeySize: 16, BlockSize: 16, reserved: true},
}

func init() {
	for i := range descriptors {
		descriptors[i].Algorithm = Algorithm(i)
	}
}

// register binds a block primitive to a in CFB-8 mode. It must be called from
// init functions only.
func register(a Algorithm, newBlock func(key []byte) (cipher.Block, error)) {
	if !a.Known() {
		panic(fmt.Sprintf("cipher: register of unknown algorithm %d", int(a)))
	}
	d := &descriptors[a]
	if d.reserved {
		panic(fmt.Sprintf("cipher: %s is a reserved identifier", a))
	}
	if d.BlockSize > TransmittedIVSize {
		panic(fmt.Sprintf("cipher: %s block size %d exceeds transmitted IV size", a, d.BlockSize))
	}
	d.newBlock = newBlock
	d.newCipher = newStreamCipher
}

// Lookup returns the descriptor of a.
func Lookup(a Algorithm) (Descriptor, bool) {
	if !a.Known() {
		return Descriptor{}, false
	}
	return descriptors[a], true
}

// List returns the descriptors of every enumerated algorithm in id order.
func List() []Descriptor {
	l := make([]Descriptor, len(descriptors))
	copy(l, descriptors[:])
	return l
}

// Supports reports whether a has a working implementation in this build.
func Supports(a Algorithm) bool {
	return a.Known() && descriptors[a].Supported()
}

// New returns an uninitialized Cipher for a using its conventional key size.
func New(a Algorithm) (Cipher, error) {
	return NewWithKeySize(a, 0)
}

// NewWithKeySize is like New but derives keys of keySize bytes. A keySize of
// zero selects the conventional size.
func NewWithKeySize(a Algorithm, keySize int) (Cipher, error) {
	if !Supports(a) {
		return nil, &NotFoundError{Algorithm: a}
	}
	if keySize < 0 {
		return nil, fmt.Errorf("%w: negative key size %d", ErrConfig, keySize)
	}
	d := &descriptors[a]
	if keySize == 0 {
		keySize = d.KeySize
	}
	return d.newCipher(d, keySize), nil
}
