package cfbstream

import (
	"crypto/cipher"
	"errors"
)

// ErrShortIV means the IV is shorter than the block size of the cipher.
var ErrShortIV = errors.New("cfbstream: IV shorter than block size")

type stream struct {
	b       cipher.Block
	reg     []byte // feedback register, BlockSize bytes
	out     []byte // scratch for the encrypted register
	decrypt bool
}

// NewEncrypter returns a CFB-8 stream which encrypts with b. The register is
// seeded from iv[:b.BlockSize()].
func NewEncrypter(b cipher.Block, iv []byte) (cipher.Stream, error) {
	s, err := newStream(b, iv, false)
	if err != nil {
		return nil, err
	}
	return s, nil
}

// NewDecrypter returns a CFB-8 stream which decrypts with b.
func NewDecrypter(b cipher.Block, iv []byte) (cipher.Stream, error) {
	s, err := newStream(b, iv, true)
	if err != nil {
		return nil, err
	}
	return s, nil
}

func newStream(b cipher.Block, iv []byte, decrypt bool) (*stream, error) {
	bs := b.BlockSize()
	if len(iv) < bs {
		return nil, ErrShortIV
	}
	s := &stream{
		b:       b,
		reg:     make([]byte, bs),
		out:     make([]byte, bs),
		decrypt: decrypt,
	}
	copy(s.reg, iv[:bs])
	return s, nil
}

// XORKeyStream processes src one byte at a time. dst and src may overlap
// entirely.
func (s *stream) XORKeyStream(dst, src []byte) {
	if len(dst) < len(src) {
		panic("cfbstream: output smaller than input")
	}
	last := len(s.reg) - 1
	for i, c := range src {
		s.b.Encrypt(s.out, s.reg)
		o := c ^ s.out[0]
		copy(s.reg, s.reg[1:])
		if s.decrypt {
			s.reg[last] = c
		} else {
			s.reg[last] = o
		}
		dst[i] = o
	}
}

// Wipe zeroes the register of a stream returned by this package. Other
// streams are left untouched.
func Wipe(cs cipher.Stream) {
	s, ok := cs.(*stream)
	if !ok {
		return
	}
	for i := range s.reg {
		s.reg[i] = 0
	}
	for i := range s.out {
		s.out[i] = 0
	}
}
