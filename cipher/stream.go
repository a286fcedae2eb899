package cipher

import (
	"crypto/cipher"

	"github.com/jinmeng260/nscp/cfbstream"
)

// streamCipher runs a block primitive in CFB-8 mode.
type streamCipher struct {
	desc    *Descriptor
	keySize int
	stream  cipher.Stream
}

func newStreamCipher(d *Descriptor, keySize int) Cipher {
	return &streamCipher{desc: d, keySize: keySize}
}

// Init builds the key schedule from the derived key and seeds the feedback
// register with iv[:BlockSize]. The derived key is zeroed before returning.
func (c *streamCipher) Init(password string, iv []byte) (err error) {
	c.Close()
	if err := ValidateBlockFits(c.desc.BlockSize, len(iv)); err != nil {
		return err
	}

	key := DeriveKey(password, c.keySize)
	defer wipe(key)
	defer func() {
		if r := recover(); r != nil {
			err = backendPanic("setup", r)
		}
	}()

	blk, err := c.desc.newBlock(key)
	if err != nil {
		return &BackendError{Op: "setup", Err: err}
	}
	s, err := cfbstream.NewEncrypter(blk, iv)
	if err != nil {
		return &BackendError{Op: "setup", Err: err}
	}
	c.stream = s
	return nil
}

// Encrypt runs buf through the feedback register one byte at a time.
func (c *streamCipher) Encrypt(buf []byte) (err error) {
	if c.stream == nil {
		return ErrNotInitialized
	}
	defer func() {
		if r := recover(); r != nil {
			err = backendPanic("encrypt", r)
		}
	}()
	c.stream.XORKeyStream(buf, buf)
	return nil
}

func (c *streamCipher) Decrypt([]byte) error { return ErrUnsupported }
func (c *streamCipher) Name() string         { return c.desc.Name }

// Close wipes the feedback register. The key schedule lives inside the
// primitive and is released with it.
func (c *streamCipher) Close() {
	if c.stream != nil {
		cfbstream.Wipe(c.stream)
		c.stream = nil
	}
}
