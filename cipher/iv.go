package cipher

import (
	"crypto/rand"
	"io"

	"github.com/pkg/errors"
)

// TransmittedIVSize is the size of the IV sent by the server ahead of the
// first message. It must be at least the largest block size of any supported
// algorithm; only the first BlockSize bytes are used by the cipher.
const TransmittedIVSize = 128

// GenerateTransmitIV returns size random bytes read from r, or from
// crypto/rand when r is nil.
//
// Legacy servers fill the IV from a time-seeded libc generator, which makes
// it predictable. Peers cannot tell the difference, so a secure source is
// used instead.
func GenerateTransmitIV(r io.Reader, size int) ([]byte, error) {
	if size <= 0 {
		return nil, errors.Wrapf(ErrConfig, "invalid IV size %d", size)
	}
	if r == nil {
		r = rand.Reader
	}
	iv := make([]byte, size)
	if _, err := io.ReadFull(r, iv); err != nil {
		return nil, errors.Wrap(err, "cipher: generating transmit IV")
	}
	return iv, nil
}

// ValidateBlockFits fails with ErrConfig when an algorithm needs more IV
// bytes than ivSize provides.
func ValidateBlockFits(blockSize, ivSize int) error {
	if blockSize > ivSize {
		return errors.Wrapf(ErrConfig, "IV size %d for crypto algorithm is below block size %d", ivSize, blockSize)
	}
	return nil
}
