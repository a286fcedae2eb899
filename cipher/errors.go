package cipher

import (
	"errors"
	"fmt"
)

var (
	// ErrConfig means key or IV sizing is wrong, e.g. an IV shorter than the block size.
	ErrConfig = errors.New("cipher: bad configuration")

	// ErrInit means a session could not set up its cipher.
	ErrInit = errors.New("cipher: initialization failed")

	// ErrCryptoBackend means the wrapped primitive failed.
	ErrCryptoBackend = errors.New("cipher: crypto backend failure")

	// ErrUnsupported is returned by every Decrypt. Outbound data is the only
	// thing this layer protects.
	ErrUnsupported = errors.New("cipher: decryption not supported")

	// ErrNotInitialized means Encrypt was called before a successful Init.
	ErrNotInitialized = errors.New("cipher: not initialized")

	// ErrNotFound means no working implementation exists for an algorithm.
	ErrNotFound = errors.New("cipher: algorithm not found")
)

// NotFoundError is returned for an unknown algorithm or one that is reserved
// or not built into this binary.
type NotFoundError struct {
	Algorithm Algorithm
}

// Unknown reports whether the identifier is outside the legacy enumeration,
// as opposed to a recognized id with no implementation.
func (e *NotFoundError) Unknown() bool { return !e.Algorithm.Known() }

func (e *NotFoundError) Error() string {
	if e.Unknown() {
		return fmt.Sprintf("cipher: unknown algorithm %d", int(e.Algorithm))
	}
	return fmt.Sprintf("cipher: algorithm %s (%d) is not supported", e.Algorithm, int(e.Algorithm))
}

func (e *NotFoundError) Is(target error) bool { return target == ErrNotFound }

// BackendError carries a failure of the underlying primitive.
type BackendError struct {
	Op  string // "setup" or "encrypt"
	Err error
}

func (e *BackendError) Error() string {
	return fmt.Sprintf("cipher: crypto backend failure during %s: %v", e.Op, e.Err)
}

func (e *BackendError) Unwrap() error        { return e.Err }
func (e *BackendError) Is(target error) bool { return target == ErrCryptoBackend }

// backendPanic converts a recovered panic from a primitive into a BackendError.
func backendPanic(op string, r interface{}) error {
	if err, ok := r.(error); ok {
		return &BackendError{Op: op, Err: err}
	}
	return &BackendError{Op: op, Err: fmt.Errorf("%v", r)}
}

// InitError is returned when a session cannot select or initialize its
// cipher. It unwraps to the cause, so errors.Is also matches ErrNotFound,
// ErrConfig or ErrCryptoBackend.
type InitError struct {
	Algorithm Algorithm
	Err       error
}

func (e *InitError) Error() string {
	return fmt.Sprintf("cipher: failed to initialize %s: %v", e.Algorithm, e.Err)
}

func (e *InitError) Unwrap() error        { return e.Err }
func (e *InitError) Is(target error) bool { return target == ErrInit }
