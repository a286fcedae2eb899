package cipher

// Cipher is one per-session instance of a payload cipher. Implementations
// are stateful: Encrypt continues where the previous call stopped, so an
// instance must not be shared between sessions or used concurrently.
type Cipher interface {
	// Init derives the key from password and sets up state from iv. Any
	// previous state is discarded first.
	Init(password string, iv []byte) error

	// Encrypt transforms buf in place. The length never changes.
	Encrypt(buf []byte) error

	// Decrypt always fails with ErrUnsupported.
	Decrypt(buf []byte) error

	// Name returns a stable display name.
	Name() string

	// Close zeroes the key material held by the instance. A closed cipher
	// must be initialized again before use.
	Close()
}

func wipe(b []byte) {
	for i := range b {
		b[i] = 0
	}
}
