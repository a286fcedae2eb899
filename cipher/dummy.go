package cipher

const noneName = "No Encryption (not safe)"

// noneCipher passes data through unchanged.
type noneCipher struct{ ready bool }

func newNone(*Descriptor, int) Cipher { return &noneCipher{} }

func (c *noneCipher) Init(string, []byte) error { c.ready = true; return nil }

func (c *noneCipher) Encrypt([]byte) error {
	if !c.ready {
		return ErrNotInitialized
	}
	return nil
}

func (c *noneCipher) Decrypt([]byte) error { return ErrUnsupported }
func (c *noneCipher) Name() string         { return noneName }
func (c *noneCipher) Close()               { c.ready = false }
