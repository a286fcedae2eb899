package cipher

const xorName = "XOR (not safe)"

// xorCipher XORs each byte with the IV and then with the password, rotating
// over each independently. It only obfuscates.
type xorCipher struct {
	iv       []byte
	password []byte
	ready    bool
}

func newXOR(*Descriptor, int) Cipher { return &xorCipher{} }

// Init stores password and iv verbatim; there is no key derivation.
func (c *xorCipher) Init(password string, iv []byte) error {
	c.Close()
	c.iv = append([]byte(nil), iv...)
	c.password = []byte(password)
	c.ready = true
	return nil
}

// Encrypt restarts both rotations at position 0 on every call. An empty IV or
// password contributes nothing.
func (c *xorCipher) Encrypt(buf []byte) error {
	if !c.ready {
		return ErrNotInitialized
	}
	ivLen, pwLen := len(c.iv), len(c.password)
	for i := range buf {
		if ivLen > 0 {
			buf[i] ^= c.iv[i%ivLen]
		}
		if pwLen > 0 {
			buf[i] ^= c.password[i%pwLen]
		}
	}
	return nil
}

func (c *xorCipher) Decrypt([]byte) error { return ErrUnsupported }
func (c *xorCipher) Name() string         { return xorName }

func (c *xorCipher) Close() {
	wipe(c.iv)
	wipe(c.password)
	c.iv, c.password = nil, nil
	c.ready = false
}
