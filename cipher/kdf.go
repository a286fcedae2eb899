package cipher

import "strings"

// DeriveKey returns a keySize byte key made of the password bytes, truncated
// when the password is longer and zero padded when shorter. Copying stops at
// the first NUL byte, as legacy peers copy the password as a C string.
//
// This is not a real key derivation function; it is kept because every peer
// derives keys the same way.
func DeriveKey(password string, keySize int) []byte {
	if keySize <= 0 {
		return []byte{}
	}
	if i := strings.IndexByte(password, 0); i >= 0 {
		password = password[:i]
	}
	key := make([]byte, keySize)
	copy(key, password)
	return key
}
