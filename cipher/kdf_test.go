package cipher_test

import (
	"bytes"
	"testing"

	"github.com/jinmeng260/nscp/cipher"
)

func TestDeriveKey(t *testing.T) {
	tests := []struct {
		name     string
		password string
		size     int
		want     []byte
	}{
		{"exact", "abcd", 4, []byte("abcd")},
		{"truncated", "abcdefgh", 4, []byte("abcd")},
		{"zero filled", "ab", 4, []byte{'a', 'b', 0, 0}},
		{"empty password", "", 3, []byte{0, 0, 0}},
		{"stops at NUL", "ab\x00cd", 5, []byte{'a', 'b', 0, 0, 0}},
		{"zero size", "secret", 0, []byte{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := cipher.DeriveKey(tt.password, tt.size)
			if !bytes.Equal(got, tt.want) {
				t.Fatalf("DeriveKey(%q, %d) = %x, want %x", tt.password, tt.size, got, tt.want)
			}
		})
	}
}

func TestDeriveKeyIgnoresTail(t *testing.T) {
	for _, d := range cipher.List() {
		if !d.Supported() || d.KeySize == 0 {
			continue
		}
		base := bytes.Repeat([]byte("k"), d.KeySize)
		a := cipher.DeriveKey(string(base)+"tail-one", d.KeySize)
		b := cipher.DeriveKey(string(base)+"another-tail", d.KeySize)
		if !bytes.Equal(a, b) || len(a) != d.KeySize {
			t.Errorf("%s: key depends on bytes beyond %d", d.Name, d.KeySize)
		}
	}
}
