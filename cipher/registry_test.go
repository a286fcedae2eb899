package cipher_test

import (
	"errors"
	"testing"

	"github.com/jinmeng260/nscp/cipher"
)

var reserved = []cipher.Algorithm{
	cipher.CAST256, cipher.ThreeWay, cipher.LOKI97, cipher.ARCFOUR, cipher.RC6,
	cipher.Rijndael192, cipher.Rijndael256, cipher.MARS, cipher.PANAMA,
	cipher.WAKE, cipher.IDEA, cipher.ENIGMA, cipher.SAFER64, cipher.SAFER128,
	cipher.SAFERPlus,
}

func TestWireIdentifiers(t *testing.T) {
	ids := map[cipher.Algorithm]int{
		cipher.None: 0, cipher.XOR: 1, cipher.DES: 2, cipher.TripleDES: 3,
		cipher.CAST128: 4, cipher.XTEA: 6, cipher.Blowfish: 8, cipher.Twofish: 9,
		cipher.RC2: 11, cipher.RC6: 13, cipher.Rijndael128: 14, cipher.Serpent: 20,
		cipher.GOST: 23, cipher.SAFERPlus: 26,
	}
	for a, n := range ids {
		if int(a) != n {
			t.Errorf("%s = %d, want %d", a, int(a), n)
		}
	}
	if l := cipher.List(); len(l) != int(cipher.LastAlgorithm)+1 {
		t.Fatalf("List returned %d entries", len(l))
	}
}

func TestDegenerateAlwaysSupported(t *testing.T) {
	for _, a := range []cipher.Algorithm{cipher.None, cipher.XOR} {
		if !cipher.Supports(a) {
			t.Errorf("%s should always be supported", a)
		}
	}
}

func TestReservedNeverSupported(t *testing.T) {
	for _, a := range reserved {
		if cipher.Supports(a) {
			t.Errorf("%s must not be supported", a)
		}
		_, err := cipher.New(a)
		var nf *cipher.NotFoundError
		if !errors.As(err, &nf) || !errors.Is(err, cipher.ErrNotFound) {
			t.Fatalf("%s: expected NotFoundError, got %v", a, err)
		}
		if nf.Unknown() {
			t.Errorf("%s: reserved id reported as unknown", a)
		}
	}
}

func TestUnknownAlgorithm(t *testing.T) {
	for _, a := range []cipher.Algorithm{9999, -1, cipher.LastAlgorithm + 1} {
		if cipher.Supports(a) {
			t.Errorf("%d reported as supported", int(a))
		}
		_, err := cipher.New(a)
		var nf *cipher.NotFoundError
		if !errors.As(err, &nf) || !nf.Unknown() {
			t.Fatalf("%d: expected unknown NotFoundError, got %v", int(a), err)
		}
		if _, ok := cipher.Lookup(a); ok {
			t.Errorf("%d: Lookup succeeded", int(a))
		}
	}
}

func TestParseAlgorithm(t *testing.T) {
	tests := []struct {
		in   string
		want cipher.Algorithm
	}{
		{"0", cipher.None},
		{"14", cipher.Rijndael128},
		{"AES", cipher.Rijndael128},
		{" 3des ", cipher.TripleDES},
		{"triple-des", cipher.TripleDES},
		{"Blowfish", cipher.Blowfish},
		{"rc6", cipher.RC6},
		{"xor", cipher.XOR},
	}
	for _, tt := range tests {
		got, err := cipher.ParseAlgorithm(tt.in)
		if err != nil {
			t.Errorf("ParseAlgorithm(%q): %v", tt.in, err)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseAlgorithm(%q) = %s, want %s", tt.in, got, tt.want)
		}
	}

	for _, in := range []string{"9999", "rot13", ""} {
		if _, err := cipher.ParseAlgorithm(in); err == nil {
			t.Errorf("ParseAlgorithm(%q) should fail", in)
		}
	}
	if _, err := cipher.ParseAlgorithm("27"); !errors.Is(err, cipher.ErrNotFound) {
		t.Errorf("expected ErrNotFound for id 27, got %v", err)
	}
}

func TestDecryptUnsupported(t *testing.T) {
	for _, d := range cipher.List() {
		if !d.Supported() {
			continue
		}
		c, err := cipher.New(d.Algorithm)
		if err != nil {
			t.Fatal(err)
		}
		for _, buf := range [][]byte{nil, {}, []byte("data")} {
			if err := c.Decrypt(buf); !errors.Is(err, cipher.ErrUnsupported) {
				t.Errorf("%s: Decrypt before Init returned %v", d.Name, err)
			}
		}
		iv := make([]byte, cipher.TransmittedIVSize)
		if err := c.Init("password", iv); err != nil {
			t.Fatalf("%s: %v", d.Name, err)
		}
		if err := c.Decrypt([]byte("data")); !errors.Is(err, cipher.ErrUnsupported) {
			t.Errorf("%s: Decrypt after Init returned %v", d.Name, err)
		}
	}
}

func TestNegativeKeySize(t *testing.T) {
	if _, err := cipher.NewWithKeySize(cipher.XOR, -1); !errors.Is(err, cipher.ErrConfig) {
		t.Fatalf("expected ErrConfig, got %v", err)
	}
}
