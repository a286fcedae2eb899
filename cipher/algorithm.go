package cipher

import (
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// Algorithm is the wire identifier of an encryption method. The numeric
// values are shared with every NSCA peer and must never change.
type Algorithm int

const (
	None        Algorithm = 0 // no encryption
	XOR         Algorithm = 1 // obfuscation only
	DES         Algorithm = 2
	TripleDES   Algorithm = 3
	CAST128     Algorithm = 4
	CAST256     Algorithm = 5
	XTEA        Algorithm = 6
	ThreeWay    Algorithm = 7
	Blowfish    Algorithm = 8
	Twofish     Algorithm = 9
	LOKI97      Algorithm = 10
	RC2         Algorithm = 11
	ARCFOUR     Algorithm = 12
	RC6         Algorithm = 13
	Rijndael128 Algorithm = 14
	Rijndael192 Algorithm = 15
	Rijndael256 Algorithm = 16
	MARS        Algorithm = 17
	PANAMA      Algorithm = 18
	WAKE        Algorithm = 19
	Serpent     Algorithm = 20
	IDEA        Algorithm = 21
	ENIGMA      Algorithm = 22
	GOST        Algorithm = 23
	SAFER64     Algorithm = 24
	SAFER128    Algorithm = 25
	SAFERPlus   Algorithm = 26

	LastAlgorithm = SAFERPlus
)

var algorithmNames = [...]string{
	None:        "none",
	XOR:         "xor",
	DES:         "des",
	TripleDES:   "3des",
	CAST128:     "cast128",
	CAST256:     "cast256",
	XTEA:        "xtea",
	ThreeWay:    "3way",
	Blowfish:    "blowfish",
	Twofish:     "twofish",
	LOKI97:      "loki97",
	RC2:         "rc2",
	ARCFOUR:     "arcfour",
	RC6:         "rc6",
	Rijndael128: "rijndael128",
	Rijndael192: "rijndael192",
	Rijndael256: "rijndael256",
	MARS:        "mars",
	PANAMA:      "panama",
	WAKE:        "wake",
	Serpent:     "serpent",
	IDEA:        "idea",
	ENIGMA:      "enigma",
	GOST:        "gost",
	SAFER64:     "safer64",
	SAFER128:    "safer128",
	SAFERPlus:   "saferplus",
}

// extra spellings accepted by ParseAlgorithm
var algorithmAliases = map[string]Algorithm{
	"no":         None,
	"plain":      None,
	"triple-des": TripleDES,
	"tripledes":  TripleDES,
	"des-ede3":   TripleDES,
	"cast-128":   CAST128,
	"cast5":      CAST128,
	"cast-256":   CAST256,
	"aes":        Rijndael128,
	"rijndael":   Rijndael128,
	"rc4":        ARCFOUR,
	"safer+":     SAFERPlus,
}

// Known reports whether a is part of the legacy enumeration.
func (a Algorithm) Known() bool { return a >= None && a <= LastAlgorithm }

func (a Algorithm) String() string {
	if a.Known() {
		return algorithmNames[a]
	}
	return "algorithm(" + strconv.Itoa(int(a)) + ")"
}

// ParseAlgorithm accepts a numeric identifier or a case-insensitive name such
// as "aes", "3des" or "blowfish". Only the enumeration is checked; whether the
// algorithm is usable is decided by Supports.
func ParseAlgorithm(s string) (Algorithm, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if n, err := strconv.Atoi(s); err == nil {
		if a := Algorithm(n); a.Known() {
			return a, nil
		}
		return 0, errors.WithStack(&NotFoundError{Algorithm: Algorithm(n)})
	}
	for i, name := range algorithmNames {
		if name == s {
			return Algorithm(i), nil
		}
	}
	if a, ok := algorithmAliases[s]; ok {
		return a, nil
	}
	return 0, errors.Errorf("cipher: unknown algorithm name %q", s)
}
