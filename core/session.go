package core

import (
	"crypto/rand"
	"io"
	"sync"

	"github.com/pkg/errors"

	"github.com/jinmeng260/nscp/cipher"
	"github.com/jinmeng260/nscp/internal"
)

// number of fresh IVs a server draws before giving up on a duplicate
const maxIVAttempts = 3

// ErrReplayedIV means a peer IV was already used by an earlier session. It
// matches cipher.ErrConfig.
var ErrReplayedIV = errors.WithMessage(cipher.ErrConfig, "core: replayed IV")

// Config holds optional Session settings. The zero value is ready to use.
type Config struct {
	// Rand is the source of transmit IVs and RandomBytes. crypto/rand when nil.
	Rand io.Reader

	// IVFilter, when set, remembers every IV used. A client rejects a peer IV
	// seen before and a server never hands out the same IV twice. The filter
	// may be shared between sessions.
	IVFilter *internal.BloomRing

	// NewCipher builds the cipher for an algorithm. cipher.New when nil.
	NewCipher func(cipher.Algorithm) (cipher.Cipher, error)
}

// Session holds the cipher of one connection. Its methods are safe to call
// from several goroutines, but encryption is a single stream: callers must
// order their EncryptOutbound calls the way the data goes on the wire.
type Session struct {
	mu     sync.Mutex
	rand   io.Reader
	filter *internal.BloomRing
	newC   func(cipher.Algorithm) (cipher.Cipher, error)

	alg  cipher.Algorithm
	ciph cipher.Cipher
	iv   []byte
}

// NewSession returns an uninitialized Session.
func NewSession(cfg Config) *Session {
	r := cfg.Rand
	if r == nil {
		r = rand.Reader
	}
	return &Session{rand: r, filter: cfg.IVFilter, newC: cfg.NewCipher}
}

// SelectAndInit discards any active cipher and sets up alg. With an empty
// peerIV the session acts as server and generates a TransmittedIVSize IV,
// available from TransmitIV; otherwise it acts as client and uses peerIV.
// On failure the session is left uninitialized and the error matches
// cipher.ErrInit.
func (s *Session) SelectAndInit(alg cipher.Algorithm, password string, peerIV []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.release()

	newC := s.newC
	if newC == nil {
		newC = cipher.New
	}
	ciph, err := newC(alg)
	if err != nil {
		return s.fail(alg, err)
	}

	role := "client"
	var iv []byte
	if len(peerIV) == 0 {
		role = "server"
		iv, err = s.generateIV()
	} else {
		iv, err = s.acceptIV(peerIV)
	}
	if err != nil {
		return s.fail(alg, err)
	}

	if err := ciph.Init(password, iv); err != nil {
		ciph.Close()
		wipe(iv)
		return s.fail(alg, err)
	}

	s.alg, s.ciph, s.iv = alg, ciph, iv
	sessionsInitialized.WithLabelValues(alg.String(), role).Inc()
	logf("%s cipher %s ready", role, ciph.Name())
	return nil
}

func (s *Session) generateIV() ([]byte, error) {
	for i := 0; i < maxIVAttempts; i++ {
		iv, err := cipher.GenerateTransmitIV(s.rand, cipher.TransmittedIVSize)
		if err != nil {
			return nil, err
		}
		if s.filter == nil || !s.filter.CheckAndAdd(iv) {
			return iv, nil
		}
		logf("generated transmit IV was used before, drawing another")
	}
	return nil, errors.Wrap(cipher.ErrConfig, "core: no fresh transmit IV available")
}

func (s *Session) acceptIV(peerIV []byte) ([]byte, error) {
	if s.filter != nil && s.filter.CheckAndAdd(peerIV) {
		return nil, errors.WithStack(ErrReplayedIV)
	}
	return append([]byte(nil), peerIV...), nil
}

func (s *Session) fail(alg cipher.Algorithm, err error) error {
	initFailures.WithLabelValues(alg.String()).Inc()
	logf("failed to initialize cipher %s: %v", alg, err)
	return &cipher.InitError{Algorithm: alg, Err: err}
}

// EncryptOutbound encrypts buf in place with the active cipher. It fails with
// cipher.ErrNotInitialized until SelectAndInit succeeds. A failure inside the
// cipher tears the session down.
func (s *Session) EncryptOutbound(buf []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.ciph == nil {
		return cipher.ErrNotInitialized
	}
	if err := s.ciph.Encrypt(buf); err != nil {
		s.release()
		return err
	}
	bytesEncrypted.WithLabelValues(s.alg.String()).Add(float64(len(buf)))
	return nil
}

// RandomBytes returns n bytes from the session's random source, for protocol
// needs outside the cipher such as padding. It does not touch cipher state.
func (s *Session) RandomBytes(n int) ([]byte, error) {
	if n < 0 {
		return nil, errors.Wrapf(cipher.ErrConfig, "negative length %d", n)
	}
	r := s.rand
	if r == nil {
		r = rand.Reader
	}
	b := make([]byte, n)
	if _, err := io.ReadFull(r, b); err != nil {
		return nil, errors.Wrap(err, "core: reading random bytes")
	}
	return b, nil
}

// TransmitIV returns a copy of the IV the active cipher was seeded with; a
// server sends it to the client ahead of the first message. Nil when the
// session is not ready.
func (s *Session) TransmitIV() []byte {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.ciph == nil {
		return nil
	}
	return append([]byte(nil), s.iv...)
}

// Ready reports whether a cipher is initialized.
func (s *Session) Ready() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.ciph != nil
}

// Algorithm returns the active algorithm; false when not ready.
func (s *Session) Algorithm() (cipher.Algorithm, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.alg, s.ciph != nil
}

// Name returns the display name of the active cipher, or "" when not ready.
func (s *Session) Name() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.ciph == nil {
		return ""
	}
	return s.ciph.Name()
}

// Close releases the cipher and wipes the stored IV. The session may be
// initialized again afterwards.
func (s *Session) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.release()
}

func (s *Session) release() {
	if s.ciph != nil {
		s.ciph.Close()
		s.ciph = nil
	}
	wipe(s.iv)
	s.iv = nil
	s.alg = cipher.None
}

func wipe(b []byte) {
	for i := range b {
		b[i] = 0
	}
}
