package core

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	sessionsInitialized = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "nsca_cipher_sessions_initialized_total",
		Help: "Sessions whose cipher was initialized, by algorithm.",
	}, []string{"algorithm", "role"})

	initFailures = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "nsca_cipher_init_failures_total",
		Help: "Failed cipher initializations, by requested algorithm.",
	}, []string{"algorithm"})

	bytesEncrypted = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "nsca_cipher_encrypted_bytes_total",
		Help: "Bytes passed through EncryptOutbound, by algorithm.",
	}, []string{"algorithm"})
)
