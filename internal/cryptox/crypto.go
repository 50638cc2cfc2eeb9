// Package cryptox holds the PIN credential primitives: salt generation and
// the Argon2id verifier derivation used by the admin gate.
package cryptox

import (
	"crypto/subtle"

	"github.com/dmitrijs2005/hrakiosk/internal/common"
	"golang.org/x/crypto/argon2"
)

// SaltLength is the size of a freshly generated verifier salt.
const SaltLength = 16

// Argon2id parameters. Interactive-login strength: one pass over 64 MiB.
const (
	argonTime    = 1
	argonMemory  = 64 * 1024
	argonThreads = 4
	argonKeyLen  = 32
)

// MakeSalt returns a fresh random salt for DeriveVerifier.
func MakeSalt() []byte {
	return common.GenerateRandByteArray(SaltLength)
}

// DeriveVerifier derives the stored verifier for a PIN. The PIN itself is
// never persisted; only the verifier and its salt are.
func DeriveVerifier(pin, salt []byte) []byte {
	return argon2.IDKey(pin, salt, argonTime, argonMemory, argonThreads, argonKeyLen)
}

// VerifyPIN checks a candidate PIN against a stored verifier in constant
// time.
func VerifyPIN(pin, salt, verifier []byte) bool {
	candidate := DeriveVerifier(pin, salt)
	return subtle.ConstantTimeCompare(candidate, verifier) == 1
}
