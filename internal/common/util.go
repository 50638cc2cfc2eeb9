package common

import "crypto/rand"

// GenerateRandByteArray returns length cryptographically random bytes.
// Panics if the system randomness source fails.
func GenerateRandByteArray(length int) []byte {
	b := make([]byte, length)
	if _, err := rand.Read(b); err != nil {
		panic(err)
	}
	return b
}

// WipeByteArray zeroes the buffer in place. Safe to call on nil.
func WipeByteArray(b []byte) {
	for i := range b {
		b[i] = 0
	}
}
