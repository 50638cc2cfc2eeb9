package cryptox

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDeriveVerifier_Deterministic(t *testing.T) {
	salt := MakeSalt()
	a := DeriveVerifier([]byte("1234"), salt)
	b := DeriveVerifier([]byte("1234"), salt)

	assert.Equal(t, a, b)
	assert.Len(t, a, 32)
}

func TestDeriveVerifier_SaltMatters(t *testing.T) {
	a := DeriveVerifier([]byte("1234"), MakeSalt())
	b := DeriveVerifier([]byte("1234"), MakeSalt())

	assert.NotEqual(t, a, b)
}

func TestVerifyPIN(t *testing.T) {
	salt := MakeSalt()
	verifier := DeriveVerifier([]byte("1234"), salt)

	assert.True(t, VerifyPIN([]byte("1234"), salt, verifier))
	assert.False(t, VerifyPIN([]byte("9999"), salt, verifier))
	assert.False(t, VerifyPIN([]byte(""), salt, verifier))
}

func TestMakeSalt_Unique(t *testing.T) {
	assert.NotEqual(t, MakeSalt(), MakeSalt())
	assert.Len(t, MakeSalt(), SaltLength)
}
