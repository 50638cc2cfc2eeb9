// Package common defines shared helpers and sentinel errors used across
// the kiosk layers. Callers should use errors.Is to match these values.
package common

import "errors"

var (
	// Repository-level errors.
	ErrorNotFound = errors.New("not found")
	ErrorConflict = errors.New("already exists")

	// Validation errors (bad caller input, unknown status, malformed seed).
	ErrorValidation = errors.New("validation error")

	// Identity-protection errors.
	ErrorEmptyInput        = errors.New("empty input")
	ErrorCryptoUnavailable = errors.New("crypto unavailable")

	// Admin gate errors.
	ErrorUnauthorized = errors.New("unauthorized")

	// Store initialization errors. A failed schema upgrade leaves the store
	// at its prior version; opening is refused until the upgrade succeeds.
	ErrorMigration = errors.New("migration failed")
)
