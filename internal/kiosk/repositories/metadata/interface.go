package metadata

import "context"

// Repository is a small key/value store for local-only state that is not an
// area or an entry (currently the admin PIN salt and verifier).
type Repository interface {
	// Get returns the stored value, or (nil, nil) when the key is absent.
	Get(ctx context.Context, key string) ([]byte, error)

	// Set inserts or replaces a value.
	Set(ctx context.Context, key string, value []byte) error

	// Delete removes a key; removing an absent key is not an error.
	Delete(ctx context.Context, key string) error

	// Clear removes every key.
	Clear(ctx context.Context) error
}
