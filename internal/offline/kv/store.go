// Package kv defines the small key-value surface the offline layer persists
// through. Backends must tolerate concurrent access from the cache, queue,
// and sync engine.
package kv

import (
	"context"

	"dealdrop/internal/errors"
)

// ErrNotFound is returned when a key has no stored value.
var ErrNotFound = errors.New("kv: key not found")

// Store persists opaque byte values under string keys.
type Store interface {
	// Get retrieves the value for a key, or ErrNotFound.
	Get(ctx context.Context, key string) ([]byte, error)

	// Set stores a value under a key, replacing any existing value.
	Set(ctx context.Context, key string, value []byte) error

	// Remove deletes a key. Removing a missing key is not an error.
	Remove(ctx context.Context, key string) error
}
