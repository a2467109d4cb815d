// Package storage provides the key-value capability the vault persists
// through. Backends: a file-per-key directory (default), sqlite, and an
// in-memory map for tests.
package storage

import "context"

// Storage is a flat key-value store.
//
// Get returns (nil, nil) when the key is absent; callers treat a missing
// key as "never written", not as an error. All failures of the underlying
// medium wrap common.ErrorStorage.
type Storage interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error

	// SetMany writes several keys in one step, atomically where the
	// medium supports it (single transaction on sqlite; best effort on
	// the file backend).
	SetMany(ctx context.Context, values map[string][]byte) error

	Delete(ctx context.Context, key string) error
	List(ctx context.Context) (map[string][]byte, error)
	Close() error
}
