package storage

import "context"

//go:generate moq -out progressstorage_mock.go . ProgressStorage

// ProgressStorage local key-value store of learner progress.
// Values are raw JSON bytes; the store does not interpret them.
type ProgressStorage interface {
	// Get returns the value stored under key
	// Returns ErrKeyNotFound if nothing is stored
	Get(ctx context.Context, key string) ([]byte, error)

	// Set stores value under key, replacing previous
	Set(ctx context.Context, key string, value []byte) error

	// Keys lists all stored keys in byte order
	Keys(ctx context.Context) ([]string, error)
}
