package storage

import "errors"

// Common client storage errors
var (
	// ErrAuthNotFound indicates that no authentication data exists
	ErrAuthNotFound = errors.New("authentication data not found")

	// ErrKeyNotFound indicates that no local value is stored under the key
	ErrKeyNotFound = errors.New("progress key not found")

	// ErrStorageClosed indicates that storage is closed
	ErrStorageClosed = errors.New("storage is closed")
)
