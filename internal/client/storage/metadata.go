package storage

import (
	"context"
	"time"
)

//go:generate moq -out metadata_mock.go . MetadataStorage

// MetadataStorage defines interface for storing client metadata
type MetadataStorage interface {
	// SaveSyncTime saves the time of the last successful sync operation
	SaveSyncTime(ctx context.Context, operation string, at time.Time) error

	// GetSyncTime retrieves the time of the last successful sync operation
	// Returns zero time if the operation has never succeeded
	GetSyncTime(ctx context.Context, operation string) (time.Time, error)
}
