package storage

import (
	"context"
	"encoding/json"
	"time"
)

//go:generate moq -out progressstorage_mock.go . ProgressStorage

// Document документ прогресса пользователя: набор полей с сырым JSON
type Document struct {
	UpdatedAt time.Time
	Fields    map[string]json.RawMessage
	UserID    string
}

// ProgressStorage defines interface for progress document persistence
type ProgressStorage interface {
	// GetProgress returns all fields of the user's document
	// Returns ErrDocumentNotFound if the user has no fields
	GetProgress(ctx context.Context, userID string) (*Document, error)

	// MergeProgress upserts the given fields, other fields are preserved
	// Returns the number of written fields
	MergeProgress(ctx context.Context, userID string, fields map[string]json.RawMessage, at time.Time) (int, error)
}
