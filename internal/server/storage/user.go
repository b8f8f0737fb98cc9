package storage

import (
	"context"
	"time"

	"github.com/iudanet/lingosync/internal/models"
)

//go:generate moq -out userstorage_mock.go . UserStorage

// UserStorage defines interface for user data persistence
type UserStorage interface {
	// CreateUser creates a new user in the storage
	// Returns ErrUserAlreadyExists if id is taken
	CreateUser(ctx context.Context, user *models.User) error

	// GetUserByID retrieves user by ID
	// Returns ErrUserNotFound if user doesn't exist
	GetUserByID(ctx context.Context, userID string) (*models.User, error)

	// DeleteUser deletes user and the user's progress
	// Returns ErrUserNotFound if user doesn't exist
	DeleteUser(ctx context.Context, userID string) error

	// UpdateLastSeen updates the time of the last token issue
	UpdateLastSeen(ctx context.Context, userID string, lastSeen time.Time) error
}
