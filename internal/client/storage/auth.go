package storage

import (
	"context"
	"time"
)

//go:generate moq -out authstorage_mock.go . AuthStorage

// AuthStorage defines interface for storing device credentials on client
type AuthStorage interface {
	// SaveAuth stores authentication data, replacing previous
	SaveAuth(ctx context.Context, auth *AuthData) error

	// GetAuth retrieves stored authentication data
	// Returns ErrAuthNotFound if no auth data exists
	GetAuth(ctx context.Context) (*AuthData, error)

	// DeleteAuth removes stored authentication data (logout)
	DeleteAuth(ctx context.Context) error
}

// AuthData anonymous device identity.
// DeviceSecret is issued once at sign-in and is used to re-issue access tokens.
type AuthData struct {
	ExpiresAt    time.Time `json:"expires_at"`
	UserID       string    `json:"user_id"`
	DeviceSecret string    `json:"device_secret"`
	AccessToken  string    `json:"access_token"`
}

// Expired reports whether the access token is unusable at the given moment
func (a *AuthData) Expired(now time.Time) bool {
	return a.AccessToken == "" || !now.Before(a.ExpiresAt)
}
