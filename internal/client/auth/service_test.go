package auth

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iudanet/lingosync/internal/client/storage"
	pkgapi "github.com/iudanet/lingosync/pkg/api"
)

func setupTestLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// memoryAuthStorage хранилище auth в памяти поверх moq мока
func memoryAuthStorage() (*storage.AuthStorageMock, **storage.AuthData) {
	var current *storage.AuthData
	mock := &storage.AuthStorageMock{
		SaveAuthFunc: func(ctx context.Context, auth *storage.AuthData) error {
			cp := *auth
			current = &cp
			return nil
		},
		GetAuthFunc: func(ctx context.Context) (*storage.AuthData, error) {
			if current == nil {
				return nil, storage.ErrAuthNotFound
			}
			cp := *current
			return &cp, nil
		},
		DeleteAuthFunc: func(ctx context.Context) error {
			if current == nil {
				return storage.ErrAuthNotFound
			}
			current = nil
			return nil
		},
	}
	return mock, &current
}

func newTestService(remote Remote, store storage.AuthStorage, now time.Time) *Service {
	s := NewService(remote, store, setupTestLogger())
	s.now = func() time.Time { return now }
	return s
}

var testNow = time.Date(2026, 2, 10, 12, 0, 0, 0, time.UTC)

func TestService_SignIn(t *testing.T) {
	ctx := context.Background()
	userID := uuid.NewString()

	remote := &RemoteMock{
		SignInAnonymouslyFunc: func(ctx context.Context) (*pkgapi.AnonymousSignInResponse, error) {
			return &pkgapi.AnonymousSignInResponse{
				UserID:       userID,
				DeviceSecret: "secret",
				AccessToken:  "token",
				ExpiresIn:    900,
			}, nil
		},
	}
	store, current := memoryAuthStorage()
	svc := newTestService(remote, store, testNow)

	_, ok := svc.UserID(ctx)
	assert.False(t, ok)

	auth, err := svc.SignIn(ctx)
	require.NoError(t, err)
	assert.Equal(t, userID, auth.UserID)
	assert.Equal(t, "secret", auth.DeviceSecret)
	assert.Equal(t, testNow.Add(15*time.Minute), auth.ExpiresAt)

	require.NotNil(t, *current)
	assert.Equal(t, userID, (*current).UserID)

	got, ok := svc.UserID(ctx)
	assert.True(t, ok)
	assert.Equal(t, userID, got)

	// Повторный вход не регистрирует новое устройство
	again, err := svc.SignIn(ctx)
	require.NoError(t, err)
	assert.Equal(t, userID, again.UserID)
	assert.Len(t, remote.SignInAnonymouslyCalls(), 1)
}

func TestService_SignIn_Errors(t *testing.T) {
	tests := []struct {
		resp    *pkgapi.AnonymousSignInResponse
		err     error
		name    string
		wantErr string
	}{
		{
			name:    "remote failure",
			err:     errors.New("connection refused"),
			wantErr: "anonymous sign-in failed",
		},
		{
			name:    "invalid user id",
			resp:    &pkgapi.AnonymousSignInResponse{UserID: "nope", DeviceSecret: "s"},
			wantErr: "invalid user id",
		},
		{
			name:    "empty secret",
			resp:    &pkgapi.AnonymousSignInResponse{UserID: uuid.NewString()},
			wantErr: "empty device secret",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			remote := &RemoteMock{
				SignInAnonymouslyFunc: func(ctx context.Context) (*pkgapi.AnonymousSignInResponse, error) {
					return tt.resp, tt.err
				},
			}
			store, current := memoryAuthStorage()
			svc := newTestService(remote, store, testNow)

			_, err := svc.SignIn(context.Background())

			assert.ErrorContains(t, err, tt.wantErr)
			assert.Nil(t, *current)
		})
	}
}

func TestService_SignOut(t *testing.T) {
	ctx := context.Background()
	store, current := memoryAuthStorage()
	*current = &storage.AuthData{UserID: uuid.NewString()}
	svc := newTestService(&RemoteMock{}, store, testNow)

	require.NoError(t, svc.SignOut(ctx))
	_, ok := svc.UserID(ctx)
	assert.False(t, ok)

	assert.ErrorIs(t, svc.SignOut(ctx), ErrNotSignedIn)
}

func TestService_AccessToken(t *testing.T) {
	ctx := context.Background()
	userID := uuid.NewString()

	t.Run("not signed in", func(t *testing.T) {
		store, _ := memoryAuthStorage()
		svc := newTestService(&RemoteMock{}, store, testNow)

		_, err := svc.AccessToken(ctx)
		assert.ErrorIs(t, err, ErrNotSignedIn)
	})

	t.Run("valid token is returned as is", func(t *testing.T) {
		store, current := memoryAuthStorage()
		*current = &storage.AuthData{
			UserID:       userID,
			DeviceSecret: "secret",
			AccessToken:  "still-good",
			ExpiresAt:    testNow.Add(10 * time.Minute),
		}
		remote := &RemoteMock{}
		svc := newTestService(remote, store, testNow)

		token, err := svc.AccessToken(ctx)
		require.NoError(t, err)
		assert.Equal(t, "still-good", token)
		assert.Empty(t, remote.IssueTokenCalls())
	})

	t.Run("expiring token is refreshed and saved", func(t *testing.T) {
		store, current := memoryAuthStorage()
		*current = &storage.AuthData{
			UserID:       userID,
			DeviceSecret: "secret",
			AccessToken:  "old",
			ExpiresAt:    testNow.Add(10 * time.Second),
		}
		remote := &RemoteMock{
			IssueTokenFunc: func(ctx context.Context, uid, secret string) (*pkgapi.TokenResponse, error) {
				return &pkgapi.TokenResponse{AccessToken: "new", ExpiresIn: 900}, nil
			},
		}
		svc := newTestService(remote, store, testNow)

		token, err := svc.AccessToken(ctx)
		require.NoError(t, err)
		assert.Equal(t, "new", token)

		require.Len(t, remote.IssueTokenCalls(), 1)
		assert.Equal(t, userID, remote.IssueTokenCalls()[0].UserID)
		assert.Equal(t, "secret", remote.IssueTokenCalls()[0].DeviceSecret)

		assert.Equal(t, "new", (*current).AccessToken)
		assert.Equal(t, testNow.Add(15*time.Minute), (*current).ExpiresAt)
	})

	t.Run("refresh failure", func(t *testing.T) {
		store, current := memoryAuthStorage()
		*current = &storage.AuthData{UserID: userID, DeviceSecret: "secret"}
		remote := &RemoteMock{
			IssueTokenFunc: func(ctx context.Context, uid, secret string) (*pkgapi.TokenResponse, error) {
				return nil, errors.New("forbidden")
			},
		}
		svc := newTestService(remote, store, testNow)

		_, err := svc.AccessToken(ctx)
		assert.ErrorContains(t, err, "failed to refresh access token")
	})

	t.Run("save failure still returns token", func(t *testing.T) {
		store, current := memoryAuthStorage()
		*current = &storage.AuthData{UserID: userID, DeviceSecret: "secret"}
		store.SaveAuthFunc = func(ctx context.Context, auth *storage.AuthData) error {
			return errors.New("disk full")
		}
		remote := &RemoteMock{
			IssueTokenFunc: func(ctx context.Context, uid, secret string) (*pkgapi.TokenResponse, error) {
				return &pkgapi.TokenResponse{AccessToken: "new", ExpiresIn: 900}, nil
			},
		}
		svc := newTestService(remote, store, testNow)

		token, err := svc.AccessToken(ctx)
		require.NoError(t, err)
		assert.Equal(t, "new", token)
	})
}

func TestService_UserID_StorageError(t *testing.T) {
	store := &storage.AuthStorageMock{
		GetAuthFunc: func(ctx context.Context) (*storage.AuthData, error) {
			return nil, errors.New("corrupted")
		},
	}
	svc := newTestService(&RemoteMock{}, store, testNow)

	_, ok := svc.UserID(context.Background())
	assert.False(t, ok)
}
