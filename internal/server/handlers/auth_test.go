package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iudanet/lingosync/internal/crypto"
	"github.com/iudanet/lingosync/internal/models"
	"github.com/iudanet/lingosync/internal/server/jwt"
	"github.com/iudanet/lingosync/internal/server/storage"
	"github.com/iudanet/lingosync/pkg/api"
)

func setupTestLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// newUserStore возвращает мок хранилища пользователей поверх map
func newUserStore() (*storage.UserStorageMock, map[string]*models.User) {
	var mu sync.Mutex
	users := make(map[string]*models.User)

	return &storage.UserStorageMock{
		CreateUserFunc: func(ctx context.Context, user *models.User) error {
			mu.Lock()
			defer mu.Unlock()
			if _, ok := users[user.ID]; ok {
				return storage.ErrUserAlreadyExists
			}
			users[user.ID] = user
			return nil
		},
		GetUserByIDFunc: func(ctx context.Context, userID string) (*models.User, error) {
			mu.Lock()
			defer mu.Unlock()
			user, ok := users[userID]
			if !ok {
				return nil, storage.ErrUserNotFound
			}
			return user, nil
		},
		UpdateLastSeenFunc: func(ctx context.Context, userID string, lastSeen time.Time) error {
			return nil
		},
	}, users
}

func decodeError(t *testing.T, body io.Reader) api.ErrorResponse {
	t.Helper()
	var resp api.ErrorResponse
	require.NoError(t, json.NewDecoder(body).Decode(&resp))
	return resp
}

func TestAuthHandler_Anonymous_Success(t *testing.T) {
	userStorage, users := newUserStore()
	tokens := jwt.NewService("test-secret", 15*time.Minute)
	handler := NewAuthHandler(setupTestLogger(), userStorage, tokens)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/anonymous", nil)
	w := httptest.NewRecorder()

	handler.Anonymous(w, req)

	require.Equal(t, http.StatusCreated, w.Code)

	var resp api.AnonymousSignInResponse
	require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))

	_, err := uuid.Parse(resp.UserID)
	require.NoError(t, err)
	assert.NotEmpty(t, resp.DeviceSecret)
	assert.Equal(t, int64(900), resp.ExpiresIn)

	claims, err := tokens.ValidateAccessToken(resp.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, resp.UserID, claims.UserID())

	// секрет хранится только в виде хеша
	stored, ok := users[resp.UserID]
	require.True(t, ok)
	assert.NotEqual(t, resp.DeviceSecret, stored.SecretHash)
	assert.NoError(t, crypto.VerifySecret(resp.DeviceSecret, stored.SecretHash, stored.SecretSalt))
}

func TestAuthHandler_Anonymous_StorageErrors(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantCode   string
	}{
		{name: "collision", err: storage.ErrUserAlreadyExists, wantStatus: http.StatusConflict, wantCode: api.CodeAborted},
		{name: "database error", err: errors.New("disk full"), wantStatus: http.StatusInternalServerError, wantCode: api.CodeInternal},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			userStorage := &storage.UserStorageMock{
				CreateUserFunc: func(ctx context.Context, user *models.User) error {
					return tt.err
				},
			}
			handler := NewAuthHandler(setupTestLogger(), userStorage, jwt.NewService("s", time.Minute))

			w := httptest.NewRecorder()
			handler.Anonymous(w, httptest.NewRequest(http.MethodPost, "/api/v1/auth/anonymous", nil))

			assert.Equal(t, tt.wantStatus, w.Code)
			assert.Equal(t, tt.wantCode, decodeError(t, w.Body).Code)
		})
	}
}

func TestAuthHandler_Token_Success(t *testing.T) {
	userStorage, _ := newUserStore()
	tokens := jwt.NewService("test-secret", time.Hour)
	handler := NewAuthHandler(setupTestLogger(), userStorage, tokens)

	// регистрируем устройство
	w := httptest.NewRecorder()
	handler.Anonymous(w, httptest.NewRequest(http.MethodPost, "/api/v1/auth/anonymous", nil))
	require.Equal(t, http.StatusCreated, w.Code)

	var signIn api.AnonymousSignInResponse
	require.NoError(t, json.NewDecoder(w.Body).Decode(&signIn))

	body, err := json.Marshal(api.TokenRequest{UserID: signIn.UserID, DeviceSecret: signIn.DeviceSecret})
	require.NoError(t, err)

	w = httptest.NewRecorder()
	handler.Token(w, httptest.NewRequest(http.MethodPost, "/api/v1/auth/token", bytes.NewReader(body)))

	require.Equal(t, http.StatusOK, w.Code)

	var resp api.TokenResponse
	require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
	assert.Equal(t, int64(3600), resp.ExpiresIn)

	claims, err := tokens.ValidateAccessToken(resp.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, signIn.UserID, claims.UserID())

	calls := userStorage.UpdateLastSeenCalls()
	require.Len(t, calls, 1)
	assert.Equal(t, signIn.UserID, calls[0].UserID)
}

func TestAuthHandler_Token_Errors(t *testing.T) {
	hash, salt, err := crypto.HashSecret("right-secret")
	require.NoError(t, err)

	knownID := uuid.New().String()
	userStorage, users := newUserStore()
	users[knownID] = &models.User{ID: knownID, SecretHash: hash, SecretSalt: salt}

	tests := []struct {
		name       string
		body       string
		wantStatus int
		wantCode   string
	}{
		{
			name:       "invalid json",
			body:       "invalid json",
			wantStatus: http.StatusBadRequest,
			wantCode:   api.CodeInvalidArgument,
		},
		{
			name:       "user id is not uuid",
			body:       `{"user_id":"bob","device_secret":"x"}`,
			wantStatus: http.StatusBadRequest,
			wantCode:   api.CodeInvalidArgument,
		},
		{
			name:       "missing secret",
			body:       `{"user_id":"` + knownID + `"}`,
			wantStatus: http.StatusBadRequest,
			wantCode:   api.CodeInvalidArgument,
		},
		{
			name:       "unknown user",
			body:       `{"user_id":"` + uuid.New().String() + `","device_secret":"right-secret"}`,
			wantStatus: http.StatusUnauthorized,
			wantCode:   api.CodeUnauthenticated,
		},
		{
			name:       "wrong secret",
			body:       `{"user_id":"` + knownID + `","device_secret":"wrong-secret"}`,
			wantStatus: http.StatusUnauthorized,
			wantCode:   api.CodeUnauthenticated,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler := NewAuthHandler(setupTestLogger(), userStorage, jwt.NewService("s", time.Minute))

			req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/token", bytes.NewReader([]byte(tt.body)))
			w := httptest.NewRecorder()
			handler.Token(w, req)

			assert.Equal(t, tt.wantStatus, w.Code)
			assert.Equal(t, tt.wantCode, decodeError(t, w.Body).Code)
		})
	}
}

func TestAuthHandler_Token_LastSeenFailureIsNotFatal(t *testing.T) {
	hash, salt, err := crypto.HashSecret("right-secret")
	require.NoError(t, err)

	id := uuid.New().String()
	userStorage := &storage.UserStorageMock{
		GetUserByIDFunc: func(ctx context.Context, userID string) (*models.User, error) {
			return &models.User{ID: id, SecretHash: hash, SecretSalt: salt}, nil
		},
		UpdateLastSeenFunc: func(ctx context.Context, userID string, lastSeen time.Time) error {
			return errors.New("database is locked")
		},
	}
	handler := NewAuthHandler(setupTestLogger(), userStorage, jwt.NewService("s", time.Minute))

	body := `{"user_id":"` + id + `","device_secret":"right-secret"}`
	w := httptest.NewRecorder()
	handler.Token(w, httptest.NewRequest(http.MethodPost, "/api/v1/auth/token", bytes.NewReader([]byte(body))))

	assert.Equal(t, http.StatusOK, w.Code)
}
