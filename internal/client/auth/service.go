// Package auth управляет анонимной учетной записью устройства.
//
// Устройство регистрируется один раз и получает user id и секрет устройства.
// Секрет хранится локально и позволяет перевыпускать access token без
// участия пользователя.
package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/iudanet/lingosync/internal/client/storage"
	"github.com/iudanet/lingosync/internal/validation"
	pkgapi "github.com/iudanet/lingosync/pkg/api"
)

// refreshSkew токен перевыпускается заранее, чтобы не истечь в пути
const refreshSkew = 30 * time.Second

//go:generate moq -out remote_mock.go . Remote

// Remote серверные вызовы авторизации
type Remote interface {
	SignInAnonymously(ctx context.Context) (*pkgapi.AnonymousSignInResponse, error)
	IssueToken(ctx context.Context, userID, deviceSecret string) (*pkgapi.TokenResponse, error)
}

// Service предоставляет функции авторизации
type Service struct {
	remote  Remote
	storage storage.AuthStorage
	logger  *slog.Logger
	now     func() time.Time
	mu      sync.Mutex
}

// NewService создает новый сервис авторизации
func NewService(remote Remote, authStorage storage.AuthStorage, logger *slog.Logger) *Service {
	return &Service{
		remote:  remote,
		storage: authStorage,
		logger:  logger,
		now:     time.Now,
	}
}

// UserID возвращает идентификатор текущего пользователя.
// false, если устройство не зарегистрировано или хранилище недоступно.
func (s *Service) UserID(ctx context.Context) (string, bool) {
	auth, err := s.storage.GetAuth(ctx)
	if err != nil {
		if !errors.Is(err, storage.ErrAuthNotFound) {
			s.logger.Warn("failed to read auth data", "error", err)
		}
		return "", false
	}
	if auth.UserID == "" {
		return "", false
	}
	return auth.UserID, true
}

// Current возвращает сохраненные данные авторизации
func (s *Service) Current(ctx context.Context) (*storage.AuthData, error) {
	auth, err := s.storage.GetAuth(ctx)
	if err != nil {
		if errors.Is(err, storage.ErrAuthNotFound) {
			return nil, ErrNotSignedIn
		}
		return nil, fmt.Errorf("failed to read auth data: %w", err)
	}
	return auth, nil
}

// SignIn регистрирует устройство анонимно и сохраняет учетные данные.
// Если устройство уже зарегистрировано, возвращает сохраненные данные.
func (s *Service) SignIn(ctx context.Context) (*storage.AuthData, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	existing, err := s.storage.GetAuth(ctx)
	if err == nil {
		return existing, nil
	}
	if !errors.Is(err, storage.ErrAuthNotFound) {
		return nil, fmt.Errorf("failed to read auth data: %w", err)
	}

	resp, err := s.remote.SignInAnonymously(ctx)
	if err != nil {
		return nil, fmt.Errorf("anonymous sign-in failed: %w", err)
	}

	if err := validation.ValidateUserID(resp.UserID); err != nil {
		return nil, fmt.Errorf("server returned invalid user id: %w", err)
	}
	if resp.DeviceSecret == "" {
		return nil, fmt.Errorf("server returned empty device secret")
	}

	auth := &storage.AuthData{
		UserID:       resp.UserID,
		DeviceSecret: resp.DeviceSecret,
		AccessToken:  resp.AccessToken,
		ExpiresAt:    s.now().Add(time.Duration(resp.ExpiresIn) * time.Second),
	}

	if err := s.storage.SaveAuth(ctx, auth); err != nil {
		return nil, fmt.Errorf("failed to save auth data: %w", err)
	}

	s.logger.Info("device signed in", "user_id", auth.UserID)

	return auth, nil
}

// SignOut удаляет локальные учетные данные.
// Прогресс остается на устройстве.
func (s *Service) SignOut(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.storage.DeleteAuth(ctx); err != nil {
		if errors.Is(err, storage.ErrAuthNotFound) {
			return ErrNotSignedIn
		}
		return fmt.Errorf("failed to delete auth data: %w", err)
	}

	s.logger.Info("device signed out")
	return nil
}

// AccessToken возвращает действующий access token.
// Истекший токен перевыпускается по секрету устройства и сохраняется.
func (s *Service) AccessToken(ctx context.Context) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	auth, err := s.storage.GetAuth(ctx)
	if err != nil {
		if errors.Is(err, storage.ErrAuthNotFound) {
			return "", ErrNotSignedIn
		}
		return "", fmt.Errorf("failed to read auth data: %w", err)
	}

	if !auth.Expired(s.now().Add(refreshSkew)) {
		return auth.AccessToken, nil
	}

	resp, err := s.remote.IssueToken(ctx, auth.UserID, auth.DeviceSecret)
	if err != nil {
		return "", fmt.Errorf("failed to refresh access token: %w", err)
	}

	auth.AccessToken = resp.AccessToken
	auth.ExpiresAt = s.now().Add(time.Duration(resp.ExpiresIn) * time.Second)

	if err := s.storage.SaveAuth(ctx, auth); err != nil {
		// Токен получен, сохранить не удалось: используем его в этот раз
		s.logger.Warn("failed to persist refreshed token", "error", err)
	}

	s.logger.Debug("access token refreshed", "user_id", auth.UserID)

	return auth.AccessToken, nil
}
