package handlers

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/iudanet/lingosync/internal/crypto"
	"github.com/iudanet/lingosync/internal/models"
	"github.com/iudanet/lingosync/internal/server/storage"
	"github.com/iudanet/lingosync/internal/validation"
	"github.com/iudanet/lingosync/pkg/api"
)

// maxAuthBody ограничивает размер тела запросов авторизации
const maxAuthBody = 4 << 10

// TokenIssuer выпускает access token для пользователя
type TokenIssuer interface {
	GenerateAccessToken(userID string) (string, int64, error)
}

// AuthHandler обрабатывает запросы авторизации
type AuthHandler struct {
	logger      *slog.Logger
	userStorage storage.UserStorage
	tokens      TokenIssuer
	now         func() time.Time
}

// NewAuthHandler создает новый handler для авторизации
func NewAuthHandler(logger *slog.Logger, userStorage storage.UserStorage, tokens TokenIssuer) *AuthHandler {
	return &AuthHandler{
		logger:      logger,
		userStorage: userStorage,
		tokens:      tokens,
		now:         time.Now,
	}
}

// Anonymous обрабатывает POST /api/v1/auth/anonymous
// Регистрация нового анонимного устройства: выдает user_id, секрет устройства и токен
func (h *AuthHandler) Anonymous(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	secret, err := crypto.GenerateSecret()
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to generate device secret", slog.Any("error", err))
		internalError(h.logger, w)
		return
	}

	hash, salt, err := crypto.HashSecret(secret)
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to hash device secret", slog.Any("error", err))
		internalError(h.logger, w)
		return
	}

	user := &models.User{
		ID:         uuid.New().String(),
		SecretHash: hash,
		SecretSalt: salt,
		CreatedAt:  h.now(),
	}

	if err := h.userStorage.CreateUser(ctx, user); err != nil {
		if errors.Is(err, storage.ErrUserAlreadyExists) {
			// коллизия UUID, клиент может просто повторить запрос
			h.logger.WarnContext(ctx, "user id collision", slog.String("user_id", user.ID))
			WriteError(h.logger, w, http.StatusConflict, api.CodeAborted, "user id collision, retry")
			return
		}
		h.logger.ErrorContext(ctx, "failed to create user", slog.Any("error", err))
		internalError(h.logger, w)
		return
	}

	accessToken, expiresIn, err := h.tokens.GenerateAccessToken(user.ID)
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to generate access token", slog.Any("error", err))
		internalError(h.logger, w)
		return
	}

	h.logger.InfoContext(ctx, "anonymous user registered", slog.String("user_id", user.ID))

	resp := api.AnonymousSignInResponse{
		UserID:       user.ID,
		DeviceSecret: secret,
		AccessToken:  accessToken,
		ExpiresIn:    expiresIn,
	}

	WriteJSON(h.logger, w, resp, http.StatusCreated)
}

// Token обрабатывает POST /api/v1/auth/token
// Выдача нового access token по секрету устройства
func (h *AuthHandler) Token(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req api.TokenRequest
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxAuthBody)).Decode(&req); err != nil {
		h.logger.WarnContext(ctx, "failed to decode token request", slog.Any("error", err))
		WriteError(h.logger, w, http.StatusBadRequest, api.CodeInvalidArgument, "invalid request body")
		return
	}

	if err := validation.ValidateUserID(req.UserID); err != nil {
		WriteError(h.logger, w, http.StatusBadRequest, api.CodeInvalidArgument, err.Error())
		return
	}
	if req.DeviceSecret == "" {
		WriteError(h.logger, w, http.StatusBadRequest, api.CodeInvalidArgument, "device_secret is required")
		return
	}

	user, err := h.userStorage.GetUserByID(ctx, req.UserID)
	if err != nil {
		if errors.Is(err, storage.ErrUserNotFound) {
			h.logger.WarnContext(ctx, "token request for unknown user", slog.String("user_id", req.UserID))
			WriteError(h.logger, w, http.StatusUnauthorized, api.CodeUnauthenticated, "invalid credentials")
			return
		}
		h.logger.ErrorContext(ctx, "failed to get user", slog.Any("error", err))
		internalError(h.logger, w)
		return
	}

	if err := crypto.VerifySecret(req.DeviceSecret, user.SecretHash, user.SecretSalt); err != nil {
		h.logger.WarnContext(ctx, "invalid device secret", slog.String("user_id", user.ID), slog.Any("error", err))
		WriteError(h.logger, w, http.StatusUnauthorized, api.CodeUnauthenticated, "invalid credentials")
		return
	}

	accessToken, expiresIn, err := h.tokens.GenerateAccessToken(user.ID)
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to generate access token", slog.Any("error", err))
		internalError(h.logger, w)
		return
	}

	if err := h.userStorage.UpdateLastSeen(ctx, user.ID, h.now()); err != nil {
		// Не критичная ошибка, логируем но не прерываем
		h.logger.WarnContext(ctx, "failed to update last seen", slog.Any("error", err))
	}

	h.logger.InfoContext(ctx, "access token issued", slog.String("user_id", user.ID))

	WriteJSON(h.logger, w, api.TokenResponse{AccessToken: accessToken, ExpiresIn: expiresIn}, http.StatusOK)
}
