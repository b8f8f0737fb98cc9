package handlers

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/iudanet/lingosync/internal/server/storage"
	"github.com/iudanet/lingosync/internal/validation"
	"github.com/iudanet/lingosync/pkg/api"
)

// maxProgressBody ограничивает размер тела PATCH запроса
const maxProgressBody = validation.MaxRequestSize

// ProgressHandler обслуживает документ прогресса пользователя
type ProgressHandler struct {
	logger  *slog.Logger
	storage storage.ProgressStorage
	now     func() time.Time
}

// NewProgressHandler creates a new progress handler
func NewProgressHandler(logger *slog.Logger, progressStorage storage.ProgressStorage) *ProgressHandler {
	return &ProgressHandler{
		logger:  logger,
		storage: progressStorage,
		now:     time.Now,
	}
}

// Get обрабатывает GET /api/v1/users/{userID}/progress
func (h *ProgressHandler) Get(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	userID, ok := h.authorize(w, r)
	if !ok {
		return
	}

	doc, err := h.storage.GetProgress(ctx, userID)
	if err != nil {
		if errors.Is(err, storage.ErrDocumentNotFound) {
			WriteError(h.logger, w, http.StatusNotFound, api.CodeNotFound, "progress document not found")
			return
		}
		h.logger.ErrorContext(ctx, "failed to get progress", slog.String("user_id", userID), slog.Any("error", err))
		internalError(h.logger, w)
		return
	}

	h.logger.DebugContext(ctx, "progress returned", slog.String("user_id", userID), slog.Int("fields", len(doc.Fields)))

	resp := api.ProgressDocument{
		UserID:    doc.UserID,
		Fields:    doc.Fields,
		UpdatedAt: doc.UpdatedAt,
	}
	WriteJSON(h.logger, w, resp, http.StatusOK)
}

// Merge обрабатывает PATCH /api/v1/users/{userID}/progress
// Записывает только переданные поля, остальные поля документа не меняются
func (h *ProgressHandler) Merge(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	userID, ok := h.authorize(w, r)
	if !ok {
		return
	}

	var req api.MergeProgressRequest
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxProgressBody)).Decode(&req); err != nil {
		h.logger.WarnContext(ctx, "failed to decode merge request", slog.String("user_id", userID), slog.Any("error", err))
		WriteError(h.logger, w, http.StatusBadRequest, api.CodeInvalidArgument, "invalid request body")
		return
	}

	if err := validation.ValidateFields(req.Fields); err != nil {
		h.logger.WarnContext(ctx, "invalid progress fields", slog.String("user_id", userID), slog.Any("error", err))
		WriteError(h.logger, w, http.StatusBadRequest, api.CodeInvalidArgument, err.Error())
		return
	}

	at := h.now().UTC()
	n, err := h.storage.MergeProgress(ctx, userID, req.Fields, at)
	if err != nil {
		if errors.Is(err, storage.ErrUserNotFound) {
			WriteError(h.logger, w, http.StatusNotFound, api.CodeNotFound, "user not found")
			return
		}
		h.logger.ErrorContext(ctx, "failed to merge progress", slog.String("user_id", userID), slog.Any("error", err))
		internalError(h.logger, w)
		return
	}

	h.logger.InfoContext(ctx, "progress merged", slog.String("user_id", userID), slog.Int("fields", n))

	WriteJSON(h.logger, w, api.MergeProgressResponse{UpdatedAt: at, UpdatedFields: n}, http.StatusOK)
}

// authorize сверяет пользователя из пути с пользователем из токена
func (h *ProgressHandler) authorize(w http.ResponseWriter, r *http.Request) (string, bool) {
	ctx := r.Context()

	tokenUser, ok := GetUserID(ctx)
	if !ok {
		h.logger.ErrorContext(ctx, "user id not found in context")
		WriteError(h.logger, w, http.StatusUnauthorized, api.CodeUnauthenticated, "authentication required")
		return "", false
	}

	pathUser := r.PathValue("userID")
	if err := validation.ValidateUserID(pathUser); err != nil {
		WriteError(h.logger, w, http.StatusBadRequest, api.CodeInvalidArgument, err.Error())
		return "", false
	}

	if pathUser != tokenUser {
		h.logger.WarnContext(ctx, "access to foreign document denied",
			slog.String("user_id", tokenUser),
			slog.String("target_user_id", pathUser))
		WriteError(h.logger, w, http.StatusForbidden, api.CodePermissionDenied, "access denied")
		return "", false
	}

	return pathUser, true
}
