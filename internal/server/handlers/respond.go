package handlers

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/iudanet/lingosync/pkg/api"
)

// WriteJSON отправляет JSON ответ
func WriteJSON(logger *slog.Logger, w http.ResponseWriter, data any, statusCode int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		logger.Error("failed to encode JSON response", slog.Any("error", err))
	}
}

// WriteError отправляет JSON ответ с ошибкой.
// code - машиночитаемый код из pkg/api, по нему клиент решает, повторять ли запрос.
func WriteError(logger *slog.Logger, w http.ResponseWriter, statusCode int, code, message string) {
	resp := api.ErrorResponse{
		Error:   http.StatusText(statusCode),
		Code:    code,
		Message: message,
	}
	WriteJSON(logger, w, resp, statusCode)
}

func internalError(logger *slog.Logger, w http.ResponseWriter) {
	WriteError(logger, w, http.StatusInternalServerError, api.CodeInternal, "internal server error")
}
