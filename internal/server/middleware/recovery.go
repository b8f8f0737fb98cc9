package middleware

import (
	"log/slog"
	"net/http"
	"runtime/debug"

	"github.com/iudanet/lingosync/internal/server/handlers"
	"github.com/iudanet/lingosync/pkg/api"
)

// RecoveryMiddleware создает middleware для восстановления после паники
// Перехватывает panic, логирует стек вызовов и возвращает 500 в формате ErrorResponse
func RecoveryMiddleware(logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				if err := recover(); err != nil {
					// http.ErrAbortHandler - штатный способ прервать ответ, пробрасываем дальше
					if err == http.ErrAbortHandler {
						panic(err)
					}

					logger.Error("Panic recovered",
						"error", err,
						"method", r.Method,
						"path", r.URL.Path,
						"remote_addr", r.RemoteAddr,
						"request_id", RequestID(r.Context()),
						"stack", string(debug.Stack()),
					)

					// детали паники клиенту не раскрываем
					handlers.WriteError(logger, w, http.StatusInternalServerError, api.CodeInternal, "internal server error")
				}
			}()

			next.ServeHTTP(w, r)
		})
	}
}
