package middleware

import (
	"log/slog"
	"net/http"
	"strings"

	"github.com/iudanet/lingosync/internal/server/handlers"
	"github.com/iudanet/lingosync/internal/server/jwt"
	"github.com/iudanet/lingosync/pkg/api"
)

// TokenValidator проверяет access token
type TokenValidator interface {
	ValidateAccessToken(token string) (*jwt.Claims, error)
}

// AuthMiddleware создает middleware для проверки JWT токена
func AuthMiddleware(logger *slog.Logger, tokens TokenValidator) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()

			authHeader := r.Header.Get("Authorization")
			if authHeader == "" {
				logger.WarnContext(ctx, "Missing Authorization header")
				handlers.WriteError(logger, w, http.StatusUnauthorized, api.CodeUnauthenticated, "missing token")
				return
			}

			// Ожидаем формат: "Bearer <token>"
			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") || parts[1] == "" {
				// сам заголовок не логируем, в нем может быть токен
				logger.WarnContext(ctx, "Invalid Authorization header format")
				handlers.WriteError(logger, w, http.StatusUnauthorized, api.CodeUnauthenticated, "invalid token format")
				return
			}

			claims, err := tokens.ValidateAccessToken(parts[1])
			if err != nil {
				logger.WarnContext(ctx, "Invalid access token", "error", err)
				handlers.WriteError(logger, w, http.StatusUnauthorized, api.CodeUnauthenticated, "invalid token")
				return
			}

			logger.DebugContext(ctx, "User authenticated", "user_id", claims.UserID())

			next.ServeHTTP(w, r.WithContext(handlers.WithUserID(ctx, claims.UserID())))
		})
	}
}
