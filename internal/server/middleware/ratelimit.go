package middleware

import (
	"log/slog"
	"math"
	"net"
	"net/http"
	"strconv"
	"strings"

	"github.com/iudanet/lingosync/internal/ratelimit"
	"github.com/iudanet/lingosync/internal/server/handlers"
	"github.com/iudanet/lingosync/pkg/api"
)

// RateLimitMiddleware создает middleware для ограничения частоты запросов по IP.
// Бакеты хранятся в общем limiter под ключом "<scope>:<ip>", так что разные
// группы маршрутов с одним limiter не расходуют токены друг друга.
func RateLimitMiddleware(limiter *ratelimit.Limiter, scope string, policy ratelimit.Policy, logger *slog.Logger) func(http.Handler) http.Handler {
	retryAfter := strconv.Itoa(int(math.Ceil(policy.Refill.Seconds())))

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ip := getClientIP(r)

			if !limiter.AllowPolicy(scope+":"+ip, policy) {
				logger.WarnContext(r.Context(), "Rate limit exceeded",
					"ip", ip,
					"scope", scope,
					"method", r.Method,
					"path", r.URL.Path,
				)

				w.Header().Set("Retry-After", retryAfter)
				handlers.WriteError(logger, w, http.StatusTooManyRequests, api.CodeResourceExhausted,
					"rate limit exceeded, please try again later")
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

// getClientIP извлекает IP адрес клиента из запроса
// Проверяет заголовки X-Forwarded-For и X-Real-IP для прокси
func getClientIP(r *http.Request) string {
	// Берем первый IP из списка (реальный клиент)
	if xff := r.Header.Get("X-Forwarded-For"); xff != "" {
		first, _, _ := strings.Cut(xff, ",")
		if ip := strings.TrimSpace(first); ip != "" {
			return ip
		}
	}

	if xri := strings.TrimSpace(r.Header.Get("X-Real-IP")); xri != "" {
		return xri
	}

	// порт отбрасываем, иначе каждое новое соединение получит свой бакет
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
