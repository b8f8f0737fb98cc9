package middleware

import (
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoggingMiddleware(t *testing.T) {
	tests := []struct {
		handler        http.HandlerFunc
		name           string
		method         string
		path           string
		expectedLevel  string
		expectedStatus int
	}{
		{
			name:   "GET progress with 200 OK",
			method: http.MethodGet,
			path:   "/api/v1/users/u1/progress",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusOK)
				_, _ = w.Write([]byte("success"))
			},
			expectedLevel:  "INFO",
			expectedStatus: http.StatusOK,
		},
		{
			name:   "Anonymous sign-in with 201 Created",
			method: http.MethodPost,
			path:   "/api/v1/auth/anonymous",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusCreated)
			},
			expectedLevel:  "INFO",
			expectedStatus: http.StatusCreated,
		},
		{
			name:   "Forbidden logs as warning",
			method: http.MethodPatch,
			path:   "/api/v1/users/u2/progress",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusForbidden)
			},
			expectedLevel:  "WARN",
			expectedStatus: http.StatusForbidden,
		},
		{
			name:   "Server error logs as error",
			method: http.MethodPost,
			path:   "/api/v1/auth/token",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusInternalServerError)
			},
			expectedLevel:  "ERROR",
			expectedStatus: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var logBuf strings.Builder
			logger := slog.New(slog.NewTextHandler(&logBuf, nil))

			handler := LoggingMiddleware(logger)(tt.handler)

			req := httptest.NewRequest(tt.method, tt.path, nil)
			req.RemoteAddr = "192.168.1.1:12345"
			req.Header.Set("User-Agent", "TestAgent/1.0")
			w := httptest.NewRecorder()

			handler.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)

			logOutput := logBuf.String()
			assert.Contains(t, logOutput, "HTTP request")
			assert.Contains(t, logOutput, tt.method)
			assert.Contains(t, logOutput, tt.path)
			assert.Contains(t, logOutput, "192.168.1.1:12345")
			assert.Contains(t, logOutput, "TestAgent/1.0")
			assert.Contains(t, logOutput, "level="+tt.expectedLevel)
		})
	}
}

func TestLoggingMiddleware_CapturesResponseMetrics(t *testing.T) {
	var logBuf strings.Builder
	logger := slog.New(slog.NewTextHandler(&logBuf, nil))

	handler := LoggingMiddleware(logger)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("Hello, World!")) // 13 bytes
	}))

	handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/test", nil))

	logOutput := logBuf.String()
	assert.Contains(t, logOutput, "duration_ms")
	assert.Contains(t, logOutput, "bytes_written=13")
	assert.Contains(t, logOutput, "status=200")
}

func TestLoggingMiddleware_RequestID(t *testing.T) {
	logger := setupTestLogger()

	var seen string
	handler := LoggingMiddleware(logger)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = RequestID(r.Context())
	}))

	t.Run("generated when missing", func(t *testing.T) {
		w := httptest.NewRecorder()
		handler.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/test", nil))

		_, err := uuid.Parse(seen)
		require.NoError(t, err)
		assert.Equal(t, seen, w.Header().Get(RequestIDHeader))
	})

	t.Run("propagated from client", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/test", nil)
		req.Header.Set(RequestIDHeader, "abc-123")
		w := httptest.NewRecorder()
		handler.ServeHTTP(w, req)

		assert.Equal(t, "abc-123", seen)
		assert.Equal(t, "abc-123", w.Header().Get(RequestIDHeader))
	})

	t.Run("oversized id is replaced", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/test", nil)
		req.Header.Set(RequestIDHeader, strings.Repeat("x", 100))
		handler.ServeHTTP(httptest.NewRecorder(), req)

		_, err := uuid.Parse(seen)
		require.NoError(t, err)
	})
}

func TestLoggingMiddleware_SkipPaths(t *testing.T) {
	var logBuf strings.Builder
	logger := slog.New(slog.NewTextHandler(&logBuf, nil))

	handler := LoggingMiddleware(logger, "/metrics")(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("ok"))
	}))

	t.Run("Skipped path should not be logged", func(t *testing.T) {
		logBuf.Reset()
		w := httptest.NewRecorder()
		handler.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/metrics", nil))

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Empty(t, logBuf.String())
		// request id назначается и для пропущенных путей
		assert.NotEmpty(t, w.Header().Get(RequestIDHeader))
	})

	t.Run("Non-skipped path should be logged", func(t *testing.T) {
		logBuf.Reset()
		handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/api/v1/health", nil))

		assert.Contains(t, logBuf.String(), "/api/v1/health")
	})
}

func TestResponseWriter_CapturesStatusCode(t *testing.T) {
	tests := []struct {
		name           string
		writeHeader    bool
		statusCode     int
		expectedStatus int
	}{
		{name: "Explicit 201", writeHeader: true, statusCode: http.StatusCreated, expectedStatus: http.StatusCreated},
		{name: "Explicit 404", writeHeader: true, statusCode: http.StatusNotFound, expectedStatus: http.StatusNotFound},
		{name: "Default 200 (no WriteHeader)", expectedStatus: http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rw := &responseWriter{
				ResponseWriter: httptest.NewRecorder(),
				statusCode:     http.StatusOK,
			}

			if tt.writeHeader {
				rw.WriteHeader(tt.statusCode)
			}
			_, _ = rw.Write([]byte("test"))

			assert.Equal(t, tt.expectedStatus, rw.statusCode)
			assert.Equal(t, int64(4), rw.written)
		})
	}
}
