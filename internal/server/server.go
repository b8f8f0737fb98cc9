package server

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"golang.org/x/sync/errgroup"

	"github.com/iudanet/lingosync/internal/ratelimit"
	"github.com/iudanet/lingosync/internal/server/handlers"
	"github.com/iudanet/lingosync/internal/server/jwt"
	"github.com/iudanet/lingosync/internal/server/middleware"
	"github.com/iudanet/lingosync/internal/server/storage/sqlite"
)

const (
	janitorEvery = time.Minute
	janitorIdle  = 10 * time.Minute
)

// Server собирает хранилище, обработчики и middleware в один HTTP сервер
type Server struct {
	logger   *slog.Logger
	store    *sqlite.Storage
	limiter  *ratelimit.Limiter
	registry *prometheus.Registry
	handler  http.Handler
	cfg      Config
}

// New открывает хранилище и строит маршруты
func New(ctx context.Context, cfg Config, logger *slog.Logger, version string) (*Server, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	store, err := sqlite.New(ctx, cfg.DBPath, sqlite.WithLogger(logger))
	if err != nil {
		return nil, fmt.Errorf("failed to open storage: %w", err)
	}

	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	s := &Server{
		cfg:      cfg,
		logger:   logger,
		store:    store,
		limiter:  ratelimit.New(),
		registry: registry,
	}
	s.handler = s.routes(jwt.NewService(cfg.JWTSecret, cfg.TokenTTL), version)

	return s, nil
}

// Handler returns the root HTTP handler
func (s *Server) Handler() http.Handler {
	return s.handler
}

func (s *Server) routes(tokens *jwt.Service, version string) http.Handler {
	authHandler := handlers.NewAuthHandler(s.logger, s.store, tokens)
	progressHandler := handlers.NewProgressHandler(s.logger, s.store)
	healthHandler := handlers.NewHealthHandler(s.logger, s.store, version)

	authLimit := middleware.RateLimitMiddleware(s.limiter, "auth", ratelimit.Auth, s.logger)
	readLimit := middleware.RateLimitMiddleware(s.limiter, "read", ratelimit.RemoteRead, s.logger)
	writeLimit := middleware.RateLimitMiddleware(s.limiter, "write", ratelimit.RemoteWrite, s.logger)
	requireAuth := middleware.AuthMiddleware(s.logger, tokens)

	mux := http.NewServeMux()

	mux.Handle("POST /api/v1/auth/anonymous", authLimit(http.HandlerFunc(authHandler.Anonymous)))
	mux.Handle("POST /api/v1/auth/token", authLimit(http.HandlerFunc(authHandler.Token)))

	mux.Handle("GET /api/v1/users/{userID}/progress", readLimit(requireAuth(http.HandlerFunc(progressHandler.Get))))
	mux.Handle("PATCH /api/v1/users/{userID}/progress", writeLimit(requireAuth(http.HandlerFunc(progressHandler.Merge))))

	mux.HandleFunc("GET /api/v1/health", healthHandler.Health)
	mux.Handle("GET /metrics", promhttp.HandlerFor(s.registry, promhttp.HandlerOpts{Registry: s.registry}))

	// Цепочка: recovery -> logging -> metrics -> mux
	metrics := middleware.NewHTTPMetrics(s.registry)
	var h http.Handler = metrics.Middleware(mux)
	h = middleware.LoggingMiddleware(s.logger, "/metrics", "/api/v1/health")(h)
	h = middleware.RecoveryMiddleware(s.logger)(h)

	return h
}

// Run слушает cfg.Addr до отмены ctx, затем корректно завершает сервер
func (s *Server) Run(ctx context.Context) error {
	ln, err := net.Listen("tcp", s.cfg.Addr)
	if err != nil {
		return fmt.Errorf("failed to listen on %s: %w", s.cfg.Addr, err)
	}
	return s.Serve(ctx, ln)
}

// Serve обслуживает соединения из ln до отмены ctx
func (s *Server) Serve(ctx context.Context, ln net.Listener) error {
	srv := &http.Server{
		Handler:           s.handler,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       30 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       2 * time.Minute,
		ErrorLog:          slog.NewLogLogger(s.logger.Handler(), slog.LevelWarn),
	}

	g, gctx := errgroup.WithContext(ctx)

	s.limiter.StartJanitor(gctx, janitorEvery, janitorIdle)

	g.Go(func() error {
		s.logger.Info("Server listening", "addr", ln.Addr().String())
		if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("server error: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		s.logger.Info("Shutting down...")

		// ctx уже отменен, поэтому таймаут отсчитываем от свежего контекста
		shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), s.cfg.ShutdownTimeout)
		defer cancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("server shutdown: %w", err)
		}
		return nil
	})

	return g.Wait()
}

// Close closes the storage
func (s *Server) Close() error {
	return s.store.Close()
}
