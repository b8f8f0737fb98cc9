package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/iudanet/lingosync/internal/server"
)

var (
	// Version information set via ldflags during build
	Version   = "dev"
	BuildDate = "unknown"
	GitCommit = "unknown"
)

const envPrefix = "LINGOSYNC_SERVER_"

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, showVersion, err := parseFlags(os.Args[1:])
	if err != nil {
		return err
	}

	// Show version and exit if requested
	if showVersion {
		printVersion()
		return nil
	}

	level, err := server.ParseLogLevel(cfg.LogLevel)
	if err != nil {
		return err
	}
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	logger.Info("LingoSync server starting",
		"version", Version,
		"addr", cfg.Addr,
		"db", cfg.DBPath,
		"token_ttl", cfg.TokenTTL.String(),
	)

	srv, err := server.New(ctx, cfg, logger, Version)
	if err != nil {
		return err
	}
	defer func() {
		if err := srv.Close(); err != nil {
			logger.Error("Failed to close storage", "error", err)
		}
	}()

	if err := srv.Run(ctx); err != nil {
		return err
	}

	logger.Info("LingoSync server stopped")
	return nil
}

// parseFlags разбирает флаги; значения по умолчанию берутся из LINGOSYNC_SERVER_* переменных
func parseFlags(args []string) (server.Config, bool, error) {
	fs := flag.NewFlagSet("lingosync-server", flag.ContinueOnError)

	var cfg server.Config
	showVersion := fs.Bool("version", false, "Show version information")
	fs.StringVar(&cfg.Addr, "addr", getEnv("ADDR", server.DefaultAddr), "HTTP listen address")
	fs.StringVar(&cfg.DBPath, "db", getEnv("DB", server.DefaultDBPath), "Path to SQLite database")
	fs.StringVar(&cfg.JWTSecret, "jwt-secret", getEnv("JWT_SECRET", ""), "Secret for signing access tokens")
	fs.StringVar(&cfg.LogLevel, "log-level", getEnv("LOG_LEVEL", server.DefaultLogLevel), "Log level (debug, info, warn, error)")

	ttl, err := getEnvDuration("TOKEN_TTL", server.DefaultTokenTTL)
	if err != nil {
		return cfg, false, err
	}
	fs.DurationVar(&cfg.TokenTTL, "token-ttl", ttl, "Access token lifetime")
	fs.DurationVar(&cfg.ShutdownTimeout, "shutdown-timeout", server.DefaultShutdownTimeout, "Graceful shutdown timeout")

	if err := fs.Parse(args); err != nil {
		return cfg, false, err
	}

	return cfg, *showVersion, nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(envPrefix + key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvDuration(key string, defaultValue time.Duration) (time.Duration, error) {
	value := os.Getenv(envPrefix + key)
	if value == "" {
		return defaultValue, nil
	}
	d, err := time.ParseDuration(value)
	if err != nil {
		return 0, fmt.Errorf("invalid %s%s: %w", envPrefix, key, err)
	}
	return d, nil
}

func printVersion() {
	fmt.Printf("LingoSync Server\n")
	fmt.Printf("Version:    %s\n", Version)
	fmt.Printf("Build Date: %s\n", BuildDate)
	fmt.Printf("Git Commit: %s\n", GitCommit)
}
