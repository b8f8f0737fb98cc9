package server

import (
	"fmt"
	"log/slog"
	"time"
)

// Значения по умолчанию для конфигурации сервера
const (
	DefaultAddr            = ":8080"
	DefaultDBPath          = "lingosync.db"
	DefaultTokenTTL        = time.Hour
	DefaultShutdownTimeout = 10 * time.Second
	DefaultLogLevel        = "info"

	minSecretLen = 16
)

// Config содержит параметры запуска сервера
type Config struct {
	Addr            string
	DBPath          string
	JWTSecret       string
	LogLevel        string
	TokenTTL        time.Duration
	ShutdownTimeout time.Duration
}

// Validate проверяет конфигурацию
func (c Config) Validate() error {
	if c.Addr == "" {
		return fmt.Errorf("addr is required")
	}
	if c.DBPath == "" {
		return fmt.Errorf("db path is required")
	}
	if len(c.JWTSecret) < minSecretLen {
		return fmt.Errorf("jwt secret must be at least %d characters", minSecretLen)
	}
	if c.TokenTTL <= 0 {
		return fmt.Errorf("token ttl must be positive, got %s", c.TokenTTL)
	}
	if c.ShutdownTimeout <= 0 {
		return fmt.Errorf("shutdown timeout must be positive, got %s", c.ShutdownTimeout)
	}
	if _, err := ParseLogLevel(c.LogLevel); err != nil {
		return err
	}
	return nil
}

// ParseLogLevel разбирает уровень логирования (debug, info, warn, error)
func ParseLogLevel(s string) (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(s)); err != nil {
		return slog.LevelInfo, fmt.Errorf("invalid log level %q: %w", s, err)
	}
	return level, nil
}
