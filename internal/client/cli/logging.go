package cli

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"golang.org/x/term"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Параметры ротации файла логов
const (
	logMaxSizeMB  = 10
	logMaxBackups = 3
	logMaxAgeDays = 28
)

type nopCloser struct{}

func (nopCloser) Close() error { return nil }

// NewLogger создает логгер клиента.
// С log_file логи пишутся в ротируемый файл в JSON, иначе в stderr:
// текстом, если stderr - терминал, и JSON в остальных случаях.
func NewLogger(cfg Config, stderr io.Writer) (*slog.Logger, io.Closer, error) {
	level, err := parseLevel(cfg.LogLevel)
	if err != nil {
		return nil, nil, err
	}
	opts := &slog.HandlerOptions{Level: level}

	if cfg.LogFile != "" {
		rotator := &lumberjack.Logger{
			Filename:   cfg.LogFile,
			MaxSize:    logMaxSizeMB,
			MaxBackups: logMaxBackups,
			MaxAge:     logMaxAgeDays,
			Compress:   true,
		}
		return slog.New(slog.NewJSONHandler(rotator, opts)), rotator, nil
	}

	if isTerminal(stderr) {
		return slog.New(slog.NewTextHandler(stderr, opts)), nopCloser{}, nil
	}
	return slog.New(slog.NewJSONHandler(stderr, opts)), nopCloser{}, nil
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

func parseLevel(s string) (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(s)); err != nil {
		return slog.LevelInfo, fmt.Errorf("invalid log level %q: %w", s, err)
	}
	return level, nil
}
