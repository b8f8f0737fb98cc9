package sqlite

import (
	"context"
	"database/sql"
	"embed"
	"fmt"
	"io"
	"io/fs"
	"log/slog"

	"github.com/pressly/goose/v3"
	_ "modernc.org/sqlite" // SQLite driver

	"github.com/iudanet/lingosync/internal/server/storage"
)

//go:embed migrations/*.sql
var embedMigrations embed.FS

// Проверка реализации интерфейсов
var (
	_ storage.UserStorage     = (*Storage)(nil)
	_ storage.ProgressStorage = (*Storage)(nil)
)

// pragmas применяются к единственному соединению пула
var pragmas = []string{
	"PRAGMA journal_mode = WAL;",
	"PRAGMA synchronous = NORMAL;",
	"PRAGMA foreign_keys = ON;",
	"PRAGMA busy_timeout = 5000;",
}

// Storage хранилище пользователей и документов прогресса в SQLite
type Storage struct {
	db     *sql.DB
	logger *slog.Logger
}

// Option настраивает Storage
type Option func(*Storage)

// WithLogger задает логгер для сообщений о миграциях
func WithLogger(logger *slog.Logger) Option {
	return func(s *Storage) {
		s.logger = logger
	}
}

// New opens the database at dbPath and applies pending migrations.
// Use ":memory:" for an in-memory database in tests.
func New(ctx context.Context, dbPath string, opts ...Option) (*Storage, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// один писатель; для :memory: еще и одна общая база
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)

	s := &Storage{
		db:     db,
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(s)
	}

	if err := s.init(ctx); err != nil {
		_ = db.Close()
		return nil, err
	}

	return s, nil
}

func (s *Storage) init(ctx context.Context) error {
	if err := s.db.PingContext(ctx); err != nil {
		return fmt.Errorf("failed to ping database: %w", err)
	}

	for _, pragma := range pragmas {
		if _, err := s.db.ExecContext(ctx, pragma); err != nil {
			return fmt.Errorf("failed to set pragma %q: %w", pragma, err)
		}
	}

	if err := s.migrate(ctx); err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}
	return nil
}

// migrate применяет миграции из embedded FS
func (s *Storage) migrate(ctx context.Context) error {
	fsys, err := fs.Sub(embedMigrations, "migrations")
	if err != nil {
		return err
	}

	provider, err := goose.NewProvider(goose.DialectSQLite3, s.db, fsys)
	if err != nil {
		return fmt.Errorf("goose provider: %w", err)
	}

	results, err := provider.Up(ctx)
	if err != nil {
		return fmt.Errorf("goose up failed: %w", err)
	}

	for _, r := range results {
		s.logger.Info("migration applied",
			"version", r.Source.Version,
			"path", r.Source.Path,
			"duration", r.Duration,
		)
	}

	return nil
}

// Close closes the database connection
func (s *Storage) Close() error {
	return s.db.Close()
}

// Ping проверяет доступность базы (для health check)
func (s *Storage) Ping(ctx context.Context) error {
	return s.db.PingContext(ctx)
}
