package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/iudanet/lingosync/internal/client/api"
	"github.com/iudanet/lingosync/internal/client/auth"
	"github.com/iudanet/lingosync/internal/client/iocli"
	"github.com/iudanet/lingosync/internal/client/storage/boltdb"
	clientsync "github.com/iudanet/lingosync/internal/client/sync"
)

// App собранный клиент: локальное хранилище, сервисы и Cli
type App struct {
	Cli    *Cli
	Logger *slog.Logger
	store  *boltdb.Storage
	logs   io.Closer
}

// Open открывает локальное хранилище и связывает сервисы клиента
func Open(ctx context.Context, cfg Config, out iocli.IO, stderr io.Writer) (*App, error) {
	logger, logs, err := NewLogger(cfg, stderr)
	if err != nil {
		return nil, err
	}

	store, err := boltdb.New(ctx, cfg.DB)
	if err != nil {
		_ = logs.Close()
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	apiClient := api.NewClient(cfg.Server)
	authService := auth.NewService(apiClient, store, logger)
	// auth выдает токены через тот же клиент, поэтому источник задается после создания
	apiClient.SetTokenSource(authService)

	syncCfg := clientsync.DefaultConfig()
	syncCfg.QueueSize = cfg.QueueSize

	syncService := clientsync.NewService(syncCfg, store, store, apiClient, authService, logger)

	logger.Debug("client opened", "server", cfg.Server, "db", cfg.DB)

	return &App{
		Cli:    New(out, authService, syncService, store, cfg.FlushTimeout),
		Logger: logger,
		store:  store,
		logs:   logs,
	}, nil
}

// Close закрывает хранилище и файл логов
func (a *App) Close() error {
	return errors.Join(a.store.Close(), a.logs.Close())
}
