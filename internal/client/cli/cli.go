package cli

import (
	"context"
	"time"

	"github.com/iudanet/lingosync/internal/client/iocli"
	"github.com/iudanet/lingosync/internal/client/storage"
	clientsync "github.com/iudanet/lingosync/internal/client/sync"
	"github.com/iudanet/lingosync/internal/models"
)

//go:generate moq -out authservice_mock.go . AuthService

// AuthService анонимная идентификация устройства
type AuthService interface {
	UserID(ctx context.Context) (string, bool)
	Current(ctx context.Context) (*storage.AuthData, error)
	SignIn(ctx context.Context) (*storage.AuthData, error)
	SignOut(ctx context.Context) error
}

//go:generate moq -out syncservice_mock.go . SyncService

// SyncService движок синхронизации прогресса
type SyncService interface {
	SyncToCloud(ctx context.Context, userID string) *clientsync.Result
	SyncFromCloud(ctx context.Context, userID string) *clientsync.Result
	SyncKeyToCloud(ctx context.Context, userID string, key models.SyncKey) *clientsync.Result
	SaveAndSync(ctx context.Context, key string, value []byte) error
	LastSyncTimes(ctx context.Context) (time.Time, time.Time, error)
	Run(ctx context.Context) error
	Flush(ctx context.Context) error
	Stats() clientsync.Stats
}

// Cli выполняет команды клиента
type Cli struct {
	io           iocli.IO
	authService  AuthService
	syncService  SyncService
	local        storage.ProgressStorage
	now          func() time.Time
	flushTimeout time.Duration
}

// New creates a new Cli
func New(out iocli.IO, authService AuthService, syncService SyncService, local storage.ProgressStorage, flushTimeout time.Duration) *Cli {
	return &Cli{
		io:           out,
		authService:  authService,
		syncService:  syncService,
		local:        local,
		now:          time.Now,
		flushTimeout: flushTimeout,
	}
}
