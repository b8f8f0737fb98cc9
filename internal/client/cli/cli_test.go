package cli

import (
	"bytes"
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iudanet/lingosync/internal/client/auth"
	"github.com/iudanet/lingosync/internal/client/iocli"
	"github.com/iudanet/lingosync/internal/client/storage"
	clientsync "github.com/iudanet/lingosync/internal/client/sync"
	"github.com/iudanet/lingosync/internal/models"
)

const testUserID = "0b9a6a56-2d0c-4f5e-9a55-8c3c1e1f4a10"

var testNow = time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)

// memoryProgress локальное хранилище прогресса в памяти
func memoryProgress(values map[string]string) *storage.ProgressStorageMock {
	return &storage.ProgressStorageMock{
		GetFunc: func(ctx context.Context, key string) ([]byte, error) {
			v, ok := values[key]
			if !ok {
				return nil, storage.ErrKeyNotFound
			}
			return []byte(v), nil
		},
		SetFunc: func(ctx context.Context, key string, value []byte) error {
			values[key] = string(value)
			return nil
		},
		KeysFunc: func(ctx context.Context) ([]string, error) {
			keys := make([]string, 0, len(values))
			for k := range values {
				keys = append(keys, k)
			}
			return keys, nil
		},
	}
}

func signedIn() *AuthServiceMock {
	return &AuthServiceMock{
		UserIDFunc: func(ctx context.Context) (string, bool) { return testUserID, true },
		CurrentFunc: func(ctx context.Context) (*storage.AuthData, error) {
			return &storage.AuthData{
				UserID:      testUserID,
				AccessToken: "token",
				ExpiresAt:   testNow.Add(time.Hour),
			}, nil
		},
	}
}

func signedOut() *AuthServiceMock {
	return &AuthServiceMock{
		UserIDFunc: func(ctx context.Context) (string, bool) { return "", false },
		CurrentFunc: func(ctx context.Context) (*storage.AuthData, error) {
			return nil, auth.ErrNotSignedIn
		},
	}
}

func newTestCli(authService AuthService, syncService SyncService, local storage.ProgressStorage) (*Cli, *bytes.Buffer) {
	var out bytes.Buffer
	c := New(iocli.New(&out), authService, syncService, local, time.Second)
	c.now = func() time.Time { return testNow }
	return c, &out
}

func TestCli_Login(t *testing.T) {
	ctx := context.Background()

	t.Run("signs in when no identity stored", func(t *testing.T) {
		authService := signedOut()
		authService.SignInFunc = func(ctx context.Context) (*storage.AuthData, error) {
			return &storage.AuthData{UserID: testUserID}, nil
		}
		c, out := newTestCli(authService, &SyncServiceMock{}, memoryProgress(map[string]string{}))

		require.NoError(t, c.runLogin(ctx))
		assert.Len(t, authService.SignInCalls(), 1)
		assert.Contains(t, out.String(), testUserID)
	})

	t.Run("keeps existing identity", func(t *testing.T) {
		authService := signedIn()
		c, out := newTestCli(authService, &SyncServiceMock{}, memoryProgress(map[string]string{}))

		require.NoError(t, c.runLogin(ctx))
		assert.Empty(t, authService.SignInCalls())
		assert.Contains(t, out.String(), "Already signed in")
	})

	t.Run("sign-in failure", func(t *testing.T) {
		authService := signedOut()
		authService.SignInFunc = func(ctx context.Context) (*storage.AuthData, error) {
			return nil, errors.New("connection refused")
		}
		c, _ := newTestCli(authService, &SyncServiceMock{}, memoryProgress(map[string]string{}))

		err := c.runLogin(ctx)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "connection refused")
	})
}

func TestCli_Logout(t *testing.T) {
	ctx := context.Background()

	authService := &AuthServiceMock{
		SignOutFunc: func(ctx context.Context) error { return auth.ErrNotSignedIn },
	}
	c, out := newTestCli(authService, &SyncServiceMock{}, memoryProgress(map[string]string{}))

	require.NoError(t, c.runLogout(ctx))
	assert.Contains(t, out.String(), "Not signed in")
}

func TestCli_Status(t *testing.T) {
	ctx := context.Background()

	syncService := &SyncServiceMock{
		LastSyncTimesFunc: func(ctx context.Context) (time.Time, time.Time, error) {
			return testNow.Add(-time.Minute), time.Time{}, nil
		},
	}
	local := memoryProgress(map[string]string{"streak": `{}`, "theme": `"dark"`})
	c, out := newTestCli(signedIn(), syncService, local)

	require.NoError(t, c.runStatus(ctx))

	got := out.String()
	assert.Contains(t, got, "Status: Signed in")
	assert.Contains(t, got, testUserID)
	assert.Contains(t, got, "(1m0s ago)")
	assert.Contains(t, got, "Last download: never")
	assert.Contains(t, got, "Local keys:    2")
}

func TestCli_Keys(t *testing.T) {
	local := memoryProgress(map[string]string{"streak": `{}`, "theme": `"dark"`})
	c, out := newTestCli(signedIn(), &SyncServiceMock{}, local)

	require.NoError(t, c.runKeys(context.Background()))

	got := out.String()
	for _, key := range models.AllSyncKeys() {
		assert.Contains(t, got, string(key))
	}
	assert.Regexp(t, `streak\s+\S+\s+stored`, got)
	assert.Regexp(t, `theme\s+local only\s+stored`, got)
}

func TestCli_Get(t *testing.T) {
	ctx := context.Background()
	local := memoryProgress(map[string]string{"streak": `{"currentStreak":3}`})
	c, out := newTestCli(signedIn(), &SyncServiceMock{}, local)

	require.NoError(t, c.runGet(ctx, "streak"))
	assert.Contains(t, out.String(), `"currentStreak": 3`)

	err := c.runGet(ctx, "xp")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no local value")
}

// savingSync мок движка, который отрабатывает save с заданной статистикой
func savingSync(stats clientsync.Stats, flushErr error) *SyncServiceMock {
	return &SyncServiceMock{
		RunFunc: func(ctx context.Context) error {
			<-ctx.Done()
			return nil
		},
		SaveAndSyncFunc: func(ctx context.Context, key string, value []byte) error { return nil },
		FlushFunc:       func(ctx context.Context) error { return flushErr },
		StatsFunc:       func() clientsync.Stats { return stats },
	}
}

func TestCli_Save(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name     string
		key      string
		value    string
		stats    clientsync.Stats
		flushErr error
		wantErr  string
		wantOut  string
	}{
		{
			name:    "uploaded",
			key:     "streak",
			value:   `{"currentStreak":4,"longestStreak":9}`,
			stats:   clientsync.Stats{Enqueued: 1, Completed: 1},
			wantOut: "Uploaded to cloud",
		},
		{
			name:    "not signed in",
			key:     "streak",
			value:   `{"currentStreak":4}`,
			wantOut: "saved on this device only",
		},
		{
			name:    "upload failed",
			key:     "xp",
			value:   `{"totalXP":10}`,
			stats:   clientsync.Stats{Enqueued: 1, Failed: 1, LastError: "server unavailable"},
			wantOut: "Upload failed: server unavailable",
		},
		{
			name:    "rate limited",
			key:     "xp",
			value:   `{"totalXP":10}`,
			stats:   clientsync.Stats{Enqueued: 1, RateLimited: 1},
			wantOut: "postponed by rate limiter",
		},
		{
			name:     "flush timeout",
			key:      "xp",
			value:    `{"totalXP":10}`,
			stats:    clientsync.Stats{Enqueued: 1, Pending: 1},
			flushErr: context.DeadlineExceeded,
			wantOut:  "Upload still pending",
		},
		{
			name:    "queue full",
			key:     "xp",
			value:   `{"totalXP":10}`,
			stats:   clientsync.Stats{Dropped: 1},
			wantOut: "Upload queue is full",
		},
		{
			name:    "local only key",
			key:     "theme",
			value:   `"dark"`,
			wantOut: "not a synced key",
		},
		{
			name:    "invalid json",
			key:     "streak",
			value:   `{"currentStreak":`,
			wantErr: "not valid JSON",
		},
		{
			name:    "wrong shape for synced key",
			key:     "streak",
			value:   `{"currentStreak":"four"}`,
			wantErr: "invalid value",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			syncService := savingSync(tt.stats, tt.flushErr)
			c, out := newTestCli(signedIn(), syncService, memoryProgress(map[string]string{}))

			err := c.runSave(ctx, tt.key, tt.value)
			if tt.wantErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
				assert.Empty(t, syncService.SaveAndSyncCalls())
				return
			}

			require.NoError(t, err)
			require.Len(t, syncService.SaveAndSyncCalls(), 1)
			assert.Equal(t, tt.key, syncService.SaveAndSyncCalls()[0].Key)
			assert.Len(t, syncService.RunCalls(), 1)
			assert.Contains(t, out.String(), tt.wantOut)
		})
	}
}

func TestCli_Push(t *testing.T) {
	ctx := context.Background()

	t.Run("requires sign-in", func(t *testing.T) {
		c, _ := newTestCli(signedOut(), &SyncServiceMock{}, memoryProgress(map[string]string{}))
		require.ErrorIs(t, c.runPush(ctx), errNotSignedIn)
	})

	t.Run("completed", func(t *testing.T) {
		syncService := &SyncServiceMock{
			SyncToCloudFunc: func(ctx context.Context, userID string) *clientsync.Result {
				return &clientsync.Result{
					Operation: clientsync.OpUploadAll,
					Outcome:   clientsync.OutcomeCompleted,
					Keys:      []models.SyncKey{models.KeyStreak, models.KeyXP},
				}
			},
		}
		c, out := newTestCli(signedIn(), syncService, memoryProgress(map[string]string{}))

		require.NoError(t, c.runPush(ctx))
		assert.Equal(t, testUserID, syncService.SyncToCloudCalls()[0].UserID)
		assert.Contains(t, out.String(), "streak, xp")
	})

	t.Run("failed", func(t *testing.T) {
		syncService := &SyncServiceMock{
			SyncToCloudFunc: func(ctx context.Context, userID string) *clientsync.Result {
				return &clientsync.Result{Outcome: clientsync.OutcomeFailed, Err: errors.New("boom")}
			},
		}
		c, _ := newTestCli(signedIn(), syncService, memoryProgress(map[string]string{}))

		err := c.runPush(ctx)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "boom")
	})

	t.Run("rate limited is not an error", func(t *testing.T) {
		syncService := &SyncServiceMock{
			SyncToCloudFunc: func(ctx context.Context, userID string) *clientsync.Result {
				return &clientsync.Result{Outcome: clientsync.OutcomeRateLimited}
			},
		}
		c, out := newTestCli(signedIn(), syncService, memoryProgress(map[string]string{}))

		require.NoError(t, c.runPush(ctx))
		assert.Contains(t, out.String(), "Too many sync requests")
	})
}

func TestCli_Pull(t *testing.T) {
	syncService := &SyncServiceMock{
		SyncFromCloudFunc: func(ctx context.Context, userID string) *clientsync.Result {
			return &clientsync.Result{
				Operation: clientsync.OpDownload,
				Outcome:   clientsync.OutcomeCompleted,
				Keys:      []models.SyncKey{models.KeyStreak, models.KeyBadges, models.KeyXP},
				Adopted:   1,
				Merged:    1,
				Skipped:   1,
			}
		},
	}
	c, out := newTestCli(signedIn(), syncService, memoryProgress(map[string]string{}))

	require.NoError(t, c.runPull(context.Background()))

	got := out.String()
	assert.Contains(t, got, "Adopted from cloud: 1")
	assert.Contains(t, got, "Merged locally:     1")
	assert.Contains(t, got, "Skipped:            1")
}

func TestCli_PushKey(t *testing.T) {
	ctx := context.Background()

	syncService := &SyncServiceMock{
		SyncKeyToCloudFunc: func(ctx context.Context, userID string, key models.SyncKey) *clientsync.Result {
			return &clientsync.Result{Outcome: clientsync.OutcomeNoop}
		},
	}
	c, out := newTestCli(signedIn(), syncService, memoryProgress(map[string]string{}))

	require.NoError(t, c.runPushKey(ctx, "badges"))
	assert.Equal(t, models.KeyBadges, syncService.SyncKeyToCloudCalls()[0].Key)
	assert.Contains(t, out.String(), "Nothing to sync")

	err := c.runPushKey(ctx, "theme")
	require.Error(t, err)
	assert.Len(t, syncService.SyncKeyToCloudCalls(), 1)
}
