package boltdb

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.etcd.io/bbolt"
)

func TestStorage_SyncTime(t *testing.T) {
	ctx := context.Background()
	store := newTestStorage(t)

	// Изначально время нулевое
	at, err := store.GetSyncTime(ctx, "upload")
	require.NoError(t, err)
	assert.True(t, at.IsZero())

	upload := time.Date(2026, 2, 10, 12, 30, 0, 123, time.UTC)
	download := upload.Add(time.Minute)

	require.NoError(t, store.SaveSyncTime(ctx, "upload", upload))
	require.NoError(t, store.SaveSyncTime(ctx, "download", download))

	at, err = store.GetSyncTime(ctx, "upload")
	require.NoError(t, err)
	assert.True(t, upload.Equal(at))

	at, err = store.GetSyncTime(ctx, "download")
	require.NoError(t, err)
	assert.True(t, download.Equal(at))

	// Перезапись
	later := download.Add(time.Hour)
	require.NoError(t, store.SaveSyncTime(ctx, "upload", later))
	at, err = store.GetSyncTime(ctx, "upload")
	require.NoError(t, err)
	assert.True(t, later.Equal(at))
}

func TestStorage_SyncTime_BucketMissing(t *testing.T) {
	ctx := context.Background()
	store := newTestStorage(t)

	err := store.db.Update(func(tx *bbolt.Tx) error {
		return tx.DeleteBucket(bucketMetadata)
	})
	require.NoError(t, err)

	err = store.SaveSyncTime(ctx, "upload", time.Now())
	assert.ErrorContains(t, err, "metadata bucket not found")

	_, err = store.GetSyncTime(ctx, "upload")
	assert.ErrorContains(t, err, "metadata bucket not found")
}
