package boltdb

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.etcd.io/bbolt"

	"github.com/iudanet/lingosync/internal/client/storage"
)

func TestStorage_GetSet(t *testing.T) {
	ctx := context.Background()
	store := newTestStorage(t)

	// До сохранения ключа нет
	_, err := store.Get(ctx, "streak")
	assert.ErrorIs(t, err, storage.ErrKeyNotFound)

	value := []byte(`{"currentStreak":3,"longestStreak":5,"lastActiveDate":"2026-02-10"}`)
	require.NoError(t, store.Set(ctx, "streak", value))

	got, err := store.Get(ctx, "streak")
	require.NoError(t, err)
	assert.Equal(t, value, got)

	// Перезапись
	require.NoError(t, store.Set(ctx, "streak", []byte(`{"currentStreak":4}`)))
	got, err = store.Get(ctx, "streak")
	require.NoError(t, err)
	assert.Equal(t, `{"currentStreak":4}`, string(got))
}

func TestStorage_GetReturnsCopy(t *testing.T) {
	ctx := context.Background()
	store := newTestStorage(t)

	require.NoError(t, store.Set(ctx, "badges", []byte(`{"first":true}`)))

	got, err := store.Get(ctx, "badges")
	require.NoError(t, err)
	got[0] = 'X'

	again, err := store.Get(ctx, "badges")
	require.NoError(t, err)
	assert.Equal(t, `{"first":true}`, string(again))
}

func TestStorage_SetStoresBytesVerbatim(t *testing.T) {
	ctx := context.Background()
	store := newTestStorage(t)

	// Хранилище не интерпретирует значения: мусор тоже сохраняется
	require.NoError(t, store.Set(ctx, "xp", []byte("not json")))

	got, err := store.Get(ctx, "xp")
	require.NoError(t, err)
	assert.Equal(t, "not json", string(got))
}

func TestStorage_SetEmptyKey(t *testing.T) {
	store := newTestStorage(t)

	err := store.Set(context.Background(), "", []byte(`1`))
	assert.Error(t, err)
}

func TestStorage_Keys(t *testing.T) {
	ctx := context.Background()
	store := newTestStorage(t)

	keys, err := store.Keys(ctx)
	require.NoError(t, err)
	assert.Empty(t, keys)

	for _, k := range []string{"xp", "streak", "theme"} {
		require.NoError(t, store.Set(ctx, k, []byte(`{}`)))
	}

	keys, err = store.Keys(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"streak", "theme", "xp"}, keys)
}

func TestStorage_Progress_BucketMissing(t *testing.T) {
	ctx := context.Background()
	store := newTestStorage(t)

	err := store.db.Update(func(tx *bbolt.Tx) error {
		return tx.DeleteBucket(bucketProgress)
	})
	require.NoError(t, err)

	_, err = store.Get(ctx, "xp")
	assert.ErrorContains(t, err, "progress bucket not found")

	err = store.Set(ctx, "xp", []byte(`{}`))
	assert.ErrorContains(t, err, "progress bucket not found")

	_, err = store.Keys(ctx)
	assert.ErrorContains(t, err, "progress bucket not found")
}
