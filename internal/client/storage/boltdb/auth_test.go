package boltdb

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.etcd.io/bbolt"

	"github.com/iudanet/lingosync/internal/client/storage"
)

func TestStorage_SaveGetDeleteAuth(t *testing.T) {
	ctx := context.Background()
	store := newTestStorage(t)

	auth := &storage.AuthData{
		UserID:       "user-id-123",
		DeviceSecret: "device-secret",
		AccessToken:  "access-token",
		ExpiresAt:    time.Now().Add(time.Hour).UTC().Truncate(time.Second),
	}

	// До сохранения GetAuth выдаёт ErrAuthNotFound
	_, err := store.GetAuth(ctx)
	assert.ErrorIs(t, err, storage.ErrAuthNotFound)

	require.NoError(t, store.SaveAuth(ctx, auth))

	got, err := store.GetAuth(ctx)
	require.NoError(t, err)
	assert.Equal(t, auth.UserID, got.UserID)
	assert.Equal(t, auth.DeviceSecret, got.DeviceSecret)
	assert.Equal(t, auth.AccessToken, got.AccessToken)
	assert.True(t, auth.ExpiresAt.Equal(got.ExpiresAt))

	require.NoError(t, store.DeleteAuth(ctx))

	_, err = store.GetAuth(ctx)
	assert.ErrorIs(t, err, storage.ErrAuthNotFound)

	// Повторное удаление
	err = store.DeleteAuth(ctx)
	assert.ErrorIs(t, err, storage.ErrAuthNotFound)
}

func TestAuthData_Expired(t *testing.T) {
	now := time.Date(2026, 2, 10, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		auth storage.AuthData
		name string
		want bool
	}{
		{name: "valid", auth: storage.AuthData{AccessToken: "t", ExpiresAt: now.Add(time.Minute)}, want: false},
		{name: "expired", auth: storage.AuthData{AccessToken: "t", ExpiresAt: now.Add(-time.Minute)}, want: true},
		{name: "expires now", auth: storage.AuthData{AccessToken: "t", ExpiresAt: now}, want: true},
		{name: "no token", auth: storage.AuthData{ExpiresAt: now.Add(time.Hour)}, want: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.auth.Expired(now))
		})
	}
}

func TestStorage_Auth_BucketMissing(t *testing.T) {
	ctx := context.Background()
	store := newTestStorage(t)

	// Удаляем bucket auth напрямую
	err := store.db.Update(func(tx *bbolt.Tx) error {
		return tx.DeleteBucket(bucketAuth)
	})
	require.NoError(t, err)

	_, err = store.GetAuth(ctx)
	assert.ErrorContains(t, err, "auth bucket not found")

	err = store.SaveAuth(ctx, &storage.AuthData{UserID: "u"})
	assert.ErrorContains(t, err, "auth bucket not found")

	err = store.DeleteAuth(ctx)
	assert.ErrorContains(t, err, "auth bucket not found")
}
