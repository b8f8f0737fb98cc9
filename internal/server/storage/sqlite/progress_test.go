package sqlite

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iudanet/lingosync/internal/server/storage"
)

func TestProgressStorage_GetProgress_NotFound(t *testing.T) {
	ctx := context.Background()
	s, cleanup := setupTestStorage(t)
	defer cleanup()

	userID := createTestUser(t, ctx, s)

	_, err := s.GetProgress(ctx, userID)
	assert.ErrorIs(t, err, storage.ErrDocumentNotFound)
}

func TestProgressStorage_MergeProgress(t *testing.T) {
	ctx := context.Background()
	s, cleanup := setupTestStorage(t)
	defer cleanup()

	userID := createTestUser(t, ctx, s)
	first := time.Date(2026, 2, 10, 12, 0, 0, 0, time.UTC)
	second := first.Add(time.Hour)

	n, err := s.MergeProgress(ctx, userID, map[string]json.RawMessage{
		"streak": json.RawMessage(`{"currentStreak":3}`),
		"xp":     json.RawMessage(`{"totalXP":10}`),
	}, first)
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	// Частичная запись: streak не упоминается и должен сохраниться
	n, err = s.MergeProgress(ctx, userID, map[string]json.RawMessage{
		"xp":     json.RawMessage(`{"totalXP":20}`),
		"badges": json.RawMessage(`{"first":true}`),
	}, second)
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	doc, err := s.GetProgress(ctx, userID)
	require.NoError(t, err)
	assert.Equal(t, userID, doc.UserID)
	require.Len(t, doc.Fields, 3)
	assert.JSONEq(t, `{"currentStreak":3}`, string(doc.Fields["streak"]))
	assert.JSONEq(t, `{"totalXP":20}`, string(doc.Fields["xp"]))
	assert.JSONEq(t, `{"first":true}`, string(doc.Fields["badges"]))
	assert.True(t, second.Equal(doc.UpdatedAt), "updated_at is the latest field write")
}

func TestProgressStorage_MergeProgress_Empty(t *testing.T) {
	ctx := context.Background()
	s, cleanup := setupTestStorage(t)
	defer cleanup()

	userID := createTestUser(t, ctx, s)

	n, err := s.MergeProgress(ctx, userID, nil, time.Now())
	require.NoError(t, err)
	assert.Zero(t, n)
}

func TestProgressStorage_MergeProgress_UnknownUser(t *testing.T) {
	s, cleanup := setupTestStorage(t)
	defer cleanup()

	_, err := s.MergeProgress(context.Background(), uuid.New().String(), map[string]json.RawMessage{
		"xp": json.RawMessage(`{"totalXP":1}`),
	}, time.Now())
	assert.ErrorIs(t, err, storage.ErrUserNotFound)
}

func TestProgressStorage_UsersAreIsolated(t *testing.T) {
	ctx := context.Background()
	s, cleanup := setupTestStorage(t)
	defer cleanup()

	alice := createTestUser(t, ctx, s)
	bob := createTestUser(t, ctx, s)

	_, err := s.MergeProgress(ctx, alice, map[string]json.RawMessage{"xp": json.RawMessage(`{"totalXP":1}`)}, time.Now())
	require.NoError(t, err)

	_, err = s.GetProgress(ctx, bob)
	assert.ErrorIs(t, err, storage.ErrDocumentNotFound)
}
