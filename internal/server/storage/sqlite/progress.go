package sqlite

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/iudanet/lingosync/internal/server/storage"
)

// GetProgress returns all fields of the user's document
func (s *Storage) GetProgress(ctx context.Context, userID string) (*storage.Document, error) {
	query := `
		SELECT field, value, updated_at
		FROM progress_fields
		WHERE user_id = ?
		ORDER BY field
	`

	rows, err := s.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to query progress: %w", err)
	}
	defer func() {
		_ = rows.Close()
	}()

	doc := &storage.Document{
		UserID: userID,
		Fields: make(map[string]json.RawMessage),
	}

	for rows.Next() {
		var (
			field     string
			value     []byte
			updatedAt time.Time
		)
		if err := rows.Scan(&field, &value, &updatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan progress field: %w", err)
		}

		doc.Fields[field] = json.RawMessage(value)
		if updatedAt.After(doc.UpdatedAt) {
			doc.UpdatedAt = updatedAt
		}
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate progress: %w", err)
	}

	if len(doc.Fields) == 0 {
		return nil, storage.ErrDocumentNotFound
	}

	return doc, nil
}

// MergeProgress upserts the given fields in one transaction
func (s *Storage) MergeProgress(ctx context.Context, userID string, fields map[string]json.RawMessage, at time.Time) (int, error) {
	if len(fields) == 0 {
		return 0, nil
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	query := `
		INSERT INTO progress_fields (user_id, field, value, updated_at)
		VALUES (?, ?, ?, ?)
		ON CONFLICT (user_id, field) DO UPDATE SET
			value = excluded.value,
			updated_at = excluded.updated_at
	`

	stmt, err := tx.PrepareContext(ctx, query)
	if err != nil {
		return 0, fmt.Errorf("failed to prepare upsert: %w", err)
	}
	defer func() {
		_ = stmt.Close()
	}()

	for field, value := range fields {
		if _, err := stmt.ExecContext(ctx, userID, field, []byte(value), at); err != nil {
			if strings.Contains(err.Error(), "FOREIGN KEY constraint failed") {
				return 0, storage.ErrUserNotFound
			}
			return 0, fmt.Errorf("failed to upsert field %q: %w", field, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("failed to commit transaction: %w", err)
	}

	return len(fields), nil
}
