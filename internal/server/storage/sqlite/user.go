package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/iudanet/lingosync/internal/models"
	"github.com/iudanet/lingosync/internal/server/storage"
)

// CreateUser creates a new user in the storage
func (s *Storage) CreateUser(ctx context.Context, user *models.User) error {
	query := `
		INSERT INTO users (id, secret_hash, secret_salt, created_at, last_seen)
		VALUES (?, ?, ?, ?, ?)
	`

	_, err := s.db.ExecContext(ctx, query,
		user.ID,
		user.SecretHash,
		user.SecretSalt,
		user.CreatedAt,
		user.LastSeen,
	)

	if err != nil {
		// Проверяем на duplicate id
		if strings.Contains(err.Error(), "UNIQUE constraint failed: users.id") {
			return storage.ErrUserAlreadyExists
		}
		return fmt.Errorf("failed to insert user: %w", err)
	}

	return nil
}

// GetUserByID retrieves user by ID
func (s *Storage) GetUserByID(ctx context.Context, userID string) (*models.User, error) {
	query := `
		SELECT id, secret_hash, secret_salt, created_at, last_seen
		FROM users
		WHERE id = ?
	`

	user := &models.User{}
	var lastSeen sql.NullTime

	err := s.db.QueryRowContext(ctx, query, userID).Scan(
		&user.ID,
		&user.SecretHash,
		&user.SecretSalt,
		&user.CreatedAt,
		&lastSeen,
	)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, storage.ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	if lastSeen.Valid {
		user.LastSeen = &lastSeen.Time
	}

	return user, nil
}

// DeleteUser deletes user by ID, progress fields are removed by cascade
func (s *Storage) DeleteUser(ctx context.Context, userID string) error {
	query := `DELETE FROM users WHERE id = ?`

	result, err := s.db.ExecContext(ctx, query, userID)
	if err != nil {
		return fmt.Errorf("failed to delete user: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}

	if rows == 0 {
		return storage.ErrUserNotFound
	}

	return nil
}

// UpdateLastSeen updates the time of the last token issue
func (s *Storage) UpdateLastSeen(ctx context.Context, userID string, lastSeen time.Time) error {
	query := `UPDATE users SET last_seen = ? WHERE id = ?`

	result, err := s.db.ExecContext(ctx, query, lastSeen, userID)
	if err != nil {
		return fmt.Errorf("failed to update last seen: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}

	if rows == 0 {
		return storage.ErrUserNotFound
	}

	return nil
}
