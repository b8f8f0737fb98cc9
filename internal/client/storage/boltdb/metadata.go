package boltdb

import (
	"context"
	"encoding/binary"
	"fmt"
	"time"

	"go.etcd.io/bbolt"

	"github.com/iudanet/lingosync/internal/client/storage"
)

// syncTimeKey ключ времени последней успешной операции
func syncTimeKey(operation string) []byte {
	return []byte("last_sync:" + operation)
}

// SaveSyncTime saves the time of the last successful sync operation
func (s *Storage) SaveSyncTime(ctx context.Context, operation string, at time.Time) error {
	if s.db == nil {
		return storage.ErrStorageClosed
	}

	return s.db.Update(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketMetadata)
		if bucket == nil {
			return fmt.Errorf("metadata bucket not found")
		}

		// Храним unix nano в big endian
		buf := make([]byte, 8)
		binary.BigEndian.PutUint64(buf, uint64(at.UnixNano()))

		if err := bucket.Put(syncTimeKey(operation), buf); err != nil {
			return fmt.Errorf("failed to save %s sync time: %w", operation, err)
		}

		return nil
	})
}

// GetSyncTime retrieves the time of the last successful sync operation
// Returns zero time if the operation has never succeeded
func (s *Storage) GetSyncTime(ctx context.Context, operation string) (time.Time, error) {
	if s.db == nil {
		return time.Time{}, storage.ErrStorageClosed
	}

	var at time.Time

	err := s.db.View(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketMetadata)
		if bucket == nil {
			return fmt.Errorf("metadata bucket not found")
		}

		buf := bucket.Get(syncTimeKey(operation))
		if len(buf) != 8 {
			// Операция еще ни разу не выполнялась
			return nil
		}

		at = time.Unix(0, int64(binary.BigEndian.Uint64(buf)))
		return nil
	})

	if err != nil {
		return time.Time{}, fmt.Errorf("failed to get %s sync time: %w", operation, err)
	}

	return at, nil
}
