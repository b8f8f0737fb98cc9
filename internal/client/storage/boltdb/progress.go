package boltdb

import (
	"context"
	"fmt"

	"go.etcd.io/bbolt"

	"github.com/iudanet/lingosync/internal/client/storage"
)

// Get returns the value stored under key
func (s *Storage) Get(ctx context.Context, key string) ([]byte, error) {
	if s.db == nil {
		return nil, storage.ErrStorageClosed
	}

	var value []byte

	err := s.db.View(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketProgress)
		if bucket == nil {
			return fmt.Errorf("progress bucket not found")
		}

		data := bucket.Get([]byte(key))
		if data == nil {
			return storage.ErrKeyNotFound
		}

		// Данные действительны только внутри транзакции, копируем
		value = make([]byte, len(data))
		copy(value, data)

		return nil
	})

	if err != nil {
		return nil, err
	}

	return value, nil
}

// Set stores value under key
func (s *Storage) Set(ctx context.Context, key string, value []byte) error {
	if s.db == nil {
		return storage.ErrStorageClosed
	}
	if key == "" {
		return fmt.Errorf("empty progress key")
	}

	return s.db.Update(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketProgress)
		if bucket == nil {
			return fmt.Errorf("progress bucket not found")
		}

		if err := bucket.Put([]byte(key), value); err != nil {
			return fmt.Errorf("failed to save progress %q: %w", key, err)
		}

		return nil
	})
}

// Keys lists all stored keys
func (s *Storage) Keys(ctx context.Context) ([]string, error) {
	if s.db == nil {
		return nil, storage.ErrStorageClosed
	}

	var keys []string

	err := s.db.View(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketProgress)
		if bucket == nil {
			return fmt.Errorf("progress bucket not found")
		}

		return bucket.ForEach(func(k, _ []byte) error {
			keys = append(keys, string(k))
			return nil
		})
	})

	if err != nil {
		return nil, err
	}

	return keys, nil
}
