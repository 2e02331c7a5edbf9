package boltdb

import (
	"context"
	"encoding/binary"
	"fmt"

	"go.etcd.io/bbolt"
)

const (
	keyLastSyncTimestamp = "last_sync_timestamp"
)

// SaveLastSyncTimestamp saves the time of the last successful flush
func (s *Storage) SaveLastSyncTimestamp(ctx context.Context, timestamp int64) error {
	return s.db.Update(func(tx *bbolt.Tx) error {
		b, err := bucket(tx, bucketMetadata)
		if err != nil {
			return err
		}

		if err := b.Put([]byte(keyLastSyncTimestamp), uint64Key(uint64(timestamp))); err != nil {
			return fmt.Errorf("failed to save last sync timestamp: %w", err)
		}
		return nil
	})
}

// GetLastSyncTimestamp retrieves the time of the last successful flush
// Returns 0 if no flush has been performed yet
func (s *Storage) GetLastSyncTimestamp(ctx context.Context) (int64, error) {
	var timestamp int64

	err := s.db.View(func(tx *bbolt.Tx) error {
		b, err := bucket(tx, bucketMetadata)
		if err != nil {
			return err
		}

		// Отсутствие ключа означает, что flush ещё не выполнялся
		if v := b.Get([]byte(keyLastSyncTimestamp)); len(v) == 8 {
			timestamp = int64(binary.BigEndian.Uint64(v))
		}
		return nil
	})
	if err != nil {
		return 0, fmt.Errorf("failed to get last sync timestamp: %w", err)
	}

	return timestamp, nil
}
