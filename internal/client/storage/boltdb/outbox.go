package boltdb

import (
	"context"
	"encoding/json"
	"fmt"

	"go.etcd.io/bbolt"

	"github.com/iudanet/fairscan/internal/models"
)

// Enqueue stores an entry at the tail of the outbox.
// Re-enqueueing a known ID replaces the entry in place.
func (s *Storage) Enqueue(ctx context.Context, entry *models.ScanLogEntry) error {
	data, err := json.Marshal(entry)
	if err != nil {
		return fmt.Errorf("failed to marshal scan log entry: %w", err)
	}

	return s.db.Update(func(tx *bbolt.Tx) error {
		outbox, err := bucket(tx, bucketOutbox)
		if err != nil {
			return err
		}
		ids, err := bucket(tx, bucketOutboxIDs)
		if err != nil {
			return err
		}

		seqKey := ids.Get([]byte(entry.ID))
		if seqKey == nil {
			seq, err := outbox.NextSequence()
			if err != nil {
				return fmt.Errorf("failed to allocate outbox sequence: %w", err)
			}
			seqKey = uint64Key(seq)
			if err := ids.Put([]byte(entry.ID), seqKey); err != nil {
				return fmt.Errorf("failed to index outbox entry: %w", err)
			}
		}

		if err := outbox.Put(seqKey, data); err != nil {
			return fmt.Errorf("failed to enqueue scan log entry: %w", err)
		}
		return nil
	})
}

// Peek returns up to limit oldest entries. limit <= 0 returns all of them.
func (s *Storage) Peek(ctx context.Context, limit int) ([]*models.ScanLogEntry, error) {
	var entries []*models.ScanLogEntry

	err := s.db.View(func(tx *bbolt.Tx) error {
		outbox, err := bucket(tx, bucketOutbox)
		if err != nil {
			return err
		}

		// Ключи big-endian, поэтому курсор идёт в порядке добавления
		c := outbox.Cursor()
		for k, v := c.First(); k != nil; k, v = c.Next() {
			if limit > 0 && len(entries) >= limit {
				break
			}
			entry := &models.ScanLogEntry{}
			if err := json.Unmarshal(v, entry); err != nil {
				return fmt.Errorf("failed to unmarshal scan log entry: %w", err)
			}
			entries = append(entries, entry)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return entries, nil
}

// Remove deletes delivered entries by ID
func (s *Storage) Remove(ctx context.Context, ids []string) error {
	if len(ids) == 0 {
		return nil
	}

	return s.db.Update(func(tx *bbolt.Tx) error {
		outbox, err := bucket(tx, bucketOutbox)
		if err != nil {
			return err
		}
		index, err := bucket(tx, bucketOutboxIDs)
		if err != nil {
			return err
		}

		for _, id := range ids {
			seqKey := index.Get([]byte(id))
			if seqKey == nil {
				continue
			}
			if err := outbox.Delete(seqKey); err != nil {
				return fmt.Errorf("failed to remove scan log entry: %w", err)
			}
			if err := index.Delete([]byte(id)); err != nil {
				return fmt.Errorf("failed to remove outbox index: %w", err)
			}
		}
		return nil
	})
}

// OutboxLen returns the number of entries waiting for delivery
func (s *Storage) OutboxLen(ctx context.Context) (int, error) {
	var n int

	err := s.db.View(func(tx *bbolt.Tx) error {
		outbox, err := bucket(tx, bucketOutbox)
		if err != nil {
			return err
		}
		n = outbox.Stats().KeyN
		return nil
	})
	if err != nil {
		return 0, err
	}

	return n, nil
}
