package boltdb

import (
	"context"
	"encoding/json"
	"fmt"

	"go.etcd.io/bbolt"

	"github.com/iudanet/fairscan/internal/client/storage"
	"github.com/iudanet/fairscan/internal/models"
)

// attendanceRow - значение в bucket attendance
type attendanceRow struct {
	Record *models.AttendanceRecord `json:"record"`
	Synced bool                     `json:"synced"`
}

// attendanceKey собирает ключ пары; \x00 не встречается в идентификаторах
func attendanceKey(eventID, userID string) []byte {
	return []byte(eventID + "\x00" + userID)
}

// AttendanceExists reports whether the pair is recorded locally
func (s *Storage) AttendanceExists(ctx context.Context, eventID, userID string) (bool, error) {
	var exists bool

	err := s.db.View(func(tx *bbolt.Tx) error {
		b, err := bucket(tx, bucketAttendance)
		if err != nil {
			return err
		}
		exists = b.Get(attendanceKey(eventID, userID)) != nil
		return nil
	})
	if err != nil {
		return false, fmt.Errorf("failed to check attendance: %w", err)
	}

	return exists, nil
}

// SaveAttendance inserts the record if the pair is absent.
// The check and the write share one Update transaction, and bbolt allows a
// single writer, so two concurrent saves cannot both succeed.
func (s *Storage) SaveAttendance(ctx context.Context, record *models.AttendanceRecord, synced bool) error {
	data, err := json.Marshal(attendanceRow{Record: record, Synced: synced})
	if err != nil {
		return fmt.Errorf("failed to marshal attendance: %w", err)
	}

	return s.db.Update(func(tx *bbolt.Tx) error {
		b, err := bucket(tx, bucketAttendance)
		if err != nil {
			return err
		}

		key := attendanceKey(record.EventID, record.UserID)
		if b.Get(key) != nil {
			return storage.ErrAttendanceExists
		}

		if err := b.Put(key, data); err != nil {
			return fmt.Errorf("failed to save attendance: %w", err)
		}
		return nil
	})
}

// PendingAttendance returns records not yet confirmed by the server
func (s *Storage) PendingAttendance(ctx context.Context) ([]*models.AttendanceRecord, error) {
	var records []*models.AttendanceRecord

	err := s.db.View(func(tx *bbolt.Tx) error {
		b, err := bucket(tx, bucketAttendance)
		if err != nil {
			return err
		}

		return b.ForEach(func(k, v []byte) error {
			var row attendanceRow
			if err := json.Unmarshal(v, &row); err != nil {
				return fmt.Errorf("failed to unmarshal attendance: %w", err)
			}
			if !row.Synced && row.Record != nil {
				records = append(records, row.Record)
			}
			return nil
		})
	})
	if err != nil {
		return nil, err
	}

	return records, nil
}

// MarkAttendanceSynced flags a record as confirmed by the server
func (s *Storage) MarkAttendanceSynced(ctx context.Context, eventID, userID string) error {
	return s.db.Update(func(tx *bbolt.Tx) error {
		b, err := bucket(tx, bucketAttendance)
		if err != nil {
			return err
		}

		key := attendanceKey(eventID, userID)
		v := b.Get(key)
		if v == nil {
			return storage.ErrAttendanceNotFound
		}

		var row attendanceRow
		if err := json.Unmarshal(v, &row); err != nil {
			return fmt.Errorf("failed to unmarshal attendance: %w", err)
		}
		if row.Synced {
			return nil
		}
		row.Synced = true

		data, err := json.Marshal(row)
		if err != nil {
			return fmt.Errorf("failed to marshal attendance: %w", err)
		}
		return b.Put(key, data)
	})
}
