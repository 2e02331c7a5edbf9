package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/iudanet/fairscan/internal/models"
	"github.com/iudanet/fairscan/internal/server/storage"
)

// AttendanceExists reports whether the user is recorded for the event
func (s *Storage) AttendanceExists(ctx context.Context, eventID, userID string) (bool, error) {
	query := `SELECT EXISTS (SELECT 1 FROM attendance WHERE event_id = ? AND user_id = ?)`

	var exists bool
	if err := s.db.QueryRowContext(ctx, query, eventID, userID).Scan(&exists); err != nil {
		return false, fmt.Errorf("failed to check attendance: %w", err)
	}

	return exists, nil
}

// CreateAttendance inserts the record unless (event_id, user_id) is taken.
// Returns storage.ErrAttendanceExists if it is
func (s *Storage) CreateAttendance(ctx context.Context, record *models.AttendanceRecord) error {
	answers, err := marshalAnswers(record.Answers)
	if err != nil {
		return err
	}

	query := `
		INSERT INTO attendance (event_id, user_id, task, answers, recorded_at)
		VALUES (?, ?, ?, ?, ?)
		ON CONFLICT (event_id, user_id) DO NOTHING
	`

	result, err := s.db.ExecContext(ctx, query,
		record.EventID,
		record.UserID,
		record.Task,
		answers,
		record.Timestamp.UnixMilli(),
	)
	if err != nil {
		return fmt.Errorf("failed to insert attendance: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}

	// Конфликт по первичному ключу: запись уже есть
	if rows == 0 {
		return storage.ErrAttendanceExists
	}

	return nil
}

func marshalAnswers(answers map[string]string) (sql.NullString, error) {
	if len(answers) == 0 {
		return sql.NullString{}, nil
	}

	data, err := json.Marshal(answers)
	if err != nil {
		return sql.NullString{}, fmt.Errorf("failed to marshal answers: %w", err)
	}

	return sql.NullString{String: string(data), Valid: true}, nil
}
