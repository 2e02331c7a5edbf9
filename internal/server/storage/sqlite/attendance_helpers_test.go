package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/iudanet/fairscan/internal/models"
)

// getAttendance читает запись целиком, чтобы проверить сохранённые поля
func (s *Storage) getAttendance(ctx context.Context, eventID, userID string) (*models.AttendanceRecord, error) {
	query := `
		SELECT event_id, user_id, task, answers, recorded_at
		FROM attendance
		WHERE event_id = ? AND user_id = ?
	`

	record := &models.AttendanceRecord{}
	var (
		answers    sql.NullString
		recordedAt int64
	)

	err := s.db.QueryRowContext(ctx, query, eventID, userID).Scan(
		&record.EventID,
		&record.UserID,
		&record.Task,
		&answers,
		&recordedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to query attendance: %w", err)
	}

	record.Timestamp = time.UnixMilli(recordedAt).UTC()

	if answers.Valid {
		if err := json.Unmarshal([]byte(answers.String), &record.Answers); err != nil {
			return nil, fmt.Errorf("failed to unmarshal answers: %w", err)
		}
	}

	return record, nil
}
