package sqlite

import (
	"context"
	"fmt"
	"time"

	"github.com/iudanet/fairscan/internal/models"
)

// AppendScanLog stores an entry; entries are never updated
func (s *Storage) AppendScanLog(ctx context.Context, entry *models.ScanLogEntry) error {
	// Клиент может повторно отправить запись из outbox
	query := `
		INSERT INTO scan_log (
			id, user_id, task, scan_type, result,
			target_id, error_message, token_fingerprint, scanned_at
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT (id) DO NOTHING
	`

	_, err := s.db.ExecContext(ctx, query,
		entry.ID,
		entry.UserID,
		entry.Task,
		string(entry.ScanType),
		string(entry.Result),
		entry.TargetID,
		entry.ErrorMessage,
		entry.TokenFingerprint,
		entry.Timestamp.UnixMilli(),
	)
	if err != nil {
		return fmt.Errorf("failed to insert scan log entry: %w", err)
	}

	return nil
}

// ListUserScanLog returns up to limit newest entries of a user
func (s *Storage) ListUserScanLog(ctx context.Context, userID string, limit int) ([]*models.ScanLogEntry, error) {
	query := `
		SELECT id, user_id, task, scan_type, result,
		       target_id, error_message, token_fingerprint, scanned_at
		FROM scan_log
		WHERE user_id = ?
		ORDER BY scanned_at DESC, id
		LIMIT ?
	`

	rows, err := s.db.QueryContext(ctx, query, userID, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query scan log: %w", err)
	}
	defer rows.Close()

	entries := make([]*models.ScanLogEntry, 0)
	for rows.Next() {
		entry := &models.ScanLogEntry{}
		var (
			scanType, result string
			scannedAt        int64
		)

		if err := rows.Scan(
			&entry.ID,
			&entry.UserID,
			&entry.Task,
			&scanType,
			&result,
			&entry.TargetID,
			&entry.ErrorMessage,
			&entry.TokenFingerprint,
			&scannedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan scan log row: %w", err)
		}

		entry.ScanType = models.ScanType(scanType)
		entry.Result = models.ScanResult(result)
		entry.Timestamp = time.UnixMilli(scannedAt).UTC()
		entries = append(entries, entry)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating scan log rows: %w", err)
	}

	return entries, nil
}
