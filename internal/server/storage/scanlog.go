package storage

import (
	"context"

	"github.com/iudanet/fairscan/internal/models"
)

// ScanLogStorage defines interface for the append-only scan log
type ScanLogStorage interface {
	// AppendScanLog stores an entry. Re-sending an entry with the same ID is a no-op
	AppendScanLog(ctx context.Context, entry *models.ScanLogEntry) error

	// ListUserScanLog returns the newest entries of a user, newest first
	ListUserScanLog(ctx context.Context, userID string, limit int) ([]*models.ScanLogEntry, error)
}
