package storage

import (
	"context"

	"github.com/iudanet/fairscan/internal/models"
)

//go:generate moq -out storage_mock.go . LedgerStorage OutboxStorage MetadataStorage

// LedgerStorage is the local copy of the attendance ledger.
// Records written offline stay pending until they reach the server.
type LedgerStorage interface {
	// AttendanceExists reports whether the pair is recorded locally, pending or not
	AttendanceExists(ctx context.Context, eventID, userID string) (bool, error)

	// SaveAttendance inserts the record if the pair is absent.
	// Returns ErrAttendanceExists otherwise. Check and write happen in one transaction.
	SaveAttendance(ctx context.Context, record *models.AttendanceRecord, synced bool) error

	// PendingAttendance returns records not yet confirmed by the server
	PendingAttendance(ctx context.Context) ([]*models.AttendanceRecord, error)

	// MarkAttendanceSynced flags a record as confirmed by the server
	MarkAttendanceSynced(ctx context.Context, eventID, userID string) error
}
