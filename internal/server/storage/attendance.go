package storage

import (
	"context"

	"github.com/iudanet/fairscan/internal/models"
)

// AttendanceStorage defines interface for the attendance ledger
type AttendanceStorage interface {
	// AttendanceExists reports whether the user is recorded for the event
	AttendanceExists(ctx context.Context, eventID, userID string) (bool, error)

	// CreateAttendance inserts a record if none exists for (EventID, UserID).
	// The check and the insert are one atomic statement.
	// Returns ErrAttendanceExists if the pair is already recorded
	CreateAttendance(ctx context.Context, record *models.AttendanceRecord) error
}
