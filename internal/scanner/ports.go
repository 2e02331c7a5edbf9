package scanner

import (
	"context"

	"github.com/iudanet/fairscan/internal/models"
)

//go:generate moq -out ports_mock.go . Ledger AuditLog Surface Decrypter Navigator Notifier

// Ledger is the attendance store.
// Create must be an atomic insert-if-absent keyed by (EventID, UserID)
// and return ErrAlreadyRecorded when a record already exists.
type Ledger interface {
	Exists(ctx context.Context, eventID, userID string) (bool, error)
	Create(ctx context.Context, record *models.AttendanceRecord) error
}

// AuditLog is the append-only scan log. Failures never change a scan outcome.
type AuditLog interface {
	Append(ctx context.Context, entry *models.ScanLogEntry) error
}

// Surface is the camera. The dispatcher switches it on only in StateScanning.
type Surface interface {
	SetActive(active bool)
}

// Decrypter turns a task token into the envelope plaintext
type Decrypter interface {
	Decrypt(token string) (string, error)
}

// Navigator receives navigation intents; the dispatcher never navigates itself
type Navigator interface {
	Navigate(ctx context.Context, intent Intent)
}

// Notifier shows a user-visible message
type Notifier interface {
	Notify(ctx context.Context, msg Message)
}
