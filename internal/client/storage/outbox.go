package storage

import (
	"context"

	"github.com/iudanet/fairscan/internal/models"
)

// OutboxStorage keeps scan-log entries that have not reached the server yet.
// Entries are returned in the order they were enqueued.
type OutboxStorage interface {
	// Enqueue stores an entry; enqueueing an existing ID replaces it
	Enqueue(ctx context.Context, entry *models.ScanLogEntry) error

	// Peek returns up to limit oldest entries without removing them
	Peek(ctx context.Context, limit int) ([]*models.ScanLogEntry, error)

	// Remove deletes delivered entries by ID; unknown IDs are ignored
	Remove(ctx context.Context, ids []string) error

	// OutboxLen returns the number of entries waiting for delivery
	OutboxLen(ctx context.Context) (int, error)
}
