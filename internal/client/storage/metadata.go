package storage

import "context"

// MetadataStorage defines interface for storing client metadata
type MetadataStorage interface {
	// SaveLastSyncTimestamp saves the time (unix seconds) of the last successful flush
	SaveLastSyncTimestamp(ctx context.Context, timestamp int64) error

	// GetLastSyncTimestamp retrieves the time of the last successful flush
	// Returns 0 if no flush has been performed yet
	GetLastSyncTimestamp(ctx context.Context) (int64, error)
}
