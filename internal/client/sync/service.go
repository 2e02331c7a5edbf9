// Package sync keeps the scanner's ledger and scan log consistent with the
// server: writes go to the server when it is reachable and are spooled in
// local storage otherwise, then pushed by Flush.
package sync

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/iudanet/fairscan/internal/client/api"
	"github.com/iudanet/fairscan/internal/client/storage"
	"github.com/iudanet/fairscan/internal/models"
	"github.com/iudanet/fairscan/internal/scanner"
)

//go:generate moq -out service_mock.go . Service Remote

// flushBatch - сколько записей журнала читается из outbox за раз
const flushBatch = 100

// ErrOffline is returned by Flush when no server is configured
var ErrOffline = errors.New("offline mode: no server configured")

// Service определяет интерфейс для sync.Service.
// It is the Ledger and AuditLog the scan dispatcher writes through.
type Service interface {
	scanner.Ledger
	scanner.AuditLog

	// Flush pushes pending attendance records and scan log entries to the server
	Flush(ctx context.Context) (*FlushResult, error)

	// PendingCount возвращает количество записей, ожидающих отправки
	PendingCount(ctx context.Context) (*Pending, error)

	// LastFlush returns the time of the last complete flush, zero if none
	LastFlush(ctx context.Context) (time.Time, error)
}

// Remote is the part of the ledger server API the service uses
type Remote interface {
	AttendanceExists(ctx context.Context, eventID, userID string) (bool, error)
	CreateAttendance(ctx context.Context, record *models.AttendanceRecord) error
	AppendScanLog(ctx context.Context, entry *models.ScanLogEntry) error
}

// FlushResult contains flush operation results
type FlushResult struct {
	Attendance int // отправлено записей посещения
	Duplicates int // из них уже были на сервере
	ScanLog    int // отправлено записей журнала
}

// Pending counts what is waiting for the server
type Pending struct {
	Attendance int
	ScanLog    int
}

// Total returns the number of pending items of both kinds
func (p *Pending) Total() int {
	return p.Attendance + p.ScanLog
}

type service struct {
	remote   Remote
	ledger   storage.LedgerStorage
	outbox   storage.OutboxStorage
	metadata storage.MetadataStorage
	logger   *slog.Logger
	now      func() time.Time
}

// NewService creates a new sync service. A nil remote means offline mode:
// attendance is recorded only locally and every scan log entry is spooled.
func NewService(remote Remote, ledger storage.LedgerStorage, outbox storage.OutboxStorage, metadata storage.MetadataStorage, logger *slog.Logger) Service {
	return &service{
		remote:   remote,
		ledger:   ledger,
		outbox:   outbox,
		metadata: metadata,
		logger:   logger,
		now:      time.Now,
	}
}

// Exists checks the local ledger first, so records made offline count
// as recorded before they reach the server.
func (s *service) Exists(ctx context.Context, eventID, userID string) (bool, error) {
	exists, err := s.ledger.AttendanceExists(ctx, eventID, userID)
	if err != nil {
		return false, fmt.Errorf("failed to check local ledger: %w", err)
	}
	if exists || s.remote == nil {
		return exists, nil
	}

	return s.remote.AttendanceExists(ctx, eventID, userID)
}

// Create records attendance on the server, or locally in offline mode.
// Both paths are insert-if-absent and report a duplicate as scanner.ErrAlreadyRecorded.
func (s *service) Create(ctx context.Context, record *models.AttendanceRecord) error {
	if s.remote == nil {
		if err := s.ledger.SaveAttendance(ctx, record, false); err != nil {
			if errors.Is(err, storage.ErrAttendanceExists) {
				return scanner.ErrAlreadyRecorded
			}
			return fmt.Errorf("failed to save attendance locally: %w", err)
		}
		return nil
	}

	err := s.remote.CreateAttendance(ctx, record)
	switch {
	case errors.Is(err, api.ErrConflict):
		s.remember(ctx, record)
		return scanner.ErrAlreadyRecorded
	case err != nil:
		return err
	}

	s.remember(ctx, record)
	return nil
}

// remember кладёт подтверждённую сервером запись в локальный ledger
func (s *service) remember(ctx context.Context, record *models.AttendanceRecord) {
	err := s.ledger.SaveAttendance(ctx, record, true)
	if err != nil && !errors.Is(err, storage.ErrAttendanceExists) {
		s.logger.Warn("Failed to cache attendance locally", "event_id", record.EventID, "error", err)
	}
}

// Append sends the entry to the server and spools it when that fails.
// Only a failure to spool is returned.
func (s *service) Append(ctx context.Context, entry *models.ScanLogEntry) error {
	if s.remote != nil {
		err := s.remote.AppendScanLog(ctx, entry)
		if err == nil {
			return nil
		}
		s.logger.Warn("Scan log append failed, spooling entry", "entry_id", entry.ID, "error", err)
	}

	if err := s.outbox.Enqueue(ctx, entry); err != nil {
		return fmt.Errorf("failed to spool scan log entry: %w", err)
	}
	return nil
}

// Flush pushes pending attendance first, then the scan log outbox in order.
// It stops at the first delivery error and returns what was sent so far.
func (s *service) Flush(ctx context.Context) (*FlushResult, error) {
	result := &FlushResult{}
	if s.remote == nil {
		return result, ErrOffline
	}

	s.logger.Info("Starting flush")

	records, err := s.ledger.PendingAttendance(ctx)
	if err != nil {
		return result, fmt.Errorf("failed to get pending attendance: %w", err)
	}

	for _, record := range records {
		err := s.remote.CreateAttendance(ctx, record)
		switch {
		case errors.Is(err, api.ErrConflict):
			result.Duplicates++
		case err != nil:
			return result, fmt.Errorf("failed to push attendance: %w", err)
		}

		if err := s.ledger.MarkAttendanceSynced(ctx, record.EventID, record.UserID); err != nil {
			return result, fmt.Errorf("failed to mark attendance synced: %w", err)
		}
		result.Attendance++
	}

	for {
		entries, err := s.outbox.Peek(ctx, flushBatch)
		if err != nil {
			return result, fmt.Errorf("failed to read outbox: %w", err)
		}
		if len(entries) == 0 {
			break
		}

		sent, pushErr := s.pushEntries(ctx, entries)
		if err := s.outbox.Remove(ctx, sent); err != nil {
			return result, fmt.Errorf("failed to remove delivered entries: %w", err)
		}
		result.ScanLog += len(sent)

		if pushErr != nil {
			return result, fmt.Errorf("failed to push scan log: %w", pushErr)
		}
	}

	s.logger.Info("Flush completed",
		"attendance", result.Attendance,
		"duplicates", result.Duplicates,
		"scan_log", result.ScanLog)

	if err := s.metadata.SaveLastSyncTimestamp(ctx, s.now().Unix()); err != nil {
		// Не прерываем flush из-за ошибки сохранения timestamp
		s.logger.Warn("Failed to save last flush timestamp", "error", err)
	}

	return result, nil
}

// pushEntries отправляет записи по порядку и возвращает ID доставленных
func (s *service) pushEntries(ctx context.Context, entries []*models.ScanLogEntry) ([]string, error) {
	sent := make([]string, 0, len(entries))
	for _, entry := range entries {
		if err := s.remote.AppendScanLog(ctx, entry); err != nil {
			return sent, err
		}
		sent = append(sent, entry.ID)
	}
	return sent, nil
}

// PendingCount возвращает количество записей, ожидающих отправки
func (s *service) PendingCount(ctx context.Context) (*Pending, error) {
	records, err := s.ledger.PendingAttendance(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get pending attendance: %w", err)
	}

	n, err := s.outbox.OutboxLen(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get outbox size: %w", err)
	}

	return &Pending{Attendance: len(records), ScanLog: n}, nil
}

// LastFlush returns the time of the last complete flush, zero if none
func (s *service) LastFlush(ctx context.Context) (time.Time, error) {
	ts, err := s.metadata.GetLastSyncTimestamp(ctx)
	if err != nil {
		return time.Time{}, err
	}
	if ts == 0 {
		return time.Time{}, nil
	}
	return time.Unix(ts, 0).UTC(), nil
}
