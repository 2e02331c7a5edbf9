package scanner

import (
	"context"
	"errors"

	"github.com/iudanet/fairscan/internal/crypto"
	"github.com/iudanet/fairscan/internal/models"
	"github.com/iudanet/fairscan/internal/task"
)

// scan handles the task of a single decode event.
// It implements task.Visitor[Outcome].
type scan struct {
	d           *Dispatcher
	fingerprint string
}

var _ task.Visitor[Outcome] = (*scan)(nil)

func (s *scan) Attendance(ctx context.Context, t task.Attendance) Outcome {
	d := s.d
	log := d.logger.With("task", t.Name(), "event_id", t.EventID, "fingerprint", s.fingerprint)

	if d.userID == "" {
		log.Warn("Attendance scan without signed-in user")
		return recoverable(models.ResultLedgerError, MsgSignInNeeded)
	}

	entry := d.newEntry(models.ScanTypeAttendance, t.Name(), t.EventID, s.fingerprint)

	exists, err := d.ledger.Exists(ctx, t.EventID, d.userID)
	if err != nil {
		return s.ledgerFailure(ctx, entry, &LedgerError{Op: "exists", Err: err})
	}
	if exists {
		log.Info("Attendance already recorded")
		return s.duplicate(ctx, entry)
	}

	if t.RequiresQuestionnaire() {
		if ctx.Err() != nil {
			return discarded()
		}
		// Запись в ledger сделает форма анкеты после отправки ответов
		entry.Result = models.ResultQuestionnaireRequired
		s.appendAudit(ctx, entry)
		log.Info("Handing attendance off to questionnaire", "questionnaire_id", t.QuestionnaireID)
		return navigate(models.ResultQuestionnaireRequired, ScreenEventForm, map[string]string{
			ParamEventID:         t.EventID,
			ParamQuestionnaireID: t.QuestionnaireID,
		})
	}

	if ctx.Err() != nil {
		return discarded()
	}

	record := models.NewAttendanceRecord(t.EventID, d.userID, d.now(), nil)
	if err := d.ledger.Create(ctx, record); err != nil {
		if errors.Is(err, ErrAlreadyRecorded) {
			log.Info("Attendance recorded concurrently")
			return s.duplicate(ctx, entry)
		}
		return s.ledgerFailure(ctx, entry, &LedgerError{Op: "create", Err: err})
	}

	entry.Result = models.ResultSuccess
	s.appendAudit(ctx, entry)
	log.Info("Attendance recorded")

	if ctx.Err() != nil {
		return discarded()
	}
	return navigate(models.ResultSuccess, ScreenQRRecorded, map[string]string{
		ParamMessage: AttendanceRecordedText,
		ParamSuccess: "true",
	})
}

func (s *scan) ViewDigitalCard(ctx context.Context, t task.ViewDigitalCard) Outcome {
	entry := s.d.newEntry(models.ScanTypeViewDigitalCard, t.Name(), t.UserID, s.fingerprint)
	entry.Result = models.ResultSuccess
	s.appendAudit(ctx, entry)

	if ctx.Err() != nil {
		return discarded()
	}
	return navigate(models.ResultSuccess, ScreenDigitalCard, map[string]string{
		ParamUserID: t.UserID,
	})
}

func (s *scan) ViewCompanyInfo(ctx context.Context, t task.ViewCompanyInfo) Outcome {
	entry := s.d.newEntry(models.ScanTypeViewCompanyInfo, t.Name(), t.CompanyID, s.fingerprint)
	entry.Result = models.ResultSuccess
	s.appendAudit(ctx, entry)

	if ctx.Err() != nil {
		return discarded()
	}
	return navigate(models.ResultSuccess, ScreenEventCompanyInfo, map[string]string{
		ParamEventID:   t.EventID,
		ParamCompanyID: t.CompanyID,
	})
}

func (s *scan) Unknown(ctx context.Context, t task.Unknown) Outcome {
	s.d.logger.Info("Unrecognised task in token", "task", t.Task, "fingerprint", s.fingerprint)

	entry := s.d.newEntry(models.ScanTypeUnknown, t.Task, "", s.fingerprint)
	entry.Result = models.ResultInvalidQRCode
	s.appendAudit(ctx, entry)

	return recoverable(models.ResultInvalidQRCode, MsgNotRecognized)
}

// failure handles a token that could not be decrypted or parsed
func (s *scan) failure(ctx context.Context, err error) Outcome {
	attrs := []any{"error", err, "fingerprint", s.fingerprint}
	var cerr *crypto.CipherError
	if errors.As(err, &cerr) && cerr.Cause() != nil {
		attrs = append(attrs, "cause", cerr.Cause())
	}
	s.d.logger.Warn("Failed to decode task token", attrs...)

	entry := s.d.newEntry(models.ScanTypeError, "", "", s.fingerprint)
	entry.Result = models.ResultDecodeFailed
	entry.ErrorMessage = err.Error()
	s.appendAudit(ctx, entry)

	return recoverable(models.ResultDecodeFailed, MsgUnreadable)
}

func (s *scan) duplicate(ctx context.Context, entry *models.ScanLogEntry) Outcome {
	entry.Result = models.ResultDuplicate
	s.appendAudit(ctx, entry)
	return recoverable(models.ResultDuplicate, MsgAlreadyDone)
}

func (s *scan) ledgerFailure(ctx context.Context, entry *models.ScanLogEntry, err *LedgerError) Outcome {
	s.d.logger.Error("Attendance ledger failed",
		"error", err,
		"event_id", entry.TargetID,
		"fingerprint", s.fingerprint,
	)

	entry.Result = models.ResultLedgerError
	entry.ErrorMessage = err.Error()
	s.appendAudit(ctx, entry)

	return recoverable(models.ResultLedgerError, MsgLedgerFailed)
}

// appendAudit writes entry to the audit log. Failures are only logged.
// Entries need a known user, so anonymous scans are not logged.
func (s *scan) appendAudit(ctx context.Context, entry *models.ScanLogEntry) {
	if entry.UserID == "" {
		return
	}
	// Запись аудита не зависит от отмены скана: событие уже произошло
	if err := s.d.audit.Append(context.WithoutCancel(ctx), entry); err != nil {
		s.d.logger.Warn("Failed to append scan log entry",
			"error", err,
			"scan_type", entry.ScanType,
			"result", entry.Result,
		)
	}
}
