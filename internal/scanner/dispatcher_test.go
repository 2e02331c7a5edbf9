package scanner

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iudanet/fairscan/internal/crypto"
	"github.com/iudanet/fairscan/internal/models"
	"github.com/iudanet/fairscan/internal/task"
)

const scannerUser = "scanner-1"

func setupTestLogger() *slog.Logger {
	opts := &slog.HandlerOptions{
		Level: slog.LevelError,
	}
	handler := slog.NewTextHandler(os.Stdout, opts)
	return slog.New(handler)
}

// fixture - диспетчер с in-memory ledger и моками остальных зависимостей
type fixture struct {
	t          *testing.T
	d          *Dispatcher
	cipher     *crypto.TokenCipher
	ledger     *LedgerMock
	audit      *AuditLogMock
	surface    *SurfaceMock
	navigator  *NavigatorMock
	notifier   *NotifierMock
	records    map[string]*models.AttendanceRecord
	recordsMu  sync.Mutex
	fixedClock time.Time
}

func newFixture(t *testing.T, userID string) *fixture {
	t.Helper()

	c, err := crypto.NewTokenCipher([]byte("fw"))
	require.NoError(t, err)

	f := &fixture{
		t:          t,
		cipher:     c,
		records:    make(map[string]*models.AttendanceRecord),
		fixedClock: time.Date(2024, 3, 14, 10, 0, 0, 0, time.UTC),
	}

	f.ledger = &LedgerMock{
		ExistsFunc: func(ctx context.Context, eventID, userID string) (bool, error) {
			f.recordsMu.Lock()
			defer f.recordsMu.Unlock()
			_, ok := f.records[eventID+"/"+userID]
			return ok, nil
		},
		CreateFunc: func(ctx context.Context, record *models.AttendanceRecord) error {
			f.recordsMu.Lock()
			defer f.recordsMu.Unlock()
			key := record.EventID + "/" + record.UserID
			if _, ok := f.records[key]; ok {
				return ErrAlreadyRecorded
			}
			f.records[key] = record
			return nil
		},
	}
	f.audit = &AuditLogMock{
		AppendFunc: func(ctx context.Context, entry *models.ScanLogEntry) error {
			return nil
		},
	}
	f.surface = &SurfaceMock{SetActiveFunc: func(active bool) {}}
	f.navigator = &NavigatorMock{NavigateFunc: func(ctx context.Context, intent Intent) {}}
	f.notifier = &NotifierMock{NotifyFunc: func(ctx context.Context, msg Message) {}}

	f.d = f.newDispatcher(c, userID)
	return f
}

func (f *fixture) newDispatcher(cipher Decrypter, userID string) *Dispatcher {
	d, err := NewDispatcher(Deps{
		Cipher:    cipher,
		Ledger:    f.ledger,
		Audit:     f.audit,
		Surface:   f.surface,
		Navigator: f.navigator,
		Notifier:  f.notifier,
		Logger:    setupTestLogger(),
		Now:       func() time.Time { return f.fixedClock },
		UserID:    userID,
	})
	require.NoError(f.t, err)
	return d
}

// start переводит диспетчер в StateScanning
func (f *fixture) start() {
	f.d.Focus()
	f.d.SetPermission(true)
	require.Equal(f.t, StateScanning, f.d.State())
}

func (f *fixture) mint(t task.Task) string {
	f.t.Helper()
	plaintext, err := task.Encode(t)
	require.NoError(f.t, err)
	token, err := f.cipher.Encrypt(plaintext)
	require.NoError(f.t, err)
	return token
}

func (f *fixture) encrypt(plaintext string) string {
	f.t.Helper()
	token, err := f.cipher.Encrypt(plaintext)
	require.NoError(f.t, err)
	return token
}

func TestNewDispatcher_RequiresDeps(t *testing.T) {
	f := newFixture(t, scannerUser)

	full := Deps{
		Cipher:    f.cipher,
		Ledger:    f.ledger,
		Audit:     f.audit,
		Surface:   f.surface,
		Navigator: f.navigator,
		Notifier:  f.notifier,
	}

	tests := []struct {
		mutate func(*Deps)
		name   string
		errMsg string
	}{
		{name: "no cipher", mutate: func(d *Deps) { d.Cipher = nil }, errMsg: "cipher is required"},
		{name: "no ledger", mutate: func(d *Deps) { d.Ledger = nil }, errMsg: "ledger is required"},
		{name: "no audit", mutate: func(d *Deps) { d.Audit = nil }, errMsg: "audit log is required"},
		{name: "no surface", mutate: func(d *Deps) { d.Surface = nil }, errMsg: "scan surface is required"},
		{name: "no navigator", mutate: func(d *Deps) { d.Navigator = nil }, errMsg: "navigator is required"},
		{name: "no notifier", mutate: func(d *Deps) { d.Notifier = nil }, errMsg: "notifier is required"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			deps := full
			tt.mutate(&deps)
			d, err := NewDispatcher(deps)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.errMsg)
			assert.Nil(t, d)
		})
	}

	d, err := NewDispatcher(full)
	require.NoError(t, err)
	assert.Equal(t, StateIdle, d.State())
}

func TestDispatcher_FocusAndPermission(t *testing.T) {
	f := newFixture(t, scannerUser)
	d := f.d

	d.Focus()
	assert.Equal(t, StateIdle, d.State(), "no permission yet")
	assert.Empty(t, f.surface.SetActiveCalls())

	d.SetPermission(true)
	assert.Equal(t, StateScanning, d.State())

	d.Blur()
	assert.Equal(t, StateIdle, d.State())

	d.Focus()
	assert.Equal(t, StateScanning, d.State())

	d.SetPermission(false)
	assert.Equal(t, StateIdle, d.State())

	calls := f.surface.SetActiveCalls()
	require.Len(t, calls, 4)
	assert.True(t, calls[0].Active)
	assert.False(t, calls[1].Active)
	assert.True(t, calls[2].Active)
	assert.False(t, calls[3].Active)
}

func TestDispatcher_EndToEnd_ViewDigitalCard(t *testing.T) {
	f := newFixture(t, scannerUser)
	f.start()

	token := f.encrypt(`{"task":"viewDigitalCard","data":"user123"}`)
	out := f.d.HandleDecode(context.Background(), token)

	assert.Equal(t, OutcomeNavigate, out.Kind)
	assert.Equal(t, models.ResultSuccess, out.Result)
	assert.Nil(t, out.Message)

	entries := f.audit.AppendCalls()
	require.Len(t, entries, 1)
	assert.Equal(t, models.ScanTypeViewDigitalCard, entries[0].Entry.ScanType)
	assert.Equal(t, scannerUser, entries[0].Entry.UserID)
	assert.Equal(t, "user123", entries[0].Entry.TargetID)
	assert.Equal(t, crypto.Fingerprint(token), entries[0].Entry.TokenFingerprint)
	assert.NotEmpty(t, entries[0].Entry.ID)

	navs := f.navigator.NavigateCalls()
	require.Len(t, navs, 1)
	want := Intent{Screen: "DigitalCard", Params: map[string]string{"userId": "user123"}}
	assert.Equal(t, want, navs[0].Intent)
	assert.Equal(t, want, *out.Intent)

	assert.Empty(t, f.notifier.NotifyCalls())
	assert.Empty(t, f.ledger.ExistsCalls())
	assert.Equal(t, StateNavigated, f.d.State())

	// Камера выключена и остаётся выключенной после перехода
	calls := f.surface.SetActiveCalls()
	require.Len(t, calls, 2)
	assert.False(t, calls[1].Active)
}

func TestDispatcher_LegacyToken(t *testing.T) {
	f := newFixture(t, scannerUser)
	f.start()

	token := "6f1c2b1e-8d4a-4c3e-9b7a-2f5d1e0c9a11:000102030405060708090a0b0c0d0e0f:KifTSuUDaX7pBv/DJ1mjbbzx4UPhWUl9/2HTq13o1C2o/KUjjR7lOVUjt8c3su+4"
	out := f.d.HandleDecode(context.Background(), token)

	require.Equal(t, OutcomeNavigate, out.Kind)
	assert.Equal(t, ScreenDigitalCard, out.Intent.Screen)
	assert.Equal(t, "user123", out.Intent.Params[ParamUserID])
}

func TestDispatcher_ViewCompanyInfo(t *testing.T) {
	f := newFixture(t, scannerUser)
	f.start()

	out := f.d.HandleDecode(context.Background(), f.mint(task.ViewCompanyInfo{EventID: "fair-2024", CompanyID: "acme"}))

	require.Equal(t, OutcomeNavigate, out.Kind)
	assert.Equal(t, Intent{
		Screen: ScreenEventCompanyInfo,
		Params: map[string]string{"eventId": "fair-2024", "companyId": "acme"},
	}, *out.Intent)

	entries := f.audit.AppendCalls()
	require.Len(t, entries, 1)
	assert.Equal(t, models.ScanTypeViewCompanyInfo, entries[0].Entry.ScanType)
	assert.Equal(t, "acme", entries[0].Entry.TargetID)
}

func TestDispatcher_RepeatViewsAreAllLogged(t *testing.T) {
	f := newFixture(t, scannerUser)
	f.start()
	token := f.mint(task.ViewDigitalCard{UserID: "user123"})

	for range 3 {
		out := f.d.HandleDecode(context.Background(), token)
		require.Equal(t, OutcomeNavigate, out.Kind)
		require.NoError(t, f.d.Activate())
	}

	assert.Len(t, f.audit.AppendCalls(), 3)
	assert.Len(t, f.navigator.NavigateCalls(), 3)
}

func TestDispatcher_Attendance_Idempotent(t *testing.T) {
	f := newFixture(t, scannerUser)
	f.start()
	token := f.mint(task.Attendance{EventID: "fair-2024"})

	first := f.d.HandleDecode(context.Background(), token)
	require.Equal(t, OutcomeNavigate, first.Kind)
	assert.Equal(t, models.ResultSuccess, first.Result)
	assert.Equal(t, ScreenQRRecorded, first.Intent.Screen)
	assert.Equal(t, AttendanceRecordedText, first.Intent.Params[ParamMessage])
	assert.Equal(t, "true", first.Intent.Params[ParamSuccess])

	require.NoError(t, f.d.Activate())

	second := f.d.HandleDecode(context.Background(), token)
	assert.Equal(t, OutcomeRecoverable, second.Kind)
	assert.Equal(t, models.ResultDuplicate, second.Result)
	assert.Equal(t, MsgAlreadyDone, *second.Message)
	assert.Equal(t, StateScanning, f.d.State(), "scanning resumes")

	creates := f.ledger.CreateCalls()
	require.Len(t, creates, 1)
	rec := creates[0].Record
	assert.Equal(t, "fair-2024", rec.EventID)
	assert.Equal(t, scannerUser, rec.UserID)
	assert.Equal(t, models.TaskAttendance, rec.Task)
	assert.Equal(t, f.fixedClock, rec.Timestamp)
	assert.Nil(t, rec.Answers)

	entries := f.audit.AppendCalls()
	require.Len(t, entries, 2)
	assert.Equal(t, models.ResultSuccess, entries[0].Entry.Result)
	assert.Equal(t, models.ResultDuplicate, entries[1].Entry.Result)
	assert.Equal(t, models.ScanTypeAttendance, entries[1].Entry.ScanType)

	notes := f.notifier.NotifyCalls()
	require.Len(t, notes, 1)
	assert.Equal(t, MsgAlreadyDone, notes[0].Msg)
}

func TestDispatcher_Attendance_LostRace(t *testing.T) {
	f := newFixture(t, scannerUser)
	f.ledger.ExistsFunc = func(ctx context.Context, eventID, userID string) (bool, error) {
		return false, nil
	}
	f.ledger.CreateFunc = func(ctx context.Context, record *models.AttendanceRecord) error {
		return ErrAlreadyRecorded
	}
	f.start()

	out := f.d.HandleDecode(context.Background(), f.mint(task.Attendance{EventID: "fair-2024"}))

	assert.Equal(t, OutcomeRecoverable, out.Kind)
	assert.Equal(t, models.ResultDuplicate, out.Result)
	assert.Empty(t, f.navigator.NavigateCalls())
}

func TestDispatcher_Attendance_QuestionnaireHandOff(t *testing.T) {
	f := newFixture(t, scannerUser)
	f.start()

	out := f.d.HandleDecode(context.Background(), f.mint(task.Attendance{EventID: "fair-2024", QuestionnaireID: "q-1"}))

	require.Equal(t, OutcomeNavigate, out.Kind)
	assert.Equal(t, models.ResultQuestionnaireRequired, out.Result)
	assert.Equal(t, Intent{
		Screen: ScreenEventForm,
		Params: map[string]string{"eventId": "fair-2024", "questionnaireId": "q-1"},
	}, *out.Intent)

	assert.Empty(t, f.ledger.CreateCalls(), "the form flow writes the record")
	assert.Len(t, f.ledger.ExistsCalls(), 1)

	entries := f.audit.AppendCalls()
	require.Len(t, entries, 1)
	assert.Equal(t, models.ResultQuestionnaireRequired, entries[0].Entry.Result)
}

func TestDispatcher_Attendance_QuestionnaireAlreadyRecorded(t *testing.T) {
	f := newFixture(t, scannerUser)
	f.records["fair-2024/"+scannerUser] = models.NewAttendanceRecord("fair-2024", scannerUser, f.fixedClock, nil)
	f.start()

	out := f.d.HandleDecode(context.Background(), f.mint(task.Attendance{EventID: "fair-2024", QuestionnaireID: "q-1"}))

	assert.Equal(t, OutcomeRecoverable, out.Kind)
	assert.Equal(t, models.ResultDuplicate, out.Result)
	assert.Empty(t, f.navigator.NavigateCalls())
}

func TestDispatcher_Attendance_LedgerFailures(t *testing.T) {
	storeDown := errors.New("store unavailable")

	tests := []struct {
		setup       func(f *fixture)
		name        string
		wantCreates int
	}{
		{
			name: "exists fails",
			setup: func(f *fixture) {
				f.ledger.ExistsFunc = func(ctx context.Context, eventID, userID string) (bool, error) {
					return false, storeDown
				}
			},
			wantCreates: 0,
		},
		{
			name: "create fails",
			setup: func(f *fixture) {
				f.ledger.CreateFunc = func(ctx context.Context, record *models.AttendanceRecord) error {
					return storeDown
				}
			},
			wantCreates: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t, scannerUser)
			tt.setup(f)
			f.start()

			out := f.d.HandleDecode(context.Background(), f.mint(task.Attendance{EventID: "fair-2024"}))

			assert.Equal(t, OutcomeRecoverable, out.Kind)
			assert.Equal(t, models.ResultLedgerError, out.Result)
			assert.Equal(t, MsgLedgerFailed, *out.Message)
			assert.Len(t, f.ledger.CreateCalls(), tt.wantCreates)
			assert.Empty(t, f.records)
			assert.Empty(t, f.navigator.NavigateCalls())
			assert.Equal(t, StateScanning, f.d.State())

			entries := f.audit.AppendCalls()
			require.Len(t, entries, 1)
			assert.Equal(t, models.ResultLedgerError, entries[0].Entry.Result)
			assert.Contains(t, entries[0].Entry.ErrorMessage, "store unavailable")
		})
	}
}

func TestDispatcher_Attendance_NoUser(t *testing.T) {
	f := newFixture(t, "")
	f.start()

	out := f.d.HandleDecode(context.Background(), f.mint(task.Attendance{EventID: "fair-2024"}))

	assert.Equal(t, OutcomeRecoverable, out.Kind)
	assert.Equal(t, MsgSignInNeeded, *out.Message)
	assert.Empty(t, f.ledger.ExistsCalls())
	assert.Empty(t, f.ledger.CreateCalls())
	assert.Empty(t, f.audit.AppendCalls())
}

func TestDispatcher_UnknownTask(t *testing.T) {
	f := newFixture(t, scannerUser)
	f.start()

	out := f.d.HandleDecode(context.Background(), f.encrypt(`{"task":"bogus","data":{}}`))

	assert.Equal(t, OutcomeRecoverable, out.Kind)
	assert.Equal(t, models.ResultInvalidQRCode, out.Result)
	assert.Nil(t, out.Intent)

	entries := f.audit.AppendCalls()
	require.Len(t, entries, 1)
	assert.Equal(t, models.ScanTypeUnknown, entries[0].Entry.ScanType)
	assert.Equal(t, "bogus", entries[0].Entry.Task)

	notes := f.notifier.NotifyCalls()
	require.Len(t, notes, 1)
	assert.Equal(t, MsgNotRecognized, notes[0].Msg)

	assert.Empty(t, f.navigator.NavigateCalls())
	assert.Equal(t, StateScanning, f.d.State())
}

func TestDispatcher_DecodeFailures(t *testing.T) {
	other, err := crypto.NewTokenCipher([]byte("not-fw"))
	require.NoError(t, err)
	foreign, err := other.Encrypt(`{"task":"viewDigitalCard","data":"user123"}`)
	require.NoError(t, err)

	f := newFixture(t, scannerUser)

	tests := []struct {
		name  string
		token string
	}{
		{name: "plain url", token: "https://example.com"},
		{name: "too many segments", token: "a:b:c:d"},
		{name: "foreign secret", token: foreign},
		{name: "not json", token: f.encrypt("hello")},
		{name: "missing data", token: f.encrypt(`{"task":"viewDigitalCard"}`)},
		{name: "bad data", token: f.encrypt(`{"task":"viewDigitalCard","data":42}`)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t, scannerUser)
			f.start()

			out := f.d.HandleDecode(context.Background(), tt.token)

			assert.Equal(t, OutcomeRecoverable, out.Kind)
			assert.Equal(t, models.ResultDecodeFailed, out.Result)
			assert.Equal(t, MsgUnreadable, *out.Message)
			assert.Empty(t, f.navigator.NavigateCalls())
			assert.Equal(t, StateScanning, f.d.State())

			entries := f.audit.AppendCalls()
			require.Len(t, entries, 1)
			assert.Equal(t, models.ScanTypeError, entries[0].Entry.ScanType)
			assert.NotEmpty(t, entries[0].Entry.ErrorMessage)
		})
	}
}

func TestDispatcher_DecodeFailure_UnknownUser(t *testing.T) {
	f := newFixture(t, "")
	f.start()

	out := f.d.HandleDecode(context.Background(), "garbage")

	assert.Equal(t, OutcomeRecoverable, out.Kind)
	assert.Empty(t, f.audit.AppendCalls())
	assert.Len(t, f.notifier.NotifyCalls(), 1)
}

func TestDispatcher_AuditFailureDoesNotChangeOutcome(t *testing.T) {
	f := newFixture(t, scannerUser)
	f.audit.AppendFunc = func(ctx context.Context, entry *models.ScanLogEntry) error {
		return errors.New("audit store down")
	}
	f.start()

	out := f.d.HandleDecode(context.Background(), f.mint(task.Attendance{EventID: "fair-2024"}))

	assert.Equal(t, OutcomeNavigate, out.Kind)
	assert.Equal(t, models.ResultSuccess, out.Result)
	assert.Len(t, f.ledger.CreateCalls(), 1)
}

func TestDispatcher_IgnoresDecodeOutsideScanning(t *testing.T) {
	f := newFixture(t, scannerUser)
	dec := &DecrypterMock{
		DecryptFunc: func(token string) (string, error) {
			return `{"task":"viewDigitalCard","data":"user123"}`, nil
		},
	}
	d := f.newDispatcher(dec, scannerUser)

	out := d.HandleDecode(context.Background(), "token")
	assert.Equal(t, OutcomeIgnored, out.Kind)
	assert.Empty(t, dec.DecryptCalls())

	d.Focus()
	d.SetPermission(true)
	out = d.HandleDecode(context.Background(), "token")
	require.Equal(t, OutcomeNavigate, out.Kind)

	// После перехода повторное событие той же камеры игнорируется
	out = d.HandleDecode(context.Background(), "token")
	assert.Equal(t, OutcomeIgnored, out.Kind)
	assert.Len(t, dec.DecryptCalls(), 1)
}

func TestDispatcher_SingleFlight(t *testing.T) {
	f := newFixture(t, scannerUser)

	started := make(chan struct{})
	release := make(chan struct{})
	dec := &DecrypterMock{
		DecryptFunc: func(token string) (string, error) {
			close(started)
			<-release
			return `{"task":"viewDigitalCard","data":"user123"}`, nil
		},
	}
	f.d = f.newDispatcher(dec, scannerUser)
	f.start()

	done := make(chan Outcome, 1)
	go func() {
		done <- f.d.HandleDecode(context.Background(), "same-code")
	}()
	<-started

	assert.Equal(t, StateProcessing, f.d.State())
	calls := f.surface.SetActiveCalls()
	require.NotEmpty(t, calls)
	assert.False(t, calls[len(calls)-1].Active, "camera is off while processing")

	// Тот же код в кадре продолжает декодироваться
	for range 5 {
		assert.Equal(t, OutcomeIgnored, f.d.HandleDecode(context.Background(), "same-code").Kind)
	}

	close(release)
	out := <-done
	assert.Equal(t, OutcomeNavigate, out.Kind)
	assert.Len(t, dec.DecryptCalls(), 1)
	assert.Len(t, f.audit.AppendCalls(), 1)
}

func TestDispatcher_BlurDuringProcessing(t *testing.T) {
	f := newFixture(t, scannerUser)

	started := make(chan struct{})
	release := make(chan struct{})
	dec := &DecrypterMock{
		DecryptFunc: func(token string) (string, error) {
			close(started)
			<-release
			return `{"task":"attendance","data":{"eventId":"fair-2024","questionnaireId":null}}`, nil
		},
	}
	f.d = f.newDispatcher(dec, scannerUser)
	f.start()

	done := make(chan Outcome, 1)
	go func() {
		done <- f.d.HandleDecode(context.Background(), "token")
	}()
	<-started

	f.d.Blur()
	assert.Equal(t, StateIdle, f.d.State())
	close(release)

	out := <-done
	assert.Equal(t, OutcomeDiscarded, out.Kind)
	assert.Empty(t, f.ledger.CreateCalls(), "no ledger write after the screen left")
	assert.Empty(t, f.navigator.NavigateCalls())
	assert.Empty(t, f.notifier.NotifyCalls())
	assert.Equal(t, StateIdle, f.d.State())
}

func TestDispatcher_CallerCancelDiscards(t *testing.T) {
	f := newFixture(t, scannerUser)

	ctx, cancel := context.WithCancel(context.Background())
	dec := &DecrypterMock{
		DecryptFunc: func(token string) (string, error) {
			cancel()
			return `{"task":"viewDigitalCard","data":"user123"}`, nil
		},
	}
	f.d = f.newDispatcher(dec, scannerUser)
	f.start()

	out := f.d.HandleDecode(ctx, "token")

	assert.Equal(t, OutcomeDiscarded, out.Kind)
	assert.Empty(t, f.navigator.NavigateCalls())
	assert.Equal(t, StateScanning, f.d.State(), "screen still focused")
}

func TestDispatcher_PanicBecomesRecoverable(t *testing.T) {
	f := newFixture(t, scannerUser)
	dec := &DecrypterMock{
		DecryptFunc: func(token string) (string, error) {
			panic("boom")
		},
	}
	f.d = f.newDispatcher(dec, scannerUser)
	f.start()

	var out Outcome
	require.NotPanics(t, func() {
		out = f.d.HandleDecode(context.Background(), "token")
	})
	assert.Equal(t, OutcomeRecoverable, out.Kind)
	assert.Equal(t, MsgUnreadable, *out.Message)
	assert.Equal(t, StateScanning, f.d.State())
}

func TestDispatcher_RefocusAfterNavigation(t *testing.T) {
	f := newFixture(t, scannerUser)
	f.start()

	out := f.d.HandleDecode(context.Background(), f.mint(task.ViewDigitalCard{UserID: "user123"}))
	require.Equal(t, OutcomeNavigate, out.Kind)
	require.Equal(t, StateNavigated, f.d.State())

	// Экран уходит и возвращается - новый экземпляр сканирования
	f.d.Blur()
	assert.Equal(t, StateIdle, f.d.State())
	f.d.Focus()
	assert.Equal(t, StateScanning, f.d.State())

	out = f.d.HandleDecode(context.Background(), f.mint(task.ViewDigitalCard{UserID: "user456"}))
	require.Equal(t, OutcomeNavigate, out.Kind)
	assert.Equal(t, "user456", out.Intent.Params[ParamUserID])
}

func TestDispatcher_Activate(t *testing.T) {
	f := newFixture(t, scannerUser)

	err := f.d.Activate()
	assert.ErrorIs(t, err, ErrCameraUnavailable)
	assert.Contains(t, err.Error(), "permission")

	f.d.SetPermission(true)
	err = f.d.Activate()
	assert.ErrorIs(t, err, ErrCameraUnavailable)
	assert.Contains(t, err.Error(), "not focused")

	f.d.Focus()
	require.NoError(t, f.d.Activate())
	assert.Equal(t, StateScanning, f.d.State())

	// Повторная активация ничего не меняет
	require.NoError(t, f.d.Activate())
	assert.Equal(t, StateScanning, f.d.State())
}

func TestDispatcher_Close(t *testing.T) {
	f := newFixture(t, scannerUser)
	f.start()

	f.d.Close()
	assert.Equal(t, StateIdle, f.d.State())

	out := f.d.HandleDecode(context.Background(), f.mint(task.ViewDigitalCard{UserID: "user123"}))
	assert.Equal(t, OutcomeIgnored, out.Kind)

	f.d.Focus()
	f.d.SetPermission(true)
	assert.Equal(t, StateIdle, f.d.State())
	assert.ErrorIs(t, f.d.Activate(), ErrCameraUnavailable)

	// Повторный Close безопасен
	f.d.Close()
}
