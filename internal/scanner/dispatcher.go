// Package scanner turns raw strings from the camera into handled scan outcomes.
//
// A Dispatcher owns the scan state machine (Idle, Scanning, Processing,
// Navigated), switches the camera off while a decode is being processed
// and routes decrypted tasks to the task handlers.
package scanner

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/iudanet/fairscan/internal/crypto"
	"github.com/iudanet/fairscan/internal/models"
	"github.com/iudanet/fairscan/internal/task"
)

// Deps are the collaborators of a Dispatcher.
// Everything except Logger, Now and UserID is required.
type Deps struct {
	Cipher    Decrypter
	Ledger    Ledger
	Audit     AuditLog
	Surface   Surface
	Navigator Navigator
	Notifier  Notifier
	Logger    *slog.Logger
	Now       func() time.Time
	// UserID is the signed-in user doing the scanning; empty when unknown
	UserID    string
}

// Dispatcher is the scan state machine for one scanning screen.
// Decode events are handled one at a time; events arriving while a scan
// is processing are ignored.
type Dispatcher struct {
	cipher    Decrypter
	ledger    Ledger
	audit     AuditLog
	surface   Surface
	navigator Navigator
	notifier  Notifier
	logger    *slog.Logger
	now       func() time.Time
	cancel    context.CancelFunc
	userID    string

	generation uint64
	mu         sync.Mutex
	state      State
	focused    bool
	permitted  bool
	cameraOn   bool
	closed     bool
}

// NewDispatcher creates a Dispatcher in StateIdle with the camera off.
func NewDispatcher(deps Deps) (*Dispatcher, error) {
	switch {
	case deps.Cipher == nil:
		return nil, errors.New("cipher is required")
	case deps.Ledger == nil:
		return nil, errors.New("ledger is required")
	case deps.Audit == nil:
		return nil, errors.New("audit log is required")
	case deps.Surface == nil:
		return nil, errors.New("scan surface is required")
	case deps.Navigator == nil:
		return nil, errors.New("navigator is required")
	case deps.Notifier == nil:
		return nil, errors.New("notifier is required")
	}

	logger := deps.Logger
	if logger == nil {
		logger = slog.Default()
	}
	now := deps.Now
	if now == nil {
		now = time.Now
	}

	return &Dispatcher{
		cipher:    deps.Cipher,
		ledger:    deps.Ledger,
		audit:     deps.Audit,
		surface:   deps.Surface,
		navigator: deps.Navigator,
		notifier:  deps.Notifier,
		logger:    logger,
		now:       now,
		userID:    deps.UserID,
		state:     StateIdle,
	}, nil
}

// State returns the current state
func (d *Dispatcher) State() State {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.state
}

// Focus marks the hosting screen as focused. With camera permission this
// starts scanning; from StateNavigated it starts a new scan instance.
func (d *Dispatcher) Focus() {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.closed {
		return
	}
	d.focused = true
	d.startScanning()
}

// Blur marks the screen as unfocused: the camera goes off and any scan in
// progress is cancelled and its result discarded.
func (d *Dispatcher) Blur() {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.focused = false
	d.stop()
}

// SetPermission records whether camera access is granted.
func (d *Dispatcher) SetPermission(granted bool) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.closed {
		return
	}
	d.permitted = granted
	if granted {
		d.startScanning()
		return
	}
	if d.state == StateScanning {
		_ = d.setState(StateIdle)
	}
}

// Activate switches the camera back on by hand, e.g. after a scan ended in
// navigation but the screen stayed visible.
func (d *Dispatcher) Activate() error {
	d.mu.Lock()
	defer d.mu.Unlock()

	switch {
	case d.closed:
		return fmt.Errorf("%w: dispatcher closed", ErrCameraUnavailable)
	case !d.permitted:
		return fmt.Errorf("%w: permission not granted", ErrCameraUnavailable)
	case !d.focused:
		return fmt.Errorf("%w: screen not focused", ErrCameraUnavailable)
	case d.state == StateProcessing:
		return fmt.Errorf("%w: scan in progress", ErrCameraUnavailable)
	}

	d.startScanning()
	return nil
}

// Close stops scanning for good. Later events are ignored.
func (d *Dispatcher) Close() {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.closed {
		return
	}
	d.focused = false
	d.stop()
	d.closed = true
}

// HandleDecode processes one raw string delivered by the camera.
// It never panics and never returns an error: every failure becomes a
// recoverable outcome with a user-visible message.
func (d *Dispatcher) HandleDecode(ctx context.Context, raw string) Outcome {
	d.mu.Lock()
	if d.closed || d.state != StateScanning {
		state := d.state
		d.mu.Unlock()
		d.logger.Debug("Ignoring decode event", "state", state)
		return Outcome{Kind: OutcomeIgnored}
	}
	// Камера выключается на время обработки: один QR-код в кадре
	// продолжает генерировать события декодирования
	_ = d.setState(StateProcessing)
	d.generation++
	gen := d.generation
	scanCtx, cancel := context.WithCancel(ctx)
	d.cancel = cancel
	d.mu.Unlock()

	out := d.process(scanCtx, raw)
	cancelled := scanCtx.Err() != nil
	cancel()

	d.mu.Lock()
	if gen != d.generation || d.state != StateProcessing {
		d.mu.Unlock()
		d.logger.Info("Discarding result of abandoned scan", "result", out.Result)
		return discarded()
	}
	d.cancel = nil

	if cancelled || out.Kind == OutcomeDiscarded {
		d.resume()
		d.mu.Unlock()
		d.logger.Info("Discarding result of cancelled scan", "result", out.Result)
		return discarded()
	}

	if out.Kind == OutcomeNavigate {
		_ = d.setState(StateNavigated)
	} else {
		d.resume()
	}
	d.mu.Unlock()

	switch out.Kind {
	case OutcomeNavigate:
		d.navigator.Navigate(ctx, *out.Intent)
	case OutcomeRecoverable:
		d.notifier.Notify(ctx, *out.Message)
	}
	return out
}

// process decrypts, parses and handles raw. Panics are turned into a
// recoverable outcome.
func (d *Dispatcher) process(ctx context.Context, raw string) (out Outcome) {
	s := &scan{
		d:           d,
		fingerprint: crypto.Fingerprint(raw),
	}

	defer func() {
		if r := recover(); r != nil {
			d.logger.Error("Panic while handling scan",
				"panic", r,
				"fingerprint", s.fingerprint,
			)
			out = recoverable(models.ResultDecodeFailed, MsgUnreadable)
		}
	}()

	plaintext, err := d.cipher.Decrypt(raw)
	if err != nil {
		return s.failure(ctx, err)
	}

	t, err := task.Parse(plaintext)
	if err != nil {
		return s.failure(ctx, err)
	}

	d.logger.Debug("Decoded task token", "task", t.Name(), "fingerprint", s.fingerprint)
	return task.Visit[Outcome](ctx, t, s)
}

// setState must be called with mu held. The camera is on exactly in StateScanning.
func (d *Dispatcher) setState(to State) error {
	if err := validateTransition(d.state, to); err != nil {
		d.logger.Error("Rejected state transition", "error", err)
		return err
	}

	from := d.state
	d.state = to

	if active := to == StateScanning; active != d.cameraOn {
		d.cameraOn = active
		d.surface.SetActive(active)
	}

	d.logger.Debug("Scanner state changed", "from", from, "to", to)
	return nil
}

func (d *Dispatcher) startScanning() {
	if !d.focused || !d.permitted {
		return
	}
	if d.state == StateIdle || d.state == StateNavigated {
		_ = d.setState(StateScanning)
	}
}

// resume ends processing: back to scanning if the screen can scan, else idle
func (d *Dispatcher) resume() {
	if d.focused && d.permitted && !d.closed {
		_ = d.setState(StateScanning)
		return
	}
	_ = d.setState(StateIdle)
}

func (d *Dispatcher) stop() {
	if d.cancel != nil {
		d.cancel()
		d.cancel = nil
	}
	// Результат текущего скана больше не применяется
	d.generation++
	if d.state != StateIdle {
		_ = d.setState(StateIdle)
	}
}

func (d *Dispatcher) newEntry(scanType models.ScanType, taskName, targetID, fingerprint string) *models.ScanLogEntry {
	return &models.ScanLogEntry{
		ID:               uuid.NewString(),
		Timestamp:        d.now().UTC(),
		Task:             taskName,
		ScanType:         scanType,
		UserID:           d.userID,
		TargetID:         targetID,
		TokenFingerprint: fingerprint,
	}
}
