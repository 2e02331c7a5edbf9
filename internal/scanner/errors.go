package scanner

import (
	"errors"
	"fmt"
)

var (
	// ErrAlreadyRecorded is returned by Ledger.Create for an existing (event, user) pair
	ErrAlreadyRecorded = errors.New("attendance already recorded")

	// ErrInvalidTransition indicates a state change the dispatcher does not allow
	ErrInvalidTransition = errors.New("invalid state transition")

	// ErrCameraUnavailable is returned by Activate when the camera cannot be switched on
	ErrCameraUnavailable = errors.New("camera unavailable")

	// ErrLedger is the kind of every LedgerError
	ErrLedger = errors.New("ledger error")
)

// LedgerError wraps a store failure during an attendance scan.
type LedgerError struct {
	Err error
	Op  string
}

func (e *LedgerError) Error() string {
	if e == nil {
		return ""
	}
	return fmt.Sprintf("ledger %s: %v", e.Op, e.Err)
}

func (e *LedgerError) Unwrap() []error { return []error{ErrLedger, e.Err} }
