package storage

import "errors"

// Common client storage errors
var (
	// ErrAttendanceExists indicates that the local ledger already has the (event, user) pair
	ErrAttendanceExists = errors.New("attendance already recorded locally")

	// ErrAttendanceNotFound indicates that the local ledger has no such record
	ErrAttendanceNotFound = errors.New("attendance not found")
)
