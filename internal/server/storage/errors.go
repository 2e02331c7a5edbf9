package storage

import "errors"

// Common storage errors
var (
	// ErrAttendanceExists indicates that the (event, user) pair is already recorded
	ErrAttendanceExists = errors.New("attendance already exists")

	// ErrQuestionnaireNotFound indicates that questionnaire was not found in storage
	ErrQuestionnaireNotFound = errors.New("questionnaire not found")
)
