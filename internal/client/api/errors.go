package api

import (
	"errors"
	"fmt"
	"net/http"
)

var (
	// ErrUnauthorized indicates a missing, expired or rejected access token
	ErrUnauthorized = errors.New("unauthorized")

	// ErrNotFound indicates that the requested document does not exist
	ErrNotFound = errors.New("not found")

	// ErrConflict indicates that the document already exists
	ErrConflict = errors.New("conflict")
)

// StatusError is a non-2xx response from the ledger server
type StatusError struct {
	Message    string
	StatusCode int
}

func (e *StatusError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("server error (%d)", e.StatusCode)
	}
	return fmt.Sprintf("server error (%d): %s", e.StatusCode, e.Message)
}

// Unwrap maps well-known status codes to sentinel errors
func (e *StatusError) Unwrap() error {
	switch e.StatusCode {
	case http.StatusUnauthorized:
		return ErrUnauthorized
	case http.StatusNotFound:
		return ErrNotFound
	case http.StatusConflict:
		return ErrConflict
	default:
		return nil
	}
}
