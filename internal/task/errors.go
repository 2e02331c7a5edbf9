package task

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidJSON indicates that the decrypted payload is not a JSON object
	ErrInvalidJSON = errors.New("invalid envelope json")

	// ErrMissingField indicates that "task" (string) or "data" is absent
	ErrMissingField = errors.New("missing envelope field")

	// ErrInvalidData indicates a known task whose data has the wrong shape
	ErrInvalidData = errors.New("invalid task data")
)

// EnvelopeError wraps one of the sentinel kinds above with detail.
type EnvelopeError struct {
	Kind error
	Msg  string
}

func (e *EnvelopeError) Error() string {
	if e == nil {
		return ""
	}
	if e.Msg == "" {
		return e.Kind.Error()
	}
	return fmt.Sprintf("%s: %s", e.Kind.Error(), e.Msg)
}

func (e *EnvelopeError) Unwrap() error { return e.Kind }

func missingf(format string, args ...any) error {
	return &EnvelopeError{Kind: ErrMissingField, Msg: fmt.Sprintf(format, args...)}
}

func invalidf(format string, args ...any) error {
	return &EnvelopeError{Kind: ErrInvalidData, Msg: fmt.Sprintf(format, args...)}
}
