package crypto

import (
	"errors"
	"fmt"
)

var (
	// ErrMalformedToken indicates a token that does not split into exactly three segments
	ErrMalformedToken = errors.New("malformed token")

	// ErrDecryptFailed indicates a wrong key, corrupted bytes or an unknown scheme.
	// The cause is kept for logs only; callers must not tell these apart.
	ErrDecryptFailed = errors.New("decrypt failed")

	// ErrEncryptFailed indicates that the cipher could not produce a token
	ErrEncryptFailed = errors.New("encrypt failed")
)

// CipherError carries one of the sentinel kinds above plus an optional cause.
type CipherError struct {
	Kind error
	Err  error
	Msg  string
}

func (e *CipherError) Error() string {
	if e == nil {
		return ""
	}
	if e.Msg == "" {
		return e.Kind.Error()
	}
	return fmt.Sprintf("%s: %s", e.Kind.Error(), e.Msg)
}

// Unwrap exposes only the kind so the cause never leaks through errors.Is chains.
func (e *CipherError) Unwrap() error { return e.Kind }

// Cause returns the underlying failure for diagnostics.
func (e *CipherError) Cause() error { return e.Err }
