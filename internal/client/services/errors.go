package services

import (
	"errors"
	"fmt"

	"github.com/Priyanshu7318/SHIELD/internal/client/client"
)

var (
	// ErrValidation marks input rejected locally; no request was sent.
	ErrValidation = errors.New("invalid input")
	// ErrNotAuthenticated is returned by operations that need a session.
	ErrNotAuthenticated = errors.New("not logged in")
)

func validationError(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrValidation, fmt.Sprintf(format, args...))
}

// AuthError is a login or signup that the API refused.
type AuthError struct {
	Err *client.RemoteError
}

func (e *AuthError) Error() string {
	return "authentication failed: " + e.Err.Detail
}

func (e *AuthError) Unwrap() error {
	return e.Err
}

// asAuthError turns a remote rejection into an *AuthError and leaves every
// other error (network failures in particular) as it is.
func asAuthError(err error) error {
	var re *client.RemoteError
	if errors.As(err, &re) {
		return &AuthError{Err: re}
	}
	return err
}
