package services

import "errors"

// Sentinel errors carry the user-facing message; handlers map them onto the
// HTTP taxonomy (400/401/403/404/409) and never leak storage errors.
var (
	ErrInvalidCredentials = errors.New("Invalid username or password")
	ErrAccountInactive    = errors.New("Account is inactive")
	ErrForbidden          = errors.New("Unauthorized")
	ErrNotFound           = errors.New("not found")
	ErrDuplicateUsername  = errors.New("Username already exists")
	ErrDuplicateEmail     = errors.New("Email already exists")
	ErrInvalidStatus      = errors.New("Invalid status")
	ErrInvalidTransition  = errors.New("Invalid status transition")
)

// ValidationError is a 400 with a field-specific message.
type ValidationError struct{ Msg string }

func (e *ValidationError) Error() string { return e.Msg }

func invalid(msg string) error { return &ValidationError{Msg: msg} }
