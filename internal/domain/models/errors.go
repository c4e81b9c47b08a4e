package models

import (
	"errors"
	"fmt"
)

// Error kinds shared by services and the HTTP layer. Wrap them with context using
// the helpers below and test with errors.Is.
var (
	ErrValidation = errors.New("validation failed")
	ErrNotFound   = errors.New("not found")
	ErrConflict   = errors.New("conflict")
	ErrAuth       = errors.New("authentication required")
	ErrForbidden  = errors.New("invalid credentials")
	ErrStorage    = errors.New("storage failure")
)

// Validationf returns a validation error carrying a human-readable reason.
func Validationf(format string, args ...any) error {
	return &kindError{kind: ErrValidation, msg: fmt.Sprintf(format, args...)}
}

// NotFoundf returns a not-found error carrying a human-readable reason.
func NotFoundf(format string, args ...any) error {
	return &kindError{kind: ErrNotFound, msg: fmt.Sprintf(format, args...)}
}

// Conflictf returns a conflict error carrying a human-readable reason.
func Conflictf(format string, args ...any) error {
	return &kindError{kind: ErrConflict, msg: fmt.Sprintf(format, args...)}
}

// Authf returns an authentication error carrying a human-readable reason.
func Authf(format string, args ...any) error {
	return &kindError{kind: ErrAuth, msg: fmt.Sprintf(format, args...)}
}

// Forbiddenf returns an invalid-credential error carrying a human-readable reason.
func Forbiddenf(format string, args ...any) error {
	return &kindError{kind: ErrForbidden, msg: fmt.Sprintf(format, args...)}
}

// Storage wraps a persistence failure. A nil err yields nil.
func Storage(op string, err error) error {
	if err == nil {
		return nil
	}
	return &kindError{kind: ErrStorage, msg: op, cause: err}
}

type kindError struct {
	kind  error
	msg   string
	cause error
}

func (e *kindError) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("%s: %v", e.msg, e.cause)
	}
	return e.msg
}

func (e *kindError) Unwrap() []error {
	if e.cause != nil {
		return []error{e.kind, e.cause}
	}
	return []error{e.kind}
}

// PublicMessage returns the client-facing text for err, falling back to fallback
// for errors that carry no message of their own.
func PublicMessage(err error, fallback string) string {
	var ke *kindError
	if errors.As(err, &ke) && ke.msg != "" {
		if ke.kind == ErrStorage {
			return fallback
		}
		return ke.msg
	}
	return fallback
}
