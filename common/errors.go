// Package common provides shared constants, types, and utilities
// used across the LED Board application.
package common

import "errors"

// Sentinel errors for board operations.
// These can be checked with errors.Is() for proper error handling.
var (
	// Single LED errors.
	ErrLEDNotFound     = errors.New("LED not found")
	ErrInvalidInterval = errors.New("blink interval out of range")
	ErrInvalidDuration = errors.New("auto-off duration out of range")

	// Collection errors. The UI surfaces these as warning dialogs.
	ErrNoLEDs  = errors.New("no LEDs available")
	ErrAllOn   = errors.New("all LEDs are already on")
	ErrAllOff  = errors.New("all LEDs are already off")
	ErrNoneLit = errors.New("at least one LED must be on")

	// Configuration errors.
	ErrConfigLoad = errors.New("failed to load configuration")
	ErrConfigSave = errors.New("failed to save configuration")
)

// WrapError wraps an error with additional context.
func WrapError(err error, message string) error {
	if err == nil {
		return nil
	}
	return &wrappedError{
		msg: message,
		err: err,
	}
}

type wrappedError struct {
	msg string
	err error
}

func (e *wrappedError) Error() string {
	return e.msg + ": " + e.err.Error()
}

func (e *wrappedError) Unwrap() error {
	return e.err
}
