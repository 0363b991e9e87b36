// Package common defines sentinel errors and small helpers shared by the
// VITAL packages. Callers should use errors.Is to match these values.
package common

import "errors"

var (
	// Store-level errors.
	ErrNotFound = errors.New("not found")

	// Flow errors: an operation was invoked from a state that does not allow it.
	ErrWrongState = errors.New("operation not allowed in current state")

	// Input errors for dashboard forms.
	ErrIncomplete = errors.New("required field missing")
)
