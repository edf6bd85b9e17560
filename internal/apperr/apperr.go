// Package apperr defines the error kinds shared by the persistence layer,
// the date parser and the terminal interface.
//
// Every error returned to the shell wraps exactly one kind, so callers can
// branch with errors.Is:
//
//	if errors.Is(err, apperr.ErrNotFound) { ... }
package apperr

import (
	"errors"
	"fmt"
)

var (
	// ErrValidation marks malformed or missing input, unparseable dates and
	// end dates that precede their start.
	ErrValidation = errors.New("validation")

	// ErrNotFound marks operations that referenced a missing book, session or note.
	ErrNotFound = errors.New("not found")

	// ErrConstraint marks operations that would break an invariant, such as
	// closing an already closed reading session or reusing an ISBN.
	ErrConstraint = errors.New("constraint")
)

// Validation returns an error of kind ErrValidation.
func Validation(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrValidation, fmt.Sprintf(format, args...))
}

// NotFound returns an error of kind ErrNotFound for the given entity.
func NotFound(entity string, id uint) error {
	return fmt.Errorf("%w: %s %d", ErrNotFound, entity, id)
}

// Constraint returns an error of kind ErrConstraint.
func Constraint(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrConstraint, fmt.Sprintf(format, args...))
}

// Kind reports the kind name of err, or "error" when it carries none.
func Kind(err error) string {
	switch {
	case errors.Is(err, ErrValidation):
		return "validation"
	case errors.Is(err, ErrNotFound):
		return "not found"
	case errors.Is(err, ErrConstraint):
		return "constraint"
	default:
		return "error"
	}
}
