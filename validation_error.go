package paramcheck

import (
	"errors"
	"strings"
)

// ValidationError aggregates every rule failure from a single validation
// pass. Messages are kept in rule-evaluation order, so the rendered error
// text is fully reproducible for a given input.
type ValidationError struct {
	Messages []string
}

// Error joins all failure messages with a single space.
func (e *ValidationError) Error() string {
	if len(e.Messages) == 0 {
		return "validation failed"
	}
	return strings.Join(e.Messages, " ")
}

// NewValidationError builds a ValidationError from an already-joined
// message. It has the ErrorFactory signature and mirrors what Validate
// constructs by default.
func NewValidationError(message string) error {
	return &ValidationError{Messages: []string{message}}
}

// ErrorFactory produces the error returned for a failed validation pass.
// Supplied via WithErrorFactory to substitute a caller-defined error type
// for the built-in ValidationError. The message argument is the joined
// aggregate failure text.
type ErrorFactory func(message string) error

// IsValidationError reports whether err is (or wraps) a ValidationError,
// distinguishing data-validation failures from usage errors.
func IsValidationError(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

// AsValidationError extracts the ValidationError wrapped in err, or nil.
func AsValidationError(err error) *ValidationError {
	var ve *ValidationError
	if errors.As(err, &ve) {
		return ve
	}
	return nil
}
