package paramcheck

import "errors"

// Usage errors indicating a malformed call rather than a data-validation
// failure. They are returned immediately, never accumulated into a
// ValidationError.
var (
	// ErrNilParams is returned when the provided parameters map is nil.
	ErrNilParams = errors.New("paramcheck: provided parameters map must not be nil")

	// ErrNilRules is returned when the rule descriptor list is nil.
	ErrNilRules = errors.New("paramcheck: rule descriptor list must not be nil")

	// ErrNilValidationFunc is returned when a custom-check rule carries a nil
	// predicate. The wrapped message names the offending parameter.
	ErrNilValidationFunc = errors.New("paramcheck: validation function must not be nil")

	// ErrNilDefaultValidation is returned by New when WithDefaultValidation
	// receives a nil predicate.
	ErrNilDefaultValidation = errors.New("paramcheck: default validation predicate must not be nil")

	// ErrNilErrorFactory is returned when WithErrorFactory receives a nil factory.
	ErrNilErrorFactory = errors.New("paramcheck: error factory must not be nil")

	// ErrAwaitTimeout is returned by Future.AwaitWithTimeout when the timeout
	// elapses before the result is available.
	ErrAwaitTimeout = errors.New("paramcheck: timed out waiting for validation result")
)
