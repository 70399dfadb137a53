package paramcheck

import "time"

// Future holds the outcome of a validation pass for deferred observation,
// letting callers treat validation failures uniformly with other
// asynchronous failures in a pipeline.
type Future struct {
	params map[string]any
	err    error
	done   chan struct{}
}

// Await returns the validation result and error.
func (f *Future) Await() (map[string]any, error) {
	<-f.done
	return f.params, f.err
}

// AwaitWithTimeout returns the validation result and error if available
// before the timeout elapses, otherwise ErrAwaitTimeout.
func (f *Future) AwaitWithTimeout(timeout time.Duration) (map[string]any, error) {
	select {
	case <-f.done:
		return f.params, f.err
	case <-time.After(timeout):
		return nil, ErrAwaitTimeout
	}
}

// IsComplete reports whether the result is available without blocking.
func (f *Future) IsComplete() bool {
	select {
	case <-f.done:
		return true
	default:
		return false
	}
}

// ValidateAsync runs Validate to completion on the calling goroutine and
// delivers the outcome through the returned Future. It never fails
// synchronously: usage errors and validation failures alike surface only
// from Await. No cancellation applies; the future is already resolved when
// ValidateAsync returns.
func (v *Validator) ValidateAsync(params map[string]any, rules []any, opts ...ValidateOption) *Future {
	f := &Future{done: make(chan struct{})}
	f.params, f.err = v.Validate(params, rules, opts...)
	close(f.done)
	return f
}
