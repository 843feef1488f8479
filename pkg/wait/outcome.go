package wait

import (
	"time"
)

// Outcome classifies how a Wait call ended.
type Outcome int

const (
	// Satisfied means the predicate produced a result before the
	// deadline.
	Satisfied Outcome = iota
	// TimedOut means the deadline elapsed with the condition unmet.
	TimedOut
	// Cancelled means the context ended the wait before the deadline.
	Cancelled
	// Faulted means the predicate itself failed, or the request was
	// malformed.
	Faulted
)

func (o Outcome) String() string {
	switch o {
	case Satisfied:
		return "satisfied"
	case TimedOut:
		return "timeout"
	case Cancelled:
		return "cancelled"
	case Faulted:
		return "faulted"
	default:
		return "unknown"
	}
}

// Result is the product of a single Wait call. Exactly one is produced
// per call.
type Result[T any] struct {
	// Outcome classifies the result.
	Outcome Outcome
	// Value is the predicate's result when Outcome is Satisfied and
	// the zero value otherwise.
	Value T
	// Elapsed is the wall-clock time the call spent. On timeout it is
	// at least the request timeout and overshoots it by less than one
	// poll interval.
	Elapsed time.Duration
	// Err is nil when Outcome is Satisfied. Otherwise it is a
	// *TimeoutError, a *FaultError, or the context's error for a
	// cancelled wait.
	Err error
}

// Unwrap flattens the result into the usual value-and-error pair.
func (r Result[T]) Unwrap() (T, error) {
	return r.Value, r.Err
}
