package wait

import (
	"context"
	"errors"
	"fmt"
	"time"
)

var (
	// ErrNilPredicate rejects requests with no predicate.
	ErrNilPredicate = errors.New("wait: predicate must not be nil")

	// ErrNonPositiveInterval rejects poll intervals that would spin
	// the processor at an unbounded rate.
	ErrNonPositiveInterval = errors.New("wait: poll interval must be positive")
)

// TimeoutError reports that a wait deadline elapsed before its
// condition held. It carries the request description and the elapsed
// time so a failing test is diagnosable from the message alone.
type TimeoutError struct {
	Description string
	Elapsed     time.Duration
}

func (e *TimeoutError) Error() string {
	return fmt.Sprintf("timed out after %v waiting for: %s", e.Elapsed, e.Description)
}

// FaultError reports that a predicate failed while being evaluated.
// It is deliberately distinct from TimeoutError so that a broken check
// never masquerades as a slow condition.
type FaultError struct {
	Description string
	Elapsed     time.Duration

	cause error
}

func (e *FaultError) Error() string {
	return fmt.Sprintf("wait for %s faulted after %v: %v", e.Description, e.Elapsed, e.cause)
}

func (e *FaultError) Unwrap() error {
	return e.cause
}

var expectedErrs = []error{
	nil,
	context.Canceled,
	context.DeadlineExceeded,
}

// IsExpected reports whether err is one of the recoverable ways a wait
// ends: satisfaction, timeout, or cancellation. A faulted predicate is
// not expected and should be treated as a real defect by callers.
func IsExpected(err error) bool {
	var fe *FaultError
	if errors.As(err, &fe) {
		return false
	}

	var te *TimeoutError
	if errors.As(err, &te) {
		return true
	}

	for _, expectedErr := range expectedErrs {
		if errors.Is(err, expectedErr) {
			return true
		}
	}

	return false
}
