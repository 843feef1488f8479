package wait

import (
	"context"
	"fmt"
	"time"

	"k8s.io/utils/clock"

	"github.com/awaitkit/wait-for/pkg/util"
)

const (
	// DefaultPollInterval is the cadence between predicate evaluations
	// when a Request does not set one.
	DefaultPollInterval = 10 * time.Millisecond

	// DefaultTimeout is the deadline applied by the ForCondition
	// convenience wrapper.
	DefaultTimeout = 5 * time.Second
)

// Predicate is a caller-supplied check, evaluated once per poll cycle.
// It returns the result value and true once the awaited condition
// holds, or false while it does not. A non-nil error means the check
// itself broke, not that the condition is unmet; the waiter stops
// immediately and reports a Faulted result rather than polling on.
//
// A Predicate is never evaluated concurrently with itself within a
// single Wait call. It may read state mutated by other goroutines, but
// it must tolerate repeated evaluation.
type Predicate[T any] func() (T, bool, error)

// Request describes a single wait operation. It is consumed by one
// Wait call and holds no state of its own.
type Request[T any] struct {
	// Predicate is the condition being waited for.
	Predicate Predicate[T]
	// Description labels the condition in failure messages, e.g.
	// "job status == done".
	Description string
	// Timeout bounds the total wall-clock time spent polling. A
	// non-positive Timeout still evaluates the predicate once.
	Timeout time.Duration
	// PollInterval is the cadence between evaluations. Zero means
	// DefaultPollInterval; a negative value is rejected.
	PollInterval time.Duration
}

// RequestOption configures optional Request fields in NewRequest.
type RequestOption func(*requestOptions)

type requestOptions struct {
	pollInterval time.Duration
}

// WithPollInterval overrides DefaultPollInterval for the request.
func WithPollInterval(d time.Duration) RequestOption {
	return func(o *requestOptions) {
		o.pollInterval = d
	}
}

// NewRequest builds a Request, rejecting configurations that would
// otherwise spin the processor. Use it when the poll interval comes
// from outside the program; a literal Request with a zero PollInterval
// is equally valid and picks up the default.
func NewRequest[T any](description string, timeout time.Duration, pred Predicate[T], opts ...RequestOption) (Request[T], error) {
	if pred == nil {
		return Request[T]{}, ErrNilPredicate
	}

	o := requestOptions{
		pollInterval: DefaultPollInterval,
	}
	for _, opt := range opts {
		opt(&o)
	}
	if o.pollInterval <= 0 {
		return Request[T]{}, fmt.Errorf("%w, got %v", ErrNonPositiveInterval, o.pollInterval)
	}

	return Request[T]{
		Predicate:    pred,
		Description:  description,
		Timeout:      timeout,
		PollInterval: o.pollInterval,
	}, nil
}

// Waiter runs wait operations against an injectable clock. A single
// Waiter may serve concurrent Wait calls; it holds no per-call state.
// Always use NewWaiter to create one.
type Waiter[T any] struct {
	clock    clock.Clock
	observer Observer
}

// Option configures a Waiter.
type Option[T any] func(*Waiter[T])

// WithClock replaces the real clock, for tests.
func WithClock[T any](c clock.Clock) Option[T] {
	return func(w *Waiter[T]) {
		w.clock = c
	}
}

// WithObserver attaches an Observer to the waiter. The default is
// NopObserver; the waiter itself never logs or records anything.
func WithObserver[T any](o Observer) Option[T] {
	return func(w *Waiter[T]) {
		w.observer = o
	}
}

// NewWaiter returns a Waiter backed by the real clock unless
// configured otherwise.
func NewWaiter[T any](opts ...Option[T]) *Waiter[T] {
	w := &Waiter[T]{
		clock:    clock.RealClock{},
		observer: NopObserver{},
	}
	for _, opt := range opts {
		opt(w)
	}
	return w
}

// Wait polls req.Predicate until it is satisfied, req.Timeout elapses,
// or ctx is done, and always produces exactly one Result.
//
// The predicate is evaluated immediately, before any sleep, so a
// condition that already holds adds no latency. Sleeps between
// evaluations are capped at the remaining budget, which bounds the
// reported overshoot on timeout to one poll interval. Cancellation
// interrupts a sleep in progress but never an evaluation in progress.
//
// A satisfied predicate wins over a cancelled context observed in the
// same cycle; timeouts and cancellations are ordinary results, never
// panics or retries.
func (w *Waiter[T]) Wait(ctx context.Context, req Request[T]) Result[T] {
	sw := util.NewStopwatch(w.clock)
	sw.Start()

	if req.Predicate == nil {
		return w.finish(req, Result[T]{Outcome: Faulted, Elapsed: sw.Elapsed(), Err: ErrNilPredicate})
	}
	interval := req.PollInterval
	if interval == 0 {
		interval = DefaultPollInterval
	}
	if interval < 0 {
		err := fmt.Errorf("%w, got %v", ErrNonPositiveInterval, req.PollInterval)
		return w.finish(req, Result[T]{Outcome: Faulted, Elapsed: sw.Elapsed(), Err: err})
	}

	for attempt := 1; ; attempt++ {
		w.observer.Poll(req.Description, attempt)

		val, ok, err := req.Predicate()
		elapsed := sw.Elapsed()
		if err != nil {
			fault := &FaultError{Description: req.Description, Elapsed: elapsed, cause: err}
			return w.finish(req, Result[T]{Outcome: Faulted, Elapsed: elapsed, Err: fault})
		}
		if ok {
			return w.finish(req, Result[T]{Outcome: Satisfied, Value: val, Elapsed: elapsed})
		}

		if err := ctx.Err(); err != nil {
			return w.finish(req, Result[T]{Outcome: Cancelled, Elapsed: elapsed, Err: err})
		}

		remaining := req.Timeout - elapsed
		if remaining <= 0 {
			timeout := &TimeoutError{Description: req.Description, Elapsed: elapsed}
			return w.finish(req, Result[T]{Outcome: TimedOut, Elapsed: elapsed, Err: timeout})
		}

		if err := w.sleep(ctx, min(interval, remaining)); err != nil {
			return w.finish(req, Result[T]{Outcome: Cancelled, Elapsed: sw.Elapsed(), Err: err})
		}
	}
}

// sleep suspends until d has passed on the waiter's clock or ctx is
// done, whichever comes first.
func (w *Waiter[T]) sleep(ctx context.Context, d time.Duration) error {
	t := w.clock.NewTimer(d)
	defer t.Stop()

	select {
	case <-t.C():
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (w *Waiter[T]) finish(req Request[T], res Result[T]) Result[T] {
	w.observer.Done(req.Description, res.Outcome, res.Elapsed)
	return res
}

// For runs req on a real-clock waiter. It is the plain entry point for
// callers that do not need to inject a clock or an observer.
func For[T any](ctx context.Context, req Request[T]) Result[T] {
	return NewWaiter[T]().Wait(ctx, req)
}

// ForCondition waits up to DefaultTimeout for cond to return true,
// polling at DefaultPollInterval.
func ForCondition(ctx context.Context, description string, cond func() bool) Result[bool] {
	return For(ctx, Request[bool]{
		Predicate:   Condition(cond),
		Description: description,
		Timeout:     DefaultTimeout,
	})
}
