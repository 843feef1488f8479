package wait

import (
	"time"

	"github.com/go-logr/logr"
)

// Observer receives progress notifications from a Waiter. It is the
// only side channel the waiter has; the default NopObserver keeps it
// silent. Implementations must be safe for concurrent use when a
// Waiter is shared between goroutines.
type Observer interface {
	// Poll is called immediately before each predicate evaluation.
	// attempt starts at 1.
	Poll(description string, attempt int)
	// Done is called exactly once per Wait call with the final
	// outcome and elapsed time.
	Done(description string, outcome Outcome, elapsed time.Duration)
}

// NopObserver discards all notifications.
type NopObserver struct{}

var _ Observer = NopObserver{}

func (NopObserver) Poll(string, int) {}

func (NopObserver) Done(string, Outcome, time.Duration) {}

// LogrObserver reports wait progress on a logr.Logger. Poll attempts
// log at verbosity 1, final outcomes at verbosity 0.
type LogrObserver struct {
	lggr logr.Logger
}

var _ Observer = LogrObserver{}

func NewLogrObserver(lggr logr.Logger) LogrObserver {
	return LogrObserver{lggr: lggr}
}

func (o LogrObserver) Poll(description string, attempt int) {
	o.lggr.V(1).Info("polling condition", "description", description, "attempt", attempt)
}

func (o LogrObserver) Done(description string, outcome Outcome, elapsed time.Duration) {
	o.lggr.Info("wait finished", "description", description, "outcome", outcome.String(), "elapsed", elapsed)
}
