package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/awaitkit/wait-for/pkg/wait"
)

// PrometheusObserver is a wait.Observer that counts poll attempts and
// finished waits on a Prometheus registry. It is strictly opt-in:
// attach it with wait.WithObserver, otherwise the waiter records
// nothing.
type PrometheusObserver struct {
	pollCounter    prometheus.Counter
	outcomeCounter *prometheus.CounterVec
	elapsedHist    prometheus.Histogram
}

var _ wait.Observer = (*PrometheusObserver)(nil)

// NewPrometheusObserver registers the observer's collectors on reg.
// Returns a non-nil error if any collector is already registered.
func NewPrometheusObserver(reg prometheus.Registerer) (*PrometheusObserver, error) {
	p := &PrometheusObserver{
		pollCounter: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "wait_for",
			Name:      "poll_attempts_total",
			Help:      "a counter of predicate evaluations across all wait calls",
		}),
		outcomeCounter: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "wait_for",
			Name:      "outcomes_total",
			Help:      "a counter of finished wait calls by outcome",
		}, []string{"outcome"}),
		elapsedHist: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "wait_for",
			Name:      "elapsed_seconds",
			Help:      "a histogram of wall-clock time spent per wait call",
			Buckets:   prometheus.ExponentialBuckets(0.001, 4, 10),
		}),
	}

	for _, c := range []prometheus.Collector{p.pollCounter, p.outcomeCounter, p.elapsedHist} {
		if err := reg.Register(c); err != nil {
			return nil, err
		}
	}
	return p, nil
}

func (p *PrometheusObserver) Poll(string, int) {
	p.pollCounter.Inc()
}

func (p *PrometheusObserver) Done(_ string, outcome wait.Outcome, elapsed time.Duration) {
	p.outcomeCounter.WithLabelValues(outcome.String()).Inc()
	p.elapsedHist.Observe(elapsed.Seconds())
}
