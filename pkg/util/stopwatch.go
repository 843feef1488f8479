package util

import (
	"time"

	"k8s.io/utils/clock"
)

// Stopwatch measures elapsed time against an injectable clock so that
// time-sensitive callers stay testable. A nil clock means the real
// one.
type Stopwatch struct {
	clock     clock.PassiveClock
	startTime time.Time
	stopTime  time.Time
}

func NewStopwatch(c clock.PassiveClock) *Stopwatch {
	if c == nil {
		c = clock.RealClock{}
	}
	return &Stopwatch{clock: c}
}

func (sw *Stopwatch) Start() {
	sw.startTime = sw.clock.Now()
}

func (sw *Stopwatch) Stop() {
	sw.stopTime = sw.clock.Now()
}

func (sw *Stopwatch) StartTime() time.Time {
	return sw.startTime
}

func (sw *Stopwatch) StopTime() time.Time {
	return sw.stopTime
}

// Elapsed returns the time since Start on a running stopwatch.
func (sw *Stopwatch) Elapsed() time.Duration {
	return sw.clock.Since(sw.startTime)
}

// ElapsedTime returns the Start-to-Stop duration.
func (sw *Stopwatch) ElapsedTime() time.Duration {
	return sw.stopTime.Sub(sw.startTime)
}
