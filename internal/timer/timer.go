// Package timer provides the phase-based stopwatch used to time solves.
package timer

import "time"

// Phase is the timer's current state. It is one of Idle, Running or Paused.
type Phase interface {
	phase()
}

// Idle is the initial phase. Elapsed time is zero.
type Idle struct{}

// Running holds the instant the current run started. Resuming from Paused
// back-dates Start by the accumulated elapsed time.
type Running struct {
	Start time.Time
}

// Paused holds the elapsed time frozen at the moment of pausing.
type Paused struct {
	Elapsed time.Duration
}

func (Idle) phase()    {}
func (Running) phase() {}
func (Paused) phase()  {}

// Timer is a stopwatch that cycles between Idle, Running and Paused.
// It is not safe for concurrent use.
type Timer struct {
	phase Phase
	now   func() time.Time
}

// Option configures a Timer.
type Option func(*Timer)

// WithClock sets the instant source. The default is time.Now, whose readings
// carry Go's monotonic clock.
func WithClock(now func() time.Time) Option {
	return func(t *Timer) {
		t.now = now
	}
}

// New creates an idle Timer.
func New(opts ...Option) *Timer {
	t := &Timer{
		phase: Idle{},
		now:   time.Now,
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// Phase returns the current phase.
func (t *Timer) Phase() Phase {
	return t.phase
}

// Running reports whether the timer is in the Running phase.
func (t *Timer) Running() bool {
	_, ok := t.phase.(Running)
	return ok
}

// Start begins timing from Idle, or resumes from Paused keeping the time
// already accumulated. It is a no-op while Running.
func (t *Timer) Start() {
	switch p := t.phase.(type) {
	case Idle:
		t.phase = Running{Start: t.now()}
	case Paused:
		t.phase = Running{Start: t.now().Add(-p.Elapsed)}
	case Running:
	}
}

// Pause freezes the elapsed time. It is a no-op unless Running.
func (t *Timer) Pause() {
	if p, ok := t.phase.(Running); ok {
		t.phase = Paused{Elapsed: t.now().Sub(p.Start)}
	}
}

// Reset discards any elapsed time and returns to Idle.
func (t *Timer) Reset() {
	t.phase = Idle{}
}

// Elapsed returns the time accumulated in the current phase.
func (t *Timer) Elapsed() time.Duration {
	switch p := t.phase.(type) {
	case Running:
		return t.now().Sub(p.Start)
	case Paused:
		return p.Elapsed
	default:
		return 0
	}
}
