// Package pacing implements the budget pacing engine: hourly budget
// allocation, pacing analysis, alert detection, recommendations and monthly
// projection. The engine performs no I/O; every method works on its
// arguments and the optimizer clock and returns only the results of the
// current call.
package pacing

import (
	"log/slog"
	"time"
)

// Optimizer runs pacing computations. It keeps no history between calls and
// is safe for concurrent use.
type Optimizer struct {
	loc    *time.Location
	now    func() time.Time
	logger *slog.Logger
}

// Option configures an Optimizer.
type Option func(*Optimizer)

// WithClock replaces the wall clock used when no analysis time is given.
func WithClock(now func() time.Time) Option {
	return func(o *Optimizer) {
		o.now = now
	}
}

// NewOptimizer returns an optimizer that reads wall-clock time in loc. A nil
// loc means UTC and a nil logger discards debug output.
func NewOptimizer(loc *time.Location, logger *slog.Logger, opts ...Option) *Optimizer {
	if loc == nil {
		loc = time.UTC
	}
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	o := &Optimizer{loc: loc, now: time.Now, logger: logger}
	for _, opt := range opts {
		opt(o)
	}
	return o
}

// resolve returns at, or the current time in the optimizer location when at
// is zero.
func (o *Optimizer) resolve(at time.Time) time.Time {
	if at.IsZero() {
		return o.now().In(o.loc)
	}
	return at
}

// Location returns the zone the campaign day is evaluated in.
func (o *Optimizer) Location() *time.Location {
	return o.loc
}
