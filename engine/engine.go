// Package engine computes temporal availability and proximity for
// spots and venues: open/closed state from weekly operating hours,
// promotion-window activation from free-text descriptors, data
// freshness, great-circle distance, and the combined filter/sort
// pipeline behind the list and search views. Every function here is a
// pure computation over its inputs plus one ambient clock reading
// taken at the start of a top-level call; nothing is cached between
// calls.
package engine

import "time"

const minutesPerDay = 24 * 60

// Engine evaluates spots and venues against a single civil clock. The
// whole dataset sits in one metro area, so one location serves every
// venue; callers targeting other regions construct their own engine
// with the location they need.
type Engine struct {
	loc   *time.Location
	clock func() time.Time
}

// New builds an engine pinned to the given civil location.
func New(loc *time.Location) *Engine {
	return NewWithClock(loc, time.Now)
}

// NewWithClock also pins the ambient clock; tests use it to evaluate
// against a fixed instant.
func NewWithClock(loc *time.Location, clock func() time.Time) *Engine {
	if loc == nil {
		loc = time.Local
	}
	if clock == nil {
		clock = time.Now
	}
	return &Engine{loc: loc, clock: clock}
}

// Now reads the ambient clock in the engine's civil location.
func (e *Engine) Now() time.Time {
	return e.clock().In(e.loc)
}

// minuteOfDay is the wall-clock minute within t's day.
func minuteOfDay(t time.Time) int {
	return t.Hour()*60 + t.Minute()
}

// previousWeekday steps one day back with Sunday wrapping to Saturday.
func previousWeekday(d time.Weekday) time.Weekday {
	return time.Weekday((int(d) + 6) % 7)
}
