// Package clock abstracts the time source driving animations and deferred
// focus so tests can step time manually.
package clock

import "time"

// Clock provides the current time
type Clock interface {
	Now() time.Time
}

// System reads the real monotonic clock
type System struct{}

// Now returns the current time with monotonic clock reading
func (System) Now() time.Time { return time.Now() }

// Manual is a controllable time source for testing
type Manual struct {
	now time.Time
}

// NewManual creates a manual clock starting at start
func NewManual(start time.Time) *Manual {
	return &Manual{now: start}
}

// Now returns the current manual time
func (m *Manual) Now() time.Time { return m.now }

// Set moves the manual clock to t
func (m *Manual) Set(t time.Time) { m.now = t }

// Advance moves the manual clock forward by d
func (m *Manual) Advance(d time.Duration) { m.now = m.now.Add(d) }
