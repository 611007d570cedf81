package clock

import "time"

// Clock supplies the current instant. Injected everywhere "now" matters
// (past-date validation, approval timestamps) so tests can pin time.
type Clock interface {
	Now() time.Time
}

// Real is the wall clock.
type Real struct{}

func (Real) Now() time.Time {
	return time.Now().UTC()
}

// New returns the production clock.
func New() Clock {
	return Real{}
}

// Fixed always reports the same instant.
type Fixed struct {
	Instant time.Time
}

func (f Fixed) Now() time.Time {
	return f.Instant
}

// NewFixed pins the clock to t.
func NewFixed(t time.Time) Clock {
	return Fixed{Instant: t}
}
