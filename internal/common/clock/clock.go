package clock

import "time"

// Clock is the time source for veto deadlines, timed effects and game history.
// The engine never sleeps on it; deadlines are compared when commands arrive.
//
//go:generate mockgen -package=mocks -destination=mocks/mock_clock.go github.com/KirkDiggler/jetlag/internal/common/clock Clock
type Clock interface {
	Now() time.Time
}

// DefaultClock implements the Clock interface using the system clock
type DefaultClock struct{}

// New returns a clock backed by time.Now
func New() *DefaultClock {
	return &DefaultClock{}
}

// Now returns the current time
func (c *DefaultClock) Now() time.Time {
	return time.Now()
}
