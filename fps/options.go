// SPDX-License-Identifier: MIT

package fps

import "time"

// DefaultFPS is the target frame rate of a Controller built without WithFPS.
const DefaultFPS = 60

// Clock is the time source of a Controller.
type Clock interface {
	// Now returns the current time.
	Now() time.Time
	// After delivers the current time on the returned channel once d has elapsed.
	After(d time.Duration) <-chan time.Time
}

// systemClock reads the wall clock.
type systemClock struct{}

func (systemClock) Now() time.Time                         { return time.Now() }
func (systemClock) After(d time.Duration) <-chan time.Time { return time.After(d) }

// Option configures a Controller before creation.
type Option func(c *Controller)

// WithFPS sets the target frame rate; 0 disables pacing.
func WithFPS(fps uint32) Option {
	return func(c *Controller) { c.target = fps }
}

// WithClock replaces the wall clock. It panics if clock is nil.
func WithClock(clock Clock) Option {
	if clock == nil {
		panic("fps: WithClock(nil)")
	}
	return func(c *Controller) { c.clock = clock }
}
