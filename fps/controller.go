// SPDX-License-Identifier: MIT

package fps

import (
	"context"
	"sync"
	"time"
)

// Controller paces frames to a target rate and measures the achieved rate.
// Its methods are safe for concurrent use, though a frame is normally begun
// and ended by the same goroutine.
type Controller struct {
	mu sync.Mutex

	clock  Clock
	target uint32

	begin    time.Time
	deadline time.Time
	open     bool

	fps    float64
	frames uint64
}

// New returns a Controller targeting DefaultFPS unless overridden.
func New(opts ...Option) *Controller {
	c := &Controller{clock: systemClock{}, target: DefaultFPS}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// BeginFrame opens a frame and counts it. It does nothing while a frame is
// already open.
func (c *Controller) BeginFrame() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.open {
		return
	}
	c.open = true
	c.begin = c.clock.Now()
	c.deadline = c.begin.Add(budget(c.target))
	c.frames++
}

// EndFrame waits until the frame budget has elapsed, records the measured
// rate and closes the frame. It does nothing when no frame is open.
//
// If ctx is done first, EndFrame returns ctx.Err() and the frame stays open,
// so a later EndFrame can still close it.
func (c *Controller) EndFrame(ctx context.Context) error {
	c.mu.Lock()
	if !c.open {
		c.mu.Unlock()
		return nil
	}
	clock, begin, deadline := c.clock, c.begin, c.deadline
	c.mu.Unlock()

	if wait := deadline.Sub(clock.Now()); wait > 0 {
		select {
		case <-clock.After(wait):
		case <-ctx.Done():
			return ctx.Err()
		}
	} else if err := ctx.Err(); err != nil {
		return err
	}

	elapsed := clock.Now().Sub(begin)

	c.mu.Lock()
	defer c.mu.Unlock()
	if elapsed > 0 {
		c.fps = float64(time.Second) / float64(elapsed)
	}
	c.open = false
	return nil
}

// SetFPS changes the target rate from the next frame on; 0 disables pacing.
func (c *Controller) SetFPS(fps uint32) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.target = fps
}

// TargetFPS returns the configured target rate.
func (c *Controller) TargetFPS() uint32 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.target
}

// FPS returns the rate measured over the last completed frame, or 0 before
// the first one.
func (c *Controller) FPS() float64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.fps
}

// FrameCount returns the number of frames begun.
func (c *Controller) FrameCount() uint64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.frames
}

// budget is the duration of one frame at fps, or 0 when unpaced.
func budget(fps uint32) time.Duration {
	if fps == 0 {
		return 0
	}
	return time.Second / time.Duration(fps)
}
