// SPDX-License-Identifier: MIT

package fps_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/lvmath/fps"
)

// manualClock only moves when told to. After advances the clock by the
// requested duration and fires immediately, so paced frames never sleep.
type manualClock struct {
	mu  sync.Mutex
	now time.Time
}

func (m *manualClock) Now() time.Time {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.now
}

func (m *manualClock) After(d time.Duration) <-chan time.Time {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.now = m.now.Add(d)
	ch := make(chan time.Time, 1)
	ch <- m.now
	return ch
}

func (m *manualClock) Advance(d time.Duration) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.now = m.now.Add(d)
}

// stuckClock never fires.
type stuckClock struct{ manualClock }

func (*stuckClock) After(time.Duration) <-chan time.Time { return nil }

type ControllerSuite struct {
	suite.Suite
	clock *manualClock
	ctx   context.Context
}

func (s *ControllerSuite) SetupTest() {
	s.clock = &manualClock{now: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)}
	s.ctx = context.Background()
}

func (s *ControllerSuite) frame(c *fps.Controller, work time.Duration) {
	c.BeginFrame()
	s.clock.Advance(work)
	s.Require().NoError(c.EndFrame(s.ctx))
}

func (s *ControllerSuite) TestDefaults() {
	c := fps.New()
	s.Equal(uint32(fps.DefaultFPS), c.TargetFPS())
	s.Equal(0.0, c.FPS())
	s.Equal(uint64(0), c.FrameCount())
}

func (s *ControllerSuite) TestPacedFrame() {
	c := fps.New(fps.WithFPS(50), fps.WithClock(s.clock))
	start := s.clock.Now()

	s.frame(c, 5*time.Millisecond)

	s.Equal(20*time.Millisecond, s.clock.Now().Sub(start), "EndFrame waits out the 20ms budget")
	s.InDelta(50.0, c.FPS(), 1e-9)
	s.Equal(uint64(1), c.FrameCount())
}

func (s *ControllerSuite) TestOverrunFrame() {
	c := fps.New(fps.WithFPS(50), fps.WithClock(s.clock))
	start := s.clock.Now()

	s.frame(c, 40*time.Millisecond)

	s.Equal(40*time.Millisecond, s.clock.Now().Sub(start), "no wait after an overrun")
	s.InDelta(25.0, c.FPS(), 1e-9)
}

func (s *ControllerSuite) TestUnpaced() {
	c := fps.New(fps.WithFPS(0), fps.WithClock(s.clock))
	s.frame(c, 10*time.Millisecond)
	s.InDelta(100.0, c.FPS(), 1e-9)
}

func (s *ControllerSuite) TestSetFPS() {
	c := fps.New(fps.WithFPS(50), fps.WithClock(s.clock))
	s.frame(c, time.Millisecond)
	s.InDelta(50.0, c.FPS(), 1e-9)

	c.SetFPS(100)
	s.Equal(uint32(100), c.TargetFPS())
	s.frame(c, time.Millisecond)
	s.InDelta(100.0, c.FPS(), 1e-9)
	s.Equal(uint64(2), c.FrameCount())
}

func (s *ControllerSuite) TestOutOfOrderCalls() {
	c := fps.New(fps.WithClock(s.clock))

	// EndFrame without an open frame is a no-op
	s.Require().NoError(c.EndFrame(s.ctx))
	s.Equal(uint64(0), c.FrameCount())
	s.Equal(0.0, c.FPS())

	// a second BeginFrame does not restart or recount the frame
	c.BeginFrame()
	s.clock.Advance(time.Millisecond)
	c.BeginFrame()
	s.Equal(uint64(1), c.FrameCount())

	s.Require().NoError(c.EndFrame(s.ctx))
	s.InDelta(60.0, c.FPS(), 0.01)
}

func (s *ControllerSuite) TestCancelledWait() {
	clock := &stuckClock{manualClock{now: s.clock.Now()}}
	c := fps.New(fps.WithFPS(1), fps.WithClock(clock))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	c.BeginFrame()
	err := c.EndFrame(ctx)
	s.Require().ErrorIs(err, context.Canceled)
	s.Equal(0.0, c.FPS(), "an interrupted frame records nothing")

	// the frame is still open
	c.BeginFrame()
	s.Equal(uint64(1), c.FrameCount())
}

func TestControllerSuite(t *testing.T) {
	suite.Run(t, new(ControllerSuite))
}

func TestWithClock_Nil(t *testing.T) {
	assert.Panics(t, func() { fps.WithClock(nil) })
}

func TestController_WallClock(t *testing.T) {
	c := fps.New(fps.WithFPS(500))
	start := time.Now()
	c.BeginFrame()
	require.NoError(t, c.EndFrame(context.Background()))

	assert.GreaterOrEqual(t, time.Since(start), 2*time.Millisecond)
	assert.Positive(t, c.FPS())
	assert.LessOrEqual(t, c.FPS(), 500.0)
}
