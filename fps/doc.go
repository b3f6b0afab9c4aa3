// SPDX-License-Identifier: MIT

// Package fps paces a render or simulation loop to a target frame rate.
//
// A Controller brackets each frame with BeginFrame and EndFrame. EndFrame
// blocks until the frame budget (1/fps seconds from BeginFrame) has elapsed,
// then records the measured rate:
//
//	c := fps.New(fps.WithFPS(60))
//	for running {
//		c.BeginFrame()
//		update()
//		draw()
//		if err := c.EndFrame(ctx); err != nil {
//			return err
//		}
//	}
//
// A target of 0 disables pacing; EndFrame then only measures. Calls out of
// order are ignored: BeginFrame during an open frame and EndFrame without an
// open frame are no-ops.
//
// Time is read through the Clock interface so tests can drive a Controller
// without sleeping.
package fps
