// SPDX-License-Identifier: MIT

package fps_test

import (
	"context"
	"fmt"

	"github.com/katalvlaran/lvmath/fps"
)

func ExampleController() {
	ctx := context.Background()
	c := fps.New(fps.WithFPS(1000))
	for range 3 {
		c.BeginFrame()
		// update and draw here
		if err := c.EndFrame(ctx); err != nil {
			fmt.Println(err)
			return
		}
	}
	fmt.Println(c.FrameCount(), c.FPS() <= 1000)
	// Output: 3 true
}
