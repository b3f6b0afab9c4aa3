// SPDX-License-Identifier: MIT

package dtw_test

import (
	"fmt"

	"github.com/katalvlaran/lvmath/dtw"
	"github.com/katalvlaran/lvmath/vector"
)

// ExampleAlign matches a recorded 2D stroke against a slower replay that
// pauses at its second point.
func ExampleAlign() {
	stroke := []vector.Vec2[float64]{{X: 0, Y: 0}, {X: 1, Y: 1}, {X: 2, Y: 0}}
	replay := []vector.Vec2[float64]{{X: 0, Y: 0}, {X: 1, Y: 1}, {X: 1, Y: 1}, {X: 2, Y: 0}}

	opts := dtw.DefaultOptions()
	opts.ReturnPath = true
	dist, path, err := dtw.Align(stroke, replay, vector.Vec2[float64].Distance, &opts)
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	fmt.Printf("distance=%.1f\npath=%v\n", dist, path)
	// Output:
	// distance=0.0
	// path=[[0 0] [1 1] [1 2] [2 3]]
}

// ExampleDTW aligns two scalar series with a slope penalty.
func ExampleDTW() {
	opts := dtw.DefaultOptions()
	opts.SlopePenalty = 0.5

	dist, _, err := dtw.DTW([]float64{0, 0}, []float64{1}, &opts)
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	fmt.Println(dist)
	// Output: 2.5
}
