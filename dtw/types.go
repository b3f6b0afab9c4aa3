// SPDX-License-Identifier: MIT

package dtw

import (
	"errors"

	"github.com/katalvlaran/lvmath/scalar"
)

// MemoryMode controls how Align stores its DP matrix.
//
//   - FullMatrix keeps the whole (n+1)x(m+1) matrix and can backtrack
//     the warping path. Memory: O(n·m).
//   - RollingArray keeps two rows only. Memory: O(m). No path.
type MemoryMode int

const (
	// FullMatrix stores all rows and supports path recovery.
	FullMatrix MemoryMode = iota

	// RollingArray stores two rows and returns the distance only.
	RollingArray
)

// String returns the mode name.
func (m MemoryMode) String() string {
	switch m {
	case FullMatrix:
		return "FullMatrix"
	case RollingArray:
		return "RollingArray"
	default:
		return "MemoryMode(?)"
	}
}

// Options configures Align.
//
// Fields:
//   - Window: maximum |i-j| allowed (Sakoe-Chiba band). Zero or negative
//     means no band.
//   - SlopePenalty: added to every insertion or deletion step.
//   - ReturnPath: backtrack and return the warping path. Requires
//     MemoryMode == FullMatrix.
//   - MemoryMode: FullMatrix or RollingArray.
type Options struct {
	Window       int
	SlopePenalty float64
	ReturnPath   bool
	MemoryMode   MemoryMode
}

// DefaultOptions returns unbanded, unpenalized full-matrix options
// without path recovery.
func DefaultOptions() Options {
	return Options{MemoryMode: FullMatrix}
}

var (
	// ErrEmptySequence indicates one or both inputs are empty.
	ErrEmptySequence = errors.New("dtw: input sequences must be non-empty")

	// ErrPathNeedsFullMatrix indicates that path recovery requires FullMatrix mode.
	ErrPathNeedsFullMatrix = errors.New("dtw: ReturnPath requires MemoryMode=FullMatrix")

	// ErrNilDistance indicates a nil distance function.
	ErrNilDistance = errors.New("dtw: distance function is nil")
)

// Metric adapts a distance returning any element type, such as
// vector.Vec3[float32].Distance, to the float64 form Align takes.
func Metric[V any, T scalar.Element](dist func(V, V) T) func(V, V) float64 {
	return func(a, b V) float64 { return float64(dist(a, b)) }
}
