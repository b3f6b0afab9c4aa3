// SPDX-License-Identifier: MIT

// Package dtw aligns two sequences with Dynamic Time Warping.
//
// DTW finds the cheapest monotone pairing of the elements of two sequences
// that may run at different speeds. The elements can be anything a distance
// is defined on: plain samples, or vector trajectories such as recorded
// cursor paths, motion-capture tracks or camera splines.
//
// Key features:
//   - full-matrix mode: O(N·M) memory, supports path recovery
//   - rolling mode: two rows of memory, distance only
//   - optional Sakoe-Chiba band (|i-j| ≤ Window)
//   - slope penalty on non-diagonal steps
//
// Usage:
//
//	opts := dtw.DefaultOptions()
//	opts.ReturnPath = true
//	dist, path, err := dtw.Align(a, b, vector.Vec3[float64].Distance, &opts)
//
// For float32 vectors wrap the method with Metric:
//
//	dist, _, err := dtw.Align(a, b, dtw.Metric(vector.Vec3[float32].Distance), nil)
//
// Complexity: O(N·M) time; O(N·M) or O(M) memory.
package dtw
