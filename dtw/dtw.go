// SPDX-License-Identifier: MIT

package dtw

import "math"

// Align computes the Dynamic Time Warping distance between a and b under
// dist, and optionally the warping path as (index in a, index in b) pairs
// from (0, 0) to (len(a)-1, len(b)-1).
//
// Recurrence, with D[0][0] = 0 and the rest of row and column 0 at +Inf:
//
//	D[i][j] = dist(a[i-1], b[j-1]) + min(
//	    D[i-1][j-1],
//	    D[i-1][j] + SlopePenalty,
//	    D[i][j-1] + SlopePenalty)
//
// Cells outside the band are +Inf. When the band leaves no route to
// (n, m) the distance is +Inf and no path is returned.
//
// A nil opts means DefaultOptions().
//
// Errors: ErrEmptySequence, ErrNilDistance, ErrPathNeedsFullMatrix.
func Align[V any](a, b []V, dist func(V, V) float64, opts *Options) (distance float64, path [][2]int, err error) {
	n, m := len(a), len(b)
	if n == 0 || m == 0 {
		return 0, nil, ErrEmptySequence
	}
	if dist == nil {
		return 0, nil, ErrNilDistance
	}

	o := DefaultOptions()
	if opts != nil {
		o = *opts
	}
	if o.ReturnPath && o.MemoryMode != FullMatrix {
		return 0, nil, ErrPathNeedsFullMatrix
	}
	window := math.MaxInt
	if o.Window > 0 {
		window = o.Window
	}
	inf := math.Inf(1)

	if o.MemoryMode == RollingArray {
		prev := make([]float64, m+1)
		curr := make([]float64, m+1)
		for j := 1; j <= m; j++ {
			prev[j] = inf
		}
		for i := 1; i <= n; i++ {
			curr[0] = inf
			for j := 1; j <= m; j++ {
				if abs(i-j) > window {
					curr[j] = inf
					continue
				}
				curr[j] = dist(a[i-1], b[j-1]) + min(prev[j-1], prev[j]+o.SlopePenalty, curr[j-1]+o.SlopePenalty)
			}
			prev, curr = curr, prev
		}
		return prev[m], nil, nil
	}

	dp := make([][]float64, n+1)
	for i := range dp {
		dp[i] = make([]float64, m+1)
	}
	for i := 1; i <= n; i++ {
		dp[i][0] = inf
	}
	for j := 1; j <= m; j++ {
		dp[0][j] = inf
	}
	for i := 1; i <= n; i++ {
		for j := 1; j <= m; j++ {
			if abs(i-j) > window {
				dp[i][j] = inf
				continue
			}
			dp[i][j] = dist(a[i-1], b[j-1]) + min(dp[i-1][j-1], dp[i-1][j]+o.SlopePenalty, dp[i][j-1]+o.SlopePenalty)
		}
	}
	distance = dp[n][m]
	if o.ReturnPath && !math.IsInf(distance, 1) {
		path = backtrack(dp, o.SlopePenalty)
	}
	return distance, path, nil
}

// DTW aligns two scalar series under |x - y|.
func DTW(a, b []float64, opts *Options) (float64, [][2]int, error) {
	return Align(a, b, func(x, y float64) float64 { return math.Abs(x - y) }, opts)
}

// backtrack walks dp from the last cell to (1, 1), each step taking the
// predecessor that produced the cell's minimum. Ties prefer the diagonal.
func backtrack(dp [][]float64, penalty float64) [][2]int {
	i, j := len(dp)-1, len(dp[0])-1
	path := make([][2]int, 0, i+j)
	for i > 1 || j > 1 {
		path = append(path, [2]int{i - 1, j - 1})
		diag, up, left := dp[i-1][j-1], dp[i-1][j]+penalty, dp[i][j-1]+penalty
		switch {
		case diag <= up && diag <= left:
			i, j = i-1, j-1
		case up <= left:
			i--
		default:
			j--
		}
	}
	path = append(path, [2]int{0, 0})
	for l, r := 0, len(path)-1; l < r; l, r = l+1, r-1 {
		path[l], path[r] = path[r], path[l]
	}
	return path
}

// abs returns the absolute value of an int.
func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
