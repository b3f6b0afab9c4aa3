// SPDX-License-Identifier: MIT

package dtw_test

import (
	"math/rand/v2"
	"testing"

	"github.com/katalvlaran/lvmath/dtw"
)

var sink float64

// benchmarkAlign runs Align on two random 3D tracks of lengths n and m.
func benchmarkAlign(b *testing.B, n, m int, opts dtw.Options) {
	r := rand.New(rand.NewPCG(1, 1))
	a, c := randomTrack(r, n), randomTrack(r, m)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		d, _, err := dtw.Align(a, c, vec3.Distance, &opts)
		if err != nil {
			b.Fatalf("Align failed: %v", err)
		}
		sink = d
	}
}

func BenchmarkAlign_FullMatrix100(b *testing.B) {
	benchmarkAlign(b, 100, 100, dtw.DefaultOptions())
}

func BenchmarkAlign_FullMatrixPath100(b *testing.B) {
	opts := dtw.DefaultOptions()
	opts.ReturnPath = true
	benchmarkAlign(b, 100, 100, opts)
}

func BenchmarkAlign_Rolling500(b *testing.B) {
	opts := dtw.DefaultOptions()
	opts.MemoryMode = dtw.RollingArray
	benchmarkAlign(b, 500, 500, opts)
}

func BenchmarkAlign_Window500(b *testing.B) {
	opts := dtw.DefaultOptions()
	opts.MemoryMode = dtw.RollingArray
	opts.Window = 10
	benchmarkAlign(b, 500, 500, opts)
}
