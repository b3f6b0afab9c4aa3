// SPDX-License-Identifier: MIT
// Package vector_test: benchmarks for the generated wrappers and the array
// kernels they share.

package vector_test

import (
	"testing"

	"github.com/katalvlaran/lvmath/vector"
)

// sinks to defeat dead-code elimination
var (
	sinkV3  vector.Vec3[float64]
	sinkV16 vector.Vec16[float64]
	sinkF   float64
	sinkF32 float32
)

func BenchmarkVec3_Add(b *testing.B) {
	b.ReportAllocs()
	v := vector.NewVec3(1.0, 2.0, 3.0)
	w := vector.NewVec3(4.0, 5.0, 6.0)
	for i := 0; i < b.N; i++ {
		sinkV3 = v.Add(w)
	}
}

func BenchmarkVec3_Dot(b *testing.B) {
	b.ReportAllocs()
	v := vector.NewVec3(1.0, 2.0, 3.0)
	w := vector.NewVec3(4.0, 5.0, 6.0)
	for i := 0; i < b.N; i++ {
		sinkF = v.Dot(w)
	}
}

func BenchmarkVec3_Cross(b *testing.B) {
	b.ReportAllocs()
	v := vector.NewVec3(1.0, 2.0, 3.0)
	w := vector.NewVec3(4.0, 5.0, 6.0)
	for i := 0; i < b.N; i++ {
		sinkV3 = v.Cross(w)
	}
}

func BenchmarkVec3_Normalized(b *testing.B) {
	b.ReportAllocs()
	v := vector.NewVec3(1.0, 2.0, 3.0)
	for i := 0; i < b.N; i++ {
		sinkV3 = v.Normalized()
	}
}

func BenchmarkVec4F32_Length(b *testing.B) {
	b.ReportAllocs()
	v := vector.NewVec4[float32](1, 2, 3, 4)
	for i := 0; i < b.N; i++ {
		sinkF32 = v.Length()
	}
}

func BenchmarkVec16_Add(b *testing.B) {
	b.ReportAllocs()
	v := vector.VecNSplat[float64, [16]float64](1.5)
	w := vector.VecNSplat[float64, [16]float64](2.5)
	for i := 0; i < b.N; i++ {
		sinkV16 = v.Add(w)
	}
}

func BenchmarkVec16_Dot(b *testing.B) {
	b.ReportAllocs()
	v := vector.VecNSplat[float64, [16]float64](1.5)
	for i := 0; i < b.N; i++ {
		sinkF = v.Dot(v)
	}
}
