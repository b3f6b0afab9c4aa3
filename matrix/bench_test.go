// SPDX-License-Identifier: MIT
// Package matrix_test: benchmarks for the generated products.

package matrix_test

import (
	"testing"

	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/lvmath/matrix"
	"github.com/katalvlaran/lvmath/vector"
)

// sinks to defeat dead-code elimination
var (
	sinkM4 matrix.Mat4[float64]
	sinkM3 matrix.Mat3x4[float64]
	sinkV4 vector.Vec4[float64]
)

func benchMat4() matrix.Mat4[float64] {
	var m matrix.Mat4[float64]
	for i := range m {
		for j := range m[i] {
			m[i][j] = float64(i*4 + j)
		}
	}
	return m
}

func BenchmarkMat4_Mul(b *testing.B) {
	b.ReportAllocs()
	m := benchMat4()
	n := matrix.Identity4[float64]()
	for i := 0; i < b.N; i++ {
		sinkM4 = m.Mul(n)
	}
}

func BenchmarkMat4_MulVec(b *testing.B) {
	b.ReportAllocs()
	m := benchMat4()
	v := vector.NewVec4(1.0, 2.0, 3.0, 4.0)
	for i := 0; i < b.N; i++ {
		sinkV4 = m.MulVec(v)
	}
}

func BenchmarkMat3x2_MulMat2x4(b *testing.B) {
	b.ReportAllocs()
	m1 := matrix.Mat3x2[float64]{{0, 1}, {2, 3}, {4, 5}}
	m2 := matrix.Mat2x4[float64]{{0, 1, 2, 3}, {4, 5, 6, 7}}
	for i := 0; i < b.N; i++ {
		sinkM3 = m1.MulMat2x4(m2)
	}
}

// BenchmarkMat4_MulDense is the same product through gonum, for comparison.
func BenchmarkMat4_MulDense(b *testing.B) {
	b.ReportAllocs()
	m := benchMat4().Dense()
	n := matrix.Identity4[float64]().Dense()
	for i := 0; i < b.N; i++ {
		var prod mat.Dense
		prod.Mul(m, n)
		sinkM4, _ = matrix.Mat4x4FromDense[float64](&prod)
	}
}
