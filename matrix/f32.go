// SPDX-License-Identifier: MIT

package matrix

import (
	"golang.org/x/image/math/f32"

	"github.com/katalvlaran/lvmath/scalar"
)

// F32 converts m to x/image's flat row-major layout, m[3*r+c].
func (m Mat3x3[T]) F32() f32.Mat3 {
	var out f32.Mat3
	for r := range m {
		for c := range m[r] {
			out[3*r+c] = float32(m[r][c])
		}
	}
	return out
}

// F32 converts m to x/image's flat row-major layout, m[4*r+c].
func (m Mat4x4[T]) F32() f32.Mat4 {
	var out f32.Mat4
	for r := range m {
		for c := range m[r] {
			out[4*r+c] = float32(m[r][c])
		}
	}
	return out
}

// Mat3FromF32 converts an x/image matrix, truncating for integer T.
func Mat3FromF32[T scalar.Element](f f32.Mat3) Mat3x3[T] {
	var m Mat3x3[T]
	for i, x := range f {
		m[i/3][i%3] = T(x)
	}
	return m
}

// Mat4FromF32 converts an x/image matrix, truncating for integer T.
func Mat4FromF32[T scalar.Element](f f32.Mat4) Mat4x4[T] {
	var m Mat4x4[T]
	for i, x := range f {
		m[i/4][i%4] = T(x)
	}
	return m
}
