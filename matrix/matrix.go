// SPDX-License-Identifier: MIT

package matrix

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/lvmath/scalar"
)

// Matrix is the read-only view shared by every fixed-shape matrix type.
type Matrix[T scalar.Element] interface {
	Rows() int
	Cols() int
	At(r, c int) T
}

// Mat2 is the 2×2 matrix.
type Mat2[T scalar.Element] = Mat2x2[T]

// Mat3 is the 3×3 matrix.
type Mat3[T scalar.Element] = Mat3x3[T]

// Mat4 is the 4×4 matrix.
type Mat4[T scalar.Element] = Mat4x4[T]

// format renders m row by row as "[[a, b], [c, d]]".
func format[T scalar.Element](m Matrix[T]) string {
	var sb strings.Builder
	sb.WriteByte('[')
	for r := 0; r < m.Rows(); r++ {
		if r > 0 {
			sb.WriteString(", ")
		}
		sb.WriteByte('[')
		for c := 0; c < m.Cols(); c++ {
			if c > 0 {
				sb.WriteString(", ")
			}
			fmt.Fprint(&sb, m.At(r, c))
		}
		sb.WriteByte(']')
	}
	sb.WriteByte(']')
	return sb.String()
}
