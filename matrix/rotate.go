// SPDX-License-Identifier: MIT

package matrix

import "github.com/katalvlaran/lvmath/scalar"

// Rotate2 returns the 2×2 rotation by theta radians, [[cos, sin], [-sin, cos]].
//
// Under the row-vector product m.VecMul(v), a positive theta turns +X toward
// +Y; m.MulVec(v) rotates the other way.
func Rotate2[T scalar.Float](theta T) Mat2x2[T] {
	sin, cos := scalar.Sincos(theta)
	return Mat2x2[T]{
		{cos, sin},
		{-sin, cos},
	}
}
