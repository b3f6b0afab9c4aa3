// SPDX-License-Identifier: MIT

package vector

import "github.com/katalvlaran/lvmath/scalar"

// Dot returns a · b for any two vectors of the same array type. It serves
// code that is generic over the dimension; concrete types have a Dot method.
//
// A cannot be inferred from a concrete vector, so callers spell it:
//
//	vector.Dot[float64, [3]float64](v, w)
func Dot[T scalar.Element, A Array[T]](a, b Vector[T, A]) T {
	return DotArray[T](a.Array(), b.Array())
}

// Distance returns |a - b| for any two vectors of the same array type.
func Distance[T scalar.Element, A Array[T]](a, b Vector[T, A]) T {
	return LengthArray[T](SubArray[T](a.Array(), b.Array()))
}

// Components copies the components of v into a new slice.
func Components[T scalar.Element, A Array[T]](v Vector[T, A]) []T {
	a := v.Array()
	out := make([]T, len(a))
	for i := range out {
		out[i] = a[i]
	}
	return out
}
