// SPDX-License-Identifier: MIT
// Package vector: array kernels.
//
// Purpose:
//   - Every operator and geometry function is written once here, over the
//     component array of a vector. Concrete types only convert to and from
//     their array form (see ops_gen.go), so Vec3 and Vec9 share one code path.
//   - The kernels are exported for dimension-generic callers (the matrix
//     package multiplies rows and columns with DotArray).
//
// Calling convention:
//   - Instantiate T explicitly and let A be inferred from the arguments:
//     vector.DotArray[float64](row, col).
//
// Complexity: O(D) for every kernel; arrays are passed by value.

package vector

import (
	"fmt"
	"iter"
	"math"
	"strings"

	"gonum.org/v1/gonum/floats"

	"github.com/katalvlaran/lvmath/scalar"
)

// MaxDim is the largest supported dimension.
const MaxDim = 16

// Array is the set of component arrays a vector may have. The array type
// carries the dimension, so mixing dimensions fails to compile.
type Array[T scalar.Element] interface {
	[1]T | [2]T | [3]T | [4]T | [5]T | [6]T | [7]T | [8]T |
		[9]T | [10]T | [11]T | [12]T | [13]T | [14]T | [15]T | [16]T
}

// Wide is the subset of Array backed by VecN. Dimensions 1..4 resolve to the
// named types Vec1..Vec4 and are rejected here at compile time.
type Wide[T scalar.Element] interface {
	[5]T | [6]T | [7]T | [8]T | [9]T | [10]T | [11]T | [12]T |
		[13]T | [14]T | [15]T | [16]T
}

// Vector is the capability shared by every concrete vector type: it can be
// read by index and viewed as its component array.
//
// Raw arrays cannot carry methods. They enter through the FromArray
// constructors (Vec3FromArray, NewVecN) or the array-taking operators
// (AddArr, SubArr, MulArr, DivArr, DotArr), and the kernels below accept
// them directly.
type Vector[T scalar.Element, A Array[T]] interface {
	Dim() int
	At(i int) T
	Array() A
}

// MutableVector is a Vector that can be written by index. Pointers to the
// concrete vector types implement it.
type MutableVector[T scalar.Element, A Array[T]] interface {
	Vector[T, A]
	Set(i int, x T)
}

// AddArray returns a + b elementwise.
func AddArray[T scalar.Element, A Array[T]](a, b A) A {
	for i := 0; i < len(a); i++ {
		a[i] += b[i]
	}
	return a
}

// SubArray returns a - b elementwise.
func SubArray[T scalar.Element, A Array[T]](a, b A) A {
	for i := 0; i < len(a); i++ {
		a[i] -= b[i]
	}
	return a
}

// MulArray returns the elementwise (Hadamard) product of a and b.
func MulArray[T scalar.Element, A Array[T]](a, b A) A {
	for i := 0; i < len(a); i++ {
		a[i] *= b[i]
	}
	return a
}

// DivArray returns a / b elementwise. Division by a zero component follows
// the native semantics of T.
func DivArray[T scalar.Element, A Array[T]](a, b A) A {
	for i := 0; i < len(a); i++ {
		a[i] /= b[i]
	}
	return a
}

// ScaleArray returns a * s.
func ScaleArray[T scalar.Element, A Array[T]](a A, s T) A {
	for i := 0; i < len(a); i++ {
		a[i] *= s
	}
	return a
}

// DivScalarArray returns a / s. Float element types multiply by 1/s, which
// may differ from true division by one ulp per component; integer element
// types divide each component.
func DivScalarArray[T scalar.Element, A Array[T]](a A, s T) A {
	if scalar.IsFloat[T]() {
		return ScaleArray[T](a, T(1)/s)
	}
	for i := 0; i < len(a); i++ {
		a[i] /= s
	}
	return a
}

// NegArray returns -a. Unsigned components wrap.
func NegArray[T scalar.Element, A Array[T]](a A) A {
	for i := 0; i < len(a); i++ {
		a[i] = -a[i]
	}
	return a
}

// SplatArray returns an array with every component set to s.
func SplatArray[T scalar.Element, A Array[T]](s T) A {
	var a A
	for i := 0; i < len(a); i++ {
		a[i] = s
	}
	return a
}

// DotArray returns Σ a[i]*b[i].
func DotArray[T scalar.Element, A Array[T]](a, b A) T {
	var sum T
	for i := 0; i < len(a); i++ {
		sum += a[i] * b[i]
	}
	return sum
}

// LengthSquaredArray returns Σ a[i]², exact for every element type.
func LengthSquaredArray[T scalar.Element, A Array[T]](a A) T {
	return DotArray[T](a, a)
}

// minNormal64 is the smallest normal float64. A squared sum below it has
// lost precision to underflow.
const minNormal64 = 0x1p-1022

// LengthArray returns the Euclidean length of a.
//
// Float element types sum squares in float64. When that sum overflows or
// underflows, the length is recomputed with gonum's scaled L2 norm, so a
// nonzero vector never reports length 0 and a finite length never reports
// +Inf. Integer element types take the square root of the exact squared
// length and truncate.
func LengthArray[T scalar.Element, A Array[T]](a A) T {
	if !scalar.IsFloat[T]() {
		return scalar.Sqrt(LengthSquaredArray[T](a))
	}
	var buf [MaxDim]float64
	var ss float64
	for i := 0; i < len(a); i++ {
		buf[i] = float64(a[i])
		ss += buf[i] * buf[i]
	}
	if ss >= minNormal64 && ss <= math.MaxFloat64 {
		return T(math.Sqrt(ss))
	}
	return T(floats.Norm(buf[:len(a)], 2))
}

// NormalizedArray returns a scaled to unit length, or the zero array when
// a has zero length.
//
// Float arrays whose length or its reciprocal is not finite in T are first
// divided by their largest component magnitude.
func NormalizedArray[T scalar.Element, A Array[T]](a A) A {
	if !scalar.IsFloat[T]() {
		ls := LengthSquaredArray[T](a)
		if ls == 0 {
			var zero A
			return zero
		}
		return DivScalarArray[T](a, scalar.Sqrt(ls))
	}
	l := LengthArray[T](a)
	if l == 0 {
		var zero A
		return zero
	}
	if inv := T(1) / l; !math.IsInf(float64(l), 0) && !math.IsInf(float64(inv), 0) {
		return ScaleArray[T](a, inv)
	}
	var m T
	for i := 0; i < len(a); i++ {
		m = max(m, scalar.Abs(a[i]))
	}
	for i := 0; i < len(a); i++ {
		a[i] /= m
	}
	return ScaleArray[T](a, T(1)/LengthArray[T](a))
}

// ReflectArray reflects a about the unit normal n: a - n*(2*a·n).
// n is not checked for unit length.
func ReflectArray[T scalar.Element, A Array[T]](a, n A) A {
	return SubArray[T](a, ScaleArray[T](n, 2*DotArray[T](a, n)))
}

// AngleArray returns the angle between a and b in radians, in [0, π].
// A zero-length input yields NaN for float element types.
func AngleArray[T scalar.Element, A Array[T]](a, b A) T {
	return scalar.Acos(DotArray[T](a, b) / (LengthArray[T](a) * LengthArray[T](b)))
}

// ApproxEqualArray reports whether every component pair differs by at most eps.
func ApproxEqualArray[T scalar.Element, A Array[T]](a, b A, eps T) bool {
	for i := 0; i < len(a); i++ {
		if !scalar.ApproxEqual(a[i], b[i], eps) {
			return false
		}
	}
	return true
}

// allArray yields (index, component) pairs in order.
func allArray[T scalar.Element, A Array[T]](a A) iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for i := 0; i < len(a); i++ {
			if !yield(i, a[i]) {
				return
			}
		}
	}
}

// formatArray renders a as "[a0, a1, ...]".
func formatArray[T scalar.Element, A Array[T]](a A) string {
	var sb strings.Builder
	sb.WriteByte('[')
	for i := 0; i < len(a); i++ {
		if i > 0 {
			sb.WriteString(", ")
		}
		fmt.Fprint(&sb, a[i])
	}
	sb.WriteByte(']')
	return sb.String()
}
