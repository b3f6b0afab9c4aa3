// SPDX-License-Identifier: MIT

// Package scalar defines the element types accepted by the vector and matrix
// packages and the few numeric helpers they share.
//
// Purpose:
//   - One constraint (Element) for every arithmetic structure, and a narrower
//     one (Float) for the operations that need a square root or a cosine.
//   - Width-aware transcendental helpers: float32 elements are computed with
//     github.com/chewxy/math32, float64 elements with the standard math package,
//     so a Vec3[float32] never round-trips through float64 to get its length.
//
// Identities:
//   - Zero is the Go zero value of T; One is the constant conversion T(1).
//     Both are resolved at compile time for every instantiation.
package scalar

import (
	"math"

	"github.com/chewxy/math32"
	"golang.org/x/exp/constraints"
)

// Element is the constraint every vector and matrix component satisfies:
// integer and floating-point types, including named types built on them.
type Element interface {
	constraints.Integer | constraints.Float
}

// Float is the floating-point tier of Element.
type Float interface {
	constraints.Float
}

// Signed is the tier of Element where negation does not wrap.
type Signed interface {
	constraints.Signed | constraints.Float
}

// Zero returns the additive identity of T.
func Zero[T Element]() T {
	var z T
	return z
}

// One returns the multiplicative identity of T.
func One[T Element]() T {
	return T(1)
}

// IsFloat reports whether T is a floating-point type.
// Named types over float32/float64 are detected through integer division:
// 1/2 truncates to zero only for integers.
func IsFloat[T Element]() bool {
	switch any(T(0)).(type) {
	case float32, float64:
		return true
	case int, int8, int16, int32, int64, uint, uint8, uint16, uint32, uint64, uintptr:
		return false
	}
	return T(1)/T(2) != 0
}

// Sqrt returns the square root of x in the width of T.
// Integer inputs are evaluated in float64 and truncated toward zero.
func Sqrt[T Element](x T) T {
	switch v := any(x).(type) {
	case float32:
		return T(math32.Sqrt(v))
	case float64:
		return T(math.Sqrt(v))
	}
	return T(math.Sqrt(float64(x)))
}

// Acos returns the arccosine of x in radians, in the width of T.
func Acos[T Element](x T) T {
	switch v := any(x).(type) {
	case float32:
		return T(math32.Acos(v))
	case float64:
		return T(math.Acos(v))
	}
	return T(math.Acos(float64(x)))
}

// Sincos returns sin(x) and cos(x) in the width of T.
func Sincos[T Float](x T) (sin, cos T) {
	switch v := any(x).(type) {
	case float32:
		s, c := math32.Sincos(v)
		return T(s), T(c)
	}
	s, c := math.Sincos(float64(x))
	return T(s), T(c)
}

// Abs returns |x|. For unsigned T it is the identity.
func Abs[T Element](x T) T {
	if x < 0 {
		return -x
	}
	return x
}

// ApproxEqual reports whether |a-b| <= eps.
// NaN compares unequal to everything, including itself.
func ApproxEqual[T Element](a, b, eps T) bool {
	if a == b {
		return true
	}
	if a > b {
		return a-b <= eps
	}
	return b-a <= eps
}
