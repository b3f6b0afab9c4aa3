// SPDX-License-Identifier: MIT

package vector

import "github.com/katalvlaran/lvmath/scalar"

// Vec1 is a 1-dimensional vector. It exists so dimension-generic code has a
// named type at D=1; arithmetic on it matches plain scalar arithmetic.
type Vec1[T scalar.Element] struct {
	X T `json:"x" yaml:"x"`
}

// NewVec1 returns the vector (x).
func NewVec1[T scalar.Element](x T) Vec1[T] {
	return Vec1[T]{X: x}
}

// Vec1FromArray returns the vector (a[0]).
func Vec1FromArray[T scalar.Element](a [1]T) Vec1[T] {
	return Vec1[T]{X: a[0]}
}

// Vec1Zero returns (0).
func Vec1Zero[T scalar.Element]() Vec1[T] { return Vec1[T]{} }

// Vec1One returns (1).
func Vec1One[T scalar.Element]() Vec1[T] { return Vec1[T]{X: 1} }

// Vec1Splat returns (s).
func Vec1Splat[T scalar.Element](s T) Vec1[T] { return Vec1[T]{X: s} }

// Vec1UnitX returns the unit vector along +X.
func Vec1UnitX[T scalar.Element]() Vec1[T] { return Vec1[T]{X: 1} }

// Array returns the components as [x].
func (v Vec1[T]) Array() [1]T { return [1]T{v.X} }

// At returns component i (0=x). It panics if i is out of range.
func (v Vec1[T]) At(i int) T {
	if i != 0 {
		panicIndex(i, 1)
	}
	return v.X
}

// Set replaces component i. It panics if i is out of range.
func (v *Vec1[T]) Set(i int, x T) {
	if i != 0 {
		panicIndex(i, 1)
	}
	v.X = x
}

// Extend returns the 2-vector (x, y).
func (v Vec1[T]) Extend(y T) Vec2[T] {
	return Vec2[T]{X: v.X, Y: y}
}
