// SPDX-License-Identifier: MIT

package vector

import "github.com/katalvlaran/lvmath/scalar"

// Vec2 is a 2-dimensional vector.
type Vec2[T scalar.Element] struct {
	X T `json:"x" yaml:"x"`
	Y T `json:"y" yaml:"y"`
}

// NewVec2 returns the vector (x, y).
func NewVec2[T scalar.Element](x, y T) Vec2[T] {
	return Vec2[T]{X: x, Y: y}
}

// Vec2FromArray returns the vector (a[0], a[1]).
func Vec2FromArray[T scalar.Element](a [2]T) Vec2[T] {
	return Vec2[T]{X: a[0], Y: a[1]}
}

// Vec2FromVec1 promotes v with the trailing component y.
func Vec2FromVec1[T scalar.Element](v Vec1[T], y T) Vec2[T] {
	return Vec2[T]{X: v.X, Y: y}
}

// Vec2Zero returns (0, 0).
func Vec2Zero[T scalar.Element]() Vec2[T] { return Vec2[T]{} }

// Vec2One returns (1, 1).
func Vec2One[T scalar.Element]() Vec2[T] { return Vec2[T]{X: 1, Y: 1} }

// Vec2Splat returns (s, s).
func Vec2Splat[T scalar.Element](s T) Vec2[T] { return Vec2[T]{X: s, Y: s} }

// Vec2UnitX returns the unit vector along +X.
func Vec2UnitX[T scalar.Element]() Vec2[T] { return Vec2[T]{X: 1} }

// Vec2UnitY returns the unit vector along +Y.
func Vec2UnitY[T scalar.Element]() Vec2[T] { return Vec2[T]{Y: 1} }

// Array returns the components as [x, y].
func (v Vec2[T]) Array() [2]T { return [2]T{v.X, v.Y} }

// At returns component i (0=x, 1=y). It panics if i is out of range.
func (v Vec2[T]) At(i int) T {
	switch i {
	case 0:
		return v.X
	case 1:
		return v.Y
	}
	panicIndex(i, 2)
	return v.X
}

// Set replaces component i. It panics if i is out of range.
func (v *Vec2[T]) Set(i int, x T) {
	switch i {
	case 0:
		v.X = x
	case 1:
		v.Y = x
	default:
		panicIndex(i, 2)
	}
}

// Extend returns the 3-vector (x, y, z).
func (v Vec2[T]) Extend(z T) Vec3[T] {
	return Vec3[T]{X: v.X, Y: v.Y, Z: z}
}

// Cross returns the z component of the 3D cross product of (v, 0) and (w, 0).
// It is positive when w lies counter-clockwise from v.
func (v Vec2[T]) Cross(w Vec2[T]) T {
	return v.X*w.Y - v.Y*w.X
}

// SignedAngle returns the angle from v to w in radians, negative when the
// rotation is clockwise. Zero-length inputs yield NaN.
func (v Vec2[T]) SignedAngle(w Vec2[T]) T {
	angle := v.Angle(w)
	if v.Cross(w) < 0 {
		return -angle
	}
	return angle
}

// Perp returns v rotated by +90°: (-y, x).
func (v Vec2[T]) Perp() Vec2[T] {
	return Vec2[T]{X: -v.Y, Y: v.X}
}
