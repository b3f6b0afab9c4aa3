// SPDX-License-Identifier: MIT

package vector

import "github.com/katalvlaran/lvmath/scalar"

// Vec3 is a 3-dimensional vector.
type Vec3[T scalar.Element] struct {
	X T `json:"x" yaml:"x"`
	Y T `json:"y" yaml:"y"`
	Z T `json:"z" yaml:"z"`
}

// NewVec3 returns the vector (x, y, z).
func NewVec3[T scalar.Element](x, y, z T) Vec3[T] {
	return Vec3[T]{X: x, Y: y, Z: z}
}

// Vec3FromArray returns the vector whose components are a[0], a[1], a[2].
func Vec3FromArray[T scalar.Element](a [3]T) Vec3[T] {
	return Vec3[T]{X: a[0], Y: a[1], Z: a[2]}
}

// Vec3FromVec1 promotes v with the trailing components y and z.
func Vec3FromVec1[T scalar.Element](v Vec1[T], y, z T) Vec3[T] {
	return Vec3[T]{X: v.X, Y: y, Z: z}
}

// Vec3FromVec2 promotes v with the trailing component z.
func Vec3FromVec2[T scalar.Element](v Vec2[T], z T) Vec3[T] {
	return Vec3[T]{X: v.X, Y: v.Y, Z: z}
}

// Vec3Zero returns (0, 0, 0).
func Vec3Zero[T scalar.Element]() Vec3[T] { return Vec3[T]{} }

// Vec3One returns (1, 1, 1).
func Vec3One[T scalar.Element]() Vec3[T] { return Vec3[T]{X: 1, Y: 1, Z: 1} }

// Vec3Splat returns (s, s, s).
func Vec3Splat[T scalar.Element](s T) Vec3[T] { return Vec3[T]{X: s, Y: s, Z: s} }

// Vec3UnitX returns the unit vector along +X.
func Vec3UnitX[T scalar.Element]() Vec3[T] { return Vec3[T]{X: 1} }

// Vec3UnitY returns the unit vector along +Y.
func Vec3UnitY[T scalar.Element]() Vec3[T] { return Vec3[T]{Y: 1} }

// Vec3UnitZ returns the unit vector along +Z.
func Vec3UnitZ[T scalar.Element]() Vec3[T] { return Vec3[T]{Z: 1} }

// Array returns the components as [x, y, z].
func (v Vec3[T]) Array() [3]T { return [3]T{v.X, v.Y, v.Z} }

// At returns component i (0=x, 1=y, 2=z). It panics if i is out of range.
func (v Vec3[T]) At(i int) T {
	switch i {
	case 0:
		return v.X
	case 1:
		return v.Y
	case 2:
		return v.Z
	}
	panicIndex(i, 3)
	return v.X
}

// Set replaces component i. It panics if i is out of range.
func (v *Vec3[T]) Set(i int, x T) {
	switch i {
	case 0:
		v.X = x
	case 1:
		v.Y = x
	case 2:
		v.Z = x
	default:
		panicIndex(i, 3)
	}
}

// Extend returns the 4-vector (x, y, z, w).
func (v Vec3[T]) Extend(w T) Vec4[T] {
	return Vec4[T]{X: v.X, Y: v.Y, Z: v.Z, W: w}
}

// Cross returns the right-handed cross product v × w.
func (v Vec3[T]) Cross(w Vec3[T]) Vec3[T] {
	return Vec3[T]{
		X: v.Y*w.Z - v.Z*w.Y,
		Y: v.Z*w.X - v.X*w.Z,
		Z: v.X*w.Y - v.Y*w.X,
	}
}

// SignedAngle returns the angle between v and w, negated when v × w points
// against normal. Zero-length inputs yield NaN.
func (v Vec3[T]) SignedAngle(w, normal Vec3[T]) T {
	angle := v.Angle(w)
	if v.Cross(w).Dot(normal) < 0 {
		return -angle
	}
	return angle
}
