// SPDX-License-Identifier: MIT

package vector

import "github.com/katalvlaran/lvmath/scalar"

// Vec4 is a 4-dimensional vector, typically a homogeneous coordinate or an
// RGBA color.
type Vec4[T scalar.Element] struct {
	X T `json:"x" yaml:"x"`
	Y T `json:"y" yaml:"y"`
	Z T `json:"z" yaml:"z"`
	W T `json:"w" yaml:"w"`
}

// NewVec4 returns the vector (x, y, z, w).
func NewVec4[T scalar.Element](x, y, z, w T) Vec4[T] {
	return Vec4[T]{X: x, Y: y, Z: z, W: w}
}

// Vec4FromArray returns the vector (a[0], a[1], a[2], a[3]).
func Vec4FromArray[T scalar.Element](a [4]T) Vec4[T] {
	return Vec4[T]{X: a[0], Y: a[1], Z: a[2], W: a[3]}
}

// Vec4FromVec1 promotes v with the trailing components y, z and w.
func Vec4FromVec1[T scalar.Element](v Vec1[T], y, z, w T) Vec4[T] {
	return Vec4[T]{X: v.X, Y: y, Z: z, W: w}
}

// Vec4FromVec2 promotes v with the trailing components z and w.
func Vec4FromVec2[T scalar.Element](v Vec2[T], z, w T) Vec4[T] {
	return Vec4[T]{X: v.X, Y: v.Y, Z: z, W: w}
}

// Vec4FromVec3 promotes v with the trailing component w.
func Vec4FromVec3[T scalar.Element](v Vec3[T], w T) Vec4[T] {
	return Vec4[T]{X: v.X, Y: v.Y, Z: v.Z, W: w}
}

// Vec4Zero returns (0, 0, 0, 0).
func Vec4Zero[T scalar.Element]() Vec4[T] { return Vec4[T]{} }

// Vec4One returns (1, 1, 1, 1).
func Vec4One[T scalar.Element]() Vec4[T] { return Vec4[T]{X: 1, Y: 1, Z: 1, W: 1} }

// Vec4Splat returns (s, s, s, s).
func Vec4Splat[T scalar.Element](s T) Vec4[T] { return Vec4[T]{X: s, Y: s, Z: s, W: s} }

// Vec4UnitX returns the unit vector along +X.
func Vec4UnitX[T scalar.Element]() Vec4[T] { return Vec4[T]{X: 1} }

// Vec4UnitY returns the unit vector along +Y.
func Vec4UnitY[T scalar.Element]() Vec4[T] { return Vec4[T]{Y: 1} }

// Vec4UnitZ returns the unit vector along +Z.
func Vec4UnitZ[T scalar.Element]() Vec4[T] { return Vec4[T]{Z: 1} }

// Vec4UnitW returns the unit vector along +W.
func Vec4UnitW[T scalar.Element]() Vec4[T] { return Vec4[T]{W: 1} }

// Array returns the components as [x, y, z, w].
func (v Vec4[T]) Array() [4]T { return [4]T{v.X, v.Y, v.Z, v.W} }

// At returns component i (0=x, 1=y, 2=z, 3=w). It panics if i is out of range.
func (v Vec4[T]) At(i int) T {
	switch i {
	case 0:
		return v.X
	case 1:
		return v.Y
	case 2:
		return v.Z
	case 3:
		return v.W
	}
	panicIndex(i, 4)
	return v.X
}

// Set replaces component i. It panics if i is out of range.
func (v *Vec4[T]) Set(i int, x T) {
	switch i {
	case 0:
		v.X = x
	case 1:
		v.Y = x
	case 2:
		v.Z = x
	case 3:
		v.W = x
	default:
		panicIndex(i, 4)
	}
}
