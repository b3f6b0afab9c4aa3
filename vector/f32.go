// SPDX-License-Identifier: MIT

package vector

import (
	"golang.org/x/image/math/f32"

	"github.com/katalvlaran/lvmath/scalar"
)

// F32 converts v to an x/image vector.
func (v Vec2[T]) F32() f32.Vec2 { return f32.Vec2{float32(v.X), float32(v.Y)} }

// F32 converts v to an x/image vector.
func (v Vec3[T]) F32() f32.Vec3 { return f32.Vec3{float32(v.X), float32(v.Y), float32(v.Z)} }

// F32 converts v to an x/image vector.
func (v Vec4[T]) F32() f32.Vec4 {
	return f32.Vec4{float32(v.X), float32(v.Y), float32(v.Z), float32(v.W)}
}

// Vec2FromF32 converts an x/image vector, truncating for integer T.
func Vec2FromF32[T scalar.Element](f f32.Vec2) Vec2[T] { return Vec2[T]{T(f[0]), T(f[1])} }

// Vec3FromF32 converts an x/image vector, truncating for integer T.
func Vec3FromF32[T scalar.Element](f f32.Vec3) Vec3[T] { return Vec3[T]{T(f[0]), T(f[1]), T(f[2])} }

// Vec4FromF32 converts an x/image vector, truncating for integer T.
func Vec4FromF32[T scalar.Element](f f32.Vec4) Vec4[T] {
	return Vec4[T]{T(f[0]), T(f[1]), T(f[2]), T(f[3])}
}
