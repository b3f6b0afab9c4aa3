// SPDX-License-Identifier: MIT

// Package vector provides fixed-size generic vectors over any scalar.Element.
//
// Dimensions 1 through 4 are the named structs Vec1..Vec4 with X, Y, Z and W
// fields. Dimensions 5 through MaxDim are VecN, backed by a component array
// and reached through the aliases Vec5..Vec16:
//
//	a := vector.NewVec3(1.0, 2.0, 3.0)
//	b := vector.NewVec9[float32](1, 2, 3, 4, 5, 6, 7, 8, 9)
//
// The dimension is part of the type. Adding a Vec2 to a Vec3 does not
// compile, and VecN refuses array lengths outside 5..16.
//
// Operations:
//
//   - Arithmetic: Add, Sub, Mul, Div (elementwise), Scale, DivScalar, Neg,
//     plus in-place *Assign forms on pointer receivers.
//   - Geometry: Dot, Length, LengthSquared, Distance, Normalized, Reflect,
//     Angle; Cross and SignedAngle on Vec2 and Vec3.
//   - Swizzles: v.ZYX(), v.XXXX() and every other combination of the
//     available axes, returning Vec2..Vec4.
//   - Indexing: At and Set panic with an error wrapping ErrIndexOutOfRange
//     when the index is outside [0, Dim()).
//
// Every operation is written once as an array kernel (AddArray, DotArray, ...)
// and wrapped per type by cmd/vecgen, see generate.go. Dimension-generic
// code can call the kernels directly or use the Vector interface.
//
// Numeric notes:
//
//   - Length, Normalized and Angle on integer vectors compute in float64 and
//     truncate the result.
//   - Neg on unsigned element types wraps around, as Go's unary minus does.
//   - DivScalar multiplies by the reciprocal for floating-point elements.
//
// Values are plain arrays or structs; they are copied on assignment and safe
// to share between goroutines as long as nobody writes to them.
package vector
