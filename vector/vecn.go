// SPDX-License-Identifier: MIT

package vector

import (
	"iter"

	"github.com/katalvlaran/lvmath/scalar"
)

// VecN is the array-backed vector for dimensions 5..MaxDim. The dimension is
// the length of A; use the aliases Vec5..Vec16 rather than spelling A.
//
// VecN has the same contract as the named types and delegates every
// operation to the array kernels.
type VecN[T scalar.Element, A Wide[T]] struct {
	Elements A
}

// NewVecN wraps a component array.
//
//	v := vector.NewVecN[float64]([5]float64{1, 2, 3, 4, 5})
func NewVecN[T scalar.Element, A Wide[T]](a A) VecN[T, A] {
	return VecN[T, A]{Elements: a}
}

// VecNZero returns the zero vector.
func VecNZero[T scalar.Element, A Wide[T]]() VecN[T, A] { return VecN[T, A]{} }

// VecNOne returns the vector with every component 1.
func VecNOne[T scalar.Element, A Wide[T]]() VecN[T, A] { return VecNSplat[T, A](1) }

// VecNSplat returns the vector with every component s.
func VecNSplat[T scalar.Element, A Wide[T]](s T) VecN[T, A] {
	var v VecN[T, A]
	for i := 0; i < len(v.Elements); i++ {
		v.Elements[i] = s
	}
	return v
}

// VecNUnit returns the unit vector along axis i. It panics if i is out of range.
func VecNUnit[T scalar.Element, A Wide[T]](i int) VecN[T, A] {
	var v VecN[T, A]
	v.Set(i, 1)
	return v
}

// Dim returns the number of components.
func (v VecN[T, A]) Dim() int { return len(v.Elements) }

// Array returns a copy of the component array.
func (v VecN[T, A]) Array() A { return v.Elements }

// At returns component i. It panics if i is out of range.
func (v VecN[T, A]) At(i int) T {
	checkIndex(i, len(v.Elements))
	return v.Elements[i]
}

// Set replaces component i. It panics if i is out of range.
func (v *VecN[T, A]) Set(i int, x T) {
	checkIndex(i, len(v.Elements))
	v.Elements[i] = x
}

// All yields (index, component) pairs in order.
func (v VecN[T, A]) All() iter.Seq2[int, T] { return allArray[T](v.Elements) }

// String formats v as "[e0, e1, ...]".
func (v VecN[T, A]) String() string { return formatArray[T](v.Elements) }

// Swizzle2 returns (v[i], v[j]). Indexes may repeat.
func (v VecN[T, A]) Swizzle2(i, j int) Vec2[T] {
	return Vec2[T]{X: v.At(i), Y: v.At(j)}
}

// Swizzle3 returns (v[i], v[j], v[k]). Indexes may repeat.
func (v VecN[T, A]) Swizzle3(i, j, k int) Vec3[T] {
	return Vec3[T]{X: v.At(i), Y: v.At(j), Z: v.At(k)}
}

// Swizzle4 returns (v[i], v[j], v[k], v[l]). Indexes may repeat.
func (v VecN[T, A]) Swizzle4(i, j, k, l int) Vec4[T] {
	return Vec4[T]{X: v.At(i), Y: v.At(j), Z: v.At(k), W: v.At(l)}
}

// Add returns v + w.
func (v VecN[T, A]) Add(w VecN[T, A]) VecN[T, A] {
	return VecN[T, A]{AddArray[T](v.Elements, w.Elements)}
}

// Sub returns v - w.
func (v VecN[T, A]) Sub(w VecN[T, A]) VecN[T, A] {
	return VecN[T, A]{SubArray[T](v.Elements, w.Elements)}
}

// Mul returns the elementwise product of v and w.
func (v VecN[T, A]) Mul(w VecN[T, A]) VecN[T, A] {
	return VecN[T, A]{MulArray[T](v.Elements, w.Elements)}
}

// Div returns the elementwise quotient of v and w.
func (v VecN[T, A]) Div(w VecN[T, A]) VecN[T, A] {
	return VecN[T, A]{DivArray[T](v.Elements, w.Elements)}
}

// AddArr returns v + a for a raw component array.
func (v VecN[T, A]) AddArr(a A) VecN[T, A] {
	return VecN[T, A]{AddArray[T](v.Elements, a)}
}

// SubArr returns v - a for a raw component array.
func (v VecN[T, A]) SubArr(a A) VecN[T, A] {
	return VecN[T, A]{SubArray[T](v.Elements, a)}
}

// MulArr returns the elementwise product of v and a.
func (v VecN[T, A]) MulArr(a A) VecN[T, A] {
	return VecN[T, A]{MulArray[T](v.Elements, a)}
}

// DivArr returns the elementwise quotient of v and a.
func (v VecN[T, A]) DivArr(a A) VecN[T, A] {
	return VecN[T, A]{DivArray[T](v.Elements, a)}
}

// AddAssign sets v to v + w.
func (v *VecN[T, A]) AddAssign(w VecN[T, A]) { *v = v.Add(w) }

// SubAssign sets v to v - w.
func (v *VecN[T, A]) SubAssign(w VecN[T, A]) { *v = v.Sub(w) }

// MulAssign sets v to v * w elementwise.
func (v *VecN[T, A]) MulAssign(w VecN[T, A]) { *v = v.Mul(w) }

// DivAssign sets v to v / w elementwise.
func (v *VecN[T, A]) DivAssign(w VecN[T, A]) { *v = v.Div(w) }

// Scale returns v * s.
func (v VecN[T, A]) Scale(s T) VecN[T, A] {
	return VecN[T, A]{ScaleArray[T](v.Elements, s)}
}

// DivScalar returns v / s.
func (v VecN[T, A]) DivScalar(s T) VecN[T, A] {
	return VecN[T, A]{DivScalarArray[T](v.Elements, s)}
}

// ScaleAssign sets v to v * s.
func (v *VecN[T, A]) ScaleAssign(s T) { *v = v.Scale(s) }

// DivScalarAssign sets v to v / s.
func (v *VecN[T, A]) DivScalarAssign(s T) { *v = v.DivScalar(s) }

// Neg returns -v.
func (v VecN[T, A]) Neg() VecN[T, A] {
	return VecN[T, A]{NegArray[T](v.Elements)}
}

// Dot returns v · w.
func (v VecN[T, A]) Dot(w VecN[T, A]) T { return DotArray[T](v.Elements, w.Elements) }

// DotArr returns v · a for a raw component array.
func (v VecN[T, A]) DotArr(a A) T { return DotArray[T](v.Elements, a) }

// LengthSquared returns |v|².
func (v VecN[T, A]) LengthSquared() T { return LengthSquaredArray[T](v.Elements) }

// Length returns |v|.
func (v VecN[T, A]) Length() T { return LengthArray[T](v.Elements) }

// Distance returns |v - w|.
func (v VecN[T, A]) Distance(w VecN[T, A]) T { return v.Sub(w).Length() }

// DistanceSquared returns |v - w|².
func (v VecN[T, A]) DistanceSquared(w VecN[T, A]) T { return v.Sub(w).LengthSquared() }

// Normalized returns v / |v|, or the zero vector when |v| == 0.
func (v VecN[T, A]) Normalized() VecN[T, A] {
	return VecN[T, A]{NormalizedArray[T](v.Elements)}
}

// Normalize scales v to unit length in place.
func (v *VecN[T, A]) Normalize() { *v = v.Normalized() }

// Reflect reflects v about the unit vector normal.
func (v VecN[T, A]) Reflect(normal VecN[T, A]) VecN[T, A] {
	return VecN[T, A]{ReflectArray[T](v.Elements, normal.Elements)}
}

// Angle returns the angle between v and w in radians.
func (v VecN[T, A]) Angle(w VecN[T, A]) T { return AngleArray[T](v.Elements, w.Elements) }

// ApproxEqual reports whether every component of v is within eps of w's.
func (v VecN[T, A]) ApproxEqual(w VecN[T, A], eps T) bool {
	return ApproxEqualArray[T](v.Elements, w.Elements, eps)
}
