// SPDX-License-Identifier: MIT
// Package vector_test: algebraic laws of the operator layer, checked on
// seeded random samples for several dimensions.

package vector_test

import (
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/lvmath/vector"
)

// OpsSuite checks the operator laws on int64 vectors (exact) and float64
// vectors (within tolerance).
type OpsSuite struct {
	suite.Suite
	rng *rand.Rand
}

func (s *OpsSuite) SetupTest() {
	s.rng = newRand(42)
}

func (s *OpsSuite) int2() vector.Vec2[int64] {
	return vector.NewVec2(smallInt(s.rng), smallInt(s.rng))
}

func (s *OpsSuite) int3() vector.Vec3[int64] {
	return vector.NewVec3(smallInt(s.rng), smallInt(s.rng), smallInt(s.rng))
}

func (s *OpsSuite) int4() vector.Vec4[int64] {
	return vector.NewVec4(smallInt(s.rng), smallInt(s.rng), smallInt(s.rng), smallInt(s.rng))
}

func (s *OpsSuite) int7() vector.Vec7[int64] {
	var a [7]int64
	for i := range a {
		a[i] = smallInt(s.rng)
	}
	return vector.NewVecN[int64](a)
}

func (s *OpsSuite) float3() vector.Vec3[float64] {
	return vector.NewVec3(unitFloat(s.rng), unitFloat(s.rng), unitFloat(s.rng))
}

func (s *OpsSuite) float6() vector.Vec6[float64] {
	var a [6]float64
	for i := range a {
		a[i] = unitFloat(s.rng)
	}
	return vector.NewVecN[float64](a)
}

func (s *OpsSuite) TestZeroIdentity() {
	for range propertyRounds {
		a2, a3, a4, a7 := s.int2(), s.int3(), s.int4(), s.int7()
		s.Equal(a2, a2.Add(vector.Vec2Zero[int64]()))
		s.Equal(a3, a3.Add(vector.Vec3Zero[int64]()))
		s.Equal(a4, a4.Add(vector.Vec4Zero[int64]()))
		s.Equal(a7, a7.Add(vector.VecNZero[int64, [7]int64]()))
	}
}

func (s *OpsSuite) TestAddCommutes() {
	for range propertyRounds {
		a2, b2 := s.int2(), s.int2()
		a3, b3 := s.int3(), s.int3()
		a4, b4 := s.int4(), s.int4()
		a7, b7 := s.int7(), s.int7()
		s.Equal(a2.Add(b2), b2.Add(a2))
		s.Equal(a3.Add(b3), b3.Add(a3))
		s.Equal(a4.Add(b4), b4.Add(a4))
		s.Equal(a7.Add(b7), b7.Add(a7))
	}
}

func (s *OpsSuite) TestAddAssociates() {
	for range propertyRounds {
		a2, b2, c2 := s.int2(), s.int2(), s.int2()
		a3, b3, c3 := s.int3(), s.int3(), s.int3()
		a4, b4, c4 := s.int4(), s.int4(), s.int4()
		a7, b7, c7 := s.int7(), s.int7(), s.int7()
		s.Equal(a2.Add(b2).Add(c2), a2.Add(b2.Add(c2)))
		s.Equal(a3.Add(b3).Add(c3), a3.Add(b3.Add(c3)))
		s.Equal(a4.Add(b4).Add(c4), a4.Add(b4.Add(c4)))
		s.Equal(a7.Add(b7).Add(c7), a7.Add(b7.Add(c7)))
	}
}

func (s *OpsSuite) TestSubSelfIsZero() {
	for range propertyRounds {
		a3, a7 := s.int3(), s.int7()
		s.Equal(vector.Vec3Zero[int64](), a3.Sub(a3))
		s.Equal(vector.VecNZero[int64, [7]int64](), a7.Sub(a7))

		f := s.float3()
		s.Equal(vector.Vec3Zero[float64](), f.Sub(f))
	}
}

func (s *OpsSuite) TestAddNegIsZero() {
	for range propertyRounds {
		a4, a7 := s.int4(), s.int7()
		s.Equal(vector.Vec4Zero[int64](), a4.Add(a4.Neg()))
		s.Equal(vector.VecNZero[int64, [7]int64](), a7.Add(a7.Neg()))
	}
}

func (s *OpsSuite) TestScaleDivRoundTrip() {
	for range propertyRounds {
		v, w := s.float3(), s.float6()
		k := unitFloat(s.rng)
		if k == 0 {
			continue
		}
		s.True(v.Scale(k).DivScalar(k).ApproxEqual(v, eps64), "v=%v k=%v", v, k)
		s.True(w.Scale(k).DivScalar(k).ApproxEqual(w, eps64), "w=%v k=%v", w, k)
	}
}

func (s *OpsSuite) TestLengthMatchesDot() {
	for range propertyRounds {
		v, w := s.float3(), s.float6()
		s.InDelta(v.Dot(v), v.LengthSquared(), eps64)
		s.InDelta(v.Length()*v.Length(), v.LengthSquared(), 1e-8)
		s.InDelta(w.Length()*w.Length(), w.Dot(w), 1e-8)

		i := s.int4()
		s.Equal(i.Dot(i), i.LengthSquared())
	}
}

func (s *OpsSuite) TestNormalizedIsUnit() {
	for range propertyRounds {
		v, w := s.float3(), s.float6()
		if v.LengthSquared() == 0 || w.LengthSquared() == 0 {
			continue
		}
		s.InDelta(1.0, v.Normalized().Length(), eps64)
		s.InDelta(1.0, w.Normalized().Length(), eps64)
	}
}

func (s *OpsSuite) TestCrossAnticommutes() {
	for range propertyRounds {
		a, b := s.int3(), s.int3()
		s.Equal(a.Cross(b), b.Cross(a).Neg())
		s.Equal(int64(0), a.Cross(b).Dot(a))
		s.Equal(int64(0), a.Cross(b).Dot(b))

		p, q := s.int2(), s.int2()
		s.Equal(p.Cross(q), -q.Cross(p))
	}
}

func TestOpsSuite(t *testing.T) {
	suite.Run(t, new(OpsSuite))
}

func TestElementwise(t *testing.T) {
	a := vector.NewVec4(2, 4, 6, 8)
	b := vector.NewVec4(1, 2, 3, 4)

	assert.Equal(t, vector.NewVec4(3, 6, 9, 12), a.Add(b))
	assert.Equal(t, vector.NewVec4(1, 2, 3, 4), a.Sub(b))
	assert.Equal(t, vector.NewVec4(2, 8, 18, 32), a.Mul(b))
	assert.Equal(t, vector.NewVec4(2, 2, 2, 2), a.Div(b))
	assert.Equal(t, vector.NewVec4(4, 8, 12, 16), a.Scale(2))
	assert.Equal(t, vector.NewVec4(1, 2, 3, 4), a.DivScalar(2))
	assert.Equal(t, vector.NewVec4(-2, -4, -6, -8), a.Neg())
}

func TestAssignForms(t *testing.T) {
	v := vector.NewVec3(1.0, 2.0, 3.0)
	w := vector.NewVec3(1.0, 1.0, 1.0)

	v.AddAssign(w)
	require.Equal(t, vector.NewVec3(2.0, 3.0, 4.0), v)
	v.SubAssign(w)
	require.Equal(t, vector.NewVec3(1.0, 2.0, 3.0), v)
	v.MulAssign(vector.NewVec3(2.0, 2.0, 2.0))
	require.Equal(t, vector.NewVec3(2.0, 4.0, 6.0), v)
	v.DivAssign(vector.NewVec3(2.0, 4.0, 6.0))
	require.Equal(t, vector.NewVec3(1.0, 1.0, 1.0), v)
	v.ScaleAssign(4)
	require.Equal(t, vector.NewVec3(4.0, 4.0, 4.0), v)
	v.DivScalarAssign(2)
	require.Equal(t, vector.NewVec3(2.0, 2.0, 2.0), v)

	n := vector.NewVec5[int](1, 2, 3, 4, 5)
	n.AddAssign(vector.VecNOne[int, [5]int]())
	n.ScaleAssign(2)
	n.SubAssign(vector.VecNSplat[int, [5]int](2))
	require.Equal(t, vector.NewVec5[int](2, 4, 6, 8, 10), n)
	n.DivScalarAssign(2)
	require.Equal(t, vector.NewVec5[int](1, 2, 3, 4, 5), n)
}

func TestDivScalar_IntegerTruncates(t *testing.T) {
	assert.Equal(t, vector.NewVec2(3, 4), vector.NewVec2(7, 9).DivScalar(2))
	assert.Equal(t, vector.NewVec3[uint8](50, 0, 127), vector.NewVec3[uint8](100, 1, 255).DivScalar(2))
}

func TestDivScalar_FloatReciprocal(t *testing.T) {
	v := vector.NewVec3(1.0, 2.0, 3.0).DivScalar(3)
	assert.InDelta(t, 1.0/3, v.X, eps64)
	assert.InDelta(t, 2.0/3, v.Y, eps64)
	assert.InDelta(t, 1.0, v.Z, eps64)
}

func TestNeg_UnsignedWraps(t *testing.T) {
	assert.Equal(t, vector.NewVec2[uint8](255, 0), vector.NewVec2[uint8](1, 0).Neg())
}

func TestApproxEqual(t *testing.T) {
	a := vector.NewVec2(1.0, 2.0)
	assert.True(t, a.ApproxEqual(vector.NewVec2(1.0005, 1.9995), 1e-3))
	assert.False(t, a.ApproxEqual(vector.NewVec2(1.0, 2.1), 1e-3))
	assert.True(t, vector.NewVec2(3, 4).ApproxEqual(vector.NewVec2(4, 3), 1))
}
