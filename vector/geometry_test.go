// SPDX-License-Identifier: MIT

package vector_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvmath/vector"
)

func TestLength(t *testing.T) {
	assert.Equal(t, 5.0, vector.NewVec2(3.0, 4.0).Length())
	assert.Equal(t, float32(13), vector.NewVec2[float32](5, 12).Length())
	assert.Equal(t, 25, vector.NewVec2(3, 4).LengthSquared())
	assert.Equal(t, 3.0, vector.NewVec9[float64](1, 1, 1, 1, 1, 1, 1, 1, 1).Length())

	// integer lengths truncate
	assert.Equal(t, 1, vector.NewVec2(1, 1).Length())
	assert.Equal(t, 5, vector.NewVec2(3, 4).Length())
}

func TestDistance(t *testing.T) {
	a := vector.NewVec3(1.0, 2.0, 3.0)
	b := vector.NewVec3(1.0, 5.0, 7.0)
	assert.Equal(t, 5.0, a.Distance(b))
	assert.Equal(t, 25.0, a.DistanceSquared(b))
	assert.Equal(t, a.Distance(b), b.Distance(a))
	assert.Equal(t, 0.0, a.Distance(a))
}

func TestNormalized(t *testing.T) {
	n := vector.NewVec3(0.0, 3.0, 4.0).Normalized()
	assert.True(t, n.ApproxEqual(vector.NewVec3(0.0, 0.6, 0.8), eps64), "got %v", n)

	// zero stays zero instead of turning into NaN
	assert.Equal(t, vector.Vec3Zero[float64](), vector.Vec3Zero[float64]().Normalized())
	assert.Equal(t, vector.VecNZero[float32, [5]float32](), vector.VecNZero[float32, [5]float32]().Normalized())

	v := vector.NewVec2[float32](10, 0)
	v.Normalize()
	assert.Equal(t, vector.NewVec2[float32](1, 0), v)
}

// TestLength_Extremes covers components whose squares overflow or
// underflow the element type.
func TestLength_Extremes(t *testing.T) {
	big := vector.NewVec3[float32](2e19, 0, 0)
	assert.InEpsilon(t, float32(2e19), big.Length(), 1e-6)

	tiny := vector.NewVec3[float32](1e-30, 0, 0)
	require.NotZero(t, tiny.Length())
	assert.InEpsilon(t, float32(1e-30), tiny.Length(), 1e-6)

	assert.InEpsilon(t, 5e-30, vector.NewVec2[float32](3e-30, 4e-30).Length(), 1e-5)
	assert.InEpsilon(t, 1e200, vector.NewVec3(1e200, 0.0, 0.0).Length(), 1e-12)
	assert.InEpsilon(t, 5e200, vector.NewVec2(3e200, 4e200).Length(), 1e-12)
	assert.InEpsilon(t, 5e-200, vector.NewVec2(3e-200, 4e-200).Length(), 1e-12)
	assert.InEpsilon(t, 1e-310, vector.NewVec2(1e-310, 0.0).Length(), 1e-6)
	assert.InEpsilon(t, 2e19, vector.NewVec5[float32](2e19, 0, 0, 0, 0).Length(), 1e-6)

	assert.Zero(t, vector.Vec3Zero[float32]().Length())
	assert.True(t, math.IsNaN(vector.NewVec2(math.NaN(), 0).Length()))
}

func TestNormalized_Extremes(t *testing.T) {
	unit32 := vector.Vec3UnitX[float32]()
	for _, v := range []vector.Vec3[float32]{
		vector.NewVec3[float32](2e19, 0, 0),
		vector.NewVec3[float32](1e-30, 0, 0),
		vector.NewVec3[float32](1e-40, 0, 0),
		vector.NewVec3[float32](3e38, 0, 0),
	} {
		n := v.Normalized()
		assert.True(t, n.ApproxEqual(unit32, eps32), "%v normalized to %v", v, n)
	}

	for _, v := range []vector.Vec2[float64]{
		vector.NewVec2(1e200, 1e200),
		vector.NewVec2(1e-200, 1e-200),
		vector.NewVec2(1e-310, 1e-310),
	} {
		n := v.Normalized()
		assert.InDelta(t, 1.0, n.Length(), eps64, "%v normalized to %v", v, n)
		assert.InDelta(t, n.X, n.Y, eps64)
	}
}

func TestAngle(t *testing.T) {
	x := vector.Vec3UnitX[float64]()
	y := vector.Vec3UnitY[float64]()
	assert.InDelta(t, math.Pi/2, x.Angle(y), eps64)
	assert.InDelta(t, math.Pi, x.Angle(x.Neg()), eps64)
	assert.InDelta(t, math.Pi/4, x.Angle(vector.NewVec3(1.0, 1.0, 0.0)), eps64)

	// zero-length input is not guarded
	assert.True(t, math.IsNaN(x.Angle(vector.Vec3Zero[float64]())))
}

func TestSignedAngle2(t *testing.T) {
	x := vector.Vec2UnitX[float64]()
	y := vector.Vec2UnitY[float64]()
	assert.InDelta(t, math.Pi/2, x.SignedAngle(y), eps64)
	assert.InDelta(t, -math.Pi/2, y.SignedAngle(x), eps64)
	assert.Equal(t, 1.0, x.Cross(y))
	assert.Equal(t, -1.0, y.Cross(x))
}

func TestSignedAngle3(t *testing.T) {
	x := vector.Vec3UnitX[float64]()
	y := vector.Vec3UnitY[float64]()
	z := vector.Vec3UnitZ[float64]()
	assert.InDelta(t, math.Pi/2, x.SignedAngle(y, z), eps64)
	assert.InDelta(t, -math.Pi/2, x.SignedAngle(y, z.Neg()), eps64)
	assert.InDelta(t, -math.Pi/2, y.SignedAngle(x, z), eps64)
}

func TestCross3(t *testing.T) {
	x := vector.Vec3UnitX[int]()
	y := vector.Vec3UnitY[int]()
	z := vector.Vec3UnitZ[int]()
	assert.Equal(t, z, x.Cross(y))
	assert.Equal(t, x, y.Cross(z))
	assert.Equal(t, y, z.Cross(x))
	assert.Equal(t, z.Neg(), y.Cross(x))
	assert.Equal(t, vector.Vec3Zero[int](), x.Cross(x))

	assert.Equal(t, vector.NewVec3(-3, 6, -3), vector.NewVec3(1, 2, 3).Cross(vector.NewVec3(4, 5, 6)))
}

func TestPerp(t *testing.T) {
	v := vector.NewVec2(3, 1)
	p := v.Perp()
	assert.Equal(t, vector.NewVec2(-1, 3), p)
	assert.Equal(t, 0, v.Dot(p))
	assert.Positive(t, v.Cross(p))
}

// TestReflect_Degrees reflects the unit vector at every whole degree about
// the +Y axis and checks the mirror image component by component.
func TestReflect_Degrees(t *testing.T) {
	normal := vector.Vec2UnitY[float64]()
	for deg := 1; deg <= 180; deg++ {
		theta := float64(deg) * math.Pi / 180
		v := vector.NewVec2(math.Cos(theta), math.Sin(theta))
		r := v.Reflect(normal)

		require.InDelta(t, v.X, r.X, eps64, "deg=%d", deg)
		require.InDelta(t, -v.Y, r.Y, eps64, "deg=%d", deg)
		require.InDelta(t, 1.0, r.Length(), eps64, "deg=%d", deg)
		require.True(t, r.Reflect(normal).ApproxEqual(v, eps64), "deg=%d", deg)
	}
}

func TestReflect(t *testing.T) {
	// a ball hitting the floor
	in := vector.NewVec3(1.0, -1.0, 0.5)
	out := in.Reflect(vector.Vec3UnitY[float64]())
	assert.Equal(t, vector.NewVec3(1.0, 1.0, 0.5), out)

	w := vector.NewVec5[float64](1, 2, 3, 4, 5)
	e := vector.VecNUnit[float64, [5]float64](4)
	assert.Equal(t, vector.NewVec5[float64](1, 2, 3, 4, -5), w.Reflect(e))
}
