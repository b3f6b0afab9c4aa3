// SPDX-License-Identifier: MIT

package scalar_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvmath/scalar"
)

type celsius float64

type count uint16

func TestIdentities(t *testing.T) {
	assert.Equal(t, 0, scalar.Zero[int]())
	assert.Equal(t, 1, scalar.One[int]())
	assert.Equal(t, float32(0), scalar.Zero[float32]())
	assert.Equal(t, float32(1), scalar.One[float32]())
	assert.Equal(t, celsius(1), scalar.One[celsius]())
}

func TestIsFloat(t *testing.T) {
	assert.True(t, scalar.IsFloat[float32]())
	assert.True(t, scalar.IsFloat[float64]())
	assert.True(t, scalar.IsFloat[celsius]())

	assert.False(t, scalar.IsFloat[int]())
	assert.False(t, scalar.IsFloat[uint8]())
	assert.False(t, scalar.IsFloat[count]())
}

func TestSqrt(t *testing.T) {
	assert.Equal(t, 5.0, scalar.Sqrt(25.0))
	assert.Equal(t, float32(1.5), scalar.Sqrt(float32(2.25)))
	assert.Equal(t, celsius(3), scalar.Sqrt(celsius(9)))

	// integers truncate toward zero
	assert.Equal(t, 1, scalar.Sqrt(3))
	assert.Equal(t, count(4), scalar.Sqrt(count(24)))
}

func TestAcos(t *testing.T) {
	assert.InDelta(t, math.Pi/2, scalar.Acos(0.0), 1e-12)
	assert.InDelta(t, math.Pi, float64(scalar.Acos(float32(-1))), 1e-6)
	assert.Equal(t, 0.0, scalar.Acos(1.0))
	assert.True(t, math.IsNaN(scalar.Acos(1.5)))
	assert.Equal(t, 3, scalar.Acos(-1))
}

func TestSincos(t *testing.T) {
	s, c := scalar.Sincos(math.Pi / 6)
	assert.InDelta(t, 0.5, s, 1e-12)
	assert.InDelta(t, math.Sqrt(3)/2, c, 1e-12)

	s32, c32 := scalar.Sincos(float32(math.Pi / 2))
	assert.InDelta(t, 1, float64(s32), 1e-6)
	assert.InDelta(t, 0, float64(c32), 1e-6)
}

func TestAbs(t *testing.T) {
	assert.Equal(t, 3, scalar.Abs(-3))
	assert.Equal(t, 2.5, scalar.Abs(-2.5))
	assert.Equal(t, uint8(7), scalar.Abs(uint8(7)))
	assert.Equal(t, 0.0, scalar.Abs(0.0))
}

func TestApproxEqual(t *testing.T) {
	cases := []struct {
		name string
		a, b float64
		eps  float64
		want bool
	}{
		{"identical", 1, 1, 0, true},
		{"within eps", 1, 1.0005, 1e-3, true},
		{"within eps reversed", 1.0005, 1, 1e-3, true},
		{"outside eps", 1, 1.1, 1e-3, false},
		{"infinities", math.Inf(1), math.Inf(1), 0, true},
		{"nan", math.NaN(), math.NaN(), 1, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.want, scalar.ApproxEqual(tc.a, tc.b, tc.eps))
		})
	}

	// unsigned operands never underflow
	assert.True(t, scalar.ApproxEqual(uint8(3), uint8(5), 2))
	assert.False(t, scalar.ApproxEqual(uint8(5), uint8(3), 1))
}
