// SPDX-License-Identifier: MIT

package graphics_test

import (
	"image/color"
	"testing"

	"github.com/chewxy/math32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvmath/graphics"
	"github.com/katalvlaran/lvmath/vector"
)

func TestColor32_Quantize(t *testing.T) {
	cases := []struct {
		name string
		in   float32
		want uint8
	}{
		{"zero", 0, 0},
		{"one", 1, 255},
		{"half", 0.5, 127},
		{"just below one", 0.999, 255},
		{"quarter", 0.25, 63},
		{"negative saturates", -0.5, 0},
		{"overflow saturates", 3, 255},
		{"nan is zero", math32.NaN(), 0},
		{"infinity saturates", math32.Inf(1), 255},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := graphics.NewColor(tc.in, 0, 0, 1).Color32()
			assert.Equal(t, tc.want, got.R)
			assert.Equal(t, uint8(255), got.A)
		})
	}
}

func TestColor32_RoundTrip(t *testing.T) {
	for v := 0; v <= 255; v++ {
		c := graphics.Color32{R: uint8(v), G: uint8(255 - v), B: 7, A: uint8(v)}
		require.Equal(t, c, c.Color().Color32(), "v=%d", v)
	}
}

func TestColor_Vec4(t *testing.T) {
	c := graphics.NewColor(0.1, 0.2, 0.3, 0.4)
	v := c.Vec4()
	assert.Equal(t, vector.NewVec4[float32](0.1, 0.2, 0.3, 0.4), v)
	assert.Equal(t, c, graphics.ColorFromVec4(v))

	// vector arithmetic on colors
	mid := graphics.ColorFromVec4(v.Add(vector.Vec4One[float32]()).Scale(0.5))
	assert.InDelta(t, 0.55, mid.R, 1e-6)
	assert.InDelta(t, 0.7, mid.A, 1e-6)
}

func TestImageColor(t *testing.T) {
	opaque := graphics.Color32{R: 255, G: 128, B: 0, A: 255}
	r, g, b, a := opaque.RGBA()
	assert.Equal(t, uint32(0xffff), r)
	assert.Equal(t, uint32(0x8080), g)
	assert.Equal(t, uint32(0), b)
	assert.Equal(t, uint32(0xffff), a)

	// straight alpha is premultiplied on the way out
	half := graphics.Color32{R: 255, G: 255, B: 255, A: 128}
	r, _, _, a = half.RGBA()
	assert.Equal(t, a, r)

	assert.Equal(t, opaque, graphics.Color32Of(opaque))
	assert.Equal(t, opaque, graphics.Color32Of(color.RGBA{R: 255, G: 128, A: 255}))

	fr, fg, fb, fa := graphics.NewColor(1, 0, 0, 1).RGBA()
	assert.Equal(t, []uint32{0xffff, 0, 0, 0xffff}, []uint32{fr, fg, fb, fa})

	var _ color.Color = graphics.NewColor(0, 0, 0, 0)
}

func TestImageColor_NaN(t *testing.T) {
	r, g, b, a := graphics.NewColor(math32.NaN(), 1, math32.NaN(), math32.NaN()).RGBA()
	assert.Equal(t, []uint32{0, 0, 0, 0}, []uint32{r, g, b, a})

	r, g, _, a = graphics.NewColor(math32.NaN(), 1, 0, 1).RGBA()
	assert.Equal(t, []uint32{0, 0xffff, 0xffff}, []uint32{r, g, a})
}

func TestNamed(t *testing.T) {
	c, ok := graphics.Named("cornflowerblue")
	require.True(t, ok)
	assert.Equal(t, graphics.Color32{R: 100, G: 149, B: 237, A: 255}, c)

	_, ok = graphics.Named("not-a-color")
	assert.False(t, ok)
}
