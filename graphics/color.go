// SPDX-License-Identifier: MIT

package graphics

import (
	"image/color"

	"github.com/chewxy/math32"
	"golang.org/x/image/colornames"

	"github.com/katalvlaran/lvmath/vector"
)

// Color is a straight RGBA color with float32 channels, nominally in [0, 1].
type Color struct {
	R float32 `json:"r" yaml:"r"`
	G float32 `json:"g" yaml:"g"`
	B float32 `json:"b" yaml:"b"`
	A float32 `json:"a" yaml:"a"`
}

// Color32 is a straight RGBA color with 8-bit channels.
type Color32 struct {
	R uint8 `json:"r" yaml:"r"`
	G uint8 `json:"g" yaml:"g"`
	B uint8 `json:"b" yaml:"b"`
	A uint8 `json:"a" yaml:"a"`
}

var (
	_ color.Color = Color{}
	_ color.Color = Color32{}
)

// NewColor returns the color (r, g, b, a).
func NewColor(r, g, b, a float32) Color { return Color{R: r, G: g, B: b, A: a} }

// ColorFromVec4 reads x, y, z, w as r, g, b, a.
func ColorFromVec4(v vector.Vec4[float32]) Color {
	return Color{R: v.X, G: v.Y, B: v.Z, A: v.W}
}

// Vec4 returns the channels as (r, g, b, a).
func (c Color) Vec4() vector.Vec4[float32] {
	return vector.NewVec4(c.R, c.G, c.B, c.A)
}

// Color32 quantizes c to 8 bits per channel.
func (c Color) Color32() Color32 {
	return Color32{R: quantize(c.R), G: quantize(c.G), B: quantize(c.B), A: quantize(c.A)}
}

// RGBA implements color.Color.
func (c Color) RGBA() (r, g, b, a uint32) {
	return color.NRGBA64{
		R: widen(c.R),
		G: widen(c.G),
		B: widen(c.B),
		A: widen(c.A),
	}.RGBA()
}

// Color returns c with channels scaled to [0, 1].
func (c Color32) Color() Color {
	return Color{
		R: float32(c.R) / 255,
		G: float32(c.G) / 255,
		B: float32(c.B) / 255,
		A: float32(c.A) / 255,
	}
}

// RGBA implements color.Color.
func (c Color32) RGBA() (r, g, b, a uint32) {
	return color.NRGBA{R: c.R, G: c.G, B: c.B, A: c.A}.RGBA()
}

// Color32Of converts any image color to a Color32, un-premultiplying alpha.
func Color32Of(c color.Color) Color32 {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	return Color32{R: n.R, G: n.G, B: n.B, A: n.A}
}

// Named returns the SVG 1.1 color with the given lower-case name, such as
// "cornflowerblue".
func Named(name string) (Color32, bool) {
	c, ok := colornames.Map[name]
	if !ok {
		return Color32{}, false
	}
	return Color32Of(c), true
}

func quantize(x float32) uint8 {
	return uint8(clamp01(x) * 255.99)
}

func widen(x float32) uint16 {
	return uint16(clamp01(x)*65535 + 0.5)
}

// clamp01 limits x to [0, 1]. NaN maps to 0.
func clamp01(x float32) float32 {
	if math32.IsNaN(x) {
		return 0
	}
	return max(0, min(x, 1))
}
