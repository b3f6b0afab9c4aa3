// SPDX-License-Identifier: MIT
// Package vector_test: construction, indexing and conversion of the named
// vector types and the array-backed VecN.

package vector_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvmath/scalar"
	"github.com/katalvlaran/lvmath/vector"
)

func TestConstructors(t *testing.T) {
	assert.Equal(t, vector.Vec1[int]{X: 7}, vector.NewVec1(7))
	assert.Equal(t, vector.Vec2[int]{X: 1, Y: 2}, vector.NewVec2(1, 2))
	assert.Equal(t, vector.Vec3[float64]{X: 1, Y: 2, Z: 3}, vector.NewVec3(1.0, 2.0, 3.0))
	assert.Equal(t, vector.Vec4[float32]{X: 1, Y: 2, Z: 3, W: 4}, vector.NewVec4[float32](1, 2, 3, 4))

	assert.Equal(t, vector.NewVec3(0, 0, 0), vector.Vec3Zero[int]())
	assert.Equal(t, vector.NewVec4(1, 1, 1, 1), vector.Vec4One[int]())
	assert.Equal(t, vector.NewVec2(5, 5), vector.Vec2Splat(5))
	assert.Equal(t, vector.NewVec1(1), vector.Vec1One[int]())

	assert.Equal(t, vector.NewVec3(1, 0, 0), vector.Vec3UnitX[int]())
	assert.Equal(t, vector.NewVec3(0, 1, 0), vector.Vec3UnitY[int]())
	assert.Equal(t, vector.NewVec3(0, 0, 1), vector.Vec3UnitZ[int]())
	assert.Equal(t, vector.NewVec4(0, 0, 0, 1), vector.Vec4UnitW[int]())
}

func TestPromotion(t *testing.T) {
	v1 := vector.NewVec1(1)
	v2 := v1.Extend(2)
	v3 := v2.Extend(3)
	v4 := v3.Extend(4)
	assert.Equal(t, vector.NewVec2(1, 2), v2)
	assert.Equal(t, vector.NewVec3(1, 2, 3), v3)
	assert.Equal(t, vector.NewVec4(1, 2, 3, 4), v4)

	assert.Equal(t, v2, vector.Vec2FromVec1(v1, 2))
	assert.Equal(t, v3, vector.Vec3FromVec1(v1, 2, 3))
	assert.Equal(t, v3, vector.Vec3FromVec2(v2, 3))
	assert.Equal(t, v4, vector.Vec4FromVec1(v1, 2, 3, 4))
	assert.Equal(t, v4, vector.Vec4FromVec2(v2, 3, 4))
	assert.Equal(t, v4, vector.Vec4FromVec3(v3, 4))
}

func TestArrayRoundTrip(t *testing.T) {
	assert.Equal(t, [1]int{9}, vector.Vec1FromArray([1]int{9}).Array())
	assert.Equal(t, [2]int{1, 2}, vector.Vec2FromArray([2]int{1, 2}).Array())
	assert.Equal(t, [3]int{1, 2, 3}, vector.Vec3FromArray([3]int{1, 2, 3}).Array())
	assert.Equal(t, [4]int{1, 2, 3, 4}, vector.Vec4FromArray([4]int{1, 2, 3, 4}).Array())

	v := vector.NewVec3(4.0, 5.0, 6.0)
	assert.Equal(t, v, vector.Vec3FromArray(v.Array()))

	w := vector.NewVec7[int](1, 2, 3, 4, 5, 6, 7)
	assert.Equal(t, [7]int{1, 2, 3, 4, 5, 6, 7}, w.Array())
	assert.Equal(t, w, vector.NewVecN[int](w.Array()))
}

func TestAtSet(t *testing.T) {
	v := vector.NewVec4(10, 20, 30, 40)
	for i, want := range []int{10, 20, 30, 40} {
		assert.Equal(t, want, v.At(i), "At(%d)", i)
	}

	v.Set(0, 1)
	v.Set(3, 4)
	assert.Equal(t, vector.NewVec4(1, 20, 30, 4), v)

	var v1 vector.Vec1[int]
	v1.Set(0, 3)
	assert.Equal(t, 3, v1.At(0))

	v2 := vector.NewVec2(1, 2)
	v2.Set(1, 5)
	assert.Equal(t, 5, v2.At(1))

	v3 := vector.NewVec3(1, 2, 3)
	v3.Set(2, 9)
	assert.Equal(t, 9, v3.At(2))
}

func TestAtSet_OutOfRange(t *testing.T) {
	v1 := vector.NewVec1(1)
	v2 := vector.NewVec2(1, 2)
	v3 := vector.NewVec3(1, 2, 3)
	v4 := vector.NewVec4(1, 2, 3, 4)
	v9 := vector.VecNZero[int, [9]int]()

	cases := []struct {
		name string
		f    func()
	}{
		{"Vec1.At(1)", func() { v1.At(1) }},
		{"Vec1.Set(-1)", func() { v1.Set(-1, 0) }},
		{"Vec2.At(2)", func() { v2.At(2) }},
		{"Vec2.At(-1)", func() { v2.At(-1) }},
		{"Vec3.At(3)", func() { v3.At(3) }},
		{"Vec3.Set(3)", func() { v3.Set(3, 0) }},
		{"Vec4.At(4)", func() { v4.At(4) }},
		{"Vec4.Set(-5)", func() { v4.Set(-5, 0) }},
		{"Vec9.At(9)", func() { v9.At(9) }},
		{"Vec9.Set(-1)", func() { v9.Set(-1, 0) }},
		{"VecNUnit(9)", func() { vector.VecNUnit[int, [9]int](9) }},
		{"Swizzle3", func() { v9.Swizzle3(0, 1, 12) }},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			requirePanicsWith(t, vector.ErrIndexOutOfRange, tc.f)
		})
	}

	// the receiver is untouched after a failed Set
	assert.Equal(t, vector.NewVec3(1, 2, 3), v3)
}

func TestDim(t *testing.T) {
	assert.Equal(t, 1, vector.Vec1[int]{}.Dim())
	assert.Equal(t, 2, vector.Vec2[int]{}.Dim())
	assert.Equal(t, 3, vector.Vec3[int]{}.Dim())
	assert.Equal(t, 4, vector.Vec4[int]{}.Dim())
	assert.Equal(t, 5, vector.Vec5[int]{}.Dim())
	assert.Equal(t, 16, vector.Vec16[int]{}.Dim())
	assert.Equal(t, vector.MaxDim, vector.Vec16[float32]{}.Dim())
}

func TestString(t *testing.T) {
	assert.Equal(t, "[1]", vector.NewVec1(1).String())
	assert.Equal(t, "[1, 2, 3]", vector.NewVec3(1, 2, 3).String())
	assert.Equal(t, "[0.5, -1, 2.25, 4]", vector.NewVec4(0.5, -1, 2.25, 4).String())
	assert.Equal(t, "[1, 2, 3, 4, 5]", vector.NewVec5[int](1, 2, 3, 4, 5).String())
}

func TestAll(t *testing.T) {
	var idx, vals []int
	for i, x := range vector.NewVec4(5, 6, 7, 8).All() {
		idx = append(idx, i)
		vals = append(vals, x)
	}
	assert.Equal(t, []int{0, 1, 2, 3}, idx)
	assert.Equal(t, []int{5, 6, 7, 8}, vals)

	// early exit stops the sequence
	var seen int
	for i := range vector.NewVec6[int](1, 2, 3, 4, 5, 6).All() {
		seen++
		if i == 2 {
			break
		}
	}
	assert.Equal(t, 3, seen)
}

func TestVecN(t *testing.T) {
	v := vector.NewVec5[float64](1, 2, 3, 4, 5)
	require.Equal(t, 5, v.Dim())
	assert.Equal(t, 3.0, v.At(2))

	v.Set(4, 50)
	assert.Equal(t, [5]float64{1, 2, 3, 4, 50}, v.Elements)

	assert.Equal(t, vector.NewVec5[float64](2, 2, 2, 2, 2), vector.VecNSplat[float64, [5]float64](2))
	assert.Equal(t, vector.NewVec5[float64](1, 1, 1, 1, 1), vector.VecNOne[float64, [5]float64]())
	assert.Equal(t, vector.NewVec5[float64](0, 0, 1, 0, 0), vector.VecNUnit[float64, [5]float64](2))

	assert.Equal(t, vector.NewVec2(5.0, 1.0), v.Swizzle2(3, 0).Add(vector.NewVec2(1.0, 0.0)))
	assert.Equal(t, vector.NewVec3(3.0, 3.0, 2.0), v.Swizzle3(2, 2, 1))
	assert.Equal(t, vector.NewVec4(50.0, 4.0, 3.0, 2.0), v.Swizzle4(4, 3, 2, 1))

	w := vector.NewVec16[int](1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15, 16)
	assert.Equal(t, 16, w.At(15))
	assert.Equal(t, 1496, w.Dot(w))
}

func TestVectorInterface(t *testing.T) {
	a := vector.NewVec3(1.0, 2.0, 3.0)
	b := vector.NewVec3(4.0, 6.0, 3.0)

	assert.Equal(t, 25.0, vector.Dot[float64, [3]float64](a, b))
	assert.Equal(t, 5.0, vector.Distance[float64, [3]float64](a, b))
	assert.Equal(t, []float64{1, 2, 3}, vector.Components[float64, [3]float64](a))

	n := vector.NewVec8[int](1, 1, 1, 1, 1, 1, 1, 1)
	assert.Equal(t, 8, vector.Dot[int, [8]int](n, n))
}

// setAll writes x into every component through the mutable capability.
func setAll[T scalar.Element, A vector.Array[T]](v vector.MutableVector[T, A], x T) {
	for i := 0; i < v.Dim(); i++ {
		v.Set(i, x)
	}
}

func TestMutableVector(t *testing.T) {
	v := vector.NewVec3(1, 2, 3)
	setAll[int, [3]int](&v, 7)
	assert.Equal(t, vector.Vec3Splat(7), v)

	w := vector.NewVec6[float32](1, 2, 3, 4, 5, 6)
	setAll[float32, [6]float32](&w, 0.5)
	assert.Equal(t, vector.VecNSplat[float32, [6]float32](0.5), w)
}

// TestArrOperators checks the raw-array right-hand side forms against the
// vector forms.
func TestArrOperators(t *testing.T) {
	v := vector.NewVec3(6.0, 8.0, 10.0)
	a := [3]float64{1, 2, 5}
	w := vector.Vec3FromArray(a)

	assert.Equal(t, v.Add(w), v.AddArr(a))
	assert.Equal(t, v.Sub(w), v.SubArr(a))
	assert.Equal(t, v.Mul(w), v.MulArr(a))
	assert.Equal(t, v.Div(w), v.DivArr(a))
	assert.Equal(t, v.Dot(w), v.DotArr(a))
	assert.Equal(t, vector.NewVec3(7.0, 10.0, 15.0), v.AddArr(a))

	assert.Equal(t, vector.NewVec2(4, 6), vector.NewVec2(1, 2).AddArr([2]int{3, 4}))
	assert.Equal(t, 11, vector.NewVec2(1, 2).DotArr([2]int{3, 4}))
	assert.Equal(t, vector.NewVec4[int8](2, 2, 2, 2), vector.Vec4One[int8]().MulArr([4]int8{2, 2, 2, 2}))
	assert.Equal(t, vector.NewVec1(3), vector.NewVec1(9).DivArr([1]int{3}))

	n := vector.NewVec5(2, 4, 6, 8, 10)
	b := [5]int{1, 2, 3, 4, 5}
	assert.Equal(t, vector.NewVec5(3, 6, 9, 12, 15), n.AddArr(b))
	assert.Equal(t, vector.NewVec5(1, 2, 3, 4, 5), n.SubArr(b))
	assert.Equal(t, vector.NewVec5(2, 8, 18, 32, 50), n.MulArr(b))
	assert.Equal(t, vector.VecNSplat[int, [5]int](2), n.DivArr(b))
	assert.Equal(t, 110, n.DotArr(b))
}

func TestF32(t *testing.T) {
	v2 := vector.NewVec2(1.5, -2.0)
	assert.Equal(t, v2, vector.Vec2FromF32[float64](v2.F32()))

	v3 := vector.NewVec3[float32](1, 2, 3)
	assert.Equal(t, v3, vector.Vec3FromF32[float32](v3.F32()))

	v4 := vector.NewVec4(1.9, 2.1, -3.7, 4.0)
	assert.Equal(t, vector.NewVec4(1, 2, -3, 4), vector.Vec4FromF32[int](v4.F32()))
}
