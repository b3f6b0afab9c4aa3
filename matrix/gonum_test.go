// SPDX-License-Identifier: MIT

package matrix_test

import (
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/lvmath/matrix"
	"github.com/katalvlaran/lvmath/vector"
)

func TestDense_RoundTrip(t *testing.T) {
	m := matrix.Mat3x2[float64]{{0, 1}, {2, 3}, {4, 5}}
	d := m.Dense()

	r, c := d.Dims()
	require.Equal(t, 3, r)
	require.Equal(t, 2, c)
	assert.Equal(t, 5.0, d.At(2, 1))
	assert.Equal(t, 2.0, d.At(1, 0))

	back, err := matrix.Mat3x2FromDense[float64](d)
	require.NoError(t, err)
	assert.Equal(t, m, back)

	// integers truncate on the way back
	d.Set(0, 0, 1.75)
	ints, err := matrix.Mat3x2FromDense[int](d)
	require.NoError(t, err)
	assert.Equal(t, 1, ints[0][0])
}

func TestFromDense_ShapeMismatch(t *testing.T) {
	d := mat.NewDense(2, 3, []float64{1, 2, 3, 4, 5, 6})

	_, err := matrix.Mat3x2FromDense[float64](d)
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)

	got, err := matrix.Mat2x3FromDense[float64](d)
	require.NoError(t, err)
	assert.Equal(t, matrix.Mat2x3[float64]{{1, 2, 3}, {4, 5, 6}}, got)

	// any mat.Matrix works, including views
	tr, err := matrix.Mat3x2FromDense[float64](d.T())
	require.NoError(t, err)
	assert.Equal(t, matrix.Mat3x2[float64]{{1, 4}, {2, 5}, {3, 6}}, tr)
}

// TestProduct_MatchesGonum cross-checks the generated products against
// gonum's dense multiplication.
func TestProduct_MatchesGonum(t *testing.T) {
	rng := rand.New(rand.NewPCG(3, 5))
	for range 50 {
		var a matrix.Mat3x4[float64]
		var b matrix.Mat4x2[float64]
		for i := range a {
			for j := range a[i] {
				a[i][j] = rng.Float64()*2 - 1
			}
		}
		for i := range b {
			for j := range b[i] {
				b[i][j] = rng.Float64()*2 - 1
			}
		}

		var want mat.Dense
		want.Mul(a.Dense(), b.Dense())

		got := a.MulMat4x2(b)
		require.True(t, mat.EqualApprox(&want, got.Dense(), 1e-12), "a=%v b=%v", a, b)

		v := [4]float64{rng.Float64(), rng.Float64(), rng.Float64(), rng.Float64()}
		var wantVec mat.VecDense
		wantVec.MulVec(a.Dense(), mat.NewVecDense(4, v[:]))
		gotVec := a.MulVec(vector.Vec4FromArray(v))
		for i := 0; i < 3; i++ {
			require.InDelta(t, wantVec.AtVec(i), gotVec.At(i), 1e-12)
		}
	}
}
