// SPDX-License-Identifier: MIT

package quaternion_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvmath/quaternion"
	"github.com/katalvlaran/lvmath/vector"
)

func TestNew(t *testing.T) {
	q := quaternion.New(1.0, 2.0, 3.0, 4.0)
	assert.Equal(t, quaternion.Quaternion[float64]{X: 1, Y: 2, Z: 3, W: 4}, q)
	assert.Equal(t, quaternion.New[float32](0, 0, 0, 1), quaternion.Identity[float32]())
	assert.Equal(t, "[1, 2, 3, 4]", q.String())
}

func TestIndex(t *testing.T) {
	q := quaternion.New(1.0, 2.0, 3.0, 4.0)
	for i, want := range []float64{1, 2, 3, 4} {
		assert.Equal(t, want, q.At(i))
	}
	for i := range 4 {
		q.Set(i, float64(10*i))
	}
	assert.Equal(t, quaternion.New(0.0, 10.0, 20.0, 30.0), q)
}

func TestIndex_OutOfRange(t *testing.T) {
	q := quaternion.Identity[float64]()
	for _, i := range []int{-1, 4, 100} {
		func() {
			defer func() {
				r := recover()
				require.NotNil(t, r, "i=%d", i)
				err, ok := r.(error)
				require.True(t, ok)
				require.ErrorIs(t, err, quaternion.ErrIndexOutOfRange)
			}()
			q.Set(i, 1)
		}()
		assert.Panics(t, func() { q.At(i) })
	}
	assert.Equal(t, quaternion.Identity[float64](), q)
}

func TestVec4(t *testing.T) {
	q := quaternion.New[float32](0.5, -0.5, 0.5, -0.5)
	v := q.Vec4()
	assert.Equal(t, vector.NewVec4[float32](0.5, -0.5, 0.5, -0.5), v)
	assert.Equal(t, q, quaternion.FromVec4(v))
	assert.Equal(t, float32(1), v.Length())
}

func TestJSON(t *testing.T) {
	data, err := json.Marshal(quaternion.Identity[float64]())
	require.NoError(t, err)
	assert.JSONEq(t, `{"x":0,"y":0,"z":0,"w":1}`, string(data))
}
