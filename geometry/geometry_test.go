// SPDX-License-Identifier: MIT

package geometry_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvmath/geometry"
	"github.com/katalvlaran/lvmath/vector"
)

func TestSphere(t *testing.T) {
	s := geometry.NewSphere(vector.NewVec3(1.0, 2.0, 3.5), 2.5)
	assert.Equal(t, vector.NewVec3(1.0, 2.0, 3.5), s.Center)
	assert.Equal(t, 2.5, s.Radius)

	assert.True(t, s.Contains(s.Center))
	assert.True(t, s.Contains(vector.NewVec3(1.0, 2.0, 6.0)), "surface point")
	assert.False(t, s.Contains(vector.NewVec3(1.0, 2.0, 6.1)))

	s.Center = vector.NewVec3(0.0, 0.0, 0.0)
	s.Radius = 1
	assert.True(t, s.Contains(vector.NewVec3(0.5, 0.5, 0.5)))
	assert.False(t, s.Contains(vector.NewVec3(0.6, 0.6, 0.6)))

	assert.False(t, geometry.NewSphere(vector.Vec3Zero[int](), -1).Contains(vector.Vec3Zero[int]()))
}

func TestRay(t *testing.T) {
	r := geometry.NewRay(vector.NewVec3(1.0, 0.0, 0.0), vector.NewVec3(0.0, 2.0, 0.0))
	assert.Equal(t, r.Origin, r.At(0))
	assert.Equal(t, vector.NewVec3(1.0, 3.0, 0.0), r.At(1.5))

	n := r.Normalized()
	assert.Equal(t, vector.NewVec3(0.0, 1.0, 0.0), n.Direction)
	assert.Equal(t, r.Origin, n.Origin)
}

func TestAABB(t *testing.T) {
	b := geometry.NewAABB(vector.NewVec3(4, -2, 6), vector.NewVec3(0, 2, 2))
	assert.Equal(t, vector.NewVec3(0, -2, 2), b.Min)
	assert.Equal(t, vector.NewVec3(4, 2, 6), b.Max)
	assert.Equal(t, vector.NewVec3(2, 0, 4), b.Center())
	assert.Equal(t, vector.NewVec3(4, 4, 4), b.Size())

	assert.True(t, b.Contains(vector.NewVec3(0, -2, 2)), "corner")
	assert.True(t, b.Contains(vector.NewVec3(1, 1, 5)))
	assert.False(t, b.Contains(vector.NewVec3(5, 0, 4)))

	grown := b.Extend(vector.NewVec3(5, 0, 10))
	assert.Equal(t, vector.NewVec3(0, -2, 2), grown.Min)
	assert.Equal(t, vector.NewVec3(5, 2, 10), grown.Max)
	assert.Equal(t, b, b.Extend(b.Center()))
}

func TestJSON(t *testing.T) {
	s := geometry.NewSphere(vector.NewVec3(1.0, 2.0, 3.0), 4.0)
	data, err := json.Marshal(s)
	require.NoError(t, err)
	assert.JSONEq(t, `{"center":{"x":1,"y":2,"z":3},"radius":4}`, string(data))

	var back geometry.Sphere[float64]
	require.NoError(t, json.Unmarshal(data, &back))
	assert.Equal(t, s, back)
}
