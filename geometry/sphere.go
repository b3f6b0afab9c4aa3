// SPDX-License-Identifier: MIT

package geometry

import (
	"github.com/katalvlaran/lvmath/scalar"
	"github.com/katalvlaran/lvmath/vector"
)

// Sphere is the set of points within Radius of Center.
type Sphere[T scalar.Element] struct {
	Center vector.Vec3[T] `json:"center" yaml:"center"`
	Radius T              `json:"radius" yaml:"radius"`
}

// NewSphere returns the sphere around center with the given radius.
// A negative radius is stored as given; such a sphere contains nothing.
func NewSphere[T scalar.Element](center vector.Vec3[T], radius T) Sphere[T] {
	return Sphere[T]{Center: center, Radius: radius}
}

// Contains reports whether p lies inside or on the surface of s.
func (s Sphere[T]) Contains(p vector.Vec3[T]) bool {
	if s.Radius < 0 {
		return false
	}
	return s.Center.DistanceSquared(p) <= s.Radius*s.Radius
}
