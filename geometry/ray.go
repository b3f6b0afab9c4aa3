// SPDX-License-Identifier: MIT

package geometry

import (
	"github.com/katalvlaran/lvmath/scalar"
	"github.com/katalvlaran/lvmath/vector"
)

// Ray is the half-line Origin + t·Direction for t >= 0. Direction need not
// be normalized.
type Ray[T scalar.Element] struct {
	Origin    vector.Vec3[T] `json:"origin" yaml:"origin"`
	Direction vector.Vec3[T] `json:"direction" yaml:"direction"`
}

// NewRay returns the ray from origin along direction.
func NewRay[T scalar.Element](origin, direction vector.Vec3[T]) Ray[T] {
	return Ray[T]{Origin: origin, Direction: direction}
}

// At returns the point Origin + t·Direction.
func (r Ray[T]) At(t T) vector.Vec3[T] {
	return r.Origin.Add(r.Direction.Scale(t))
}

// Normalized returns r with a unit-length direction.
func (r Ray[T]) Normalized() Ray[T] {
	return Ray[T]{Origin: r.Origin, Direction: r.Direction.Normalized()}
}
