// SPDX-License-Identifier: MIT

package geometry

import (
	"github.com/katalvlaran/lvmath/scalar"
	"github.com/katalvlaran/lvmath/vector"
)

// AABB is an axis-aligned box spanning Min to Max. Boxes built with NewAABB
// satisfy Min <= Max on every axis.
type AABB[T scalar.Element] struct {
	Min vector.Vec3[T] `json:"min" yaml:"min"`
	Max vector.Vec3[T] `json:"max" yaml:"max"`
}

// NewAABB returns the smallest box containing the corners a and b, in any order.
func NewAABB[T scalar.Element](a, b vector.Vec3[T]) AABB[T] {
	return AABB[T]{
		Min: vector.NewVec3(min(a.X, b.X), min(a.Y, b.Y), min(a.Z, b.Z)),
		Max: vector.NewVec3(max(a.X, b.X), max(a.Y, b.Y), max(a.Z, b.Z)),
	}
}

// Center returns the midpoint of the box.
func (b AABB[T]) Center() vector.Vec3[T] {
	return b.Min.Add(b.Max).DivScalar(2)
}

// Size returns the extent of the box along each axis.
func (b AABB[T]) Size() vector.Vec3[T] {
	return b.Max.Sub(b.Min)
}

// Contains reports whether p lies inside or on the boundary of b.
func (b AABB[T]) Contains(p vector.Vec3[T]) bool {
	return b.Min.X <= p.X && p.X <= b.Max.X &&
		b.Min.Y <= p.Y && p.Y <= b.Max.Y &&
		b.Min.Z <= p.Z && p.Z <= b.Max.Z
}

// Extend returns the smallest box containing b and p.
func (b AABB[T]) Extend(p vector.Vec3[T]) AABB[T] {
	return AABB[T]{
		Min: vector.NewVec3(min(b.Min.X, p.X), min(b.Min.Y, p.Y), min(b.Min.Z, p.Z)),
		Max: vector.NewVec3(max(b.Max.X, p.X), max(b.Max.Y, p.Y), max(b.Max.Z, p.Z)),
	}
}
