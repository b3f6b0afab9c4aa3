// SPDX-License-Identifier: MIT

// Package geometry holds the primitive shapes built on vector.Vec3: Sphere,
// Ray and AABB.
//
// The types are plain data with a few accessors (containment, parametric
// points, box center and size). Intersection tests are out of scope.
package geometry
