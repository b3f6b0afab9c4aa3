// SPDX-License-Identifier: MIT

// Package lvmath is a generic fixed-size vector and matrix toolkit for
// graphics, simulation and geometry code.
//
// What is inside?
//
//	Every type is parameterized by its element (any Go integer or float)
//	and fixed in size at compile time, so a Vec3[float32] is three
//	float32s on the stack and a dimension mismatch is a type error.
//
// Packages:
//
//	scalar/      element constraints and float helpers (Sqrt, Acos, ApproxEqual)
//	vector/      Vec1..Vec4 with X/Y/Z/W fields and swizzles, Vec5..Vec16 over arrays
//	matrix/      row-major Mat1x1..Mat4x4 with products, Rotate2 and gonum interop
//	quaternion/  X/Y/Z/W quaternion storage
//	geometry/    Sphere, Ray and AABB over Vec3
//	graphics/    float and 8-bit RGBA colors implementing image/color.Color
//	fps/         frame-rate controller for render and simulation loops
//	dtw/         Dynamic Time Warping over vector trajectories
//	cmd/vecgen   generator for the per-type boilerplate (go generate)
//
// Quick example:
//
//	v := vector.NewVec3(1.0, 2.0, 2.0)
//	fmt.Println(v.Length())            // 3
//	fmt.Println(v.Cross(vector.Vec3UnitX[float64]()))
//	m := matrix.Rotate2(math.Pi / 2)
//	fmt.Println(m.MulVec(v.XY()))
//
//	go get github.com/katalvlaran/lvmath
package lvmath
