// SPDX-License-Identifier: MIT

// Package matrix provides fixed-shape generic matrices, Mat1x1 through
// Mat4x4, over any scalar.Element.
//
// A matrix is an array of rows: Mat3x2[T] is [3][2]T, three rows of two
// columns, and m[i] is row i. The shape is part of the type, so adding a
// Mat2x3 to a Mat3x2 or multiplying incompatible shapes does not compile.
//
// Products:
//
//   - m.MulMatCxN(b) returns the R×N product with out[i][j] = m.Row(i)·b.Col(j).
//     Square types also have Mul.
//   - m.MulVec(v) treats v as a column vector and returns an R-vector.
//   - m.VecMul(v) treats v as a row vector and returns a C-vector.
//
// Values are copied, never shared. Every method returns a new matrix
// except Set, which writes through its pointer receiver.
//
// Interop:
//
//   - Dense / MatRxCFromDense convert to and from gonum's mat.Dense.
//   - Mat3x3.F32 / Mat4x4.F32 and Mat3FromF32 / Mat4FromF32 convert to and
//     from golang.org/x/image/math/f32.
//
// Out of scope: inverse, determinant, transpose and decompositions. Convert
// to mat.Dense when those are needed.
//
// Most methods are generated by cmd/vecgen; see generate.go.
package matrix
