// SPDX-License-Identifier: MIT
// Package matrix: gonum interop.
//
// Fixed-shape matrices convert to and from gonum's dynamically sized
// mat.Dense so callers can hand them to routines this package does not
// provide (decompositions, solvers). Elements travel as float64; integer
// element types are truncated on the way back.

package matrix

import (
	"fmt"

	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/lvmath/scalar"
	"github.com/katalvlaran/lvmath/vector"
)

// toDense copies rows into a new len(rows)×len(R) dense matrix.
func toDense[T scalar.Element, R vector.Array[T]](rows []R) *mat.Dense {
	var zero R
	cols := len(zero)
	data := make([]float64, 0, len(rows)*cols)
	for _, row := range rows {
		for j := 0; j < cols; j++ {
			data = append(data, float64(row[j]))
		}
	}
	return mat.NewDense(len(rows), cols, data)
}

// fromDense fills rows from d, which must have exactly len(rows)×len(R) elements.
func fromDense[T scalar.Element, R vector.Array[T]](d mat.Matrix, rows []R) error {
	var zero R
	cols := len(zero)
	r, c := d.Dims()
	if r != len(rows) || c != cols {
		return fmt.Errorf("%w: got %dx%d, want %dx%d", ErrDimensionMismatch, r, c, len(rows), cols)
	}
	for i := range rows {
		for j := 0; j < cols; j++ {
			rows[i][j] = T(d.At(i, j))
		}
	}
	return nil
}
