// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
//
// Every message is prefixed with "matrix: ..." for easy grepping. Index
// violations are programmer errors and panic with an error wrapping
// ErrIndexOutOfRange; conversions from dynamic sources (gonum) return
// ErrDimensionMismatch. Tests match both with errors.Is.

package matrix

import (
	"errors"
	"fmt"
)

var (
	// ErrIndexOutOfRange is carried by the panic raised when a row or column
	// index is outside the matrix shape.
	ErrIndexOutOfRange = errors.New("matrix: index out of range")

	// ErrDimensionMismatch indicates that a dynamically shaped source does
	// not have the R×C shape of the destination type.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")
)

// checkIndex panics unless 0 <= r < rows and 0 <= c < cols.
func checkIndex(r, c, rows, cols int) {
	if uint(r) >= uint(rows) || uint(c) >= uint(cols) {
		panic(fmt.Errorf("%w: (%d,%d) not in %dx%d", ErrIndexOutOfRange, r, c, rows, cols))
	}
}
