// SPDX-License-Identifier: MIT
// Package vector: sentinel errors.
//
// Index violations are programmer errors: accessors panic with an error value
// wrapping ErrIndexOutOfRange, so a recover() in tests can still match it via
// errors.Is. Decoding failures are returned, never panicked.

package vector

import (
	"errors"
	"fmt"
)

var (
	// ErrIndexOutOfRange is carried by the panic raised when a component index
	// is outside [0, D).
	ErrIndexOutOfRange = errors.New("vector: index out of range")

	// ErrDimensionMismatch is returned when decoded data does not have exactly
	// D components.
	ErrDimensionMismatch = errors.New("vector: dimension mismatch")
)

// panicIndex aborts an out-of-range access.
func panicIndex(i, dim int) {
	panic(fmt.Errorf("%w: %d not in [0,%d)", ErrIndexOutOfRange, i, dim))
}

// checkIndex panics unless 0 <= i < dim.
func checkIndex(i, dim int) {
	if uint(i) >= uint(dim) {
		panicIndex(i, dim)
	}
}
