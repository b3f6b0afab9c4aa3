// SPDX-License-Identifier: MIT

// Package quaternion stores quaternions as (x, y, z, w), with w the scalar
// part. It provides construction, indexing and conversion to vector.Vec4;
// rotation algebra is not implemented.
package quaternion

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/lvmath/scalar"
	"github.com/katalvlaran/lvmath/vector"
)

// ErrIndexOutOfRange is carried by the panic raised when a component index
// is outside [0, 4).
var ErrIndexOutOfRange = errors.New("quaternion: index out of range")

// Quaternion is x·i + y·j + z·k + w.
type Quaternion[T scalar.Float] struct {
	X T `json:"x" yaml:"x"`
	Y T `json:"y" yaml:"y"`
	Z T `json:"z" yaml:"z"`
	W T `json:"w" yaml:"w"`
}

// New returns the quaternion (x, y, z, w).
func New[T scalar.Float](x, y, z, w T) Quaternion[T] {
	return Quaternion[T]{X: x, Y: y, Z: z, W: w}
}

// Identity returns (0, 0, 0, 1).
func Identity[T scalar.Float]() Quaternion[T] {
	return Quaternion[T]{W: 1}
}

// FromVec4 reads x, y, z, w from v.
func FromVec4[T scalar.Float](v vector.Vec4[T]) Quaternion[T] {
	return Quaternion[T]{X: v.X, Y: v.Y, Z: v.Z, W: v.W}
}

// Vec4 returns q as the 4-vector (x, y, z, w).
func (q Quaternion[T]) Vec4() vector.Vec4[T] {
	return vector.NewVec4(q.X, q.Y, q.Z, q.W)
}

// At returns component i (0=x, 1=y, 2=z, 3=w). It panics if i is out of range.
func (q Quaternion[T]) At(i int) T {
	switch i {
	case 0:
		return q.X
	case 1:
		return q.Y
	case 2:
		return q.Z
	case 3:
		return q.W
	}
	panic(fmt.Errorf("%w: %d not in [0,4)", ErrIndexOutOfRange, i))
}

// Set replaces component i. It panics if i is out of range.
func (q *Quaternion[T]) Set(i int, x T) {
	switch i {
	case 0:
		q.X = x
	case 1:
		q.Y = x
	case 2:
		q.Z = x
	case 3:
		q.W = x
	default:
		panic(fmt.Errorf("%w: %d not in [0,4)", ErrIndexOutOfRange, i))
	}
}

// String formats q as "[x, y, z, w]".
func (q Quaternion[T]) String() string { return q.Vec4().String() }
