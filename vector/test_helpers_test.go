// SPDX-License-Identifier: MIT
// Package vector_test: shared fixtures and assertion helpers.

package vector_test

import (
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/require"
)

// Tolerances for floating-point comparisons.
const (
	eps64 = 1e-9
	eps32 = 1e-4
)

// propertyRounds is the number of random samples per property.
const propertyRounds = 200

// newRand returns a deterministic generator so failures reproduce.
func newRand(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

// smallInt returns an integer in [-50, 50], small enough that sums and
// products of a few of them never overflow.
func smallInt(r *rand.Rand) int64 {
	return r.Int64N(101) - 50
}

// unitFloat returns a float in [-10, 10).
func unitFloat(r *rand.Rand) float64 {
	return r.Float64()*20 - 10
}

// requirePanicsWith runs f and requires that it panics with an error
// matching target.
func requirePanicsWith(t *testing.T, target error, f func()) {
	t.Helper()
	defer func() {
		r := recover()
		require.NotNil(t, r, "expected a panic")
		err, ok := r.(error)
		require.True(t, ok, "panic value %v is not an error", r)
		require.ErrorIs(t, err, target)
	}()
	f()
}
