// SPDX-License-Identifier: MIT
// Package param_test contains shared fixtures.

package param_test

import (
	"testing"

	"github.com/katalvlaran/epsmap/field"
	"github.com/stretchr/testify/require"
)

// Fixture grid used by the shape tests: N×N cells of size DL centred on the
// origin, i.e. the physical domain spans [-N/2·DL, N/2·DL] on both axes.
const (
	N  = 60
	DL = 0.1
)

// MustField builds an r×c float64 field from row-major values.
func MustField(t testing.TB, r, c int, vals []float64) *field.Field[float64] {
	t.Helper()
	f, err := field.FromSlice(r, c, vals)
	require.NoError(t, err)

	return f
}

// MustFilled builds an r×c float64 field holding v everywhere.
func MustFilled(t testing.TB, r, c int, v float64) *field.Field[float64] {
	t.Helper()
	f, err := field.Filled(r, c, v)
	require.NoError(t, err)

	return f
}

// MustAt reads (i,j) or fails the test.
func MustAt[T any](t testing.TB, f *field.Field[T], i, j int) T {
	t.Helper()
	v, err := f.At(i, j)
	require.NoError(t, err)

	return v
}

// halfRegion returns an r×c design region whose lower half (rows ≥ r/2) is 1.
func halfRegion(t testing.TB, r, c int) *field.Field[float64] {
	t.Helper()
	vals := make([]float64, r*c)
	for i := r / 2; i < r; i++ {
		for j := 0; j < c; j++ {
			vals[i*c+j] = 1
		}
	}

	return MustField(t, r, c, vals)
}
