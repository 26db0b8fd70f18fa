// SPDX-License-Identifier: MIT
// Package field_test contains test helpers.
//
// Purpose:
//   • Provide small, deterministic fixtures for kernel tests.
//   • Keep all data finite so value validators do not interfere.

package field_test

import (
	"testing"

	"github.com/katalvlaran/epsmap/field"
	"github.com/stretchr/testify/require"
)

// MustField builds an r×c float64 field from row-major values or fails the test.
func MustField(t testing.TB, r, c int, vals []float64) *field.Field[float64] {
	t.Helper()
	f, err := field.FromSlice(r, c, vals)
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
