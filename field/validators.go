// SPDX-License-Identifier: MIT
// Package: field
//
// Purpose:
//  - Single source of truth for nil/shape/value checks shared by kernels and
//    by the param package.
//  - Return plain sentinels wrapped with the validator tag so callers can
//    wrap again uniformly and still match with errors.Is.
//
// Note:
//  - Composite validators follow a fixed sequence: NotNil → Shape → Values.

package field

import (
	"fmt"
	"math"
)

// validatorErrorf wraps an underlying error with the given validator tag.
func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// ValidateNotNil ensures f is non-nil.
// Complexity: O(1).
func ValidateNotNil[T any](f *Field[T]) error {
	if f == nil {
		return validatorErrorf("ValidateNotNil", ErrNilField)
	}

	return nil
}

// ValidateSameShape ensures a and b are non-nil and have equal dimensions.
// The element types may differ (e.g. a dual-valued field against a float64 mask).
// Complexity: O(1).
func ValidateSameShape[T, U any](a *Field[T], b *Field[U]) error {
	if a == nil || b == nil {
		return validatorErrorf("ValidateSameShape", ErrNilField)
	}
	if a.r != b.r || a.c != b.c {
		return validatorErrorf(
			fmt.Sprintf("ValidateSameShape: %s vs %s", a.Shape(), b.Shape()),
			ErrShapeMismatch,
		)
	}

	return nil
}

// ValidateBinary ensures every element of f is exactly 0 or 1.
// Complexity: O(rows*cols), no allocations.
func ValidateBinary(f *Field[float64]) error {
	if err := ValidateNotNil(f); err != nil {
		return validatorErrorf("ValidateBinary", err)
	}
	for idx, v := range f.data {
		if v != 0 && v != 1 {
			return validatorErrorf(
				fmt.Sprintf("ValidateBinary: (%d,%d)=%g", idx/f.c, idx%f.c, v),
				ErrNonBinary,
			)
		}
	}

	return nil
}

// ValidateFinite ensures f contains no NaN or ±Inf.
// Complexity: O(rows*cols), no allocations.
func ValidateFinite(f *Field[float64]) error {
	if err := ValidateNotNil(f); err != nil {
		return validatorErrorf("ValidateFinite", err)
	}
	for idx, v := range f.data {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return validatorErrorf(
				fmt.Sprintf("ValidateFinite: (%d,%d)", idx/f.c, idx%f.c),
				ErrNaNInf,
			)
		}
	}

	return nil
}
