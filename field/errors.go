// SPDX-License-Identifier: MIT
// Package field: sentinel error set.
// All kernels return these sentinels (possibly wrapped with the operation
// name); tests match them with errors.Is. Kernels never panic on user input.

package field

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidDimensions indicates that requested dimensions are non-positive
	// or that a flat buffer does not hold rows*cols elements.
	ErrInvalidDimensions = errors.New("field: dimensions must be > 0")

	// ErrOutOfRange indicates that a row or column index is outside valid bounds.
	ErrOutOfRange = errors.New("field: index out of range")

	// ErrShapeMismatch indicates operands with different shapes. Kernels never
	// broadcast; callers must supply identically shaped fields.
	ErrShapeMismatch = errors.New("field: shape mismatch")

	// ErrNilField indicates that a nil *Field was passed where a value is required.
	ErrNilField = errors.New("field: nil field")

	// ErrNaNInf signals a NaN or ±Inf value where finite values are required.
	ErrNaNInf = errors.New("field: NaN or Inf encountered")

	// ErrNonBinary signals a value other than exactly 0 or 1 in an indicator field.
	ErrNonBinary = errors.New("field: non-binary value")
)

// fieldErrorf tags err with the operation name, keeping it matchable via errors.Is.
func fieldErrorf(op string, err error) error {
	return fmt.Errorf("field.%s: %w", op, err)
}
