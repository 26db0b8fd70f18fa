// SPDX-License-Identifier: MIT
// Package param: sentinel error set.
// Every message is prefixed with "param: ...". Operations wrap sentinels
// with their name (fmt.Errorf("DensityEps: %w", ErrX)); callers match with
// errors.Is.

package param

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/epsmap/field"
	"github.com/katalvlaran/epsmap/grid"
)

var (
	// ErrNotImplemented marks a parameterization variant with no defined
	// mapping (the base contract, the abstract shape and the level set).
	// Callers should check Implemented() before invoking rather than use
	// this error for control flow.
	ErrNotImplemented = errors.New("param: parameterization not implemented")

	// ErrLengthMismatch indicates parallel sequences of unequal length, or a
	// flat parameter vector whose length does not fit the parameterization.
	ErrLengthMismatch = errors.New("param: length mismatch")

	// ErrNonBinaryRegion indicates a design region with values other than 0 and 1.
	ErrNonBinaryRegion = errors.New("param: design region must be binary (0/1)")

	// ErrBadStrength indicates a negative or non-finite sigmoid strength.
	ErrBadStrength = errors.New("param: sigmoid strength must be finite and >= 0")
)

// Re-exported sentinels from the collaborating packages, so callers of param
// can match every failure without importing field or grid.
var (
	// ErrShapeMismatch is field.ErrShapeMismatch.
	ErrShapeMismatch = field.ErrShapeMismatch
	// ErrNilField is field.ErrNilField.
	ErrNilField = field.ErrNilField
	// ErrBadStep is grid.ErrBadStep.
	ErrBadStep = grid.ErrBadStep
)

// paramErrorf tags err with the operation name.
func paramErrorf(op string, err error) error {
	return fmt.Errorf("%s: %w", op, err)
}
