// SPDX-License-Identifier: MIT

package viz

import "errors"

var (
	// ErrNilField indicates a nil field or grid.
	ErrNilField = errors.New("viz: nil field or grid")

	// ErrShapeMismatch indicates a field whose shape differs from its grid.
	ErrShapeMismatch = errors.New("viz: field shape does not match grid")
)
