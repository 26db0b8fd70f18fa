// SPDX-License-Identifier: MIT

package autodiff

import "errors"

var (
	// ErrLengthMismatch indicates dst or a direction vector whose length differs from x.
	ErrLengthMismatch = errors.New("autodiff: length mismatch")
	// ErrNilFunc indicates a nil objective.
	ErrNilFunc = errors.New("autodiff: nil objective")
)
