// SPDX-License-Identifier: MIT

package param

import (
	"github.com/katalvlaran/epsmap/field"
)

// LevelSet declares the level-set parameterization. It has no mapping yet:
// Implemented reports false and Eps always returns ErrNotImplemented.
type LevelSet[T any] struct {
	Unimplemented[T]
}

var _ Parameterization[float64] = LevelSet[float64]{}

// Kind returns KindLevelSet.
func (LevelSet[T]) Kind() Kind { return KindLevelSet }

// LevelSetEps shares the DensityEps signature and always returns
// ErrNotImplemented. Arguments are not inspected.
func LevelSetEps[T any](
	_ field.Arith[T],
	_ *field.Field[T],
	_, _ *field.Field[float64],
	_ T,
	_ ...Option,
) (*field.Field[T], error) {
	return nil, paramErrorf("LevelSetEps", ErrNotImplemented)
}
