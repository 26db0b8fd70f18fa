// SPDX-License-Identifier: MIT

package param

import (
	"github.com/katalvlaran/epsmap/field"
)

// Kind names a parameterization variant.
type Kind int

const (
	// KindUnknown is the base contract with no mapping.
	KindUnknown Kind = iota
	// KindDensity is free-form density topology.
	KindDensity
	// KindShape is the abstract smooth-shape family.
	KindShape
	// KindCircles is the circle shape family.
	KindCircles
	// KindLevelSet is the level-set variant.
	KindLevelSet
)

// String implements fmt.Stringer.
func (k Kind) String() string {
	switch k {
	case KindDensity:
		return "density"
	case KindShape:
		return "shape"
	case KindCircles:
		return "circles"
	case KindLevelSet:
		return "levelset"
	default:
		return "unknown"
	}
}

// Parameterization maps a flat parameter vector onto a permittivity field.
//
// Implementations are immutable and pure: Eps never mutates p and never
// retains it. Variants without a defined mapping report Implemented() ==
// false and return ErrNotImplemented from Eps.
type Parameterization[T any] interface {
	// Kind identifies the variant.
	Kind() Kind
	// Implemented reports whether Eps has a defined mapping.
	Implemented() bool
	// Eps returns the permittivity field for parameters p.
	Eps(p []T) (*field.Field[T], error)
}

// Unimplemented is the base contract. Embed it in a variant that declares
// the capability before it has a mapping; every Eps call fails with
// ErrNotImplemented instead of returning a default field.
type Unimplemented[T any] struct{}

var _ Parameterization[float64] = Unimplemented[float64]{}

// Kind returns KindUnknown.
func (Unimplemented[T]) Kind() Kind { return KindUnknown }

// Implemented returns false.
func (Unimplemented[T]) Implemented() bool { return false }

// Eps always returns ErrNotImplemented.
func (Unimplemented[T]) Eps([]T) (*field.Field[T], error) {
	return nil, paramErrorf("Eps", ErrNotImplemented)
}

// Implemented reports whether p is non-nil and has a defined mapping.
func Implemented[T any](p Parameterization[T]) bool {
	return p != nil && p.Implemented()
}
