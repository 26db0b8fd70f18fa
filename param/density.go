// SPDX-License-Identifier: MIT

package param

import (
	"fmt"

	"github.com/katalvlaran/epsmap/field"
)

// DensityEps interpolates a material density into permittivity:
//
//	eps = (1 + (epsMax-1)·density)·[region==1] + background·[region==0]
//
// Stage 1 (Validate): non-nil inputs, identical shapes, binary region.
// Stage 2 (Prepare): numeric 0/1 masks for both halves of the region.
// Stage 3 (Execute): elementwise arithmetic only, no per-cell branching, so
// the result is differentiable in density and epsMax.
//
// Returns ErrShapeMismatch, ErrNilField or ErrNonBinaryRegion (the last one
// can be disabled with WithRegionCheck(false)).
// Complexity: O(rows*cols).
func DensityEps[T any](
	ar field.Arith[T],
	density *field.Field[T],
	background, region *field.Field[float64],
	epsMax T,
	opts ...Option,
) (*field.Field[T], error) {
	const op = "DensityEps"
	o := gatherOptions(opts...)

	if err := validateRegion(o, density, background, region); err != nil {
		return nil, paramErrorf(op, err)
	}

	inside, err := field.Indicator(field.Real{}, region, field.EqualTo(1))
	if err != nil {
		return nil, paramErrorf(op, err)
	}
	outside, err := field.Indicator(field.Real{}, region, field.EqualTo(0))
	if err != nil {
		return nil, paramErrorf(op, err)
	}

	// 1 + (epsMax-1)·density
	one := ar.Const(1)
	interp, err := field.MulScalar(ar, density, ar.Sub(epsMax, one))
	if err != nil {
		return nil, paramErrorf(op, err)
	}
	if interp, err = field.AddScalar(ar, interp, one); err != nil {
		return nil, paramErrorf(op, err)
	}
	if interp, err = field.MulMask(ar, interp, inside); err != nil {
		return nil, paramErrorf(op, err)
	}

	bg, err := field.Lift(ar, background)
	if err != nil {
		return nil, paramErrorf(op, err)
	}
	if bg, err = field.MulMask(ar, bg, outside); err != nil {
		return nil, paramErrorf(op, err)
	}

	eps, err := field.Add(ar, interp, bg)
	if err != nil {
		return nil, paramErrorf(op, err)
	}

	return eps, nil
}

// validateRegion runs the shared checks for region-based variants:
// NotNil → SameShape(density, region) → SameShape(background, region) → Binary.
func validateRegion[T any](o Options, density *field.Field[T], background, region *field.Field[float64]) error {
	if err := field.ValidateSameShape(density, region); err != nil {
		return err
	}
	if err := field.ValidateSameShape(background, region); err != nil {
		return err
	}
	if o.regionCheck {
		if err := field.ValidateBinary(region); err != nil {
			return fmt.Errorf("%w: %w", ErrNonBinaryRegion, err)
		}
	}

	return nil
}

// Density binds the fixed context of DensityEps (background, design region,
// epsMax) so that an optimizer only supplies the density vector.
// It is immutable once built.
type Density[T any] struct {
	ar         field.Arith[T]
	background *field.Field[float64]
	region     *field.Field[float64]
	epsMax     T
	opts       []Option
}

var _ Parameterization[float64] = (*Density[float64])(nil)

// NewDensity validates the context once and returns a Density.
// background and region are copied.
func NewDensity[T any](
	ar field.Arith[T],
	background, region *field.Field[float64],
	epsMax T,
	opts ...Option,
) (*Density[T], error) {
	if err := field.ValidateSameShape(background, region); err != nil {
		return nil, paramErrorf("NewDensity", err)
	}
	if o := gatherOptions(opts...); o.regionCheck {
		if err := field.ValidateBinary(region); err != nil {
			return nil, fmt.Errorf("NewDensity: %w: %w", ErrNonBinaryRegion, err)
		}
	}

	return &Density[T]{
		ar:         ar,
		background: background.Clone(),
		region:     region.Clone(),
		epsMax:     epsMax,
		opts:       append([]Option(nil), opts...),
	}, nil
}

// Kind returns KindDensity.
func (d *Density[T]) Kind() Kind { return KindDensity }

// Implemented returns true.
func (d *Density[T]) Implemented() bool { return true }

// NumParams returns the expected parameter vector length, rows*cols.
func (d *Density[T]) NumParams() int { return d.region.Len() }

// Shape returns the shape of the produced field.
func (d *Density[T]) Shape() field.Shape { return d.region.Shape() }

// Eps interprets p as the row-major density field and returns DensityEps.
// Returns ErrLengthMismatch if len(p) != NumParams().
func (d *Density[T]) Eps(p []T) (*field.Field[T], error) {
	if len(p) != d.NumParams() {
		return nil, paramErrorf("Density.Eps", ErrLengthMismatch)
	}
	s := d.region.Shape()
	density, err := field.FromSlice(s.Rows, s.Cols, p)
	if err != nil {
		return nil, paramErrorf("Density.Eps", err)
	}

	return DensityEps(d.ar, density, d.background, d.region, d.epsMax, d.opts...)
}
