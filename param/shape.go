// SPDX-License-Identifier: MIT

package param

import (
	"math"

	"github.com/katalvlaran/epsmap/field"
)

// Sigmoid is the smooth boundary indicator shared by shape parameterizations.
//
// Given a signed distance-like field x (positive inside, negative outside,
// zero on the boundary) it returns values in (0,1) that tend to a hard step
// as strength grows and to a constant 1/2 as strength tends to 0.
//
// A direct logistic overflows for large |x·strength|, so the input is split
// by sign and each half uses the form whose exponent is never positive:
//
//	x₊ = x·[x≥0]                     σ₊ = 1 / (1 + exp(−x₊·s))
//	x₋ = x·[x<0]                     σ₋ = exp(x₋·s) / (1 + exp(x₋·s))
//	f(x) = σ₊ + σ₋ − 1/2
//
// Both halves are evaluated on the whole field; the inactive half sees 0 and
// contributes exactly 1/2, which the final −1/2 cancels. The masks are
// numeric, so derivatives flow through every cell.
//
// Returns ErrBadStrength for a negative or non-finite strength.
// Complexity: O(rows*cols).
func Sigmoid[T any](ar field.Arith[T], x *field.Field[T], strength float64) (*field.Field[T], error) {
	const op = "Sigmoid"
	if math.IsNaN(strength) || math.IsInf(strength, 0) || strength < 0 {
		return nil, paramErrorf(op, ErrBadStrength)
	}

	pos, err := field.Indicator(ar, x, field.NonNegative)
	if err != nil {
		return nil, paramErrorf(op, err)
	}
	neg, err := field.Indicator(ar, x, field.Negative)
	if err != nil {
		return nil, paramErrorf(op, err)
	}
	xPos, err := field.MulMask(ar, x, pos)
	if err != nil {
		return nil, paramErrorf(op, err)
	}
	xNeg, err := field.MulMask(ar, x, neg)
	if err != nil {
		return nil, paramErrorf(op, err)
	}

	one := ar.Const(1)

	// σ₊ = 1 / (1 + exp(−x₊·s))
	ePos, err := field.Scale(ar, -strength, xPos)
	if err != nil {
		return nil, paramErrorf(op, err)
	}
	if ePos, err = field.Exp(ar, ePos); err != nil {
		return nil, paramErrorf(op, err)
	}
	if ePos, err = field.AddScalar(ar, ePos, one); err != nil {
		return nil, paramErrorf(op, err)
	}
	sigPos, err := field.ScalarDiv(ar, one, ePos)
	if err != nil {
		return nil, paramErrorf(op, err)
	}

	// σ₋ = exp(x₋·s) / (1 + exp(x₋·s))
	eNeg, err := field.Scale(ar, strength, xNeg)
	if err != nil {
		return nil, paramErrorf(op, err)
	}
	if eNeg, err = field.Exp(ar, eNeg); err != nil {
		return nil, paramErrorf(op, err)
	}
	den, err := field.AddScalar(ar, eNeg, one)
	if err != nil {
		return nil, paramErrorf(op, err)
	}
	sigNeg, err := field.Div(ar, eNeg, den)
	if err != nil {
		return nil, paramErrorf(op, err)
	}

	out, err := field.Add(ar, sigPos, sigNeg)
	if err != nil {
		return nil, paramErrorf(op, err)
	}

	return field.AddScalar(ar, out, ar.Const(-0.5))
}

// Shape is the abstract smooth-shape family. It carries the arithmetic and
// the boundary sharpness; concrete families (Circles) embed it and supply
// Eps. On its own, Eps reports ErrNotImplemented.
type Shape[T any] struct {
	Unimplemented[T]
	ar       field.Arith[T]
	strength float64
}

var _ Parameterization[float64] = Shape[float64]{}

// NewShape returns a Shape configured by opts (see WithStrength).
func NewShape[T any](ar field.Arith[T], opts ...Option) Shape[T] {
	o := gatherOptions(opts...)

	return Shape[T]{ar: ar, strength: o.strength}
}

// Kind returns KindShape.
func (s Shape[T]) Kind() Kind { return KindShape }

// Strength returns the boundary sharpness.
func (s Shape[T]) Strength() float64 { return s.strength }

// Sigmoid applies the boundary indicator with the configured strength.
func (s Shape[T]) Sigmoid(x *field.Field[T]) (*field.Field[T], error) {
	return Sigmoid(s.ar, x, s.strength)
}
