// SPDX-License-Identifier: MIT
// Package: field
//
// Purpose:
//   - Elementwise kernels over Field[T] parameterized by Arith[T].
//   - Private ew* loops carry the tight iteration; the exported functions
//     are thin, validated wrappers.
//
// Determinism & Performance:
//   - Fixed flat loop order 0..n-1 over the row-major buffer.
//   - Exactly one output allocation per call; inputs are never mutated.
//   - No per-element branching on data: masks are numeric 0/1 fields that
//     multiply values, so derivatives pass through unchanged.

package field

import (
	"gonum.org/v1/gonum/floats"
)

// ewUnary applies fn to every element of a into a fresh field.
func ewUnary[T any](a *Field[T], fn func(T) T) *Field[T] {
	out := &Field[T]{r: a.r, c: a.c, data: make([]T, len(a.data))}
	for idx, v := range a.data {
		out.data[idx] = fn(v)
	}

	return out
}

// ewBinary combines a and b elementwise after a shape check.
func ewBinary[T, U any](op string, a *Field[T], b *Field[U], fn func(T, U) T) (*Field[T], error) {
	if err := ValidateSameShape(a, b); err != nil {
		return nil, fieldErrorf(op, err)
	}
	out := &Field[T]{r: a.r, c: a.c, data: make([]T, len(a.data))}
	for idx := range a.data {
		out.data[idx] = fn(a.data[idx], b.data[idx])
	}

	return out, nil
}

// Add returns a+b.
func Add[T any](ar Arith[T], a, b *Field[T]) (*Field[T], error) {
	return ewBinary("Add", a, b, ar.Add)
}

// Sub returns a-b.
func Sub[T any](ar Arith[T], a, b *Field[T]) (*Field[T], error) {
	return ewBinary("Sub", a, b, ar.Sub)
}

// Mul returns the Hadamard product a∘b.
func Mul[T any](ar Arith[T], a, b *Field[T]) (*Field[T], error) {
	return ewBinary("Mul", a, b, ar.Mul)
}

// Div returns a/b elementwise.
func Div[T any](ar Arith[T], a, b *Field[T]) (*Field[T], error) {
	return ewBinary("Div", a, b, ar.Div)
}

// MulMask returns a∘m where m is a constant (typically 0/1) float64 field.
// The mask contributes no derivative; a's derivative is scaled by m.
func MulMask[T any](ar Arith[T], a *Field[T], m *Field[float64]) (*Field[T], error) {
	return ewBinary("MulMask", a, m, func(v T, w float64) T {
		return ar.Scale(w, v)
	})
}

// AddScalar returns a+s.
func AddScalar[T any](ar Arith[T], a *Field[T], s T) (*Field[T], error) {
	if err := ValidateNotNil(a); err != nil {
		return nil, fieldErrorf("AddScalar", err)
	}

	return ewUnary(a, func(v T) T { return ar.Add(v, s) }), nil
}

// MulScalar returns s*a.
func MulScalar[T any](ar Arith[T], a *Field[T], s T) (*Field[T], error) {
	if err := ValidateNotNil(a); err != nil {
		return nil, fieldErrorf("MulScalar", err)
	}

	return ewUnary(a, func(v T) T { return ar.Mul(s, v) }), nil
}

// ScalarSub returns s-a.
func ScalarSub[T any](ar Arith[T], s T, a *Field[T]) (*Field[T], error) {
	if err := ValidateNotNil(a); err != nil {
		return nil, fieldErrorf("ScalarSub", err)
	}

	return ewUnary(a, func(v T) T { return ar.Sub(s, v) }), nil
}

// ScalarDiv returns s/a.
func ScalarDiv[T any](ar Arith[T], s T, a *Field[T]) (*Field[T], error) {
	if err := ValidateNotNil(a); err != nil {
		return nil, fieldErrorf("ScalarDiv", err)
	}

	return ewUnary(a, func(v T) T { return ar.Div(s, v) }), nil
}

// Scale returns f*a for a constant f.
func Scale[T any](ar Arith[T], f float64, a *Field[T]) (*Field[T], error) {
	if err := ValidateNotNil(a); err != nil {
		return nil, fieldErrorf("Scale", err)
	}

	return ewUnary(a, func(v T) T { return ar.Scale(f, v) }), nil
}

// Exp returns e**a elementwise.
func Exp[T any](ar Arith[T], a *Field[T]) (*Field[T], error) {
	if err := ValidateNotNil(a); err != nil {
		return nil, fieldErrorf("Exp", err)
	}

	return ewUnary(a, ar.Exp), nil
}

// Pow returns a**p elementwise.
func Pow[T any](ar Arith[T], a *Field[T], p float64) (*Field[T], error) {
	if err := ValidateNotNil(a); err != nil {
		return nil, fieldErrorf("Pow", err)
	}

	return ewUnary(a, func(v T) T { return ar.Pow(v, p) }), nil
}

// Map returns fn applied to every element of a.
func Map[T any](a *Field[T], fn func(T) T) (*Field[T], error) {
	if err := ValidateNotNil(a); err != nil {
		return nil, fieldErrorf("Map", err)
	}

	return ewUnary(a, fn), nil
}

// Lift converts a float64 field into T with zero derivative everywhere.
func Lift[T any](ar Arith[T], a *Field[float64]) (*Field[T], error) {
	if err := ValidateNotNil(a); err != nil {
		return nil, fieldErrorf("Lift", err)
	}
	out := &Field[T]{r: a.r, c: a.c, data: make([]T, len(a.data))}
	for idx, v := range a.data {
		out.data[idx] = ar.Const(v)
	}

	return out, nil
}

// Reals projects every element of a onto its real part.
func Reals[T any](ar Arith[T], a *Field[T]) (*Field[float64], error) {
	if err := ValidateNotNil(a); err != nil {
		return nil, fieldErrorf("Reals", err)
	}
	out := &Field[float64]{r: a.r, c: a.c, data: make([]float64, len(a.data))}
	for idx, v := range a.data {
		out.data[idx] = ar.Real(v)
	}

	return out, nil
}

// Sum reduces a to the sum of its elements.
// float64 fields take the gonum floats fast path.
func Sum[T any](ar Arith[T], a *Field[T]) (T, error) {
	acc := ar.Const(0)
	if err := ValidateNotNil(a); err != nil {
		return acc, fieldErrorf("Sum", err)
	}
	if d, ok := any(a.data).([]float64); ok {
		return ar.Const(floats.Sum(d)), nil
	}
	for _, v := range a.data {
		acc = ar.Add(acc, v)
	}

	return acc, nil
}

// Predicate classifies a real value for Indicator.
type Predicate func(v float64) bool

// NonNegative reports v >= 0.
func NonNegative(v float64) bool { return v >= 0 }

// Negative reports v < 0.
func Negative(v float64) bool { return v < 0 }

// EqualTo returns a predicate reporting v == want.
func EqualTo(want float64) Predicate {
	return func(v float64) bool { return v == want }
}

// Indicator returns the 0/1 field [pred(Real(a))]. It carries no derivative
// and is meant to be multiplied back into values with MulMask.
func Indicator[T any](ar Arith[T], a *Field[T], pred Predicate) (*Field[float64], error) {
	if err := ValidateNotNil(a); err != nil {
		return nil, fieldErrorf("Indicator", err)
	}
	out := &Field[float64]{r: a.r, c: a.c, data: make([]float64, len(a.data))}
	for idx, v := range a.data {
		if pred(ar.Real(v)) {
			out.data[idx] = 1
		}
	}

	return out, nil
}
