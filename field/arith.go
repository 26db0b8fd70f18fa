// SPDX-License-Identifier: MIT
// Package: field
//
// Purpose:
//   - Define Arith, the numeric surface every differentiable element type
//     must provide, and its two implementations.
//
// Design:
//   - Real evaluates on float64 and is the production value path.
//   - Dual evaluates on gonum dual numbers a+bε (ε²=0). The ε part of every
//     result is the directional derivative along the seeded input, so a
//     single pass yields one column of the Jacobian.
//   - Kernels only ever call Arith methods; no operation silently drops the
//     derivative part.

package field

import (
	"math"

	"gonum.org/v1/gonum/num/dual"
)

// Arith is the elementwise arithmetic over T required by the kernels.
type Arith[T any] interface {
	// Const lifts a constant into T (zero derivative).
	Const(v float64) T
	// Real projects a value onto its real (primal) part.
	Real(a T) float64
	// Add returns a+b.
	Add(a, b T) T
	// Sub returns a-b.
	Sub(a, b T) T
	// Mul returns a*b.
	Mul(a, b T) T
	// Div returns a/b.
	Div(a, b T) T
	// Scale returns f*a for a constant f.
	Scale(f float64, a T) T
	// Exp returns e**a.
	Exp(a T) T
	// Pow returns a**p for a constant exponent p.
	Pow(a T, p float64) T
}

// Real is the float64 arithmetic.
type Real struct{}

var _ Arith[float64] = Real{}

func (Real) Const(v float64) float64          { return v }
func (Real) Real(a float64) float64           { return a }
func (Real) Add(a, b float64) float64         { return a + b }
func (Real) Sub(a, b float64) float64         { return a - b }
func (Real) Mul(a, b float64) float64         { return a * b }
func (Real) Div(a, b float64) float64         { return a / b }
func (Real) Scale(f, a float64) float64       { return f * a }
func (Real) Exp(a float64) float64            { return math.Exp(a) }
func (Real) Pow(a float64, p float64) float64 { return math.Pow(a, p) }

// Dual is forward-mode arithmetic on gonum dual numbers.
type Dual struct{}

var _ Arith[dual.Number] = Dual{}

// Const returns v with a zero ε part.
func (Dual) Const(v float64) dual.Number { return dual.Number{Real: v} }

// Real returns the real part of a.
func (Dual) Real(a dual.Number) float64 { return a.Real }

// Add sums real and ε parts independently.
func (Dual) Add(a, b dual.Number) dual.Number {
	return dual.Number{Real: a.Real + b.Real, Emag: a.Emag + b.Emag}
}

// Sub subtracts real and ε parts independently.
func (Dual) Sub(a, b dual.Number) dual.Number {
	return dual.Number{Real: a.Real - b.Real, Emag: a.Emag - b.Emag}
}

func (Dual) Mul(a, b dual.Number) dual.Number           { return dual.Mul(a, b) }
func (Dual) Div(a, b dual.Number) dual.Number           { return dual.Mul(a, dual.Inv(b)) }
func (Dual) Scale(f float64, a dual.Number) dual.Number { return dual.Scale(f, a) }
func (Dual) Exp(a dual.Number) dual.Number              { return dual.Exp(a) }

// Pow returns a**p. The square, used by every distance computation, is
// expanded to a product so the derivative stays exact at a == 0.
func (Dual) Pow(a dual.Number, p float64) dual.Number {
	if p == 2 {
		return dual.Mul(a, a)
	}

	return dual.PowReal(a, p)
}
