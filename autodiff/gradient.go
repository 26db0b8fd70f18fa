// SPDX-License-Identifier: MIT

package autodiff

import (
	"fmt"

	"gonum.org/v1/gonum/num/dual"
)

// Func is a scalar objective evaluated on dual-number parameters.
type Func func(x []dual.Number) (dual.Number, error)

// Seed returns x lifted into dual numbers with the ε part of coordinate i
// set to 1 and all others 0. An out-of-range i seeds nothing.
func Seed(x []float64, i int) []dual.Number {
	out := make([]dual.Number, len(x))
	for k, v := range x {
		out[k] = dual.Number{Real: v}
	}
	if i >= 0 && i < len(out) {
		out[i].Emag = 1
	}

	return out
}

// Value evaluates f at x without seeding any derivative.
func Value(f Func, x []float64) (float64, error) {
	if f == nil {
		return 0, ErrNilFunc
	}
	v, err := f(Seed(x, -1))
	if err != nil {
		return 0, fmt.Errorf("autodiff.Value: %w", err)
	}

	return v.Real, nil
}

// Derivative returns the directional derivative of f at x along dir.
func Derivative(f Func, x, dir []float64) (float64, error) {
	if f == nil {
		return 0, ErrNilFunc
	}
	if len(dir) != len(x) {
		return 0, fmt.Errorf("autodiff.Derivative: len(dir)=%d len(x)=%d: %w", len(dir), len(x), ErrLengthMismatch)
	}
	in := make([]dual.Number, len(x))
	for k := range x {
		in[k] = dual.Number{Real: x[k], Emag: dir[k]}
	}
	v, err := f(in)
	if err != nil {
		return 0, fmt.Errorf("autodiff.Derivative: %w", err)
	}

	return v.Emag, nil
}

// Gradient stores ∇f(x) in dst and returns it. If dst is nil a new slice is
// allocated; otherwise len(dst) must equal len(x).
//
// Cost: f is evaluated len(x) times, so a gradient costs len(x) forward
// passes. That suits a handful of shape parameters; for a density vector
// with one entry per cell it is O(cells²) and impractical on large grids.
// Use Derivative when a single direction is enough.
//
// Stage 1 (Validate): objective and destination length.
// Stage 2 (Execute): one seeded evaluation per coordinate.
func Gradient(dst []float64, f Func, x []float64) ([]float64, error) {
	if f == nil {
		return nil, ErrNilFunc
	}
	if dst == nil {
		dst = make([]float64, len(x))
	}
	if len(dst) != len(x) {
		return nil, fmt.Errorf("autodiff.Gradient: len(dst)=%d len(x)=%d: %w", len(dst), len(x), ErrLengthMismatch)
	}

	for i := range x {
		v, err := f(Seed(x, i))
		if err != nil {
			return nil, fmt.Errorf("autodiff.Gradient: sweep %d: %w", i, err)
		}
		dst[i] = v.Emag
	}

	return dst, nil
}
