// SPDX-License-Identifier: MIT

// Package autodiff computes exact gradients of scalar objectives built on
// field.Dual arithmetic.
//
// What:
//
//   - Func is a scalar objective over dual-number parameters.
//   - Gradient runs one forward-mode sweep per coordinate: sweep i seeds
//     the ε part of x[i] with 1, and the ε part of the result is ∂f/∂x[i].
//   - Derivative runs a single sweep along an arbitrary direction.
//
// The API mirrors gonum's diff/fd (Gradient(dst, f, x, …)), so an exact
// gradient and a finite-difference estimate can be swapped or compared
// directly.
//
// Complexity:
//
//	Gradient costs len(x) evaluations of f; Derivative and Value cost one.
package autodiff
