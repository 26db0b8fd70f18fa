// SPDX-License-Identifier: MIT

// Package field provides the two-dimensional arrays that carry permittivity
// maps, design regions and grid coordinates, together with the elementwise
// arithmetic used to build them.
//
// What:
//
//   - Field[T] is a row-major rows×cols array of any element type.
//   - Arith[T] is the arithmetic a differentiable element type must supply
//     (+, −, ×, ÷, exp, power). Real works on float64; Dual works on
//     gonum dual numbers and carries one directional derivative per cell.
//   - Elementwise kernels (Add, Mul, Exp, Pow, MulMask, …) validate shapes
//     first and never broadcast implicitly.
//
// Why:
//
//	Every kernel is written once against Arith[T], so the same code path
//	produces plain permittivity values (T=float64) or values with their
//	derivatives attached (T=dual.Number). There is no plain-array fallback
//	on the hot path, which is what keeps gradients flowing.
//
// Complexity:
//
//	Construction, Clone and every elementwise kernel run in O(rows*cols)
//	time and allocate exactly one output buffer. At/Set are O(1).
//
// Errors:
//
//   - ErrInvalidDimensions: non-positive rows or cols.
//   - ErrOutOfRange: At/Set index outside the field.
//   - ErrShapeMismatch: operands of different shapes.
//   - ErrNilField: nil operand.
//   - ErrNaNInf, ErrNonBinary: value policy violations found by validators.
package field
