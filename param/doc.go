// SPDX-License-Identifier: MIT

// Package param turns optimization variables into permittivity fields.
//
// What:
//
//   - Parameterization[T] is the one capability every variant shares: map a
//     flat parameter vector onto a permittivity field.
//   - DensityEps / Density: free-form topology. Each design cell holds a
//     density in [0,1] interpolated linearly between 1 and epsMax; cells
//     outside the design region keep the background permittivity.
//   - Sigmoid / Shape: the smooth boundary indicator shared by all shape
//     families. It is evaluated in a split, overflow-free form.
//   - Circles: anti-aliased circles composited back-to-front over a fixed
//     background.
//   - LevelSet: declared, not implemented; every call reports
//     ErrNotImplemented.
//
// Why:
//
//	Every mapping is elementwise arithmetic over field.Arith[T]. Running it
//	with T=float64 yields the permittivity map; running it with
//	T=dual.Number yields the same map plus the directional derivative of
//	every cell, which is what a gradient-based optimizer needs.
//
// Concurrency:
//
//	All operations are pure. Constructed values (Density, Circles) are
//	immutable, hold no per-call state and are safe for concurrent use.
//
// Errors:
//
//   - ErrNotImplemented: variant without a defined mapping.
//   - ErrShapeMismatch: fields of different shapes (no broadcasting).
//   - ErrLengthMismatch: parallel sequences or parameter vectors of the wrong length.
//   - ErrNonBinaryRegion: design region holding values other than 0 and 1.
//   - ErrBadStrength: negative or non-finite sigmoid strength.
//
// Every error is detected before any partial result is computed.
package param
