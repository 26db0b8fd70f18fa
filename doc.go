// Package epsmap turns optimization variables into permittivity maps for
// inverse design of photonic devices, with derivatives.
//
// 🚀 What is epsmap?
//
//	A small, pure-Go library that brings together:
//		• field/    — row-major 2-D fields generic over their element type,
//		              with float64 and dual-number arithmetic
//		• grid/     — uniform grids centred on the origin (axes, meshes)
//		• param/    — parameterizations: free-form density, anti-aliased
//		              circles, the shared sigmoid, a level-set stub
//		• autodiff/ — forward-mode gradients over gonum dual numbers
//		• viz/      — heat maps of fields via gonum/plot
//
// ✨ How it fits together
//
//   - Every parameterization is elementwise arithmetic over field.Arith[T].
//   - Run it with field.Real to get eps; run it with field.Dual and
//     autodiff.Gradient to get ∂objective/∂parameters.
//   - All operations are pure; constructed parameterizations are immutable
//     and safe for concurrent use.
//
// Quick example:
//
//	bg, _ := field.Filled(60, 60, 1.0)
//	c, _ := param.NewCircles(field.Real{}, bg, 0.1)
//	eps, _ := c.Eps([]float64{0, 0, 1, 4}) // one circle, r=1, eps=4
//
// Runnable programs live under examples/.
//
//	go get github.com/katalvlaran/epsmap
package epsmap
