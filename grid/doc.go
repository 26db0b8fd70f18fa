// Package grid maps the cells of a field onto physical coordinates.
//
// What:
//
//   - Grid describes a uniform Nx×Ny discretization with step DL.
//   - Axes are centred on the origin: x runs linearly from −Nx/2·DL to
//     +Nx/2·DL over Nx samples, and likewise for y.
//   - Mesh returns the per-cell coordinate fields (xs, ys) with ij indexing:
//     row i of a field corresponds to X[i], column j to Y[j].
//
// Why:
//
//	Shape parameterizations evaluate signed distances on every cell; the
//	coordinates are computed once per grid and reused for every call.
//
// Complexity:
//
//   - New:  O(Nx+Ny) time and memory.
//   - Mesh: O(Nx×Ny) time and memory.
//
// Errors:
//
//   - ErrEmptyGrid: non-positive Nx or Ny.
//   - ErrBadStep:   DL not finite or not positive.
package grid
