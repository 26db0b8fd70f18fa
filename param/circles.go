// SPDX-License-Identifier: MIT

package param

import (
	"fmt"

	"github.com/katalvlaran/epsmap/field"
	"github.com/katalvlaran/epsmap/grid"
)

// circleStride is the number of parameters per circle in a flat vector.
const circleStride = 4

// Circle is one shape primitive: centre (X, Y), radius R and the
// permittivity Value deposited inside it.
type Circle[T any] struct {
	X, Y, R, Value T
}

// PackCircles flattens cs into [x0,y0,r0,v0, x1,y1,r1,v1, …].
func PackCircles[T any](cs []Circle[T]) []T {
	p := make([]T, 0, len(cs)*circleStride)
	for _, c := range cs {
		p = append(p, c.X, c.Y, c.R, c.Value)
	}

	return p
}

// UnpackCircles is the inverse of PackCircles.
// Returns ErrLengthMismatch if len(p) is not a multiple of four.
func UnpackCircles[T any](p []T) ([]Circle[T], error) {
	if len(p)%circleStride != 0 {
		return nil, fmt.Errorf("UnpackCircles: len=%d: %w", len(p), ErrLengthMismatch)
	}
	cs := make([]Circle[T], 0, len(p)/circleStride)
	for i := 0; i < len(p); i += circleStride {
		cs = append(cs, Circle[T]{X: p[i], Y: p[i+1], R: p[i+2], Value: p[i+3]})
	}

	return cs, nil
}

// Circles renders anti-aliased circles over a fixed background.
//
// The background, the step dL and the derived coordinate fields are fixed at
// construction and never modified; every call starts from a fresh copy of the
// background, so a *Circles may be shared between goroutines.
type Circles[T any] struct {
	Shape[T]
	grid       *grid.Grid
	background *field.Field[float64]
	xs, ys     *field.Field[float64] // coordinate mesh, float64
	bgT        *field.Field[T]       // background lifted into T
	xsT, ysT   *field.Field[T]       // coordinate mesh lifted into T
}

var _ Parameterization[float64] = (*Circles[float64])(nil)

// NewCircles builds the circle family for a background field on a grid of
// step dL. Coordinates come from grid.New/Mesh and are computed once.
// Returns ErrNilField for a nil background and ErrBadStep for an invalid dL.
func NewCircles[T any](ar field.Arith[T], background *field.Field[float64], dL float64, opts ...Option) (*Circles[T], error) {
	const op = "NewCircles"
	if err := field.ValidateNotNil(background); err != nil {
		return nil, paramErrorf(op, err)
	}
	g, err := grid.New(background.Shape(), dL)
	if err != nil {
		return nil, paramErrorf(op, err)
	}
	xs, ys, err := g.Mesh()
	if err != nil {
		return nil, paramErrorf(op, err)
	}

	c := &Circles[T]{
		Shape:      NewShape(ar, opts...),
		grid:       g,
		background: background.Clone(),
		xs:         xs,
		ys:         ys,
	}
	if c.bgT, err = field.Lift(ar, c.background); err != nil {
		return nil, paramErrorf(op, err)
	}
	if c.xsT, err = field.Lift(ar, xs); err != nil {
		return nil, paramErrorf(op, err)
	}
	if c.ysT, err = field.Lift(ar, ys); err != nil {
		return nil, paramErrorf(op, err)
	}

	return c, nil
}

// Kind returns KindCircles.
func (c *Circles[T]) Kind() Kind { return KindCircles }

// Implemented returns true.
func (c *Circles[T]) Implemented() bool { return true }

// Grid returns the grid the circles are rendered on.
func (c *Circles[T]) Grid() *grid.Grid { return c.grid }

// DL returns the grid step.
func (c *Circles[T]) DL() float64 { return c.grid.DL }

// Background returns a copy of the stored background.
func (c *Circles[T]) Background() *field.Field[float64] { return c.background.Clone() }

// Coords returns copies of the coordinate fields (xs, ys).
func (c *Circles[T]) Coords() (xs, ys *field.Field[float64]) {
	return c.xs.Clone(), c.ys.Clone()
}

// Circle returns the anti-aliased indicator of the circle (x, y, r) sampled
// at coordinates xs, ys:
//
//	Sigmoid(−((xs−x)² + (ys−y)² − r²) / dL²)
//
// Values are near 1 inside, near 0 outside, with a transition band set by
// the strength relative to dL.
func (c *Circles[T]) Circle(xs, ys *field.Field[float64], x, y, r T) (*field.Field[T], error) {
	const op = "Circles.Circle"
	if err := field.ValidateSameShape(xs, ys); err != nil {
		return nil, paramErrorf(op, err)
	}
	xsT, err := field.Lift(c.ar, xs)
	if err != nil {
		return nil, paramErrorf(op, err)
	}
	ysT, err := field.Lift(c.ar, ys)
	if err != nil {
		return nil, paramErrorf(op, err)
	}

	return c.circle(xsT, ysT, x, y, r)
}

// circle evaluates the indicator on coordinates already lifted into T.
func (c *Circles[T]) circle(xs, ys *field.Field[T], x, y, r T) (*field.Field[T], error) {
	const op = "Circles.circle"
	ar := c.ar

	dx, err := field.ScalarSub(ar, x, xs)
	if err != nil {
		return nil, paramErrorf(op, err)
	}
	if dx, err = field.Pow(ar, dx, 2); err != nil {
		return nil, paramErrorf(op, err)
	}
	dy, err := field.ScalarSub(ar, y, ys)
	if err != nil {
		return nil, paramErrorf(op, err)
	}
	if dy, err = field.Pow(ar, dy, 2); err != nil {
		return nil, paramErrorf(op, err)
	}

	// signed squared distance from the edge: negative inside
	dist, err := field.Add(ar, dx, dy)
	if err != nil {
		return nil, paramErrorf(op, err)
	}
	if dist, err = field.AddScalar(ar, dist, ar.Scale(-1, ar.Pow(r, 2))); err != nil {
		return nil, paramErrorf(op, err)
	}

	dL := c.grid.DL
	arg, err := field.Scale(ar, -1/(dL*dL), dist)
	if err != nil {
		return nil, paramErrorf(op, err)
	}

	return c.Sigmoid(arg)
}

// Composite paints circles over the background in input order: circle i has
// centre (xs[i], ys[i]), radius rs[i] and fill value values[i]. Each circle
// is alpha-blended over the running field,
//
//	eps ← c·value + (1−c)·eps
//
// so later circles cover earlier ones. Empty input returns the background.
// Returns ErrLengthMismatch, before any blending, when the four sequences
// differ in length.
// Complexity: O(n·rows·cols) for n circles.
func (c *Circles[T]) Composite(xs, ys, rs, values []T) (*field.Field[T], error) {
	const op = "Circles.Composite"
	n := len(xs)
	if len(ys) != n || len(rs) != n || len(values) != n {
		return nil, fmt.Errorf("%s: len(xs)=%d len(ys)=%d len(rs)=%d len(values)=%d: %w",
			op, len(xs), len(ys), len(rs), len(values), ErrLengthMismatch)
	}

	ar := c.ar
	one := ar.Const(1)
	eps := c.bgT.Clone()
	for i := 0; i < n; i++ {
		ind, err := c.circle(c.xsT, c.ysT, xs[i], ys[i], rs[i])
		if err != nil {
			return nil, paramErrorf(op, err)
		}
		painted, err := field.MulScalar(ar, ind, values[i])
		if err != nil {
			return nil, paramErrorf(op, err)
		}
		keep, err := field.ScalarSub(ar, one, ind)
		if err != nil {
			return nil, paramErrorf(op, err)
		}
		if keep, err = field.Mul(ar, keep, eps); err != nil {
			return nil, paramErrorf(op, err)
		}
		if eps, err = field.Add(ar, painted, keep); err != nil {
			return nil, paramErrorf(op, err)
		}
	}

	return eps, nil
}

// Eps interprets p as packed circles (see PackCircles) and composites them.
// Returns ErrLengthMismatch if len(p) is not a multiple of four.
func (c *Circles[T]) Eps(p []T) (*field.Field[T], error) {
	cs, err := UnpackCircles(p)
	if err != nil {
		return nil, paramErrorf("Circles.Eps", err)
	}
	xs := make([]T, len(cs))
	ys := make([]T, len(cs))
	rs := make([]T, len(cs))
	vs := make([]T, len(cs))
	for i, cc := range cs {
		xs[i], ys[i], rs[i], vs[i] = cc.X, cc.Y, cc.R, cc.Value
	}

	return c.Composite(xs, ys, rs, vs)
}
