package grid

import (
	"fmt"
	"math"

	"github.com/katalvlaran/epsmap/field"
	"gonum.org/v1/gonum/floats"
)

// Grid is a uniform two-dimensional discretization. It is immutable once built.
// X and Y hold the cell-centre coordinates along each axis.
type Grid struct {
	Nx, Ny int       // cells along x (rows) and y (columns)
	DL     float64   // physical step between neighbouring cells
	X, Y   []float64 // axis coordinates, len Nx and Ny
}

// New builds a Grid matching shape with step dL.
// Returns ErrEmptyGrid for an empty shape and ErrBadStep for an invalid step.
// Complexity: O(Nx+Ny).
func New(shape field.Shape, dL float64) (*Grid, error) {
	if shape.Rows <= 0 || shape.Cols <= 0 {
		return nil, ErrEmptyGrid
	}
	if math.IsNaN(dL) || math.IsInf(dL, 0) || dL <= 0 {
		return nil, fmt.Errorf("grid.New: dL=%g: %w", dL, ErrBadStep)
	}

	return &Grid{
		Nx: shape.Rows,
		Ny: shape.Cols,
		DL: dL,
		X:  axis(shape.Rows, dL),
		Y:  axis(shape.Cols, dL),
	}, nil
}

// axis returns linspace(-n/2*dL, n/2*dL, n).
// A single sample sits at the lower bound, as numpy's linspace does.
func axis(n int, dL float64) []float64 {
	half := float64(n) / 2 * dL
	if n == 1 {
		return []float64{-half}
	}

	return floats.Span(make([]float64, n), -half, half)
}

// Shape returns the field shape covered by g.
func (g *Grid) Shape() field.Shape { return field.Shape{Rows: g.Nx, Cols: g.Ny} }

// InBounds reports whether cell (i,j) lies within the grid.
// Complexity: O(1).
func (g *Grid) InBounds(i, j int) bool {
	return i >= 0 && i < g.Nx && j >= 0 && j < g.Ny
}

// Point returns the physical coordinates of cell (i,j).
func (g *Grid) Point(i, j int) (x, y float64, err error) {
	if !g.InBounds(i, j) {
		return 0, 0, fmt.Errorf("grid.Point(%d,%d): %w", i, j, ErrCellIndex)
	}

	return g.X[i], g.Y[j], nil
}

// Mesh returns the coordinate fields xs, ys with xs[i,j]=X[i] and ys[i,j]=Y[j].
// Complexity: O(Nx×Ny) time and memory.
func (g *Grid) Mesh() (xs, ys *field.Field[float64], err error) {
	xv := make([]float64, 0, g.Nx*g.Ny)
	yv := make([]float64, 0, g.Nx*g.Ny)
	for i := 0; i < g.Nx; i++ {
		for j := 0; j < g.Ny; j++ {
			xv = append(xv, g.X[i])
			yv = append(yv, g.Y[j])
		}
	}
	if xs, err = field.FromSlice(g.Nx, g.Ny, xv); err != nil {
		return nil, nil, fmt.Errorf("grid.Mesh: %w", err)
	}
	if ys, err = field.FromSlice(g.Nx, g.Ny, yv); err != nil {
		return nil, nil, fmt.Errorf("grid.Mesh: %w", err)
	}

	return xs, ys, nil
}

// Coords returns the coordinate fields aligned with a reference shape.
// It is shorthand for New followed by Mesh.
func Coords(shape field.Shape, dL float64) (xs, ys *field.Field[float64], err error) {
	g, err := New(shape, dL)
	if err != nil {
		return nil, nil, err
	}

	return g.Mesh()
}
