package grid_test

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/katalvlaran/epsmap/field"
	"github.com/katalvlaran/epsmap/grid"
	"github.com/stretchr/testify/require"
)

//----------------------------------------------------------------------------//
// New
//----------------------------------------------------------------------------//

// TestNew_Errors verifies New rejects empty shapes and invalid steps.
func TestNew_Errors(t *testing.T) {
	cases := []struct {
		name  string
		shape field.Shape
		dL    float64
		err   error
	}{
		{"EmptyRows", field.Shape{Rows: 0, Cols: 3}, 1, grid.ErrEmptyGrid},
		{"EmptyCols", field.Shape{Rows: 3, Cols: 0}, 1, grid.ErrEmptyGrid},
		{"ZeroStep", field.Shape{Rows: 3, Cols: 3}, 0, grid.ErrBadStep},
		{"NegativeStep", field.Shape{Rows: 3, Cols: 3}, -0.1, grid.ErrBadStep},
		{"NaNStep", field.Shape{Rows: 3, Cols: 3}, math.NaN(), grid.ErrBadStep},
		{"InfStep", field.Shape{Rows: 3, Cols: 3}, math.Inf(1), grid.ErrBadStep},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := grid.New(tc.shape, tc.dL)
			require.ErrorIs(t, err, tc.err)
		})
	}
}

// TestNew_Axes checks the centred linspace layout on both axes.
func TestNew_Axes(t *testing.T) {
	t.Parallel()

	g, err := grid.New(field.Shape{Rows: 5, Cols: 2}, 0.5)
	require.NoError(t, err)
	require.Equal(t, field.Shape{Rows: 5, Cols: 2}, g.Shape())

	approx := cmpopts.EquateApprox(0, 1e-12)
	if diff := cmp.Diff([]float64{-1.25, -0.625, 0, 0.625, 1.25}, g.X, approx); diff != "" {
		t.Fatalf("X axis mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]float64{-0.5, 0.5}, g.Y, approx); diff != "" {
		t.Fatalf("Y axis mismatch (-want +got):\n%s", diff)
	}
}

// TestNew_SingleCell keeps the lower bound for a one-sample axis.
func TestNew_SingleCell(t *testing.T) {
	t.Parallel()

	g, err := grid.New(field.Shape{Rows: 1, Cols: 1}, 2)
	require.NoError(t, err)
	require.Equal(t, []float64{-1}, g.X)
	require.Equal(t, []float64{-1}, g.Y)
}

//----------------------------------------------------------------------------//
// Point, Mesh, Coords
//----------------------------------------------------------------------------//

// TestPoint checks coordinate lookup and bounds.
func TestPoint(t *testing.T) {
	t.Parallel()

	g, err := grid.New(field.Shape{Rows: 3, Cols: 3}, 1)
	require.NoError(t, err)

	x, y, err := g.Point(2, 0)
	require.NoError(t, err)
	require.Equal(t, 1.5, x)
	require.Equal(t, -1.5, y)

	_, _, err = g.Point(3, 0)
	require.ErrorIs(t, err, grid.ErrCellIndex)
	require.False(t, g.InBounds(-1, 0))
}

// TestMesh verifies ij indexing: rows follow X, columns follow Y.
func TestMesh(t *testing.T) {
	t.Parallel()

	xs, ys, err := grid.Coords(field.Shape{Rows: 2, Cols: 3}, 1)
	require.NoError(t, err)
	require.Equal(t, field.Shape{Rows: 2, Cols: 3}, xs.Shape())
	require.Equal(t, field.Shape{Rows: 2, Cols: 3}, ys.Shape())

	require.Equal(t, []float64{-1, -1, -1, 1, 1, 1}, xs.Values())
	require.Equal(t, []float64{-1.5, 0, 1.5, -1.5, 0, 1.5}, ys.Values())

	_, _, err = grid.Coords(field.Shape{}, 1)
	require.ErrorIs(t, err, grid.ErrEmptyGrid)
}
