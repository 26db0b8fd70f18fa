// SPDX-License-Identifier: MIT

package viz

import (
	"fmt"

	"github.com/katalvlaran/epsmap/field"
	"github.com/katalvlaran/epsmap/grid"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/palette"
	"gonum.org/v1/plot/plotter"
)

// gridXYZ adapts a field on a grid to plotter.GridXYZ.
// Plot columns are field rows (x), plot rows are field columns (y).
type gridXYZ struct {
	g    *grid.Grid
	vals []float64 // row-major copy of the field
}

var _ plotter.GridXYZ = gridXYZ{}

func (z gridXYZ) Dims() (c, r int)   { return z.g.Nx, z.g.Ny }
func (z gridXYZ) Z(c, r int) float64 { return z.vals[c*z.g.Ny+r] }
func (z gridXYZ) X(c int) float64    { return z.g.X[c] }
func (z gridXYZ) Y(r int) float64    { return z.g.Y[r] }

// HeatMap builds a heat map of f over the physical extent of g.
// Returns ErrNilField for nil inputs and ErrShapeMismatch when f and g
// disagree on shape.
func HeatMap(f *field.Field[float64], g *grid.Grid, opts ...Option) (*plot.Plot, error) {
	if f == nil || g == nil {
		return nil, ErrNilField
	}
	if f.Shape() != g.Shape() {
		return nil, fmt.Errorf("viz.HeatMap: field %s, grid %s: %w", f.Shape(), g.Shape(), ErrShapeMismatch)
	}
	o := gatherOptions(opts...)

	hm := plotter.NewHeatMap(gridXYZ{g: g, vals: f.Values()}, palette.Heat(o.colors, 1))
	if hm.Min == hm.Max {
		// uniform field: give the palette a non-empty range
		hm.Min, hm.Max = hm.Min-0.5, hm.Max+0.5
	}

	p := plot.New()
	p.Title.Text = o.title
	p.X.Label.Text = "x"
	p.Y.Label.Text = "y"
	p.Add(hm)

	return p, nil
}

// Save renders f with HeatMap and writes it to path. The format follows
// the extension.
func Save(path string, f *field.Field[float64], g *grid.Grid, opts ...Option) error {
	p, err := HeatMap(f, g, opts...)
	if err != nil {
		return err
	}
	o := gatherOptions(opts...)
	if err := p.Save(o.width, o.height, path); err != nil {
		return fmt.Errorf("viz.Save %s: %w", path, err)
	}

	return nil
}
