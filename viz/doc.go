// SPDX-License-Identifier: MIT

// Package viz renders permittivity fields as heat maps.
//
// HeatMap wraps a field and the grid it lives on as a plotter.GridXYZ, so
// the plot axes carry physical coordinates rather than cell indices. Save
// picks the image format from the file extension (png, svg, pdf, …) the way
// plot.Plot.Save does.
//
// Field rows run along x and columns along y, matching grid.Mesh.
package viz
