package grid

import "errors"

var (
	// ErrEmptyGrid indicates a grid with no rows or no columns.
	ErrEmptyGrid = errors.New("grid: grid must have at least one row and one column")
	// ErrBadStep indicates a step size that is not a finite positive number.
	ErrBadStep = errors.New("grid: step size must be finite and > 0")
	// ErrCellIndex indicates a requested cell lies outside the grid.
	ErrCellIndex = errors.New("grid: cell index out of range")
)
