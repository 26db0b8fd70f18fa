// SPDX-License-Identifier: MIT

// Package field: Field is a row-major two-dimensional array stored in a flat
// slice for cache friendliness. The element type is free; arithmetic on it is
// supplied separately through Arith.
package field

import (
	"fmt"
	"strings"
)

// Shape is the (Rows, Cols) extent of a field.
type Shape struct {
	Rows int // number of rows (first axis, x in ij indexing)
	Cols int // number of columns (second axis, y in ij indexing)
}

// Len returns Rows*Cols.
func (s Shape) Len() int { return s.Rows * s.Cols }

// String formats the shape as "RxC".
func (s Shape) String() string { return fmt.Sprintf("%dx%d", s.Rows, s.Cols) }

// Field is a row-major rows×cols array of T.
// r is rows, c is columns, and data holds r*c elements in row-major order.
type Field[T any] struct {
	r, c int // number of rows and columns
	data []T // flat backing storage, length == r*c
}

// New creates an rows×cols Field initialized to the zero value of T.
// Stage 1 (Validate): ensure rows and cols > 0.
// Stage 2 (Prepare): allocate flat backing slice.
// Complexity: O(rows*cols) time and memory.
func New[T any](rows, cols int) (*Field[T], error) {
	if rows <= 0 || cols <= 0 {
		return nil, fieldErrorf("New", ErrInvalidDimensions)
	}

	return &Field[T]{r: rows, c: cols, data: make([]T, rows*cols)}, nil
}

// Filled creates an rows×cols Field with every element set to v.
func Filled[T any](rows, cols int, v T) (*Field[T], error) {
	f, err := New[T](rows, cols)
	if err != nil {
		return nil, fieldErrorf("Filled", err)
	}
	for i := range f.data {
		f.data[i] = v
	}

	return f, nil
}

// FromSlice builds an rows×cols Field from a row-major buffer.
// The buffer is copied; later changes to data do not affect the Field.
// Returns ErrInvalidDimensions if len(data) != rows*cols.
func FromSlice[T any](rows, cols int, data []T) (*Field[T], error) {
	f, err := New[T](rows, cols)
	if err != nil {
		return nil, fieldErrorf("FromSlice", err)
	}
	if len(data) != rows*cols {
		return nil, fieldErrorf("FromSlice", ErrInvalidDimensions)
	}
	copy(f.data, data)

	return f, nil
}

// FromRows builds a Field from a rectangular [][]T, copying every row.
// Returns ErrInvalidDimensions for empty input and ErrShapeMismatch for
// ragged rows.
func FromRows[T any](rows [][]T) (*Field[T], error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, fieldErrorf("FromRows", ErrInvalidDimensions)
	}
	r, c := len(rows), len(rows[0])
	f := &Field[T]{r: r, c: c, data: make([]T, r*c)}
	for i, row := range rows {
		if len(row) != c {
			return nil, fieldErrorf("FromRows", ErrShapeMismatch)
		}
		copy(f.data[i*c:(i+1)*c], row)
	}

	return f, nil
}

// Rows returns the number of rows.
func (f *Field[T]) Rows() int { return f.r }

// Cols returns the number of columns.
func (f *Field[T]) Cols() int { return f.c }

// Shape returns the extent of f.
func (f *Field[T]) Shape() Shape { return Shape{Rows: f.r, Cols: f.c} }

// Len returns the number of elements, Rows*Cols.
func (f *Field[T]) Len() int { return len(f.data) }

// indexOf computes the flat index for (row, col) or returns ErrOutOfRange.
// Complexity: O(1).
func (f *Field[T]) indexOf(method string, row, col int) (int, error) {
	if row < 0 || row >= f.r || col < 0 || col >= f.c {
		return 0, fmt.Errorf("Field.%s(%d,%d): %w", method, row, col, ErrOutOfRange)
	}

	return row*f.c + col, nil
}

// At retrieves the element at (row, col).
// Complexity: O(1).
func (f *Field[T]) At(row, col int) (T, error) {
	idx, err := f.indexOf("At", row, col)
	if err != nil {
		var zero T
		return zero, err
	}

	return f.data[idx], nil
}

// Set assigns v at (row, col).
// Complexity: O(1).
func (f *Field[T]) Set(row, col int, v T) error {
	idx, err := f.indexOf("Set", row, col)
	if err != nil {
		return err
	}
	f.data[idx] = v

	return nil
}

// Clone returns a deep copy of f.
// Complexity: O(rows*cols) time and memory.
func (f *Field[T]) Clone() *Field[T] {
	data := make([]T, len(f.data))
	copy(data, f.data)

	return &Field[T]{r: f.r, c: f.c, data: data}
}

// Values returns a copy of the row-major backing buffer.
func (f *Field[T]) Values() []T {
	out := make([]T, len(f.data))
	copy(out, f.data)

	return out
}

// String implements fmt.Stringer for debugging.
// Complexity: O(rows*cols).
func (f *Field[T]) String() string {
	var sb strings.Builder
	for i := 0; i < f.r; i++ {
		sb.WriteByte('[')
		for j := 0; j < f.c; j++ {
			if j > 0 {
				sb.WriteString(", ")
			}
			fmt.Fprintf(&sb, "%v", f.data[i*f.c+j])
		}
		sb.WriteString("]\n")
	}

	return sb.String()
}
