// Package grid provides a generic dense 2D container and a set of pure,
// parallel transform operations over it.
//
// Map generation is expressed as a chain of transforms over a starting
// grid, each step adding more detail. Every transform allocates a fresh
// grid and leaves its input untouched, so steps can be rearranged, added
// or removed freely while experimenting. Transform callbacks run
// concurrently across worker goroutines; they must not share mutable
// state, and no ordering is guaranteed between cells. The only guarantee
// is that output cell (x, y) is the callback applied to input cell (x, y).
package grid

import (
	"fmt"

	"github.com/dgravesa/go-parallel/parallel"
)

// Grid is a dense 2D raster of cells stored in row-major order
// (index = y*width + x). The backing slice always holds exactly
// width*height elements.
type Grid[T any] struct {
	width  int
	height int
	cells  []T
}

// New creates a grid with every cell set to value.
// It panics if either dimension is not positive.
func New[T any](value T, width, height int) Grid[T] {
	if width <= 0 || height <= 0 {
		panic(fmt.Sprintf("grid: dimensions must be positive, got %dx%d", width, height))
	}

	cells := make([]T, width*height)
	for i := range cells {
		cells[i] = value
	}

	return Grid[T]{width: width, height: height, cells: cells}
}

// Width returns the width of the grid.
func (g Grid[T]) Width() int {
	return g.width
}

// Height returns the height of the grid.
func (g Grid[T]) Height() int {
	return g.height
}

// At returns the cell at the given coordinates.
func (g Grid[T]) At(x, y int) T {
	return g.cells[y*g.width+x]
}

// Map transforms every cell of g through f into a new grid of the same
// dimensions. Cells are processed in parallel; f must be safe to call
// concurrently.
func Map[T, U any](g Grid[T], f func(T) U) Grid[U] {
	out := make([]U, len(g.cells))

	parallel.For(g.height, func(y, _ int) {
		row := y * g.width
		for x := 0; x < g.width; x++ {
			out[row+x] = f(g.cells[row+x])
		}
	})

	return Grid[U]{width: g.width, height: g.height, cells: out}
}

// MapIndexed is Map with the cell's x and y coordinates passed to f.
func MapIndexed[T, U any](g Grid[T], f func(T, int, int) U) Grid[U] {
	out := make([]U, len(g.cells))

	parallel.For(g.height, func(y, _ int) {
		row := y * g.width
		for x := 0; x < g.width; x++ {
			out[row+x] = f(g.cells[row+x], x, y)
		}
	})

	return Grid[U]{width: g.width, height: g.height, cells: out}
}

// Reduce folds every cell of g into a single value. Each row is folded
// independently starting from seed using accumulate, and the per-row
// partials are combined with merge. Because partials may be merged in any
// order, merge must be associative and commutative and seed must be an
// identity for it (e.g. +Inf/-Inf seeds for min/max tracking).
func Reduce[T, R any](g Grid[T], seed R, accumulate func(R, T) R, merge func(R, R) R) R {
	partials := make([]R, g.height)

	parallel.For(g.height, func(y, _ int) {
		acc := seed
		row := y * g.width
		for x := 0; x < g.width; x++ {
			acc = accumulate(acc, g.cells[row+x])
		}
		partials[y] = acc
	})

	result := seed
	for _, partial := range partials {
		result = merge(result, partial)
	}

	return result
}

// Extract is the terminal operation of a transform chain. It hands the
// backing slice and the grid's dimensions to sink and returns whatever
// sink produces. The grid is consumed; it must not be used afterwards.
func Extract[T, R any](g Grid[T], sink func([]T, int, int) R) R {
	return sink(g.cells, g.width, g.height)
}
