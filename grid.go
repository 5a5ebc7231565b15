// SPDX-License-Identifier: MIT

// Package datamatrix: grid — a dense rectangular store of optional float64
// cells in row-major flat storage. Each cell is either "set" (holds a value)
// or "unset" (never written); dimensions are fixed at construction time.
package datamatrix

import "fmt"

// grid is a row-major store of nrows×ncols optional numeric cells.
// data holds r*c values and mask holds r*c set-flags; both are indexed by
// the same flat offset.
type grid struct {
	r, c int       // number of rows and columns
	data []float64 // flat backing storage, length == r*c
	mask []bool    // true where the cell was ever written
}

// newGrid creates an r×c grid with every cell unset.
// Stage 1 (Validate): ensure rows and cols > 0.
// Stage 2 (Prepare): allocate flat backing slices.
// Stage 3 (Finalize): return new grid or ErrInvalidDimensions.
// Complexity: O(r*c) time and memory.
func newGrid(rows, cols int) (*grid, error) {
	// Validate dimensions
	if rows <= 0 || cols <= 0 {
		return nil, fmt.Errorf("newGrid(%d,%d): %w", rows, cols, ErrInvalidDimensions)
	}

	// Allocate flat slices
	return &grid{
		r:    rows,
		c:    cols,
		data: make([]float64, rows*cols),
		mask: make([]bool, rows*cols),
	}, nil
}

// rows returns the number of rows. Complexity: O(1).
func (g *grid) rows() int { return g.r }

// cols returns the number of columns. Complexity: O(1).
func (g *grid) cols() int { return g.c }

// offset computes the flat index for (row, col) or reports out-of-range.
// Complexity: O(1).
func (g *grid) offset(row, col int) (int, bool) {
	if row < 0 || row >= g.r || col < 0 || col >= g.c {
		return 0, false
	}

	return row*g.c + col, true
}

// set writes v at (row, col), overwriting any prior value (last-write-wins;
// no accumulation). Out-of-range coordinates are a programming error on the
// write path and surface as ErrOutOfRange.
// Complexity: O(1).
func (g *grid) set(row, col int, v float64) error {
	idx, ok := g.offset(row, col)
	if !ok {
		return fmt.Errorf("grid.set(%d,%d): %w", row, col, ErrOutOfRange)
	}
	g.data[idx] = v
	g.mask[idx] = true

	return nil
}

// at reads the cell at (row, col). The second result is false both for unset
// cells and for out-of-range coordinates — read access never errors.
// Complexity: O(1).
func (g *grid) at(row, col int) (float64, bool) {
	idx, ok := g.offset(row, col)
	if !ok || !g.mask[idx] {
		return 0, false
	}

	return g.data[idx], true
}
