// SPDX-License-Identifier: MIT

// Package datamatrix: DataMatrix — the finished, immutable artifact.
// A DataMatrix owns exactly one grid and the two label registries that
// produced it. It is created once by a Builder terminal operation (or by
// NewDataMatrix from in-memory data), never mutated afterward, and safe for
// concurrent read-only access by multiple callers.
package datamatrix

import (
	"fmt"
	"strings"
)

// DataMatrix is a dense matrix of numeric values with labeled rows and
// columns. Cells never written by any input record are "unset" and read as
// not-ok; there is no mutation entry point past construction.
type DataMatrix struct {
	grid   *grid          // dense optional-cell store
	rowReg *labelRegistry // row label ↔ index
	colReg *labelRegistry // column label ↔ index
}

// NewDataMatrix creates a DataMatrix from row-major data and labels, with
// every cell set. In daily work prefer a Builder; this constructor serves
// callers that already hold the values in memory.
// Stage 1 (Validate): len(data) must equal len(rowLabels) and every row must
// have len(colLabels) values (ErrLabelMismatch otherwise); empty data is
// ErrInvalidDimensions.
// Stage 2 (Copy): labels and values are copied — the result shares no memory
// with the inputs.
// Complexity: O(r*c).
func NewDataMatrix(data [][]float64, rowLabels, colLabels []string) (*DataMatrix, error) {
	// Stage 1: shape vs labels.
	if len(data) != len(rowLabels) {
		return nil, fmt.Errorf("NewDataMatrix: %d row(s), %d row label(s): %w",
			len(data), len(rowLabels), ErrLabelMismatch)
	}
	g, err := newGrid(len(rowLabels), len(colLabels))
	if err != nil {
		return nil, fmt.Errorf("NewDataMatrix: %w", err)
	}

	// Stage 2: copy cells row by row.
	var i, j int
	for i = range data {
		if len(data[i]) != len(colLabels) {
			return nil, fmt.Errorf("NewDataMatrix: row %d has %d value(s), %d col label(s): %w",
				i, len(data[i]), len(colLabels), ErrLabelMismatch)
		}
		for j = range data[i] {
			// Bounds are construction-guaranteed; set cannot fail here.
			_ = g.set(i, j, data[i][j])
		}
	}

	return &DataMatrix{grid: g, rowReg: fromLabels(rowLabels), colReg: fromLabels(colLabels)}, nil
}

// NRows returns the number of rows. Complexity: O(1).
func (m *DataMatrix) NRows() int { return m.grid.rows() }

// NCols returns the number of columns. Complexity: O(1).
func (m *DataMatrix) NCols() int { return m.grid.cols() }

// Get returns the value at (row, col). The second result is false both for
// out-of-range coordinates and for cells no input record ever wrote.
// Complexity: O(1).
func (m *DataMatrix) Get(row, col int) (float64, bool) {
	return m.grid.at(row, col)
}

// GetByLabel returns the value addressed by row and column labels. The
// second result is false when either label is unknown AND when the cell is
// unset — the two conditions are observably indistinguishable by design.
// Complexity: O(1) expected.
func (m *DataMatrix) GetByLabel(rowLabel, colLabel string) (float64, bool) {
	i, ok := m.rowReg.indexOf(rowLabel)
	if !ok {
		return 0, false
	}
	j, ok := m.colReg.indexOf(colLabel)
	if !ok {
		return 0, false
	}

	return m.grid.at(i, j)
}

// RowIndex returns the index assigned to a row label, if present.
// Complexity: O(1) expected.
func (m *DataMatrix) RowIndex(label string) (int, bool) {
	return m.rowReg.indexOf(label)
}

// ColIndex returns the index assigned to a column label, if present.
// Complexity: O(1) expected.
func (m *DataMatrix) ColIndex(label string) (int, bool) {
	return m.colReg.indexOf(label)
}

// RowLabel returns the label of a row by its index, if in range.
// Complexity: O(1).
func (m *DataMatrix) RowLabel(index int) (string, bool) {
	return m.rowReg.labelOf(index)
}

// ColLabel returns the label of a column by its index, if in range.
// Complexity: O(1).
func (m *DataMatrix) ColLabel(index int) (string, bool) {
	return m.colReg.labelOf(index)
}

// RowLabels returns a copy of the row labels in index order.
// If the matrix was built symmetric, row and column labels are identical.
// Complexity: O(n).
func (m *DataMatrix) RowLabels() []string { return m.rowReg.toLabels() }

// ColLabels returns a copy of the column labels in index order.
// If the matrix was built symmetric, row and column labels are identical.
// Complexity: O(n).
func (m *DataMatrix) ColLabels() []string { return m.colReg.toLabels() }

// String implements fmt.Stringer for easy debugging; unset cells render
// as "·".
// Complexity: O(r*c).
func (m *DataMatrix) String() string {
	var sb strings.Builder
	var i, j int
	var v float64
	var ok bool
	for i = 0; i < m.grid.rows(); i++ {
		sb.WriteByte('[')
		for j = 0; j < m.grid.cols(); j++ {
			if v, ok = m.grid.at(i, j); ok {
				fmt.Fprintf(&sb, "%g", v)
			} else {
				sb.WriteString("·")
			}
			if j < m.grid.cols()-1 {
				sb.WriteString(", ")
			}
		}
		sb.WriteString("]\n")
	}

	return sb.String()
}
