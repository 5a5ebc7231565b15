// SPDX-License-Identifier: MIT

// Package datamatrix: Builder — the fluent configuration surface.
//
// Contract (strict):
//   - Builder is an immutable VALUE: every setter returns an updated copy,
//     so there is no hidden partial-build state and a configured Builder can
//     be reused or forked freely before the terminal call.
//   - Setters VALIDATE and PANIC on meaningless inputs (programmer error);
//     terminal operations never panic on user data — they return errors.
//   - The coordinate-resolution mode is fixed once by configuration
//     (IndexColumns selects index-driven), never inferred per record.
package datamatrix

// Documented defaults (single source of truth, no magic numbers).
const (
	// DefaultRowLabelColumn is the 0-based column holding row labels.
	DefaultRowLabelColumn = 0

	// DefaultColLabelColumn is the 0-based column holding column labels.
	DefaultColLabelColumn = 1

	// DefaultDataColumn is the 0-based column holding the numeric value.
	DefaultDataColumn = 2
)

// Internal panic messages (no magic strings in setters).
const (
	panicNegativeColumn = "datamatrix: column indices must be >= 0"
	panicNilLabels      = "datamatrix: Labels requires at least one label"
)

// noIndexColumn marks "index columns not configured" (label-driven mode).
const noIndexColumn = -1

// Builder is the fluent, order-independent configuration for loading labeled
// matrices from plain text, CSV, or TSV sources. Configure with the setter
// methods, then invoke exactly one terminal operation: FromFile, FromReader
// or FromData. Column indices are 0-based throughout.
//
// Zero value: NewBuilder() — labels in columns 0 and 1, value in column 2,
// separator inferred from the file extension (whitespace-run otherwise),
// not symmetric, no header.
type Builder struct {
	rowLabelCol int      // column holding row labels
	colLabelCol int      // column holding column labels
	dataCol     int      // column holding the numeric value
	rowIdxCol   int      // explicit row-index column, noIndexColumn when unset
	colIdxCol   int      // explicit col-index column, noIndexColumn when unset
	sep         rune     // explicit separator, meaningful when sepSet
	sepSet      bool     // true once Separator() was called
	symmetric   bool     // mirror (i,j) into (j,i) on every write
	skipHeader  bool     // discard the first data line
	labels      []string // explicit labels for single-column input
}

// NewBuilder returns a Builder with documented defaults.
// Complexity: O(1).
func NewBuilder() Builder {
	return Builder{
		rowLabelCol: DefaultRowLabelColumn,
		colLabelCol: DefaultColLabelColumn,
		dataCol:     DefaultDataColumn,
		rowIdxCol:   noIndexColumn,
		colIdxCol:   noIndexColumn,
	}
}

// LabelColumns sets which columns contain the row and column labels.
// Panics on negative indices (programmer error).
// Complexity: O(1).
func (b Builder) LabelColumns(row, col int) Builder {
	if row < 0 || col < 0 {
		panic(panicNegativeColumn)
	}
	b.rowLabelCol, b.colLabelCol = row, col

	return b
}

// IndexColumns sets which columns provide explicit row and column indices
// AND selects index-driven mode: grid positions come directly from these
// integer fields, bypassing label-order assignment. Without this call,
// index fields in 5-column input are inert hints.
// Panics on negative indices (programmer error).
// Complexity: O(1).
func (b Builder) IndexColumns(rowIdx, colIdx int) Builder {
	if rowIdx < 0 || colIdx < 0 {
		panic(panicNegativeColumn)
	}
	b.rowIdxCol, b.colIdxCol = rowIdx, colIdx

	return b
}

// DataColumn sets which column contains the numeric value.
// Panics on a negative index (programmer error).
// Complexity: O(1).
func (b Builder) DataColumn(col int) Builder {
	if col < 0 {
		panic(panicNegativeColumn)
	}
	b.dataCol = col

	return b
}

// Separator sets the field separator rune. SepWhitespace selects
// whitespace-run splitting. An explicit separator always wins over
// extension-based inference.
// Complexity: O(1).
func (b Builder) Separator(sep rune) Builder {
	b.sep = sep
	b.sepSet = true

	return b
}

// Symmetric controls symmetric fill: when enabled, every parsed record
// (row, col, value) also writes (col, row, value), and row and column
// registries are built to be identical.
// Complexity: O(1).
func (b Builder) Symmetric(on bool) Builder {
	b.symmetric = on

	return b
}

// SkipHeader controls whether the first data line is discarded as a header.
// A skipped header never registers labels and never triggers value parsing.
// Complexity: O(1).
func (b Builder) SkipHeader(on bool) Builder {
	b.skipHeader = on

	return b
}

// Labels provides explicit labels for single-column input, where k labels
// imply a k×k square matrix (the value count must equal k²). Without this
// call, single-column builds generate "row-1".."row-k" / "col-1".."col-k".
// Panics on an empty slice (programmer error); the slice is copied.
// Complexity: O(len(labels)).
func (b Builder) Labels(labels []string) Builder {
	if len(labels) == 0 {
		panic(panicNilLabels)
	}
	cp := make([]string, len(labels))
	copy(cp, labels)
	b.labels = cp

	return b
}

// mode resolves the tagged coordinate-resolution variant from configuration.
// Complexity: O(1).
func (b Builder) mode() mode {
	if b.rowIdxCol != noIndexColumn && b.colIdxCol != noIndexColumn {
		return modeIndexDriven
	}

	return modeLabelDriven
}

// resolveSeparator applies the precedence: explicit value, else inference
// from the file extension, else whitespace-run default.
// Complexity: O(len(path)).
func (b Builder) resolveSeparator(path string) rune {
	if b.sepSet {
		return b.sep
	}

	return guessSeparator(path)
}
