// SPDX-License-Identifier: MIT

// Package datamatrix: terminal build operations — the orchestration of
// detection, registry population and grid filling.
//
// Policy & Contracts:
//   - Two conceptual phases: a sizing pass fixes nrows/ncols (registry
//     population or max-index tracking), then a fill pass writes the grid.
//     Records are buffered between the passes (see scanRecords), so any
//     io.Reader works — no rewind capability is required of the source.
//   - All-or-nothing: any malformed line, unparseable value or shape
//     violation aborts the build; no partial matrix is ever returned.
//   - Last-write-wins for repeated (row, col) pairs under stable line order.
//   - Symmetric fill writes (j,i) alongside every (i,j), loops included
//     (idempotent).
//
// Determinism:
//   - Indices follow first-appearance order (label-driven) or the explicit
//     integer fields (index-driven); iteration order is the stable line order.
package datamatrix

import (
	"fmt"
	"io"
	"strconv"
)

// FromFile loads the matrix from the given file path according to the
// current builder settings.
// Stage 1 (Resolve): separator — explicit value, else inferred from the
// extension (one compression suffix peeled), else whitespace-run.
// Stage 2 (Open): the file, transparently decompressing .gz/.bz2/.xz/.zst.
// Stage 3 (Build): delegate to the shared stream pipeline.
// Complexity: O(file size) time and memory (records are buffered).
func (b Builder) FromFile(path string) (*DataMatrix, error) {
	src, err := openFile(path)
	if err != nil {
		return nil, fmt.Errorf("FromFile: %w", err)
	}
	defer src.Close()

	dm, err := b.fromStream(src, b.resolveSeparator(path))
	if err != nil {
		return nil, fmt.Errorf("FromFile(%q): %w", path, err)
	}

	return dm, nil
}

// FromReader loads the matrix from an already-open text stream. The stream
// is read exactly once and need not be seekable; decompression (if any) is
// the caller's collaborator. Separator precedence: explicit value, else the
// whitespace-run default (there is no extension to infer from).
// Complexity: O(stream size) time and memory.
func (b Builder) FromReader(r io.Reader) (*DataMatrix, error) {
	sep := SepWhitespace
	if b.sepSet {
		sep = b.sep
	}
	dm, err := b.fromStream(r, sep)
	if err != nil {
		return nil, fmt.Errorf("FromReader: %w", err)
	}

	return dm, nil
}

// FromData turns a 1-D slice of values into a square DataMatrix, filling the
// k×k grid in row-major order where k² must equal len(values). Labels come
// from Labels() or are generated as "row-1".."row-k" / "col-1".."col-k".
// Complexity: O(len(values)).
func (b Builder) FromData(values []float64) (*DataMatrix, error) {
	dm, err := b.squareFromValues(values)
	if err != nil {
		return nil, fmt.Errorf("FromData: %w", err)
	}

	return dm, nil
}

// fromStream runs the shared pipeline: tokenize + detect, then dispatch on
// the detected shape and the configured mode.
// Complexity: O(input) time and memory.
func (b Builder) fromStream(r io.Reader, sep rune) (*DataMatrix, error) {
	// Sizing prerequisites: tokenize everything once, fixing the shape.
	recs, sh, err := scanRecords(r, sep, b.skipHeader)
	if err != nil {
		return nil, err
	}
	// No data lines at all ⇒ nothing to size the grid from.
	if len(recs) == 0 {
		return nil, fmt.Errorf("no data lines: %w", ErrInvalidDimensions)
	}

	switch {
	case sh == shapeOneColumn:
		return b.buildOneColumn(recs)
	case b.mode() == modeIndexDriven:
		return b.buildIndexDriven(recs)
	default:
		return b.buildLabelDriven(recs)
	}
}

// buildLabelDriven assembles a matrix where grid coordinates derive from
// registry order-of-appearance of string labels (3-column form, or 5-column
// form with index fields treated as inert hints).
// Stage 1 (Size): intern every row/column label, ignoring values. Symmetric
// builds intern BOTH labels into the row registry and clone it for columns.
// Stage 2 (Allocate): grid at the now-known registry sizes.
// Stage 3 (Fill): resolve coordinates, parse values, write (with mirror).
// Complexity: O(records) time, O(labels² ) grid memory.
func (b Builder) buildLabelDriven(recs []record) (*DataMatrix, error) {
	var (
		rowReg = newLabelRegistry() // row label → index
		colReg = newLabelRegistry() // column label → index (unused when symmetric)
		rec    record               // current record
		rl, cl string               // current row/column labels
		err    error                // placeholder
	)

	// --- Stage 1: sizing pass (labels only, values ignored) ---
	for _, rec = range recs {
		if rl, err = fieldAt(rec, b.rowLabelCol); err != nil {
			return nil, err
		}
		if cl, err = fieldAt(rec, b.colLabelCol); err != nil {
			return nil, err
		}
		rowReg.intern(rl)
		if b.symmetric {
			// One shared registry: both endpoints land in the row registry.
			rowReg.intern(cl)
		} else {
			colReg.intern(cl)
		}
	}
	if b.symmetric {
		colReg = rowReg.clone()
	}

	// --- Stage 2: allocate the grid at fixed dimensions ---
	g, err := newGrid(rowReg.size(), colReg.size())
	if err != nil {
		return nil, err
	}

	// --- Stage 3: fill pass ---
	var (
		i, j int     // resolved grid coordinates
		tok  string  // raw value token
		v    float64 // parsed value
	)
	for _, rec = range recs {
		rl, _ = fieldAt(rec, b.rowLabelCol) // validated in Stage 1
		cl, _ = fieldAt(rec, b.colLabelCol)
		if tok, err = fieldAt(rec, b.dataCol); err != nil {
			return nil, err
		}
		if v, err = strconv.ParseFloat(tok, 64); err != nil {
			return nil, fmt.Errorf("line %d: value %q: %w", rec.line, tok, ErrParseValue)
		}
		i, _ = rowReg.indexOf(rl) // interned in Stage 1
		j, _ = colReg.indexOf(cl)
		if err = g.set(i, j, v); err != nil {
			return nil, err
		}
		if b.symmetric {
			if err = g.set(j, i, v); err != nil {
				return nil, err
			}
		}
	}

	return &DataMatrix{grid: g, rowReg: rowReg, colReg: colReg}, nil
}

// buildIndexDriven assembles a matrix where grid coordinates come directly
// from explicit integer fields, bypassing label-order assignment. Dimensions
// derive from the maximum index seen; the sizing pass is still performed
// over all records to avoid silent truncation.
// Stage 1 (Size): parse indices, track maxima, register labels at their
// claimed indices (first assignment wins).
// Stage 2 (Allocate): grid at (maxRow+1)×(maxCol+1), squared for symmetric.
// Stage 3 (Fill): write values at the parsed coordinates (with mirror).
// Complexity: O(records) time, O(dims²) grid memory.
func (b Builder) buildIndexDriven(recs []record) (*DataMatrix, error) {
	var (
		rowReg         = newLabelRegistry() // row label → claimed index
		colReg         = newLabelRegistry() // column label → claimed index
		maxRow, maxCol = -1, -1             // highest indices seen
		coords         = make([][2]int, len(recs))
		rec            record
		rl, cl         string
		tok            string
		i, j           int
		n              int
		err            error
	)

	// --- Stage 1: sizing pass (indices + labels, values ignored) ---
	for n, rec = range recs {
		if tok, err = fieldAt(rec, b.rowIdxCol); err != nil {
			return nil, err
		}
		if i, err = parseIndex(rec, tok); err != nil {
			return nil, err
		}
		if tok, err = fieldAt(rec, b.colIdxCol); err != nil {
			return nil, err
		}
		if j, err = parseIndex(rec, tok); err != nil {
			return nil, err
		}
		if rl, err = fieldAt(rec, b.rowLabelCol); err != nil {
			return nil, err
		}
		if cl, err = fieldAt(rec, b.colLabelCol); err != nil {
			return nil, err
		}
		rowReg.internAt(rl, i)
		if b.symmetric {
			rowReg.internAt(cl, j)
		} else {
			colReg.internAt(cl, j)
		}
		if i > maxRow {
			maxRow = i
		}
		if j > maxCol {
			maxCol = j
		}
		coords[n] = [2]int{i, j}
	}

	// --- Stage 2: fix dimensions and allocate ---
	nrows, ncols := maxRow+1, maxCol+1
	if b.symmetric {
		// Square the grid on the larger side; one shared registry.
		if ncols > nrows {
			nrows = ncols
		}
		ncols = nrows
		rowReg.padTo(nrows)
		colReg = rowReg.clone()
	} else {
		rowReg.padTo(nrows)
		colReg.padTo(ncols)
	}
	g, err := newGrid(nrows, ncols)
	if err != nil {
		return nil, err
	}

	// --- Stage 3: fill pass ---
	var v float64
	for n, rec = range recs {
		if tok, err = fieldAt(rec, b.dataCol); err != nil {
			return nil, err
		}
		if v, err = strconv.ParseFloat(tok, 64); err != nil {
			return nil, fmt.Errorf("line %d: value %q: %w", rec.line, tok, ErrParseValue)
		}
		i, j = coords[n][0], coords[n][1]
		if err = g.set(i, j, v); err != nil {
			return nil, err
		}
		if b.symmetric {
			if err = g.set(j, i, v); err != nil {
				return nil, err
			}
		}
	}

	return &DataMatrix{grid: g, rowReg: rowReg, colReg: colReg}, nil
}

// buildOneColumn assembles a square matrix from single-value records filled
// in row-major appearance order: the k-th value lands at (k/n, k%n) for the
// n×n grid where n² equals the record count.
// Complexity: O(records).
func (b Builder) buildOneColumn(recs []record) (*DataMatrix, error) {
	var (
		values = make([]float64, 0, len(recs))
		rec    record
		v      float64
		err    error
	)
	for _, rec = range recs {
		// Shape detection guarantees exactly one field per record.
		if v, err = strconv.ParseFloat(rec.fields[0], 64); err != nil {
			return nil, fmt.Errorf("line %d: value %q: %w", rec.line, rec.fields[0], ErrParseValue)
		}
		values = append(values, v)
	}

	return b.squareFromValues(values)
}

// squareFromValues is the shared kernel for buildOneColumn and FromData.
// Stage 1 (Validate): the value count must be a perfect square n².
// Stage 2 (Labels): explicit labels must have length n; otherwise generate
// "row-1".."row-n" and "col-1".."col-n". Explicit labels are shared by rows
// and columns (one registry for both).
// Stage 3 (Fill): row-major write of the n×n grid.
// Complexity: O(len(values)).
func (b Builder) squareFromValues(values []float64) (*DataMatrix, error) {
	// Stage 1: perfect-square check.
	n := isqrt(len(values))
	if n*n != len(values) {
		return nil, fmt.Errorf("%d value(s): %w", len(values), ErrBadShape)
	}

	// Stage 2: resolve the label registries.
	var rowReg, colReg *labelRegistry
	if b.labels != nil {
		if len(b.labels) != n {
			return nil, fmt.Errorf("%d label(s) for a %d×%d matrix: %w", len(b.labels), n, n, ErrLabelMismatch)
		}
		rowReg = fromLabels(b.labels)
		colReg = rowReg.clone()
	} else {
		rows := make([]string, n)
		cols := make([]string, n)
		for i := 0; i < n; i++ {
			rows[i] = fmt.Sprintf("row-%d", i+1)
			cols[i] = fmt.Sprintf("col-%d", i+1)
		}
		rowReg = fromLabels(rows)
		colReg = fromLabels(cols)
	}

	// Stage 3: allocate and fill row-major.
	g, err := newGrid(n, n)
	if err != nil {
		return nil, err
	}
	var k int
	for k = range values {
		if err = g.set(k/n, k%n, values[k]); err != nil {
			return nil, err
		}
	}

	return &DataMatrix{grid: g, rowReg: rowReg, colReg: colReg}, nil
}

// parseIndex parses a non-negative integer grid index token, failing with
// ErrMalformedLine (an index is structure, not data — unlike the value
// field, which fails with ErrParseValue).
// Complexity: O(len(tok)).
func parseIndex(rec record, tok string) (int, error) {
	idx, err := strconv.Atoi(tok)
	if err != nil || idx < 0 {
		return 0, fmt.Errorf("line %d %q: index %q: %w", rec.line, rec.raw, tok, ErrMalformedLine)
	}

	return idx, nil
}

// isqrt returns the integer square root of n (floor).
// Complexity: O(log n) via monotone narrowing; exact for all int inputs,
// unlike a float sqrt round-trip.
func isqrt(n int) int {
	if n < 0 {
		return 0
	}
	// Narrow from a safe overestimate; n is a slice length, so small.
	r := 0
	for (r+1)*(r+1) <= n {
		r++
	}

	return r
}
