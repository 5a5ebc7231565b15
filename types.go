// SPDX-License-Identifier: MIT

// Package datamatrix: domain types shared by the tokenizer, the detector and
// the builder. This file intentionally contains ONLY domain-facing types and
// named constants; errors live in errors.go and configuration in builder.go
// per the package conventions.
package datamatrix

// shape enumerates the recognized record layouts, fixed once from the first
// data line's field count and enforced on every later line.
type shape int

const (
	// shapeUnknown is the zero value before any data line is seen.
	shapeUnknown shape = iota

	// shapeOneColumn is a single numeric value per line; the values fill a
	// square k×k grid in row-major appearance order.
	shapeOneColumn

	// shapeThreeColumn is (row_label, col_label, value) — the general
	// sparse/named form.
	shapeThreeColumn

	// shapeFiveColumn is (row_label, col_label, row_idx, col_idx, value);
	// index fields are inert hints unless index-driven mode is selected.
	shapeFiveColumn
)

// fieldCount returns the exact number of fields every data line of this
// shape must carry. shapeUnknown reports 0.
// Complexity: O(1).
func (s shape) fieldCount() int {
	switch s {
	case shapeOneColumn:
		return 1
	case shapeThreeColumn:
		return 3
	case shapeFiveColumn:
		return 5
	default:
		return 0
	}
}

// mode is the tagged coordinate-resolution variant, selected once by the
// Builder configuration and never inferred per record. Mixing modes within
// one file is undefined; the shape check fails fast on inconsistent lines.
type mode int

const (
	// modeLabelDriven derives grid coordinates from registry
	// order-of-appearance of string labels.
	modeLabelDriven mode = iota

	// modeIndexDriven takes grid coordinates directly from explicit integer
	// fields in the record, bypassing label-order assignment.
	modeIndexDriven
)

// Separator defaults and recognized characters.
const (
	// SepWhitespace selects whitespace-run splitting (strings.Fields
	// semantics). It is the default when no separator can be inferred.
	SepWhitespace = ' '

	// SepComma is the comma separator, inferred for .csv files.
	SepComma = ','

	// SepTab is the tab separator, inferred for .tsv and .tab files.
	SepTab = '\t'

	// SepPipe is the pipe separator, inferred for .psv files.
	SepPipe = '|'

	// SepSemicolon is the semicolon separator, inferred for .ssv files.
	SepSemicolon = ';'
)

// commentPrefix marks a whole-line comment; such lines never count as data.
const commentPrefix = '#'

// record is one tokenized data line carried between the sizing pass and the
// fill pass. The raw text and the 1-based physical line number travel with
// the fields so every error can name its origin.
type record struct {
	line   int      // 1-based physical line number in the source
	raw    string   // raw line text, untrimmed
	fields []string // ordered, trimmed fields
}
