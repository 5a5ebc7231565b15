// SPDX-License-Identifier: MIT
// Package datamatrix: sentinel error set (unified, consistent).
// This file defines ONLY package-level sentinel errors used across the
// package. All operations MUST return these sentinels and tests MUST check
// them via errors.Is. No operation panics on user-triggered error conditions;
// panics are reserved for programmer errors in Builder setters.

package datamatrix

import "errors"

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "datamatrix: ..." for consistency and to
// allow easy grepping across logs. Do NOT %w wrap these sentinels when
// returning directly; if context is essential, wrap with
// fmt.Errorf("ctx: %w", ErrX) at the outer boundary — callers still match
// via errors.Is.
//
// ERROR PRIORITY (documented, enforced in tests):
// io/open -> unsupported shape -> malformed line -> value parse
// -> square-shape -> label mismatch.

var (
	// ErrUnsupportedFormat is returned when the first data line's field count
	// matches none of the recognized record shapes (1, 3 or 5 columns).
	// Usage: if errors.Is(err, ErrUnsupportedFormat) { /* wrong layout */ }.
	ErrUnsupportedFormat = errors.New("datamatrix: unsupported record shape")

	// ErrMalformedLine indicates a data line inconsistent with the already
	// detected shape: wrong field count, a configured column index beyond the
	// available fields, or an unparseable integer index token.
	// The wrapping context names the line number, the raw text, and the
	// expected vs found field counts.
	ErrMalformedLine = errors.New("datamatrix: malformed line")

	// ErrParseValue indicates that the value field of a record is not a valid
	// floating point number. The wrapping context names the line number and
	// the offending token. The whole build aborts (all-or-nothing).
	ErrParseValue = errors.New("datamatrix: invalid numeric value")

	// ErrBadShape is returned by the single-column path when the value count
	// is not a perfect square and therefore cannot fill a k×k grid.
	ErrBadShape = errors.New("datamatrix: value count does not form a square matrix")

	// ErrLabelMismatch signals that explicitly provided labels disagree with
	// the data dimensions (NewDataMatrix shape checks, or Labels() length vs
	// the side of a single-column square matrix).
	ErrLabelMismatch = errors.New("datamatrix: labels do not match data dimensions")

	// ErrInvalidDimensions indicates that requested grid dimensions are
	// non-positive — typically an input with no data lines at all.
	ErrInvalidDimensions = errors.New("datamatrix: dimensions must be > 0")

	// ErrOutOfRange indicates that a row or column index is outside valid
	// bounds on an internal grid write. Read-side accessors report missing
	// cells through their ok result instead.
	ErrOutOfRange = errors.New("datamatrix: index out of range")

	// ErrEmptyPath is returned by FromFile when the path is empty.
	ErrEmptyPath = errors.New("datamatrix: empty file path")
)

// NO DUPLICATE-CELL CONFLICT SENTINEL — INTENTIONAL.
// Repeated records for the same (row, col) pair silently overwrite under
// last-write-wins in stable line order. This is the documented policy, not
// an oversight; tests pin the behavior.
