// SPDX-License-Identifier: MIT

// Package datamatrix: tokenizer and format detector.
// One physical line of text becomes an ordered sequence of trimmed fields
// given a separator (single rune, or whitespace-run). The record shape is fixed
// once from the first data line's field count and enforced on every later
// line — fail-fast, no per-record shape switching.
package datamatrix

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// splitFields turns one line into trimmed fields.
// Behavior highlights:
//   - sep == SepWhitespace ⇒ whitespace-run splitting (strings.Fields), so
//     runs of spaces/tabs collapse and leading/trailing blanks vanish;
//   - any other rune ⇒ strings.Split on that rune with per-field trimming.
//
// Complexity: O(len(line)).
func splitFields(line string, sep rune) []string {
	if sep == SepWhitespace {
		return strings.Fields(line)
	}
	parts := strings.Split(line, string(sep))
	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
	}

	return parts
}

// skippable reports whether a physical line carries no data: blank, or a
// whole-line comment starting with '#'.
// Complexity: O(len(line)).
func skippable(line string) bool {
	if strings.TrimSpace(line) == "" {
		return true
	}

	return line[0] == byte(commentPrefix)
}

// detectShape maps the first data line's field count onto a recognized
// record shape, or ErrUnsupportedFormat for any other count.
// Complexity: O(1).
func detectShape(fieldCount int) (shape, error) {
	switch fieldCount {
	case 1:
		return shapeOneColumn, nil
	case 3:
		return shapeThreeColumn, nil
	case 5:
		return shapeFiveColumn, nil
	default:
		return shapeUnknown, fmt.Errorf("detectShape: %d field(s) per line: %w", fieldCount, ErrUnsupportedFormat)
	}
}

// scanRecords streams all lines from r, tokenizes data lines, detects the
// record shape from the first one and validates every later line against it.
// Implementation:
//   - Stage 1: scan physical lines, tracking 1-based line numbers.
//   - Stage 2: skip blanks/comments; optionally discard the first data line
//     as a header BEFORE shape detection (a header may be ragged and must
//     never register labels or trigger value parsing).
//   - Stage 3: detect shape on the first surviving line, then enforce an
//     identical field count on all others (ErrMalformedLine with expected vs
//     found counts and the raw text).
//
// DECISION: the sizing pass buffers every tokenized record for replay in the
// fill pass. Buffering costs O(file size) memory but tolerates non-seekable
// sources (pipes, decompression streams); re-reading would be memory-light
// but demands a rewindable source. The buffer is the whole trade-off here.
//
// Complexity: O(total input size) time and memory.
func scanRecords(r io.Reader, sep rune, skipHeader bool) ([]record, shape, error) {
	var (
		sc      = bufio.NewScanner(r) // line scanner over the raw stream
		recs    []record              // buffered tokenized records
		detect  = shapeUnknown        // fixed after the first data line
		lineNo  int                   // 1-based physical line number
		skipped = !skipHeader         // true once the header (if any) is consumed
		line    string                // current raw line
		fields  []string              // current tokenized fields
		err     error                 // detection error placeholder
	)
	// Long data lines are legal; raise the scanner limit beyond the default.
	sc.Buffer(make([]byte, 0, 64*1024), 4*1024*1024)

	for sc.Scan() {
		lineNo++
		line = sc.Text()
		// Blank lines and comments are never data and never count as header.
		if skippable(line) {
			continue
		}
		// Discard the first data line when configured as a header.
		if !skipped {
			skipped = true
			continue
		}
		fields = splitFields(line, sep)
		// Fix the shape from the first data line.
		if detect == shapeUnknown {
			if detect, err = detectShape(len(fields)); err != nil {
				return nil, shapeUnknown, fmt.Errorf("scanRecords: line %d %q: %w", lineNo, line, err)
			}
		} else if len(fields) != detect.fieldCount() {
			// Later lines must match the detected shape exactly.
			return nil, shapeUnknown, fmt.Errorf(
				"scanRecords: line %d %q: expected %d field(s), found %d: %w",
				lineNo, line, detect.fieldCount(), len(fields), ErrMalformedLine)
		}
		recs = append(recs, record{line: lineNo, raw: line, fields: fields})
	}
	if err = sc.Err(); err != nil {
		return nil, shapeUnknown, fmt.Errorf("scanRecords: read: %w", err)
	}

	return recs, detect, nil
}

// fieldAt returns rec.fields[col] or ErrMalformedLine when the configured
// column index points beyond the available fields. Shape detection already
// guarantees uniform field counts, so this fires once per build at most.
// Complexity: O(1).
func fieldAt(rec record, col int) (string, error) {
	if col >= len(rec.fields) {
		return "", fmt.Errorf(
			"line %d %q: need at least %d field(s), found %d: %w",
			rec.line, rec.raw, col+1, len(rec.fields), ErrMalformedLine)
	}

	return rec.fields[col], nil
}
