// SPDX-License-Identifier: MIT

// Package datamatrix: input sources — file opening, transparent
// decompression, and separator inference from the file extension.
// The rest of the pipeline never observes compression: openFile yields a
// plain line-readable stream regardless of the on-disk encoding.
package datamatrix

import (
	"compress/bzip2"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
	"github.com/ulikunitz/xz"
)

// compressionExt reports whether ext (lowercase, no dot) names a recognized
// compression suffix that must be peeled before extension-based separator
// inference (e.g. "data.csv.gz" infers from ".csv").
// Complexity: O(1).
func compressionExt(ext string) bool {
	switch ext {
	case "gz", "bz2", "xz", "zst", "zip":
		return true
	default:
		return false
	}
}

// guessSeparator infers a field separator from the filename extension,
// peeling one compression suffix first. Supported (case-insensitive):
//
//	csv → ','   tsv, tab → '\t'   psv → '|'   ssv → ';'   dat → ' '
//
// Anything else falls back to whitespace-run splitting. An explicit
// Builder.Separator always wins over this inference.
// Complexity: O(len(path)).
func guessSeparator(path string) rune {
	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(path), "."))
	if compressionExt(ext) {
		// Peel one compression layer: extension of the stem of "x.csv.gz" is ".csv".
		stem := strings.TrimSuffix(path, filepath.Ext(path))
		ext = strings.ToLower(strings.TrimPrefix(filepath.Ext(stem), "."))
	}

	switch ext {
	case "csv":
		return SepComma
	case "tsv", "tab":
		return SepTab
	case "psv":
		return SepPipe
	case "ssv":
		return SepSemicolon
	default:
		// "dat" and unknown extensions both mean whitespace-run.
		return SepWhitespace
	}
}

// sourceReader couples a decompressing reader with everything that must be
// closed underneath it. Close releases in reverse wrap order.
type sourceReader struct {
	io.Reader
	closers []io.Closer // innermost last; closed in reverse
}

// Close closes wrapped layers outermost-first; the first error wins.
// Complexity: O(len(closers)).
func (s *sourceReader) Close() error {
	var first error
	for i := len(s.closers) - 1; i >= 0; i-- {
		if err := s.closers[i].Close(); err != nil && first == nil {
			first = err
		}
	}

	return first
}

// openFile opens path for reading, wrapping the stream with the matching
// decompressing reader when the extension names a recognized compression
// format (.gz, .bz2, .xz, .zst).
// Stage 1 (Validate): reject empty paths early with ErrEmptyPath.
// Stage 2 (Open): os.Open; I/O failures surface immediately, never retried.
// Stage 3 (Wrap): select the decompressor by extension; unrecognized
// extensions read the file as plain text.
// Complexity: O(1) beyond the underlying open.
func openFile(path string) (io.ReadCloser, error) {
	// Stage 1: empty path is a usage error, not an os.PathError.
	if path == "" {
		return nil, fmt.Errorf("openFile: %w", ErrEmptyPath)
	}

	// Stage 2: open the raw file.
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("openFile(%q): %w", path, err)
	}

	// Stage 3: wrap by compression extension.
	switch strings.ToLower(strings.TrimPrefix(filepath.Ext(path), ".")) {
	case "gz":
		zr, zerr := gzip.NewReader(f)
		if zerr != nil {
			f.Close()
			return nil, fmt.Errorf("openFile(%q): gzip: %w", path, zerr)
		}

		return &sourceReader{Reader: zr, closers: []io.Closer{f, zr}}, nil
	case "bz2":
		// stdlib bzip2 is decode-only and needs no Close of its own.
		return &sourceReader{Reader: bzip2.NewReader(f), closers: []io.Closer{f}}, nil
	case "xz":
		xr, xerr := xz.NewReader(f)
		if xerr != nil {
			f.Close()
			return nil, fmt.Errorf("openFile(%q): xz: %w", path, xerr)
		}

		return &sourceReader{Reader: xr, closers: []io.Closer{f}}, nil
	case "zst":
		zr, zerr := zstd.NewReader(f)
		if zerr != nil {
			f.Close()
			return nil, fmt.Errorf("openFile(%q): zstd: %w", path, zerr)
		}

		return &sourceReader{Reader: zr, closers: []io.Closer{f, closerFunc(func() error { zr.Close(); return nil })}}, nil
	default:
		return f, nil
	}
}

// closerFunc adapts a plain func to io.Closer (zstd's Close returns nothing).
type closerFunc func() error

// Close invokes the wrapped function.
func (fn closerFunc) Close() error { return fn() }
