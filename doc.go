// Package datamatrix builds dense two-dimensional numeric tables whose rows
// and columns are addressed both by integer position and by string label,
// parsed from delimited text files in several recognized layouts.
//
// The package provides:
//
//   - Builder — a fluent, immutable configuration surface with terminal
//     FromFile / FromReader / FromData operations.
//   - DataMatrix — the finished, immutable artifact: dimensions, row/column
//     label registries, and the optional-cell grid with positional and
//     label-based accessors.
//   - Transparent decompression of .gz, .bz2, .xz and .zst inputs, and
//     separator inference from the file extension (.csv, .tsv, .tab, .psv,
//     .ssv).
//
// Supported record shapes (one record per non-blank, non-comment line):
//
//	1 column  — value                                        square matrix, row-major fill
//	3 columns — row_label col_label value                    sparse/named form
//	5 columns — row_label col_label row_idx col_idx value    indices are hints unless
//	                                                         IndexColumns is configured
//
// Lines starting with '#' are ignored as comments. All parsing is fail-fast:
// a malformed line, an unrecognized shape, or an unparseable value aborts the
// whole build and no partial matrix is ever returned.
//
// Quick example:
//
//	dm, err := datamatrix.NewBuilder().
//		Symmetric(true).
//		FromFile("distances.csv.gz")
//	if err != nil { ... }
//	v, ok := dm.GetByLabel("Tokyo", "New York City")
//
// The finished DataMatrix is immutable and safe for concurrent read-only use.
package datamatrix
