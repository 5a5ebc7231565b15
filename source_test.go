// SPDX-License-Identifier: MIT

// Package datamatrix_test: tests for input sources — separator inference
// from extensions (with compression suffix peeling) and transparent
// decompression round-trips through real encoders.
package datamatrix_test

import (
	"errors"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/ulikunitz/xz"

	dm "github.com/katalvlaran/datamatrix"
)

// TestGuessSeparator covers the extension table, case-insensitivity, and
// one-layer compression suffix peeling.
func TestGuessSeparator(t *testing.T) {
	cases := map[string]rune{
		"data.csv":       dm.SepComma,
		"data.CSV":       dm.SepComma,
		"data.tsv":       dm.SepTab,
		"table.tab":      dm.SepTab,
		"log.psv":        dm.SepPipe,
		"semi.ssv":       dm.SepSemicolon,
		"plain.dat":      dm.SepWhitespace,
		"noext":          dm.SepWhitespace,
		"weird.bin":      dm.SepWhitespace,
		"archive.csv.gz": dm.SepComma,
		"a.tsv.bz2":      dm.SepTab,
		"b.psv.xz":       dm.SepPipe,
		"c.ssv.zst":      dm.SepSemicolon,
		"d.csv.zip":      dm.SepComma,
		"bare.gz":        dm.SepWhitespace,
	}
	for path, want := range cases {
		assert.Equal(t, want, dm.ExportedGuessSeparator(path), "path %q", path)
	}
}

// TestOpenFile_EmptyPath pins the ErrEmptyPath fast-fail.
func TestOpenFile_EmptyPath(t *testing.T) {
	_, err := dm.ExportedOpenFile("")
	assert.True(t, errors.Is(err, dm.ErrEmptyPath), "got %v", err)
}

// TestOpenFile_Missing surfaces the underlying os error unretried.
func TestOpenFile_Missing(t *testing.T) {
	_, err := dm.ExportedOpenFile(filepath.Join(t.TempDir(), "absent.csv"))
	assert.True(t, errors.Is(err, os.ErrNotExist), "got %v", err)
}

// TestOpenFile_Plain reads an uncompressed file verbatim.
func TestOpenFile_Plain(t *testing.T) {
	path := filepath.Join(t.TempDir(), "plain.csv")
	require.NoError(t, os.WriteFile(path, []byte("a,b,1.0\n"), 0o644))

	rc, err := dm.ExportedOpenFile(path)
	require.NoError(t, err)
	defer rc.Close()
	got, err := io.ReadAll(rc)
	require.NoError(t, err)
	assert.Equal(t, "a,b,1.0\n", string(got))
}

// TestOpenFile_Gzip round-trips content through a real gzip encoder.
func TestOpenFile_Gzip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "data.csv.gz")
	f, err := os.Create(path)
	require.NoError(t, err)
	zw := gzip.NewWriter(f)
	_, err = zw.Write([]byte("Alice,Bob,1.5\n"))
	require.NoError(t, err)
	require.NoError(t, zw.Close())
	require.NoError(t, f.Close())

	rc, err := dm.ExportedOpenFile(path)
	require.NoError(t, err)
	defer rc.Close()
	got, err := io.ReadAll(rc)
	require.NoError(t, err)
	assert.Equal(t, "Alice,Bob,1.5\n", string(got))
}

// TestOpenFile_Zstd round-trips content through a real zstd encoder.
func TestOpenFile_Zstd(t *testing.T) {
	path := filepath.Join(t.TempDir(), "data.tsv.zst")
	f, err := os.Create(path)
	require.NoError(t, err)
	zw, err := zstd.NewWriter(f)
	require.NoError(t, err)
	_, err = zw.Write([]byte("Alice\tBob\t1.5\n"))
	require.NoError(t, err)
	require.NoError(t, zw.Close())
	require.NoError(t, f.Close())

	rc, err := dm.ExportedOpenFile(path)
	require.NoError(t, err)
	defer rc.Close()
	got, err := io.ReadAll(rc)
	require.NoError(t, err)
	assert.Equal(t, "Alice\tBob\t1.5\n", string(got))
}

// TestOpenFile_Xz round-trips content through a real xz encoder.
func TestOpenFile_Xz(t *testing.T) {
	path := filepath.Join(t.TempDir(), "data.csv.xz")
	f, err := os.Create(path)
	require.NoError(t, err)
	xw, err := xz.NewWriter(f)
	require.NoError(t, err)
	_, err = xw.Write([]byte("Alice,Bob,1.5\n"))
	require.NoError(t, err)
	require.NoError(t, xw.Close())
	require.NoError(t, f.Close())

	rc, err := dm.ExportedOpenFile(path)
	require.NoError(t, err)
	defer rc.Close()
	got, err := io.ReadAll(rc)
	require.NoError(t, err)
	assert.Equal(t, "Alice,Bob,1.5\n", string(got))
}
