// SPDX-License-Identifier: MIT

// Package datamatrix_test: benchmarks for the build pipeline and the
// label-based read path.
package datamatrix_test

import (
	"fmt"
	"strings"
	"testing"

	dm "github.com/katalvlaran/datamatrix"
)

// syntheticThreeColumn renders n² records over n distinct labels.
func syntheticThreeColumn(n int) string {
	var sb strings.Builder
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			fmt.Fprintf(&sb, "v%d v%d %d.5\n", i, j, i+j)
		}
	}

	return sb.String()
}

// BenchmarkBuildLabelDriven measures the full two-pass pipeline on a dense
// 100×100 label-driven input.
func BenchmarkBuildLabelDriven(b *testing.B) {
	input := syntheticThreeColumn(100)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := dm.NewBuilder().FromReader(strings.NewReader(input)); err != nil {
			b.Fatal(err)
		}
	}
}

// BenchmarkGetByLabel measures the label-resolving read path on a built
// matrix.
func BenchmarkGetByLabel(b *testing.B) {
	m, err := dm.NewBuilder().FromReader(strings.NewReader(syntheticThreeColumn(100)))
	if err != nil {
		b.Fatal(err)
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, ok := m.GetByLabel("v50", "v51"); !ok {
			b.Fatal("cell unexpectedly unset")
		}
	}
}
