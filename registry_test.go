// SPDX-License-Identifier: MIT

// Package datamatrix_test contains white-box unit tests for the label
// registry kernel via the test bridge, pinning first-appearance index
// stability and explicit-index assignment semantics.
package datamatrix_test

import (
	"testing"

	dm "github.com/katalvlaran/datamatrix"
)

// TestRegistry_AppearanceOrder verifies that labels receive sequential
// indices in order of first sighting and repeats change nothing.
func TestRegistry_AppearanceOrder(t *testing.T) {
	got := dm.RegistrySnapshot_TestOnly([]string{"B", "A", "B", "C", "A"})
	want := []string{"B", "A", "C"}
	if len(got) != len(want) {
		t.Fatalf("size: got %d, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("label[%d]: got %q, want %q", i, got[i], want[i])
		}
	}
}

// TestRegistry_InternAt verifies explicit-index assignment: first assignment
// wins, gaps stay empty, padding extends with empty labels.
func TestRegistry_InternAt(t *testing.T) {
	assign := map[int]string{0: "A", 3: "D"}
	got := dm.RegistryInternAt_TestOnly(assign, []int{3, 0}, 5)
	want := []string{"A", "", "", "D", ""}
	if len(got) != len(want) {
		t.Fatalf("size: got %d, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("label[%d]: got %q, want %q", i, got[i], want[i])
		}
	}
}
