// SPDX-License-Identifier: MIT

package datamatrix

// Test-Bridge (White-Box) for Private Kernels
//
// Purpose:
//   - Expose UNEXPORTED tokenizer/detector/registry/grid kernels to
//     datamatrix_test ONLY, enabling white-box verification without widening
//     the production API.
//
// Risks & Maintenance:
//   - Keep the bridged signatures in sync with the private kernels; tests
//     will catch drift.

var (
	// ExportedSplitFields exposes splitFields for white-box tests.
	ExportedSplitFields = splitFields
	// ExportedSkippable exposes skippable for white-box tests.
	ExportedSkippable = skippable
	// ExportedGuessSeparator exposes guessSeparator for white-box tests.
	ExportedGuessSeparator = guessSeparator
	// ExportedOpenFile exposes openFile for white-box tests.
	ExportedOpenFile = openFile
	// ExportedIsqrt exposes isqrt for white-box tests.
	ExportedIsqrt = isqrt
)

// Panic message exports to avoid "magic strings" in tests.
const (
	PanicNegativeColumn_TestOnly = panicNegativeColumn
	PanicNilLabels_TestOnly      = panicNilLabels
)

// DetectShape_TestOnly forwards to the private detectShape kernel and
// reports the expected per-line field count of the detected shape.
func DetectShape_TestOnly(fieldCount int) (int, error) {
	sh, err := detectShape(fieldCount)

	return sh.fieldCount(), err
}

// RegistrySnapshot_TestOnly runs an intern sequence through a fresh registry
// and returns the resulting inverse label sequence.
func RegistrySnapshot_TestOnly(labels []string) []string {
	r := newLabelRegistry()
	for _, l := range labels {
		r.intern(l)
	}

	return r.toLabels()
}

// RegistryInternAt_TestOnly runs explicit-index assignments through a fresh
// registry, pads it to n slots, and returns the inverse label sequence.
func RegistryInternAt_TestOnly(assign map[int]string, order []int, n int) []string {
	r := newLabelRegistry()
	for _, idx := range order {
		r.internAt(assign[idx], idx)
	}
	r.padTo(n)

	return r.toLabels()
}

// GridRoundTrip_TestOnly allocates an r×c grid, applies the writes, and
// probes (pi, pj), returning the read result.
func GridRoundTrip_TestOnly(r, c int, writes [][3]float64, pi, pj int) (float64, bool, error) {
	g, err := newGrid(r, c)
	if err != nil {
		return 0, false, err
	}
	for _, w := range writes {
		if err = g.set(int(w[0]), int(w[1]), w[2]); err != nil {
			return 0, false, err
		}
	}
	v, ok := g.at(pi, pj)

	return v, ok, nil
}
