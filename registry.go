// SPDX-License-Identifier: MIT

// Package datamatrix: label registry — stable label↔index mapping.
// Built single-threaded during one build pass; read-only and freely shareable
// afterward. There is no removal: once assigned, a label's index never
// changes.
package datamatrix

// labelRegistry assigns each distinct label a zero-based index on first
// sighting, in order of appearance, and supports both lookup directions.
// Row and column registries are independent instances; symmetric and
// single-column builds share one registry by cloning.
type labelRegistry struct {
	index  map[string]int // label → index
	labels []string       // index → label (inverse, appearance order)
}

// newLabelRegistry returns an empty registry ready for interning.
// Complexity: O(1).
func newLabelRegistry() *labelRegistry {
	return &labelRegistry{index: make(map[string]int)}
}

// intern returns the existing index for label, or assigns the next sequential
// index and appends label to the inverse sequence.
// Complexity: O(1) expected (hash map).
func (r *labelRegistry) intern(label string) int {
	// Return the existing assignment untouched (first sighting wins).
	if idx, ok := r.index[label]; ok {
		return idx
	}
	// Next sequential index equals the current size.
	idx := len(r.labels)
	r.index[label] = idx
	r.labels = append(r.labels, label)

	return idx
}

// internAt records label at an explicit index (index-driven mode). The first
// assignment for a label wins; later sightings of the same label are ignored.
// The inverse sequence grows as needed; indices never claimed by any record
// keep an empty label.
// Complexity: O(1) amortized; growth is O(idx) worst case.
func (r *labelRegistry) internAt(label string, idx int) {
	// First-assignment-wins, mirroring appearance-order stability.
	if _, ok := r.index[label]; ok {
		return
	}
	r.index[label] = idx
	// Grow the inverse sequence to cover idx; gaps stay empty.
	for len(r.labels) <= idx {
		r.labels = append(r.labels, "")
	}
	r.labels[idx] = label
}

// indexOf returns the index assigned to label, if any.
// Complexity: O(1) expected.
func (r *labelRegistry) indexOf(label string) (int, bool) {
	idx, ok := r.index[label]

	return idx, ok
}

// labelOf returns the label assigned to idx, if any.
// Complexity: O(1).
func (r *labelRegistry) labelOf(idx int) (string, bool) {
	if idx < 0 || idx >= len(r.labels) {
		return "", false
	}

	return r.labels[idx], true
}

// size returns the number of index slots (including empty gaps from
// internAt), which equals the grid dimension this registry produces.
// Complexity: O(1).
func (r *labelRegistry) size() int {
	return len(r.labels)
}

// padTo grows the inverse sequence with empty labels until it covers n
// slots. Used by index-driven builds where the grid dimension comes from the
// maximum index seen, which may exceed the highest index any label claimed.
// Complexity: O(n).
func (r *labelRegistry) padTo(n int) {
	for len(r.labels) < n {
		r.labels = append(r.labels, "")
	}
}

// toLabels returns a fresh copy of the inverse sequence.
// Complexity: O(n) time and memory.
func (r *labelRegistry) toLabels() []string {
	out := make([]string, len(r.labels))
	copy(out, r.labels)

	return out
}

// clone returns a deep copy, used to make row and column registries identical
// in symmetric and single-column builds.
// Complexity: O(n) time and memory.
func (r *labelRegistry) clone() *labelRegistry {
	cp := &labelRegistry{
		index:  make(map[string]int, len(r.index)),
		labels: make([]string, len(r.labels)),
	}
	for label, idx := range r.index {
		cp.index[label] = idx
	}
	copy(cp.labels, r.labels)

	return cp
}

// fromLabels builds a registry from a fixed inverse sequence (explicit labels
// for single-column builds and NewDataMatrix). Duplicate labels keep their
// first index, matching intern semantics.
// Complexity: O(n).
func fromLabels(labels []string) *labelRegistry {
	r := &labelRegistry{
		index:  make(map[string]int, len(labels)),
		labels: make([]string, len(labels)),
	}
	copy(r.labels, labels)
	var i int
	var label string
	for i, label = range labels {
		if _, dup := r.index[label]; dup {
			continue // first assignment wins
		}
		r.index[label] = i
	}

	return r
}
