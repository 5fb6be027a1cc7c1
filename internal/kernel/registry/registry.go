// Package registry provides the dispatch table for block kernels.
//
// Each architecture package registers one OpEntry per SIMD level from an
// init() function. Nodes never call an entry directly by name: they resolve
// the best entry for the detected CPU once and keep it for their lifetime,
// so the accelerated path is only reachable after the feature query has
// succeeded.
package registry

import (
	"sync"

	"github.com/cwbudde/algo-engine/internal/cpu"
)

// ScaleFn writes dst[i] = src[i] * gain for i in [0, frames).
type ScaleFn func(dst, src []float64, frames int, gain float64)

// MulFn writes dst[i] = src[i] * gain[i] for i in [0, frames).
type MulFn func(dst, src, gain []float64, frames int)

// AccumulateFn writes dst[i] += src[i] for i in [0, frames).
type AccumulateFn func(dst, src []float64, frames int)

// AddFn writes dst[i] = a[i] + b[i] for i in [0, frames).
type AddFn func(dst, a, b []float64, frames int)

// OpEntry is one registered kernel implementation.
//
// Vectorized entries may touch samples past frames, up to the next multiple
// of Width, when every slice has room for it. Those trailing samples are
// don't-care and no consumer reads them.
type OpEntry struct {
	// Name is a human-readable identifier ("generic", "avx", "neon").
	Name string

	// SIMDLevel is the instruction set the entry requires.
	SIMDLevel cpu.SIMDLevel

	// Priority orders compatible entries; higher wins. Suggested values:
	//   - generic: 0
	//   - SSE2: 10
	//   - NEON: 15
	//   - AVX: 20
	Priority int

	// Width is the loop stride in samples.
	Width int

	Scale      ScaleFn
	Mul        MulFn
	Accumulate AccumulateFn
	Add        AddFn
}

// Complete reports whether every operation is populated.
func (e *OpEntry) Complete() bool {
	return e.Scale != nil && e.Mul != nil && e.Accumulate != nil && e.Add != nil
}

// OpRegistry stores available implementations.
type OpRegistry struct {
	mu      sync.RWMutex
	entries []OpEntry
	sorted  bool
}

// Global is the default kernel registry.
var Global = &OpRegistry{}

// Register adds an implementation entry.
//
// Safe for concurrent use, but all registrations should complete (they run
// from init) before the first Lookup.
func (r *OpRegistry) Register(entry OpEntry) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if entry.Width < 1 {
		entry.Width = 1
	}

	r.entries = append(r.entries, entry)
	r.sorted = false
}

// Lookup returns the highest-priority implementation supported by features,
// or nil if nothing is compatible.
func (r *OpRegistry) Lookup(features cpu.Features) *OpEntry {
	r.mu.Lock()
	if !r.sorted {
		r.sortByPriority()
		r.sorted = true
	}
	r.mu.Unlock()

	r.mu.RLock()
	defer r.mu.RUnlock()

	for i := range r.entries {
		entry := &r.entries[i]
		if cpu.Supports(features, entry.SIMDLevel) {
			return entry
		}
	}

	return nil
}

// Named returns the entry with the given name, or nil.
func (r *OpRegistry) Named(name string) *OpEntry {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for i := range r.entries {
		if r.entries[i].Name == name {
			return &r.entries[i]
		}
	}

	return nil
}

// sortByPriority sorts entries by priority in descending order.
// Must be called with r.mu held (write lock).
func (r *OpRegistry) sortByPriority() {
	// Insertion sort; there are only a handful of entries.
	for i := 1; i < len(r.entries); i++ {
		key := r.entries[i]
		j := i - 1
		for j >= 0 && r.entries[j].Priority < key.Priority {
			r.entries[j+1] = r.entries[j]
			j--
		}
		r.entries[j+1] = key
	}
}

// ListEntries returns a copy of entries for tests/debugging.
func (r *OpRegistry) ListEntries() []OpEntry {
	r.mu.RLock()
	defer r.mu.RUnlock()

	entries := make([]OpEntry, len(r.entries))
	copy(entries, r.entries)
	return entries
}

// Reset clears all entries. Intended for tests.
func (r *OpRegistry) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.entries = nil
	r.sorted = false
}
