// Package registry provides the implementation registry for block dispatch.
//
// A block operation applies a scalar kernel to every element of a float32
// slice. Strategies for running such a block (a serial loop, a split across a
// worker pool) register themselves via init() functions, and callers select
// the best strategy for the current CPU features at construction time.
package registry

import (
	"sync"

	"github.com/cwbudde/algo-fastmath/internal/cpu"
)

// BlockFunc applies a kernel elementwise: dst[i] = kernel(src[i]).
// dst and src have equal length and are either identical or disjoint.
type BlockFunc func(dst, src []float32)

// ApplyFunc runs block over dst and src, possibly in several sub-slices.
// Every element is processed exactly once; the order is unspecified.
type ApplyFunc func(dst, src []float32, block BlockFunc)

// OpEntry represents a registered block strategy.
type OpEntry struct {
	// Name is a human-readable identifier (e.g., "serial", "parallel").
	Name string

	// Level is the execution level this strategy requires.
	Level cpu.Level

	// Priority determines selection order when multiple compatible strategies
	// exist. Higher priority is preferred. Serial: 0, parallel: 10.
	Priority int

	// Apply runs a block with this strategy.
	Apply ApplyFunc
}

// OpRegistry manages the registration and lookup of block strategies.
type OpRegistry struct {
	mu      sync.RWMutex
	entries []OpEntry
	sorted  bool // true if entries are sorted by priority (descending)
}

// Global is the default registry instance used by the fastmath engine.
var Global = &OpRegistry{}

// Register adds a strategy to the registry.
//
// Typically called from init() functions. Safe to call concurrently, but all
// registrations should complete before the first call to Lookup().
func (r *OpRegistry) Register(entry OpEntry) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.entries = append(r.entries, entry)
	r.sorted = false
}

// Lookup returns the highest-priority entry compatible with features,
// or nil if nothing compatible is registered.
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
		if cpu.Supports(features, entry.Level) {
			return entry
		}
	}

	return nil
}

// sortByPriority sorts entries by priority in descending order.
// Must be called with r.mu held (write lock).
func (r *OpRegistry) sortByPriority() {
	// Insertion sort, the registry holds a handful of entries.
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

// ListEntries returns a copy of all registered entries.
// This function is primarily intended for testing and debugging.
func (r *OpRegistry) ListEntries() []OpEntry {
	r.mu.RLock()
	defer r.mu.RUnlock()

	entries := make([]OpEntry, len(r.entries))
	copy(entries, r.entries)
	return entries
}

// Reset clears all registered entries.
// This function is intended for testing purposes only.
func (r *OpRegistry) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.entries = nil
	r.sorted = false
}
