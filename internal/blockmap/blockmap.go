// Package blockmap selects how elementwise float32 blocks are executed.
//
// Importing this package registers every available strategy with
// registry.Global. Select picks the best one for a set of CPU features.
package blockmap

import (
	"github.com/cwbudde/algo-fastmath/internal/blockmap/registry"
	"github.com/cwbudde/algo-fastmath/internal/cpu"

	// Strategies register themselves in init().
	_ "github.com/cwbudde/algo-fastmath/internal/blockmap/arch/parallel"
	_ "github.com/cwbudde/algo-fastmath/internal/blockmap/arch/serial"
)

// Select returns the highest-priority strategy compatible with features.
// Panics if no strategy is registered, which indicates a broken build.
func Select(features cpu.Features) registry.OpEntry {
	entry := registry.Global.Lookup(features)
	if entry == nil {
		panic("blockmap: no block strategy registered")
	}
	return *entry
}
