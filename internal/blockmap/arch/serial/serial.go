// Package serial registers the single-goroutine block strategy.
package serial

import (
	"github.com/cwbudde/algo-fastmath/internal/blockmap/registry"
	"github.com/cwbudde/algo-fastmath/internal/cpu"
)

func init() {
	registry.Global.Register(registry.OpEntry{
		Name:     "serial",
		Level:    cpu.LevelSerial,
		Priority: 0,
		Apply:    Apply,
	})
}

// Apply runs block over the whole slice on the calling goroutine.
// Slices must have equal length. Panics if lengths differ.
func Apply(dst, src []float32, block registry.BlockFunc) {
	if len(dst) != len(src) {
		panic("blockmap: slice length mismatch")
	}
	if len(src) == 0 {
		return
	}
	block(dst, src)
}
