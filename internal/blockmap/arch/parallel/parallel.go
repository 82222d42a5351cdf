// Package parallel registers the worker-pool block strategy.
//
// A block is cut into contiguous chunks that the caller and the pool's
// workers claim in turn. Each chunk writes a disjoint range of dst.
package parallel

import (
	"sync"

	"github.com/cwbudde/algo-fastmath/internal/blockmap/registry"
	"github.com/cwbudde/algo-fastmath/internal/cpu"
	"github.com/cwbudde/algo-fastmath/internal/workerpool"
)

func init() {
	registry.Global.Register(registry.OpEntry{
		Name:     "parallel",
		Level:    cpu.LevelParallel,
		Priority: 10,
		Apply:    Apply,
	})
}

// MinChunk is the shortest chunk the shared pool hands to a worker.
const MinChunk = 256

// sharedPool is created on first parallel block and lives for the process.
var sharedPool = sync.OnceValue(func() *workerpool.Pool {
	return workerpool.New(0, MinChunk)
})

// Apply runs block over dst and src split across the shared worker pool.
// Slices must have equal length. Panics if lengths differ.
func Apply(dst, src []float32, block registry.BlockFunc) {
	ApplyWith(sharedPool(), dst, src, block)
}

// ApplyWith is Apply on an explicit pool.
func ApplyWith(pool *workerpool.Pool, dst, src []float32, block registry.BlockFunc) {
	if len(dst) != len(src) {
		panic("blockmap: slice length mismatch")
	}
	pool.Map(dst, src, block)
}
