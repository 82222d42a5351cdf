// Package workerpool runs elementwise float32 block kernels across a fixed
// set of goroutines.
//
// A block is cut into contiguous chunks of at least MinChunk elements. The
// calling goroutine and the pool's workers claim chunks from a shared counter
// until none are left, so a busy pool never stalls a caller.
//
//	pool := workerpool.New(0, 1024)
//	defer pool.Close()
//	pool.Map(dst, src, kernel)
package workerpool

import (
	"runtime"
	"sync"
	"sync/atomic"
)

// Pool owns a fixed set of worker goroutines. Workers live until Close.
type Pool struct {
	workers  int
	minChunk int

	jobs     chan *job
	stopOnce sync.Once
	closed   atomic.Bool
}

// job is one Map call. Chunks are claimed by incrementing next.
type job struct {
	dst, src []float32
	fn       func(dst, src []float32)
	chunk    int
	next     atomic.Int64
	done     sync.WaitGroup
}

// New starts a pool with the given number of workers, GOMAXPROCS if
// workers <= 0. Blocks are never cut into chunks shorter than minChunk
// (minimum 1).
func New(workers, minChunk int) *Pool {
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	if minChunk < 1 {
		minChunk = 1
	}

	p := &Pool{
		workers:  workers,
		minChunk: minChunk,
		jobs:     make(chan *job, workers),
	}
	for range workers {
		go p.loop()
	}
	return p
}

func (p *Pool) loop() {
	for j := range p.jobs {
		j.run()
		j.done.Done()
	}
}

// Workers returns the number of worker goroutines.
func (p *Pool) Workers() int { return p.workers }

// MinChunk returns the shortest chunk a block is cut into.
func (p *Pool) MinChunk() int { return p.minChunk }

// Close stops the workers. It is idempotent and must not race with Map.
// Map on a closed pool runs fn once on the caller.
func (p *Pool) Close() {
	p.stopOnce.Do(func() {
		p.closed.Store(true)
		close(p.jobs)
	})
}

// ChunkSize returns the chunk length Map uses for a block of n elements:
// n split evenly across the workers, but no shorter than MinChunk.
func (p *Pool) ChunkSize(n int) int {
	return max(p.minChunk, (n+p.workers-1)/p.workers)
}

// Map calls fn on matching contiguous sub-slices of dst and src that together
// cover the whole block exactly once, and returns when all calls are done.
// fn must be elementwise. Panics if len(dst) != len(src).
func (p *Pool) Map(dst, src []float32, fn func(dst, src []float32)) {
	if len(dst) != len(src) {
		panic("workerpool: slice length mismatch")
	}
	n := len(src)
	if n == 0 {
		return
	}

	chunk := p.ChunkSize(n)
	chunks := (n + chunk - 1) / chunk
	if chunks == 1 || p.closed.Load() {
		fn(dst, src)
		return
	}

	j := &job{dst: dst, src: src, fn: fn, chunk: chunk}
	helpers := min(p.workers, chunks-1)
	j.done.Add(helpers)
	for range helpers {
		p.jobs <- j
	}
	j.run()
	j.done.Wait()
}

func (j *job) run() {
	n := int64(len(j.src))
	size := int64(j.chunk)
	for {
		start := (j.next.Add(1) - 1) * size
		if start >= n {
			return
		}
		end := min(start+size, n)
		j.fn(j.dst[start:end], j.src[start:end])
	}
}
