package parallel

import (
	"sync/atomic"
	"testing"

	"github.com/cwbudde/algo-fastmath/internal/workerpool"
)

func square(dst, src []float32) {
	for i, v := range src {
		dst[i] = v * v
	}
}

func TestApplyMatchesSerialLoop(t *testing.T) {
	for _, n := range []int{0, 1, 3, 64, 1000, 65537} {
		src := make([]float32, n)
		for i := range src {
			src[i] = float32(i%97) - 48.5
		}
		dst := make([]float32, n)

		Apply(dst, src, square)

		for i, v := range src {
			if dst[i] != v*v {
				t.Fatalf("n=%d: dst[%d] = %v, want %v", n, i, dst[i], v*v)
			}
		}
	}
}

func TestApplyInPlace(t *testing.T) {
	pool := workerpool.New(4, 16)
	defer pool.Close()

	buf := make([]float32, 1003)
	want := make([]float32, len(buf))
	for i := range buf {
		buf[i] = float32(i) * 0.25
		want[i] = buf[i] * buf[i]
	}

	ApplyWith(pool, buf, buf, square)

	for i := range buf {
		if buf[i] != want[i] {
			t.Fatalf("buf[%d] = %v, want %v", i, buf[i], want[i])
		}
	}
}

func TestApplyPanicsOnMismatch(t *testing.T) {
	defer func() {
		if r := recover(); r == nil {
			t.Error("Apply should panic on mismatched lengths")
		}
	}()
	Apply(make([]float32, 4), make([]float32, 5), square)
}

func TestApplyWithSplitsLongBlocks(t *testing.T) {
	pool := workerpool.New(4, 16)
	defer pool.Close()

	var calls atomic.Int32
	src := make([]float32, 1003)
	dst := make([]float32, len(src))
	ApplyWith(pool, dst, src, func(d, s []float32) {
		calls.Add(1)
		square(d, s)
	})

	// 1003 elements over 4 workers: chunks of 251.
	if got := calls.Load(); got != 4 {
		t.Fatalf("block called %d times, want 4", got)
	}
}
