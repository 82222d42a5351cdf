package fastmath

import (
	"sync"
	"testing"

	"github.com/cwbudde/algo-fastmath/internal/cpu"
	"github.com/cwbudde/algo-fastmath/internal/testutil"
)

func TestApplyOptions(t *testing.T) {
	tests := []struct {
		name string
		opts []Option
		want Config
	}{
		{
			name: "defaults",
			want: DefaultConfig(),
		},
		{
			name: "table bits",
			opts: []Option{WithTableBits(14)},
			want: func() Config { c := DefaultConfig(); c.TableBits = 14; return c }(),
		},
		{
			name: "invalid values ignored",
			opts: []Option{
				WithTableBits(MinTableBits - 1),
				WithTableBits(MaxTableBits + 1),
				WithTableSource(TableSource(5)),
				WithParallelThreshold(0),
				nil,
			},
			want: DefaultConfig(),
		},
		{
			name: "everything",
			opts: []Option{
				WithTableBits(8),
				WithTableSource(SourceTaylor),
				WithParallel(true),
				WithParallelThreshold(100),
			},
			want: Config{TableBits: 8, TableSource: SourceTaylor, Parallel: true, ParallelThreshold: 100},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ApplyOptions(tt.opts...); got != tt.want {
				t.Fatalf("ApplyOptions = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	if cfg.TableBits != DefaultTableBits {
		t.Fatalf("TableBits = %d, want %d", cfg.TableBits, DefaultTableBits)
	}
	if cfg.ParallelThreshold != DefaultParallelThreshold {
		t.Fatalf("ParallelThreshold = %d, want %d", cfg.ParallelThreshold, DefaultParallelThreshold)
	}
	if cfg.TableSource != defaultTableSource || cfg.Parallel != defaultParallel {
		t.Fatalf("build-tag defaults not applied: %+v", cfg)
	}
}

func TestNewBuildsConfiguredTable(t *testing.T) {
	eng := New(WithTableBits(9), WithTableSource(SourceTaylor))

	if eng.Table().Len() != 512 {
		t.Fatalf("table length = %d, want 512", eng.Table().Len())
	}
	if eng.Table().Source() != SourceTaylor {
		t.Fatalf("table source = %v, want taylor", eng.Table().Source())
	}
	if eng.Config().TableBits != 9 {
		t.Fatalf("Config().TableBits = %d, want 9", eng.Config().TableBits)
	}
}

func TestEngineStrategySelection(t *testing.T) {
	tests := []struct {
		name     string
		features cpu.Features
		parallel bool
		want     string
	}{
		{"hint off", cpu.Features{NumCPU: 8}, false, "serial"},
		{"hint on multi core", cpu.Features{NumCPU: 8}, true, "parallel"},
		{"hint on single core", cpu.Features{NumCPU: 1}, true, "serial"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cpu.SetForcedFeatures(tt.features)
			defer cpu.ResetDetection()

			eng := New(WithParallel(tt.parallel))
			if eng.Strategy() != tt.want {
				t.Fatalf("Strategy = %q, want %q", eng.Strategy(), tt.want)
			}
		})
	}
}

func TestEngineScalarMethodsMatchFunctions(t *testing.T) {
	eng := New()
	xs := testutil.Linspace(-50, 50, 1001)

	for _, x := range xs {
		if !testutil.SameBits(eng.Exp(x), Exp(x)) ||
			!testutil.SameBits(eng.Log(x), Log(x)) ||
			!testutil.SameBits(eng.Sqrt(x), Sqrt(x)) ||
			!testutil.SameBits(eng.Rsqrt(x), Rsqrt(x)) ||
			!testutil.SameBits(eng.Rcp(x), Rcp(x)) {
			t.Fatalf("engine method differs from package function at x=%v", x)
		}
		if !testutil.SameBits(eng.Sin(x), eng.Table().Sin(x)) ||
			!testutil.SameBits(eng.Cos(x), eng.Table().Cos(x)) {
			t.Fatalf("engine trig differs from table at x=%v", x)
		}
	}
}

func TestEngineUnknownKernel(t *testing.T) {
	eng := New()
	if eng.Scalar(Kernel(-1)) != nil || eng.Block(kernelCount) != nil {
		t.Fatal("unknown kernels should return nil functions")
	}
}

func TestEngineConcurrentUse(t *testing.T) {
	eng := New(WithTableBits(10))
	src := testutil.Linspace(-10, 10, 4096)
	want := make([]float32, len(src))
	eng.SinBlock(want, src)

	var wg sync.WaitGroup
	errs := make(chan int, 8)
	for g := 0; g < 8; g++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			dst := make([]float32, len(src))
			eng.SinBlock(dst, src)
			for i := range dst {
				if dst[i] != want[i] {
					errs <- i
					return
				}
			}
		}()
	}
	wg.Wait()
	close(errs)

	for i := range errs {
		t.Fatalf("concurrent SinBlock differs at index %d", i)
	}
}
