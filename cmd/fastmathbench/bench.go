package main

import (
	"fmt"
	"io"
	"math"
	"math/rand/v2"
	"text/tabwriter"
	"time"

	"github.com/chewxy/math32"
	"github.com/cwbudde/algo-fastmath/fastmath"
	"github.com/cwbudde/algo-fastmath/internal/cpu"
	"github.com/meko-christian/algo-approx"
)

// kernelCase describes the input domain and comparison functions for one kernel.
type kernelCase struct {
	lo, hi    float64
	logScale  bool
	baseline  func(float32) float32
	approxRef func(float64) float64
	exact     func(float64) float64
}

var cases = map[fastmath.Kernel]kernelCase{
	fastmath.KernelSin: {
		lo: -100, hi: 100,
		baseline: math32.Sin,
		exact:    math.Sin,
	},
	fastmath.KernelCos: {
		lo: -100, hi: 100,
		baseline: math32.Cos,
		exact:    math.Cos,
	},
	fastmath.KernelExp: {
		lo: -80, hi: 80,
		baseline:  math32.Exp,
		approxRef: func(x float64) float64 { return approx.FastExp(x) },
		exact:     math.Exp,
	},
	fastmath.KernelLog: {
		lo: 1e-6, hi: 1e6, logScale: true,
		baseline:  math32.Log,
		approxRef: func(x float64) float64 { return approx.FastLog(x) },
		exact:     math.Log,
	},
	fastmath.KernelSqrt: {
		lo: 1e-6, hi: 1e6, logScale: true,
		baseline:  math32.Sqrt,
		approxRef: func(x float64) float64 { return approx.FastSqrt(x) },
		exact:     math.Sqrt,
	},
	fastmath.KernelRsqrt: {
		lo: 1e-6, hi: 1e6, logScale: true,
		baseline: func(x float32) float32 { return 1 / math32.Sqrt(x) },
		exact:    func(x float64) float64 { return 1 / math.Sqrt(x) },
	},
	fastmath.KernelRcp: {
		lo: 1e-3, hi: 1e3, logScale: true,
		baseline: func(x float32) float32 { return 1 / x },
		exact:    func(x float64) float64 { return 1 / x },
	},
}

// row is one line of the timing table.
type row struct {
	kernel    fastmath.Kernel
	fastNs    float64
	baseNs    float64
	approxNs  float64
	hasApprox bool
	maxAbsErr float64
	maxRelErr float64
}

func (r row) speedup() float64 {
	if r.fastNs == 0 {
		return math.Inf(1)
	}
	return r.baseNs / r.fastNs
}

func printHeader(w io.Writer, eng *fastmath.Engine) error {
	t := eng.Table()
	_, err := fmt.Fprintf(w, "cpu: %s\nengine: table=%d (%s) strategy=%s\n\n",
		cpu.DetectFeatures(), t.Len(), t.Source(), eng.Strategy())
	return err
}

func printTimings(w io.Writer, eng *fastmath.Engine, opts options) error {
	rng := rand.New(rand.NewPCG(opts.seed, opts.seed^0x9e3779b97f4a7c15))

	rows := make([]row, 0, len(opts.kernels))
	for _, k := range opts.kernels {
		c, ok := cases[k]
		if !ok {
			return fmt.Errorf("no benchmark case for kernel %s", k)
		}
		rows = append(rows, measureKernel(eng, k, c, randomInputs(rng, c, opts.n), opts.iters))
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	if _, err := fmt.Fprintf(tw, "Kernel\tfast [ns/elem]\tmath32 [ns/elem]\tSpeedup\tapprox [ns/elem]\tMax abs err\tMax rel err\n"); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(tw, "------\t--------------\t----------------\t-------\t----------------\t-----------\t-----------\n"); err != nil {
		return err
	}
	for _, r := range rows {
		approxCol := "-"
		if r.hasApprox {
			approxCol = fmt.Sprintf("%.3f", r.approxNs)
		}
		if _, err := fmt.Fprintf(tw, "%s\t%.3f\t%.3f\t%.2fx\t%s\t%.3g\t%.3g\n",
			r.kernel, r.fastNs, r.baseNs, r.speedup(), approxCol, r.maxAbsErr, r.maxRelErr,
		); err != nil {
			return err
		}
	}
	return tw.Flush()
}

func randomInputs(rng *rand.Rand, c kernelCase, n int) []float32 {
	src := make([]float32, n)
	if c.logScale {
		lo, hi := math.Log(c.lo), math.Log(c.hi)
		for i := range src {
			src[i] = float32(math.Exp(lo + (hi-lo)*rng.Float64()))
		}
		return src
	}
	for i := range src {
		src[i] = float32(c.lo + (c.hi-c.lo)*rng.Float64())
	}
	return src
}

func measureKernel(eng *fastmath.Engine, k fastmath.Kernel, c kernelCase, src []float32, iters int) row {
	n := len(src)
	dst := make([]float32, n)
	perElem := func(d time.Duration) float64 {
		return float64(d.Nanoseconds()) / float64(iters*n)
	}

	block := eng.Block(k)
	start := time.Now()
	for range iters {
		block(dst, src)
	}
	r := row{kernel: k, fastNs: perElem(time.Since(start))}
	r.maxAbsErr, r.maxRelErr = maxErrors(dst, src, c.exact)

	base := make([]float32, n)
	start = time.Now()
	for range iters {
		for i, x := range src {
			base[i] = c.baseline(x)
		}
	}
	r.baseNs = perElem(time.Since(start))

	if c.approxRef != nil {
		out := make([]float64, n)
		start = time.Now()
		for range iters {
			for i, x := range src {
				out[i] = c.approxRef(float64(x))
			}
		}
		r.approxNs = perElem(time.Since(start))
		r.hasApprox = true
	}
	return r
}

// maxErrors compares got against exact evaluated in float64 at the
// float32 inputs. Relative error skips points where the exact value is 0.
func maxErrors(got, src []float32, exact func(float64) float64) (maxAbs, maxRel float64) {
	for i, x := range src {
		want := exact(float64(x))
		diff := math.Abs(float64(got[i]) - want)
		if diff > maxAbs {
			maxAbs = diff
		}
		if want != 0 {
			if rel := diff / math.Abs(want); rel > maxRel {
				maxRel = rel
			}
		}
	}
	return maxAbs, maxRel
}
