package spur

import (
	"errors"
	"math"
	"testing"

	"github.com/cwbudde/algo-fastmath/dsp/window"
	"github.com/cwbudde/algo-fastmath/fastmath"
)

func refSin(phase float32) float32 {
	return float32(math.Sin(float64(phase)))
}

func TestConfigValidation(t *testing.T) {
	tests := []struct {
		name string
		opts []Option
		want error
	}{
		{"not power of two", []Option{WithFFTSize(1000)}, ErrFFTSize},
		{"too small", []Option{WithFFTSize(8), WithCycles(1)}, ErrFFTSize},
		{"at nyquist", []Option{WithFFTSize(1024), WithCycles(512)}, ErrCycles},
		{"window lobe hits dc", []Option{WithFFTSize(1024), WithCycles(6), WithWindow(true)}, ErrCycles},
		{"window lobe hits nyquist", []Option{WithFFTSize(1024), WithCycles(509), WithWindow(true)}, ErrCycles},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Measure(refSin, tt.opts...)
			if !errors.Is(err, tt.want) {
				t.Fatalf("Measure error = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestAnalyzeUsesSignalLength(t *testing.T) {
	if _, err := Analyze(make([]float32, 100), WithCycles(3)); !errors.Is(err, ErrFFTSize) {
		t.Fatalf("Analyze error = %v, want ErrFFTSize", err)
	}
	if _, err := Analyze(make([]float32, 256), WithCycles(5)); !errors.Is(err, ErrNoSignal) {
		t.Fatalf("Analyze of silence error = %v, want ErrNoSignal", err)
	}
}

func TestAnalyzeKnownHarmonic(t *testing.T) {
	const (
		n      = 4096
		cycles = 101
	)

	signal := make([]float32, n)
	for i := range signal {
		theta := 2 * math.Pi * cycles * float64(i) / n
		// DC offset must not count as a spur.
		signal[i] = float32(0.25 + math.Sin(theta) + 0.01*math.Sin(3*theta))
	}

	res, err := Analyze(signal, WithCycles(cycles))
	if err != nil {
		t.Fatalf("Analyze: %v", err)
	}

	if res.FundamentalBin != cycles {
		t.Fatalf("FundamentalBin = %d, want %d", res.FundamentalBin, cycles)
	}
	if res.PeakSpurBin != 3*cycles {
		t.Fatalf("PeakSpurBin = %d, want %d", res.PeakSpurBin, 3*cycles)
	}
	if math.Abs(res.SFDRdB-40) > 0.01 {
		t.Fatalf("SFDR = %.4f dB, want 40", res.SFDRdB)
	}
	if math.Abs(res.SINADdB-40) > 0.01 {
		t.Fatalf("SINAD = %.4f dB, want ≈40", res.SINADdB)
	}
	if want := (res.SINADdB - 1.76) / 6.02; res.ENOB != want {
		t.Fatalf("ENOB = %v, want %v", res.ENOB, want)
	}
}

func TestMeasureReferenceSine(t *testing.T) {
	res, err := Measure(refSin, WithFFTSize(1<<12), WithCycles(97))
	if err != nil {
		t.Fatalf("Measure: %v", err)
	}
	if res.SFDRdB < 120 {
		t.Fatalf("reference sine SFDR = %.1f dB, want >= 120", res.SFDRdB)
	}
}

func TestMeasureTableSizeOrdering(t *testing.T) {
	coarse := fastmath.New(fastmath.WithTableBits(6))
	fine := fastmath.New(fastmath.WithTableBits(10))

	rc, err := Measure(coarse.Sin, WithFFTSize(1<<13), WithCycles(333))
	if err != nil {
		t.Fatalf("Measure coarse: %v", err)
	}
	rf, err := Measure(fine.Sin, WithFFTSize(1<<13), WithCycles(333))
	if err != nil {
		t.Fatalf("Measure fine: %v", err)
	}

	// 16x the entries gives ~256x less interpolation error, about 48 dB.
	if rf.SINADdB < rc.SINADdB+20 {
		t.Fatalf("SINAD fine %.1f dB not 20 dB above coarse %.1f dB", rf.SINADdB, rc.SINADdB)
	}
	if rf.SFDRdB < rc.SFDRdB+20 {
		t.Fatalf("SFDR fine %.1f dB not 20 dB above coarse %.1f dB", rf.SFDRdB, rc.SFDRdB)
	}
}

func TestMeasureTaylorSourceIsWorse(t *testing.T) {
	ref := fastmath.New(fastmath.WithTableSource(fastmath.SourceReference))
	tay := fastmath.New(fastmath.WithTableSource(fastmath.SourceTaylor))

	rr, err := Measure(ref.Sin)
	if err != nil {
		t.Fatalf("Measure reference: %v", err)
	}
	rt, err := Measure(tay.Sin)
	if err != nil {
		t.Fatalf("Measure taylor: %v", err)
	}

	if rr.SFDRdB < rt.SFDRdB+20 {
		t.Fatalf("reference SFDR %.1f dB not 20 dB above taylor %.1f dB", rr.SFDRdB, rt.SFDRdB)
	}
}

func TestMeasureWindowedFractionalCycles(t *testing.T) {
	res, err := Measure(refSin, WithFFTSize(1<<12), WithCycles(200.5), WithWindow(true))
	if err != nil {
		t.Fatalf("Measure: %v", err)
	}
	if res.SFDRdB < 80 {
		t.Fatalf("windowed SFDR = %.1f dB, want >= 80", res.SFDRdB)
	}

	// Without the window the same capture leaks badly.
	leaky, err := Measure(refSin, WithFFTSize(1<<12), WithCycles(200.5))
	if err != nil {
		t.Fatalf("Measure: %v", err)
	}
	if leaky.SFDRdB > 40 {
		t.Fatalf("unwindowed fractional capture SFDR = %.1f dB, want leakage below 40 dB", leaky.SFDRdB)
	}
}

func TestMeasureWindowType(t *testing.T) {
	bh, err := Measure(refSin, WithFFTSize(1<<12), WithCycles(200.5), WithWindow(true))
	if err != nil {
		t.Fatalf("Measure: %v", err)
	}
	hann, err := Measure(refSin, WithFFTSize(1<<12), WithCycles(200.5), WithWindowType(window.TypeHann))
	if err != nil {
		t.Fatalf("Measure: %v", err)
	}

	// Hann sidelobes fall off far slower than Blackman-Harris.
	if hann.SFDRdB < 20 || hann.SFDRdB >= bh.SFDRdB {
		t.Fatalf("hann SFDR %.1f dB, blackman-harris %.1f dB", hann.SFDRdB, bh.SFDRdB)
	}
}

func TestLobeFollowsWindowNull(t *testing.T) {
	tests := []struct {
		name string
		cfg  Config
		want int
	}{
		{"no window", Config{FFTSize: 1024}, 0},
		{"rectangular", Config{FFTSize: 1024, Window: true, WindowType: window.TypeRectangular}, 1},
		{"hann", Config{FFTSize: 1024, Window: true, WindowType: window.TypeHann}, 2},
		{"blackman", Config{FFTSize: 1024, Window: true, WindowType: window.TypeBlackman}, 3},
		{"blackman-harris", Config{FFTSize: 1024, Window: true, WindowType: window.TypeBlackmanHarris4Term}, 4},
		// Unknown types generate a flat window; its null is measured.
		{"unknown", Config{FFTSize: 64, Window: true, WindowType: window.Type(99)}, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.cfg.lobe(); got != tt.want {
				t.Fatalf("lobe() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestFirstMinimumTableMatchesAnalysis(t *testing.T) {
	types := []window.Type{
		window.TypeRectangular,
		window.TypeHann,
		window.TypeBlackman,
		window.TypeBlackmanHarris4Term,
	}

	for _, typ := range types {
		want, ok := firstMinimumBinsByType(typ)
		if !ok {
			t.Fatalf("%s missing from table", typ)
		}
		a := window.Analyze(window.Generate(typ, 128, window.WithPeriodic()))
		if got := int(math.Round(a.FirstMinimumBins)); got != want {
			t.Fatalf("%s: analyzed first null %d bins, table says %d", typ, got, want)
		}
	}
}

func TestApplyOptionsIgnoresInvalid(t *testing.T) {
	cfg := ApplyOptions(WithFFTSize(-1), WithCycles(0), nil)
	if cfg != DefaultConfig() {
		t.Fatalf("ApplyOptions = %+v, want defaults", cfg)
	}
}
