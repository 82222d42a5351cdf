package spur

import (
	"errors"
	"fmt"
	"math"

	algofft "github.com/MeKo-Christian/algo-fft"
	"github.com/cwbudde/algo-fastmath/dsp/window"
	"github.com/cwbudde/algo-vecmath"
)

const (
	defaultFFTSize = 1 << 14
	defaultCycles  = 1001
	minFFTSize     = 16

	// analysisSize bounds the window length used to locate the first null
	// of window types without a known main-lobe width.
	analysisSize = 1024
)

var (
	// ErrFFTSize is returned for FFT sizes that are not a power of two >= 16.
	ErrFFTSize = errors.New("spur: FFT size must be a power of two >= 16")

	// ErrCycles is returned when the fundamental does not fit between DC and
	// Nyquist with its main lobe.
	ErrCycles = errors.New("spur: cycles outside the analyzable band")

	// ErrNoSignal is returned when the fundamental bin holds no power.
	ErrNoSignal = errors.New("spur: no power at the fundamental")
)

// Config holds analysis parameters.
type Config struct {
	// FFTSize is the capture length. Analyze overrides it with len(signal).
	FFTSize int

	// Cycles is the number of oscillator periods in the capture, i.e. the
	// fundamental bin.
	Cycles float64

	// Window applies WindowType before the FFT.
	Window bool

	// WindowType selects the window when Window is set.
	WindowType window.Type
}

// Option mutates a Config.
type Option func(*Config)

// DefaultConfig returns a 16384-point coherent capture of 1001 cycles.
func DefaultConfig() Config {
	return Config{
		FFTSize:    defaultFFTSize,
		Cycles:     defaultCycles,
		WindowType: window.TypeBlackmanHarris4Term,
	}
}

// WithFFTSize sets the capture length used by Measure.
func WithFFTSize(n int) Option {
	return func(cfg *Config) {
		if n > 0 {
			cfg.FFTSize = n
		}
	}
}

// WithCycles sets the number of periods in the capture.
func WithCycles(cycles float64) Option {
	return func(cfg *Config) {
		if cycles > 0 {
			cfg.Cycles = cycles
		}
	}
}

// WithWindow enables windowing, 4-term Blackman-Harris unless WithWindowType
// says otherwise.
func WithWindow(enabled bool) Option {
	return func(cfg *Config) {
		cfg.Window = enabled
	}
}

// WithWindowType selects the analysis window and enables windowing.
func WithWindowType(t window.Type) Option {
	return func(cfg *Config) {
		cfg.Window = true
		cfg.WindowType = t
	}
}

// ApplyOptions applies zero or more options to the default config.
func ApplyOptions(opts ...Option) Config {
	cfg := DefaultConfig()
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	return cfg
}

// Result holds one purity measurement. Powers are one-sided FFT bin powers
// and are only meaningful relative to each other.
type Result struct {
	FundamentalBin   int
	FundamentalPower float64
	NoisePower       float64
	PeakSpurBin      int
	PeakSpurPower    float64
	SFDRdB           float64
	SINADdB          float64
	ENOB             float64
}

// lobe returns how many bins on each side of DC and the fundamental belong
// to them: the window's first null, or 0 without a window.
func (cfg Config) lobe() int {
	if !cfg.Window {
		return 0
	}
	if v, ok := firstMinimumBinsByType(cfg.WindowType); ok {
		return v
	}

	n := min(cfg.FFTSize, analysisSize)
	a := window.Analyze(window.Generate(cfg.WindowType, n, window.WithPeriodic()))
	if a.FirstMinimumBins <= 0 || math.IsNaN(a.FirstMinimumBins) {
		return 0
	}
	return int(math.Round(a.FirstMinimumBins))
}

func firstMinimumBinsByType(t window.Type) (int, bool) {
	switch t {
	case window.TypeRectangular:
		return 1, true
	case window.TypeHann:
		return 2, true
	case window.TypeBlackman:
		return 3, true
	case window.TypeBlackmanHarris4Term:
		return 4, true
	default:
		return 0, false
	}
}

func (cfg Config) validate() error {
	n := cfg.FFTSize
	if n < minFFTSize || n&(n-1) != 0 {
		return ErrFFTSize
	}

	fund := int(math.Round(cfg.Cycles))
	lobe := cfg.lobe()
	if fund-lobe <= lobe || fund+lobe >= n/2 {
		return fmt.Errorf("%w: %g cycles in %d points", ErrCycles, cfg.Cycles, n)
	}
	return nil
}

// Measure samples osc at phases 2π·Cycles·i/FFTSize and analyzes the result.
// Phases are reduced to [0, 2π) in float64 before the call, so the
// oscillator's own error is what gets measured.
func Measure(osc func(phase float32) float32, opts ...Option) (Result, error) {
	cfg := ApplyOptions(opts...)
	if err := cfg.validate(); err != nil {
		return Result{}, err
	}

	signal := make([]float32, cfg.FFTSize)
	step := 2 * math.Pi * cfg.Cycles / float64(cfg.FFTSize)
	for i := range signal {
		phase := math.Mod(float64(i)*step, 2*math.Pi)
		signal[i] = osc(float32(phase))
	}

	return analyze(signal, cfg)
}

// Analyze computes purity metrics for a captured signal. The FFT size is
// len(signal); Cycles and Window come from opts.
func Analyze(signal []float32, opts ...Option) (Result, error) {
	cfg := ApplyOptions(opts...)
	cfg.FFTSize = len(signal)
	if err := cfg.validate(); err != nil {
		return Result{}, err
	}
	return analyze(signal, cfg)
}

//nolint:cyclop
func analyze(signal []float32, cfg Config) (Result, error) {
	n := len(signal)

	data := make([]float64, n)
	for i, v := range signal {
		data[i] = float64(v)
	}
	if cfg.Window {
		vecmath.MulBlockInPlace(data, window.Generate(cfg.WindowType, n, window.WithPeriodic()))
	}

	in := make([]complex128, n)
	for i, v := range data {
		in[i] = complex(v, 0)
	}

	plan, err := algofft.NewPlan64(n)
	if err != nil {
		return Result{}, fmt.Errorf("spur: FFT plan: %w", err)
	}

	out := make([]complex128, n)
	if err := plan.Forward(out, in); err != nil {
		return Result{}, fmt.Errorf("spur: forward FFT: %w", err)
	}

	bins := n/2 + 1
	re := make([]float64, bins)
	im := make([]float64, bins)
	for k := range bins {
		re[k] = real(out[k])
		im[k] = imag(out[k])
	}

	power := make([]float64, bins)
	vecmath.Power(power, re, im)

	lobe := cfg.lobe()
	fund := int(math.Round(cfg.Cycles))

	res := Result{FundamentalBin: fund, PeakSpurBin: -1}
	for k := fund - lobe; k <= fund+lobe; k++ {
		res.FundamentalPower += power[k]
	}
	if res.FundamentalPower == 0 {
		return Result{}, ErrNoSignal
	}

	for k := lobe + 1; k < bins; k++ {
		if k >= fund-lobe && k <= fund+lobe {
			continue
		}
		res.NoisePower += power[k]
		if power[k] > res.PeakSpurPower {
			res.PeakSpurPower = power[k]
			res.PeakSpurBin = k
		}
	}

	res.SFDRdB = powerRatioDB(res.FundamentalPower, res.PeakSpurPower)
	res.SINADdB = powerRatioDB(res.FundamentalPower, res.NoisePower)
	res.ENOB = (res.SINADdB - 1.76) / 6.02

	return res, nil
}

func powerRatioDB(signal, noise float64) float64 {
	if noise == 0 {
		return math.Inf(1)
	}
	return 10 * math.Log10(signal/noise)
}
