// Package spur measures the spectral purity of a sine oscillator.
//
// A table-driven sine carries deterministic errors from sampling and linear
// interpolation. Those errors repeat with the table period and show up as
// discrete spurs next to the fundamental. This package samples an
// oscillator at a known frequency, takes one FFT and reports:
//
//   - SFDR: fundamental power over the strongest other bin
//   - SINAD: fundamental power over everything else except DC
//   - ENOB: SINAD expressed as effective bits
//
// # Usage
//
//	eng := fastmath.New(fastmath.WithTableBits(10))
//	res, err := spur.Measure(eng.Sin, spur.WithFFTSize(1<<14), spur.WithCycles(1001))
//	if err != nil { ... }
//	fmt.Printf("SFDR %.1f dB, ENOB %.1f bits\n", res.SFDRdB, res.ENOB)
//
// With integer Cycles the capture is coherent and no window is needed.
// For fractional Cycles enable WithWindow, which applies a 4-term
// Blackman-Harris window from dsp/window and attributes ±4 bins to the
// fundamental and DC. WithWindowType picks another window; the attributed
// width follows that window's first spectral null.
package spur
