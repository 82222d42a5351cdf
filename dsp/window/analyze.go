package window

import "math"

// Analysis holds numerically computed spectral properties of a window.
type Analysis struct {
	// CoherentGain is sum(w[n]) / N, the DC response of the window.
	CoherentGain float64
	// ENBW is the equivalent noise bandwidth in bins.
	ENBW float64
	// FirstMinimumBins is the distance from DC to the first spectral null, in bins.
	FirstMinimumBins float64
	// HighestSidelobedB is the highest sidelobe level relative to DC in dB.
	HighestSidelobedB float64
}

// Analyze evaluates the window's DFT numerically. It returns the zero
// Analysis for an empty or zero-sum window.
func Analyze(coeffs []float64) Analysis {
	n := len(coeffs)
	if n == 0 {
		return Analysis{}
	}

	sum, sumSq := 0.0, 0.0
	for _, c := range coeffs {
		sum += c
		sumSq += c * c
	}
	if sum == 0 {
		return Analysis{}
	}

	dc := sum * sum
	firstMin := firstMinimum(coeffs)

	return Analysis{
		CoherentGain:      sum / float64(n),
		ENBW:              float64(n) * sumSq / dc,
		FirstMinimumBins:  firstMin,
		HighestSidelobedB: highestSidelobe(coeffs, dc, firstMin),
	}
}

// powerAt returns |DFT(bin)|² for a fractional bin index.
func powerAt(coeffs []float64, bin float64) float64 {
	w := 2 * math.Pi * bin / float64(len(coeffs))
	re, im := 0.0, 0.0
	for k, c := range coeffs {
		s, co := math.Sincos(w * float64(k))
		re += c * co
		im -= c * s
	}
	return re*re + im*im
}

// firstMinimum walks out from DC in eighth-bin steps until the response
// turns upward after falling below 10% of DC, then refines the null by
// golden-section search.
func firstMinimum(coeffs []float64) float64 {
	const step = 0.125
	nyquist := float64(len(coeffs)) / 2

	dc := powerAt(coeffs, 0)
	prev := dc
	coarse := step
	for bin := step; bin < nyquist; bin += step {
		p := powerAt(coeffs, bin)
		if prev < 0.1*dc && p > prev {
			coarse = bin - step
			break
		}
		prev = p
	}

	a := math.Max(0, coarse-2*step)
	b := math.Min(nyquist, coarse+2*step)

	const phi = 0.6180339887498949
	for range 60 {
		c := b - phi*(b-a)
		d := a + phi*(b-a)
		if powerAt(coeffs, c) < powerAt(coeffs, d) {
			b = d
		} else {
			a = c
		}
	}
	return (a + b) / 2
}

// highestSidelobe scans from the first null to Nyquist in eighth-bin steps.
func highestSidelobe(coeffs []float64, dc, firstMin float64) float64 {
	const step = 0.125
	nyquist := float64(len(coeffs)) / 2

	peak := 0.0
	for bin := firstMin; bin < nyquist; bin += step {
		peak = math.Max(peak, powerAt(coeffs, bin))
	}
	if peak <= 0 {
		return math.Inf(-1)
	}
	return 10 * math.Log10(peak/dc)
}
