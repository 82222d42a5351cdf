package testutil

import "math"

// Linspace returns n float32 values evenly spaced over [lo, hi].
func Linspace(lo, hi float64, n int) []float32 {
	out := make([]float32, n)
	if n == 1 {
		out[0] = float32(lo)
		return out
	}
	step := (hi - lo) / float64(n-1)
	for i := range out {
		out[i] = float32(lo + float64(i)*step)
	}
	return out
}

// LogSpaced returns n positive float32 values spaced evenly in log2 between
// lo and hi. Both bounds must be positive.
func LogSpaced(lo, hi float64, n int) []float32 {
	out := make([]float32, n)
	if n == 1 {
		out[0] = float32(lo)
		return out
	}
	l0, l1 := math.Log2(lo), math.Log2(hi)
	step := (l1 - l0) / float64(n-1)
	for i := range out {
		out[i] = float32(math.Exp2(l0 + float64(i)*step))
	}
	return out
}

// SpecialValues returns the IEEE-754 edge inputs every kernel is expected to
// handle without panicking.
func SpecialValues() []float32 {
	return []float32{
		0,
		float32(math.Copysign(0, -1)),
		1, -1,
		math.SmallestNonzeroFloat32,
		-math.SmallestNonzeroFloat32,
		math.MaxFloat32,
		-math.MaxFloat32,
		float32(math.Inf(1)),
		float32(math.Inf(-1)),
		float32(math.NaN()),
	}
}
