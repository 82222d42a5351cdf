package fastmath

import (
	"math"

	"github.com/chewxy/math32"
)

// rsqrtMagic seeds the inverse square root from the halved bit pattern.
// Changing it changes every Rsqrt and Sqrt result.
const rsqrtMagic = 0x5f3759df

// Rsqrt returns an approximation of 1/sqrt(x) with relative error below 0.2%.
//
// Special cases are:
//
//	Rsqrt(±0) = +Inf
//	Rsqrt(x < 0) = NaN
//	Rsqrt(NaN) = NaN
//	Rsqrt(+Inf) = 0
func Rsqrt(x float32) float32 {
	switch {
	case x == 0:
		return math32.Inf(1)
	case x < 0:
		return math32.NaN()
	case x != x:
		return x
	case math32.IsInf(x, 1):
		return 0
	}

	y := math.Float32frombits(rsqrtMagic - math.Float32bits(x)>>1)

	// One Newton-Raphson step, no more.
	h := float32(0.5 * x * y * y)
	return y * (1.5 - h)
}

// Sqrt returns an approximation of sqrt(x), computed as x*Rsqrt(x).
//
// Special cases are:
//
//	Sqrt(±0) = ±0
//	Sqrt(x < 0) = NaN
//	Sqrt(NaN) = NaN
//	Sqrt(+Inf) = +Inf
func Sqrt(x float32) float32 {
	switch {
	case x == 0:
		return x
	case x < 0:
		return math32.NaN()
	case x != x, math32.IsInf(x, 1):
		return x
	}
	return x * Rsqrt(x)
}

func rsqrtBlock(dst, src []float32) {
	for i, x := range src {
		dst[i] = Rsqrt(x)
	}
}

func sqrtBlock(dst, src []float32) {
	for i, x := range src {
		dst[i] = Sqrt(x)
	}
}
