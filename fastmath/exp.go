package fastmath

import (
	"math"

	"github.com/chewxy/math32"
)

// Exp guard thresholds. Inputs above expOverflow saturate to +Inf and inputs
// below expUnderflow flush to 0. Between -100 and about -87.3 the result is
// subnormal.
const (
	expOverflow  = 88.0
	expUnderflow = -100.0
)

const (
	log2e = float32(math.Log2E)

	// expMagicBias is 1.5·2^23. Adding it to |r| < 2^22 leaves round(r) in
	// the low mantissa bits, since the ulp in that binade is 1.
	expMagicBias = float32(12582912)
)

// 2^f ≈ sum c_k f^k on [-0.5, 0.5], c_k = ln(2)^k / k!.
const (
	exp2C0 = 1.0
	exp2C1 = 0.6931471805599453
	exp2C2 = 0.2402265069591007
	exp2C3 = 0.0555041086648216
	exp2C4 = 0.0096181291076285
	exp2C5 = 0.0013333558146428
)

// Exp returns an approximation of e^x.
//
// Special cases are:
//
//	Exp(NaN) = NaN
//	Exp(x > 88) = +Inf
//	Exp(x < -100) = 0
func Exp(x float32) float32 {
	switch {
	case x != x:
		return x
	case x > expOverflow:
		return math32.Inf(1)
	case x < expUnderflow:
		return 0
	}

	r := float32(x * log2e)
	k := float32(r + expMagicBias)
	n := float32(k - expMagicBias)
	f := r - n

	p := fma32(fma32(fma32(fma32(fma32(exp2C5, f, exp2C4), f, exp2C3), f, exp2C2), f, exp2C1), f, exp2C0)

	// k - bias in the integer domain is n, exactly.
	e := int32(math.Float32bits(k)) - int32(math.Float32bits(expMagicBias))
	if e < -126 || e > 127 {
		// Subnormal result; Ldexp rounds it once.
		return math32.Ldexp(p, int(e))
	}
	return p * math.Float32frombits(uint32(e+127)<<23)
}

// fma32 computes a*b+c fused in float64, then rounds to float32.
func fma32(a, b, c float32) float32 {
	return float32(math.FMA(float64(a), float64(b), float64(c)))
}

func expBlock(dst, src []float32) {
	for i, x := range src {
		dst[i] = Exp(x)
	}
}
