package fastmath

import (
	"math"

	"github.com/chewxy/math32"
)

const (
	ln2 = float32(math.Ln2)

	mantissaMask = 0x007fffff
	oneBits      = 0x3f800000 // bit pattern of 1.0
)

// log(1+z) ≈ z - z²/2 + z³/3 - z⁴/4 + z⁵/5, the Mercator series cut after
// five terms. The truncation error grows like z⁶/6 and reaches 0.09 as z → 1.
const (
	log1pC1 = 1.0
	log1pC2 = -1.0 / 2
	log1pC3 = 1.0 / 3
	log1pC4 = -1.0 / 4
	log1pC5 = 1.0 / 5
)

// Log returns an approximation of the natural logarithm of x.
//
// Special cases are:
//
//	Log(±0) = -Inf
//	Log(x < 0) = NaN
//	Log(NaN) = NaN
//	Log(+Inf) = +Inf
//
// The error is near zero for mantissas close to 1 and grows to about 0.09
// for mantissas just below 2. Subnormal inputs are decoded as if their
// exponent were -127, so their results stay finite near -88.
func Log(x float32) float32 {
	switch {
	case x == 0:
		return math32.Inf(-1)
	case x < 0:
		return math32.NaN()
	case x != x:
		return x
	case math32.IsInf(x, 1):
		return x
	}

	bits := math.Float32bits(x)
	e := int32(bits>>23) - 127
	m := math.Float32frombits(bits&mantissaMask | oneBits)
	z := m - 1

	p := fma32(fma32(fma32(fma32(log1pC5, z, log1pC4), z, log1pC3), z, log1pC2), z, log1pC1)
	return fma32(float32(e), ln2, float32(p*z))
}

func logBlock(dst, src []float32) {
	for i, x := range src {
		dst[i] = Log(x)
	}
}
