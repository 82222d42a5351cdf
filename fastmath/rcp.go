package fastmath

import "github.com/chewxy/math32"

// Rcp returns 1/x. A zero of either sign maps to the infinity of the same sign.
func Rcp(x float32) float32 {
	if x == 0 {
		if math32.Signbit(x) {
			return math32.Inf(-1)
		}
		return math32.Inf(1)
	}
	return 1 / x
}

func rcpBlock(dst, src []float32) {
	for i, x := range src {
		dst[i] = Rcp(x)
	}
}
