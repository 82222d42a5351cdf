package fastmath

import (
	"math"

	"github.com/chewxy/math32"
)

const halfPi = float32(math.Pi / 2)

// Sin returns an interpolated table approximation of sin(x).
//
// NaN and ±Inf yield NaN. Accuracy falls off with |x| because x·N/2π is
// formed in float32, and |x·N/2π| must stay below 2^63. Arguments whose
// scaled index overflows float32 (|x| near MaxFloat32) also yield NaN.
func (t *Table) Sin(x float32) float32 {
	return t.lookup(float32(x * t.indexScale))
}

// Cos returns an interpolated table approximation of cos(x), read from the
// sine table a quarter period ahead.
func (t *Table) Cos(x float32) float32 {
	return t.lookup(float32((x + halfPi) * t.indexScale))
}

// lookup interpolates between the samples around fractional index f.
// The mask is applied to the floor, not a truncation, so negative indices
// wrap to the right period.
func (t *Table) lookup(f float32) float32 {
	fl := math32.Floor(f)
	i0 := int64(fl) & t.mask
	i1 := (i0 + 1) & t.mask
	frac := f - fl
	s0 := t.samples[i0]
	return s0 + float32(frac*(t.samples[i1]-s0))
}

func (t *Table) sinBlock(dst, src []float32) {
	for i, x := range src {
		dst[i] = t.lookup(float32(x * t.indexScale))
	}
}

func (t *Table) cosBlock(dst, src []float32) {
	for i, x := range src {
		dst[i] = t.lookup(float32((x + halfPi) * t.indexScale))
	}
}
