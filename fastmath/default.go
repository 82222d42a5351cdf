package fastmath

import "sync"

var (
	defaultOnce   sync.Once
	defaultEngine *Engine
)

// Init builds the default engine with opts. Only the first call has an
// effect; later calls, and the implicit call made by the package-level
// functions, return immediately. Safe for concurrent use.
func Init(opts ...Option) {
	defaultOnce.Do(func() {
		defaultEngine = New(opts...)
	})
}

// Default returns the default engine, building it on first use.
func Default() *Engine {
	Init()
	return defaultEngine
}

// Sin returns sin(x) from the default engine's table.
func Sin(x float32) float32 { return Default().table.Sin(x) }

// Cos returns cos(x) from the default engine's table.
func Cos(x float32) float32 { return Default().table.Cos(x) }

// SinBlock computes dst[i] = Sin(src[i]) with the default engine.
// Slices must have equal length and may be the same slice. Panics if lengths differ.
func SinBlock(dst, src []float32) { Default().SinBlock(dst, src) }

// CosBlock computes dst[i] = Cos(src[i]) with the default engine.
func CosBlock(dst, src []float32) { Default().CosBlock(dst, src) }

// ExpBlock computes dst[i] = Exp(src[i]) with the default engine.
func ExpBlock(dst, src []float32) { Default().ExpBlock(dst, src) }

// LogBlock computes dst[i] = Log(src[i]) with the default engine.
func LogBlock(dst, src []float32) { Default().LogBlock(dst, src) }

// SqrtBlock computes dst[i] = Sqrt(src[i]) with the default engine.
func SqrtBlock(dst, src []float32) { Default().SqrtBlock(dst, src) }

// RsqrtBlock computes dst[i] = Rsqrt(src[i]) with the default engine.
func RsqrtBlock(dst, src []float32) { Default().RsqrtBlock(dst, src) }

// RcpBlock computes dst[i] = Rcp(src[i]) with the default engine.
func RcpBlock(dst, src []float32) { Default().RcpBlock(dst, src) }
