package fastmath

import (
	"github.com/cwbudde/algo-fastmath/internal/blockmap"
	"github.com/cwbudde/algo-fastmath/internal/blockmap/registry"
	"github.com/cwbudde/algo-fastmath/internal/cpu"
)

// Engine bundles a sine table with the block execution strategy chosen for
// this CPU. All methods are safe for concurrent use.
type Engine struct {
	table    *Table
	cfg      Config
	strategy registry.OpEntry

	sinBlock registry.BlockFunc
	cosBlock registry.BlockFunc
}

// New builds an engine. The table is computed before New returns.
func New(opts ...Option) *Engine {
	cfg := ApplyOptions(opts...)

	features := cpu.DetectFeatures()
	if !cfg.Parallel {
		features.ForceSerial = true
	}

	table := NewTable(cfg.TableBits, cfg.TableSource)
	return &Engine{
		table:    table,
		cfg:      cfg,
		strategy: blockmap.Select(features),
		sinBlock: table.sinBlock,
		cosBlock: table.cosBlock,
	}
}

// Table returns the engine's sine table.
func (e *Engine) Table() *Table { return e.table }

// Config returns the configuration the engine was built with.
func (e *Engine) Config() Config { return e.cfg }

// Strategy returns the name of the block strategy for long blocks
// ("serial" or "parallel").
func (e *Engine) Strategy() string { return e.strategy.Name }

// Sin returns the table approximation of sin(x).
func (e *Engine) Sin(x float32) float32 { return e.table.Sin(x) }

// Cos returns the table approximation of cos(x).
func (e *Engine) Cos(x float32) float32 { return e.table.Cos(x) }

// Exp is the package-level Exp.
func (e *Engine) Exp(x float32) float32 { return Exp(x) }

// Log is the package-level Log.
func (e *Engine) Log(x float32) float32 { return Log(x) }

// Sqrt is the package-level Sqrt.
func (e *Engine) Sqrt(x float32) float32 { return Sqrt(x) }

// Rsqrt is the package-level Rsqrt.
func (e *Engine) Rsqrt(x float32) float32 { return Rsqrt(x) }

// Rcp is the package-level Rcp.
func (e *Engine) Rcp(x float32) float32 { return Rcp(x) }

// SinBlock computes dst[i] = Sin(src[i]).
// Slices must have equal length and may be the same slice. Panics if lengths differ.
func (e *Engine) SinBlock(dst, src []float32) { e.apply(dst, src, e.sinBlock) }

// CosBlock computes dst[i] = Cos(src[i]).
func (e *Engine) CosBlock(dst, src []float32) { e.apply(dst, src, e.cosBlock) }

// ExpBlock computes dst[i] = Exp(src[i]).
func (e *Engine) ExpBlock(dst, src []float32) { e.apply(dst, src, expBlock) }

// LogBlock computes dst[i] = Log(src[i]).
func (e *Engine) LogBlock(dst, src []float32) { e.apply(dst, src, logBlock) }

// SqrtBlock computes dst[i] = Sqrt(src[i]).
func (e *Engine) SqrtBlock(dst, src []float32) { e.apply(dst, src, sqrtBlock) }

// RsqrtBlock computes dst[i] = Rsqrt(src[i]).
func (e *Engine) RsqrtBlock(dst, src []float32) { e.apply(dst, src, rsqrtBlock) }

// RcpBlock computes dst[i] = Rcp(src[i]).
func (e *Engine) RcpBlock(dst, src []float32) { e.apply(dst, src, rcpBlock) }

// Scalar returns the scalar function for k, or nil for an unknown kernel.
func (e *Engine) Scalar(k Kernel) func(float32) float32 {
	switch k {
	case KernelSin:
		return e.Sin
	case KernelCos:
		return e.Cos
	case KernelExp:
		return Exp
	case KernelLog:
		return Log
	case KernelSqrt:
		return Sqrt
	case KernelRsqrt:
		return Rsqrt
	case KernelRcp:
		return Rcp
	default:
		return nil
	}
}

// Block returns the block function for k, or nil for an unknown kernel.
func (e *Engine) Block(k Kernel) func(dst, src []float32) {
	switch k {
	case KernelSin:
		return e.SinBlock
	case KernelCos:
		return e.CosBlock
	case KernelExp:
		return e.ExpBlock
	case KernelLog:
		return e.LogBlock
	case KernelSqrt:
		return e.SqrtBlock
	case KernelRsqrt:
		return e.RsqrtBlock
	case KernelRcp:
		return e.RcpBlock
	default:
		return nil
	}
}

// apply runs block directly for short inputs and through the selected
// strategy otherwise.
func (e *Engine) apply(dst, src []float32, block registry.BlockFunc) {
	if len(dst) != len(src) {
		panic("fastmath: slice length mismatch")
	}
	if len(src) < e.cfg.ParallelThreshold {
		block(dst, src)
		return
	}
	e.strategy.Apply(dst, src, block)
}
