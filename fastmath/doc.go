// Package fastmath provides fast float32 approximations of sin, cos, exp,
// log, sqrt, 1/sqrt and 1/x for tight numeric loops in audio, graphics and
// simulation code.
//
// The approximations trade a small, bounded accuracy loss for throughput.
// Results are not correctly rounded and are not bit-compatible with the
// math package.
//
// # Techniques
//
//   - Sin, Cos: lookup table of one sine period (default 4096 entries) with
//     linear interpolation; cos is a quarter-period phase shift.
//   - Exp: magic-bias range reduction to 2^n * 2^f, degree-5 polynomial for
//     2^f, 2^n written directly into the exponent bits.
//   - Log: exponent/mantissa split of the IEEE-754 pattern and a five-term
//     polynomial for log(1+z) on [0, 1).
//   - Rsqrt: integer bit trick with the 0x5f3759df constant and one
//     Newton-Raphson step. Sqrt is x*Rsqrt(x).
//   - Rcp: 1/x with signed-zero handling.
//
// # Accuracy
//
// Sin/Cos: absolute error below 1e-6 on [-2π, 2π] with 4096 entries, scaling
// as O(1/N²) with table size. float32 argument rounding dominates for large
// |x|: about 1e-5 at |x| = 100 and 2e-3 at |x| = 1e4. Arguments whose scaled
// index x·N/2π overflows float32 return NaN.
//
// Exp: relative error below 1e-5 on [-87, 88].
//
// Log: the five-term Mercator series for the mantissa. Absolute error is
// near zero for mantissas close to 1 and grows to about 0.09 just below each
// power of two.
//
// Rsqrt, Sqrt: relative error below 0.2% for normal inputs.
//
// Subnormal inputs (|x| < 2^-126) take no special path. Log decodes them with
// exponent -127 and returns a finite value near -88 instead of the true
// -87.3 to -103.3. Rsqrt and Sqrt stay positive and finite but lose the
// one-step accuracy: rsqrt(x)²·x drifts from 1 down to about 5e-7 at the
// smallest subnormal.
//
// # Special values
//
// No function returns an error or panics on numeric input. Domain errors are
// reported through IEEE-754 sentinels: Log(0) = -Inf, Log(x<0) = NaN,
// Rsqrt(0) = +Inf, Rsqrt(x<0) = NaN, Sqrt(x<0) = NaN, Rcp(±0) = ±Inf,
// Exp(x>88) = +Inf, Exp(x<-100) = 0.
//
// # Engines and the default engine
//
// An Engine owns one immutable sine table plus the block execution strategy.
// It is safe for concurrent use:
//
//	eng := fastmath.New(fastmath.WithTableBits(14), fastmath.WithParallel(true))
//	eng.SinBlock(out, phases)
//
// The package-level functions use a default engine built on first use, or by
// an explicit call to Init:
//
//	fastmath.Init(fastmath.WithTableBits(10)) // optional, first call wins
//	y := fastmath.Sin(x)
//
// # Block functions
//
// Every kernel has a block form, XBlock(dst, src), computing
// dst[i] = X(src[i]) bit for bit. dst and src must have equal length and may
// be the same slice. With the parallel hint enabled, long blocks are split
// across a worker pool.
//
// # Build tags
//
//   - fastmath_taylor: default table source is a fifth-order Taylor polynomial
//     instead of math.Sin.
//   - fastmath_parallel: default engines enable the parallel block hint.
package fastmath
