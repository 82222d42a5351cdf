//go:build !fastmath_parallel

package fastmath

const defaultParallel = false
