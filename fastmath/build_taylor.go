//go:build fastmath_taylor

package fastmath

const defaultTableSource = SourceTaylor
