package fastmath

import (
	"fmt"
	"strings"
)

// Kernel names one of the approximated functions.
type Kernel int

const (
	KernelSin Kernel = iota
	KernelCos
	KernelExp
	KernelLog
	KernelSqrt
	KernelRsqrt
	KernelRcp
	kernelCount
)

var kernelNames = [kernelCount]string{
	KernelSin:   "sin",
	KernelCos:   "cos",
	KernelExp:   "exp",
	KernelLog:   "log",
	KernelSqrt:  "sqrt",
	KernelRsqrt: "rsqrt",
	KernelRcp:   "rcp",
}

// Kernels returns every kernel in declaration order.
func Kernels() []Kernel {
	out := make([]Kernel, kernelCount)
	for i := range out {
		out[i] = Kernel(i)
	}
	return out
}

// String returns the lower-case kernel name.
func (k Kernel) String() string {
	if k < 0 || k >= kernelCount {
		return "unknown"
	}
	return kernelNames[k]
}

// ParseKernel returns the kernel with the given name (case-insensitive).
func ParseKernel(name string) (Kernel, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	for i, n := range kernelNames {
		if n == name {
			return Kernel(i), nil
		}
	}
	return 0, fmt.Errorf("fastmath: unknown kernel %q", name)
}
