//go:build !amd64 && !arm64

package cpu

import "runtime"

// detectFeaturesImpl is the fallback for other architectures.
//
// No instruction-set flags are reported; only the CPU count is detected.
func detectFeaturesImpl() Features {
	return Features{
		NumCPU:       runtime.GOMAXPROCS(0),
		Architecture: runtime.GOARCH,
	}
}
