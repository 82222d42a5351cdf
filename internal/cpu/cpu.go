// Package cpu provides CPU feature detection for block dispatch selection.
//
// Detection is performed lazily on the first call to DetectFeatures() and the
// results are cached for subsequent calls using sync.Once for thread-safety.
// Tests can override the detected features with SetForcedFeatures.
package cpu

import (
	"strconv"
	"strings"
	"sync"
)

// Level identifies the execution strategy a block implementation requires.
// Higher levels need more from the host (more cores, more instruction sets).
type Level int

const (
	// LevelSerial is a plain loop on the calling goroutine. Always supported.
	LevelSerial Level = iota

	// LevelParallel splits a block across a worker pool.
	// Requires more than one usable CPU.
	LevelParallel
)

// String returns a human-readable name for the level.
func (l Level) String() string {
	switch l {
	case LevelSerial:
		return "serial"
	case LevelParallel:
		return "parallel"
	default:
		return "unknown"
	}
}

// Features describes CPU capabilities relevant to kernel and block selection.
type Features struct {
	// x86/amd64 features
	HasSSE2 bool // Streaming SIMD Extensions 2 (baseline for amd64)
	HasAVX2 bool // Advanced Vector Extensions 2
	HasFMA  bool // Fused multiply-add (FMA3 on amd64, always present on arm64)

	// ARM features
	HasNEON bool // ARM Advanced SIMD (NEON)

	// NumCPU is the number of logical CPUs usable by this process (GOMAXPROCS).
	NumCPU int

	// ForceSerial disables parallel block execution (for testing and for
	// engines built without the parallel hint).
	ForceSerial bool

	// Architecture is runtime.GOARCH (e.g., "amd64", "arm64").
	Architecture string
}

// String summarizes the features on one line, e.g. "amd64 sse2 avx2 fma cpus=8".
func (f Features) String() string {
	parts := []string{f.Architecture}
	if f.HasSSE2 {
		parts = append(parts, "sse2")
	}
	if f.HasAVX2 {
		parts = append(parts, "avx2")
	}
	if f.HasNEON {
		parts = append(parts, "neon")
	}
	if f.HasFMA {
		parts = append(parts, "fma")
	}
	parts = append(parts, "cpus="+strconv.Itoa(f.NumCPU))
	if f.ForceSerial {
		parts = append(parts, "serial-only")
	}
	return strings.Join(parts, " ")
}

var (
	// detectedFeatures holds the cached CPU features detected on this system.
	detectedFeatures Features

	// detectOnce ensures feature detection runs exactly once, thread-safely.
	detectOnce sync.Once

	// detectMutex serializes access to detectOnce/detectedFeatures.
	detectMutex sync.Mutex

	// forcedFeatures allows overriding actual hardware detection for testing.
	forcedFeatures *Features

	// forcedMutex protects forcedFeatures from concurrent access during testing.
	forcedMutex sync.RWMutex
)

// DetectFeatures returns the CPU features available on the current system.
//
// Detection is performed once on the first call and cached for subsequent calls.
// This function is thread-safe and can be called concurrently from multiple goroutines.
func DetectFeatures() Features {
	forcedMutex.RLock()
	forced := forcedFeatures
	forcedMutex.RUnlock()

	if forced != nil {
		return *forced
	}

	detectMutex.Lock()
	detectOnce.Do(func() {
		detectedFeatures = detectFeaturesImpl()
	})
	features := detectedFeatures
	detectMutex.Unlock()

	return features
}

// SetForcedFeatures overrides CPU feature detection with the specified features.
// This is intended for testing purposes only.
func SetForcedFeatures(f Features) {
	forcedMutex.Lock()
	defer forcedMutex.Unlock()
	forced := f
	forcedFeatures = &forced
}

// ResetDetection clears any forced features and the detection cache.
// This is intended for testing purposes.
func ResetDetection() {
	forcedMutex.Lock()
	forcedFeatures = nil
	forcedMutex.Unlock()

	detectMutex.Lock()
	detectOnce = sync.Once{}
	detectedFeatures = Features{}
	detectMutex.Unlock()
}

// Supports returns true if the given CPU features support the specified level.
// This function is used by the blockmap registry to determine implementation compatibility.
func Supports(features Features, level Level) bool {
	switch level {
	case LevelSerial:
		return true
	case LevelParallel:
		return !features.ForceSerial && features.NumCPU > 1
	default:
		return false
	}
}
