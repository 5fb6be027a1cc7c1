// Package cpu provides CPU feature detection for block kernel selection.
//
// Detection runs lazily on the first query and is cached for the lifetime of
// the process. After that, every query is a single atomic load, so nodes may
// ask from the audio thread without cost, although the kernel dispatch table
// resolves once and nodes normally never ask again.
package cpu

import "sync/atomic"

// SIMDLevel represents a SIMD instruction set extension level.
// Higher numeric values generally indicate more advanced SIMD capabilities,
// but levels are not strictly comparable across architectures (e.g., AVX2 vs NEON).
type SIMDLevel int

const (
	// SIMDNone indicates no SIMD optimization (scalar Go path).
	SIMDNone SIMDLevel = iota

	// SIMDSSE2 indicates x86-64 SSE2 (baseline for amd64).
	SIMDSSE2

	// SIMDAVX indicates x86-64 AVX (256-bit float vectors).
	SIMDAVX

	// SIMDAVX2 indicates x86-64 AVX2.
	SIMDAVX2

	// SIMDAVX512 indicates x86-64 AVX-512 (512-bit vectors).
	SIMDAVX512

	// SIMDNEON indicates ARM NEON / Advanced SIMD.
	SIMDNEON
)

// MaxVectorWidth is the widest vector, in float64 lanes, of any level this
// package knows about. Block buffers pad their capacity to a multiple of it
// so a full-vector tail never runs past the allocation.
const MaxVectorWidth = 8

// String returns a human-readable name for the SIMD level.
func (s SIMDLevel) String() string {
	switch s {
	case SIMDNone:
		return "None"
	case SIMDSSE2:
		return "SSE2"
	case SIMDAVX:
		return "AVX"
	case SIMDAVX2:
		return "AVX2"
	case SIMDAVX512:
		return "AVX-512"
	case SIMDNEON:
		return "NEON"
	default:
		return "Unknown"
	}
}

// VectorWidth returns the number of float64 samples one vector instruction
// of the given level processes. Loop strides of vector kernels use it.
func VectorWidth(level SIMDLevel) int {
	switch level {
	case SIMDSSE2, SIMDNEON:
		return 2
	case SIMDAVX, SIMDAVX2:
		return 4
	case SIMDAVX512:
		return 8
	default:
		return 1
	}
}

// Features describes CPU capabilities relevant to kernel selection.
type Features struct {
	// x86/amd64 SIMD features
	HasSSE2   bool
	HasAVX    bool
	HasAVX2   bool
	HasAVX512 bool

	// ARM SIMD features
	HasNEON bool

	// ForceGeneric disables all SIMD kernels (testing/debugging).
	ForceGeneric bool

	// Architecture is runtime.GOARCH.
	Architecture string
}

var (
	detected atomic.Pointer[Features]
	forced   atomic.Pointer[Features]
)

// DetectFeatures returns the CPU features available on the current system.
//
// The first call performs detection; later calls return the cached result.
// Safe for concurrent use. Concurrent first calls may both detect, which is
// harmless because detection is deterministic.
func DetectFeatures() Features {
	if f := forced.Load(); f != nil {
		return *f
	}

	if f := detected.Load(); f != nil {
		return *f
	}

	f := detectFeaturesImpl()
	detected.CompareAndSwap(nil, &f)

	return *detected.Load()
}

// HasSSE2 reports whether the CPU supports SSE2 instructions.
func HasSSE2() bool {
	return DetectFeatures().HasSSE2
}

// HasAVX reports whether the CPU supports AVX instructions.
func HasAVX() bool {
	return DetectFeatures().HasAVX
}

// HasAVX2 reports whether the CPU supports AVX2 instructions.
func HasAVX2() bool {
	return DetectFeatures().HasAVX2
}

// HasNEON reports whether the CPU supports ARM NEON (Advanced SIMD).
func HasNEON() bool {
	return DetectFeatures().HasNEON
}

// Best returns the highest SIMD level usable with features.
func Best(features Features) SIMDLevel {
	for _, level := range []SIMDLevel{SIMDAVX512, SIMDAVX2, SIMDAVX, SIMDNEON, SIMDSSE2} {
		if Supports(features, level) {
			return level
		}
	}

	return SIMDNone
}

// SetForcedFeatures overrides CPU feature detection with the specified features.
// This is intended for testing purposes only.
func SetForcedFeatures(f Features) {
	forced.Store(&f)
}

// ResetDetection clears any forced features and the detection cache.
// This is intended for testing purposes.
func ResetDetection() {
	forced.Store(nil)
	detected.Store(nil)
}

// Supports reports whether features allow the specified SIMD level.
func Supports(features Features, level SIMDLevel) bool {
	if features.ForceGeneric {
		return level == SIMDNone
	}

	switch level {
	case SIMDNone:
		return true
	case SIMDSSE2:
		return features.HasSSE2
	case SIMDAVX:
		return features.HasAVX
	case SIMDAVX2:
		return features.HasAVX2
	case SIMDAVX512:
		return features.HasAVX512
	case SIMDNEON:
		return features.HasNEON
	default:
		return false
	}
}
