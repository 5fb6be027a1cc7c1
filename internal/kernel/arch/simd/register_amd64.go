//go:build amd64 && !purego

package simd

import (
	"github.com/cwbudde/algo-engine/internal/cpu"
	"github.com/cwbudde/algo-engine/internal/kernel/registry"
)

// init registers the SSE2 and AVX kernel tables.
//
// SSE2 is the amd64 baseline (2 lanes of float64). AVX doubles the lane
// count and is present on Intel Sandy Bridge (2011+) and AMD Bulldozer (2011+).
func init() {
	registry.Global.Register(newEntry("sse2", cpu.SIMDSSE2, 10))
	registry.Global.Register(newEntry("avx", cpu.SIMDAVX, 20))
}
