//go:build arm64 && !purego

package simd

import (
	"github.com/cwbudde/algo-engine/internal/cpu"
	"github.com/cwbudde/algo-engine/internal/kernel/registry"
)

// init registers the NEON kernel table (2 lanes of float64).
func init() {
	registry.Global.Register(newEntry("neon", cpu.SIMDNEON, 15))
}
