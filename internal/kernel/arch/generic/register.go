package generic

import (
	"github.com/cwbudde/algo-engine/internal/cpu"
	"github.com/cwbudde/algo-engine/internal/kernel/registry"
)

// init registers the scalar kernels with the kernel registry.
//
// The scalar kernels are the baseline fallback and the reference every
// vectorized entry is tested against.
//
// Priority: 0 (lowest - used only when no SIMD alternatives are available)
func init() {
	registry.Global.Register(Entry())
}

// Entry returns the scalar kernel table.
func Entry() registry.OpEntry {
	return registry.OpEntry{
		Name:      "generic",
		SIMDLevel: cpu.SIMDNone,
		Priority:  0,
		Width:     1,

		Scale:      Scale,
		Mul:        Mul,
		Accumulate: Accumulate,
		Add:        Add,
	}
}
