//go:build !purego && (amd64 || arm64)

package simd

import (
	"github.com/cwbudde/algo-engine/internal/cpu"
	"github.com/cwbudde/algo-engine/internal/kernel/registry"
)

func newEntry(name string, level cpu.SIMDLevel, priority int) registry.OpEntry {
	k := kernels{width: cpu.VectorWidth(level)}

	return registry.OpEntry{
		Name:      name,
		SIMDLevel: level,
		Priority:  priority,
		Width:     k.width,

		Scale:      k.scale,
		Mul:        k.mul,
		Accumulate: k.accumulate,
		Add:        k.add,
	}
}
