// Package kernel resolves the block kernel table for the running CPU.
//
// The table is looked up once, on first use, from the detected CPU
// features. Nodes capture the resolved entry at construction time and call
// it on the audio thread without further checks.
package kernel

import (
	"sync"

	"github.com/cwbudde/algo-engine/internal/cpu"
	"github.com/cwbudde/algo-engine/internal/kernel/registry"
)

var (
	active   *registry.OpEntry
	scalar   *registry.OpEntry
	initOnce sync.Once
	mu       sync.Mutex
)

func resolve() {
	entry := registry.Global.Lookup(cpu.DetectFeatures())
	if entry == nil {
		panic("kernel: no implementation registered (missing generic fallback?)")
	}

	if !entry.Complete() {
		panic("kernel: selected implementation " + entry.Name + " is incomplete")
	}

	ref := registry.Global.Lookup(cpu.Features{ForceGeneric: true})
	if ref == nil || !ref.Complete() {
		panic("kernel: generic implementation missing")
	}

	active = entry
	scalar = ref
}

func load() {
	mu.Lock()
	defer mu.Unlock()

	initOnce.Do(resolve)
}

// Active returns the best kernel table for the detected CPU.
func Active() *registry.OpEntry {
	load()
	return active
}

// Scalar returns the scalar reference kernel table.
func Scalar() *registry.OpEntry {
	load()
	return scalar
}

// Reset drops the resolved tables so the next call re-reads the CPU
// features. Intended for tests that force features with cpu.SetForcedFeatures.
func Reset() {
	mu.Lock()
	defer mu.Unlock()

	initOnce = sync.Once{}
	active = nil
	scalar = nil
}
