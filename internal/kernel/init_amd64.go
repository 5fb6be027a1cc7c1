//go:build amd64 && !purego

package kernel

// Importing the implementation packages runs their init() functions, which
// register the kernel tables with the global registry.

import (
	_ "github.com/cwbudde/algo-engine/internal/kernel/arch/generic" // register generic backend
	_ "github.com/cwbudde/algo-engine/internal/kernel/arch/simd"    // register SSE2/AVX backends
)
