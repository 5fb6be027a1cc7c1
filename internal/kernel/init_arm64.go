//go:build arm64 && !purego

package kernel

import (
	_ "github.com/cwbudde/algo-engine/internal/kernel/arch/generic" // register generic backend
	_ "github.com/cwbudde/algo-engine/internal/kernel/arch/simd"    // register NEON backend
)
