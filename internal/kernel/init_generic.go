//go:build purego || !(amd64 || arm64)

package kernel

import (
	_ "github.com/cwbudde/algo-engine/internal/kernel/arch/generic" // register generic backend
)
