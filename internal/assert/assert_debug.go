//go:build debug

package assert

import "fmt"

// Enabled reports whether contract checks are compiled in.
const Enabled = true

// Ports panics if a supplied port count differs from the declared one.
func Ports(node, kind string, declared, supplied int) {
	if declared != supplied {
		panic(fmt.Sprintf("%s: %s ports: declared %d, supplied %d", node, kind, declared, supplied))
	}
}

// Frames panics if frames exceeds the capacity of a view.
func Frames(node string, frames, capacity int) {
	if frames > capacity {
		panic(fmt.Sprintf("%s: %d frames exceed buffer capacity %d", node, frames, capacity))
	}
}
