//go:build !purego && (amd64 || arm64)

// Package simd holds the vectorized block kernels.
//
// The arithmetic is delegated to algo-vecmath, which runs hand-written
// vector loops. This package adds the block contract on top: a block of
// frames samples is processed as whole vectors of width lanes, so the last
// partial vector is still a full load/store over the buffer's padded
// capacity. Those trailing samples are don't-care.
package simd

import "github.com/cwbudde/algo-vecmath"

// span returns the number of samples a kernel of the given width processes
// for frames samples. It rounds frames up to whole vectors while every slice
// has room for that, and falls back to exactly frames otherwise.
func span(frames, width int, lens ...int) int {
	n := (frames + width - 1) / width * width
	for _, l := range lens {
		if l < n {
			return frames
		}
	}

	return n
}

type kernels struct {
	width int
}

func (k kernels) scale(dst, src []float64, frames int, gain float64) {
	if frames <= 0 {
		return
	}

	n := span(frames, k.width, len(dst), len(src))
	vecmath.ScaleBlock(dst[:n], src[:n], gain)
}

func (k kernels) mul(dst, src, gain []float64, frames int) {
	if frames <= 0 {
		return
	}

	n := span(frames, k.width, len(dst), len(src), len(gain))
	vecmath.MulBlock(dst[:n], src[:n], gain[:n])
}

func (k kernels) accumulate(dst, src []float64, frames int) {
	if frames <= 0 {
		return
	}

	n := span(frames, k.width, len(dst), len(src))
	vecmath.AddBlockInPlace(dst[:n], src[:n])
}

func (k kernels) add(dst, a, b []float64, frames int) {
	if frames <= 0 {
		return
	}

	n := span(frames, k.width, len(dst), len(a), len(b))
	vecmath.AddBlock(dst[:n], a[:n], b[:n])
}
