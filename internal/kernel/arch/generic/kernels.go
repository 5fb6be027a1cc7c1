// Package generic holds the scalar block kernels.
//
// Every kernel touches exactly the first frames samples and nothing else.
package generic

// Scale writes dst[i] = src[i] * gain.
func Scale(dst, src []float64, frames int, gain float64) {
	dst = dst[:frames]
	src = src[:frames]
	for i := range dst {
		dst[i] = src[i] * gain
	}
}

// Mul writes dst[i] = src[i] * gain[i].
func Mul(dst, src, gain []float64, frames int) {
	dst = dst[:frames]
	src = src[:frames]
	gain = gain[:frames]
	for i := range dst {
		dst[i] = src[i] * gain[i]
	}
}

// Accumulate writes dst[i] += src[i].
func Accumulate(dst, src []float64, frames int) {
	dst = dst[:frames]
	src = src[:frames]
	for i := range dst {
		dst[i] += src[i]
	}
}

// Add writes dst[i] = a[i] + b[i].
func Add(dst, a, b []float64, frames int) {
	dst = dst[:frames]
	a = a[:frames]
	b = b[:frames]
	for i := range dst {
		dst[i] = a[i] + b[i]
	}
}
