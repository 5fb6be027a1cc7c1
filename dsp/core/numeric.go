package core

import "math"

const defaultEpsilon = 1e-12

// Clamp limits value to the inclusive range [min, max].
func Clamp(value, min, max float64) float64 {
	if min > max {
		min, max = max, min
	}

	if value < min {
		return min
	}

	if value > max {
		return max
	}

	return value
}

// NearlyEqual reports whether a and b are equal within eps.
func NearlyEqual(a, b, eps float64) bool {
	if eps <= 0 {
		eps = defaultEpsilon
	}

	diff := math.Abs(a - b)
	if diff <= eps {
		return true
	}

	largest := math.Max(math.Abs(a), math.Abs(b))
	if largest == 0 {
		return diff <= eps
	}

	return diff/largest <= eps
}

// IsFinite reports whether x is neither NaN nor infinite.
func IsFinite(x float64) bool {
	return !math.IsNaN(x) && !math.IsInf(x, 0)
}

// DBToLinear converts dB to linear amplitude (20*log10 convention).
func DBToLinear(db float64) float64 {
	return math.Pow(10, db/20)
}

// LinearToDB converts linear amplitude to dB (20*log10 convention).
// Returns -Inf for zero and NaN for negative values.
func LinearToDB(linear float64) float64 {
	if linear < 0 {
		return math.NaN()
	}

	if linear == 0 {
		return math.Inf(-1)
	}

	return 20 * math.Log10(linear)
}

// SecondsToFrames converts a duration to a whole number of frames,
// rounding up so that a ramp of that many frames lasts at least secs.
func SecondsToFrames(secs, sampleRate float64) int {
	if secs <= 0 || sampleRate <= 0 {
		return 0
	}

	// Guard against 0.01*48000 = 480.00000000000006 rounding up to 481.
	frames := secs * sampleRate
	rounded := math.Round(frames)
	if math.Abs(frames-rounded) < 1e-9*math.Max(1, rounded) {
		return int(rounded)
	}

	return int(math.Ceil(frames))
}

// RoundUp returns n rounded up to a multiple of step.
func RoundUp(n, step int) int {
	if step <= 1 {
		return n
	}

	return (n + step - 1) / step * step
}
