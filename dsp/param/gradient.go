package param

import (
	"fmt"
	"math"

	"github.com/cwbudde/algo-engine/dsp/core"
)

type gradientKind int

const (
	gradientLinear gradientKind = iota
	gradientPower
	gradientExponential
)

// Gradient maps a normalized knob position in [0, 1] to a value in
// [min, max] and back.
type Gradient struct {
	kind     gradientKind
	exponent float64
}

var (
	// Linear maps positions proportionally.
	Linear = Gradient{kind: gradientLinear}

	// Exponential maps positions geometrically, min*(max/min)^n.
	// Useful for frequencies; requires min > 0.
	Exponential = Gradient{kind: gradientExponential}

	// DBGradient is the curve used for decibel knobs: most of the travel
	// covers the useful range near the top.
	DBGradient = Power(0.15)
)

// Power maps positions as min + n^exponent*(max-min).
func Power(exponent float64) Gradient {
	return Gradient{kind: gradientPower, exponent: exponent}
}

// String implements fmt.Stringer.
func (g Gradient) String() string {
	switch g.kind {
	case gradientLinear:
		return "linear"
	case gradientPower:
		return fmt.Sprintf("power(%g)", g.exponent)
	case gradientExponential:
		return "exponential"
	default:
		return "unknown"
	}
}

func (g Gradient) validate(min, max float64) error {
	switch g.kind {
	case gradientLinear:
		return nil
	case gradientPower:
		if g.exponent <= 0 || !core.IsFinite(g.exponent) {
			return fmt.Errorf("%w: power gradient exponent must be > 0 and finite: %f", ErrInvalidConfig, g.exponent)
		}
		return nil
	case gradientExponential:
		if min <= 0 || max <= 0 {
			return fmt.Errorf("%w: exponential gradient needs positive bounds: [%f, %f]", ErrInvalidConfig, min, max)
		}
		return nil
	default:
		return fmt.Errorf("%w: unknown gradient", ErrInvalidConfig)
	}
}

// ToValue maps normalized n (clamped to [0, 1]) into [min, max].
func (g Gradient) ToValue(n, min, max float64) float64 {
	n = core.Clamp(n, 0, 1)
	if max <= min {
		return min
	}

	switch g.kind {
	case gradientPower:
		return min + math.Pow(n, g.exponent)*(max-min)
	case gradientExponential:
		return min * math.Pow(max/min, n)
	default:
		return min + n*(max-min)
	}
}

// ToNormalized maps value (clamped to [min, max]) into [0, 1].
func (g Gradient) ToNormalized(value, min, max float64) float64 {
	if max <= min {
		return 0
	}

	value = core.Clamp(value, min, max)

	var n float64

	switch g.kind {
	case gradientPower:
		n = math.Pow((value-min)/(max-min), 1/g.exponent)
	case gradientExponential:
		n = math.Log(value/min) / math.Log(max/min)
	default:
		n = (value - min) / (max - min)
	}

	return core.Clamp(n, 0, 1)
}
