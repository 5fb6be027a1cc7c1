package param

import "github.com/cwbudde/algo-engine/dsp/core"

// SilenceDB is the level at and below which a Decibels parameter outputs
// exact silence instead of a tiny amplitude.
const SilenceDB = -90.0

// Unit tags what a parameter's value means and how it turns into the
// value nodes consume.
type Unit int

const (
	// Generic values are used as-is.
	Generic Unit = iota

	// Decibels values are converted to linear amplitude.
	Decibels
)

// String implements fmt.Stringer.
func (u Unit) String() string {
	switch u {
	case Generic:
		return "generic"
	case Decibels:
		return "dB"
	default:
		return "unknown"
	}
}

// ToOutput converts a value in the parameter's natural unit into the value
// the ramp produces.
func (u Unit) ToOutput(value float64) float64 {
	if u == Decibels {
		if value <= SilenceDB {
			return 0
		}
		return core.DBToLinear(value)
	}

	return value
}
