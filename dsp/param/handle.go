package param

import (
	"math"
	"sync/atomic"

	"github.com/cwbudde/algo-engine/dsp/core"
)

// cell is the only state shared between the two threads: the target value
// in the parameter's natural unit, as float64 bits.
type cell struct {
	bits atomic.Uint64
}

func (c *cell) load() float64 {
	return math.Float64frombits(c.bits.Load())
}

func (c *cell) store(v float64) {
	c.bits.Store(math.Float64bits(v))
}

// Handle is the control-side half of a parameter. Its methods are safe for
// concurrent use, never block and never allocate.
type Handle struct {
	shared   *cell
	min, max float64
	gradient Gradient
	unit     Unit
}

// Set publishes a new target in the parameter's natural unit (dB for a
// Decibels parameter). Values outside the bounds are clamped. NaN is
// ignored and leaves the previous target in place.
func (h *Handle) Set(value float64) {
	if math.IsNaN(value) {
		return
	}

	h.shared.store(core.Clamp(value, h.min, h.max))
}

// SetNormalized publishes a new target from a knob position in [0, 1],
// mapped through the parameter's gradient. Positions outside [0, 1] are
// clamped. NaN is ignored.
func (h *Handle) SetNormalized(n float64) {
	if math.IsNaN(n) {
		return
	}

	h.shared.store(h.gradient.ToValue(n, h.min, h.max))
}

// Value returns the latest published target in the natural unit.
func (h *Handle) Value() float64 {
	return h.shared.load()
}

// Normalized returns the latest published target as a knob position.
func (h *Handle) Normalized() float64 {
	return h.gradient.ToNormalized(h.shared.load(), h.min, h.max)
}

// Min returns the lower bound.
func (h *Handle) Min() float64 { return h.min }

// Max returns the upper bound.
func (h *Handle) Max() float64 { return h.max }

// Unit returns the parameter's unit tag.
func (h *Handle) Unit() Unit { return h.unit }

// Gradient returns the parameter's knob mapping.
func (h *Handle) Gradient() Gradient { return h.gradient }

// Bundle names the control handles a node exposes, keyed by parameter name.
type Bundle map[string]*Handle
