package param

import (
	"errors"
	"fmt"
	"math"

	"github.com/cwbudde/algo-engine/dsp/core"
	"github.com/cwbudde/algo-engine/internal/cpu"
)

// ErrInvalidConfig is returned when a parameter cannot be constructed.
var ErrInvalidConfig = errors.New("invalid parameter config")

// SmoothOutput is one block of smoothed parameter values.
//
// Values has exactly the block's frame count. It aliases the parameter's
// ramp buffer and stays valid until the next call to Smoothed.
type SmoothOutput struct {
	Values    []float64
	smoothing bool
}

// IsSmoothing reports whether the values change within this block. When it
// is false every entry of Values equals Constant().
func (o SmoothOutput) IsSmoothing() bool {
	return o.smoothing
}

// Constant returns the block's first value, which is the value of every
// sample when the block is not smoothing. Zero for an empty block.
func (o SmoothOutput) Constant() float64 {
	if len(o.Values) == 0 {
		return 0
	}

	return o.Values[0]
}

// Frames returns the number of values in the block.
func (o SmoothOutput) Frames() int {
	return len(o.Values)
}

// Padded returns Values extended to the ramp buffer's full capacity, which
// is a multiple of cpu.MaxVectorWidth. Entries past Frames are don't-care.
func (o SmoothOutput) Padded() []float64 {
	return o.Values[:cap(o.Values)]
}

// Param is the audio-side half of a smoothed parameter. It is owned by one
// node and must only be used from the audio thread.
type Param struct {
	shared *cell
	unit   Unit

	sampleRate   float64
	smoothFrames int
	maxFrames    int

	lastBits uint64

	// Ramp state, in the unit's output domain.
	current float64
	start   float64
	target  float64
	step    float64
	pos     int
	length  int

	buf         []float64
	filled      int
	filledValue float64
}

// New creates a parameter with an initial value in its natural unit.
//
// min and max bound every target, gradient maps knob positions, unit
// decides the output domain, smoothSecs is the ramp duration and maxFrames
// the largest block Smoothed will be asked for. The returned Param belongs
// to the audio thread, the Handle to the control thread.
func New(
	value, min, max float64,
	gradient Gradient,
	unit Unit,
	smoothSecs, sampleRate float64,
	maxFrames int,
) (*Param, *Handle, error) {
	for _, v := range []float64{value, min, max, smoothSecs, sampleRate} {
		if !core.IsFinite(v) {
			return nil, nil, fmt.Errorf("%w: non-finite argument %f", ErrInvalidConfig, v)
		}
	}

	if min > max {
		return nil, nil, fmt.Errorf("%w: min %f > max %f", ErrInvalidConfig, min, max)
	}

	if sampleRate <= 0 {
		return nil, nil, fmt.Errorf("%w: sample rate must be > 0: %f", ErrInvalidConfig, sampleRate)
	}

	if smoothSecs < 0 {
		return nil, nil, fmt.Errorf("%w: smoothing time must be >= 0: %f", ErrInvalidConfig, smoothSecs)
	}

	if maxFrames <= 0 {
		return nil, nil, fmt.Errorf("%w: max frames must be > 0: %d", ErrInvalidConfig, maxFrames)
	}

	if err := gradient.validate(min, max); err != nil {
		return nil, nil, err
	}

	value = core.Clamp(value, min, max)
	shared := &cell{}
	shared.store(value)

	out := unit.ToOutput(value)
	p := &Param{
		shared:       shared,
		unit:         unit,
		sampleRate:   sampleRate,
		smoothFrames: core.SecondsToFrames(smoothSecs, sampleRate),
		maxFrames:    maxFrames,
		lastBits:     shared.bits.Load(),
		current:      out,
		start:        out,
		target:       out,
		buf:          make([]float64, core.RoundUp(maxFrames, cpu.MaxVectorWidth)),
	}

	h := &Handle{
		shared:   shared,
		min:      min,
		max:      max,
		gradient: gradient,
		unit:     unit,
	}

	return p, h, nil
}

// Smoothed returns the parameter's values for a block of frames samples.
//
// It must be called at most once per block: each call advances the ramp by
// frames. A zero-frame call returns an empty output and changes nothing.
// Asking for more than the configured maximum block is a contract
// violation and panics.
func (p *Param) Smoothed(frames int) SmoothOutput {
	if frames <= 0 {
		return SmoothOutput{Values: p.buf[:0]}
	}

	if frames > p.maxFrames {
		panic(fmt.Sprintf("param: %d frames exceed max block size %d", frames, p.maxFrames))
	}

	if bits := p.shared.bits.Load(); bits != p.lastBits {
		p.lastBits = bits
		p.aim(p.unit.ToOutput(math.Float64frombits(bits)))
	}

	values := p.buf[:frames]

	if p.pos >= p.length {
		if p.filled < frames || p.filledValue != p.current {
			for i := range values {
				values[i] = p.current
			}

			p.filled = frames
			p.filledValue = p.current
		}

		return SmoothOutput{Values: values}
	}

	n := min(frames, p.length-p.pos)
	for i := range n {
		p.pos++
		values[i] = p.start + p.step*float64(p.pos)
	}

	if p.pos >= p.length {
		values[n-1] = p.target
	}

	p.current = values[n-1]

	for i := n; i < frames; i++ {
		values[i] = p.target
	}

	p.filled = 0

	return SmoothOutput{Values: values, smoothing: true}
}

// aim starts a new ramp from the current position toward target.
func (p *Param) aim(target float64) {
	if target == p.target {
		return
	}

	p.target = target

	if p.smoothFrames == 0 || target == p.current {
		p.current = target
		p.pos, p.length = 0, 0
		return
	}

	p.start = p.current
	p.length = p.smoothFrames
	p.pos = 0
	p.step = (target - p.start) / float64(p.length)
}

// Settle jumps straight to the latest published target, dropping any ramp
// in progress. Useful when playback restarts and a ramp would be audible.
func (p *Param) Settle() {
	p.lastBits = p.shared.bits.Load()
	p.target = p.unit.ToOutput(math.Float64frombits(p.lastBits))
	p.current = p.target
	p.pos, p.length = 0, 0
}

// Current returns the output-domain value reached at the end of the last
// processed block.
func (p *Param) Current() float64 {
	return p.current
}

// Target returns the output-domain value the parameter is heading to, as
// of the last processed block.
func (p *Param) Target() float64 {
	return p.target
}

// Value returns the latest published target in the natural unit.
func (p *Param) Value() float64 {
	return p.shared.load()
}

// Unit returns the parameter's unit tag.
func (p *Param) Unit() Unit {
	return p.unit
}

// SampleRate returns the sample rate the ramp length was computed for.
func (p *Param) SampleRate() float64 {
	return p.sampleRate
}

// SmoothFrames returns the ramp length in frames.
func (p *Param) SmoothFrames() int {
	return p.smoothFrames
}

// MaxFrames returns the largest block Smoothed accepts.
func (p *Param) MaxFrames() int {
	return p.maxFrames
}
