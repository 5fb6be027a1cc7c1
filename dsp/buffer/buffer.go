package buffer

import (
	"github.com/cwbudde/algo-engine/dsp/core"
	"github.com/cwbudde/algo-engine/internal/cpu"
)

// Mono is a single-channel block buffer.
//
// len(Data) is the padded capacity, so kernels may be handed the whole
// slice together with a frame count.
type Mono struct {
	Data []float64
}

// NewMono returns a zeroed buffer able to hold maxFrames samples.
func NewMono(maxFrames int) Mono {
	return Mono{Data: make([]float64, padded(maxFrames))}
}

// Frames returns the first n samples.
func (m Mono) Frames(n int) []float64 {
	return m.Data[:n]
}

// Clear writes silence to the first frames samples.
func (m Mono) Clear(frames int) {
	clear(m.Data[:frames])
}

// CopyFrom copies the first frames samples of src.
func (m Mono) CopyFrom(src Mono, frames int) {
	copy(m.Data[:frames], src.Data[:frames])
}

// Stereo is a two-channel block buffer with separate left and right planes.
type Stereo struct {
	Left  []float64
	Right []float64
}

// NewStereo returns a zeroed buffer able to hold maxFrames samples per
// channel.
func NewStereo(maxFrames int) Stereo {
	n := padded(maxFrames)

	data := make([]float64, 2*n)

	return Stereo{
		Left:  data[:n:n],
		Right: data[n:],
	}
}

// Frames returns the first n samples of each channel.
func (s Stereo) Frames(n int) (left, right []float64) {
	return s.Left[:n], s.Right[:n]
}

// Clear writes silence to the first frames samples of both channels.
func (s Stereo) Clear(frames int) {
	clear(s.Left[:frames])
	clear(s.Right[:frames])
}

// CopyFrom copies the first frames samples of both channels of src.
func (s Stereo) CopyFrom(src Stereo, frames int) {
	copy(s.Left[:frames], src.Left[:frames])
	copy(s.Right[:frames], src.Right[:frames])
}

func padded(maxFrames int) int {
	if maxFrames < 0 {
		maxFrames = 0
	}

	return core.RoundUp(maxFrames, cpu.MaxVectorWidth)
}
