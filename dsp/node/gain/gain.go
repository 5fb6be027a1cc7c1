// Package gain provides mono and stereo gain nodes driven by a smoothed
// decibel parameter.
//
// Each block the node asks its parameter for the block's amplitudes. While
// the parameter is ramping it multiplies sample by sample; once settled it
// scales by a single constant. Both paths run through the kernel table
// resolved for the CPU when the node is built.
package gain

import (
	"fmt"

	"github.com/cwbudde/algo-engine/dsp/buffer"
	"github.com/cwbudde/algo-engine/dsp/core"
	"github.com/cwbudde/algo-engine/dsp/graph"
	"github.com/cwbudde/algo-engine/dsp/param"
	"github.com/cwbudde/algo-engine/internal/assert"
	"github.com/cwbudde/algo-engine/internal/kernel"
	"github.com/cwbudde/algo-engine/internal/kernel/registry"
)

const (
	// KindMono and KindStereo are the registry kinds of the two nodes.
	KindMono   = "gain-mono"
	KindStereo = "gain-stereo"

	// ParamGainDB names the gain parameter in a param.Bundle and in
	// factory contexts.
	ParamGainDB = "gain_db"

	// DefaultMinDB and DefaultMaxDB bound the gain when a factory context
	// does not.
	DefaultMinDB = -90.0
	DefaultMaxDB = 12.0
)

// Handle is the control side of a gain node.
type Handle struct {
	GainDB *param.Handle
}

// Bundle returns the handle's parameters by name.
func (h *Handle) Bundle() param.Bundle {
	return param.Bundle{ParamGainDB: h.GainDB}
}

type config struct {
	smoothSecs float64
}

// Option configures a gain node.
type Option func(*config)

// WithSmoothSecs sets the gain smoothing time. The default is
// core.DefaultSmoothSecs.
func WithSmoothSecs(secs float64) Option {
	return func(cfg *config) {
		cfg.smoothSecs = secs
	}
}

func newGain(gainDB, minDB, maxDB, sampleRate float64, maxFrames int, opts []Option) (*param.Param, *Handle, error) {
	cfg := config{smoothSecs: core.DefaultSmoothSecs}
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	amp, h, err := param.New(
		gainDB, minDB, maxDB,
		param.DBGradient, param.Decibels,
		cfg.smoothSecs, sampleRate, maxFrames,
	)
	if err != nil {
		return nil, nil, fmt.Errorf("gain: %w", err)
	}

	return amp, &Handle{GainDB: h}, nil
}

// Mono applies a smoothed gain to one mono buffer.
type Mono struct {
	amp *param.Param
	ops *registry.OpEntry
}

// NewMono returns a mono gain node starting at gainDB, bounded to
// [minDB, maxDB], for blocks of up to maxFrames samples.
func NewMono(gainDB, minDB, maxDB, sampleRate float64, maxFrames int, opts ...Option) (*Mono, *Handle, error) {
	amp, h, err := newGain(gainDB, minDB, maxDB, sampleRate, maxFrames, opts)
	if err != nil {
		return nil, nil, err
	}

	return &Mono{amp: amp, ops: kernel.Active()}, h, nil
}

// Ports implements graph.Node.
func (n *Mono) Ports() graph.Ports {
	return graph.Ports{MonoIn: 1, MonoOut: 1}
}

// Settle drops any ramp in progress and jumps to the current target.
func (n *Mono) Settle() {
	n.amp.Settle()
}

// Process implements graph.Node.
func (n *Mono) Process(
	proc *graph.ProcInfo,
	_ graph.Transport,
	monoIn []buffer.MonoRef,
	monoOut []buffer.MonoRefMut,
	stereoIn []buffer.StereoRef,
	stereoOut []buffer.StereoRefMut,
) {
	frames := proc.Frames()
	if frames == 0 {
		return
	}

	assert.Ports("gain-mono", "mono in", 1, len(monoIn))
	assert.Ports("gain-mono", "mono out", 1, len(monoOut))
	assert.Ports("gain-mono", "stereo in", 0, len(stereoIn))
	assert.Ports("gain-mono", "stereo out", 0, len(stereoOut))

	amp := n.amp.Smoothed(frames)

	if len(monoOut) == 0 {
		return
	}

	dst := monoOut[0].Get()
	assert.Frames("gain-mono", frames, len(dst.Data))

	if len(monoIn) == 0 {
		dst.Clear(frames)
		return
	}

	src := monoIn[0].Get()

	if amp.IsSmoothing() {
		n.ops.Mul(dst.Data, src.Data, amp.Padded(), frames)
	} else {
		n.ops.Scale(dst.Data, src.Data, frames, amp.Constant())
	}
}

// Stereo applies one smoothed gain to both channels of a stereo buffer.
type Stereo struct {
	amp *param.Param
	ops *registry.OpEntry
}

// NewStereo returns a stereo gain node starting at gainDB, bounded to
// [minDB, maxDB], for blocks of up to maxFrames samples.
func NewStereo(gainDB, minDB, maxDB, sampleRate float64, maxFrames int, opts ...Option) (*Stereo, *Handle, error) {
	amp, h, err := newGain(gainDB, minDB, maxDB, sampleRate, maxFrames, opts)
	if err != nil {
		return nil, nil, err
	}

	return &Stereo{amp: amp, ops: kernel.Active()}, h, nil
}

// Ports implements graph.Node.
func (n *Stereo) Ports() graph.Ports {
	return graph.Ports{StereoIn: 1, StereoOut: 1}
}

// Settle drops any ramp in progress and jumps to the current target.
func (n *Stereo) Settle() {
	n.amp.Settle()
}

// Process implements graph.Node.
func (n *Stereo) Process(
	proc *graph.ProcInfo,
	_ graph.Transport,
	monoIn []buffer.MonoRef,
	monoOut []buffer.MonoRefMut,
	stereoIn []buffer.StereoRef,
	stereoOut []buffer.StereoRefMut,
) {
	frames := proc.Frames()
	if frames == 0 {
		return
	}

	assert.Ports("gain-stereo", "mono in", 0, len(monoIn))
	assert.Ports("gain-stereo", "mono out", 0, len(monoOut))
	assert.Ports("gain-stereo", "stereo in", 1, len(stereoIn))
	assert.Ports("gain-stereo", "stereo out", 1, len(stereoOut))

	amp := n.amp.Smoothed(frames)

	if len(stereoOut) == 0 {
		return
	}

	dst := stereoOut[0].Get()
	assert.Frames("gain-stereo", frames, len(dst.Left))

	if len(stereoIn) == 0 {
		dst.Clear(frames)
		return
	}

	src := stereoIn[0].Get()

	if amp.IsSmoothing() {
		gain := amp.Padded()
		n.ops.Mul(dst.Left, src.Left, gain, frames)
		n.ops.Mul(dst.Right, src.Right, gain, frames)
	} else {
		g := amp.Constant()
		n.ops.Scale(dst.Left, src.Left, frames, g)
		n.ops.Scale(dst.Right, src.Right, frames, g)
	}
}

// Register adds the mono and stereo gain factories to reg. Factories read
// gain_db, min_db and max_db from the context, in decibels.
func Register(reg *graph.Registry) {
	reg.MustRegister(KindMono, func(ctx graph.Context) (graph.Node, param.Bundle, error) {
		gainDB, minDB, maxDB := bounds(ctx)

		n, h, err := NewMono(gainDB, minDB, maxDB, ctx.SampleRate, ctx.MaxBlockSize, WithSmoothSecs(ctx.SmoothSecs))
		if err != nil {
			return nil, nil, err
		}

		return n, h.Bundle(), nil
	})

	reg.MustRegister(KindStereo, func(ctx graph.Context) (graph.Node, param.Bundle, error) {
		gainDB, minDB, maxDB := bounds(ctx)

		n, h, err := NewStereo(gainDB, minDB, maxDB, ctx.SampleRate, ctx.MaxBlockSize, WithSmoothSecs(ctx.SmoothSecs))
		if err != nil {
			return nil, nil, err
		}

		return n, h.Bundle(), nil
	})
}

func bounds(ctx graph.Context) (gainDB, minDB, maxDB float64) {
	return ctx.GetNum(ParamGainDB, 0), ctx.GetNum("min_db", DefaultMinDB), ctx.GetNum("max_db", DefaultMaxDB)
}
