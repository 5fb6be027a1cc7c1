// Package pan provides a constant-power stereo panner.
//
// A pan position p in [-1, 1] maps to the angle θ = (p+1)·π/4 and the
// channel gains L = cos θ, R = sin θ, so L² + R² = 1 everywhere and the
// center position attenuates each channel by 3 dB.
package pan

import (
	"fmt"
	"math"

	"github.com/cwbudde/algo-engine/dsp/buffer"
	"github.com/cwbudde/algo-engine/dsp/core"
	"github.com/cwbudde/algo-engine/dsp/graph"
	"github.com/cwbudde/algo-engine/dsp/param"
	"github.com/cwbudde/algo-engine/internal/assert"
	"github.com/cwbudde/algo-engine/internal/kernel"
	"github.com/cwbudde/algo-engine/internal/kernel/registry"
)

const (
	// Kind is the registry kind of the pan node.
	Kind = "pan"

	// ParamPan names the pan position in a param.Bundle and in factory
	// contexts.
	ParamPan = "pan"
)

// Gains returns the left and right gains for pan position p.
func Gains(p float64) (left, right float64) {
	theta := (core.Clamp(p, -1, 1) + 1) * math.Pi / 4
	return math.Cos(theta), math.Sin(theta)
}

// Handle is the control side of a pan node.
type Handle struct {
	Pan *param.Handle
}

type config struct {
	smoothSecs float64
}

// Option configures a pan node.
type Option func(*config)

// WithSmoothSecs sets the pan smoothing time.
func WithSmoothSecs(secs float64) Option {
	return func(cfg *config) {
		cfg.smoothSecs = secs
	}
}

// Node pans a stereo signal by scaling its channels.
type Node struct {
	pos *param.Param
	ops *registry.OpEntry

	left, right []float64
}

// New returns a pan node at position p, for blocks of up to maxFrames.
func New(p, sampleRate float64, maxFrames int, opts ...Option) (*Node, *Handle, error) {
	cfg := config{smoothSecs: core.DefaultSmoothSecs}
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	pos, h, err := param.New(p, -1, 1, param.Linear, param.Generic, cfg.smoothSecs, sampleRate, maxFrames)
	if err != nil {
		return nil, nil, fmt.Errorf("pan: %w", err)
	}

	n := len(pos.Smoothed(0).Padded())

	return &Node{
		pos:   pos,
		ops:   kernel.Active(),
		left:  make([]float64, n),
		right: make([]float64, n),
	}, &Handle{Pan: h}, nil
}

// Ports implements graph.Node.
func (n *Node) Ports() graph.Ports {
	return graph.Ports{StereoIn: 1, StereoOut: 1}
}

// Process implements graph.Node.
func (n *Node) Process(
	proc *graph.ProcInfo,
	_ graph.Transport,
	_ []buffer.MonoRef,
	_ []buffer.MonoRefMut,
	stereoIn []buffer.StereoRef,
	stereoOut []buffer.StereoRefMut,
) {
	frames := proc.Frames()
	if frames == 0 {
		return
	}

	assert.Ports("pan", "stereo in", 1, len(stereoIn))
	assert.Ports("pan", "stereo out", 1, len(stereoOut))

	pos := n.pos.Smoothed(frames)

	if len(stereoOut) == 0 {
		return
	}

	dst := stereoOut[0].Get()
	if len(stereoIn) == 0 {
		dst.Clear(frames)
		return
	}

	src := stereoIn[0].Get()

	if !pos.IsSmoothing() {
		l, r := Gains(pos.Constant())
		n.ops.Scale(dst.Left, src.Left, frames, l)
		n.ops.Scale(dst.Right, src.Right, frames, r)
		return
	}

	for i, p := range pos.Values {
		n.left[i], n.right[i] = Gains(p)
	}

	n.ops.Mul(dst.Left, src.Left, n.left, frames)
	n.ops.Mul(dst.Right, src.Right, n.right, frames)
}

// Register adds the pan factory to reg. The initial position is read from
// the context's "pan" parameter.
func Register(reg *graph.Registry) {
	reg.MustRegister(Kind, func(ctx graph.Context) (graph.Node, param.Bundle, error) {
		n, h, err := New(ctx.GetNum(ParamPan, 0), ctx.SampleRate, ctx.MaxBlockSize, WithSmoothSecs(ctx.SmoothSecs))
		if err != nil {
			return nil, nil, err
		}

		return n, param.Bundle{ParamPan: h.Pan}, nil
	})
}
