// Package sum provides nodes that mix several buffers into one.
package sum

import (
	"errors"
	"fmt"

	"github.com/cwbudde/algo-engine/dsp/buffer"
	"github.com/cwbudde/algo-engine/dsp/graph"
	"github.com/cwbudde/algo-engine/dsp/param"
	"github.com/cwbudde/algo-engine/internal/assert"
	"github.com/cwbudde/algo-engine/internal/kernel"
	"github.com/cwbudde/algo-engine/internal/kernel/registry"
)

const (
	// KindMono and KindStereo are the registry kinds of the two nodes.
	KindMono   = "sum-mono"
	KindStereo = "sum-stereo"

	// ParamInputs is the factory context key for the input count.
	ParamInputs = "inputs"
)

// ErrNoInputs is returned when a sum node is built with fewer than one input.
var ErrNoInputs = errors.New("sum: at least one input required")

// Mono writes the sample-wise sum of its mono inputs.
type Mono struct {
	inputs int
	ops    *registry.OpEntry
}

// NewMono returns a node summing inputs mono buffers.
func NewMono(inputs int) (*Mono, error) {
	if inputs < 1 {
		return nil, fmt.Errorf("%w: %d", ErrNoInputs, inputs)
	}

	return &Mono{inputs: inputs, ops: kernel.Active()}, nil
}

// Ports implements graph.Node.
func (n *Mono) Ports() graph.Ports {
	return graph.Ports{MonoIn: n.inputs, MonoOut: 1}
}

// Process implements graph.Node.
func (n *Mono) Process(
	proc *graph.ProcInfo,
	_ graph.Transport,
	monoIn []buffer.MonoRef,
	monoOut []buffer.MonoRefMut,
	_ []buffer.StereoRef,
	_ []buffer.StereoRefMut,
) {
	frames := proc.Frames()
	if frames == 0 || len(monoOut) == 0 {
		return
	}

	assert.Ports("sum-mono", "mono in", n.inputs, len(monoIn))

	dst := monoOut[0].Get()

	switch len(monoIn) {
	case 0:
		dst.Clear(frames)
		return
	case 1:
		dst.CopyFrom(monoIn[0].Get(), frames)
		return
	}

	n.ops.Add(dst.Data, monoIn[0].Get().Data, monoIn[1].Get().Data, frames)

	for i := 2; i < len(monoIn); i++ {
		n.ops.Accumulate(dst.Data, monoIn[i].Get().Data, frames)
	}
}

// Stereo writes the channel-wise sum of its stereo inputs.
type Stereo struct {
	inputs int
	ops    *registry.OpEntry
}

// NewStereo returns a node summing inputs stereo buffers.
func NewStereo(inputs int) (*Stereo, error) {
	if inputs < 1 {
		return nil, fmt.Errorf("%w: %d", ErrNoInputs, inputs)
	}

	return &Stereo{inputs: inputs, ops: kernel.Active()}, nil
}

// Ports implements graph.Node.
func (n *Stereo) Ports() graph.Ports {
	return graph.Ports{StereoIn: n.inputs, StereoOut: 1}
}

// Process implements graph.Node.
func (n *Stereo) Process(
	proc *graph.ProcInfo,
	_ graph.Transport,
	_ []buffer.MonoRef,
	_ []buffer.MonoRefMut,
	stereoIn []buffer.StereoRef,
	stereoOut []buffer.StereoRefMut,
) {
	frames := proc.Frames()
	if frames == 0 || len(stereoOut) == 0 {
		return
	}

	assert.Ports("sum-stereo", "stereo in", n.inputs, len(stereoIn))

	dst := stereoOut[0].Get()

	switch len(stereoIn) {
	case 0:
		dst.Clear(frames)
		return
	case 1:
		dst.CopyFrom(stereoIn[0].Get(), frames)
		return
	}

	a, b := stereoIn[0].Get(), stereoIn[1].Get()
	n.ops.Add(dst.Left, a.Left, b.Left, frames)
	n.ops.Add(dst.Right, a.Right, b.Right, frames)

	for i := 2; i < len(stereoIn); i++ {
		src := stereoIn[i].Get()
		n.ops.Accumulate(dst.Left, src.Left, frames)
		n.ops.Accumulate(dst.Right, src.Right, frames)
	}
}

// Register adds the mono and stereo sum factories to reg. The input count
// is read from the context's "inputs" parameter and defaults to 2.
func Register(reg *graph.Registry) {
	reg.MustRegister(KindMono, func(ctx graph.Context) (graph.Node, param.Bundle, error) {
		n, err := NewMono(int(ctx.GetNum(ParamInputs, 2)))
		if err != nil {
			return nil, nil, err
		}

		return n, param.Bundle{}, nil
	})

	reg.MustRegister(KindStereo, func(ctx graph.Context) (graph.Node, param.Bundle, error) {
		n, err := NewStereo(int(ctx.GetNum(ParamInputs, 2)))
		if err != nil {
			return nil, nil, err
		}

		return n, param.Bundle{}, nil
	})
}
