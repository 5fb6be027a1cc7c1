// Package convert provides nodes that change a signal's channel layout.
package convert

import (
	"github.com/cwbudde/algo-engine/dsp/buffer"
	"github.com/cwbudde/algo-engine/dsp/graph"
	"github.com/cwbudde/algo-engine/dsp/param"
	"github.com/cwbudde/algo-engine/internal/assert"
	"github.com/cwbudde/algo-engine/internal/kernel"
	"github.com/cwbudde/algo-engine/internal/kernel/registry"
)

// Registry kinds of the conversion nodes.
const (
	KindMonoToStereo = "mono-to-stereo"
	KindStereoToMono = "stereo-to-mono"
)

// MonoToStereo copies one mono input to both channels of a stereo output.
type MonoToStereo struct{}

// NewMonoToStereo returns a mono to stereo node.
func NewMonoToStereo() *MonoToStereo {
	return &MonoToStereo{}
}

// Ports implements graph.Node.
func (n *MonoToStereo) Ports() graph.Ports {
	return graph.Ports{MonoIn: 1, StereoOut: 1}
}

// Process implements graph.Node.
func (n *MonoToStereo) Process(
	proc *graph.ProcInfo,
	_ graph.Transport,
	monoIn []buffer.MonoRef,
	_ []buffer.MonoRefMut,
	_ []buffer.StereoRef,
	stereoOut []buffer.StereoRefMut,
) {
	frames := proc.Frames()
	if frames == 0 || len(stereoOut) == 0 {
		return
	}

	assert.Ports("mono-to-stereo", "mono in", 1, len(monoIn))

	dst := stereoOut[0].Get()
	if len(monoIn) == 0 {
		dst.Clear(frames)
		return
	}

	src := monoIn[0].Get().Frames(frames)
	copy(dst.Left[:frames], src)
	copy(dst.Right[:frames], src)
}

// StereoToMono writes the average of the left and right input channels.
type StereoToMono struct {
	ops *registry.OpEntry
}

// NewStereoToMono returns a stereo to mono node.
func NewStereoToMono() *StereoToMono {
	return &StereoToMono{ops: kernel.Active()}
}

// Ports implements graph.Node.
func (n *StereoToMono) Ports() graph.Ports {
	return graph.Ports{StereoIn: 1, MonoOut: 1}
}

// Process implements graph.Node.
func (n *StereoToMono) Process(
	proc *graph.ProcInfo,
	_ graph.Transport,
	_ []buffer.MonoRef,
	monoOut []buffer.MonoRefMut,
	stereoIn []buffer.StereoRef,
	_ []buffer.StereoRefMut,
) {
	frames := proc.Frames()
	if frames == 0 || len(monoOut) == 0 {
		return
	}

	assert.Ports("stereo-to-mono", "stereo in", 1, len(stereoIn))

	dst := monoOut[0].Get()
	if len(stereoIn) == 0 {
		dst.Clear(frames)
		return
	}

	src := stereoIn[0].Get()
	n.ops.Add(dst.Data, src.Left, src.Right, frames)
	n.ops.Scale(dst.Data, dst.Data, frames, 0.5)
}

// Register adds both conversion factories to reg.
func Register(reg *graph.Registry) {
	reg.MustRegister(KindMonoToStereo, func(graph.Context) (graph.Node, param.Bundle, error) {
		return NewMonoToStereo(), param.Bundle{}, nil
	})

	reg.MustRegister(KindStereoToMono, func(graph.Context) (graph.Node, param.Bundle, error) {
		return NewStereoToMono(), param.Bundle{}, nil
	})
}
