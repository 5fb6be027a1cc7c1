package graph

import "github.com/cwbudde/algo-engine/dsp/buffer"

// constNode writes a fixed value into its single mono output.
type constNode struct {
	value float64
	calls int
	last  Transport
}

func (n *constNode) Ports() Ports { return Ports{MonoOut: 1} }

func (n *constNode) Process(
	proc *ProcInfo,
	transport Transport,
	_ []buffer.MonoRef,
	monoOut []buffer.MonoRefMut,
	_ []buffer.StereoRef,
	_ []buffer.StereoRefMut,
) {
	n.calls++
	n.last = transport

	out := monoOut[0].Get().Frames(proc.Frames())
	for i := range out {
		out[i] = n.value
	}
}

// scaleNode multiplies a mono input into a stereo output, L by l and R by r.
type scaleNode struct {
	l, r float64
}

func (n *scaleNode) Ports() Ports { return Ports{MonoIn: 1, StereoOut: 1} }

func (n *scaleNode) Process(
	proc *ProcInfo,
	_ Transport,
	monoIn []buffer.MonoRef,
	_ []buffer.MonoRefMut,
	_ []buffer.StereoRef,
	stereoOut []buffer.StereoRefMut,
) {
	in := monoIn[0].Get().Frames(proc.Frames())
	left, right := stereoOut[0].Get().Frames(proc.Frames())

	for i, v := range in {
		left[i] = v * n.l
		right[i] = v * n.r
	}
}
