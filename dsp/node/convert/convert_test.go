package convert

import (
	"testing"

	"github.com/cwbudde/algo-engine/dsp/buffer"
	"github.com/cwbudde/algo-engine/dsp/graph"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMonoToStereo(t *testing.T) {
	in := buffer.NewCell(buffer.NewMono(10))
	out := buffer.NewCell(buffer.NewStereo(10))

	w := in.BorrowMut()
	for i := range w.Get().Data {
		w.Get().Data[i] = float64(i)
	}
	w.Release()

	ins := []buffer.MonoRef{in.Borrow()}
	outs := []buffer.StereoRefMut{out.BorrowMut()}
	proc := graph.NewProcInfo(10)

	NewMonoToStereo().Process(&proc, graph.Transport{}, ins, nil, nil, outs)

	l, r := outs[0].Get().Frames(10)
	for i := range l {
		assert.Equal(t, float64(i), l[i])
		assert.Equal(t, float64(i), r[i])
	}

	ins[0].Release()
	outs[0].Release()
}

func TestStereoToMono(t *testing.T) {
	in := buffer.NewCell(buffer.NewStereo(13))
	out := buffer.NewCell(buffer.NewMono(13))

	w := in.BorrowMut()
	s := w.Get()
	for i := range s.Left {
		s.Left[i] = 1
		s.Right[i] = float64(i)
	}
	w.Release()

	ins := []buffer.StereoRef{in.Borrow()}
	outs := []buffer.MonoRefMut{out.BorrowMut()}
	proc := graph.NewProcInfo(13)

	NewStereoToMono().Process(&proc, graph.Transport{}, nil, outs, ins, nil)

	for i, v := range outs[0].Get().Frames(13) {
		assert.Equal(t, (1+float64(i))*0.5, v)
	}

	ins[0].Release()
	outs[0].Release()
}

func TestZeroFramesLeavesOutput(t *testing.T) {
	in := buffer.NewCell(buffer.NewStereo(8))
	out := buffer.NewCell(buffer.NewMono(8))

	ins := []buffer.StereoRef{in.Borrow()}
	outs := []buffer.MonoRefMut{out.BorrowMut()}
	outs[0].Get().Data[0] = 3

	proc := graph.NewProcInfo(0)
	NewStereoToMono().Process(&proc, graph.Transport{}, nil, outs, ins, nil)
	assert.Equal(t, 3.0, outs[0].Get().Data[0])

	ins[0].Release()
	outs[0].Release()
}

func TestRegister(t *testing.T) {
	reg := graph.NewRegistry()
	Register(reg)

	n, _, err := reg.New(KindMonoToStereo, graph.NewContext())
	require.NoError(t, err)
	assert.Equal(t, graph.Ports{MonoIn: 1, StereoOut: 1}, n.Ports())

	n, _, err = reg.New(KindStereoToMono, graph.NewContext())
	require.NoError(t, err)
	assert.Equal(t, graph.Ports{StereoIn: 1, MonoOut: 1}, n.Ports())
}
