//go:build debug

package gain

import (
	"testing"

	"github.com/cwbudde/algo-engine/dsp/buffer"
	"github.com/cwbudde/algo-engine/dsp/graph"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMissingPortPanicsUnderDebug(t *testing.T) {
	n, _, err := NewMono(0, -60, 12, sampleRate, 64)
	require.NoError(t, err)

	out := buffer.NewCell(buffer.NewMono(64))
	outs := []buffer.MonoRefMut{out.BorrowMut()}
	defer outs[0].Release()

	proc := graph.NewProcInfo(64)
	assert.Panics(t, func() {
		n.Process(&proc, graph.Transport{}, nil, outs, nil, nil)
	})
}

func TestOversizedBlockPanicsUnderDebug(t *testing.T) {
	n, _, err := NewStereo(0, -60, 12, sampleRate, 256)
	require.NoError(t, err)

	in := buffer.NewCell(buffer.NewStereo(64))
	out := buffer.NewCell(buffer.NewStereo(64))
	ins := []buffer.StereoRef{in.Borrow()}
	outs := []buffer.StereoRefMut{out.BorrowMut()}

	defer ins[0].Release()
	defer outs[0].Release()

	proc := graph.NewProcInfo(128)
	assert.Panics(t, func() {
		n.Process(&proc, graph.Transport{}, nil, nil, ins, outs)
	})
}
