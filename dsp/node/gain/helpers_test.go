package gain

import (
	"github.com/cwbudde/algo-engine/dsp/buffer"
	"github.com/cwbudde/algo-engine/dsp/graph"
)

// monoRig feeds one input cell through a node into one output cell.
type monoRig struct {
	proc    graph.ProcInfo
	in, out *buffer.MonoCell
	ins     []buffer.MonoRef
	outs    []buffer.MonoRefMut
}

// newMonoRig loads src into the input cell. Samples past len(src) stay zero.
func newMonoRig(maxFrames int, src []float64) *monoRig {
	r := &monoRig{
		in:   buffer.NewCell(buffer.NewMono(maxFrames)),
		out:  buffer.NewCell(buffer.NewMono(maxFrames)),
		ins:  make([]buffer.MonoRef, 1),
		outs: make([]buffer.MonoRefMut, 1),
	}

	w := r.in.BorrowMut()
	copy(w.Get().Data, src)
	w.Release()

	return r
}

// process runs one block and leaves the result in the output cell.
func (r *monoRig) process(n graph.Node, frames int) {
	r.proc = graph.NewProcInfo(frames)

	r.ins[0] = r.in.Borrow()
	r.outs[0] = r.out.BorrowMut()

	n.Process(&r.proc, graph.Transport{}, r.ins, r.outs, nil, nil)

	r.ins[0].Release()
	r.outs[0].Release()
}

// run processes one block and returns a copy of its output.
func (r *monoRig) run(n graph.Node, frames int) []float64 {
	r.process(n, frames)

	ref := r.out.Borrow()
	got := append([]float64(nil), ref.Get().Frames(frames)...)
	ref.Release()

	return got
}

type stereoRig struct {
	proc    graph.ProcInfo
	in, out *buffer.StereoCell
	ins     []buffer.StereoRef
	outs    []buffer.StereoRefMut
}

func newStereoRig(maxFrames int, left, right []float64) *stereoRig {
	r := &stereoRig{
		in:   buffer.NewCell(buffer.NewStereo(maxFrames)),
		out:  buffer.NewCell(buffer.NewStereo(maxFrames)),
		ins:  make([]buffer.StereoRef, 1),
		outs: make([]buffer.StereoRefMut, 1),
	}

	w := r.in.BorrowMut()
	copy(w.Get().Left, left)
	copy(w.Get().Right, right)
	w.Release()

	return r
}

func (r *stereoRig) run(n graph.Node, frames int) (left, right []float64) {
	r.proc = graph.NewProcInfo(frames)

	r.ins[0] = r.in.Borrow()
	r.outs[0] = r.out.BorrowMut()

	n.Process(&r.proc, graph.Transport{}, nil, nil, r.ins, r.outs)

	r.ins[0].Release()
	r.outs[0].Release()

	ref := r.out.Borrow()
	l, rr := ref.Get().Frames(frames)
	left = append([]float64(nil), l...)
	right = append([]float64(nil), rr...)
	ref.Release()

	return left, right
}
