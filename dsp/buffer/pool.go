package buffer

import "fmt"

// Pool owns a fixed set of mono and stereo buffer cells, allocated once up
// front so nothing is allocated while blocks are processed.
type Pool struct {
	mono      []*MonoCell
	stereo    []*StereoCell
	maxFrames int
}

// NewPool allocates mono and stereo cells for blocks of up to maxFrames
// samples.
func NewPool(mono, stereo, maxFrames int) *Pool {
	if mono < 0 || stereo < 0 || maxFrames <= 0 {
		panic(fmt.Sprintf("buffer: invalid pool size mono=%d stereo=%d frames=%d", mono, stereo, maxFrames))
	}

	p := &Pool{
		mono:      make([]*MonoCell, mono),
		stereo:    make([]*StereoCell, stereo),
		maxFrames: maxFrames,
	}

	for i := range p.mono {
		p.mono[i] = NewCell(NewMono(maxFrames))
	}

	for i := range p.stereo {
		p.stereo[i] = NewCell(NewStereo(maxFrames))
	}

	return p
}

// Mono returns the i-th mono cell.
func (p *Pool) Mono(i int) *MonoCell {
	return p.mono[i]
}

// Stereo returns the i-th stereo cell.
func (p *Pool) Stereo(i int) *StereoCell {
	return p.stereo[i]
}

// MonoLen returns the number of mono cells.
func (p *Pool) MonoLen() int {
	return len(p.mono)
}

// StereoLen returns the number of stereo cells.
func (p *Pool) StereoLen() int {
	return len(p.stereo)
}

// MaxFrames returns the largest block the buffers hold.
func (p *Pool) MaxFrames() int {
	return p.maxFrames
}

// Idle reports whether no cell is borrowed.
func (p *Pool) Idle() bool {
	for _, c := range p.mono {
		if c.State() != Unborrowed {
			return false
		}
	}

	for _, c := range p.stereo {
		if c.State() != Unborrowed {
			return false
		}
	}

	return true
}
