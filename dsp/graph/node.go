// Package graph defines the contract between the engine and its nodes: the
// Node interface, the per-block context, the transport snapshot, a registry
// of node factories, and a minimal runner that calls nodes in a fixed
// caller-supplied order.
package graph

import (
	"errors"
	"fmt"

	"github.com/cwbudde/algo-engine/dsp/buffer"
)

// ErrPortMismatch is returned when supplied buffers do not match a node's
// declared ports.
var ErrPortMismatch = errors.New("graph: port count mismatch")

// Ports declares how many buffers of each kind a node consumes and
// produces.
type Ports struct {
	MonoIn    int
	MonoOut   int
	StereoIn  int
	StereoOut int
}

// String implements fmt.Stringer.
func (p Ports) String() string {
	return fmt.Sprintf("mono %d→%d, stereo %d→%d", p.MonoIn, p.MonoOut, p.StereoIn, p.StereoOut)
}

// ProcInfo is the per-block processing context.
type ProcInfo struct {
	frames int
}

// NewProcInfo returns a context for a block of frames samples.
func NewProcInfo(frames int) ProcInfo {
	if frames < 0 {
		frames = 0
	}

	return ProcInfo{frames: frames}
}

// Frames returns the number of samples to process in this block.
func (p *ProcInfo) Frames() int {
	return p.frames
}

// Transport is a snapshot of the timeline at the start of a block. Nodes
// receive a copy and cannot change the engine's transport.
type Transport struct {
	// Playhead is the position in frames.
	Playhead int64

	Playing bool
	Looping bool

	// LoopStart and LoopEnd are in frames.
	LoopStart int64
	LoopEnd   int64

	BPM        float64
	SampleRate float64
}

// Seconds returns the playhead position in seconds, or 0 if the sample
// rate is unset.
func (t Transport) Seconds() float64 {
	if t.SampleRate <= 0 {
		return 0
	}

	return float64(t.Playhead) / t.SampleRate
}

// Beats returns the playhead position in beats, or 0 if tempo or sample
// rate is unset.
func (t Transport) Beats() float64 {
	if t.BPM <= 0 {
		return 0
	}

	return t.Seconds() * t.BPM / 60
}

// Advance returns the transport moved forward by frames, wrapping inside
// the loop when looping. A stopped transport does not move.
func (t Transport) Advance(frames int) Transport {
	if !t.Playing || frames <= 0 {
		return t
	}

	t.Playhead += int64(frames)

	if t.Looping && t.LoopEnd > t.LoopStart && t.Playhead >= t.LoopEnd {
		t.Playhead = t.LoopStart + (t.Playhead-t.LoopStart)%(t.LoopEnd-t.LoopStart)
	}

	return t
}

// Node is a unit of block processing.
//
// Process is called on the audio thread once per block with exactly as
// many buffer handles of each kind as Ports declares. A node must produce
// proc.Frames() samples into every output, must not block or allocate, and
// must treat inputs as read-only. The first proc.Frames() samples of each
// buffer are meaningful; later samples up to the buffer length are
// scratch.
type Node interface {
	Ports() Ports
	Process(
		proc *ProcInfo,
		transport Transport,
		monoIn []buffer.MonoRef,
		monoOut []buffer.MonoRefMut,
		stereoIn []buffer.StereoRef,
		stereoOut []buffer.StereoRefMut,
	)
}

// CheckPorts reports whether the given buffer counts match the node's
// declaration.
func CheckPorts(n Node, monoIn, monoOut, stereoIn, stereoOut int) error {
	want := n.Ports()
	got := Ports{MonoIn: monoIn, MonoOut: monoOut, StereoIn: stereoIn, StereoOut: stereoOut}

	if want != got {
		return fmt.Errorf("%w: declared %s, supplied %s", ErrPortMismatch, want, got)
	}

	return nil
}
