package graph

import (
	"errors"
	"fmt"
	"slices"

	"github.com/rs/xid"
	"github.com/sirupsen/logrus"

	"github.com/cwbudde/algo-engine/dsp/buffer"
	"github.com/cwbudde/algo-engine/internal/log"
)

// ErrInvalidWiring is returned when a node's wiring refers to slots that
// do not exist or aliases an output.
var ErrInvalidWiring = errors.New("graph: invalid wiring")

// Wiring assigns pool slots to a node's ports, in port order.
type Wiring struct {
	MonoIn    []int
	MonoOut   []int
	StereoIn  []int
	StereoOut []int
}

type step struct {
	id     xid.ID
	node   Node
	wiring Wiring

	monoIn    []buffer.MonoRef
	monoOut   []buffer.MonoRefMut
	stereoIn  []buffer.StereoRef
	stereoOut []buffer.StereoRefMut
}

// Schedule runs nodes in the order they were added, handing each one
// borrowed buffers from a shared pool. It makes no decisions about
// topology: the caller orders the nodes and assigns the slots.
type Schedule struct {
	pool   *buffer.Pool
	steps  []*step
	proc   ProcInfo
	logger log.Logger
}

// ScheduleOption configures a Schedule.
type ScheduleOption func(*Schedule)

// WithLogger sets the logger used while building the schedule.
func WithLogger(l log.Logger) ScheduleOption {
	return func(s *Schedule) {
		if l != nil {
			s.logger = l
		}
	}
}

// NewSchedule returns an empty schedule over pool.
func NewSchedule(pool *buffer.Pool, opts ...ScheduleOption) *Schedule {
	s := &Schedule{
		pool:   pool,
		logger: log.GetLogger(),
	}

	for _, opt := range opts {
		opt(s)
	}

	return s
}

// Add appends node to the schedule with the given slot assignment. The
// wiring is copied and checked against the node's ports and the pool here,
// so Process never has to. Later edits to w do not reach the schedule.
func (s *Schedule) Add(node Node, w Wiring) (xid.ID, error) {
	w = Wiring{
		MonoIn:    slices.Clone(w.MonoIn),
		MonoOut:   slices.Clone(w.MonoOut),
		StereoIn:  slices.Clone(w.StereoIn),
		StereoOut: slices.Clone(w.StereoOut),
	}

	if node == nil {
		return xid.NilID(), fmt.Errorf("%w: nil node", ErrInvalidWiring)
	}

	if err := CheckPorts(node, len(w.MonoIn), len(w.MonoOut), len(w.StereoIn), len(w.StereoOut)); err != nil {
		return xid.NilID(), err
	}

	if err := checkSlots("mono", w.MonoIn, w.MonoOut, s.pool.MonoLen()); err != nil {
		return xid.NilID(), err
	}

	if err := checkSlots("stereo", w.StereoIn, w.StereoOut, s.pool.StereoLen()); err != nil {
		return xid.NilID(), err
	}

	st := &step{
		id:        xid.New(),
		node:      node,
		wiring:    w,
		monoIn:    make([]buffer.MonoRef, len(w.MonoIn)),
		monoOut:   make([]buffer.MonoRefMut, len(w.MonoOut)),
		stereoIn:  make([]buffer.StereoRef, len(w.StereoIn)),
		stereoOut: make([]buffer.StereoRefMut, len(w.StereoOut)),
	}
	s.steps = append(s.steps, st)

	s.logger.WithFields(logrus.Fields{
		"id":    st.id.String(),
		"node":  fmt.Sprintf("%T", node),
		"ports": node.Ports().String(),
	}).Debug("node scheduled")

	return st.id, nil
}

func checkSlots(kind string, in, out []int, n int) error {
	for _, i := range in {
		if i < 0 || i >= n {
			return fmt.Errorf("%w: %s input slot %d out of range [0, %d)", ErrInvalidWiring, kind, i, n)
		}
	}

	for j, o := range out {
		if o < 0 || o >= n {
			return fmt.Errorf("%w: %s output slot %d out of range [0, %d)", ErrInvalidWiring, kind, o, n)
		}

		for _, prev := range out[:j] {
			if prev == o {
				return fmt.Errorf("%w: %s output slot %d used twice", ErrInvalidWiring, kind, o)
			}
		}

		for _, i := range in {
			if i == o {
				return fmt.Errorf("%w: %s slot %d is both input and output", ErrInvalidWiring, kind, o)
			}
		}
	}

	return nil
}

// Len returns the number of scheduled nodes.
func (s *Schedule) Len() int {
	return len(s.steps)
}

// Node returns the node with the given id, or nil.
func (s *Schedule) Node(id xid.ID) Node {
	for _, st := range s.steps {
		if st.id == id {
			return st.node
		}
	}

	return nil
}

// Pool returns the buffer pool the schedule draws from.
func (s *Schedule) Pool() *buffer.Pool {
	return s.pool
}

// Process runs one block of frames samples through every node in order.
// It does not allocate. A zero-frame block does nothing; a block larger
// than the pool's buffers panics.
func (s *Schedule) Process(frames int, transport Transport) {
	if frames == 0 {
		return
	}

	if frames < 0 || frames > s.pool.MaxFrames() {
		panic(fmt.Sprintf("graph: %d frames outside [0, %d]", frames, s.pool.MaxFrames()))
	}

	s.proc = NewProcInfo(frames)

	for _, st := range s.steps {
		s.run(st, transport)
	}
}

func (s *Schedule) run(st *step, transport Transport) {
	for i, slot := range st.wiring.MonoIn {
		st.monoIn[i] = s.pool.Mono(slot).Borrow()
	}

	for i, slot := range st.wiring.StereoIn {
		st.stereoIn[i] = s.pool.Stereo(slot).Borrow()
	}

	for i, slot := range st.wiring.MonoOut {
		st.monoOut[i] = s.pool.Mono(slot).BorrowMut()
	}

	for i, slot := range st.wiring.StereoOut {
		st.stereoOut[i] = s.pool.Stereo(slot).BorrowMut()
	}

	st.node.Process(&s.proc, transport, st.monoIn, st.monoOut, st.stereoIn, st.stereoOut)

	for i := range st.monoIn {
		st.monoIn[i].Release()
	}

	for i := range st.stereoIn {
		st.stereoIn[i].Release()
	}

	for i := range st.monoOut {
		st.monoOut[i].Release()
	}

	for i := range st.stereoOut {
		st.stereoOut[i].Release()
	}
}
