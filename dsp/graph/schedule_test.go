package graph

import (
	"errors"
	"testing"

	"github.com/cwbudde/algo-engine/dsp/buffer"
	"github.com/cwbudde/algo-engine/internal/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestSchedule(mono, stereo, frames int) *Schedule {
	return NewSchedule(buffer.NewPool(mono, stereo, frames), WithLogger(log.Discard()))
}

func TestScheduleProcessRunsInOrder(t *testing.T) {
	s := newTestSchedule(1, 1, 64)

	src := &constNode{value: 0.5}
	srcID, err := s.Add(src, Wiring{MonoOut: []int{0}})
	require.NoError(t, err)

	_, err = s.Add(&scaleNode{l: 2, r: -1}, Wiring{MonoIn: []int{0}, StereoOut: []int{0}})
	require.NoError(t, err)

	assert.Equal(t, 2, s.Len())
	assert.Same(t, src, s.Node(srcID))

	tr := Transport{Playhead: 480, Playing: true, SampleRate: 48000}
	s.Process(48, tr)

	assert.Equal(t, 1, src.calls)
	assert.Equal(t, tr, src.last)
	assert.True(t, s.Pool().Idle())

	r := s.Pool().Stereo(0).Borrow()
	left, right := r.Get().Frames(48)
	for i := range left {
		assert.Equal(t, 1.0, left[i])
		assert.Equal(t, -0.5, right[i])
	}
	r.Release()
}

func TestScheduleKeepsItsOwnWiring(t *testing.T) {
	s := newTestSchedule(2, 1, 32)

	srcWiring := Wiring{MonoOut: []int{0}}
	_, err := s.Add(&constNode{value: 0.25}, srcWiring)
	require.NoError(t, err)

	scaleWiring := Wiring{MonoIn: []int{0}, StereoOut: []int{0}}
	_, err = s.Add(&scaleNode{l: 1, r: 1}, scaleWiring)
	require.NoError(t, err)

	srcWiring.MonoOut[0] = 1
	scaleWiring.MonoIn[0] = 7

	require.NotPanics(t, func() { s.Process(32, Transport{}) })

	r := s.Pool().Mono(1).Borrow()
	assert.Equal(t, 0.0, r.Get().Data[0])
	r.Release()

	st := s.Pool().Stereo(0).Borrow()
	left, _ := st.Get().Frames(32)
	assert.Equal(t, 0.25, left[31])
	st.Release()
}

func TestScheduleZeroFramesIsNoop(t *testing.T) {
	s := newTestSchedule(1, 0, 64)

	src := &constNode{value: 1}
	_, err := s.Add(src, Wiring{MonoOut: []int{0}})
	require.NoError(t, err)

	s.Process(0, Transport{})
	assert.Zero(t, src.calls)

	r := s.Pool().Mono(0).Borrow()
	assert.Equal(t, 0.0, r.Get().Data[0])
	r.Release()
}

func TestScheduleRejectsOversizedBlock(t *testing.T) {
	s := newTestSchedule(1, 0, 64)

	assert.Panics(t, func() { s.Process(65, Transport{}) })
	assert.Panics(t, func() { s.Process(-1, Transport{}) })
}

func TestScheduleAddValidation(t *testing.T) {
	tests := []struct {
		name   string
		node   Node
		wiring Wiring
		want   error
	}{
		{"nil node", nil, Wiring{}, ErrInvalidWiring},
		{"port count", &constNode{}, Wiring{}, ErrPortMismatch},
		{"mono slot range", &constNode{}, Wiring{MonoOut: []int{2}}, ErrInvalidWiring},
		{"negative slot", &constNode{}, Wiring{MonoOut: []int{-1}}, ErrInvalidWiring},
		{"stereo slot range", &scaleNode{}, Wiring{MonoIn: []int{0}, StereoOut: []int{1}}, ErrInvalidWiring},
		{"input range", &scaleNode{}, Wiring{MonoIn: []int{5}, StereoOut: []int{0}}, ErrInvalidWiring},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newTestSchedule(2, 1, 16)

			_, err := s.Add(tt.node, tt.wiring)
			assert.True(t, errors.Is(err, tt.want), "got %v", err)
			assert.Zero(t, s.Len())
		})
	}
}

func TestCheckSlotsAliasing(t *testing.T) {
	assert.True(t, errors.Is(checkSlots("mono", []int{0}, []int{0}, 2), ErrInvalidWiring))
	assert.True(t, errors.Is(checkSlots("mono", nil, []int{1, 1}, 2), ErrInvalidWiring))
	assert.NoError(t, checkSlots("mono", []int{0, 0}, []int{1}, 2))
}

func TestScheduleProcessDoesNotAllocate(t *testing.T) {
	s := newTestSchedule(1, 1, 256)

	_, err := s.Add(&constNode{value: 0.5}, Wiring{MonoOut: []int{0}})
	require.NoError(t, err)
	_, err = s.Add(&scaleNode{l: 1, r: 1}, Wiring{MonoIn: []int{0}, StereoOut: []int{0}})
	require.NoError(t, err)

	tr := Transport{Playing: true, SampleRate: 48000}
	allocs := testing.AllocsPerRun(100, func() {
		s.Process(256, tr)
		tr = tr.Advance(256)
	})
	assert.Zero(t, allocs)
}

func BenchmarkScheduleProcess(b *testing.B) {
	s := newTestSchedule(1, 1, 256)
	_, _ = s.Add(&constNode{value: 0.5}, Wiring{MonoOut: []int{0}})
	_, _ = s.Add(&scaleNode{l: 1, r: 1}, Wiring{MonoIn: []int{0}, StereoOut: []int{0}})

	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		s.Process(256, Transport{})
	}
}
