package graph

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCheckPorts(t *testing.T) {
	n := &scaleNode{}

	assert.NoError(t, CheckPorts(n, 1, 0, 0, 1))

	err := CheckPorts(n, 1, 0, 1, 1)
	assert.True(t, errors.Is(err, ErrPortMismatch))
	assert.Contains(t, err.Error(), "stereo 0→1")
}

func TestNewProcInfo(t *testing.T) {
	p := NewProcInfo(128)
	assert.Equal(t, 128, p.Frames())

	p = NewProcInfo(-3)
	assert.Equal(t, 0, p.Frames())
}

func TestTransportTime(t *testing.T) {
	tr := Transport{Playhead: 96000, SampleRate: 48000, BPM: 120}

	assert.Equal(t, 2.0, tr.Seconds())
	assert.Equal(t, 4.0, tr.Beats())

	assert.Equal(t, 0.0, Transport{Playhead: 10}.Seconds())
	assert.Equal(t, 0.0, Transport{Playhead: 10, SampleRate: 48000}.Beats())
}

func TestTransportAdvance(t *testing.T) {
	tests := []struct {
		name   string
		tr     Transport
		frames int
		want   int64
	}{
		{"stopped", Transport{Playhead: 10}, 64, 10},
		{"playing", Transport{Playhead: 10, Playing: true}, 64, 74},
		{"zero frames", Transport{Playhead: 10, Playing: true}, 0, 10},
		{"loop wraps", Transport{Playhead: 90, Playing: true, Looping: true, LoopStart: 50, LoopEnd: 100}, 20, 60},
		{"loop not reached", Transport{Playhead: 60, Playing: true, Looping: true, LoopStart: 50, LoopEnd: 100}, 20, 80},
		{"empty loop ignored", Transport{Playhead: 90, Playing: true, Looping: true, LoopStart: 50, LoopEnd: 50}, 20, 110},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.tr.Advance(tt.frames)
			assert.Equal(t, tt.want, got.Playhead)
		})
	}
}
