package main

import (
	"errors"
	"fmt"
	"io"
	"math"

	"github.com/go-audio/audio"
	"github.com/go-audio/wav"
	"github.com/sirupsen/logrus"

	"github.com/cwbudde/algo-engine/dsp/buffer"
	"github.com/cwbudde/algo-engine/dsp/core"
	"github.com/cwbudde/algo-engine/dsp/graph"
	"github.com/cwbudde/algo-engine/dsp/node/gain"
	"github.com/cwbudde/algo-engine/internal/log"
)

var (
	errInvalidWAV          = errors.New("input is not a valid wav file")
	errUnsupportedChannels = errors.New("only mono and stereo input is supported")
	errUnsupportedBitDepth = errors.New("only 16, 24 and 32 bit integer input is supported")
)

// wavFormatPCM is the fmt chunk tag for integer PCM.
const wavFormatPCM = 1

// renderConfig describes one gain change applied to a file.
type renderConfig struct {
	fromDB, toDB float64

	// at is the time of the change in seconds. It takes effect at the
	// first block starting at or after it.
	at float64

	smoothSecs float64
	block      int
}

type renderStats struct {
	frames     int
	blocks     int
	channels   int
	sampleRate int
	switchedAt int64

	// endGainDB is the gain measured on the last frame of the first
	// channel, or NaN when that input sample is zero.
	endGainDB float64
}

// render reads a wav stream, runs it through a gain node and writes the
// result as a wav stream with the same format.
func render(in io.ReadSeeker, out io.WriteSeeker, cfg renderConfig, logger log.Logger) (renderStats, error) {
	if cfg.block <= 0 {
		return renderStats{}, fmt.Errorf("block size must be > 0: %d", cfg.block)
	}

	dec := wav.NewDecoder(in)
	if !dec.IsValidFile() {
		return renderStats{}, errInvalidWAV
	}

	if dec.WavAudioFormat != wavFormatPCM {
		return renderStats{}, fmt.Errorf("%w: wav format %d", errUnsupportedBitDepth, dec.WavAudioFormat)
	}

	pcm, err := dec.FullPCMBuffer()
	if err != nil {
		return renderStats{}, fmt.Errorf("decode: %w", err)
	}

	channels := int(dec.NumChans)
	sampleRate := int(dec.SampleRate)
	depth := int(dec.BitDepth)

	if channels != 1 && channels != 2 {
		return renderStats{}, fmt.Errorf("%w: %d channels", errUnsupportedChannels, channels)
	}

	if depth != 16 && depth != 24 && depth != 32 {
		return renderStats{}, fmt.Errorf("%w: %d bit", errUnsupportedBitDepth, depth)
	}

	e, err := newEngine(channels, float64(sampleRate), cfg, logger)
	if err != nil {
		return renderStats{}, err
	}

	stats := renderStats{
		frames:     len(pcm.Data) / channels,
		channels:   channels,
		sampleRate: sampleRate,
		switchedAt: -1,
		endGainDB:  math.NaN(),
	}

	scale := float64(int64(1) << (depth - 1))
	result := make([]int, len(pcm.Data))
	switchAt := int64(math.Round(cfg.at * float64(sampleRate)))
	tr := graph.Transport{Playing: true, SampleRate: float64(sampleRate)}

	for start := 0; start < stats.frames; start += cfg.block {
		n := min(cfg.block, stats.frames-start)

		if stats.switchedAt < 0 && tr.Playhead >= switchAt {
			e.handle.GainDB.Set(cfg.toDB)
			stats.switchedAt = tr.Playhead
		}

		lo, hi := start*channels, (start+n)*channels
		e.load(pcm.Data[lo:hi], n, scale)
		e.sched.Process(n, tr)
		e.store(result[lo:hi], n, scale)

		tr = tr.Advance(n)
		stats.blocks++
	}

	if stats.frames > 0 {
		last := (stats.frames - 1) * channels
		if pcm.Data[last] != 0 {
			stats.endGainDB = core.LinearToDB(math.Abs(float64(result[last]) / float64(pcm.Data[last])))
		}
	}

	enc := wav.NewEncoder(out, sampleRate, depth, channels, 1)

	err = enc.Write(&audio.IntBuffer{
		Format:         &audio.Format{NumChannels: channels, SampleRate: sampleRate},
		Data:           result,
		SourceBitDepth: depth,
	})
	if err != nil {
		return stats, fmt.Errorf("encode: %w", err)
	}

	if err := enc.Close(); err != nil {
		return stats, fmt.Errorf("encode: %w", err)
	}

	logger.WithFields(logrus.Fields{
		"frames":      stats.frames,
		"blocks":      stats.blocks,
		"channels":    channels,
		"sample_rate": sampleRate,
		"switched_at": stats.switchedAt,
		"end_gain_db": stats.endGainDB,
	}).Debug("render finished")

	return stats, nil
}

// engine is a one-node schedule with an input and an output slot.
type engine struct {
	pool     *buffer.Pool
	sched    *graph.Schedule
	handle   *gain.Handle
	channels int
}

func newEngine(channels int, sampleRate float64, cfg renderConfig, logger log.Logger) (*engine, error) {
	minDB := math.Min(gain.DefaultMinDB, math.Min(cfg.fromDB, cfg.toDB))
	maxDB := math.Max(gain.DefaultMaxDB, math.Max(cfg.fromDB, cfg.toDB))
	opt := gain.WithSmoothSecs(cfg.smoothSecs)

	e := &engine{channels: channels}

	var (
		node   graph.Node
		wiring graph.Wiring
		err    error
	)

	if channels == 1 {
		e.pool = buffer.NewPool(2, 0, cfg.block)
		node, e.handle, err = gain.NewMono(cfg.fromDB, minDB, maxDB, sampleRate, cfg.block, opt)
		wiring = graph.Wiring{MonoIn: []int{0}, MonoOut: []int{1}}
	} else {
		e.pool = buffer.NewPool(0, 2, cfg.block)
		node, e.handle, err = gain.NewStereo(cfg.fromDB, minDB, maxDB, sampleRate, cfg.block, opt)
		wiring = graph.Wiring{StereoIn: []int{0}, StereoOut: []int{1}}
	}

	if err != nil {
		return nil, err
	}

	e.sched = graph.NewSchedule(e.pool, graph.WithLogger(logger))
	if _, err := e.sched.Add(node, wiring); err != nil {
		return nil, err
	}

	return e, nil
}

// load de-interleaves n frames of PCM into the input slot.
func (e *engine) load(pcm []int, n int, scale float64) {
	if e.channels == 1 {
		w := e.pool.Mono(0).BorrowMut()
		d := w.Get().Data
		for i := range n {
			d[i] = float64(pcm[i]) / scale
		}
		w.Release()
		return
	}

	w := e.pool.Stereo(0).BorrowMut()
	s := w.Get()
	for i := range n {
		s.Left[i] = float64(pcm[2*i]) / scale
		s.Right[i] = float64(pcm[2*i+1]) / scale
	}
	w.Release()
}

// store interleaves n frames of the output slot back into PCM.
func (e *engine) store(pcm []int, n int, scale float64) {
	if e.channels == 1 {
		r := e.pool.Mono(1).Borrow()
		d := r.Get().Data
		for i := range n {
			pcm[i] = quantize(d[i], scale)
		}
		r.Release()
		return
	}

	r := e.pool.Stereo(1).Borrow()
	s := r.Get()
	for i := range n {
		pcm[2*i] = quantize(s.Left[i], scale)
		pcm[2*i+1] = quantize(s.Right[i], scale)
	}
	r.Release()
}

func quantize(v, scale float64) int {
	q := math.Round(v * scale)
	if q > scale-1 {
		q = scale - 1
	}

	if q < -scale {
		q = -scale
	}

	return int(q)
}
