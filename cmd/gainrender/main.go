// Command gainrender applies a smoothed gain change to a wav file.
//
// Usage:
//
//	gainrender -in input.wav -out output.wav [flags]
//
// The file starts at -from dB and moves to -to dB at -at seconds, ramping
// over -smooth milliseconds. Audio is processed in blocks of -block frames
// through the same gain node a real-time host would use.
//
// Examples:
//
//	gainrender -in dry.wav -out fade.wav -to -12 -at 1.5
//	gainrender -in dry.wav -out step.wav -to -6 -smooth 0
//	ENGINE_DEBUG=true gainrender -in dry.wav -out out.wav -block 64
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/cwbudde/algo-engine/dsp/core"
	"github.com/cwbudde/algo-engine/internal/log"
)

func main() {
	in := flag.String("in", "", "input wav file (mono or stereo, 16/24/32 bit)")
	out := flag.String("out", "", "output wav file")
	from := flag.Float64("from", 0, "initial gain in dB")
	to := flag.Float64("to", -6, "target gain in dB")
	at := flag.Float64("at", 0, "time of the gain change in seconds")
	smooth := flag.Float64("smooth", core.DefaultSmoothSecs*1000, "smoothing time in milliseconds")
	block := flag.Int("block", 256, "block size in frames")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: gainrender -in input.wav -out output.wav [flags]\n\n")
		fmt.Fprintf(os.Stderr, "Applies a smoothed gain change to a wav file.\n\n")
		fmt.Fprintf(os.Stderr, "Flags:\n")
		flag.PrintDefaults()
	}
	flag.Parse()

	logger := log.GetLogger()

	if *in == "" || *out == "" {
		flag.Usage()
		os.Exit(2)
	}

	cfg := renderConfig{
		fromDB:     *from,
		toDB:       *to,
		at:         *at,
		smoothSecs: *smooth / 1000,
		block:      *block,
	}

	if err := run(*in, *out, cfg, logger); err != nil {
		logger.Fatalf("gainrender: %v", err)
	}
}

func run(inPath, outPath string, cfg renderConfig, logger log.Logger) error {
	src, err := os.Open(inPath)
	if err != nil {
		return err
	}
	defer src.Close()

	dst, err := os.Create(outPath)
	if err != nil {
		return err
	}

	stats, err := render(src, dst, cfg, logger)
	if err != nil {
		dst.Close()
		return err
	}

	if err := dst.Close(); err != nil {
		return err
	}

	logger.Infof("wrote %s: %d frames, %d channels, %d Hz, ending at %.2f dB",
		outPath, stats.frames, stats.channels, stats.sampleRate, stats.endGainDB)

	return nil
}
