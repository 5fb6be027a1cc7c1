package core

import (
	"errors"
	"fmt"
)

// DefaultSmoothSecs is the parameter smoothing time used when none is given.
const DefaultSmoothSecs = 0.005

// ErrInvalidConfig is returned when an engine configuration is unusable.
var ErrInvalidConfig = errors.New("invalid engine config")

// Config holds the settings every node is built against: the stream's
// sample rate, the largest block the engine will ever process, and the
// default parameter smoothing time.
type Config struct {
	SampleRate   float64
	MaxBlockSize int
	SmoothSecs   float64
}

// Option mutates a Config.
type Option func(*Config)

// DefaultConfig returns sensible defaults for real-time use.
func DefaultConfig() Config {
	return Config{
		SampleRate:   48000,
		MaxBlockSize: 1024,
		SmoothSecs:   DefaultSmoothSecs,
	}
}

// WithSampleRate sets the processing sample rate.
func WithSampleRate(sampleRate float64) Option {
	return func(cfg *Config) {
		if sampleRate > 0 && IsFinite(sampleRate) {
			cfg.SampleRate = sampleRate
		}
	}
}

// WithMaxBlockSize sets the largest block size the engine will process.
func WithMaxBlockSize(blockSize int) Option {
	return func(cfg *Config) {
		if blockSize > 0 {
			cfg.MaxBlockSize = blockSize
		}
	}
}

// WithSmoothSecs sets the default parameter smoothing time in seconds.
func WithSmoothSecs(secs float64) Option {
	return func(cfg *Config) {
		if secs >= 0 && IsFinite(secs) {
			cfg.SmoothSecs = secs
		}
	}
}

// ApplyOptions applies zero or more options to the default config.
func ApplyOptions(opts ...Option) Config {
	cfg := DefaultConfig()
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	return cfg
}

// Validate reports whether cfg can be used to build nodes.
func (c Config) Validate() error {
	if c.SampleRate <= 0 || !IsFinite(c.SampleRate) {
		return fmt.Errorf("%w: sample rate must be > 0 and finite: %f", ErrInvalidConfig, c.SampleRate)
	}

	if c.MaxBlockSize <= 0 {
		return fmt.Errorf("%w: max block size must be > 0: %d", ErrInvalidConfig, c.MaxBlockSize)
	}

	if c.SmoothSecs < 0 || !IsFinite(c.SmoothSecs) {
		return fmt.Errorf("%w: smoothing time must be >= 0 and finite: %f", ErrInvalidConfig, c.SmoothSecs)
	}

	return nil
}
