package core

import (
	"errors"
	"math"
	"testing"
)

func TestApplyOptions(t *testing.T) {
	cfg := ApplyOptions(WithSampleRate(96000), WithMaxBlockSize(2048), WithSmoothSecs(0.01))
	if cfg.SampleRate != 96000 {
		t.Fatalf("sample rate = %v, want 96000", cfg.SampleRate)
	}
	if cfg.MaxBlockSize != 2048 {
		t.Fatalf("max block size = %d, want 2048", cfg.MaxBlockSize)
	}
	if cfg.SmoothSecs != 0.01 {
		t.Fatalf("smooth secs = %v, want 0.01", cfg.SmoothSecs)
	}
}

func TestInvalidOptionsIgnored(t *testing.T) {
	cfg := ApplyOptions(WithSampleRate(0), WithMaxBlockSize(-1), WithSmoothSecs(math.NaN()), nil)
	def := DefaultConfig()
	if cfg != def {
		t.Fatalf("cfg = %#v, want %#v", cfg, def)
	}
}

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr bool
	}{
		{name: "default", cfg: DefaultConfig()},
		{name: "zero smoothing", cfg: Config{SampleRate: 44100, MaxBlockSize: 64}},
		{name: "bad rate", cfg: Config{SampleRate: 0, MaxBlockSize: 64}, wantErr: true},
		{name: "inf rate", cfg: Config{SampleRate: math.Inf(1), MaxBlockSize: 64}, wantErr: true},
		{name: "bad block", cfg: Config{SampleRate: 48000}, wantErr: true},
		{name: "negative smoothing", cfg: Config{SampleRate: 48000, MaxBlockSize: 64, SmoothSecs: -1}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if tt.wantErr {
				if !errors.Is(err, ErrInvalidConfig) {
					t.Fatalf("Validate() error = %v, want ErrInvalidConfig", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("Validate() error = %v", err)
			}
		})
	}
}
