package testutil

import (
	"fmt"
	"math"
	"math/cmplx"

	algofft "github.com/cwbudde/algo-fft"
)

// HighBandEnergy returns the spectral energy of x above cutoffHz, after a
// symmetric Hann window. len(x) must be a size the FFT plan accepts.
func HighBandEnergy(x []float64, sampleRate, cutoffHz float64) (float64, error) {
	n := len(x)
	if n < 2 {
		return 0, fmt.Errorf("signal too short: %d", n)
	}

	in := make([]complex128, n)
	for i, v := range x {
		w := 0.5 - 0.5*math.Cos(2*math.Pi*float64(i)/float64(n-1))
		in[i] = complex(v*w, 0)
	}

	plan, err := algofft.NewPlan64(n)
	if err != nil {
		return 0, fmt.Errorf("fft plan: %w", err)
	}

	out := make([]complex128, n)
	if err := plan.Forward(out, in); err != nil {
		return 0, fmt.Errorf("fft: %w", err)
	}

	binHz := sampleRate / float64(n)
	first := int(math.Ceil(cutoffHz / binHz))

	var energy float64
	for k := max(first, 0); k <= n/2; k++ {
		m := cmplx.Abs(out[k])
		energy += m * m
	}

	return energy, nil
}
