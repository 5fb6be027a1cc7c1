package testutil

import (
	"fmt"
	"math"
	"testing"
)

// RequireRelativeEqual fails t at the first index where got and want differ
// by more than rel relative to the larger magnitude. Pairs whose absolute
// difference is at most rel always pass, so values near zero compare
// absolutely.
func RequireRelativeEqual(t *testing.T, got, want []float64, rel float64) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("length mismatch: got %d, want %d", len(got), len(want))
	}
	for i := range got {
		diff := math.Abs(got[i] - want[i])
		if diff <= rel {
			continue
		}
		scale := math.Max(math.Abs(got[i]), math.Abs(want[i]))
		if diff > rel*scale {
			t.Fatalf("index %d: got %v, want %v (relative diff %v > %v)", i, got[i], want[i], diff/scale, rel)
		}
	}
}

// RequireFinite fails t if any element is NaN or Inf.
func RequireFinite(t *testing.T, data []float64) {
	t.Helper()
	for i, v := range data {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			t.Fatalf("index %d: non-finite value %v", i, v)
		}
	}
}

// MaxAbsDiff returns the maximum absolute difference between two slices.
func MaxAbsDiff(a, b []float64) (float64, error) {
	if len(a) != len(b) {
		return 0, fmt.Errorf("length mismatch: %d vs %d", len(a), len(b))
	}
	maxDiff := 0.0
	for i := range a {
		maxDiff = math.Max(maxDiff, math.Abs(a[i]-b[i]))
	}
	return maxDiff, nil
}
