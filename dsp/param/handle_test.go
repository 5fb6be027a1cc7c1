package param

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestHandle(t *testing.T) *Handle {
	t.Helper()

	_, h, err := New(0, -90, 12, DBGradient, Decibels, 0.005, 48000, 64)
	require.NoError(t, err)

	return h
}

func TestHandleSetClamps(t *testing.T) {
	h := newTestHandle(t)

	h.Set(-6)
	assert.Equal(t, -6.0, h.Value())

	h.Set(40)
	assert.Equal(t, 12.0, h.Value())

	h.Set(-1000)
	assert.Equal(t, -90.0, h.Value())

	h.Set(math.Inf(-1))
	assert.Equal(t, -90.0, h.Value())
}

func TestHandleIgnoresNaN(t *testing.T) {
	h := newTestHandle(t)

	h.Set(-3)
	h.Set(math.NaN())
	assert.Equal(t, -3.0, h.Value())

	h.SetNormalized(math.NaN())
	assert.Equal(t, -3.0, h.Value())
}

func TestHandleSetNormalized(t *testing.T) {
	h := newTestHandle(t)

	h.SetNormalized(1)
	assert.Equal(t, 12.0, h.Value())

	h.SetNormalized(0)
	assert.Equal(t, -90.0, h.Value())

	h.SetNormalized(0.5)
	assert.InDelta(t, DBGradient.ToValue(0.5, -90, 12), h.Value(), 1e-12)
	assert.InDelta(t, 0.5, h.Normalized(), 1e-9)

	h.SetNormalized(2)
	assert.Equal(t, 12.0, h.Value())
}

func TestHandleAccessors(t *testing.T) {
	h := newTestHandle(t)

	assert.Equal(t, -90.0, h.Min())
	assert.Equal(t, 12.0, h.Max())
	assert.Equal(t, Decibels, h.Unit())
	assert.Equal(t, DBGradient, h.Gradient())
}

func TestHandleDoesNotAllocate(t *testing.T) {
	h := newTestHandle(t)

	allocs := testing.AllocsPerRun(100, func() {
		h.Set(-12)
		h.SetNormalized(0.3)
	})
	assert.Zero(t, allocs)
}
