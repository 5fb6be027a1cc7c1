package buffer

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPoolAllocatesCells(t *testing.T) {
	p := NewPool(3, 2, 100)

	assert.Equal(t, 3, p.MonoLen())
	assert.Equal(t, 2, p.StereoLen())
	assert.Equal(t, 100, p.MaxFrames())
	assert.True(t, p.Idle())

	r := p.Mono(2).Borrow()
	assert.Len(t, r.Get().Data, 104)
	r.Release()

	w := p.Stereo(1).BorrowMut()
	assert.Len(t, w.Get().Left, 104)
	w.Release()
}

func TestPoolCellsAreDistinct(t *testing.T) {
	p := NewPool(2, 0, 8)

	a := p.Mono(0).BorrowMut()
	b := p.Mono(1).BorrowMut()

	a.Get().Data[0] = 1
	assert.Equal(t, 0.0, b.Get().Data[0])

	a.Release()
	b.Release()
}

func TestPoolIdle(t *testing.T) {
	p := NewPool(1, 1, 8)

	r := p.Stereo(0).Borrow()
	assert.False(t, p.Idle())
	r.Release()
	assert.True(t, p.Idle())

	w := p.Mono(0).BorrowMut()
	assert.False(t, p.Idle())
	w.Release()
	assert.True(t, p.Idle())
}

func TestNewPoolRejectsBadSizes(t *testing.T) {
	assert.Panics(t, func() { NewPool(-1, 0, 8) })
	assert.Panics(t, func() { NewPool(0, 0, 0) })
}
