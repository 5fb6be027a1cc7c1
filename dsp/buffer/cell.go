package buffer

import (
	"errors"
	"sync/atomic"
)

var (
	// ErrBorrowed is returned when an exclusive borrow is requested while
	// shared borrows are outstanding.
	ErrBorrowed = errors.New("buffer: already borrowed")

	// ErrMutablyBorrowed is returned when any borrow is requested while an
	// exclusive borrow is outstanding.
	ErrMutablyBorrowed = errors.New("buffer: already mutably borrowed")

	// ErrTooManyReaders is returned when a shared borrow is requested while
	// MaxReaders shared borrows are outstanding.
	ErrTooManyReaders = errors.New("buffer: too many shared borrows")
)

// MaxReaders is the number of shared claims a Cell can hold at once.
const MaxReaders = 32

const exclusive = -1

// BorrowState describes the claims currently held on a Cell.
type BorrowState int

const (
	// Unborrowed means no claim is held.
	Unborrowed BorrowState = iota
	// Shared means one or more readers hold the cell.
	Shared
	// Exclusive means a single writer holds the cell.
	Exclusive
)

// String implements fmt.Stringer.
func (s BorrowState) String() string {
	switch s {
	case Unborrowed:
		return "unborrowed"
	case Shared:
		return "shared"
	case Exclusive:
		return "exclusive"
	default:
		return "unknown"
	}
}

// Cell holds a value behind a runtime borrow flag. The flag is 0 when
// free, the number of readers when shared, and -1 when exclusively held.
//
// Every claim is also recorded as a generation token: one per reader slot
// and one for the writer. A token is odd while its claim is held and moves
// on when the claim is released, so a Ref or RefMut copied before Release
// can never release or read through a claim that is no longer its own.
type Cell[T any] struct {
	flag   atomic.Int32
	writer atomic.Uint64
	claims [MaxReaders]atomic.Uint64
	value  T
}

// NewCell returns a free cell holding v.
func NewCell[T any](v T) *Cell[T] {
	return &Cell[T]{value: v}
}

// Borrow takes a shared claim. It panics if the cell is exclusively held.
func (c *Cell[T]) Borrow() Ref[T] {
	r, err := c.TryBorrow()
	if err != nil {
		panic(err)
	}

	return r
}

// BorrowMut takes the exclusive claim. It panics if the cell is borrowed
// at all.
func (c *Cell[T]) BorrowMut() RefMut[T] {
	r, err := c.TryBorrowMut()
	if err != nil {
		panic(err)
	}

	return r
}

// TryBorrow takes a shared claim, or returns ErrMutablyBorrowed or
// ErrTooManyReaders.
func (c *Cell[T]) TryBorrow() (Ref[T], error) {
	for {
		n := c.flag.Load()
		if n == exclusive {
			return Ref[T]{}, ErrMutablyBorrowed
		}

		if n >= MaxReaders {
			return Ref[T]{}, ErrTooManyReaders
		}

		if c.flag.CompareAndSwap(n, n+1) {
			break
		}
	}

	// Slots are freed before the count drops, so held slots never outnumber
	// the count and one is free for this claim.
	for {
		for i := range c.claims {
			v := c.claims[i].Load()
			if v&1 == 0 && c.claims[i].CompareAndSwap(v, v+1) {
				return Ref[T]{cell: c, slot: i, token: v + 1}, nil
			}
		}
	}
}

// TryBorrowMut takes the exclusive claim, or returns ErrBorrowed or
// ErrMutablyBorrowed naming the conflicting claim.
func (c *Cell[T]) TryBorrowMut() (RefMut[T], error) {
	if c.flag.CompareAndSwap(0, exclusive) {
		return RefMut[T]{cell: c, token: c.writer.Add(1)}, nil
	}

	if c.flag.Load() == exclusive {
		return RefMut[T]{}, ErrMutablyBorrowed
	}

	return RefMut[T]{}, ErrBorrowed
}

// State reports the current claims on the cell.
func (c *Cell[T]) State() BorrowState {
	switch n := c.flag.Load(); {
	case n == exclusive:
		return Exclusive
	case n > 0:
		return Shared
	default:
		return Unborrowed
	}
}

// Readers returns the number of outstanding shared claims.
func (c *Cell[T]) Readers() int {
	if n := c.flag.Load(); n > 0 {
		return int(n)
	}

	return 0
}

// Ref is a shared claim on a Cell. The zero Ref holds nothing. Copies of a
// Ref share one claim: once any of them releases it, all are invalid.
type Ref[T any] struct {
	cell  *Cell[T]
	slot  int
	token uint64
}

// Get returns the borrowed value. Holders of a shared claim must not write
// through any slice it contains.
func (r *Ref[T]) Get() T {
	if !r.Valid() {
		panic("buffer: use of released Ref")
	}

	return r.cell.value
}

// Valid reports whether r still holds its claim.
func (r *Ref[T]) Valid() bool {
	return r.cell != nil && r.cell.claims[r.slot].Load() == r.token
}

// Release drops the claim. Releasing twice, through r or any copy of it,
// panics.
func (r *Ref[T]) Release() {
	if r.cell == nil || !r.cell.claims[r.slot].CompareAndSwap(r.token, r.token+1) {
		panic("buffer: Ref released twice")
	}

	r.cell.flag.Add(-1)
	r.cell = nil
}

// RefMut is the exclusive claim on a Cell. The zero RefMut holds nothing.
// Copies of a RefMut share one claim.
type RefMut[T any] struct {
	cell  *Cell[T]
	token uint64
}

// Get returns a pointer to the borrowed value.
func (r *RefMut[T]) Get() *T {
	if !r.Valid() {
		panic("buffer: use of released RefMut")
	}

	return &r.cell.value
}

// Valid reports whether r still holds its claim.
func (r *RefMut[T]) Valid() bool {
	return r.cell != nil && r.cell.writer.Load() == r.token
}

// Release drops the claim. Releasing twice, through r or any copy of it,
// panics.
func (r *RefMut[T]) Release() {
	if r.cell == nil || !r.cell.writer.CompareAndSwap(r.token, r.token+1) {
		panic("buffer: RefMut released twice")
	}

	if !r.cell.flag.CompareAndSwap(exclusive, 0) {
		panic("buffer: exclusive release of a cell not exclusively held")
	}

	r.cell = nil
}

// Cell and claim types for the two buffer layouts.
type (
	MonoCell     = Cell[Mono]
	StereoCell   = Cell[Stereo]
	MonoRef      = Ref[Mono]
	MonoRefMut   = RefMut[Mono]
	StereoRef    = Ref[Stereo]
	StereoRefMut = RefMut[Stereo]
)
