package buffer_test

import (
	"errors"
	"fmt"

	"github.com/cwbudde/algo-engine/dsp/buffer"
)

func ExampleCell() {
	c := buffer.NewCell(buffer.NewMono(4))

	w := c.BorrowMut()
	copy(w.Get().Data, []float64{1, 2, 3, 4})

	_, err := c.TryBorrow()
	fmt.Println(errors.Is(err, buffer.ErrMutablyBorrowed))

	w.Release()

	r := c.Borrow()
	fmt.Println(r.Get().Frames(4), c.State())
	r.Release()

	// Output:
	// true
	// [1 2 3 4] shared
}
