// Package buffer provides the block buffers nodes read and write, and the
// borrow-checked cells that hand them out.
//
// Mono and Stereo buffers are allocated once for the largest block the
// engine will process, with their length padded to a multiple of
// cpu.MaxVectorWidth so vector kernels can finish the last partial vector
// without a scalar tail. Samples past the current block are don't-care.
//
// A Cell guards one buffer with a runtime borrow flag: any number of shared
// Refs, or exactly one RefMut, never both. Conflicting borrows panic;
// TryBorrow and TryBorrowMut report the conflict as an error instead.
// Claims are released explicitly, since nodes never hold a buffer past the
// block that borrowed it.
package buffer
