// Package buffer provides contiguous backing storage addressed through
// the layout subpackage. It supports:
//
//   - Buffer[T]: a rank-generic, mutable in-memory block with
//     error-returning At/Set accessors (no panics on user input)
//   - Mapped: a read-only mmap-backed region whose elements are located
//     with the same offset arithmetic, base + offset×elemSize
//
// The index math lives entirely in layout; this package owns only the
// storage. Layout sentinels pass through unwrapped, so a caller can
// errors.Is(err, layout.ErrIndexOutOfBounds) at the buffer surface.
//
// Order is chosen at construction via functional options and is fixed
// for the lifetime of the buffer; DefaultOrder is RowMajor. A Buffer is
// not synchronized: concurrent writers of the same buffer must
// coordinate externally, exactly as with a bare slice.
package buffer
