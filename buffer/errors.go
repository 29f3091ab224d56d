package buffer

import "errors"

// Sentinel errors for buffer operations. Index validation failures are
// reported with the layout package's sentinels and are not re-wrapped
// here.
var (
	// ErrSizeMismatch indicates a backing slice whose length differs from the shape's element count.
	ErrSizeMismatch = errors.New("buffer: data length does not match shape size")
	// ErrNilData indicates a nil backing slice passed to FromSlice.
	ErrNilData = errors.New("buffer: nil backing slice")
	// ErrTruncatedFile indicates a mapped file too small for the requested shape.
	ErrTruncatedFile = errors.New("buffer: mapped file smaller than shape requires")
	// ErrClosed indicates use of a Mapped region after Close.
	ErrClosed = errors.New("buffer: mapped region is closed")
	// ErrWrongElemSize indicates a typed accessor whose type width differs from the region's element size.
	ErrWrongElemSize = errors.New("buffer: element size does not match accessor type")
)
