package layout

import "errors"

// Sentinel errors for layout operations. All public functions return
// these (possibly wrapped with axis/index/extent context); callers
// match them via errors.Is.
var (
	// ErrRankMismatch indicates an index vector whose length differs from the shape's rank.
	ErrRankMismatch = errors.New("layout: indices length does not match shape rank")
	// ErrInvalidExtent indicates a shape axis with a zero or negative extent.
	ErrInvalidExtent = errors.New("layout: shape extent must be positive")
	// ErrIndexOutOfBounds indicates an index outside [0, extent) on some axis.
	ErrIndexOutOfBounds = errors.New("layout: index out of range for axis")
	// ErrOffsetOutOfRange indicates a flat offset outside [0, Size(shape)).
	ErrOffsetOutOfRange = errors.New("layout: offset outside element range")
	// ErrUnknownOrder indicates an Order value that is neither RowMajor nor ColumnMajor.
	ErrUnknownOrder = errors.New("layout: unknown order")
	// ErrInvalidElemSize indicates a non-positive element size.
	ErrInvalidElemSize = errors.New("layout: element size must be positive")
)
