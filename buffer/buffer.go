package buffer

import (
	"fmt"

	"github.com/SobhanYasami/ndlayout/layout"
)

// Buffer is a mutable N-dimensional block stored contiguously in a flat
// slice, addressed through layout.Offset. Shape and order are fixed at
// construction; only element values change afterwards.
type Buffer[T any] struct {
	shape layout.Shape
	order layout.Order
	data  []T
}

// New allocates a zero-valued Buffer of the given shape.
// Stage 1 (Validate): shape extents via layout.Size.
// Stage 2 (Prepare): deep-copy the shape, allocate the flat slice.
// Stage 3 (Finalize): return the buffer.
// Complexity: O(Size(shape)) time and memory.
func New[T any](shape layout.Shape, opts ...Option) (*Buffer[T], error) {
	o := gatherOptions(opts...)
	total, err := layout.Size(shape)
	if err != nil {
		return nil, err
	}

	// Copy the shape so later caller mutation cannot skew index math.
	own := make(layout.Shape, len(shape))
	copy(own, shape)

	return &Buffer[T]{shape: own, order: o.order, data: make([]T, total)}, nil
}

// FromSlice wraps an existing flat slice as a Buffer without copying;
// the buffer aliases data for its whole lifetime, so the slice stays
// owned by the caller in the sense that writes through either are
// visible to both. Returns ErrNilData for a nil slice and
// ErrSizeMismatch when len(data) differs from the shape's element
// count.
// Complexity: O(D) validation, O(1) beyond the shape copy.
func FromSlice[T any](data []T, shape layout.Shape, opts ...Option) (*Buffer[T], error) {
	o := gatherOptions(opts...)
	if data == nil {
		return nil, ErrNilData
	}
	total, err := layout.Size(shape)
	if err != nil {
		return nil, err
	}
	if len(data) != total {
		return nil, fmt.Errorf("%d elements against shape %v (%d): %w", len(data), shape, total, ErrSizeMismatch)
	}

	own := make(layout.Shape, len(shape))
	copy(own, shape)

	return &Buffer[T]{shape: own, order: o.order, data: data}, nil
}

// Shape returns a copy of the buffer's shape.
// Complexity: O(D).
func (b *Buffer[T]) Shape() layout.Shape {
	out := make(layout.Shape, len(b.shape))
	copy(out, b.shape)

	return out
}

// Order returns the storage order fixed at construction.
// Complexity: O(1).
func (b *Buffer[T]) Order() layout.Order {
	return b.order
}

// Rank returns the number of axes.
// Complexity: O(1).
func (b *Buffer[T]) Rank() int {
	return b.shape.Rank()
}

// Len returns the total element count.
// Complexity: O(1).
func (b *Buffer[T]) Len() int {
	return len(b.data)
}

// Data returns the flat backing slice in storage order. Mutations
// through the slice are visible to At/Set and vice versa.
// Complexity: O(1).
func (b *Buffer[T]) Data() []T {
	return b.data
}

// At retrieves the element addressed by indices. All validation is
// delegated to layout.Offset, so errors carry the layout sentinels.
// Complexity: O(D).
func (b *Buffer[T]) At(indices ...int) (T, error) {
	var zero T
	off, err := layout.Offset(b.shape, indices, b.order)
	if err != nil {
		return zero, err
	}

	return b.data[off], nil
}

// Set assigns v at the element addressed by indices.
// Complexity: O(D).
func (b *Buffer[T]) Set(v T, indices ...int) error {
	off, err := layout.Offset(b.shape, indices, b.order)
	if err != nil {
		return err
	}
	b.data[off] = v

	return nil
}

// Fill assigns v to every element.
// Complexity: O(Size).
func (b *Buffer[T]) Fill(v T) {
	for i := range b.data {
		b.data[i] = v
	}
}

// Clone returns a deep copy sharing nothing with the receiver.
// Complexity: O(Size) time and memory.
func (b *Buffer[T]) Clone() *Buffer[T] {
	data := make([]T, len(b.data))
	copy(data, b.data)
	shape := make(layout.Shape, len(b.shape))
	copy(shape, b.shape)

	return &Buffer[T]{shape: shape, order: b.order, data: data}
}
