package layout

import (
	"fmt"
	"unsafe"
)

// Address computes the raw memory address of the element addressed by
// indices: base + Offset(shape, indices, order)×elemSize. It is the
// only unsafe surface in the package and exists for callers that must
// interoperate with raw regions (cgo buffers, mmap'd files); everyone
// else should index into a flat slice with Offset instead.
//
// The caller owns the region behind base and must guarantee that it
// spans at least Size(shape)×elemSize bytes; Address validates the
// indices, not the region. Returns ErrInvalidElemSize for elemSize 0,
// plus every error Offset can return.
// Complexity: O(D).
func Address(base unsafe.Pointer, shape Shape, indices []int, order Order, elemSize uintptr) (unsafe.Pointer, error) {
	if elemSize == 0 {
		return nil, fmt.Errorf("elemSize %d: %w", elemSize, ErrInvalidElemSize)
	}
	offset, err := Offset(shape, indices, order)
	if err != nil {
		return nil, err
	}

	return unsafe.Add(base, offset*int(elemSize)), nil
}
