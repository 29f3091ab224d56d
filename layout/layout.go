package layout

import "fmt"

// validateShape scans axes left-to-right and rejects the first
// non-positive extent. Extent validation always runs before index
// validation so that a broken shape is reported as ErrInvalidExtent
// regardless of the indices supplied.
// Complexity: O(D).
func validateShape(shape Shape) error {
	for d, ext := range shape {
		if ext <= 0 {
			return fmt.Errorf("axis %d: extent %d: %w", d, ext, ErrInvalidExtent)
		}
	}

	return nil
}

// validateIndices scans axes left-to-right and rejects the first index
// outside [0, extent). The lowest-numbered offending axis is always the
// one reported. Assumes the shape itself is already validated.
// Complexity: O(D).
func validateIndices(shape Shape, indices []int) error {
	for d, idx := range indices {
		if idx < 0 || idx >= shape[d] {
			return fmt.Errorf("axis %d: index %d, extent %d: %w", d, idx, shape[d], ErrIndexOutOfBounds)
		}
	}

	return nil
}

// Offset computes the flat element offset of the element addressed by
// indices within an array of the given shape, laid out in the given
// order. The offset is an element count, not a byte count.
//
// Validation is fail-fast and deterministic, in this sequence:
//  1. order must be RowMajor or ColumnMajor (ErrUnknownOrder);
//  2. len(indices) must equal shape.Rank() (ErrRankMismatch);
//  3. every extent must be positive, lowest axis reported first
//     (ErrInvalidExtent);
//  4. every index must lie in [0, extent), lowest axis reported first
//     (ErrIndexOutOfBounds).
//
// The empty shape with empty indices is the rank-0 scalar and yields
// offset 0 for both orders. On success the result always satisfies
// 0 ≤ offset < Size(shape).
//
// The computation is one accumulation for every rank: multiplier starts
// at 1, and per axis offset += index×multiplier, multiplier ×= extent.
// Row-major walks axes right-to-left, column-major left-to-right; the
// two orders differ in nothing else.
// Complexity: O(D) time, O(1) memory.
func Offset(shape Shape, indices []int, order Order) (int, error) {
	if !order.Valid() {
		return 0, fmt.Errorf("order %d: %w", int(order), ErrUnknownOrder)
	}
	if len(indices) != len(shape) {
		return 0, fmt.Errorf("%d indices against rank %d: %w", len(indices), len(shape), ErrRankMismatch)
	}
	if err := validateShape(shape); err != nil {
		return 0, err
	}
	if err := validateIndices(shape, indices); err != nil {
		return 0, err
	}

	offset, multiplier := 0, 1
	if order == RowMajor {
		for d := len(shape) - 1; d >= 0; d-- {
			offset += indices[d] * multiplier
			multiplier *= shape[d]
		}
	} else {
		for d := 0; d < len(shape); d++ {
			offset += indices[d] * multiplier
			multiplier *= shape[d]
		}
	}

	return offset, nil
}

// Size returns the total number of elements, the product of all
// extents. The empty shape yields 1 (the empty product): a rank-0
// scalar holds exactly one element, which keeps 0 ≤ offset < Size
// true at every rank. Returns ErrInvalidExtent for any non-positive
// extent, lowest axis first.
// Complexity: O(D).
func Size(shape Shape) (int, error) {
	if err := validateShape(shape); err != nil {
		return 0, err
	}

	n := 1
	for _, ext := range shape {
		n *= ext
	}

	return n, nil
}

// Strides returns the per-axis element strides for the given order:
// the distance in elements between neighbors along each axis, such that
// for any valid index vector, offset = Σ indices[d]×strides[d].
//
// Row-major: strides[D-1] = 1 and grow leftward by each extent.
// Column-major: strides[0] = 1 and grow rightward. The rank-0 shape
// yields an empty (nil) stride slice.
// Complexity: O(D) time and memory.
func Strides(shape Shape, order Order) ([]int, error) {
	if !order.Valid() {
		return nil, fmt.Errorf("order %d: %w", int(order), ErrUnknownOrder)
	}
	if err := validateShape(shape); err != nil {
		return nil, err
	}
	if len(shape) == 0 {
		return nil, nil
	}

	strides := make([]int, len(shape))
	if order == RowMajor {
		strides[len(shape)-1] = 1
		for d := len(shape) - 2; d >= 0; d-- {
			strides[d] = strides[d+1] * shape[d+1]
		}
	} else {
		strides[0] = 1
		for d := 1; d < len(shape); d++ {
			strides[d] = strides[d-1] * shape[d-1]
		}
	}

	return strides, nil
}

// Unravel inverts Offset: it maps a flat offset back to the index
// vector addressing that element under the given shape and order. For a
// fixed shape and order, Offset and Unravel are mutually inverse
// bijections between valid index vectors and [0, Size(shape)).
//
// Returns ErrOffsetOutOfRange when offset lies outside [0, Size),
// ErrInvalidExtent / ErrUnknownOrder as in Offset. The rank-0 scalar
// accepts only offset 0 and yields the empty index vector.
// Complexity: O(D) time and memory.
func Unravel(offset int, shape Shape, order Order) ([]int, error) {
	if !order.Valid() {
		return nil, fmt.Errorf("order %d: %w", int(order), ErrUnknownOrder)
	}
	total, err := Size(shape)
	if err != nil {
		return nil, err
	}
	if offset < 0 || offset >= total {
		return nil, fmt.Errorf("offset %d, %d elements: %w", offset, total, ErrOffsetOutOfRange)
	}

	// Peel axes in fastest-varying-first order: each axis contributes
	// offset mod extent, then the offset shrinks by that extent.
	indices := make([]int, len(shape))
	if order == RowMajor {
		for d := len(shape) - 1; d >= 0; d-- {
			indices[d] = offset % shape[d]
			offset /= shape[d]
		}
	} else {
		for d := 0; d < len(shape); d++ {
			indices[d] = offset % shape[d]
			offset /= shape[d]
		}
	}

	return indices, nil
}
