// Package layout computes linear memory layouts for N-dimensional
// arrays: the flat offset of an element given its per-axis indices, the
// per-axis strides, the total element count, and the inverse map from a
// flat offset back to indices. It supports:
//
//   - Arbitrary rank, including the degenerate rank-0 scalar
//   - Row-major (last axis fastest) and column-major (first axis
//     fastest) order
//   - A raw-address variant for unsafe consumers
//
// Row-major and column-major are the same accumulation walked in
// opposite directions over the same (shape, indices) pair: start with
// multiplier 1; at each axis add index×multiplier, then multiply the
// multiplier by that axis's extent. Row-major walks right-to-left,
// column-major left-to-right. Every fixed-rank formula (i*cols+j,
// i*cols*depth+j*depth+k, ...) is this walk specialized, so the package
// deliberately ships no per-rank variants.
//
// All functions are pure and allocate at most their result; they may be
// called concurrently without synchronization. Validation is fail-fast:
// either a fully valid result or a sentinel error, never a best-effort
// number. Sentinels are matched with errors.Is; contextual detail
// (axis, index, extent) is attached by wrapping.
//
// Offsets are element counts, not bytes. Byte address = base +
// offset×elemSize; the element type and size are the caller's concern.
package layout
