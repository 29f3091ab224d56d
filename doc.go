// Package ndlayout is a small toolkit for linear memory layouts of
// N-dimensional arrays — flat offsets, strides and raw addresses for
// arbitrary rank, in both row-major and column-major order.
//
// 🚀 What is ndlayout?
//
//	A deterministic, dependency-light library that brings together:
//		• Offset calculation: one accumulation for every rank and order
//		• Strides: per-axis element strides derived from the same walk
//		• Unravel: the inverse map from flat offset back to indices
//		• Address: the raw base + offset×size form for unsafe consumers
//		• Backing storage: a generic in-memory Buffer and an mmap-backed
//		  read-only Mapped region, both addressed through layout
//
// ✨ Why choose ndlayout?
//
//   - One algorithm, every rank – no hand-written 1D/2D/3D formulas;
//     the general accumulation subsumes them all
//   - Rock-solid guarantees – sentinel errors, no panics on user input,
//     pure functions safe under unbounded concurrency
//   - Explicit ordering – RowMajor and ColumnMajor are the same
//     accumulation walked in opposite directions, and the API keeps
//     that symmetry visible
//
// Under the hood, everything is organized under two subpackages:
//
//	layout/ — Shape, Order, Offset, Strides, Size, Unravel, Address
//	buffer/ — Buffer[T] (in-memory) and Mapped (mmap-backed) storage
//
// Quick example:
//
//	shape := layout.Shape{3, 4}
//	off, _ := layout.Offset(shape, []int{1, 2}, layout.RowMajor) // 6
//
// Dive into each subpackage's doc.go for worked examples, error
// semantics and complexity notes.
//
//	go get github.com/SobhanYasami/ndlayout
package ndlayout
