// Package layout defines core types and sentinel errors for the
// layout subpackage of github.com/SobhanYasami/ndlayout.
package layout

import "fmt"

// Shape is the ordered sequence of per-axis extents of an
// N-dimensional array. Every extent must be positive; the empty shape
// denotes a rank-0 scalar. A Shape is treated as immutable for the
// duration of any layout computation.
type Shape []int

// Rank returns the number of axes.
// Complexity: O(1).
func (s Shape) Rank() int {
	return len(s)
}

// String renders the shape as "3×4×2"; the empty shape renders as "scalar".
func (s Shape) String() string {
	if len(s) == 0 {
		return "scalar"
	}
	out := ""
	for d, ext := range s {
		if d > 0 {
			out += "×"
		}
		out += fmt.Sprintf("%d", ext)
	}

	return out
}

// Order selects which axis varies fastest in memory.
type Order int

const (
	// RowMajor stores the last (rightmost) axis fastest; C convention.
	RowMajor Order = iota
	// ColumnMajor stores the first (leftmost) axis fastest; Fortran convention.
	ColumnMajor
)

// String implements fmt.Stringer for diagnostics.
func (o Order) String() string {
	switch o {
	case RowMajor:
		return "RowMajor"
	case ColumnMajor:
		return "ColumnMajor"
	default:
		return fmt.Sprintf("Order(%d)", int(o))
	}
}

// Valid reports whether o is one of the declared orders.
// Complexity: O(1).
func (o Order) Valid() bool {
	return o == RowMajor || o == ColumnMajor
}
