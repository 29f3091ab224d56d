// Package buffer: functional configuration for storage construction.
//
// Design goals:
//   - Deterministic behavior: no global state, defaults are named constants.
//   - Safe by construction: WithX constructors panic only on nonsensical
//     parameters (programmer error); user-data failures return errors.
//   - Options fields are unexported; public constructors consume ...Option.
package buffer

import (
	"fmt"

	"github.com/SobhanYasami/ndlayout/layout"
)

// DefaultOrder is the storage order used when no WithOrder option is
// supplied. RowMajor matches what the Go runtime itself uses for nested
// arrays.
const DefaultOrder = layout.RowMajor

// options holds the resolved construction parameters.
type options struct {
	order layout.Order
}

// Option mutates construction options.
type Option func(*options)

// WithOrder selects the storage order for the buffer being built.
// Panics if o is not a declared Order — an invalid order is a
// programmer error, not a data condition.
func WithOrder(o layout.Order) Option {
	if !o.Valid() {
		panic(fmt.Sprintf("buffer.WithOrder: invalid order %d", int(o)))
	}

	return func(opts *options) {
		opts.order = o
	}
}

// gatherOptions applies opts over the documented defaults.
func gatherOptions(opts ...Option) options {
	o := options{order: DefaultOrder}
	for _, opt := range opts {
		opt(&o)
	}

	return o
}
