package buffer

import (
	"fmt"
	"os"
	"unsafe"

	"github.com/edsrzf/mmap-go"

	"github.com/SobhanYasami/ndlayout/layout"
)

// Mapped is a read-only N-dimensional region backed by an mmap'd file.
// Elements are located with the raw-address formula: byte offset =
// layout.Offset × elemSize. The mapping is valid until Close; slices
// handed out by ElementBytes alias it and must not be retained past
// Close.
type Mapped struct {
	f        *os.File
	data     mmap.MMap
	shape    layout.Shape
	order    layout.Order
	elemSize int
}

// OpenMapped maps path read-only and validates that the file is large
// enough to hold Size(shape) elements of elemSize bytes each; a longer
// file is accepted (trailing bytes are simply never addressed).
// Returns layout.ErrInvalidElemSize for a non-positive elemSize and
// ErrTruncatedFile for a short file.
// Complexity: O(D) validation; the mapping itself is O(1).
func OpenMapped(path string, shape layout.Shape, elemSize int, opts ...Option) (*Mapped, error) {
	o := gatherOptions(opts...)
	if elemSize <= 0 {
		return nil, fmt.Errorf("elemSize %d: %w", elemSize, layout.ErrInvalidElemSize)
	}
	total, err := layout.Size(shape)
	if err != nil {
		return nil, err
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	m, err := mmap.Map(f, mmap.RDONLY, 0)
	if err != nil {
		f.Close()

		return nil, err
	}
	if need := total * elemSize; need > len(m) {
		m.Unmap()
		f.Close()

		return nil, fmt.Errorf("need %d bytes, file maps %d: %w", need, len(m), ErrTruncatedFile)
	}

	own := make(layout.Shape, len(shape))
	copy(own, shape)

	return &Mapped{f: f, data: m, shape: own, order: o.order, elemSize: elemSize}, nil
}

// Shape returns a copy of the region's shape.
func (m *Mapped) Shape() layout.Shape {
	out := make(layout.Shape, len(m.shape))
	copy(out, m.shape)

	return out
}

// Order returns the storage order fixed at open time.
func (m *Mapped) Order() layout.Order {
	return m.order
}

// ElemSize returns the element width in bytes fixed at open time.
func (m *Mapped) ElemSize() int {
	return m.elemSize
}

// Bytes returns the full mapping. Caller must not modify or retain it
// past Close. Returns nil after Close.
func (m *Mapped) Bytes() []byte {
	return m.data
}

// ByteOffset computes the byte position of the element addressed by
// indices: layout.Offset × elemSize.
// Complexity: O(D).
func (m *Mapped) ByteOffset(indices ...int) (int, error) {
	if m.data == nil {
		return 0, ErrClosed
	}
	off, err := layout.Offset(m.shape, indices, m.order)
	if err != nil {
		return 0, err
	}

	return off * m.elemSize, nil
}

// ElementBytes returns the elemSize-byte window holding the element
// addressed by indices. The slice aliases the mapping: valid until
// Close, never written.
// Complexity: O(D).
func (m *Mapped) ElementBytes(indices ...int) ([]byte, error) {
	b, err := m.ByteOffset(indices...)
	if err != nil {
		return nil, err
	}

	return m.data[b : b+m.elemSize], nil
}

// Float32At reads the element addressed by indices as a float32 in
// native byte order. Requires the region to have been opened with
// elemSize 4 (ErrWrongElemSize otherwise).
// Complexity: O(D).
func (m *Mapped) Float32At(indices ...int) (float32, error) {
	if m.elemSize != 4 {
		return 0, fmt.Errorf("region elemSize %d, float32 needs 4: %w", m.elemSize, ErrWrongElemSize)
	}
	b, err := m.ByteOffset(indices...)
	if err != nil {
		return 0, err
	}

	return *(*float32)(unsafe.Pointer(&m.data[b])), nil
}

// Float64At reads the element addressed by indices as a float64 in
// native byte order. Requires elemSize 8.
// Complexity: O(D).
func (m *Mapped) Float64At(indices ...int) (float64, error) {
	if m.elemSize != 8 {
		return 0, fmt.Errorf("region elemSize %d, float64 needs 8: %w", m.elemSize, ErrWrongElemSize)
	}
	b, err := m.ByteOffset(indices...)
	if err != nil {
		return 0, err
	}

	return *(*float64)(unsafe.Pointer(&m.data[b])), nil
}

// Close unmaps the region and closes the file. Idempotent; accessors
// return ErrClosed afterwards.
func (m *Mapped) Close() error {
	if m.data != nil {
		if err := m.data.Unmap(); err != nil {
			return err
		}
		m.data = nil
	}
	if m.f != nil {
		err := m.f.Close()
		m.f = nil

		return err
	}

	return nil
}
