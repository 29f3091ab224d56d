package buffer_test

import (
	"os"
	"path/filepath"
	"testing"
	"unsafe"

	"github.com/stretchr/testify/require"

	"github.com/SobhanYasami/ndlayout/buffer"
	"github.com/SobhanYasami/ndlayout/layout"
)

// writeFloat32File dumps vals to a fresh file in native byte order and
// returns its path.
func writeFloat32File(t *testing.T, vals []float32) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "block.bin")
	raw := unsafe.Slice((*byte)(unsafe.Pointer(&vals[0])), len(vals)*4)
	require.NoError(t, os.WriteFile(path, raw, 0o644))

	return path
}

// TestOpenMapped_RoundTrip maps a 2×3×4 float32 file and checks every
// element against the value written at its flat position.
func TestOpenMapped_RoundTrip(t *testing.T) {
	shape := layout.Shape{2, 3, 4}
	vals := make([]float32, 24)
	for i := range vals {
		vals[i] = float32(i) * 10
	}
	path := writeFloat32File(t, vals)

	m, err := buffer.OpenMapped(path, shape, 4)
	require.NoError(t, err)
	defer m.Close()

	require.Equal(t, shape, m.Shape())
	require.Equal(t, 4, m.ElemSize())
	require.Len(t, m.Bytes(), 96)

	for off := 0; off < 24; off++ {
		idx, err := layout.Unravel(off, shape, layout.RowMajor)
		require.NoError(t, err)
		got, err := m.Float32At(idx...)
		require.NoError(t, err)
		require.Equal(t, vals[off], got, "element at %v", idx)
	}
}

// TestOpenMapped_ColumnMajor: the same file read column-major addresses
// different elements for the same indices.
func TestOpenMapped_ColumnMajor(t *testing.T) {
	vals := []float32{0, 1, 2, 3, 4, 5}
	path := writeFloat32File(t, vals)

	m, err := buffer.OpenMapped(path, layout.Shape{2, 3}, 4, buffer.WithOrder(layout.ColumnMajor))
	require.NoError(t, err)
	defer m.Close()

	// Column-major (2,3): element (1,2) sits at offset 2*2+1 = 5.
	got, err := m.Float32At(1, 2)
	require.NoError(t, err)
	require.Equal(t, float32(5), got)

	b, err := m.ByteOffset(1, 2)
	require.NoError(t, err)
	require.Equal(t, 20, b)
}

// TestOpenMapped_Errors covers elemSize, shape and size validation.
func TestOpenMapped_Errors(t *testing.T) {
	path := writeFloat32File(t, []float32{1, 2, 3, 4})

	_, err := buffer.OpenMapped(path, layout.Shape{4}, 0)
	require.ErrorIs(t, err, layout.ErrInvalidElemSize)

	_, err = buffer.OpenMapped(path, layout.Shape{4, 0}, 4)
	require.ErrorIs(t, err, layout.ErrInvalidExtent)

	// 4 floats on disk cannot back a 5-element shape.
	_, err = buffer.OpenMapped(path, layout.Shape{5}, 4)
	require.ErrorIs(t, err, buffer.ErrTruncatedFile)

	_, err = buffer.OpenMapped(filepath.Join(t.TempDir(), "absent.bin"), layout.Shape{1}, 4)
	require.Error(t, err)
}

// TestOpenMapped_LongerFileAccepted: trailing bytes beyond the shape
// are simply never addressed.
func TestOpenMapped_LongerFileAccepted(t *testing.T) {
	path := writeFloat32File(t, []float32{1, 2, 3, 4, 5, 6})

	m, err := buffer.OpenMapped(path, layout.Shape{2, 2}, 4)
	require.NoError(t, err)
	defer m.Close()

	got, err := m.Float32At(1, 1)
	require.NoError(t, err)
	require.Equal(t, float32(4), got)
}

// TestMapped_ElementBytes: the window is exactly elemSize bytes at the
// computed byte offset.
func TestMapped_ElementBytes(t *testing.T) {
	vals := []float32{0, 1, 2, 3}
	path := writeFloat32File(t, vals)

	m, err := buffer.OpenMapped(path, layout.Shape{4}, 4)
	require.NoError(t, err)
	defer m.Close()

	win, err := m.ElementBytes(2)
	require.NoError(t, err)
	require.Len(t, win, 4)
	require.Equal(t, m.Bytes()[8:12], win)
}

// TestMapped_TypedAccessorWidths: typed reads demand matching widths.
func TestMapped_TypedAccessorWidths(t *testing.T) {
	path := writeFloat32File(t, []float32{1, 2})

	m, err := buffer.OpenMapped(path, layout.Shape{2}, 4)
	require.NoError(t, err)
	defer m.Close()

	_, err = m.Float64At(0)
	require.ErrorIs(t, err, buffer.ErrWrongElemSize)
}

// TestMapped_Close: idempotent, and accessors fail afterwards.
func TestMapped_Close(t *testing.T) {
	path := writeFloat32File(t, []float32{1})

	m, err := buffer.OpenMapped(path, layout.Shape{1}, 4)
	require.NoError(t, err)

	require.NoError(t, m.Close())
	require.NoError(t, m.Close(), "Close must be idempotent")

	require.Nil(t, m.Bytes())
	_, err = m.Float32At(0)
	require.ErrorIs(t, err, buffer.ErrClosed)
	_, err = m.ElementBytes(0)
	require.ErrorIs(t, err, buffer.ErrClosed)
}

// TestMapped_IndexValidationPassesThrough: layout sentinels surface at
// the mapped surface too.
func TestMapped_IndexValidationPassesThrough(t *testing.T) {
	path := writeFloat32File(t, []float32{1, 2, 3, 4})

	m, err := buffer.OpenMapped(path, layout.Shape{2, 2}, 4)
	require.NoError(t, err)
	defer m.Close()

	_, err = m.Float32At(2, 0)
	require.ErrorIs(t, err, layout.ErrIndexOutOfBounds)
	_, err = m.ByteOffset(0)
	require.ErrorIs(t, err, layout.ErrRankMismatch)
}
