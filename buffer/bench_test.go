package buffer_test

import (
	"testing"

	"github.com/SobhanYasami/ndlayout/buffer"
	"github.com/SobhanYasami/ndlayout/layout"
)

// BenchmarkBufferAt measures a validated read against raw slice access,
// surfacing the cost of the per-call index validation.
func BenchmarkBufferAt(b *testing.B) {
	buf, err := buffer.New[float64](layout.Shape{64, 64, 64})
	if err != nil {
		b.Fatalf("setup New failed: %v", err)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := buf.At(32, i%64, 63); err != nil {
			b.Fatalf("At failed: %v", err)
		}
	}
}

// BenchmarkBufferSet measures a validated write into a rank-3 block.
func BenchmarkBufferSet(b *testing.B) {
	buf, err := buffer.New[float64](layout.Shape{64, 64, 64})
	if err != nil {
		b.Fatalf("setup New failed: %v", err)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if err := buf.Set(1.0, i%64, 0, 1); err != nil {
			b.Fatalf("Set failed: %v", err)
		}
	}
}
