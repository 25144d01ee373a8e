package simdops

import (
	"testing"

	"github.com/tphakala/simd/f32"
	"github.com/tphakala/simd/f64"
)

// The zero-phase engine scales an order-sized state vector twice per call,
// so the interesting sizes are tiny.
const benchVectorLen = 8

// BenchmarkDirectF64Scale measures direct SIMD call overhead.
func BenchmarkDirectF64Scale(b *testing.B) {
	a := make([]float64, benchVectorLen)
	dst := make([]float64, benchVectorLen)
	for i := range a {
		a[i] = float64(i) * 0.01
	}

	b.ReportAllocs()
	for b.Loop() {
		f64.Scale(dst, a, 1.5)
	}
}

// BenchmarkIndirectF64Scale measures indirect call through Ops struct.
func BenchmarkIndirectF64Scale(b *testing.B) {
	ops := For[float64]()
	a := make([]float64, benchVectorLen)
	dst := make([]float64, benchVectorLen)
	for i := range a {
		a[i] = float64(i) * 0.01
	}

	b.ReportAllocs()
	for b.Loop() {
		ops.Scale(dst, a, 1.5)
	}
}

// BenchmarkDirectF32Scale measures direct SIMD call overhead.
func BenchmarkDirectF32Scale(b *testing.B) {
	a := make([]float32, benchVectorLen)
	dst := make([]float32, benchVectorLen)
	for i := range a {
		a[i] = float32(i) * 0.01
	}

	b.ReportAllocs()
	for b.Loop() {
		f32.Scale(dst, a, 1.5)
	}
}

// BenchmarkIndirectF32Scale measures indirect call through Ops struct.
func BenchmarkIndirectF32Scale(b *testing.B) {
	ops := For[float32]()
	a := make([]float32, benchVectorLen)
	dst := make([]float32, benchVectorLen)
	for i := range a {
		a[i] = float32(i) * 0.01
	}

	b.ReportAllocs()
	for b.Loop() {
		ops.Scale(dst, a, 1.5)
	}
}
