package testutil

import (
	"math"
	"math/rand/v2"
)

// Constant returns n copies of v.
func Constant(n int, v float64) []float64 {
	s := make([]float64, n)
	for i := range s {
		s[i] = v
	}
	return s
}

// Step returns n samples that are 0 before index at and 1 from index at onwards.
func Step(n, at int) []float64 {
	s := make([]float64, n)
	for i := at; i < n; i++ {
		s[i] = 1
	}
	return s
}

// Sine returns n samples of a unit sine at the normalized frequency
// freq (cycles per sample).
func Sine(n int, freq float64) []float64 {
	s := make([]float64, n)
	for i := range s {
		s[i] = math.Sin(2 * math.Pi * freq * float64(i))
	}
	return s
}

// Noise returns n uniform samples in [-1, 1) from a fixed seed.
func Noise(n int, seed uint64) []float64 {
	rng := rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
	s := make([]float64, n)
	for i := range s {
		s[i] = 2*rng.Float64() - 1
	}
	return s
}

// Reversed returns a reversed copy of s.
func Reversed[T any](s []T) []T {
	r := make([]T, len(s))
	for i, v := range s {
		r[len(s)-1-i] = v
	}
	return r
}

// UnityDCGain returns a copy of b scaled so that sum(b)/sum(a) == 1.
func UnityDCGain(b, a []float64) []float64 {
	var sb, sa float64
	for _, v := range b {
		sb += v
	}
	for _, v := range a {
		sa += v
	}
	out := make([]float64, len(b))
	for i, v := range b {
		out[i] = v * sa / sb
	}
	return out
}
