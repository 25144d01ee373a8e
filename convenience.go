package filtfilt

import (
	"fmt"

	"github.com/tphakala/go-filtfilt/internal/engine"
	"github.com/tphakala/go-filtfilt/internal/iir"
	"github.com/tphakala/go-filtfilt/internal/linalg"
)

// ApplyFilter runs one pass of the filter over x, starting from state z.
//
// b and a must have equal length order+1 with a[0] == 1, and z must hold
// exactly order values, otherwise ErrBadCoefficients or ErrStateSizeMismatch
// is returned before any work is done. With reverse set, samples are visited
// from last to first and each output is written at its input's index.
//
// The returned zf holds the final state, suitable as z for a following
// block of the same signal. x and z are not modified.
func ApplyFilter(b, a, x, z []float64, reverse bool) (y, zf []float64, err error) {
	return iir.Filter(b, a, x, z, reverse)
}

// ApplyFilterFloat32 is the float32 equivalent of ApplyFilter.
func ApplyFilterFloat32(b, a, x, z []float32, reverse bool) (y, zf []float32, err error) {
	return iir.Filter(b, a, x, z, reverse)
}

// ZeroPhaseFilter is a convenience function for one-shot zero-phase filtering.
// It normalizes copies of b and a, so the caller's slices are never modified.
//
// Errors are ErrZeroLeadingCoefficient when a[0] == 0 and ErrInputTooShort
// when len(x) <= 3*order.
func ZeroPhaseFilter(b, a, x []float64) ([]float64, error) {
	zp, err := engine.NewZeroPhase[float64](b, a, linalg.QRSolver{})
	if err != nil {
		return nil, err
	}
	return zp.Filter(x)
}

// ZeroPhaseFilterFloat32 is the float32 equivalent of ZeroPhaseFilter.
// Coefficients stay float64 so the initial conditions are solved in full precision.
func ZeroPhaseFilterFloat32(b, a []float64, x []float32) ([]float32, error) {
	zp, err := engine.NewZeroPhase[float32](b, a, linalg.QRSolver{})
	if err != nil {
		return nil, err
	}
	return zp.Filter(x)
}

// ZeroPhaseFilterStereo is a convenience function for one-shot stereo filtering.
// Both channels share one normalization and initial-condition solve.
func ZeroPhaseFilterStereo(b, a, left, right []float64) (leftOut, rightOut []float64, err error) {
	f, err := New(&Config{B: b, A: a, Channels: stereoChannels})
	if err != nil {
		return nil, nil, err
	}

	out, err := f.ApplyMulti([][]float64{left, right})
	if err != nil {
		return nil, nil, err
	}

	return out[0], out[1], nil
}

// NormalizeCoefficients returns copies of b and a padded with zeros to equal
// length and divided by a[0]. It fails with ErrZeroLeadingCoefficient when
// a is empty or a[0] == 0.
func NormalizeCoefficients(b, a []float64) (nb, na []float64, err error) {
	return engine.Normalize(b, a)
}

// InterleaveToStereo converts two mono channels to interleaved stereo.
// Output format: [L0, R0, L1, R1, L2, R2, ...]
func InterleaveToStereo(left, right []float64) []float64 {
	return Interleave([][]float64{left, right})
}

// DeinterleaveFromStereo converts interleaved stereo to two mono channels.
// Input format: [L0, R0, L1, R1, L2, R2, ...]
func DeinterleaveFromStereo(interleaved []float64) (left, right []float64) {
	numSamples := len(interleaved) / stereoChannels
	left = make([]float64, numSamples)
	right = make([]float64, numSamples)
	for i := range numSamples {
		left[i] = interleaved[i*stereoChannels]
		right[i] = interleaved[i*stereoChannels+1]
	}
	return left, right
}

// Interleave converts planar channels to interleaved frames.
// The output length is the shortest channel times the channel count.
func Interleave(channels [][]float64) []float64 {
	if len(channels) == 0 {
		return nil
	}

	frames := len(channels[0])
	for _, ch := range channels[1:] {
		frames = min(frames, len(ch))
	}

	n := len(channels)
	result := make([]float64, frames*n)
	for i := range frames {
		for c, ch := range channels {
			result[i*n+c] = ch[i]
		}
	}
	return result
}

// Deinterleave splits interleaved frames into numChannels planar channels.
// A trailing partial frame is dropped.
func Deinterleave(interleaved []float64, numChannels int) ([][]float64, error) {
	if numChannels < 1 || numChannels > maxChannels {
		return nil, fmt.Errorf("%w: channel count %d out of range [1, %d]", ErrInvalidConfig, numChannels, maxChannels)
	}

	frames := len(interleaved) / numChannels
	out := make([][]float64, numChannels)
	for c := range out {
		out[c] = make([]float64, frames)
	}
	for i := range frames {
		for c := range numChannels {
			out[c][i] = interleaved[i*numChannels+c]
		}
	}
	return out, nil
}
