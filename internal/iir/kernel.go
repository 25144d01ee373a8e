// Package iir implements the Direct-Form-II-Transposed recursive filter kernel.
//
// A filter of order N is described by numerator coefficients b[0..N] and
// denominator coefficients a[0..N] with a[0] == 1. Each input sample x[i]
// produces one output sample and advances the N-element state vector z:
//
//	y[i]     = b[0]*x[i] + z[0]
//	z[j-1]   = b[j]*x[i] + z[j] - a[j]*y[i]   for j = 1 .. N-1
//	z[N-1]   = b[N]*x[i] - a[N]*y[i]
//
// Samples can be scanned forward (i = 0 .. n-1) or in reverse
// (i = n-1 .. 0). A reverse scan is equivalent to reversing the input,
// filtering forward and reversing the output, without the copies.
//
// Orders 1 through 6 run on manually unrolled kernels that keep the state in
// local variables. Every other order uses the general loop. The unrolled
// kernels evaluate exactly the same expressions as the general loop.
package iir

import (
	"errors"
	"fmt"

	"github.com/tphakala/go-filtfilt/internal/simdops"
)

// Errors reported by coefficient and state validation.
var (
	// ErrBadCoefficients indicates coefficient vectors of different lengths,
	// empty vectors, or a leading denominator coefficient other than 1.
	ErrBadCoefficients = errors.New("bad filter coefficients")

	// ErrStateSizeMismatch indicates an initial state whose length differs
	// from the filter order.
	ErrStateSizeMismatch = errors.New("initial state size does not match filter order")
)

// Validate checks the kernel preconditions for b, a and the initial state z.
func Validate[F simdops.Float](b, a, z []F) error {
	if len(a) == 0 || len(b) == 0 {
		return fmt.Errorf("%w: empty coefficient vector", ErrBadCoefficients)
	}
	if len(a) != len(b) {
		return fmt.Errorf("%w: len(a)=%d, len(b)=%d", ErrBadCoefficients, len(a), len(b))
	}
	if a[0] != 1 {
		return fmt.Errorf("%w: a[0]=%v, want 1", ErrBadCoefficients, a[0])
	}
	if order := len(a) - 1; len(z) != order {
		return fmt.Errorf("%w: len(z)=%d, order=%d", ErrStateSizeMismatch, len(z), order)
	}
	return nil
}

// Filter applies one pass of the filter to x starting from state z.
// It returns a newly allocated output of len(x) and the final state.
// Neither x nor z is modified.
func Filter[F simdops.Float](b, a, x, z []F, reverse bool) (y, zf []F, err error) {
	if err := Validate(b, a, z); err != nil {
		return nil, nil, err
	}

	y = make([]F, len(x))
	zf = make([]F, len(z))
	copy(zf, z)

	Run(y, x, b, a, zf, reverse)
	return y, zf, nil
}

// Run is the unchecked kernel entry point used by the zero-phase engine.
// The caller guarantees that Validate(b, a, z) passes and len(y) >= len(x).
// The state z is updated in place and holds the final conditions on return.
func Run[F simdops.Float](y, x, b, a, z []F, reverse bool) {
	if len(x) == 0 {
		return
	}
	_ = y[len(x)-1] // bounds check hint

	switch order := len(a) - 1; order {
	case 0:
		runGain(y, x, b[0])
	case 1:
		runOrder1(y, x, b, a, z, reverse)
	case 2:
		runOrder2(y, x, b, a, z, reverse)
	case 3:
		runOrder3(y, x, b, a, z, reverse)
	case 4:
		runOrder4(y, x, b, a, z, reverse)
	case 5:
		runOrder5(y, x, b, a, z, reverse)
	case 6:
		runOrder6(y, x, b, a, z, reverse)
	default:
		runGeneral(y, x, b, a, z, reverse)
	}
}

// scanStart returns the first index and the index step for a scan over n samples.
func scanStart(n int, reverse bool) (first, step int) {
	if reverse {
		return n - 1, -1
	}
	return 0, 1
}

// runGain handles order 0, where the filter has no memory and scan order is irrelevant.
func runGain[F simdops.Float](y, x []F, b0 F) {
	for i, xi := range x {
		y[i] = b0 * xi
	}
}

// runGeneral is the reference kernel for any order >= 1.
func runGeneral[F simdops.Float](y, x, b, a, z []F, reverse bool) {
	order := len(z)
	b0 := b[0]
	bN := b[order]
	aN := a[order]

	i, step := scanStart(len(x), reverse)
	for range len(x) {
		xi := x[i]
		yi := b0*xi + z[0]
		y[i] = yi
		for j := 1; j < order; j++ {
			z[j-1] = b[j]*xi + z[j] - a[j]*yi
		}
		z[order-1] = bN*xi - aN*yi
		i += step
	}
}
