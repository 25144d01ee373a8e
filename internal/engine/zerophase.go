// Package engine implements zero-phase (forward-backward) IIR filtering.
//
// A ZeroPhase filter runs the recursive kernel from internal/iir once forward
// and once in reverse over the input, so the phase shifts of the two passes
// cancel. Transients at both ends are suppressed by extending the signal with
// point-reflected copies of its first and last samples and by seeding each
// pass with steady-state initial conditions.
package engine

import (
	"errors"
	"fmt"

	"github.com/tphakala/go-filtfilt/internal/iir"
	"github.com/tphakala/go-filtfilt/internal/linalg"
	"github.com/tphakala/go-filtfilt/internal/simdops"
)

// ErrInputTooShort indicates a signal with no more samples than the edge
// extension, 3*order.
var ErrInputTooShort = errors.New("input signal too short")

// ZeroPhase holds the normalized coefficients and initial conditions of one
// filter. It is immutable after construction and safe for concurrent use.
type ZeroPhase[F simdops.Float] struct {
	// Normalized float64 coefficients and initial conditions.
	b, a, ic []float64

	// Working copies in the sample precision.
	bF, aF, icF []F

	order int
	nEdge int
	ops   *simdops.Ops[F]
}

// NewZeroPhase normalizes b and a and solves for the steady-state initial
// conditions with the given solver. Initial conditions are always solved in
// float64 and then converted to F.
func NewZeroPhase[F simdops.Float](b, a []float64, solver linalg.Solver) (*ZeroPhase[F], error) {
	nb, na, err := Normalize(b, a)
	if err != nil {
		return nil, err
	}

	ic, err := InitialConditions(nb, na, solver)
	if err != nil {
		return nil, fmt.Errorf("initial conditions: %w", err)
	}

	order := len(na) - 1
	return &ZeroPhase[F]{
		b:     nb,
		a:     na,
		ic:    ic,
		bF:    simdops.Convert[F](nb),
		aF:    simdops.Convert[F](na),
		icF:   simdops.Convert[F](ic),
		order: order,
		nEdge: edgeFactor * order,
		ops:   simdops.For[F](),
	}, nil
}

// Order returns the filter order.
func (zp *ZeroPhase[F]) Order() int {
	return zp.order
}

// EdgeLength returns the number of reflected samples at each end, 3*order.
func (zp *ZeroPhase[F]) EdgeLength() int {
	return zp.nEdge
}

// Coefficients returns copies of the normalized numerator and denominator.
func (zp *ZeroPhase[F]) Coefficients() (b, a []float64) {
	return append([]float64(nil), zp.b...), append([]float64(nil), zp.a...)
}

// InitialConditions returns a copy of the steady-state initial conditions.
func (zp *ZeroPhase[F]) InitialConditions() []float64 {
	return append([]float64(nil), zp.ic...)
}

// Filter returns the zero-phase filtered copy of x. It fails with
// ErrInputTooShort when len(x) <= 3*order. x is not modified.
//
// The passes run in five stages over the reflected head xi, the signal and
// the reflected tail xf:
//
//	A  xi forward from ic*xi[0]                 keep the final state
//	B  x forward from that state                keep output and state
//	C  xf forward from that state               keep output yf
//	D  yf in reverse from ic*yf[nEdge-1]        keep the final state
//	E  B's output in reverse from that state    result
func (zp *ZeroPhase[F]) Filter(x []F) ([]F, error) {
	n := len(x)
	if n <= zp.nEdge {
		return nil, fmt.Errorf("%w: got %d samples, need more than %d", ErrInputTooShort, n, zp.nEdge)
	}

	y := make([]F, n)

	if zp.order == 0 {
		// Forward and reverse gain passes collapse into one.
		b0 := zp.bF[0]
		zp.ops.Scale(y, x, b0*b0)
		return y, nil
	}

	b, a := zp.bF, zp.aF
	xi, xf := ReflectEdges(x, zp.nEdge)
	z := make([]F, zp.order)
	edge := make([]F, zp.nEdge)

	// A
	zp.ops.Scale(z, zp.icF, xi[0])
	iir.Run(edge, xi, b, a, z, false)

	// B
	iir.Run(y, x, b, a, z, false)

	// C
	iir.Run(edge, xf, b, a, z, false)

	// D: the reverse scan reads each sample before overwriting it, so the
	// edge buffer is reused in place.
	zp.ops.Scale(z, zp.icF, edge[zp.nEdge-1])
	iir.Run(edge, edge, b, a, z, true)

	// E
	iir.Run(y, y, b, a, z, true)

	return y, nil
}
