package engine

import (
	"errors"
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"

	"github.com/tphakala/go-filtfilt/internal/linalg"
)

// InitialConditions returns the filter state ic for which a unit step input
// is already in steady state. Scaled by a signal value c, ic*c is the state
// the filter would hold after seeing c forever.
//
// b and a must be normalized and of equal length. ic solves K*ic = r where
//
//	K[:, 0] = [1+a[1], a[2], ..., a[N]]
//	K[i, i] = 1, K[i-1, i] = -1          for i = 1 .. N-1
//	r       = b[1:] - b[0]*a[1:]
//
// When K is singular the result is all NaN and no error is returned; the
// zero-phase output then becomes non-finite.
func InitialConditions(b, a []float64, solver linalg.Solver) ([]float64, error) {
	order := len(a) - 1
	if order <= 0 {
		return []float64{}, nil
	}

	k := mat.NewDense(order, order, nil)
	k.Set(0, 0, 1+a[1])
	for i := 1; i < order; i++ {
		k.Set(i, 0, a[i+1])
		k.Set(i, i, 1)
		k.Set(i-1, i, -1)
	}

	r := make([]float64, order)
	floats.AddScaledTo(r, b[1:], -b[0], a[1:])

	ic, err := solver.Solve(k, r)
	if errors.Is(err, linalg.ErrSingular) {
		ic = make([]float64, order)
		for i := range ic {
			ic[i] = math.NaN()
		}
		return ic, nil
	}
	if err != nil {
		return nil, err
	}
	return ic, nil
}
