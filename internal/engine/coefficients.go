package engine

import (
	"errors"
	"fmt"

	"gonum.org/v1/gonum/floats"
)

// ErrZeroLeadingCoefficient indicates a denominator whose first coefficient
// is zero (or missing), so the filter cannot be normalized.
var ErrZeroLeadingCoefficient = errors.New("leading denominator coefficient is zero")

// Normalize returns copies of b and a, zero-padded to a common length and
// divided by a[0]. The inputs are not modified.
func Normalize(b, a []float64) (nb, na []float64, err error) {
	n := max(len(a), len(b))
	if len(a) == 0 || a[0] == 0 {
		return nil, nil, fmt.Errorf("%w: len(a)=%d", ErrZeroLeadingCoefficient, len(a))
	}

	nb = make([]float64, n)
	na = make([]float64, n)
	copy(nb, b)
	copy(na, a)

	if a0 := na[0]; a0 != unityLeadingCoefficient {
		for i := range n {
			nb[i] /= a0
			na[i] /= a0
		}
	}

	return nb, na, nil
}

// DCGain returns the zero-frequency gain sum(b)/sum(a) of normalized coefficients.
func DCGain(b, a []float64) float64 {
	return floats.Sum(b) / floats.Sum(a)
}
