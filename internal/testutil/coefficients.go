package testutil

// Stable test poles. Any prefix of this list gives a stable denominator.
var testPoles = []float64{0.5, -0.3, 0.7, 0.2, -0.6, 0.4, 0.1, -0.45, 0.3, -0.15}

// Butterworth low-pass designs (cutoff 0.2 of Nyquist) used as realistic filters.
var (
	Butter2B = []float64{0.06745527388907191, 0.13491054777814382, 0.06745527388907191}
	Butter2A = []float64{1, -1.142980502539901, 0.41280159809618866}

	Butter4B = []float64{
		0.004824343357716228, 0.01929737343086491, 0.028946060146297366,
		0.01929737343086491, 0.004824343357716228,
	}
	Butter4A = []float64{
		1, -2.369513007182038, 2.313988414415880, -1.054665405878568, 0.187379492368185,
	}
)

// PolyFromRoots returns the monic polynomial coefficients, highest power
// first, whose roots are the given values.
func PolyFromRoots(roots []float64) []float64 {
	p := []float64{1}
	for _, r := range roots {
		next := make([]float64, len(p)+1)
		for i, c := range p {
			next[i] += c
			next[i+1] -= c * r
		}
		p = next
	}
	return p
}

// StableFilter returns deterministic coefficients of the given order with
// a[0] == 1 and all poles strictly inside the unit circle.
func StableFilter(order int) (b, a []float64) {
	roots := make([]float64, order)
	for i := range roots {
		roots[i] = testPoles[i%len(testPoles)] * (1 - 0.01*float64(i/len(testPoles)))
	}
	a = PolyFromRoots(roots)
	b = make([]float64, order+1)
	for i := range b {
		b[i] = 0.1 + 0.05*float64(i%3) - 0.02*float64(i)
	}
	return b, a
}
