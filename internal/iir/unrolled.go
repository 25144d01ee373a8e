package iir

import "github.com/tphakala/go-filtfilt/internal/simdops"

// Unrolled kernels for orders 1 through 6. Each one is the general loop with
// the inner state update written out and the state held in locals.

// runOrder1 filters with a fixed order of 1.
func runOrder1[F simdops.Float](y, x, b, a, z []F, reverse bool) {
	b0, b1 := b[0], b[1]
	a1 := a[1]
	z0 := z[0]

	i, step := scanStart(len(x), reverse)
	for range len(x) {
		xi := x[i]
		yi := b0*xi + z0
		y[i] = yi
		z0 = b1*xi - a1*yi
		i += step
	}

	z[0] = z0
}

// runOrder2 filters with a fixed order of 2.
func runOrder2[F simdops.Float](y, x, b, a, z []F, reverse bool) {
	b0, b1, b2 := b[0], b[1], b[2]
	a1, a2 := a[1], a[2]
	z0, z1 := z[0], z[1]

	i, step := scanStart(len(x), reverse)
	for range len(x) {
		xi := x[i]
		yi := b0*xi + z0
		y[i] = yi
		z0 = b1*xi + z1 - a1*yi
		z1 = b2*xi - a2*yi
		i += step
	}

	z[0], z[1] = z0, z1
}

// runOrder3 filters with a fixed order of 3.
func runOrder3[F simdops.Float](y, x, b, a, z []F, reverse bool) {
	b0, b1, b2, b3 := b[0], b[1], b[2], b[3]
	a1, a2, a3 := a[1], a[2], a[3]
	z0, z1, z2 := z[0], z[1], z[2]

	i, step := scanStart(len(x), reverse)
	for range len(x) {
		xi := x[i]
		yi := b0*xi + z0
		y[i] = yi
		z0 = b1*xi + z1 - a1*yi
		z1 = b2*xi + z2 - a2*yi
		z2 = b3*xi - a3*yi
		i += step
	}

	z[0], z[1], z[2] = z0, z1, z2
}

// runOrder4 filters with a fixed order of 4.
func runOrder4[F simdops.Float](y, x, b, a, z []F, reverse bool) {
	b0, b1, b2, b3, b4 := b[0], b[1], b[2], b[3], b[4]
	a1, a2, a3, a4 := a[1], a[2], a[3], a[4]
	z0, z1, z2, z3 := z[0], z[1], z[2], z[3]

	i, step := scanStart(len(x), reverse)
	for range len(x) {
		xi := x[i]
		yi := b0*xi + z0
		y[i] = yi
		z0 = b1*xi + z1 - a1*yi
		z1 = b2*xi + z2 - a2*yi
		z2 = b3*xi + z3 - a3*yi
		z3 = b4*xi - a4*yi
		i += step
	}

	z[0], z[1], z[2], z[3] = z0, z1, z2, z3
}

// runOrder5 filters with a fixed order of 5.
func runOrder5[F simdops.Float](y, x, b, a, z []F, reverse bool) {
	b0, b1, b2, b3, b4, b5 := b[0], b[1], b[2], b[3], b[4], b[5]
	a1, a2, a3, a4, a5 := a[1], a[2], a[3], a[4], a[5]
	z0, z1, z2, z3, z4 := z[0], z[1], z[2], z[3], z[4]

	i, step := scanStart(len(x), reverse)
	for range len(x) {
		xi := x[i]
		yi := b0*xi + z0
		y[i] = yi
		z0 = b1*xi + z1 - a1*yi
		z1 = b2*xi + z2 - a2*yi
		z2 = b3*xi + z3 - a3*yi
		z3 = b4*xi + z4 - a4*yi
		z4 = b5*xi - a5*yi
		i += step
	}

	z[0], z[1], z[2], z[3], z[4] = z0, z1, z2, z3, z4
}

// runOrder6 filters with a fixed order of 6.
func runOrder6[F simdops.Float](y, x, b, a, z []F, reverse bool) {
	b0, b1, b2, b3, b4, b5, b6 := b[0], b[1], b[2], b[3], b[4], b[5], b[6]
	a1, a2, a3, a4, a5, a6 := a[1], a[2], a[3], a[4], a[5], a[6]
	z0, z1, z2, z3, z4, z5 := z[0], z[1], z[2], z[3], z[4], z[5]

	i, step := scanStart(len(x), reverse)
	for range len(x) {
		xi := x[i]
		yi := b0*xi + z0
		y[i] = yi
		z0 = b1*xi + z1 - a1*yi
		z1 = b2*xi + z2 - a2*yi
		z2 = b3*xi + z3 - a3*yi
		z3 = b4*xi + z4 - a4*yi
		z4 = b5*xi + z5 - a5*yi
		z5 = b6*xi - a6*yi
		i += step
	}

	z[0], z[1], z[2], z[3], z[4], z[5] = z0, z1, z2, z3, z4, z5
}
