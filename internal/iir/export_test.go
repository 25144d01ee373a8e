package iir

import "github.com/tphakala/go-filtfilt/internal/simdops"

// Export internal functions for testing.

// RunGeneral runs the reference loop regardless of order.
func RunGeneral[F simdops.Float](y, x, b, a, z []F, reverse bool) {
	runGeneral(y, x, b, a, z, reverse)
}
