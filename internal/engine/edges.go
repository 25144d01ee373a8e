package engine

import "github.com/tphakala/go-filtfilt/internal/simdops"

// ReflectEdges builds the point-reflected extensions placed before and after x:
//
//	xi[k] = 2*x[0]   - x[nEdge-k]
//	xf[k] = 2*x[n-1] - x[n-2-k]
//
// for k = 0 .. nEdge-1. The caller guarantees len(x) > nEdge.
func ReflectEdges[F simdops.Float](x []F, nEdge int) (xi, xf []F) {
	n := len(x)
	xi = make([]F, nEdge)
	xf = make([]F, nEdge)

	first, last := 2*x[0], 2*x[n-1]
	for k := range nEdge {
		xi[k] = first - x[nEdge-k]
		xf[k] = last - x[n-2-k]
	}
	return xi, xf
}
