package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestReflectEdges(t *testing.T) {
	x := []float64{1, 2, 4, 8, 16, 32, 64}

	xi, xf := ReflectEdges(x, 3)

	// xi[k] = 2*x[0] - x[3-k]
	assert.Equal(t, []float64{2 - 8, 2 - 4, 2 - 2}, xi)
	// xf[k] = 2*x[6] - x[5-k]
	assert.Equal(t, []float64{128 - 32, 128 - 16, 128 - 8}, xf)
}

func TestReflectEdges_LinearSignalContinues(t *testing.T) {
	// A ramp reflected through its end points stays a ramp.
	x := []float64{10, 11, 12, 13, 14, 15, 16, 17}
	nEdge := 6

	xi, xf := ReflectEdges(x, nEdge)

	for k := range nEdge {
		assert.InDelta(t, float64(10-nEdge+k), xi[k], 1e-15, "xi[%d]", k)
		assert.InDelta(t, float64(18+k), xf[k], 1e-15, "xf[%d]", k)
	}
}

func TestReflectEdges_Empty(t *testing.T) {
	xi, xf := ReflectEdges([]float32{1}, 0)
	assert.Empty(t, xi)
	assert.Empty(t, xf)
}

func TestReflectEdges_DoesNotMutateInput(t *testing.T) {
	x := []float32{3, 1, 4, 1, 5}
	ReflectEdges(x, 2)
	assert.Equal(t, []float32{3, 1, 4, 1, 5}, x)
}
