package simdops

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFor_Float64(t *testing.T) {
	ops := For[float64]()
	assert.Same(t, ops, For[float64]())

	dst := make([]float64, 4)
	ops.Scale(dst, []float64{1, -2, 0.5, 4}, 2)
	assert.Equal(t, []float64{2, -4, 1, 8}, dst)
}

func TestFor_Float32(t *testing.T) {
	ops := For[float32]()

	dst := make([]float32, 3)
	ops.Scale(dst, []float32{1, 2, 3}, 0.5)
	assert.Equal(t, []float32{0.5, 1, 1.5}, dst)
}

func TestConvert(t *testing.T) {
	src := []float64{0.25, -1.5, 3}
	got := Convert[float32](src)
	assert.Equal(t, []float32{0.25, -1.5, 3}, got)

	back := Convert[float64](got)
	assert.Equal(t, src, back)

	assert.Empty(t, Convert[float32]([]float64{}))
}
