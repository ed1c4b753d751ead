package blas

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGemv_NoTrans(t *testing.T) {
	p := Gonum()

	// A = [[1 2 3]
	//      [4 5 6]]
	a := []float32{1, 2, 3, 4, 5, 6}
	x := []float32{1, 0, -1}
	y := []float32{10, 10}

	p.Gemv(false, 2, 3, 1, a, x, 0, y)

	assert.Equal(t, []float32{-2, -2}, y)
}

func TestGemv_Trans(t *testing.T) {
	p := Gonum()

	a := []float32{1, 2, 3, 4, 5, 6}
	x := []float32{1, 2}
	y := []float32{1, 1, 1}

	// y = A^T x + y
	p.Gemv(true, 2, 3, 1, a, x, 1, y)

	assert.Equal(t, []float32{10, 13, 16}, y)
}

func TestGemm_OuterProduct(t *testing.T) {
	p := Gonum()

	col := []float32{1, 2}
	row := []float32{3, 4, 5}
	c := []float32{9, 9, 9, 9, 9, 9}

	p.Gemm(false, false, 2, 3, 1, 1, col, row, 0, c)

	assert.Equal(t, []float32{3, 4, 5, 6, 8, 10}, c)
}

func TestGemm_Transposed(t *testing.T) {
	p := Gonum()

	// A^T where A is 2x2 stored row-major.
	a := []float32{1, 2, 3, 4}
	b := []float32{1, 0, 0, 1}
	c := make([]float32, 4)

	p.Gemm(true, false, 2, 2, 2, 1, a, b, 0, c)

	assert.Equal(t, []float32{1, 3, 2, 4}, c)
}

func TestMul(t *testing.T) {
	p := Gonum()

	a := []float32{1, 2, 3}
	x := []float32{4, -5, 0.5}
	y := []float32{7, 7, 7}

	p.Mul(3, a, x, y)

	assert.Equal(t, []float32{4, -10, 1.5}, y)
}

func TestAxpy(t *testing.T) {
	p := Gonum()

	x := []float32{1, 2, 3}
	y := []float32{1, 1, 1}

	p.Axpy(3, -0.5, x, y)

	assert.InDeltaSlice(t, []float32{0.5, 0, -0.5}, y, 1e-7)
}
