// Package blas provides the dense linear algebra primitives used by the
// layers: matrix-vector product, matrix-matrix product, elementwise product
// and scaled accumulate over flat row-major float32 buffers.
//
// The default Provider is backed by gonum's blas32 package. Callers are
// responsible for passing dimensions consistent with buffer lengths.
package blas

import (
	"gonum.org/v1/gonum/blas"
	"gonum.org/v1/gonum/blas/blas32"
)

// Provider is the set of BLAS-style primitives a layer needs.
//
// All matrices are row-major with a leading dimension equal to their
// column count. Every call must be deterministic for identical inputs.
type Provider interface {
	// Gemv computes y = alpha*op(A)*x + beta*y where A is rows x cols and
	// op(A) is A or A^T depending on trans.
	Gemv(trans bool, rows, cols int, alpha float32, a, x []float32, beta float32, y []float32)

	// Gemm computes C = alpha*op(A)*op(B) + beta*C where op(A) is m x k,
	// op(B) is k x n and C is m x n.
	Gemm(transA, transB bool, m, n, k int, alpha float32, a, b []float32, beta float32, c []float32)

	// Mul computes y[i] = a[i]*x[i] for i < n. y must not alias a or x.
	Mul(n int, a, x, y []float32)

	// Axpy computes y = alpha*x + y for the first n elements.
	Axpy(n int, alpha float32, x, y []float32)
}

// GonumProvider implements Provider on top of gonum.org/v1/gonum/blas/blas32.
type GonumProvider struct{}

// Gonum returns the gonum-backed provider.
func Gonum() Provider {
	return GonumProvider{}
}

func transpose(t bool) blas.Transpose {
	if t {
		return blas.Trans
	}
	return blas.NoTrans
}

// Gemv implements Provider.
func (GonumProvider) Gemv(trans bool, rows, cols int, alpha float32, a, x []float32, beta float32, y []float32) {
	xn, yn := cols, rows
	if trans {
		xn, yn = rows, cols
	}
	blas32.Gemv(transpose(trans), alpha,
		blas32.General{Rows: rows, Cols: cols, Stride: cols, Data: a},
		blas32.Vector{N: xn, Inc: 1, Data: x},
		beta,
		blas32.Vector{N: yn, Inc: 1, Data: y},
	)
}

// Gemm implements Provider.
func (GonumProvider) Gemm(transA, transB bool, m, n, k int, alpha float32, a, b []float32, beta float32, c []float32) {
	ga := blas32.General{Rows: m, Cols: k, Stride: k, Data: a}
	if transA {
		ga = blas32.General{Rows: k, Cols: m, Stride: m, Data: a}
	}
	gb := blas32.General{Rows: k, Cols: n, Stride: n, Data: b}
	if transB {
		gb = blas32.General{Rows: n, Cols: k, Stride: k, Data: b}
	}
	blas32.Gemm(transpose(transA), transpose(transB), alpha, ga, gb, beta,
		blas32.General{Rows: m, Cols: n, Stride: n, Data: c},
	)
}

// Mul implements Provider as a product with the diagonal band matrix diag(a).
func (GonumProvider) Mul(n int, a, x, y []float32) {
	blas32.Sbmv(1,
		blas32.SymmetricBand{Uplo: blas.Upper, N: n, K: 0, Stride: 1, Data: a[:n]},
		blas32.Vector{N: n, Inc: 1, Data: x},
		0,
		blas32.Vector{N: n, Inc: 1, Data: y},
	)
}

// Axpy implements Provider.
func (GonumProvider) Axpy(n int, alpha float32, x, y []float32) {
	blas32.Axpy(alpha,
		blas32.Vector{N: n, Inc: 1, Data: x},
		blas32.Vector{N: n, Inc: 1, Data: y},
	)
}
