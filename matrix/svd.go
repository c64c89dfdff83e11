// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Bridge Dense to gonum's LAPACK-backed SVD for high-dimensional inputs
//     (thousands of feature columns) where Jacobi sweeps over a c×c covariance
//     would be far too slow.
//
// Determinism:
//   - gonum's SVD is deterministic for identical input; singular values are
//     returned in descending order with matching right singular vectors.

package matrix

import (
	"gonum.org/v1/gonum/mat"
)

const opThinSVD = "ThinSVD"

// ThinSVD factorizes X (r×c) as U·Σ·Vᵀ and returns the singular values
// (descending, length k = min(r,c)) and V (c×k, columns are right singular vectors).
//
// Errors:
//   - ErrNilMatrix for nil input, ErrInvalidDimensions for empty input,
//     ErrSVDFailed when the factorization does not converge.
//
// Complexity:
//   - Time O(r*c*k), Space O(r*c + c*k).
func ThinSVD(X Matrix) ([]float64, *Dense, error) {
	if err := ValidateNotNil(X); err != nil {
		return nil, nil, matrixErrorf(opThinSVD, err)
	}
	src, err := toDense(X) // private copy: gonum must not alias caller storage
	if err != nil {
		return nil, nil, matrixErrorf(opThinSVD, err)
	}
	if src.r == 0 || src.c == 0 {
		return nil, nil, matrixErrorf(opThinSVD, ErrInvalidDimensions)
	}

	var svd mat.SVD
	if ok := svd.Factorize(mat.NewDense(src.r, src.c, src.data), mat.SVDThin); !ok {
		return nil, nil, matrixErrorf(opThinSVD, ErrSVDFailed)
	}
	values := svd.Values(nil)

	var v mat.Dense
	svd.VTo(&v)
	vr, vc := v.Dims()
	V, err := newDenseZeroOK(vr, vc)
	if err != nil {
		return nil, nil, matrixErrorf(opThinSVD, err)
	}
	var i, j int
	for i = 0; i < vr; i++ {
		for j = 0; j < vc; j++ {
			V.data[i*vc+j] = v.At(i, j)
		}
	}

	return values, V, nil
}
