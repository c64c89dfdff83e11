// SPDX-License-Identifier: MIT
// Package matrix: public API facades.
//
// Purpose:
//   - Provide thin, well-documented entry points for common tasks across the package.
//   - Avoid logic duplication: each facade delegates to the canonical implementation.
//
// Determinism & Policy:
//   - Facades never change the loop orders or numeric policy of underlying kernels.
//   - Validation is performed in the kernels; facades only compose or forward.

package matrix

// NewIdentity returns I_n (n×n identity; ones on the diagonal, zeros elsewhere).
// Complexity: O(n^2) zeroing (constructor) + O(n) writes on the diagonal.
func NewIdentity(n int) (*Dense, error) {
	I, err := NewDense(n, n)
	if err != nil {
		return nil, err
	}
	for i := 0; i < n; i++ {
		I.data[i*n+i] = 1.0
	}

	return I, nil
}

// AllClose checks element-wise |a-b| ≤ atol + rtol*|b| for identical shapes.
// Returns (true,nil) if all elements satisfy the relation; (false,nil) otherwise.
// Time: O(r*c). Space: O(1). Deterministic.
func AllClose(a, b Matrix, rtol, atol float64) (bool, error) {
	return ewAllClose(a, b, rtol, atol)
}

// CenterColumns returns a centered copy Xc = X − mean(X, by columns) and the column means.
// Time: O(r*c). Space: O(r*c).
func CenterColumns(X Matrix) (*Dense, []float64, error) { return centerColumns(X) }

// NormalizeRowsL1 returns Y where each row i is scaled to L1-norm = 1 (if possible).
// Degenerate rows (norm==0) are left unchanged. Also returns the norms per row.
// Time: O(r*c). Space: O(r*c). Deterministic.
func NormalizeRowsL1(X Matrix) (*Dense, []float64, error) { return normalizeRowsL1(X) }

// StandardizeColumns z-scores each column with its population standard deviation.
// Columns with zero deviation are only centered. Returns Z, means, stds.
// Time: O(r*c). Space: O(r*c). Deterministic.
func StandardizeColumns(X Matrix) (*Dense, []float64, []float64, error) {
	return standardizeColumns(X)
}

// Covariance computes sample covariance of columns: Cov = (Xcᵀ Xc)/(n-1).
// Returns Cov and column means. Requires r >= 2; else ErrDimensionMismatch.
// Time: O(r*c^2). Space: O(r*c + c^2).
func Covariance(X Matrix) (*Dense, []float64, error) { return covariance(X) }

// EigenSym calls the Jacobi eigen-decomposition with the package defaults
// (DefaultEigenTolerance, DefaultEigenMaxIter) and returns pairs in
// descending eigenvalue order.
func EigenSym(m Matrix) ([]float64, *Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, nil, matrixErrorf(opEigen, err)
	}
	return EigenDescending(m, DefaultEigenTolerance, DefaultEigenMaxIter(m.Rows()))
}
