// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Provide the statistical transforms used by feature preprocessing and PCA
//     (centering, L1 row normalization, z-scoring, covariance) as deterministic
//     compositions over canonical kernels (Mul/Transpose/Scale) and ew* micro-kernels.
//
// Exposed API (see api.go):
//   - CenterColumns(X)      -> (Xc, means)       // subtract per-column mean
//   - NormalizeRowsL1(X)    -> (Y, norms)        // L1 row normalization (degenerate rows unchanged)
//   - StandardizeColumns(X) -> (Z, means, stds)  // z-score with population std; std=0 → centered only
//   - Covariance(X)         -> (Cov, means)      // sample covariance of columns: (Xcᵀ Xc)/(r-1)
//
// Determinism & Performance:
//   - Fixed i→j traversal for all explicit loops.
//   - Dense fast-paths avoid At/Set and operate on row-major flat buffers.
//   - Zero-size matrices (0×N or N×0) are treated as no-ops for centering/normalization.

package matrix

import "math"

// Operation name constants for unified error wrapping and reducing magic strings.
const (
	opCenterColumns      = "CenterColumns"
	opNormalizeRowsL1    = "NormalizeRowsL1"
	opStandardizeColumns = "StandardizeColumns"
	opCovariance         = "Covariance"
	opColumnMeans        = "ColumnMeans"
)

// columnMeans returns Σ_i X[i,j] / r for every column j (zeros when r==0).
// Complexity: O(r*c) time, O(c) space.
func columnMeans(X Matrix) ([]float64, error) {
	r, c := X.Rows(), X.Cols()
	means := make([]float64, c) // always return correct length for callers
	if r == 0 || c == 0 {
		return means, nil
	}

	var i, j int
	if d, ok := X.(*Dense); ok {
		for i = 0; i < r; i++ { // deterministic row order
			base := i * c
			for j = 0; j < c; j++ {
				means[j] += d.data[base+j]
			}
		}
	} else {
		var v float64
		var err error
		for i = 0; i < r; i++ {
			for j = 0; j < c; j++ {
				if v, err = X.At(i, j); err != nil {
					return nil, matrixErrorf(opColumnMeans, err)
				}
				means[j] += v
			}
		}
	}

	invR := 1.0 / float64(r)
	for j = 0; j < c; j++ {
		means[j] *= invR
	}

	return means, nil
}

// centerColumns subtracts the per-column mean from every element (column-wise centering).
// Implementation:
//   - Stage 1: Validate X (non-nil) and handle zero-size as a strict no-op.
//   - Stage 2: Compute column means in a deterministic pass.
//   - Stage 3: Apply ewBroadcastSubCols to produce a centered copy.
//
// Complexity:
//   - Time O(r*c), Space O(r*c) for output (+ O(c) means).
func centerColumns(X Matrix) (*Dense, []float64, error) {
	if err := ValidateNotNil(X); err != nil {
		return nil, nil, matrixErrorf(opCenterColumns, err)
	}

	means, err := columnMeans(X)
	if err != nil {
		return nil, nil, matrixErrorf(opCenterColumns, err)
	}

	Xc, err := ewBroadcastSubCols(X, means)
	if err != nil {
		return nil, nil, matrixErrorf(opCenterColumns, err)
	}

	return Xc, means, nil
}

// normalizeRowsL1 scales each row to have L1-norm == 1 when possible.
// Implementation:
//   - Stage 1: Validate X (non-nil).
//   - Stage 2: Compute per-row L1 norms deterministically.
//   - Stage 3: Build row scale factors (1/norm); for norm==0 use scale=1 to keep the row unchanged.
//   - Stage 4: Apply ewScaleRows to produce a normalized copy.
//
// Notes:
//   - For non-negative histograms the L1 norm equals the row sum, so this
//     is exactly "divide each bin by the histogram total".
//
// Complexity:
//   - Time O(r*c), Space O(r*c) for output (+ O(r) norms + O(r) scales).
func normalizeRowsL1(X Matrix) (*Dense, []float64, error) {
	if err := ValidateNotNil(X); err != nil {
		return nil, nil, matrixErrorf(opNormalizeRowsL1, err)
	}

	r, c := X.Rows(), X.Cols()
	norms := make([]float64, r)

	var i, j int
	var s, v float64
	if d, ok := X.(*Dense); ok {
		for i = 0; i < r; i++ {
			s = 0.0
			base := i * c
			for j = 0; j < c; j++ {
				s += math.Abs(d.data[base+j])
			}
			norms[i] = s
		}
	} else {
		var err error
		for i = 0; i < r; i++ {
			s = 0.0
			for j = 0; j < c; j++ {
				if v, err = X.At(i, j); err != nil {
					return nil, nil, matrixErrorf(opNormalizeRowsL1, err)
				}
				s += math.Abs(v)
			}
			norms[i] = s
		}
	}

	// 1/norm for normal rows; 1 for degenerate rows (leave unchanged).
	scale := make([]float64, r)
	for i = 0; i < r; i++ {
		if norms[i] > 0 {
			scale[i] = 1.0 / norms[i]
		} else {
			scale[i] = 1.0
		}
	}

	Y, err := ewScaleRows(X, scale)
	if err != nil {
		return nil, nil, matrixErrorf(opNormalizeRowsL1, err)
	}

	return Y, norms, nil
}

// standardizeColumns z-scores every column: Z[i,j] = (X[i,j] - mean_j) / std_j.
// Implementation:
//   - Stage 1: Center columns (reuse centerColumns).
//   - Stage 2: Population std per column: std_j = sqrt(Σ_i Xc[i,j]² / r).
//   - Stage 3: Scale columns by 1/std_j; columns with std_j == 0 keep scale 1
//     (they are already all-zero after centering).
//
// Returns:
//   - *Dense: standardized copy (r×c).
//   - []float64: column means; []float64: column population stds.
//
// Notes:
//   - Population (ddof=0) deviation, so a standardized column has unit
//     mean-square, not unit sample variance.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func standardizeColumns(X Matrix) (*Dense, []float64, []float64, error) {
	Xc, means, err := centerColumns(X)
	if err != nil {
		return nil, nil, nil, matrixErrorf(opStandardizeColumns, err)
	}

	r, c := Xc.r, Xc.c
	stds := make([]float64, c)
	if r == 0 || c == 0 {
		return Xc, means, stds, nil
	}

	var i, j int
	var v float64
	for i = 0; i < r; i++ {
		base := i * c
		for j = 0; j < c; j++ {
			v = Xc.data[base+j]
			stds[j] += v * v
		}
	}
	invStd := make([]float64, c)
	invR := 1.0 / float64(r)
	for j = 0; j < c; j++ {
		stds[j] = math.Sqrt(stds[j] * invR)
		if stds[j] > 0 {
			invStd[j] = 1.0 / stds[j]
		} else {
			invStd[j] = 1.0 // degenerate column: centered zeros stay zeros
		}
	}

	Z, err := ewScaleCols(Xc, invStd)
	if err != nil {
		return nil, nil, nil, matrixErrorf(opStandardizeColumns, err)
	}

	return Z, means, stds, nil
}

// covariance computes sample covariance of columns: Cov = (Xcᵀ * Xc)/(r-1).
// Implementation:
//   - Stage 1: Validate X, require r>=2 (sample denominator).
//   - Stage 2: Center columns once; then Transpose → Mul → Scale.
//
// Behavior highlights:
//   - Symmetric output; diagonal equals per-column sample variances.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch (r<2), wrapped kernel errors.
//
// Complexity:
//   - Time O(r*c + r*c^2), Space O(r*c + c^2).
func covariance(X Matrix) (*Dense, []float64, error) {
	if err := ValidateNotNil(X); err != nil {
		return nil, nil, matrixErrorf(opCovariance, err)
	}

	r, c := X.Rows(), X.Cols()
	if c == 0 {
		z, err := newDenseZeroOK(0, 0)
		if err != nil {
			return nil, nil, matrixErrorf(opCovariance, err)
		}
		return z, make([]float64, 0), nil
	}
	if r < 2 {
		return nil, nil, matrixErrorf(opCovariance, ErrDimensionMismatch)
	}

	Xc, means, err := centerColumns(X)
	if err != nil {
		return nil, nil, matrixErrorf(opCovariance, err)
	}
	Xct, err := Transpose(Xc)
	if err != nil {
		return nil, nil, matrixErrorf(opCovariance, err)
	}
	G, err := Mul(Xct, Xc)
	if err != nil {
		return nil, nil, matrixErrorf(opCovariance, err)
	}
	Cov, err := Scale(G, 1.0/float64(r-1))
	if err != nil {
		return nil, nil, matrixErrorf(opCovariance, err)
	}

	return Cov, means, nil
}
