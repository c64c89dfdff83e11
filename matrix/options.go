// SPDX-License-Identifier: MIT

// Package matrix: numeric policy defaults (single source of truth).
package matrix

const (
	// DefaultEpsilon defines the non-negative tolerance used by structural checks
	// (symmetry validation before Eigen).
	DefaultEpsilon = 1e-9

	// DefaultValidateNaNInf toggles strict finite-value validation on ingestion and Set.
	// Feature matrices are always finite after loading, so the guard stays on.
	DefaultValidateNaNInf = true

	// DefaultEigenTolerance is the off-diagonal convergence threshold for Jacobi sweeps.
	DefaultEigenTolerance = 1e-10
)

// DefaultEigenMaxIter returns a rotation budget for an n×n Jacobi run.
// Classical Jacobi needs O(n²) rotations per sweep and rarely more than a
// dozen sweeps on well-conditioned covariance matrices.
func DefaultEigenMaxIter(n int) int {
	return 20*n*n + 100
}
