// SPDX-License-Identifier: MIT

package adapt

import (
	"fmt"
	"math"
	"strings"

	"github.com/katalvlaran/dabench/matrix"
)

// Solver selects how principal directions are computed.
type Solver int

const (
	// SolverSVD takes right singular vectors of the column-centered data.
	// Cost grows with min(rows, cols), so it handles thousands of features.
	SolverSVD Solver = iota
	// SolverJacobi diagonalizes the sample covariance with Jacobi
	// rotations. Suitable for small feature counts only.
	SolverJacobi
)

// String implements fmt.Stringer.
func (s Solver) String() string {
	switch s {
	case SolverSVD:
		return "svd"
	case SolverJacobi:
		return "jacobi"
	default:
		return fmt.Sprintf("Solver(%d)", int(s))
	}
}

// ParseSolver maps "svd" and "jacobi" (case-insensitive) to a Solver.
// The empty string selects SolverSVD.
func ParseSolver(s string) (Solver, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "svd":
		return SolverSVD, nil
	case "jacobi", "eigen":
		return SolverJacobi, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownSolver, s)
	}
}

const opBasis = "PrincipalBasis"

// PrincipalBasis returns the top-d principal directions of X as a
// Cols()×d matrix, columns in descending-variance order and sign-normalized.
//
// Errors:
//   - *DimensionError (Side "input") if d < 1 or d > min(rows, cols).
//   - Wrapped matrix errors from the solver.
//
// Complexity:
//   - SolverSVD: O(r*c*min(r,c)); SolverJacobi: O(r*c² + Jacobi(c)).
func PrincipalBasis(X *matrix.Dense, d int, solver Solver) (*matrix.Dense, error) {
	if X == nil {
		return nil, ErrNilInput
	}
	if err := checkDim(d, X, "input"); err != nil {
		return nil, err
	}

	// Stage 1: full set of directions, descending order.
	var (
		vecs *matrix.Dense
		err  error
	)
	switch solver {
	case SolverSVD:
		vecs, err = svdDirections(X)
	case SolverJacobi:
		vecs, err = jacobiDirections(X)
	default:
		return nil, fmt.Errorf("%s: %w: %v", opBasis, ErrUnknownSolver, solver)
	}
	if err != nil {
		return nil, fmt.Errorf("%s: %w", opBasis, err)
	}

	// Stage 2: keep the first d columns, fixing each sign.
	return leadingColumns(vecs, d), nil
}

// svdDirections returns V of the thin SVD of the centered data.
func svdDirections(X *matrix.Dense) (*matrix.Dense, error) {
	Xc, _, err := matrix.CenterColumns(X)
	if err != nil {
		return nil, err
	}
	_, V, err := matrix.ThinSVD(Xc)
	return V, err
}

// jacobiDirections returns the eigenvectors of the sample covariance.
// A single row has zero covariance, whose Jacobi eigenbasis is the identity.
func jacobiDirections(X *matrix.Dense) (*matrix.Dense, error) {
	if X.Rows() < 2 {
		return matrix.NewIdentity(X.Cols())
	}
	C, _, err := matrix.Covariance(X)
	if err != nil {
		return nil, err
	}
	_, Q, err := matrix.EigenSym(C)
	return Q, err
}

// leadingColumns copies the first d columns of V and flips each so that its
// largest-magnitude entry is positive.
func leadingColumns(V *matrix.Dense, d int) *matrix.Dense {
	n, k := V.Rows(), V.Cols()
	src := V.RawData()
	out := make([]float64, n*d)

	var i, j, arg int
	var best, a float64
	for j = 0; j < d; j++ {
		best, arg = -1, 0
		for i = 0; i < n; i++ {
			if a = math.Abs(src[i*k+j]); a > best {
				best, arg = a, i
			}
		}
		sign := 1.0
		if src[arg*k+j] < 0 {
			sign = -1.0
		}
		for i = 0; i < n; i++ {
			out[i*d+j] = sign * src[i*k+j]
		}
	}
	// Values come from a finite matrix, so construction cannot fail.
	B, _ := matrix.NewDenseFrom(n, d, out)

	return B
}

// checkDim validates 1 <= d <= min(rows, cols) for one side.
func checkDim(d int, X *matrix.Dense, side string) error {
	r, c := X.Shape()
	if d < 1 || d > min(r, c) {
		return &DimensionError{Dim: d, Rows: r, Cols: c, Side: side}
	}
	return nil
}
