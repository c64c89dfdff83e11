// SPDX-License-Identifier: MIT

package adapt

import (
	"errors"
	"fmt"
)

var (
	// ErrUnknownAlgorithm is returned by New for an unregistered name.
	ErrUnknownAlgorithm = errors.New("adapt: unknown algorithm")

	// ErrDuplicateAlgorithm is returned by Register for a name already taken.
	ErrDuplicateAlgorithm = errors.New("adapt: algorithm already registered")

	// ErrDimension is the sentinel every DimensionError unwraps to.
	ErrDimension = errors.New("adapt: invalid subspace dimension")

	// ErrFeatureMismatch is returned when source and target differ in column count.
	ErrFeatureMismatch = errors.New("adapt: source and target feature counts differ")

	// ErrUnknownSolver is returned for a solver name outside {svd, jacobi}.
	ErrUnknownSolver = errors.New("adapt: unknown solver")

	// ErrNilInput is returned when a feature matrix is nil.
	ErrNilInput = errors.New("adapt: nil feature matrix")
)

// Sides reported by DimensionError.
const (
	SideSource = "source"
	SideTarget = "target"
)

// DimensionError reports a subspace dimension that the data of one side
// cannot support: Dim < 1 or Dim > min(Rows, Cols).
type DimensionError struct {
	Dim  int
	Rows int
	Cols int
	Side string
}

// Error implements error.
func (e *DimensionError) Error() string {
	return fmt.Sprintf("adapt: subspace dimension %d not in [1, min(%d rows, %d cols)] of %s",
		e.Dim, e.Rows, e.Cols, e.Side)
}

// Unwrap returns ErrDimension.
func (e *DimensionError) Unwrap() error { return ErrDimension }
