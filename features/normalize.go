// SPDX-License-Identifier: MIT

package features

import "github.com/katalvlaran/dabench/matrix"

// Normalize applies the load-time policy of rep to a raw feature matrix
// and returns a fresh matrix; X is not modified.
//
// Histogram representations are L1-normalized per row first. Every
// representation is then z-scored per column with the population deviation.
func Normalize(rep Representation, X *matrix.Dense) (*matrix.Dense, error) {
	var err error
	src := X
	if rep.Histogram() {
		if src, _, err = matrix.NormalizeRowsL1(X); err != nil {
			return nil, err
		}
	}
	Z, _, _, err := matrix.StandardizeColumns(src)
	if err != nil {
		return nil, err
	}

	return Z, nil
}
