// SPDX-License-Identifier: MIT

package matrix_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/dabench/matrix"
)

func TestCenterColumns(t *testing.T) {
	t.Parallel()

	x := NewFilledDense(t, 3, 2, []float64{1, 10, 2, 20, 3, 30})
	xc, means, err := matrix.CenterColumns(x)
	require.NoError(t, err)
	sliceClose(t, means, []float64{2, 20}, 0, epsTight)
	CompareClose(t, xc, NewFilledDense(t, 3, 2, []float64{-1, -10, 0, 0, 1, 10}), 0, epsTight)

	xc2, _, err := matrix.CenterColumns(hide{x})
	require.NoError(t, err)
	CompareClose(t, xc2, xc, 0, 0)
}

func TestNormalizeRowsL1_ZeroRowUnchanged(t *testing.T) {
	t.Parallel()

	x := NewFilledDense(t, 2, 4, []float64{1, 1, 2, 0, 0, 0, 0, 0})
	y, norms, err := matrix.NormalizeRowsL1(x)
	require.NoError(t, err)
	sliceClose(t, norms, []float64{4, 0}, 0, 0)
	CompareClose(t, y, NewFilledDense(t, 2, 4, []float64{0.25, 0.25, 0.5, 0, 0, 0, 0, 0}), 0, epsTight)
}

func TestStandardizeColumns_PopulationStd(t *testing.T) {
	t.Parallel()

	// Column 0 has population std 1; column 1 is constant.
	x := NewFilledDense(t, 2, 2, []float64{1, 5, 3, 5})
	z, means, stds, err := matrix.StandardizeColumns(x)
	require.NoError(t, err)
	sliceClose(t, means, []float64{2, 5}, 0, epsTight)
	sliceClose(t, stds, []float64{1, 0}, 0, epsTight)
	CompareClose(t, z, NewFilledDense(t, 2, 2, []float64{-1, 0, 1, 0}), 0, epsTight)
}

func TestStandardizeColumns_UnitMeanSquare(t *testing.T) {
	t.Parallel()

	x := RandFilledDense(t, 50, 6, 3)
	z, _, _, err := matrix.StandardizeColumns(x)
	require.NoError(t, err)
	for j := 0; j < z.Cols(); j++ {
		var sum, sq float64
		for i := 0; i < z.Rows(); i++ {
			v := MustAt(t, z, i, j)
			sum += v
			sq += v * v
		}
		require.InDelta(t, 0, sum/float64(z.Rows()), 1e-12)
		require.InDelta(t, 1, sq/float64(z.Rows()), 1e-12)
	}
}

func TestCovariance(t *testing.T) {
	t.Parallel()

	x := NewFilledDense(t, 3, 2, []float64{1, 2, 2, 4, 3, 6})
	cov, _, err := matrix.Covariance(x)
	require.NoError(t, err)
	CompareClose(t, cov, NewFilledDense(t, 2, 2, []float64{1, 2, 2, 4}), 0, epsTight)

	one := NewFilledDense(t, 1, 2, []float64{1, 2})
	_, _, err = matrix.Covariance(one)
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
}
