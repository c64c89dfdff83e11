// SPDX-License-Identifier: MIT

package features_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/dabench/features"
	"github.com/katalvlaran/dabench/matrix"
)

func TestNormalize_DeepIsZScoreOnly(t *testing.T) {
	t.Parallel()

	X, err := matrix.FromRows([][]float64{{1, 7}, {3, 7}})
	require.NoError(t, err)
	Z, err := features.Normalize(features.Deep4096, X)
	require.NoError(t, err)
	require.Equal(t, []float64{-1, 0, 1, 0}, Z.RawData())
	// input untouched
	require.Equal(t, []float64{1, 7, 3, 7}, X.RawData())
}

func TestNormalize_SurfRowsThenColumns(t *testing.T) {
	t.Parallel()

	// Both rows are the same histogram up to scale; after L1 they coincide,
	// so every column has zero variance and z-scores to 0.
	X, err := matrix.FromRows([][]float64{{1, 3}, {2, 6}})
	require.NoError(t, err)
	Z, err := features.Normalize(features.SURF, X)
	require.NoError(t, err)
	for _, v := range Z.RawData() {
		require.InDelta(t, 0, v, 1e-15)
	}

	// Without the L1 step the columns vary.
	D, err := features.Normalize(features.Deep1024, X)
	require.NoError(t, err)
	require.Equal(t, []float64{-1, -1, 1, 1}, D.RawData())
}

func TestParseRepresentation(t *testing.T) {
	t.Parallel()

	for _, r := range features.Representations() {
		got, err := features.ParseRepresentation(string(r))
		require.NoError(t, err)
		require.Equal(t, r, got)
	}
	got, err := features.ParseRepresentation(" SURF ")
	require.NoError(t, err)
	require.Equal(t, features.SURF, got)

	_, err = features.ParseRepresentation("CaffeNet4096")
	require.ErrorIs(t, err, features.ErrUnknownRepresentation)
	require.ErrorContains(t, err, "[surf deep-4096 deep-1024]")
}

func TestShortCode(t *testing.T) {
	t.Parallel()

	require.Equal(t, "A", features.ShortCode(features.Amazon))
	require.Equal(t, "C", features.ShortCode(features.Caltech10))
	require.Equal(t, "", features.ShortCode(""))
}
