// SPDX-License-Identifier: MIT

package experiment

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestComputeStats(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		in   []float64
		want Stats
	}{
		{"empty", nil, Stats{}},
		{"single", []float64{42}, Stats{Mean: 42}},
		{"population std", []float64{1, 2, 3, 4}, Stats{Mean: 2.5, Std: math.Sqrt(1.25)}},
		{"constant", []float64{50, 50, 50}, Stats{Mean: 50}},
	}
	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			got := computeStats(tc.in)
			require.InDelta(t, tc.want.Mean, got.Mean, 1e-12)
			require.InDelta(t, tc.want.Std, got.Std, 1e-12)
		})
	}
}

func TestSummarize_MeanOfPairMeansAndStds(t *testing.T) {
	t.Parallel()

	pairs := []PairResult{
		{Algorithms: []AlgorithmResult{
			{Algorithm: "NA", Stats: Stats{Mean: 40, Std: 2}},
			{Algorithm: "SA", Skipped: true},
		}},
		{Algorithms: []AlgorithmResult{
			{Algorithm: "NA", Stats: Stats{Mean: 60, Std: 4}},
			{Algorithm: "SA", Stats: Stats{Mean: 70, Std: 1}},
		}},
	}
	got := summarize([]string{"NA", "SA"}, pairs)
	require.Equal(t, []AlgorithmSummary{
		{Algorithm: "NA", Mean: 50, Std: 3, Pairs: 2},
		{Algorithm: "SA", Mean: 70, Std: 1, Pairs: 1},
	}, got)
}
