// SPDX-License-Identifier: MIT

package adapt_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/dabench/matrix"
)

// randDense returns an r×c matrix whose column j has scale (j+1), so the
// covariance spectrum is well separated.
func randDense(t *testing.T, r, c int, seed int64) *matrix.Dense {
	t.Helper()
	rng := rand.New(rand.NewSource(seed))
	data := make([]float64, r*c)
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			data[i*c+j] = float64(j+1) * rng.NormFloat64()
		}
	}
	m, err := matrix.NewDenseFrom(r, c, data)
	if err != nil {
		t.Fatalf("NewDenseFrom: %v", err)
	}
	return m
}

func labelsN(n, classes int) []int {
	out := make([]int, n)
	for i := range out {
		out[i] = i%classes + 1
	}
	return out
}
