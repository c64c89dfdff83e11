// SPDX-License-Identifier: MIT

package evaluate_test

import (
	"errors"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/dabench/evaluate"
	"github.com/katalvlaran/dabench/matrix"
)

func mustRows(t *testing.T, rows [][]float64) *matrix.Dense {
	t.Helper()
	m, err := matrix.FromRows(rows)
	if err != nil {
		t.Fatalf("FromRows: %v", err)
	}
	return m
}

func TestAccuracy_IdenticalSets(t *testing.T) {
	t.Parallel()

	x := mustRows(t, [][]float64{{0, 0}, {1, 0}, {0, 1}, {5, 5}})
	y := []int{1, 2, 3, 2}
	acc, err := evaluate.Accuracy(x, y, x, y)
	require.NoError(t, err)
	require.Equal(t, 100.0, acc)
}

func TestAccuracy_KOfN(t *testing.T) {
	t.Parallel()

	train := mustRows(t, [][]float64{{0}, {10}})
	trainY := []int{1, 2}
	test := mustRows(t, [][]float64{{1}, {2}, {9}, {11}, {-3}})
	// nearest labels: 1, 1, 2, 2, 1; three of five match.
	testY := []int{1, 2, 2, 1, 1}
	acc, err := evaluate.Accuracy(train, trainY, test, testY)
	require.NoError(t, err)
	require.InDelta(t, 60.0, acc, 1e-12)
}

func TestPredict_TieGoesToLowestIndex(t *testing.T) {
	t.Parallel()

	train := mustRows(t, [][]float64{{-1}, {1}, {-1}})
	pred, err := evaluate.Predict(train, []int{7, 8, 9}, mustRows(t, [][]float64{{0}}))
	require.NoError(t, err)
	require.Equal(t, []int{7}, pred)
}

func TestAccuracy_PermutationInvariant(t *testing.T) {
	t.Parallel()

	rng := rand.New(rand.NewSource(3))
	const n, c = 40, 5
	rows := make([][]float64, n)
	labels := make([]int, n)
	for i := range rows {
		rows[i] = make([]float64, c)
		for j := range rows[i] {
			rows[i][j] = rng.NormFloat64()
		}
		labels[i] = i%4 + 1
	}
	test := make([][]float64, 25)
	testY := make([]int, 25)
	for i := range test {
		test[i] = make([]float64, c)
		for j := range test[i] {
			test[i][j] = rng.NormFloat64()
		}
		testY[i] = rng.Intn(4) + 1
	}

	base, err := evaluate.Accuracy(mustRows(t, rows), labels, mustRows(t, test), testY)
	require.NoError(t, err)

	perm := rng.Perm(n)
	pRows := make([][]float64, n)
	pLabels := make([]int, n)
	for i, k := range perm {
		pRows[i], pLabels[i] = rows[k], labels[k]
	}
	got, err := evaluate.Accuracy(mustRows(t, pRows), pLabels, mustRows(t, test), testY)
	require.NoError(t, err)
	require.Equal(t, base, got)
}

func TestAccuracy_EmptyInput(t *testing.T) {
	t.Parallel()

	x := mustRows(t, [][]float64{{1, 2}})
	empty, err := matrix.NewDenseFrom(0, 2, nil)
	require.NoError(t, err)

	_, err = evaluate.Accuracy(x, []int{1}, empty, nil)
	var ee *evaluate.EmptyInputError
	require.True(t, errors.As(err, &ee))
	require.Equal(t, evaluate.SideTest, ee.Side)
	require.ErrorIs(t, err, evaluate.ErrEmptyInput)

	_, err = evaluate.Accuracy(empty, nil, x, []int{1})
	require.True(t, errors.As(err, &ee))
	require.Equal(t, evaluate.SideTrain, ee.Side)
}

func TestAccuracy_ShapeMismatch(t *testing.T) {
	t.Parallel()

	a := mustRows(t, [][]float64{{1, 2}, {3, 4}})
	b := mustRows(t, [][]float64{{1, 2, 3}})

	_, err := evaluate.Accuracy(a, []int{1}, a, []int{1, 2})
	require.ErrorIs(t, err, evaluate.ErrShapeMismatch)
	_, err = evaluate.Accuracy(a, []int{1, 2}, a, []int{1})
	require.ErrorIs(t, err, evaluate.ErrShapeMismatch)
	_, err = evaluate.Accuracy(a, []int{1, 2}, b, []int{1})
	require.ErrorIs(t, err, evaluate.ErrShapeMismatch)
}
