// SPDX-License-Identifier: MIT

// Package evaluate scores representations with a 1-nearest-neighbor classifier.
//
// Every test row is assigned the label of the train row at minimum squared
// Euclidean distance. Exact ties go to the lowest train index, so results are
// a pure function of the inputs.
package evaluate

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/dabench/matrix"
)

var (
	// ErrEmptyInput is the sentinel every EmptyInputError unwraps to.
	ErrEmptyInput = errors.New("evaluate: empty input")

	// ErrShapeMismatch is returned for label/row count or column count disagreements.
	ErrShapeMismatch = errors.New("evaluate: shape mismatch")
)

// Sides reported by EmptyInputError.
const (
	SideTrain = "train"
	SideTest  = "test"
)

// EmptyInputError reports a zero-row train or test matrix. It signals an
// upstream contract violation (an empty split or an empty domain).
type EmptyInputError struct {
	Side string
}

// Error implements error.
func (e *EmptyInputError) Error() string {
	return fmt.Sprintf("evaluate: %s matrix has no rows", e.Side)
}

// Unwrap returns ErrEmptyInput.
func (e *EmptyInputError) Unwrap() error { return ErrEmptyInput }

// Predict returns, for each row of test, the label of its nearest train row.
//
// Errors:
//   - *EmptyInputError if train or test has zero rows (train is checked first).
//   - ErrShapeMismatch if len(trainLabels) != train.Rows() or column counts differ.
//
// Complexity:
//   - Time O(rTest * rTrain * c), Space O(rTest).
func Predict(train *matrix.Dense, trainLabels []int, test *matrix.Dense) ([]int, error) {
	if train == nil || train.Rows() == 0 {
		return nil, &EmptyInputError{Side: SideTrain}
	}
	if test == nil || test.Rows() == 0 {
		return nil, &EmptyInputError{Side: SideTest}
	}
	if len(trainLabels) != train.Rows() {
		return nil, fmt.Errorf("%w: %d train labels for %d rows", ErrShapeMismatch, len(trainLabels), train.Rows())
	}
	if train.Cols() != test.Cols() {
		return nil, fmt.Errorf("%w: train has %d columns, test %d", ErrShapeMismatch, train.Cols(), test.Cols())
	}

	nTrain, nTest := train.Rows(), test.Rows()
	pred := make([]int, nTest)

	var (
		i, k, j    int
		q, p       []float64
		dist, diff float64
		best       float64
		arg        int
	)
	for i = 0; i < nTest; i++ {
		q = test.RowView(i)
		arg = 0
		for k = 0; k < nTrain; k++ {
			p = train.RowView(k)
			dist = 0
			for j = range q {
				diff = q[j] - p[j]
				dist += diff * diff
			}
			if k == 0 || dist < best { // strict: ties keep the lower index
				best, arg = dist, k
			}
		}
		pred[i] = trainLabels[arg]
	}

	return pred, nil
}

// Accuracy returns 100 × (correct predictions) / test.Rows(), in [0, 100].
//
// Errors:
//   - Those of Predict, plus ErrShapeMismatch if len(testLabels) != test.Rows().
func Accuracy(train *matrix.Dense, trainLabels []int, test *matrix.Dense, testLabels []int) (float64, error) {
	if test != nil && test.Rows() > 0 && len(testLabels) != test.Rows() {
		return 0, fmt.Errorf("%w: %d test labels for %d rows", ErrShapeMismatch, len(testLabels), test.Rows())
	}
	pred, err := Predict(train, trainLabels, test)
	if err != nil {
		return 0, err
	}

	correct := 0
	for i, p := range pred {
		if p == testLabels[i] {
			correct++
		}
	}

	return 100 * float64(correct) / float64(len(pred)), nil
}
