// SPDX-License-Identifier: MIT

package evaluate_test

import (
	"fmt"

	"github.com/katalvlaran/dabench/evaluate"
	"github.com/katalvlaran/dabench/matrix"
)

// ExampleAccuracy scores two clusters on a line: test points near 0 belong to
// class 1 and points near 10 to class 2; the last point is deliberately mislabeled.
func ExampleAccuracy() {
	train, _ := matrix.FromRows([][]float64{{0}, {1}, {9}, {10}})
	test, _ := matrix.FromRows([][]float64{{0.4}, {9.6}, {8.8}, {0.2}})

	pred, _ := evaluate.Predict(train, []int{1, 1, 2, 2}, test)
	acc, _ := evaluate.Accuracy(train, []int{1, 1, 2, 2}, test, []int{1, 2, 2, 2})

	fmt.Println("predicted:", pred)
	fmt.Printf("accuracy: %.1f%%\n", acc)

	// Output:
	// predicted: [1 2 2 1]
	// accuracy: 75.0%
}
