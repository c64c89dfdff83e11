// SPDX-License-Identifier: MIT

package split_test

import (
	"fmt"

	"github.com/katalvlaran/dabench/split"
)

// ExampleStratified draws two rows per class from three classes of four rows
// each and shows how the remainder policy changes the complement.
func ExampleStratified() {
	labels := []int{3, 1, 2, 1, 3, 2, 1, 2, 3, 1, 2, 3}

	s, _ := split.Stratified(labels, 2, split.DeriveRNG(split.DefaultSeed, 0, 0))
	full, _ := split.Stratified(labels, 2, split.DeriveRNG(split.DefaultSeed, 0, 0), split.WithFullRemainder())

	fmt.Println("selected:", len(s.Selected))
	fmt.Println("remainder (drop last):", len(s.Remainder))
	fmt.Println("remainder (full):", len(full.Remainder))
	fmt.Println("same selection:", fmt.Sprint(s.Selected) == fmt.Sprint(full.Selected))

	// Output:
	// selected: 6
	// remainder (drop last): 3
	// remainder (full): 6
	// same selection: true
}
