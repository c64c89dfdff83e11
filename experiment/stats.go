// SPDX-License-Identifier: MIT

package experiment

import "math"

// Stats is the mean and population standard deviation of a sample.
type Stats struct {
	Mean float64
	Std  float64
}

// computeStats reduces xs with two passes; an empty sample yields zeros.
func computeStats(xs []float64) Stats {
	if len(xs) == 0 {
		return Stats{}
	}
	var sum float64
	for _, x := range xs {
		sum += x
	}
	mean := sum / float64(len(xs))

	var ss, d float64
	for _, x := range xs {
		d = x - mean
		ss += d * d
	}

	return Stats{Mean: mean, Std: math.Sqrt(ss / float64(len(xs)))}
}
