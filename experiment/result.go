// SPDX-License-Identifier: MIT

package experiment

import "time"

// AlgorithmResult holds one algorithm's trials on one pair.
// A skipped algorithm has Skipped set and no accuracies.
type AlgorithmResult struct {
	Algorithm  string
	Accuracies []float64 // percent, indexed by trial
	Stats      Stats
	Skipped    bool
}

// PairResult holds every algorithm's outcome on one pair.
type PairResult struct {
	Pair       Pair
	Elapsed    time.Duration
	Algorithms []AlgorithmResult // in Config.Algorithms order
}

// AlgorithmSummary averages one algorithm across the pairs it ran on:
// Mean is the mean of per-pair means and Std the mean of per-pair stds.
type AlgorithmSummary struct {
	Algorithm string
	Mean      float64
	Std       float64
	Pairs     int
}

// Skip records a (pair, algorithm) left out under SkipDimensionErrors.
type Skip struct {
	Source    string
	Target    string
	Algorithm string
	Reason    string
}

// Result is the outcome of one Run.
type Result struct {
	RunID   string
	Config  Config
	Pairs   []PairResult
	Summary []AlgorithmSummary
	Skipped []Skip
	Elapsed time.Duration
}

// summarize reduces per-pair stats into one line per algorithm.
func summarize(algorithms []string, pairs []PairResult) []AlgorithmSummary {
	out := make([]AlgorithmSummary, len(algorithms))
	for a, name := range algorithms {
		out[a].Algorithm = name
		for _, pr := range pairs {
			ar := pr.Algorithms[a]
			if ar.Skipped {
				continue
			}
			out[a].Mean += ar.Stats.Mean
			out[a].Std += ar.Stats.Std
			out[a].Pairs++
		}
		if out[a].Pairs > 0 {
			out[a].Mean /= float64(out[a].Pairs)
			out[a].Std /= float64(out[a].Pairs)
		}
	}
	return out
}
