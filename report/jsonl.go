// SPDX-License-Identifier: MIT

package report

import (
	"encoding/json"
	"io"

	"github.com/katalvlaran/dabench/experiment"
)

// Record kinds.
const (
	KindTrial   = "trial"
	KindSkip    = "skip"
	KindSummary = "summary"
)

// Record is one JSON line. Fields irrelevant to a kind are omitted.
type Record struct {
	Kind      string   `json:"kind"`
	RunID     string   `json:"run_id"`
	Source    string   `json:"source,omitempty"`
	Target    string   `json:"target,omitempty"`
	Algorithm string   `json:"algorithm"`
	Trial     *int     `json:"trial,omitempty"`
	Accuracy  *float64 `json:"accuracy,omitempty"`
	Mean      *float64 `json:"mean,omitempty"`
	Std       *float64 `json:"std,omitempty"`
	Pairs     *int     `json:"pairs,omitempty"`
	Reason    string   `json:"reason,omitempty"`
}

// Records flattens res: trial records in (pair, algorithm, trial) order,
// then skips, then one summary per algorithm.
func Records(res *experiment.Result) []Record {
	var out []Record
	for _, pr := range res.Pairs {
		for _, ar := range pr.Algorithms {
			for t, acc := range ar.Accuracies {
				out = append(out, Record{
					Kind: KindTrial, RunID: res.RunID,
					Source: pr.Pair.Source, Target: pr.Pair.Target, Algorithm: ar.Algorithm,
					Trial: ptr(t), Accuracy: ptr(acc),
				})
			}
		}
	}
	for _, s := range res.Skipped {
		out = append(out, Record{
			Kind: KindSkip, RunID: res.RunID,
			Source: s.Source, Target: s.Target, Algorithm: s.Algorithm, Reason: s.Reason,
		})
	}
	for _, s := range res.Summary {
		rec := Record{Kind: KindSummary, RunID: res.RunID, Algorithm: s.Algorithm, Pairs: ptr(s.Pairs)}
		if s.Pairs > 0 {
			rec.Mean, rec.Std = ptr(s.Mean), ptr(s.Std)
		}
		out = append(out, rec)
	}
	return out
}

// JSONLines writes Records(res) to w, one object per line.
func JSONLines(w io.Writer, res *experiment.Result) error {
	enc := json.NewEncoder(w)
	for _, rec := range Records(res) {
		if err := enc.Encode(rec); err != nil {
			return err
		}
	}
	return nil
}

func ptr[T any](v T) *T { return &v }
