// SPDX-License-Identifier: MIT

package experiment_test

import (
	"context"
	"fmt"
	"testing"

	"github.com/katalvlaran/dabench/experiment"
	"github.com/katalvlaran/dabench/features"
	"github.com/katalvlaran/dabench/matrix"
)

// memLoader serves prebuilt domains.
type memLoader map[string]*features.Domain

func (m memLoader) Load(ctx context.Context, name string) (*features.Domain, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	d, ok := m[name]
	if !ok {
		return nil, &features.DataLoadError{Domain: name, Err: fmt.Errorf("no such domain")}
	}
	return d, nil
}

// synthLoader builds normalized synthetic domains.
func synthLoader(t *testing.T, sc features.SynthConfig) memLoader {
	t.Helper()
	raw, err := features.Synthesize(sc)
	if err != nil {
		t.Fatalf("Synthesize: %v", err)
	}
	out := make(memLoader, len(raw))
	for name, r := range raw {
		X, err := matrix.FromRows(r.Fts)
		if err != nil {
			t.Fatalf("FromRows: %v", err)
		}
		Z, err := features.Normalize(features.Deep1024, X)
		if err != nil {
			t.Fatalf("Normalize: %v", err)
		}
		out[name] = &features.Domain{Name: name, Representation: features.Deep1024, Features: Z, Labels: r.Labels}
	}
	return out
}

// twoDomainConfig is the small end-to-end setup: 3 classes of 10 rows,
// 5 rows per class sampled, SA with d=2.
func twoDomainConfig() experiment.Config {
	cfg := experiment.DefaultConfig()
	cfg.Representation = features.Deep1024
	cfg.Domains = []string{"src", "tgt"}
	cfg.Trials = 4
	cfg.PerClass = 5
	cfg.PerClassOverrides = nil
	cfg.SubspaceDim = 2
	cfg.Seed = 99
	return cfg
}

func sameDistribution() features.SynthConfig {
	return features.SynthConfig{
		Domains: []string{"src", "tgt"}, Classes: 3, RowsPerClass: 10, Dims: 5,
		Separation: 6, Shift: 0, Seed: 5,
	}
}

// accuracies flattens a result to [pair][algorithm][trial].
func accuracies(res *experiment.Result) [][][]float64 {
	out := make([][][]float64, len(res.Pairs))
	for p, pr := range res.Pairs {
		for _, ar := range pr.Algorithms {
			out[p] = append(out[p], ar.Accuracies)
		}
	}
	return out
}

// recorder captures observer callbacks as strings.
type recorder struct{ events []string }

func (r *recorder) PairStarted(p experiment.Pair) { r.events = append(r.events, "start "+p.Label()) }
func (r *recorder) TrialDone(p experiment.Pair, trial int) {
	r.events = append(r.events, fmt.Sprintf("trial %s %d", p.Label(), trial))
}
func (r *recorder) PairDone(pr experiment.PairResult) {
	r.events = append(r.events, "done "+pr.Pair.Label())
}
