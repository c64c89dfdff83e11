// SPDX-License-Identifier: MIT

package experiment

import "github.com/katalvlaran/dabench/features"

// Pair is one ordered (source, target) evaluation with its source budget.
type Pair struct {
	Index    int
	Source   string
	Target   string
	PerClass int
}

// Label renders the pair as "S->T" using domain short codes.
func (p Pair) Label() string {
	return features.ShortCode(p.Source) + "->" + features.ShortCode(p.Target)
}

// Plan lists every ordered pair of distinct configured domains,
// source-major in configuration order.
func Plan(cfg Config) []Pair {
	n := len(cfg.Domains)
	out := make([]Pair, 0, n*(n-1))
	for _, s := range cfg.Domains {
		for _, t := range cfg.Domains {
			if s == t {
				continue
			}
			out = append(out, Pair{Index: len(out), Source: s, Target: t, PerClass: cfg.PerClassFor(s)})
		}
	}
	return out
}
