// SPDX-License-Identifier: MIT

package features

import (
	"errors"
	"fmt"
	"math"
	"math/rand"
	"path/filepath"
)

// ErrBadSynthConfig is returned by Synthesize for non-positive sizes.
var ErrBadSynthConfig = errors.New("features: invalid synthetic config")

// SynthConfig describes a synthetic multi-domain dataset: Gaussian class
// clusters whose centers are shared by all domains, displaced per domain
// by a random shift.
type SynthConfig struct {
	Domains      []string // domain names; defaults to Domains()
	Classes      int      // classes per domain, labels 1..Classes
	RowsPerClass int      // rows per class per domain
	Dims         int      // feature columns
	Separation   float64  // stddev of class centers (cluster noise is 1)
	Shift        float64  // stddev of the per-domain offset
	NonNegative  bool     // fold values to |x|, as histogram features are
	Seed         int64
}

// DefaultSynthConfig returns a small dataset that exercises every stage quickly.
func DefaultSynthConfig() SynthConfig {
	return SynthConfig{
		Domains:      Domains(),
		Classes:      10,
		RowsPerClass: 30,
		Dims:         100,
		Separation:   3,
		Shift:        1,
		Seed:         1,
	}
}

// Raw is an unnormalized (fts, labels) container body.
type Raw struct {
	Fts    [][]float64
	Labels []int
}

// Synthesize generates one Raw per configured domain. The result is a
// pure function of cfg.
func Synthesize(cfg SynthConfig) (map[string]Raw, error) {
	if cfg.Classes <= 0 || cfg.RowsPerClass <= 0 || cfg.Dims <= 0 {
		return nil, fmt.Errorf("%w: classes=%d rows=%d dims=%d",
			ErrBadSynthConfig, cfg.Classes, cfg.RowsPerClass, cfg.Dims)
	}
	domains := cfg.Domains
	if len(domains) == 0 {
		domains = Domains()
	}
	rng := rand.New(rand.NewSource(cfg.Seed))

	centers := make([][]float64, cfg.Classes)
	for c := range centers {
		centers[c] = gaussVec(rng, cfg.Dims, cfg.Separation)
	}

	out := make(map[string]Raw, len(domains))
	for _, name := range domains {
		shift := gaussVec(rng, cfg.Dims, cfg.Shift)
		raw := Raw{
			Fts:    make([][]float64, 0, cfg.Classes*cfg.RowsPerClass),
			Labels: make([]int, 0, cfg.Classes*cfg.RowsPerClass),
		}
		for c := 0; c < cfg.Classes; c++ {
			for k := 0; k < cfg.RowsPerClass; k++ {
				row := make([]float64, cfg.Dims)
				for j := range row {
					row[j] = centers[c][j] + shift[j] + rng.NormFloat64()
					if cfg.NonNegative {
						row[j] = math.Abs(row[j])
					}
				}
				raw.Fts = append(raw.Fts, row)
				raw.Labels = append(raw.Labels, c+1)
			}
		}
		out[name] = raw
	}

	return out, nil
}

// WriteTree writes data under <root>/<rep>/<domain>.json (.json.gz when
// compress is set) and returns the written paths in the order of names.
func WriteTree(root string, rep Representation, names []string, data map[string]Raw, compress bool) ([]string, error) {
	ext := ExtJSON
	if compress {
		ext = ExtJSONGz
	}
	paths := make([]string, 0, len(names))
	for _, name := range names {
		raw, ok := data[name]
		if !ok {
			return paths, fmt.Errorf("%w: no data for %q", ErrBadDomain, name)
		}
		p := filepath.Join(root, string(rep), name+ext)
		if err := Write(p, raw.Fts, raw.Labels); err != nil {
			return paths, fmt.Errorf("write %s: %w", p, err)
		}
		paths = append(paths, p)
	}

	return paths, nil
}

func gaussVec(rng *rand.Rand, n int, sigma float64) []float64 {
	v := make([]float64, n)
	for i := range v {
		v[i] = sigma * rng.NormFloat64()
	}
	return v
}
