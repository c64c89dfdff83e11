// SPDX-License-Identifier: MIT

package experiment

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/dabench/adapt"
	"github.com/katalvlaran/dabench/evaluate"
	"github.com/katalvlaran/dabench/features"
	"github.com/katalvlaran/dabench/matrix"
	"github.com/katalvlaran/dabench/split"
)

// Observer receives progress callbacks. Calls are serialized by the runner.
type Observer interface {
	PairStarted(p Pair)
	TrialDone(p Pair, trial int)
	PairDone(r PairResult)
}

// Option configures a Runner.
type Option func(*Runner)

// WithLogger sets the run logger. The default discards everything.
func WithLogger(l zerolog.Logger) Option { return func(r *Runner) { r.log = l } }

// WithObserver registers a progress observer.
func WithObserver(o Observer) Option { return func(r *Runner) { r.obs = o } }

// WithRegistry resolves algorithm names against reg instead of adapt.Default().
func WithRegistry(reg *adapt.Registry) Option { return func(r *Runner) { r.reg = reg } }

// Runner executes a Config against a Loader.
type Runner struct {
	cfg      Config
	loader   features.Loader
	log      zerolog.Logger
	obs      Observer
	obsMu    sync.Mutex
	reg      *adapt.Registry
	adapters []adapt.Adapter
	splitOpt []split.Option
}

// New validates cfg, resolves its algorithms and returns a Runner.
//
// Errors:
//   - ErrInvalidConfig from Config.Validate.
//   - adapt.ErrUnknownAlgorithm for an unregistered algorithm name.
func New(cfg Config, loader features.Loader, opts ...Option) (*Runner, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if loader == nil {
		return nil, fmt.Errorf("%w: nil loader", ErrInvalidConfig)
	}
	r := &Runner{
		cfg:    cfg.clone(),
		loader: loader,
		log:    zerolog.Nop(),
		reg:    adapt.Default(),
	}
	for _, opt := range opts {
		opt(r)
	}

	params := adapt.Params{Dim: r.cfg.SubspaceDim, Solver: r.cfg.Solver}
	seen := make(map[string]struct{}, len(r.cfg.Algorithms))
	for i, name := range r.cfg.Algorithms {
		a, err := r.reg.New(name, params)
		if err != nil {
			return nil, err
		}
		if _, dup := seen[a.Name()]; dup {
			return nil, fmt.Errorf("%w: algorithm %q listed twice", ErrInvalidConfig, a.Name())
		}
		seen[a.Name()] = struct{}{}
		r.cfg.Algorithms[i] = a.Name()
		r.adapters = append(r.adapters, a)
	}
	if r.cfg.FullRemainder {
		r.splitOpt = append(r.splitOpt, split.WithFullRemainder())
	}

	return r, nil
}

// Config returns the runner's configuration with canonical algorithm names.
func (r *Runner) Config() Config { return r.cfg.clone() }

// Run executes the whole benchmark. It fails fast: the first error from
// any trial cancels the remaining work and is returned.
func (r *Runner) Run(ctx context.Context) (*Result, error) {
	start := time.Now()
	res := &Result{RunID: uuid.NewString(), Config: r.cfg.clone()}
	log := r.log.With().Str("run_id", res.RunID).Logger()

	log.Info().
		Str("representation", string(r.cfg.Representation)).
		Int("trials", r.cfg.Trials).
		Strs("algorithms", r.cfg.Algorithms).
		Int("workers", r.cfg.Workers).
		Msg("loading domains")
	domains, err := r.loadAll(ctx)
	if err != nil {
		return nil, err
	}

	for _, p := range Plan(r.cfg) {
		pr, skips, err := r.runPair(ctx, log, p, domains[p.Source], domains[p.Target])
		if err != nil {
			return nil, err
		}
		res.Pairs = append(res.Pairs, pr)
		res.Skipped = append(res.Skipped, skips...)
	}

	res.Summary = summarize(r.cfg.Algorithms, res.Pairs)
	res.Elapsed = time.Since(start)
	log.Info().Dur("elapsed", res.Elapsed).Int("skipped", len(res.Skipped)).Msg("run done")

	return res, nil
}

// loadAll fetches every configured domain, concurrently up to Workers.
func (r *Runner) loadAll(ctx context.Context) (map[string]*features.Domain, error) {
	out := make([]*features.Domain, len(r.cfg.Domains))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(r.cfg.Workers)
	for i, name := range r.cfg.Domains {
		g.Go(func() error {
			d, err := r.loader.Load(gctx, name)
			if err != nil {
				return err
			}
			out[i] = d
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	m := make(map[string]*features.Domain, len(out))
	for i, d := range out {
		m[r.cfg.Domains[i]] = d
		r.log.Debug().Str("domain", r.cfg.Domains[i]).
			Int("rows", d.Features.Rows()).
			Int("cols", d.Features.Cols()).
			Ints("classes", d.Classes()).
			Msg("domain loaded")
	}
	return m, nil
}

// runPair evaluates all trials of one pair and reduces them.
func (r *Runner) runPair(ctx context.Context, log zerolog.Logger, p Pair, src, tgt *features.Domain) (PairResult, []Skip, error) {
	start := time.Now()
	r.notify(func(o Observer) { o.PairStarted(p) })

	nAlg, nTrial := len(r.adapters), r.cfg.Trials
	acc := make([][]float64, nAlg) // acc[a][t]
	errs := make([][]error, nAlg)  // skipped dimension errors, errs[a][t]
	for a := range acc {
		acc[a] = make([]float64, nTrial)
		errs[a] = make([]error, nTrial)
	}

	run := func(ctx context.Context, t int) error {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := r.runTrial(p, t, src, tgt, acc, errs); err != nil {
			return err
		}
		r.notify(func(o Observer) { o.TrialDone(p, t) })
		return nil
	}

	if r.cfg.Workers == 1 {
		for t := 0; t < nTrial; t++ {
			if err := run(ctx, t); err != nil {
				return PairResult{}, nil, err
			}
		}
	} else {
		g, gctx := errgroup.WithContext(ctx)
		g.SetLimit(r.cfg.Workers)
		for t := 0; t < nTrial; t++ {
			g.Go(func() error { return run(gctx, t) })
		}
		if err := g.Wait(); err != nil {
			return PairResult{}, nil, err
		}
	}

	pr := PairResult{Pair: p, Algorithms: make([]AlgorithmResult, nAlg)}
	var skips []Skip
	for a, ad := range r.adapters {
		ar := AlgorithmResult{Algorithm: ad.Name()}
		if err := firstErr(errs[a]); err != nil {
			ar.Skipped = true
			skips = append(skips, Skip{Source: p.Source, Target: p.Target, Algorithm: ad.Name(), Reason: err.Error()})
			log.Warn().Str("pair", p.Label()).Str("algorithm", ad.Name()).Err(err).Msg("algorithm skipped")
		} else {
			ar.Accuracies = acc[a]
			ar.Stats = computeStats(acc[a])
		}
		pr.Algorithms[a] = ar
	}
	pr.Elapsed = time.Since(start)

	ev := log.Info().Str("pair", p.Label()).Dur("elapsed", pr.Elapsed)
	for _, ar := range pr.Algorithms {
		if !ar.Skipped {
			ev = ev.Float64(ar.Algorithm, ar.Stats.Mean)
		}
	}
	ev.Msg("pair done")
	r.notify(func(o Observer) { o.PairDone(pr) })

	return pr, skips, nil
}

// runTrial draws one split and scores every algorithm on it. It writes
// only acc[a][t] and errs[a][t].
func (r *Runner) runTrial(p Pair, t int, src, tgt *features.Domain, acc [][]float64, errs [][]error) error {
	rng := split.DeriveRNG(r.cfg.Seed, uint64(p.Index), uint64(t))
	sp, err := split.Stratified(src.Labels, p.PerClass, rng, r.splitOpt...)
	if err != nil {
		return r.trialErr(p, t, "", err)
	}
	subX, err := src.Features.SelectRows(sp.Selected)
	if err != nil {
		return r.trialErr(p, t, "", err)
	}
	subY := pick(src.Labels, sp.Selected)

	var srcA, tgtA *matrix.Dense
	for a, ad := range r.adapters {
		srcA, tgtA, err = ad.Adapt(subX, subY, tgt.Features, tgt.Labels)
		if err != nil {
			if r.cfg.SkipDimensionErrors && errors.Is(err, adapt.ErrDimension) {
				errs[a][t] = err
				continue
			}
			return r.trialErr(p, t, ad.Name(), err)
		}
		if acc[a][t], err = evaluate.Accuracy(srcA, subY, tgtA, tgt.Labels); err != nil {
			return r.trialErr(p, t, ad.Name(), err)
		}
		r.log.Debug().Str("pair", p.Label()).Str("algorithm", ad.Name()).Int("trial", t).Float64("accuracy", acc[a][t]).Msg("trial scored")
	}

	return nil
}

func (r *Runner) trialErr(p Pair, t int, alg string, err error) error {
	if alg == "" {
		return fmt.Errorf("experiment: %s trial %d: %w", p.Label(), t, err)
	}
	return fmt.Errorf("experiment: %s trial %d %s: %w", p.Label(), t, alg, err)
}

func (r *Runner) notify(f func(Observer)) {
	if r.obs == nil {
		return
	}
	r.obsMu.Lock()
	defer r.obsMu.Unlock()
	f(r.obs)
}

func pick(labels, idx []int) []int {
	out := make([]int, len(idx))
	for k, i := range idx {
		out[k] = labels[i]
	}
	return out
}

func firstErr(errs []error) error {
	for _, err := range errs {
		if err != nil {
			return err
		}
	}
	return nil
}
