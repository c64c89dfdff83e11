// SPDX-License-Identifier: MIT

package experiment

import (
	"errors"
	"fmt"
	"maps"
	"slices"

	"github.com/katalvlaran/dabench/adapt"
	"github.com/katalvlaran/dabench/features"
)

// ErrInvalidConfig is returned by Config.Validate.
var ErrInvalidConfig = errors.New("experiment: invalid config")

// Defaults of the Office+Caltech protocol.
const (
	DefaultTrials   = 10
	DefaultPerClass = 20
	DefaultWorkers  = 1
	DefaultSeed     = int64(1)
)

// Config is the immutable description of one run. Runner copies it on
// construction; later edits by the caller have no effect.
type Config struct {
	Representation features.Representation
	Domains        []string
	Trials         int
	Algorithms     []string // registry names or aliases, in report order
	SubspaceDim    int
	Solver         adapt.Solver

	// PerClass is the per-class source budget; PerClassOverrides replaces it
	// for the listed source domains.
	PerClass          int
	PerClassOverrides map[string]int

	Seed    int64
	Workers int // trials evaluated concurrently; 1 runs inline

	// SkipDimensionErrors records a Skip for a (pair, algorithm) whose
	// subspace dimension the data cannot support instead of failing the run.
	SkipDimensionErrors bool
	// FullRemainder disables the drop-last remainder policy of the splitter.
	FullRemainder bool
}

// DefaultConfig returns the Office+Caltech setup: deep-4096 features, all four
// domains, 10 trials of NA and SA with d=80, 20 rows per class (8 for dslr).
func DefaultConfig() Config {
	return Config{
		Representation:    features.Deep4096,
		Domains:           features.Domains(),
		Trials:            DefaultTrials,
		Algorithms:        []string{adapt.NameNA, adapt.NameSA},
		SubspaceDim:       adapt.DefaultSubspaceDim,
		Solver:            adapt.SolverSVD,
		PerClass:          DefaultPerClass,
		PerClassOverrides: map[string]int{features.DSLR: 8},
		Seed:              DefaultSeed,
		Workers:           DefaultWorkers,
	}
}

// Validate checks structural constraints. Algorithm names are resolved
// later against the runner's registry.
func (c Config) Validate() error {
	if _, err := features.ParseRepresentation(string(c.Representation)); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	if len(c.Domains) < 2 {
		return fmt.Errorf("%w: need at least 2 domains, got %d", ErrInvalidConfig, len(c.Domains))
	}
	seen := make(map[string]struct{}, len(c.Domains))
	for _, d := range c.Domains {
		if d == "" {
			return fmt.Errorf("%w: empty domain name", ErrInvalidConfig)
		}
		if _, dup := seen[d]; dup {
			return fmt.Errorf("%w: duplicate domain %q", ErrInvalidConfig, d)
		}
		seen[d] = struct{}{}
	}
	if c.Trials < 1 {
		return fmt.Errorf("%w: trials must be >= 1, got %d", ErrInvalidConfig, c.Trials)
	}
	if len(c.Algorithms) == 0 {
		return fmt.Errorf("%w: no algorithms", ErrInvalidConfig)
	}
	if c.SubspaceDim < 1 {
		return fmt.Errorf("%w: subspace dim must be >= 1, got %d", ErrInvalidConfig, c.SubspaceDim)
	}
	if c.Solver != adapt.SolverSVD && c.Solver != adapt.SolverJacobi {
		return fmt.Errorf("%w: %w: %v", ErrInvalidConfig, adapt.ErrUnknownSolver, c.Solver)
	}
	if c.PerClass < 1 {
		return fmt.Errorf("%w: per-class budget must be >= 1, got %d", ErrInvalidConfig, c.PerClass)
	}
	for d, n := range c.PerClassOverrides {
		if n < 1 {
			return fmt.Errorf("%w: per-class budget for %q must be >= 1, got %d", ErrInvalidConfig, d, n)
		}
	}
	if c.Workers < 1 {
		return fmt.Errorf("%w: workers must be >= 1, got %d", ErrInvalidConfig, c.Workers)
	}

	return nil
}

// PerClassFor returns the per-class budget when domain is the source.
func (c Config) PerClassFor(domain string) int {
	if n, ok := c.PerClassOverrides[domain]; ok {
		return n
	}
	return c.PerClass
}

// clone deep-copies the reference fields.
func (c Config) clone() Config {
	c.Domains = slices.Clone(c.Domains)
	c.Algorithms = slices.Clone(c.Algorithms)
	c.PerClassOverrides = maps.Clone(c.PerClassOverrides)
	return c
}
