// SPDX-License-Identifier: MIT

package cliconfig

import "os"

// ApplyEnvConfig applies configuration from environment variables (DABENCH_*).
// It respects flags that have been explicitly set (changed map).
// Returns error if any environment variable has an invalid format.
func ApplyEnvConfig(cfg *Config, changed map[string]bool) error {
	s := newConfigSetter(changed)

	s.setString("features-dir", os.Getenv("DABENCH_FEATURES_DIR"), &cfg.FeaturesDir)
	s.setString("representation", os.Getenv("DABENCH_REPRESENTATION"), &cfg.Representation)
	s.setListFromString("domains", os.Getenv("DABENCH_DOMAINS"), &cfg.Domains)
	s.setListFromString("algorithms", os.Getenv("DABENCH_ALGORITHMS"), &cfg.Algorithms)
	s.setString("solver", os.Getenv("DABENCH_SOLVER"), &cfg.Solver)
	s.setString("log-level", os.Getenv("DABENCH_LOG_LEVEL"), &cfg.LogLevel)
	s.setString("output", os.Getenv("DABENCH_OUTPUT"), &cfg.Output)
	s.setString("format", os.Getenv("DABENCH_FORMAT"), &cfg.Format)

	if err := s.setIntFromString("trials", os.Getenv("DABENCH_TRIALS"), &cfg.Trials); err != nil {
		return err
	}
	if err := s.setIntFromString("subspace-dim", os.Getenv("DABENCH_SUBSPACE_DIM"), &cfg.SubspaceDim); err != nil {
		return err
	}
	if err := s.setIntFromString("per-class", os.Getenv("DABENCH_PER_CLASS"), &cfg.PerClass); err != nil {
		return err
	}
	if err := s.setIntFromString("workers", os.Getenv("DABENCH_WORKERS"), &cfg.Workers); err != nil {
		return err
	}
	if err := s.setInt64FromString("seed", os.Getenv("DABENCH_SEED"), &cfg.Seed); err != nil {
		return err
	}

	s.setBoolFromString("skip-dimension-errors", os.Getenv("DABENCH_SKIP_DIMENSION_ERRORS"), &cfg.SkipDimensionErrors)
	s.setBoolFromString("full-remainder", os.Getenv("DABENCH_FULL_REMAINDER"), &cfg.FullRemainder)

	return nil
}
