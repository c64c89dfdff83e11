// SPDX-License-Identifier: MIT

// Package cliconfig assembles the dabench command-line configuration from
// defaults, a TOML or YAML file, DABENCH_* environment variables and flags,
// in increasing order of precedence.
package cliconfig

import (
	"fmt"
	"runtime"
	"strconv"
	"strings"

	"github.com/katalvlaran/dabench/adapt"
	"github.com/katalvlaran/dabench/experiment"
	"github.com/katalvlaran/dabench/features"
)

// Output formats accepted by --format.
const (
	FormatConsole = "console"
	FormatJSONL   = "jsonl"
)

// DefaultFeaturesDir is the feature tree root used when none is configured.
const DefaultFeaturesDir = "features"

// Config holds CLI configuration for dabench.
type Config struct {
	FeaturesDir    string
	Representation string
	Domains        []string

	Trials            int
	Algorithms        []string
	SubspaceDim       int
	Solver            string
	PerClass          int
	PerClassOverrides map[string]int
	Seed              int64
	Workers           int // 0 selects runtime.NumCPU()

	SkipDimensionErrors bool
	FullRemainder       bool

	LogLevel string
	Format   string
	Output   string // "-" is stdout
}

// DefaultConfig returns a Config with the Office+Caltech protocol values.
func DefaultConfig() Config {
	ec := experiment.DefaultConfig()
	return Config{
		FeaturesDir:       DefaultFeaturesDir,
		Representation:    string(ec.Representation),
		Domains:           ec.Domains,
		Trials:            ec.Trials,
		Algorithms:        ec.Algorithms,
		SubspaceDim:       ec.SubspaceDim,
		Solver:            ec.Solver.String(),
		PerClass:          ec.PerClass,
		PerClassOverrides: ec.PerClassOverrides,
		Seed:              ec.Seed,
		Workers:           ec.Workers,
		LogLevel:          "info",
		Format:            FormatConsole,
		Output:            "-",
	}
}

// Validate checks the configuration for errors and sets derived defaults.
func (c *Config) Validate() error {
	if c.FeaturesDir == "" {
		return fmt.Errorf("features-dir is required")
	}
	if _, err := features.ParseRepresentation(c.Representation); err != nil {
		return err
	}
	if _, err := adapt.ParseSolver(c.Solver); err != nil {
		return err
	}
	c.Format = strings.ToLower(c.Format)
	if c.Format != FormatConsole && c.Format != FormatJSONL {
		return fmt.Errorf("format must be %q or %q, got %q", FormatConsole, FormatJSONL, c.Format)
	}
	if c.Output == "" {
		c.Output = "-"
	}
	if c.Workers < 0 {
		return fmt.Errorf("workers must be >= 0, got %d", c.Workers)
	}
	if c.Workers == 0 {
		c.Workers = runtime.NumCPU()
	}

	return c.Experiment().Validate()
}

// Experiment converts c into the runner configuration. Call Validate first;
// unparsable names are passed through and rejected by the runner.
func (c Config) Experiment() experiment.Config {
	rep, _ := features.ParseRepresentation(c.Representation)
	solver, _ := adapt.ParseSolver(c.Solver)
	if rep == "" {
		rep = features.Representation(c.Representation)
	}
	return experiment.Config{
		Representation:      rep,
		Domains:             c.Domains,
		Trials:              c.Trials,
		Algorithms:          c.Algorithms,
		SubspaceDim:         c.SubspaceDim,
		Solver:              solver,
		PerClass:            c.PerClass,
		PerClassOverrides:   c.PerClassOverrides,
		Seed:                c.Seed,
		Workers:             c.Workers,
		SkipDimensionErrors: c.SkipDimensionErrors,
		FullRemainder:       c.FullRemainder,
	}
}

// configSetter helps apply configuration values while respecting flag precedence.
// It only applies values if the corresponding flag hasn't been explicitly set.
type configSetter struct {
	changed map[string]bool
}

// newConfigSetter creates a new setter with the given changed flags map.
func newConfigSetter(changed map[string]bool) *configSetter {
	return &configSetter{changed: changed}
}

// setString sets a string value if not empty and flag not changed.
func (s *configSetter) setString(flag, value string, dst *string) {
	if value == "" || s.changed[flag] {
		return
	}
	*dst = value
}

// setStrings sets a list if non-empty and flag not changed.
func (s *configSetter) setStrings(flag string, value []string, dst *[]string) {
	if len(value) == 0 || s.changed[flag] {
		return
	}
	*dst = value
}

// setInt sets an int value if non-nil and flag not changed. Zero and
// negative values are applied as given and judged by Validate.
func (s *configSetter) setInt(flag string, value *int, dst *int) {
	if value == nil || s.changed[flag] {
		return
	}
	*dst = *value
}

// setInt64 sets an int64 value if non-nil and flag not changed. Seeds may be
// any value, so presence is signaled by the pointer.
func (s *configSetter) setInt64(flag string, value *int64, dst *int64) {
	if value == nil || s.changed[flag] {
		return
	}
	*dst = *value
}

// setIntMap sets a map if non-empty and flag not changed.
func (s *configSetter) setIntMap(flag string, value map[string]int, dst *map[string]int) {
	if len(value) == 0 || s.changed[flag] {
		return
	}
	*dst = value
}

// setBool sets a bool value from a pointer if not nil and flag not changed.
func (s *configSetter) setBool(flag string, value *bool, dst *bool) {
	if value == nil || s.changed[flag] {
		return
	}
	*dst = *value
}

// setIntFromString parses a string to int and sets the destination.
// Used for environment variables that come as strings.
func (s *configSetter) setIntFromString(flag, value string, dst *int) error {
	if value == "" || s.changed[flag] {
		return nil
	}
	i, err := strconv.Atoi(value)
	if err != nil {
		return fmt.Errorf("parse %s: %w", flag, err)
	}
	*dst = i
	return nil
}

// setInt64FromString parses a string to int64 and sets the destination.
func (s *configSetter) setInt64FromString(flag, value string, dst *int64) error {
	if value == "" || s.changed[flag] {
		return nil
	}
	i, err := strconv.ParseInt(value, 10, 64)
	if err != nil {
		return fmt.Errorf("parse %s: %w", flag, err)
	}
	*dst = i
	return nil
}

// setListFromString splits a comma-separated string and sets the destination.
func (s *configSetter) setListFromString(flag, value string, dst *[]string) {
	if value == "" || s.changed[flag] {
		return
	}
	var out []string
	for _, part := range strings.Split(value, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	s.setStrings(flag, out, dst)
}

// setBoolFromString parses a string to bool and sets the destination.
// Accepts "true", "1" as true, anything else as false.
// Used for environment variables that come as strings.
func (s *configSetter) setBoolFromString(flag, value string, dst *bool) {
	if value == "" || s.changed[flag] {
		return
	}
	*dst = value == "true" || value == "1"
}
