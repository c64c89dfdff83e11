// SPDX-License-Identifier: MIT

package cliconfig

import (
	"os"
	"path/filepath"
	"strings"

	toml "github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// FileConfig mirrors Config for TOML and YAML files. Pointer fields
// distinguish "absent" from a zero value.
type FileConfig struct {
	FeaturesDir         string         `toml:"features_dir" yaml:"features_dir"`
	Representation      string         `toml:"representation" yaml:"representation"`
	Domains             []string       `toml:"domains" yaml:"domains"`
	Trials              *int           `toml:"trials" yaml:"trials"`
	Algorithms          []string       `toml:"algorithms" yaml:"algorithms"`
	SubspaceDim         *int           `toml:"subspace_dim" yaml:"subspace_dim"`
	Solver              string         `toml:"solver" yaml:"solver"`
	PerClass            *int           `toml:"per_class" yaml:"per_class"`
	PerClassOverrides   map[string]int `toml:"per_class_overrides" yaml:"per_class_overrides"`
	Seed                *int64         `toml:"seed" yaml:"seed"`
	Workers             *int           `toml:"workers" yaml:"workers"`
	SkipDimensionErrors *bool          `toml:"skip_dimension_errors" yaml:"skip_dimension_errors"`
	FullRemainder       *bool          `toml:"full_remainder" yaml:"full_remainder"`
	LogLevel            string         `toml:"log_level" yaml:"log_level"`
	Format              string         `toml:"format" yaml:"format"`
	Output              string         `toml:"output" yaml:"output"`
}

// LoadFileConfig reads a config file: YAML for .yaml/.yml paths, TOML otherwise.
func LoadFileConfig(path string) (FileConfig, error) {
	var fc FileConfig
	b, err := os.ReadFile(path)
	if err != nil {
		return fc, err
	}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(b, &fc)
	default:
		err = toml.Unmarshal(b, &fc)
	}
	if err != nil {
		return fc, err
	}
	return fc, nil
}

// DefaultConfigPath returns the default configuration file path.
// Returns ~/.dabench/config.toml if user home directory is accessible.
func DefaultConfigPath() string {
	if h, err := os.UserHomeDir(); err == nil {
		return filepath.Join(h, ".dabench", "config.toml")
	}
	return ""
}

// ApplyFileConfig applies configuration from a file to the Config struct.
// It respects flags that have been explicitly set (changed map).
func ApplyFileConfig(cfg *Config, fc FileConfig, changed map[string]bool) {
	s := newConfigSetter(changed)

	s.setString("features-dir", fc.FeaturesDir, &cfg.FeaturesDir)
	s.setString("representation", fc.Representation, &cfg.Representation)
	s.setStrings("domains", fc.Domains, &cfg.Domains)
	s.setInt("trials", fc.Trials, &cfg.Trials)
	s.setStrings("algorithms", fc.Algorithms, &cfg.Algorithms)
	s.setInt("subspace-dim", fc.SubspaceDim, &cfg.SubspaceDim)
	s.setString("solver", fc.Solver, &cfg.Solver)
	s.setInt("per-class", fc.PerClass, &cfg.PerClass)
	s.setIntMap("per-class-override", fc.PerClassOverrides, &cfg.PerClassOverrides)
	s.setInt64("seed", fc.Seed, &cfg.Seed)
	s.setInt("workers", fc.Workers, &cfg.Workers)
	s.setBool("skip-dimension-errors", fc.SkipDimensionErrors, &cfg.SkipDimensionErrors)
	s.setBool("full-remainder", fc.FullRemainder, &cfg.FullRemainder)
	s.setString("log-level", fc.LogLevel, &cfg.LogLevel)
	s.setString("format", fc.Format, &cfg.Format)
	s.setString("output", fc.Output, &cfg.Output)
}

// FileExists checks if a file exists at the given path.
func FileExists(p string) bool {
	_, err := os.Stat(p)
	return err == nil
}
