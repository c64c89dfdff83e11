// SPDX-License-Identifier: MIT

package experiment_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/dabench/adapt"
	"github.com/katalvlaran/dabench/experiment"
	"github.com/katalvlaran/dabench/features"
)

func TestConfig_Validate(t *testing.T) {
	t.Parallel()

	require.NoError(t, experiment.DefaultConfig().Validate())

	cases := []struct {
		name string
		mut  func(*experiment.Config)
	}{
		{"representation", func(c *experiment.Config) { c.Representation = "CaffeNet4096" }},
		{"one domain", func(c *experiment.Config) { c.Domains = []string{"amazon"} }},
		{"duplicate domain", func(c *experiment.Config) { c.Domains = []string{"amazon", "amazon"} }},
		{"empty domain", func(c *experiment.Config) { c.Domains = []string{"amazon", ""} }},
		{"trials", func(c *experiment.Config) { c.Trials = 0 }},
		{"no algorithms", func(c *experiment.Config) { c.Algorithms = nil }},
		{"dim", func(c *experiment.Config) { c.SubspaceDim = 0 }},
		{"solver", func(c *experiment.Config) { c.Solver = adapt.Solver(9) }},
		{"per class", func(c *experiment.Config) { c.PerClass = 0 }},
		{"override", func(c *experiment.Config) { c.PerClassOverrides = map[string]int{"dslr": -1} }},
		{"workers", func(c *experiment.Config) { c.Workers = 0 }},
	}
	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			cfg := experiment.DefaultConfig()
			tc.mut(&cfg)
			require.ErrorIs(t, cfg.Validate(), experiment.ErrInvalidConfig)
		})
	}
}

func TestPlan_DefaultDomains(t *testing.T) {
	t.Parallel()

	pairs := experiment.Plan(experiment.DefaultConfig())
	require.Len(t, pairs, 12)

	labels := make([]string, len(pairs))
	for i, p := range pairs {
		require.Equal(t, i, p.Index)
		labels[i] = p.Label()
		if p.Source == features.DSLR {
			require.Equal(t, 8, p.PerClass)
		} else {
			require.Equal(t, 20, p.PerClass)
		}
	}
	want := []string{
		"A->C", "A->D", "A->W",
		"C->A", "C->D", "C->W",
		"D->A", "D->C", "D->W",
		"W->A", "W->C", "W->D",
	}
	if diff := cmp.Diff(want, labels); diff != "" {
		t.Fatalf("plan order (-want +got):\n%s", diff)
	}
}
