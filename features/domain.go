// SPDX-License-Identifier: MIT

package features

import (
	"fmt"
	"slices"
	"strings"

	"github.com/katalvlaran/dabench/matrix"
)

// Names of the four benchmark domains.
const (
	Amazon    = "amazon"
	Caltech10 = "caltech10"
	DSLR      = "dslr"
	Webcam    = "webcam"
)

// Domains returns the benchmark domains in their canonical order.
func Domains() []string {
	return []string{Amazon, Caltech10, DSLR, Webcam}
}

// ShortCode returns the one-letter upper-case tag used in pair labels ("A" for amazon).
func ShortCode(domain string) string {
	if domain == "" {
		return ""
	}
	return strings.ToUpper(domain[:1])
}

// Representation names a precomputed feature family.
type Representation string

// Supported representations.
const (
	SURF     Representation = "surf"
	Deep4096 Representation = "deep-4096"
	Deep1024 Representation = "deep-1024"
)

// Representations lists the supported representations.
func Representations() []Representation {
	return []Representation{SURF, Deep4096, Deep1024}
}

// ParseRepresentation validates a representation name.
func ParseRepresentation(s string) (Representation, error) {
	r := Representation(strings.ToLower(strings.TrimSpace(s)))
	if reps := Representations(); !slices.Contains(reps, r) {
		return "", fmt.Errorf("%w: %q (want one of %v)", ErrUnknownRepresentation, s, reps)
	}
	return r, nil
}

// Histogram reports whether rows are bag-of-words histograms that need
// L1 normalization before z-scoring.
func (r Representation) Histogram() bool { return r == SURF }

// String implements fmt.Stringer.
func (r Representation) String() string { return string(r) }

// Domain is one loaded, normalized feature collection.
// Features and Labels are shared by every pair that references the domain
// and must not be mutated.
type Domain struct {
	Name           string
	Representation Representation
	Features       *matrix.Dense
	Labels         []int
}

// Classes returns the distinct labels in ascending order.
func (d *Domain) Classes() []int {
	seen := make(map[int]struct{}, 16)
	for _, l := range d.Labels {
		seen[l] = struct{}{}
	}
	out := make([]int, 0, len(seen))
	for l := range seen {
		out = append(out, l)
	}
	slices.Sort(out)

	return out
}
