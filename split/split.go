// SPDX-License-Identifier: MIT

// Package split draws stratified source subsamples for repeated trials.
//
// For every class present in the label vector, in ascending class order, the
// row indices of that class are shuffled with the caller's RNG and the first
// min(perClass, count) go to Selected. By default Remainder receives the
// unselected indices except the last one in shuffled order, which reproduces
// the published Office+Caltech numbers exactly; WithFullRemainder keeps all of them.
package split

import (
	"errors"
	"fmt"
	"math/rand"
	"slices"
)

var (
	// ErrBadPerClass is returned when perClass < 1.
	ErrBadPerClass = errors.New("split: perClass must be positive")

	// ErrBadLabel is returned when a label is not a positive class id.
	ErrBadLabel = errors.New("split: labels must be positive")
)

// Split is a pair of disjoint index sets over one label vector.
// Both slices are ordered class-ascending, then in shuffled order within a class.
type Split struct {
	Selected  []int
	Remainder []int
}

// RemainderPolicy selects which unselected indices go to Remainder.
type RemainderPolicy int

const (
	// DropLastRemainder excludes the final shuffled index of every class.
	DropLastRemainder RemainderPolicy = iota
	// FullRemainder keeps every unselected index.
	FullRemainder
)

type options struct {
	remainder RemainderPolicy
}

// Option configures Stratified.
type Option func(*options)

// WithRemainderPolicy sets the remainder policy explicitly.
func WithRemainderPolicy(p RemainderPolicy) Option {
	return func(o *options) { o.remainder = p }
}

// WithFullRemainder is shorthand for WithRemainderPolicy(FullRemainder).
func WithFullRemainder() Option { return WithRemainderPolicy(FullRemainder) }

// Stratified partitions the indices of labels into Selected (at most
// perClass per class) and Remainder. rng is consumed once per class with
// more than one member; a nil rng uses the DefaultSeed stream.
//
// Errors:
//   - ErrBadPerClass if perClass < 1.
//   - ErrBadLabel if any label is <= 0.
//
// Complexity:
//   - Time O(n log n) for grouping, Space O(n).
func Stratified(labels []int, perClass int, rng *rand.Rand, opts ...Option) (Split, error) {
	if perClass < 1 {
		return Split{}, fmt.Errorf("%w: got %d", ErrBadPerClass, perClass)
	}
	o := options{remainder: DropLastRemainder}
	for _, opt := range opts {
		opt(&o)
	}
	if rng == nil {
		rng = NewRNG(0)
	}

	// Stage 1: bucket row indices by class, preserving row order inside a bucket.
	buckets := make(map[int][]int)
	for i, l := range labels {
		if l <= 0 {
			return Split{}, fmt.Errorf("%w: label %d at row %d", ErrBadLabel, l, i)
		}
		buckets[l] = append(buckets[l], i)
	}
	classes := make([]int, 0, len(buckets))
	for c := range buckets {
		classes = append(classes, c)
	}
	slices.Sort(classes)

	// Stage 2: shuffle each bucket in class order and cut it.
	s := Split{
		Selected:  make([]int, 0, len(labels)),
		Remainder: make([]int, 0, len(labels)),
	}
	var idx []int
	var take, end int
	for _, c := range classes {
		idx = buckets[c]
		shuffleIntsInPlace(idx, rng)
		take = min(perClass, len(idx))
		s.Selected = append(s.Selected, idx[:take]...)

		end = len(idx)
		if o.remainder == DropLastRemainder {
			end--
		}
		if end > take {
			s.Remainder = append(s.Remainder, idx[take:end]...)
		}
	}

	return s, nil
}
