// SPDX-License-Identifier: MIT

package split_test

import (
	"math"
	"sort"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/dabench/split"
)

// labelsOf builds a label vector with counts[c-1] rows of class c,
// interleaved so bucket order differs from row order.
func labelsOf(counts ...int) []int {
	var out []int
	left := append([]int(nil), counts...)
	for more := true; more; {
		more = false
		for c := range left {
			if left[c] > 0 {
				out = append(out, c+1)
				left[c]--
				more = true
			}
		}
	}
	return out
}

func countByClass(labels, idx []int) map[int]int {
	m := make(map[int]int)
	for _, i := range idx {
		m[labels[i]]++
	}
	return m
}

func TestStratified_SizesPerClass(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name     string
		counts   []int
		perClass int
	}{
		{"balanced", []int{10, 10, 10}, 5},
		{"cap above count", []int{3, 7, 1}, 5},
		{"exact", []int{5, 5}, 5},
		{"singletons", []int{1, 1, 1, 1}, 2},
		{"max int", []int{2, 3}, math.MaxInt},
	}
	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			labels := labelsOf(tc.counts...)
			s, err := split.Stratified(labels, tc.perClass, split.NewRNG(3))
			require.NoError(t, err)

			sel := countByClass(labels, s.Selected)
			rem := countByClass(labels, s.Remainder)
			for c, n := range tc.counts {
				want := min(tc.perClass, n)
				require.Equal(t, want, sel[c+1], "selected class %d", c+1)
				// default policy drops the last shuffled index of the class
				require.Equal(t, max(n-want-1, 0), rem[c+1], "remainder class %d", c+1)
			}
		})
	}
}

func TestStratified_DisjointAndInRange(t *testing.T) {
	t.Parallel()

	labels := labelsOf(12, 4, 9, 1)
	for _, opts := range [][]split.Option{nil, {split.WithFullRemainder()}} {
		s, err := split.Stratified(labels, 4, split.NewRNG(11), opts...)
		require.NoError(t, err)
		seen := make(map[int]bool)
		for _, i := range append(append([]int(nil), s.Selected...), s.Remainder...) {
			require.GreaterOrEqual(t, i, 0)
			require.Less(t, i, len(labels))
			require.False(t, seen[i], "index %d appears twice", i)
			seen[i] = true
		}
	}
}

func TestStratified_FullRemainderCoversAll(t *testing.T) {
	t.Parallel()

	labels := labelsOf(6, 2, 5)
	s, err := split.Stratified(labels, 2, split.NewRNG(5), split.WithFullRemainder())
	require.NoError(t, err)

	all := append(append([]int(nil), s.Selected...), s.Remainder...)
	sort.Ints(all)
	want := make([]int, len(labels))
	for i := range want {
		want[i] = i
	}
	if diff := cmp.Diff(want, all); diff != "" {
		t.Fatalf("selected ∪ remainder mismatch (-want +got):\n%s", diff)
	}
}

func TestStratified_ClassAscendingOrder(t *testing.T) {
	t.Parallel()

	labels := []int{3, 1, 2, 3, 1, 2, 3, 1, 2}
	s, err := split.Stratified(labels, 2, split.NewRNG(9))
	require.NoError(t, err)
	got := make([]int, len(s.Selected))
	for k, i := range s.Selected {
		got[k] = labels[i]
	}
	if diff := cmp.Diff([]int{1, 1, 2, 2, 3, 3}, got); diff != "" {
		t.Fatalf("class order (-want +got):\n%s", diff)
	}
}

func TestStratified_Deterministic(t *testing.T) {
	t.Parallel()

	labels := labelsOf(20, 20, 20)
	a, err := split.Stratified(labels, 8, split.NewRNG(42))
	require.NoError(t, err)
	b, err := split.Stratified(labels, 8, split.NewRNG(42))
	require.NoError(t, err)
	if diff := cmp.Diff(a, b); diff != "" {
		t.Fatalf("same seed, different split (-a +b):\n%s", diff)
	}

	c, err := split.Stratified(labels, 8, split.NewRNG(43))
	require.NoError(t, err)
	require.NotEqual(t, a.Selected, c.Selected)
	require.Len(t, c.Selected, len(a.Selected))
}

func TestStratified_DoesNotMutateLabels(t *testing.T) {
	t.Parallel()

	labels := labelsOf(4, 4)
	orig := append([]int(nil), labels...)
	_, err := split.Stratified(labels, 2, split.NewRNG(1))
	require.NoError(t, err)
	require.Equal(t, orig, labels)
}

func TestStratified_Errors(t *testing.T) {
	t.Parallel()

	_, err := split.Stratified([]int{1, 2}, 0, nil)
	require.ErrorIs(t, err, split.ErrBadPerClass)

	_, err = split.Stratified([]int{1, 0, 2}, 1, nil)
	require.ErrorIs(t, err, split.ErrBadLabel)
}

func TestStratified_Empty(t *testing.T) {
	t.Parallel()

	s, err := split.Stratified(nil, 3, nil)
	require.NoError(t, err)
	require.Empty(t, s.Selected)
	require.Empty(t, s.Remainder)
}
