// SPDX-License-Identifier: MIT

package adapt

import "github.com/katalvlaran/dabench/matrix"

// Adapter re-expresses source and target features in a shared space.
//
// Implementations must not mutate their inputs or read tgtLabels.
// One Adapter value is shared by concurrent trials.
// Returned matrices may alias the inputs; callers treat them as read-only.
type Adapter interface {
	// Name is the canonical registry name (e.g. "SA").
	Name() string
	Adapt(src *matrix.Dense, srcLabels []int, tgt *matrix.Dense, tgtLabels []int) (*matrix.Dense, *matrix.Dense, error)
}

// NoAdaptation is the identity transform.
type NoAdaptation struct{}

var _ Adapter = NoAdaptation{}

// Name implements Adapter.
func (NoAdaptation) Name() string { return NameNA }

// Adapt returns src and tgt unchanged.
func (NoAdaptation) Adapt(src *matrix.Dense, _ []int, tgt *matrix.Dense, _ []int) (*matrix.Dense, *matrix.Dense, error) {
	if src == nil || tgt == nil {
		return nil, nil, ErrNilInput
	}
	return src, tgt, nil
}
