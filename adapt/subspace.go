// SPDX-License-Identifier: MIT

package adapt

import (
	"fmt"

	"github.com/katalvlaran/dabench/matrix"
)

// DefaultSubspaceDim is the subspace dimension used when none is configured.
const DefaultSubspaceDim = 80

// SubspaceAlignment aligns the source principal subspace onto the target one.
type SubspaceAlignment struct {
	Dim    int    // subspace dimension d
	Solver Solver // principal-direction solver
}

var _ Adapter = SubspaceAlignment{}

// NewSubspaceAlignment returns a SubspaceAlignment; dim <= 0 selects DefaultSubspaceDim.
func NewSubspaceAlignment(dim int, solver Solver) SubspaceAlignment {
	if dim <= 0 {
		dim = DefaultSubspaceDim
	}
	return SubspaceAlignment{Dim: dim, Solver: solver}
}

// Name implements Adapter.
func (SubspaceAlignment) Name() string { return NameSA }

const opSA = "SubspaceAlignment"

// Adapt projects src through M = Bs·Bsᵀ·Bt and tgt through Bt.
// Both results have exactly Dim columns.
//
// Stages:
//   - Validate: non-nil inputs, equal feature counts, Dim supported by both
//     sides. Nothing is projected if any check fails.
//   - Bases: Bs, Bt via PrincipalBasis.
//   - Operator: M = Bs·(Bsᵀ·Bt), associating right to keep the product c×d.
//   - Project: src·M and tgt·Bt.
//
// Errors:
//   - ErrNilInput, ErrFeatureMismatch, *DimensionError (errors.Is ErrDimension).
//
// Complexity:
//   - Two basis extractions plus O(c*d² + (rs+rt)*c*d).
func (sa SubspaceAlignment) Adapt(src *matrix.Dense, _ []int, tgt *matrix.Dense, _ []int) (*matrix.Dense, *matrix.Dense, error) {
	if src == nil || tgt == nil {
		return nil, nil, ErrNilInput
	}
	if src.Cols() != tgt.Cols() {
		return nil, nil, fmt.Errorf("%s: %w: %d vs %d", opSA, ErrFeatureMismatch, src.Cols(), tgt.Cols())
	}
	if err := checkDim(sa.Dim, src, SideSource); err != nil {
		return nil, nil, err
	}
	if err := checkDim(sa.Dim, tgt, SideTarget); err != nil {
		return nil, nil, err
	}

	Bs, err := PrincipalBasis(src, sa.Dim, sa.Solver)
	if err != nil {
		return nil, nil, fmt.Errorf("%s: source basis: %w", opSA, err)
	}
	Bt, err := PrincipalBasis(tgt, sa.Dim, sa.Solver)
	if err != nil {
		return nil, nil, fmt.Errorf("%s: target basis: %w", opSA, err)
	}

	Bst, err := matrix.Transpose(Bs)
	if err != nil {
		return nil, nil, fmt.Errorf("%s: %w", opSA, err)
	}
	G, err := matrix.Mul(Bst, Bt)
	if err != nil {
		return nil, nil, fmt.Errorf("%s: %w", opSA, err)
	}
	M, err := matrix.Mul(Bs, G)
	if err != nil {
		return nil, nil, fmt.Errorf("%s: %w", opSA, err)
	}

	srcA, err := matrix.Mul(src, M)
	if err != nil {
		return nil, nil, fmt.Errorf("%s: project source: %w", opSA, err)
	}
	tgtA, err := matrix.Mul(tgt, Bt)
	if err != nil {
		return nil, nil, fmt.Errorf("%s: project target: %w", opSA, err)
	}

	return srcA, tgtA, nil
}
