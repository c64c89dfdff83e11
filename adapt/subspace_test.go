// SPDX-License-Identifier: MIT

package adapt_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat"

	"github.com/katalvlaran/dabench/adapt"
	"github.com/katalvlaran/dabench/matrix"
)

// offset returns X + (k+1)·off in every column k, so the data is far from centered.
func offset(t *testing.T, X *matrix.Dense, off float64) *matrix.Dense {
	t.Helper()
	r, c := X.Shape()
	data := X.RawData()
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			data[i*c+j] += float64(j+1) * off
		}
	}
	m, err := matrix.NewDenseFrom(r, c, data)
	if err != nil {
		t.Fatalf("NewDenseFrom: %v", err)
	}
	return m
}

func toGonum(X *matrix.Dense) *mat.Dense {
	r, c := X.Shape()
	return mat.NewDense(r, c, X.RawData())
}

func fromGonum(t *testing.T, m *mat.Dense) *matrix.Dense {
	t.Helper()
	r, c := m.Dims()
	data := make([]float64, 0, r*c)
	for i := 0; i < r; i++ {
		data = append(data, mat.Row(nil, i, m)...)
	}
	out, err := matrix.NewDenseFrom(r, c, data)
	if err != nil {
		t.Fatalf("NewDenseFrom: %v", err)
	}
	return out
}

// pcBasis computes the top-d principal directions with gonum's stat.PC and
// flips each so that its largest-magnitude entry is positive.
func pcBasis(t *testing.T, X *matrix.Dense, d int) *mat.Dense {
	t.Helper()
	var pc stat.PC
	if !pc.PrincipalComponents(toGonum(X), nil) {
		t.Fatalf("PrincipalComponents failed")
	}
	var vecs mat.Dense
	pc.VectorsTo(&vecs)

	c, _ := vecs.Dims()
	B := mat.NewDense(c, d, nil)
	for j := 0; j < d; j++ {
		arg, best := 0, -1.0
		for i := 0; i < c; i++ {
			if a := math.Abs(vecs.At(i, j)); a > best {
				best, arg = a, i
			}
		}
		sign := 1.0
		if vecs.At(arg, j) < 0 {
			sign = -1.0
		}
		for i := 0; i < c; i++ {
			B.Set(i, j, sign*vecs.At(i, j))
		}
	}
	return B
}

func TestSubspaceAlignment_MatchesPCAFormula(t *testing.T) {
	t.Parallel()

	const d = 3
	src := offset(t, randDense(t, 40, 8, 21), 5)
	tgt := offset(t, randDense(t, 30, 8, 22), -2)

	Bs, Bt := pcBasis(t, src, d), pcBasis(t, tgt, d)
	var G, M, wantSrc, wantTgt, srcOnBs mat.Dense
	G.Mul(Bs.T(), Bt)
	M.Mul(Bs, &G)
	wantSrc.Mul(toGonum(src), &M)
	wantTgt.Mul(toGonum(tgt), Bt)
	srcOnBs.Mul(toGonum(src), Bs)

	for _, solver := range []adapt.Solver{adapt.SolverSVD, adapt.SolverJacobi} {
		a, b, err := adapt.NewSubspaceAlignment(d, solver).Adapt(src, labelsN(40, 4), tgt, nil)
		require.NoError(t, err)

		ok, err := matrix.AllClose(a, fromGonum(t, &wantSrc), 1e-6, 1e-6)
		require.NoError(t, err)
		require.True(t, ok, "%v: source must equal src·Bs·Bsᵀ·Bt", solver)

		ok, err = matrix.AllClose(b, fromGonum(t, &wantTgt), 1e-6, 1e-6)
		require.NoError(t, err)
		require.True(t, ok, "%v: target must equal tgt·Bt", solver)

		// projecting the source onto its own basis is a different transform
		ok, err = matrix.AllClose(a, fromGonum(t, &srcOnBs), 1e-6, 1e-6)
		require.NoError(t, err)
		require.False(t, ok, "%v: source was projected without alignment", solver)
	}
}
