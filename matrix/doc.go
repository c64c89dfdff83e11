// Package matrix provides the dense linear-algebra layer used by the
// domain-adaptation benchmark.
//
// The matrix package provides:
//
//   - Dense, a row-major float64 matrix with safe accessors (At/Set return
//     errors instead of panicking) and row selection (SelectRows).
//   - Canonical kernels: Mul, Transpose, Scale.
//   - Statistics: CenterColumns, NormalizeRowsL1, StandardizeColumns,
//     Covariance.
//   - Spectral routines: Eigen (Jacobi rotations, symmetric input) and
//     ThinSVD (gonum-backed singular value decomposition).
//
// Rows are samples and columns are feature dimensions everywhere in this
// module. All loops run in a fixed i→j order, so identical inputs always
// produce bit-identical outputs.
package matrix
