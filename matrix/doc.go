// Package matrix offers the small dense linear-algebra kernel used by the
// hull and geometry packages.
//
// The matrix package provides:
//
//   - Dense, a row-major float64 matrix with bounds-checked At/Set that
//     return errors instead of panicking.
//   - Mul, Transpose and MatVec for the affine evaluations done on facet
//     equations.
//   - LU with partial pivoting, and Solve, Inverse and Det built on it, for
//     barycentric weights and facet normals.
//
// Matrices here are small (at most (d+1)×(d+1) for d composition axes), so
// the kernels favour determinism and clear failure modes over blocking or
// SIMD tricks. Singular systems surface as ErrSingular.
package matrix
