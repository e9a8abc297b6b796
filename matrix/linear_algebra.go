// SPDX-License-Identifier: MIT
// Package matrix provides the linear-algebra kernels used by the hull and
// geometry packages: multiplication, transpose, matrix-vector products, and
// LU with partial pivoting plus the Solve/Inverse/Det facades built on it.
//
// Notes:
//   - All kernels use the central validators and return sentinels wrapped via
//     matrixErrorf at the facade.
//   - Inputs are never mutated; every kernel allocates its result.

package matrix

import (
	"errors"
	"fmt"
	"math"
)

// ZeroSum is the initial sum value for forward/backward substitution and similar.
const ZeroSum = 0.0

// SingularTolerance is the relative pivot threshold used by LU.
// A pivot whose magnitude is <= SingularTolerance*max|A_ij| is treated as zero.
const SingularTolerance = 1e-12

// Operation name constants for unified error wrapping and reducing magic strings.
const (
	opMul       = "Mul"
	opTranspose = "Transpose"
	opMatVec    = "MatVec"
	opLU        = "LU"
	opSolve     = "Solve"
	opInverse   = "Inverse"
	opDet       = "Det"
)

// matrixErrorf wraps err with an operation tag, preserving the original error via %w.
// Use only when err != nil to avoid creating a non-nil wrapper around a nil cause.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// Mul computes the matrix product a×b.
//
// Implementation:
//   - Stage 1: ValidateMulCompatible(a, b). Allocate Dense(a.Rows, b.Cols).
//   - Stage 2: Fast-path if both are *Dense (i→k→j over flat buffers);
//     otherwise fallback At/Set triple loop (i→j→k).
//
// Errors:
//   - ErrNilMatrix (nil input), ErrDimensionMismatch (inner mismatch).
//
// Complexity:
//   - Time O(r*n*c), Space O(r*c). Skipping zero A[i,k] avoids useless multiplies.
//
// AI-Hints:
//   - Keep A as *Dense and cache-friendly by rows to unlock the fast path.
func Mul(a, b Matrix) (Matrix, error) {
	if err := ValidateMulCompatible(a, b); err != nil {
		return nil, matrixErrorf(opMul, err)
	}

	aRows, aCols, bCols := a.Rows(), a.Cols(), b.Cols()
	res, err := NewDense(aRows, bCols)
	if err != nil {
		return nil, matrixErrorf(opMul, err)
	}
	var (
		i, j, k         int
		av, bv, current float64
	)
	// Fast-path for two Dense matrices
	if da, okA := a.(*Dense); okA {
		if db, okB := b.(*Dense); okB {
			var rowOffsetA, rowOffsetB, rowOffsetR int
			for i = 0; i < aRows; i++ {
				rowOffsetA = i * aCols
				rowOffsetR = i * bCols
				for k = 0; k < aCols; k++ {
					av = da.data[rowOffsetA+k]
					if av == 0 {
						continue
					}
					rowOffsetB = k * bCols
					for j = 0; j < bCols; j++ {
						res.data[rowOffsetR+j] += av * db.data[rowOffsetB+j]
					}
				}
			}

			return res, nil
		}
	}

	// Fallback: generic interface triple-loop (i-j-k)
	for i = 0; i < aRows; i++ {
		for j = 0; j < bCols; j++ {
			current = ZeroSum
			for k = 0; k < aCols; k++ {
				if av, err = a.At(i, k); err != nil {
					return nil, matrixErrorf(opMul, err)
				}
				if av == 0 {
					continue
				}
				if bv, err = b.At(k, j); err != nil {
					return nil, matrixErrorf(opMul, err)
				}
				current += av * bv
			}
			if err = res.Set(i, j, current); err != nil {
				return nil, matrixErrorf(opMul, err)
			}
		}
	}

	return res, nil
}

// Transpose returns a new matrix with rows and columns swapped (mᵀ).
// Fast-path copies *Dense data via flat indexing; fallback uses At/Set.
// Complexity: Time O(r*c), Space O(r*c).
func Transpose(m Matrix) (Matrix, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opTranspose, err)
	}
	rows, cols := m.Rows(), m.Cols()
	res, err := NewDense(cols, rows)
	if err != nil {
		return nil, matrixErrorf(opTranspose, err)
	}

	var i, j int
	if d, ok := m.(*Dense); ok {
		for i = 0; i < rows; i++ {
			for j = 0; j < cols; j++ {
				res.data[j*rows+i] = d.data[i*cols+j]
			}
		}

		return res, nil
	}

	var v float64
	for i = 0; i < rows; i++ {
		for j = 0; j < cols; j++ {
			if v, err = m.At(i, j); err != nil {
				return nil, matrixErrorf(opTranspose, err)
			}
			res.data[j*rows+i] = v
		}
	}

	return res, nil
}

// MatVec computes y = m·x for an r×c matrix and a length-c vector.
//
// Errors:
//   - ErrNilMatrix (nil m or nil x), ErrDimensionMismatch (len(x) != c).
//
// Complexity:
//   - Time O(r*c), Space O(r).
func MatVec(m Matrix, x []float64) ([]float64, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opMatVec, err)
	}
	rows, cols := m.Rows(), m.Cols()
	if err := ValidateVecLen(x, cols); err != nil {
		return nil, matrixErrorf(opMatVec, err)
	}

	y := make([]float64, rows)
	var (
		i, j   int
		v, sum float64
		err    error
	)
	if d, ok := m.(*Dense); ok {
		var base int
		for i = 0; i < rows; i++ {
			base = i * cols
			sum = ZeroSum
			for j = 0; j < cols; j++ {
				sum += d.data[base+j] * x[j]
			}
			y[i] = sum
		}

		return y, nil
	}

	for i = 0; i < rows; i++ {
		sum = ZeroSum
		for j = 0; j < cols; j++ {
			if v, err = m.At(i, j); err != nil {
				return nil, matrixErrorf(opMatVec, err)
			}
			sum += v * x[j]
		}
		y[i] = sum
	}

	return y, nil
}

// LUFactors holds a pivoted factorization P·A = L·U of a square matrix.
//   - L is unit lower-triangular, U is upper-triangular.
//   - Pivot[i] is the row of A that ended up in row i of P·A.
type LUFactors struct {
	L, U  *Dense
	Pivot []int
	sign  float64 // +1 or -1, parity of the row permutation
}

// LU factors a square matrix using Doolittle elimination with partial pivoting.
//
// Implementation:
//   - Stage 1: ValidateSquareNonNil(m); copy m into a working buffer and record
//     scale = max|A_ij|.
//   - Stage 2: for each column k pick the row with the largest |A_ik| (i >= k),
//     swap it into place, then eliminate below the pivot.
//   - Stage 3: split the working buffer into unit-lower L and upper U.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch (non-square).
//   - ErrSingular when a pivot is <= SingularTolerance*scale. The partial
//     factors are still returned so Det can report zero.
//
// Complexity:
//   - Time O(n^3), Space O(n^2).
//
// AI-Hints:
//   - Reuse one *LUFactors for many right-hand sides via (*LUFactors).Solve.
func LU(m Matrix) (*LUFactors, error) {
	if err := ValidateSquareNonNil(m); err != nil {
		return nil, matrixErrorf(opLU, err)
	}
	n := m.Rows()
	a := make([]float64, n*n)
	var (
		i, j, k int
		v       float64
		err     error
	)
	if d, ok := m.(*Dense); ok {
		copy(a, d.data)
	} else {
		for i = 0; i < n; i++ {
			for j = 0; j < n; j++ {
				if v, err = m.At(i, j); err != nil {
					return nil, matrixErrorf(opLU, err)
				}
				a[i*n+j] = v
			}
		}
	}

	scale := 0.0
	for _, v = range a {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return nil, matrixErrorf(opLU, ErrNaNInf)
		}
		if math.Abs(v) > scale {
			scale = math.Abs(v)
		}
	}
	threshold := SingularTolerance * scale

	piv := make([]int, n)
	for i = 0; i < n; i++ {
		piv[i] = i
	}
	sign := 1.0
	var singular bool
	var p int
	var best, factor float64
	for k = 0; k < n; k++ {
		// Partial pivot: largest magnitude in column k at or below the diagonal.
		p, best = k, math.Abs(a[k*n+k])
		for i = k + 1; i < n; i++ {
			if v = math.Abs(a[i*n+k]); v > best {
				p, best = i, v
			}
		}
		if best <= threshold || scale == 0 {
			singular = true
			continue
		}
		if p != k {
			for j = 0; j < n; j++ {
				a[k*n+j], a[p*n+j] = a[p*n+j], a[k*n+j]
			}
			piv[k], piv[p] = piv[p], piv[k]
			sign = -sign
		}
		for i = k + 1; i < n; i++ {
			factor = a[i*n+k] / a[k*n+k]
			a[i*n+k] = factor
			if factor == 0 {
				continue
			}
			for j = k + 1; j < n; j++ {
				a[i*n+j] -= factor * a[k*n+j]
			}
		}
	}

	L, _ := NewDense(n, n)
	U, _ := NewDense(n, n)
	for i = 0; i < n; i++ {
		for j = 0; j < n; j++ {
			switch {
			case i > j:
				L.data[i*n+j] = a[i*n+j]
			case i == j:
				L.data[i*n+j] = 1
				U.data[i*n+j] = a[i*n+j]
			default:
				U.data[i*n+j] = a[i*n+j]
			}
		}
	}
	f := &LUFactors{L: L, U: U, Pivot: piv, sign: sign}
	if singular {
		return f, matrixErrorf(opLU, ErrSingular)
	}

	return f, nil
}

// Det returns det(A) = sign(P)·∏U_ii.
func (f *LUFactors) Det() float64 {
	n := f.U.r
	det := f.sign
	for i := 0; i < n; i++ {
		det *= f.U.data[i*n+i]
	}

	return det
}

// Solve returns x with A·x = b using forward then backward substitution.
// Errors: ErrNilMatrix / ErrDimensionMismatch on a bad b; ErrSingular on a zero pivot.
func (f *LUFactors) Solve(b []float64) ([]float64, error) {
	n := f.U.r
	if err := ValidateVecLen(b, n); err != nil {
		return nil, matrixErrorf(opSolve, err)
	}
	var i, j int
	var sum, d float64

	// Forward: L·y = P·b
	y := make([]float64, n)
	for i = 0; i < n; i++ {
		sum = b[f.Pivot[i]]
		for j = 0; j < i; j++ {
			sum -= f.L.data[i*n+j] * y[j]
		}
		y[i] = sum
	}

	// Backward: U·x = y
	x := make([]float64, n)
	for i = n - 1; i >= 0; i-- {
		sum = y[i]
		for j = i + 1; j < n; j++ {
			sum -= f.U.data[i*n+j] * x[j]
		}
		d = f.U.data[i*n+i]
		if d == 0 {
			return nil, matrixErrorf(opSolve, ErrSingular)
		}
		x[i] = sum / d
	}

	return x, nil
}

// Solve returns x such that m·x = b.
// Errors: see LU and (*LUFactors).Solve; ErrSingular for rank-deficient m.
func Solve(m Matrix, b []float64) ([]float64, error) {
	f, err := LU(m)
	if err != nil {
		return nil, matrixErrorf(opSolve, err)
	}
	x, err := f.Solve(b)
	if err != nil {
		return nil, matrixErrorf(opSolve, err)
	}

	return x, nil
}

// Inverse returns m⁻¹ by solving m·X = I column by column.
// Complexity: Time O(n^3), Space O(n^2).
func Inverse(m Matrix) (Matrix, error) {
	f, err := LU(m)
	if err != nil {
		return nil, matrixErrorf(opInverse, err)
	}
	n := f.U.r
	inv, _ := NewDense(n, n)
	e := make([]float64, n)
	var i, j int
	var col []float64
	for j = 0; j < n; j++ {
		for i = range e {
			e[i] = 0
		}
		e[j] = 1
		if col, err = f.Solve(e); err != nil {
			return nil, matrixErrorf(opInverse, err)
		}
		for i = 0; i < n; i++ {
			inv.data[i*n+j] = col[i]
		}
	}

	return inv, nil
}

// Det returns the determinant of a square matrix. Singular matrices yield 0
// with a nil error; only validation failures are reported.
func Det(m Matrix) (float64, error) {
	f, err := LU(m)
	if err != nil {
		if f != nil && errors.Is(err, ErrSingular) {
			return 0, nil
		}

		return 0, matrixErrorf(opDet, err)
	}

	return f.Det(), nil
}
