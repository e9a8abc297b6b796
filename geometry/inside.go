// SPDX-License-Identifier: MIT

package geometry

import (
	"errors"
	"fmt"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/optimize/convex/lp"
)

// InsideConvexHull reports, per test point, whether it is a convex
// combination of points. No hull is built: for each test point p the LP
//
//	minimize 0  s.t.  [Xᵀ; 1ᵀ]·w = [p; 1],  w >= 0
//
// is solved with gonum's simplex method; infeasible means outside.
//
// Implementation:
//   - Stage 1: validate shapes; drop duplicate points (the LP needs distinct
//     columns).
//   - Stage 2: solve one LP per test point, optionally in parallel.
//
// Errors:
//   - ErrEmptyInput (no points), ErrDimensionMismatch (ragged rows),
//     ErrRankDeficient (points do not span the space), solver failures.
//
// Complexity:
//   - One simplex solve of size (d+1)×m per test point.
func InsideConvexHull(points, testPoints [][]float64, opts ...Option) ([]bool, error) {
	o := gatherOptions(opts...)
	inside, err := insideConvexHull(points, testPoints, o)
	if err != nil {
		return nil, geometryErrorf(opInside, err)
	}

	return inside, nil
}

func insideConvexHull(points, testPoints [][]float64, o options) ([]bool, error) {
	if len(points) == 0 {
		return nil, ErrEmptyInput
	}
	d := len(points[0])
	for i, p := range points {
		if len(p) != d {
			return nil, fmt.Errorf("point %d has %d coordinates, want %d: %w", i, len(p), d, ErrDimensionMismatch)
		}
	}
	for i, p := range testPoints {
		if len(p) != d {
			return nil, fmt.Errorf("test point %d has %d coordinates, want %d: %w", i, len(p), d, ErrDimensionMismatch)
		}
	}

	cols := uniqueRows(points)
	m := len(cols)
	if m < d+1 {
		return nil, fmt.Errorf("%d distinct points in %d dimensions: %w", m, d, ErrRankDeficient)
	}

	// Row r of [Xᵀ; 1ᵀ] holds coordinate r of every distinct point.
	data := make([]float64, (d+1)*m)
	var r, c int
	for c = 0; c < m; c++ {
		for r = 0; r < d; r++ {
			data[r*m+c] = cols[c][r]
		}
		data[d*m+c] = 1
	}
	cost := make([]float64, m)

	inside := make([]bool, len(testPoints))
	err := forEachRow(len(testPoints), o.workers, func(i int) error {
		A := mat.NewDense(d+1, m, append([]float64(nil), data...))
		b := make([]float64, d+1)
		copy(b, testPoints[i])
		b[d] = 1
		_, _, err := lp.Simplex(cost, A, b, o.lpTolerance, nil)
		switch {
		case err == nil:
			inside[i] = true
		case errors.Is(err, lp.ErrInfeasible):
			inside[i] = false
		case errors.Is(err, lp.ErrSingular), errors.Is(err, lp.ErrZeroRow):
			return fmt.Errorf("test point %d: %v: %w", i, err, ErrRankDeficient)
		default:
			return fmt.Errorf("test point %d: %w", i, err)
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	return inside, nil
}

// uniqueRows returns rows with exact duplicates removed, first occurrence kept.
func uniqueRows(rows [][]float64) [][]float64 {
	seen := make(map[string]struct{}, len(rows))
	out := make([][]float64, 0, len(rows))
	for _, row := range rows {
		key := fmt.Sprint(row)
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, row)
	}

	return out
}
