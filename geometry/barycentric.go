// SPDX-License-Identifier: MIT

package geometry

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/thermocore/matrix"
)

// BarycentricCoordinates returns the weights w (len d+1, summing to 1) with
// Σ w_i·vertices[i] = point, for a d-dimensional point and a simplex of d+1
// vertices.
//
// Implementation:
//   - Stage 1: V has one row [vertex; 1] per vertex; H = Vᵀ.
//   - Stage 2: det(H) == 0 means a zero-volume simplex.
//   - Stage 3: w = H⁻¹·[point; 1].
//
// Errors:
//   - ErrEmptyInput, ErrDimensionMismatch, ErrDegenerateSimplex (zero volume).
//
// Complexity:
//   - Time O(d³), Space O(d²).
func BarycentricCoordinates(point []float64, vertices [][]float64) ([]float64, error) {
	n := len(point)
	if n == 0 {
		return nil, geometryErrorf(opBary, ErrEmptyInput)
	}
	if len(vertices) != n+1 {
		return nil, geometryErrorf(opBary,
			fmt.Errorf("%d vertices for a %d-dimensional point: %w", len(vertices), n, ErrDimensionMismatch))
	}

	rows := make([][]float64, len(vertices))
	for c, v := range vertices {
		if len(v) != n {
			return nil, geometryErrorf(opBary,
				fmt.Errorf("vertex %d has %d coordinates, want %d: %w", c, len(v), n, ErrDimensionMismatch))
		}
		row := make([]float64, n+1)
		copy(row, v)
		row[n] = 1
		rows[c] = row
	}
	V, err := matrix.NewDenseFromRows(rows)
	if err != nil {
		return nil, geometryErrorf(opBary, err)
	}
	H, err := matrix.Transpose(V)
	if err != nil {
		return nil, geometryErrorf(opBary, err)
	}

	det, err := matrix.Det(H)
	if err != nil {
		return nil, geometryErrorf(opBary, err)
	}
	if det == 0 {
		return nil, geometryErrorf(opBary, fmt.Errorf("simplex %v: %w", vertices, ErrDegenerateSimplex))
	}
	Hinv, err := matrix.Inverse(H)
	if errors.Is(err, matrix.ErrSingular) {
		return nil, geometryErrorf(opBary, fmt.Errorf("%v: %w", err, ErrDegenerateSimplex))
	}
	if err != nil {
		return nil, geometryErrorf(opBary, err)
	}

	rhs := make([]float64, n+1)
	copy(rhs, point)
	rhs[n] = 1
	w, err := matrix.MatVec(Hinv, rhs)
	if err != nil {
		return nil, geometryErrorf(opBary, err)
	}

	return w, nil
}
