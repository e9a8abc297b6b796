// SPDX-License-Identifier: MIT

package geometry

import (
	"math"

	"github.com/katalvlaran/thermocore/hull"
)

// FacetEnergyEquations turns each requested facet hyperplane
// a·x + b·e + c = 0 into the row (-a/b, -c/b), so that row·[x; 1] = e.
//
// Implementation:
//   - Stage 1: range-check facet indices.
//   - Stage 2: collect every facet with |b| <= tolerance; any hit fails the
//     whole call with an *IndexError listing all of them.
//   - Stage 3: divide through by -b.
//
// Errors:
//   - ErrNilHull, ErrIndexOutOfRange, ErrVerticalFacet (*IndexError).
//
// Complexity:
//   - Time O(len(facets)·D), Space O(len(facets)·D).
func FacetEnergyEquations(h *hull.Hull, facets []int, opts ...Option) ([][]float64, error) {
	if h == nil {
		return nil, geometryErrorf(opEquations, ErrNilHull)
	}
	o := gatherOptions(opts...)
	d := h.CompositionDim()

	var bad []int
	for _, f := range facets {
		if f < 0 || f >= h.NumFacets() {
			bad = append(bad, f)
		}
	}
	if len(bad) > 0 {
		return nil, &IndexError{Op: opEquations, Indices: bad, Err: ErrIndexOutOfRange}
	}

	var vertical []int
	for _, f := range facets {
		if math.Abs(h.Equation(f)[d]) <= o.tolerance {
			vertical = append(vertical, f)
		}
	}
	if len(vertical) > 0 {
		return nil, &IndexError{Op: opEquations, Indices: vertical, Err: ErrVerticalFacet}
	}

	rows := make([][]float64, len(facets))
	var j int
	for i, f := range facets {
		eq := h.Equation(f)
		b := eq[d]
		row := make([]float64, d+1)
		for j = 0; j < d; j++ {
			row[j] = -eq[j] / b
		}
		row[d] = -eq[d+1] / b
		rows[i] = row
	}

	return rows, nil
}
