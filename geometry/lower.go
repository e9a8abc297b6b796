// SPDX-License-Identifier: MIT

package geometry

import (
	"sort"

	"github.com/katalvlaran/thermocore/hull"
)

const (
	opLowerHull = "LowerHull"
	opEquations = "FacetEnergyEquations"
	opInside    = "InsideConvexHull"
	opLocate    = "Locate"
	opDistances = "HullDistances"
	opBary      = "BarycentricCoordinates"
	opCorr      = "HullDistanceCorrelations"
	opAnalyzer  = "NewAnalyzer"
)

// LowerHullSet is the lower envelope of a hull.
//   - Vertices: sorted, unique point indices touched by lower facets.
//   - Facets: sorted facet indices into h.Simplices().
type LowerHullSet struct {
	Vertices []int
	Facets   []int
}

// LowerHull selects the facets whose outward normal points down in energy,
// -n_e > tolerance, and the vertices they touch.
//
// Errors:
//   - ErrNilHull; ErrNoLowerHullFacets when nothing qualifies.
//
// Complexity:
//   - Time O(F·D + V log V).
func LowerHull(h *hull.Hull, opts ...Option) (LowerHullSet, error) {
	if h == nil {
		return LowerHullSet{}, geometryErrorf(opLowerHull, ErrNilHull)
	}
	o := gatherOptions(opts...)
	e := h.Dim() - 1 // energy axis position within an equation

	var facets []int
	for i, eq := range h.Equations() {
		if -eq[e] > o.tolerance {
			facets = append(facets, i)
		}
	}
	if len(facets) == 0 {
		return LowerHullSet{}, geometryErrorf(opLowerHull, ErrNoLowerHullFacets)
	}

	return LowerHullSet{Vertices: facetVertices(h, facets), Facets: facets}, nil
}

// facetVertices returns the sorted union of point indices of the given facets.
func facetVertices(h *hull.Hull, facets []int) []int {
	seen := make(map[int]struct{})
	for _, f := range facets {
		for _, idx := range h.Simplex(f) {
			seen[idx] = struct{}{}
		}
	}
	out := make([]int, 0, len(seen))
	for idx := range seen {
		out = append(out, idx)
	}
	sort.Ints(out)

	return out
}
