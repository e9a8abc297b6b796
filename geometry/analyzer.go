// SPDX-License-Identifier: MIT

package geometry

import (
	"fmt"

	"gonum.org/v1/gonum/floats"

	"github.com/katalvlaran/thermocore/hull"
	"github.com/katalvlaran/thermocore/matrix"
)

// Analyzer caches the lower hull of one Hull and its facet energy
// equations, so repeated queries skip re-deriving them. An Analyzer is
// read-only after construction and safe for concurrent use. A different
// Hull needs a new Analyzer.
type Analyzer struct {
	h      *hull.Hull
	opts   options
	lower  LowerHullSet
	eqs    *matrix.Dense // len(lower.Facets) × (d+1)
	eqsT   matrix.Matrix // (d+1) × len(lower.Facets)
	bounds [][]float64   // compositions of all hull vertices
}

// NewAnalyzer derives the lower hull of h (or adopts WithLowerHullFacets)
// and builds the energy equation of every lower facet.
//
// Errors:
//   - ErrNilHull, ErrNoLowerHullFacets, ErrIndexOutOfRange,
//     ErrVerticalFacet (*IndexError; only reachable with explicit facets).
func NewAnalyzer(h *hull.Hull, opts ...Option) (*Analyzer, error) {
	return newAnalyzer(h, gatherOptions(opts...))
}

func newAnalyzer(h *hull.Hull, o options) (*Analyzer, error) {
	if h == nil {
		return nil, geometryErrorf(opAnalyzer, ErrNilHull)
	}
	tol := WithTolerance(o.tolerance)

	var set LowerHullSet
	var err error
	if o.facets != nil {
		if len(o.facets) == 0 {
			return nil, geometryErrorf(opAnalyzer, ErrNoLowerHullFacets)
		}
		set.Facets = append([]int(nil), o.facets...)
	} else if set, err = LowerHull(h, tol); err != nil {
		return nil, geometryErrorf(opAnalyzer, err)
	}

	rows, err := FacetEnergyEquations(h, set.Facets, tol)
	if err != nil {
		return nil, geometryErrorf(opAnalyzer, err)
	}
	if set.Vertices == nil {
		set.Vertices = facetVertices(h, set.Facets)
	}
	eqs, err := matrix.NewDenseFromRows(rows)
	if err != nil {
		return nil, geometryErrorf(opAnalyzer, err)
	}
	eqsT, err := matrix.Transpose(eqs)
	if err != nil {
		return nil, geometryErrorf(opAnalyzer, err)
	}

	d := h.CompositionDim()
	verts := h.Vertices()
	bounds := make([][]float64, len(verts))
	for i, v := range verts {
		bounds[i] = h.Point(v)[:d]
	}

	return &Analyzer{h: h, opts: o, lower: set, eqs: eqs, eqsT: eqsT, bounds: bounds}, nil
}

// Hull returns the analyzed hull.
func (a *Analyzer) Hull() *hull.Hull { return a.h }

// LowerHull returns a copy of the cached lower-hull index sets.
func (a *Analyzer) LowerHull() LowerHullSet {
	return LowerHullSet{
		Vertices: append([]int(nil), a.lower.Vertices...),
		Facets:   append([]int(nil), a.lower.Facets...),
	}
}

// Equations returns the cached energy equation rows, aligned with
// LowerHull().Facets.
func (a *Analyzer) Equations() [][]float64 { return a.eqs.ToRows() }

func (a *Analyzer) checkCompositions(compositions [][]float64) error {
	d := a.h.CompositionDim()
	for i, c := range compositions {
		if len(c) != d {
			return fmt.Errorf("composition %d has %d axes, hull has %d: %w", i, len(c), d, ErrDimensionMismatch)
		}
	}

	return nil
}

// Locate returns, per composition, the covering lower facet (index into
// Hull().Simplices()) and the hull energy there.
//
// Implementation:
//   - Stage 1: every composition must lie in the convex hull of the hull's
//     vertex compositions (LP feasibility); offenders fail the call as one
//     *IndexError{Err: ErrOutOfBounds}. No extrapolation.
//   - Stage 2: one product [X | 1]·Eᵀ evaluates every lower equation at
//     every composition; per row the argmax wins, the first maximal facet
//     on ties.
//
// Complexity:
//   - Time O(n·(LP + F·D)).
func (a *Analyzer) Locate(compositions [][]float64) ([]int, []float64, error) {
	if err := a.checkCompositions(compositions); err != nil {
		return nil, nil, geometryErrorf(opLocate, err)
	}
	inside, err := insideConvexHull(a.bounds, compositions, a.opts)
	if err != nil {
		return nil, nil, geometryErrorf(opLocate, err)
	}
	var outside []int
	for i, ok := range inside {
		if !ok {
			outside = append(outside, i)
		}
	}
	if len(outside) > 0 {
		return nil, nil, &IndexError{Op: opLocate, Indices: outside, Err: ErrOutOfBounds}
	}

	if len(compositions) == 0 {
		return []int{}, []float64{}, nil
	}

	d := a.h.CompositionDim()
	xs := make([][]float64, len(compositions))
	for i, c := range compositions {
		x := make([]float64, d+1)
		copy(x, c)
		x[d] = 1
		xs[i] = x
	}
	X, err := matrix.NewDenseFromRows(xs)
	if err != nil {
		return nil, nil, geometryErrorf(opLocate, err)
	}
	prod, err := matrix.Mul(X, a.eqsT)
	if err != nil {
		return nil, nil, geometryErrorf(opLocate, err)
	}
	vals := prod.(*matrix.Dense)

	facets := make([]int, len(compositions))
	energies := make([]float64, len(compositions))
	var row []float64
	var best, k int
	for i := range compositions {
		if row, err = vals.Row(i); err != nil {
			return nil, nil, geometryErrorf(opLocate, err)
		}
		best = 0
		for k = 1; k < len(row); k++ {
			if row[k] > row[best] {
				best = k
			}
		}
		facets[i] = a.lower.Facets[best]
		energies[i] = row[best]
	}

	return facets, energies, nil
}

// LowerHullEnergies returns only the energies of Locate.
func (a *Analyzer) LowerHullEnergies(compositions [][]float64) ([]float64, error) {
	_, energies, err := a.Locate(compositions)

	return energies, err
}

// HullDistances returns energies[i] minus the hull energy at compositions[i].
func (a *Analyzer) HullDistances(compositions [][]float64, energies []float64) ([]float64, error) {
	if len(compositions) != len(energies) {
		return nil, geometryErrorf(opDistances,
			fmt.Errorf("%d compositions, %d energies: %w", len(compositions), len(energies), ErrDimensionMismatch))
	}
	hullEnergies, err := a.LowerHullEnergies(compositions)
	if err != nil {
		return nil, geometryErrorf(opDistances, err)
	}
	dist := make([]float64, len(energies))
	floats.SubTo(dist, energies, hullEnergies)

	return dist, nil
}

// HullDistanceCorrelations re-expresses each correlation row so that it
// predicts hull distance instead of formation energy:
//
//	out_i = corr_i − Σ_j w_j·corr_{s_j}
//
// where s is the covering lower facet of compositions[i] and w are the
// barycentric weights of compositions[i] within s. Row i of corr belongs to
// hull point i, so len(corr) must equal Hull().NumPoints(). Rows of hull
// vertices come out as zero vectors.
func (a *Analyzer) HullDistanceCorrelations(corr, compositions [][]float64) ([][]float64, error) {
	n := len(corr)
	if n != a.h.NumPoints() || len(compositions) != n {
		return nil, geometryErrorf(opCorr, fmt.Errorf("%d correlation rows, %d compositions, %d hull points: %w",
			n, len(compositions), a.h.NumPoints(), ErrDimensionMismatch))
	}
	k := len(corr[0])
	for i, row := range corr {
		if len(row) != k {
			return nil, geometryErrorf(opCorr,
				fmt.Errorf("correlation row %d has %d entries, want %d: %w", i, len(row), k, ErrDimensionMismatch))
		}
	}

	facets, _, err := a.Locate(compositions)
	if err != nil {
		return nil, geometryErrorf(opCorr, err)
	}

	d := a.h.CompositionDim()
	out := make([][]float64, n)
	err = forEachRow(n, a.opts.workers, func(i int) error {
		simplex := a.h.Simplex(facets[i])
		corners := make([][]float64, len(simplex))
		for j, idx := range simplex {
			corners[j] = a.h.Point(idx)[:d]
		}
		w, err := BarycentricCoordinates(compositions[i], corners)
		if err != nil {
			return fmt.Errorf("row %d: %w", i, err)
		}
		row := append([]float64(nil), corr[i]...)
		for j, idx := range simplex {
			floats.AddScaled(row, -w[j], corr[idx])
		}
		out[i] = row

		return nil
	})
	if err != nil {
		return nil, geometryErrorf(opCorr, err)
	}

	return out, nil
}
