// SPDX-License-Identifier: MIT

package geometry

import (
	"fmt"

	"github.com/katalvlaran/thermocore/hull"
)

// Column promotes a single composition axis to one-column form, one row per
// value.
func Column(xs []float64) [][]float64 {
	out := make([][]float64, len(xs))
	for i, x := range xs {
		out[i] = []float64{x}
	}

	return out
}

// Locate finds the covering lower-hull facet and hull energy of each
// composition. See (*Analyzer).Locate; WithLowerHullFacets skips the lower
// hull derivation.
func Locate(compositions [][]float64, h *hull.Hull, opts ...Option) ([]int, []float64, error) {
	a, err := NewAnalyzer(h, opts...)
	if err != nil {
		return nil, nil, geometryErrorf(opLocate, err)
	}

	return a.Locate(compositions)
}

// LowerHullEnergies returns the hull energy at each composition.
func LowerHullEnergies(compositions [][]float64, h *hull.Hull, opts ...Option) ([]float64, error) {
	_, energies, err := Locate(compositions, h, opts...)

	return energies, err
}

// HullDistances returns the energy above the lower hull of each
// (composition, energy) pair. Without WithHull the hull is built from the
// same data, and WithLowerHullFacets is ignored.
func HullDistances(compositions [][]float64, energies []float64, opts ...Option) ([]float64, error) {
	if len(compositions) != len(energies) {
		return nil, geometryErrorf(opDistances,
			fmt.Errorf("%d compositions, %d energies: %w", len(compositions), len(energies), ErrDimensionMismatch))
	}
	o := gatherOptions(opts...)
	a, err := analyzerFor(compositions, energies, o)
	if err != nil {
		return nil, geometryErrorf(opDistances, err)
	}

	return a.HullDistances(compositions, energies)
}

// HullDistanceCorrelations projects corr onto hull-distance correlations.
// Without WithHull the hull is built from compositions and energies; with
// it, energies only need the right length and WithHull must index the same
// rows as corr.
func HullDistanceCorrelations(corr, compositions [][]float64, energies []float64, opts ...Option) ([][]float64, error) {
	if len(energies) != len(corr) || len(compositions) != len(corr) {
		return nil, geometryErrorf(opCorr, fmt.Errorf("%d correlation rows, %d compositions, %d energies: %w",
			len(corr), len(compositions), len(energies), ErrDimensionMismatch))
	}
	o := gatherOptions(opts...)
	a, err := analyzerFor(compositions, energies, o)
	if err != nil {
		return nil, geometryErrorf(opCorr, err)
	}

	return a.HullDistanceCorrelations(corr, compositions)
}

// analyzerFor uses o.hull when present, otherwise builds the hull of the
// (composition, energy) points with o.provider.
func analyzerFor(compositions [][]float64, energies []float64, o options) (*Analyzer, error) {
	if o.hull != nil {
		return newAnalyzer(o.hull, o)
	}
	h, err := SelfHull(compositions, energies, WithProvider(o.provider))
	if err != nil {
		return nil, err
	}
	o.facets = nil

	return newAnalyzer(h, o)
}

// SelfHull builds the full hull of the given (composition, energy) points
// with the configured Provider (default hull.NewBuilder()).
func SelfHull(compositions [][]float64, energies []float64, opts ...Option) (*hull.Hull, error) {
	o := gatherOptions(opts...)
	points, err := hull.JoinEnergies(compositions, energies)
	if err != nil {
		return nil, err
	}

	return o.provider.Hull(points)
}
