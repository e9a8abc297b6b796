package geometry_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/thermocore/geometry"
	"github.com/katalvlaran/thermocore/hull"
)

func TestLowerHull_Binary(t *testing.T) {
	h := binaryHull(t)
	set, err := geometry.LowerHull(h)
	require.NoError(t, err)

	assert.Equal(t, []int{2, 5, 16, 24}, set.Vertices)
	want := []int{facetIndex(t, h, 5, 24), facetIndex(t, h, 2, 5), facetIndex(t, h, 2, 16)}
	assert.ElementsMatch(t, want, set.Facets)

	// Lower vertices are always hull vertices.
	assert.Subset(t, h.Vertices(), set.Vertices)
}

func TestLowerHull_NoLowerFacets(t *testing.T) {
	h, err := hull.New([][]float64{{0, 0}, {1, 0}}, nil, [][]int{{0, 1}}, [][]float64{{0, 1, 0}})
	require.NoError(t, err)

	_, err = geometry.LowerHull(h)
	assert.ErrorIs(t, err, geometry.ErrNoLowerHullFacets)

	_, err = geometry.LowerHull(nil)
	assert.ErrorIs(t, err, geometry.ErrNilHull)
}

func TestLowerHull_ToleranceExcludesNearFlat(t *testing.T) {
	h := triangleHull(t)
	set, err := geometry.LowerHull(h, geometry.WithTolerance(0.8))
	// -n_e = 1/√2 ≈ 0.707 for both lower facets.
	assert.ErrorIs(t, err, geometry.ErrNoLowerHullFacets)
	assert.Empty(t, set.Facets)
}

func TestFacetEnergyEquations_Binary(t *testing.T) {
	h := binaryHull(t)
	facets := []int{facetIndex(t, h, 5, 24), facetIndex(t, h, 2, 5), facetIndex(t, h, 2, 16)}

	rows, err := geometry.FacetEnergyEquations(h, facets)
	require.NoError(t, err)
	want := [][]float64{{-7, 8}, {-0.25, 1.25}, {0.5, -2.5}}
	require.Len(t, rows, 3)
	for i := range want {
		assert.InDeltaSlice(t, want[i], rows[i], 1e-12, "facet %v", h.Simplex(facets[i]))
	}
}

func TestFacetEnergyEquations_VerticalBinary(t *testing.T) {
	h := binaryHull(t)
	all := make([]int, h.NumFacets())
	for i := range all {
		all[i] = i
	}

	_, err := geometry.FacetEnergyEquations(h, all)
	require.ErrorIs(t, err, geometry.ErrVerticalFacet)

	var ie *geometry.IndexError
	require.True(t, errors.As(err, &ie))
	assert.Contains(t, ie.Indices, facetIndex(t, h, 7, 16))
	assert.Contains(t, err.Error(), "vertical")
}

func TestFacetEnergyEquations_VerticalScenario(t *testing.T) {
	// Two points share composition 0, so facet {0,1} is parallel to the energy axis.
	h, err := hull.Build([][]float64{{0, 0}, {0, 1}, {1, 0}})
	require.NoError(t, err)
	vertical := facetIndex(t, h, 0, 1)

	_, err = geometry.FacetEnergyEquations(h, []int{0, 1, 2})
	var ie *geometry.IndexError
	require.True(t, errors.As(err, &ie))
	assert.Equal(t, []int{vertical}, ie.Indices)
	assert.ErrorIs(t, err, geometry.ErrVerticalFacet)
}

func TestFacetEnergyEquations_HandBuilt(t *testing.T) {
	rows, err := geometry.FacetEnergyEquations(triangleHull(t), []int{0, 1})
	require.NoError(t, err)
	assert.InDeltaSlice(t, []float64{-1, 0}, rows[0], 1e-12)
	assert.InDeltaSlice(t, []float64{1, -2}, rows[1], 1e-12)
}

func TestFacetEnergyEquations_OutOfRange(t *testing.T) {
	_, err := geometry.FacetEnergyEquations(triangleHull(t), []int{0, 3, -1})
	assert.ErrorIs(t, err, geometry.ErrIndexOutOfRange)

	var ie *geometry.IndexError
	require.True(t, errors.As(err, &ie))
	assert.Equal(t, []int{3, -1}, ie.Indices)
}

func TestOptions_Panic(t *testing.T) {
	assert.Panics(t, func() { geometry.WithTolerance(-1) })
	assert.Panics(t, func() { geometry.WithLPTolerance(0) })
	assert.Panics(t, func() { geometry.WithWorkers(0) })
	assert.Panics(t, func() { geometry.WithHull(nil) })
	assert.Panics(t, func() { geometry.WithProvider(nil) })
}
