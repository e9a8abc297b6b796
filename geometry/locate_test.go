package geometry_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/thermocore/geometry"
	"github.com/katalvlaran/thermocore/hull"
)

func TestLocate_Binary(t *testing.T) {
	h := binaryHull(t)
	left, mid, right := facetIndex(t, h, 5, 24), facetIndex(t, h, 2, 5), facetIndex(t, h, 2, 16)

	xs := geometry.Column([]float64{0, 0.5, 1, 3, 5, 7.5, 9})
	possible := [][]int{{left}, {left}, {left, mid}, {mid}, {mid, right}, {right}, {right}}
	wantEnergies := []float64{8, 4.5, 1, 0.5, 0, 1.25, 2}

	facets, energies, err := geometry.Locate(xs, h)
	require.NoError(t, err)
	for i := range xs {
		assert.Contains(t, possible[i], facets[i], "point %d", i)
		assert.InDelta(t, wantEnergies[i], energies[i], 1e-12, "point %d", i)
	}

	// Supplying the lower facets yields the same answer.
	set, err := geometry.LowerHull(h)
	require.NoError(t, err)
	f2, e2, err := geometry.Locate(xs, h, geometry.WithLowerHullFacets(set.Facets))
	require.NoError(t, err)
	assert.Equal(t, facets, f2)
	assert.Equal(t, energies, e2)

	// So does the parallel path.
	f3, e3, err := geometry.Locate(xs, h, geometry.WithWorkers(4))
	require.NoError(t, err)
	assert.Equal(t, facets, f3)
	assert.Equal(t, energies, e3)
}

func TestLocate_BinaryOutOfBounds(t *testing.T) {
	h := binaryHull(t)
	for _, x := range []float64{-0.5, 9.5} {
		_, _, err := geometry.Locate(geometry.Column([]float64{x}), h)
		assert.ErrorIs(t, err, geometry.ErrOutOfBounds, "x=%v", x)
	}
}

func TestLocate_Triangle(t *testing.T) {
	h, err := hull.FromCompositions(geometry.Column([]float64{0, 1, 2}), []float64{0, -1, 0})
	require.NoError(t, err)

	energies, err := geometry.LowerHullEnergies(geometry.Column([]float64{0.5, 1.5, 1.0}), h)
	require.NoError(t, err)
	assert.InDeltaSlice(t, []float64{-0.5, -0.5, -1}, energies, 1e-12)

	_, _, err = geometry.Locate(geometry.Column([]float64{-0.1, 1, 2.1}), h)
	var ie *geometry.IndexError
	require.True(t, errors.As(err, &ie))
	assert.Equal(t, []int{0, 2}, ie.Indices)
	assert.ErrorIs(t, err, geometry.ErrOutOfBounds)
}

// The argmax rule assumes outward normals; a hand-built hull pins it down.
func TestLocate_OutwardNormalConvention(t *testing.T) {
	h := triangleHull(t)
	facets, energies, err := geometry.Locate(geometry.Column([]float64{0.25, 1.75, 0, 2}), h)
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1, 0, 1}, facets)
	assert.InDeltaSlice(t, []float64{-0.25, -0.25, 0, 0}, energies, 1e-12)

	// Ties go to the first lower facet.
	facets, _, err = geometry.Locate(geometry.Column([]float64{1}), h)
	require.NoError(t, err)
	assert.Equal(t, []int{0}, facets)
}

func TestLocate_Ternary(t *testing.T) {
	// Unit triangle with one stable interior phase at (1/3, 1/3).
	pts := [][]float64{{0, 0, 0}, {1, 0, 0}, {0, 1, 0}, {1.0 / 3, 1.0 / 3, -1}, {0.5, 0.25, 0.5}, {0.2, 0.2, 0.3}}
	h, err := hull.Build(pts)
	require.NoError(t, err)

	set, err := geometry.LowerHull(h)
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1, 2, 3}, set.Vertices)
	assert.Len(t, set.Facets, 3)

	comps, energies := split(pts)
	dist, err := geometry.HullDistances(comps, energies)
	require.NoError(t, err)
	for _, v := range set.Vertices {
		assert.InDelta(t, 0, dist[v], 1e-12)
	}
	for i := range dist {
		assert.GreaterOrEqual(t, dist[i], -1e-12)
	}

	// Midpoint of the (0,0)–(1/3,1/3) edge sits halfway down to -1.
	e, err := geometry.LowerHullEnergies([][]float64{{1.0 / 6, 1.0 / 6}}, h)
	require.NoError(t, err)
	assert.InDelta(t, -0.5, e[0], 1e-12)

	_, _, err = geometry.Locate([][]float64{{0.8, 0.8}}, h)
	assert.ErrorIs(t, err, geometry.ErrOutOfBounds)
}

func TestLocate_DimensionMismatch(t *testing.T) {
	_, _, err := geometry.Locate([][]float64{{1, 2}}, binaryHull(t))
	assert.ErrorIs(t, err, geometry.ErrDimensionMismatch)

	_, _, err = geometry.Locate(geometry.Column([]float64{1}), nil)
	assert.ErrorIs(t, err, geometry.ErrNilHull)
}

func TestLocate_ExplicitVerticalFacetFails(t *testing.T) {
	h := binaryHull(t)
	_, _, err := geometry.Locate(geometry.Column([]float64{9}), h,
		geometry.WithLowerHullFacets([]int{facetIndex(t, h, 7, 16)}))
	assert.ErrorIs(t, err, geometry.ErrVerticalFacet)

	_, _, err = geometry.Locate(geometry.Column([]float64{9}), h, geometry.WithLowerHullFacets([]int{}))
	assert.ErrorIs(t, err, geometry.ErrNoLowerHullFacets)
}

func TestInsideConvexHull(t *testing.T) {
	square := [][]float64{{0, 0}, {1, 0}, {0, 1}, {1, 1}, {1, 1}}
	inside, err := geometry.InsideConvexHull(square, [][]float64{{0.5, 0.5}, {1.5, 0.5}, {1, 0.5}, {0, 0}, {-0.01, 0}})
	require.NoError(t, err)
	assert.Equal(t, []bool{true, false, true, true, false}, inside)

	par, err := geometry.InsideConvexHull(square, [][]float64{{0.5, 0.5}, {1.5, 0.5}, {1, 0.5}}, geometry.WithWorkers(2))
	require.NoError(t, err)
	assert.Equal(t, []bool{true, false, true}, par)

	_, err = geometry.InsideConvexHull(nil, [][]float64{{0}})
	assert.ErrorIs(t, err, geometry.ErrEmptyInput)

	_, err = geometry.InsideConvexHull(square, [][]float64{{0}})
	assert.ErrorIs(t, err, geometry.ErrDimensionMismatch)

	_, err = geometry.InsideConvexHull([][]float64{{0, 0}, {1, 1}}, [][]float64{{0.5, 0.5}})
	assert.ErrorIs(t, err, geometry.ErrRankDeficient)
}

func TestLocate_BatchMatchesSinglePoints(t *testing.T) {
	h := binaryHull(t)
	xs := geometry.Column([]float64{0.25, 2, 4.5, 8})

	facets, energies, err := geometry.Locate(xs, h)
	require.NoError(t, err)
	for i, x := range xs {
		f, e, err := geometry.Locate([][]float64{x}, h)
		require.NoError(t, err)
		assert.Equal(t, facets[i], f[0], "point %d", i)
		assert.InDelta(t, energies[i], e[0], 1e-12, "point %d", i)
	}

	facets, energies, err = geometry.Locate(nil, h)
	require.NoError(t, err)
	assert.Empty(t, facets)
	assert.Empty(t, energies)
}
