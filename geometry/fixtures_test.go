package geometry_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/thermocore/hull"
)

// binaryPoints is a 25-point (composition, energy) set. Its lower hull runs
// through points 24, 5, 2 and 16; the x = 9 edge between 7 and 16 is vertical.
var binaryPoints = [][]float64{
	{5, 5}, {1, 3}, {5, 0}, {1, 8}, {7, 7},
	{1, 1}, {3, 8}, {9, 7}, {6, 6}, {4, 3},
	{3, 9}, {5, 9}, {4, 2}, {2, 9}, {7, 3},
	{8, 4}, {9, 2}, {5, 7}, {6, 4}, {8, 8},
	{6, 5}, {6, 9}, {5, 2}, {8, 3}, {0, 8},
}

func binaryHull(t *testing.T) *hull.Hull {
	t.Helper()
	h, err := hull.Build(binaryPoints)
	require.NoError(t, err)

	return h
}

// facetIndex returns the position of the facet with exactly these (sorted) vertices.
func facetIndex(t *testing.T, h *hull.Hull, verts ...int) int {
	t.Helper()
	for i, s := range h.Simplices() {
		if len(s) != len(verts) {
			continue
		}
		match := true
		for j := range s {
			if s[j] != verts[j] {
				match = false
				break
			}
		}
		if match {
			return i
		}
	}
	t.Fatalf("facet %v not found in %v", verts, h.Simplices())

	return -1
}

func split(points [][]float64) ([][]float64, []float64) {
	comps := make([][]float64, len(points))
	energies := make([]float64, len(points))
	for i, p := range points {
		comps[i] = append([]float64(nil), p[:len(p)-1]...)
		energies[i] = p[len(p)-1]
	}

	return comps, energies
}

// triangleHull is hand-built with unit outward normals: lower facets
// {0,1} (e = -x) and {1,2} (e = x - 2), upper facet {0,2} (e = 0).
func triangleHull(t *testing.T) *hull.Hull {
	t.Helper()
	s := 1 / math.Sqrt2
	h, err := hull.New(
		[][]float64{{0, 0}, {1, -1}, {2, 0}},
		[]int{0, 1, 2},
		[][]int{{0, 1}, {1, 2}, {0, 2}},
		[][]float64{{-s, -s, 0}, {s, -s, -math.Sqrt2}, {0, 1, 0}},
	)
	require.NoError(t, err)

	return h
}
