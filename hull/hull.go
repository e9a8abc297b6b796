// SPDX-License-Identifier: MIT

package hull

import (
	"fmt"
	"math"
	"sort"
)

// Provider builds a Hull from points in D-dimensional space.
// Builder is the default implementation; wrappers around other geometry
// tools only need to satisfy this method.
type Provider interface {
	Hull(points [][]float64) (*Hull, error)
}

// Hull is an immutable convex hull: points, vertex indices, facets and
// one outward-normal hyperplane equation per facet.
type Hull struct {
	dim       int
	points    [][]float64
	vertices  []int
	simplices [][]int
	equations [][]float64
}

// New validates and deep-copies hull data produced by an external provider.
//
// Requirements:
//   - at least one point; all points share a dimension D >= 2;
//   - every simplex has D indices in [0, len(points));
//   - len(equations) == len(simplices), each with D+1 finite entries;
//   - vertices (if non-nil) are in range. A nil vertex list is derived from
//     the simplices.
func New(points [][]float64, vertices []int, simplices [][]int, equations [][]float64) (*Hull, error) {
	pts, dim, err := copyPoints(points)
	if err != nil {
		return nil, fmt.Errorf("New: %w", err)
	}
	n := len(pts)
	if len(simplices) != len(equations) {
		return nil, fmt.Errorf("New: %d simplices, %d equations: %w", len(simplices), len(equations), ErrDimensionMismatch)
	}

	h := &Hull{dim: dim, points: pts}
	h.simplices = make([][]int, len(simplices))
	h.equations = make([][]float64, len(equations))
	var i int
	for i = range simplices {
		if len(simplices[i]) != dim {
			return nil, fmt.Errorf("New: simplex %d has %d indices, want %d: %w", i, len(simplices[i]), dim, ErrDimensionMismatch)
		}
		for _, idx := range simplices[i] {
			if idx < 0 || idx >= n {
				return nil, fmt.Errorf("New: simplex %d index %d: %w", i, idx, ErrIndexOutOfRange)
			}
		}
		if len(equations[i]) != dim+1 {
			return nil, fmt.Errorf("New: equation %d has %d entries, want %d: %w", i, len(equations[i]), dim+1, ErrDimensionMismatch)
		}
		for _, v := range equations[i] {
			if math.IsNaN(v) || math.IsInf(v, 0) {
				return nil, fmt.Errorf("New: equation %d: %w", i, ErrNaNInf)
			}
		}
		h.simplices[i] = append([]int(nil), simplices[i]...)
		h.equations[i] = append([]float64(nil), equations[i]...)
	}

	if vertices == nil {
		h.vertices = collectVertices(h.simplices)
	} else {
		for _, idx := range vertices {
			if idx < 0 || idx >= n {
				return nil, fmt.Errorf("New: vertex %d: %w", idx, ErrIndexOutOfRange)
			}
		}
		h.vertices = append([]int(nil), vertices...)
	}

	return h, nil
}

// copyPoints validates shape and finiteness, returning a deep copy and D.
func copyPoints(points [][]float64) ([][]float64, int, error) {
	if len(points) == 0 {
		return nil, 0, ErrEmptyInput
	}
	dim := len(points[0])
	if dim < 2 {
		return nil, 0, fmt.Errorf("point dimension %d < 2: %w", dim, ErrDimensionMismatch)
	}
	out := make([][]float64, len(points))
	for i, p := range points {
		if len(p) != dim {
			return nil, 0, fmt.Errorf("point %d has %d coordinates, want %d: %w", i, len(p), dim, ErrDimensionMismatch)
		}
		for _, v := range p {
			if math.IsNaN(v) || math.IsInf(v, 0) {
				return nil, 0, fmt.Errorf("point %d: %w", i, ErrNaNInf)
			}
		}
		out[i] = append([]float64(nil), p...)
	}

	return out, dim, nil
}

// collectVertices returns the sorted union of all simplex indices.
func collectVertices(simplices [][]int) []int {
	seen := make(map[int]struct{})
	for _, s := range simplices {
		for _, idx := range s {
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

// Dim returns the point dimension D (composition axes + 1).
func (h *Hull) Dim() int { return h.dim }

// CompositionDim returns D-1, the number of composition axes.
func (h *Hull) CompositionDim() int { return h.dim - 1 }

// NumPoints returns the number of input points.
func (h *Hull) NumPoints() int { return len(h.points) }

// NumFacets returns the number of facets (simplices).
func (h *Hull) NumFacets() int { return len(h.simplices) }

// Point returns a copy of point i, or nil when i is out of range.
func (h *Hull) Point(i int) []float64 {
	if i < 0 || i >= len(h.points) {
		return nil
	}

	return append([]float64(nil), h.points[i]...)
}

// Points returns a deep copy of all points.
func (h *Hull) Points() [][]float64 {
	out := make([][]float64, len(h.points))
	for i, p := range h.points {
		out[i] = append([]float64(nil), p...)
	}

	return out
}

// Vertices returns a copy of the vertex indices.
func (h *Hull) Vertices() []int { return append([]int(nil), h.vertices...) }

// Simplex returns a copy of facet i's point indices, or nil when out of range.
func (h *Hull) Simplex(i int) []int {
	if i < 0 || i >= len(h.simplices) {
		return nil
	}

	return append([]int(nil), h.simplices[i]...)
}

// Simplices returns a deep copy of all facets.
func (h *Hull) Simplices() [][]int {
	out := make([][]int, len(h.simplices))
	for i, s := range h.simplices {
		out[i] = append([]int(nil), s...)
	}

	return out
}

// Equation returns a copy of facet i's hyperplane, or nil when out of range.
func (h *Hull) Equation(i int) []float64 {
	if i < 0 || i >= len(h.equations) {
		return nil
	}

	return append([]float64(nil), h.equations[i]...)
}

// Equations returns a deep copy of all facet hyperplanes.
func (h *Hull) Equations() [][]float64 {
	out := make([][]float64, len(h.equations))
	for i, e := range h.equations {
		out[i] = append([]float64(nil), e...)
	}

	return out
}
