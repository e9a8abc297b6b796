// SPDX-License-Identifier: MIT

package hull

import (
	"fmt"
	"math"
	"sort"
	"strconv"
	"strings"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// Builder is the default Provider: an incremental beneath-beyond convex hull
// in any dimension D >= 2, producing a simplicial facet list.
//
// Implementation:
//   - Stage 1: pick D+1 affinely independent points (min first coordinate,
//     the point farthest from it, then greedily the largest Gram–Schmidt
//     residual) and emit the D facets of that simplex.
//   - Stage 2: insert the remaining points in index order. Facets whose
//     signed distance to the point exceeds eps are visible; ridges owned by
//     exactly one visible facet form the horizon and are coned to the point.
//   - Stage 3: collect live facets; vertices are the indices they touch.
//
// Determinism:
//   - Insertion order, ridge order and tie-breaks follow point indices.
//
// Complexity:
//   - Time O(n·F·D³) with F live facets; Space O(F·D).
//
// Notes:
//   - Points within eps of a facet plane are not inserted, so they are not
//     vertices.
type Builder struct {
	eps float64
}

// compile-time check
var _ Provider = (*Builder)(nil)

// NewBuilder returns a Builder with DefaultEpsilon and the given options.
func NewBuilder(opts ...Option) *Builder {
	b := &Builder{eps: DefaultEpsilon}
	for _, opt := range opts {
		opt(b)
	}

	return b
}

// Build is shorthand for NewBuilder(opts...).Hull(points).
func Build(points [][]float64, opts ...Option) (*Hull, error) {
	return NewBuilder(opts...).Hull(points)
}

// JoinEnergies appends each energy to its composition row, producing the
// (composition, energy) points a Provider consumes. Inputs are not retained.
func JoinEnergies(compositions [][]float64, energies []float64) ([][]float64, error) {
	if len(compositions) == 0 {
		return nil, ErrEmptyInput
	}
	if len(compositions) != len(energies) {
		return nil, fmt.Errorf("%d compositions, %d energies: %w", len(compositions), len(energies), ErrDimensionMismatch)
	}
	points := make([][]float64, len(compositions))
	for i, c := range compositions {
		p := make([]float64, len(c)+1)
		copy(p, c)
		p[len(c)] = energies[i]
		points[i] = p
	}

	return points, nil
}

// FromCompositions builds the full hull of the (composition, energy) points.
func FromCompositions(compositions [][]float64, energies []float64, opts ...Option) (*Hull, error) {
	points, err := JoinEnergies(compositions, energies)
	if err != nil {
		return nil, fmt.Errorf("FromCompositions: %w", err)
	}
	h, err := Build(points, opts...)
	if err != nil {
		return nil, fmt.Errorf("FromCompositions: %w", err)
	}

	return h, nil
}

type facet struct {
	verts  []int // sorted point indices
	normal []float64
	offset float64
	dead   bool
}

func (f *facet) distance(p []float64) float64 {
	return floats.Dot(f.normal, p) + f.offset
}

// Hull implements Provider.
func (b *Builder) Hull(points [][]float64) (*Hull, error) {
	pts, dim, err := copyPoints(points)
	if err != nil {
		return nil, fmt.Errorf("Build: %w", err)
	}
	if len(pts) < dim+1 {
		return nil, fmt.Errorf("Build: %d points in %d dimensions: %w", len(pts), dim, ErrDegenerateInput)
	}
	eps := b.eps * math.Max(1, largestExtent(pts))

	simplex, err := initialSimplex(pts, eps)
	if err != nil {
		return nil, fmt.Errorf("Build: %w", err)
	}

	interior := make([]float64, dim)
	for _, idx := range simplex {
		floats.Add(interior, pts[idx])
	}
	floats.Scale(1/float64(len(simplex)), interior)

	facets := make([]*facet, 0, dim+1)
	var f *facet
	for k := range simplex {
		verts := make([]int, 0, dim)
		verts = append(verts, simplex[:k]...)
		verts = append(verts, simplex[k+1:]...)
		sort.Ints(verts)
		if f, err = newFacet(pts, verts, interior); err != nil {
			return nil, fmt.Errorf("Build: %w", err)
		}
		facets = append(facets, f)
	}

	inSimplex := make(map[int]bool, len(simplex))
	for _, idx := range simplex {
		inSimplex[idx] = true
	}

	var (
		visible []*facet
		order   [][]int
		counts  map[string]int
	)
	for p := range pts {
		if inSimplex[p] {
			continue
		}
		visible = visible[:0]
		for _, f = range facets {
			if f.distance(pts[p]) > eps {
				visible = append(visible, f)
			}
		}
		if len(visible) == 0 {
			continue
		}

		// Horizon: ridges seen exactly once among visible facets.
		order = order[:0]
		counts = make(map[string]int)
		for _, f = range visible {
			f.dead = true
			for j := range f.verts {
				ridge := make([]int, 0, dim-1)
				ridge = append(ridge, f.verts[:j]...)
				ridge = append(ridge, f.verts[j+1:]...)
				key := ridgeKey(ridge)
				if _, ok := counts[key]; !ok {
					order = append(order, ridge)
				}
				counts[key]++
			}
		}

		live := facets[:0]
		for _, f = range facets {
			if !f.dead {
				live = append(live, f)
			}
		}
		facets = live

		for _, ridge := range order {
			if counts[ridgeKey(ridge)] != 1 {
				continue
			}
			verts := append(append([]int(nil), ridge...), p)
			sort.Ints(verts)
			if f, err = newFacet(pts, verts, interior); err != nil {
				return nil, fmt.Errorf("Build: point %d: %w", p, err)
			}
			facets = append(facets, f)
		}
	}

	h := &Hull{dim: dim, points: pts}
	h.simplices = make([][]int, len(facets))
	h.equations = make([][]float64, len(facets))
	for i, f := range facets {
		h.simplices[i] = f.verts
		eq := make([]float64, dim+1)
		copy(eq, f.normal)
		eq[dim] = f.offset
		h.equations[i] = eq
	}
	h.vertices = collectVertices(h.simplices)

	return h, nil
}

// largestExtent returns max over axes of (max - min).
func largestExtent(pts [][]float64) float64 {
	dim := len(pts[0])
	extent := 0.0
	col := make([]float64, len(pts))
	for j := 0; j < dim; j++ {
		for i, p := range pts {
			col[i] = p[j]
		}
		extent = math.Max(extent, floats.Max(col)-floats.Min(col))
	}

	return extent
}

// initialSimplex selects D+1 affinely independent point indices.
func initialSimplex(pts [][]float64, eps float64) ([]int, error) {
	dim := len(pts[0])
	i0 := 0
	for i := range pts {
		if pts[i][0] < pts[i0][0] {
			i0 = i
		}
	}

	simplex := []int{i0}
	used := map[int]bool{i0: true}
	basis := make([][]float64, 0, dim)
	for len(simplex) < dim+1 {
		best, bestNorm := -1, 0.0
		var bestVec []float64
		for i := range pts {
			if used[i] {
				continue
			}
			r := make([]float64, dim)
			floats.SubTo(r, pts[i], pts[i0])
			for _, e := range basis {
				floats.AddScaled(r, -floats.Dot(r, e), e)
			}
			if norm := floats.Norm(r, 2); norm > bestNorm {
				best, bestNorm, bestVec = i, norm, r
			}
		}
		if best < 0 || bestNorm <= eps {
			return nil, ErrDegenerateInput
		}
		floats.Scale(1/bestNorm, bestVec)
		basis = append(basis, bestVec)
		simplex = append(simplex, best)
		used[best] = true
	}

	return simplex, nil
}

// newFacet computes the unit outward normal of the hyperplane through verts.
// n_k = (-1)^k det(E without column k), E the (D-1)×D edge matrix; the sign
// is flipped so that the interior point evaluates negative.
func newFacet(pts [][]float64, verts []int, interior []float64) (*facet, error) {
	dim := len(interior)
	q0 := pts[verts[0]]
	edges := make([][]float64, dim-1)
	for j := 1; j < dim; j++ {
		e := make([]float64, dim)
		floats.SubTo(e, pts[verts[j]], q0)
		edges[j-1] = e
	}

	normal := make([]float64, dim)
	minor := mat.NewDense(dim-1, dim-1, nil)
	var r, c, cc int
	for k := 0; k < dim; k++ {
		for r = 0; r < dim-1; r++ {
			cc = 0
			for c = 0; c < dim; c++ {
				if c == k {
					continue
				}
				minor.Set(r, cc, edges[r][c])
				cc++
			}
		}
		d := mat.Det(minor)
		if k%2 == 1 {
			d = -d
		}
		normal[k] = d
	}

	norm := floats.Norm(normal, 2)
	if norm == 0 || math.IsNaN(norm) {
		return nil, fmt.Errorf("facet %v: %w", verts, ErrDegenerateInput)
	}
	floats.Scale(1/norm, normal)
	offset := -floats.Dot(normal, q0)
	if floats.Dot(normal, interior)+offset > 0 {
		floats.Scale(-1, normal)
		offset = -offset
	}

	return &facet{verts: verts, normal: normal, offset: offset}, nil
}

func ridgeKey(ridge []int) string {
	var sb strings.Builder
	for i, idx := range ridge {
		if i > 0 {
			sb.WriteByte(',')
		}
		sb.WriteString(strconv.Itoa(idx))
	}

	return sb.String()
}
