// Package hull provides the immutable convex-hull value consumed by the
// geometry package, and a default provider that builds one.
//
// A Hull owns four read-only collections over a point set in D dimensions
// (composition axes followed by the energy axis):
//
//   - Points: the input coordinates, deep-copied at construction.
//   - Vertices: sorted indices of points that are hull vertices.
//   - Simplices: facets, each D point indices.
//   - Equations: one row [n_0 … n_{D-1}, offset] per facet, with n the unit
//     outward normal, so n·x + offset is zero on the facet and negative
//     inside the hull.
//
// Hulls produced by any external tool can be wrapped with New. Builder is an
// incremental beneath-beyond implementation that yields a simplicial hull:
//
//	h, err := hull.FromCompositions(comps, energies)
//	if err != nil { … }
//	fmt.Println(h.NumFacets(), h.Vertices())
//
// A Hull is never mutated after construction and is safe for concurrent use.
package hull
