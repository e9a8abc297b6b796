// Package geometry analyzes energy–composition data against the lower convex
// hull: which configurations are stable, what the hull energy is at any
// composition, how far each configuration sits above the hull, and the
// correlation vectors that predict that distance directly.
//
// Points live in (composition, energy) space with the energy axis last. The
// hull comes from package hull; geometry never mutates it.
//
// Facet selection relies on the outward-normal convention of hull.Hull
// equations. Lower facets (normal pointing down in energy) become affine
// maps e = row·[x; 1]. Because the lower envelope is convex, it equals the
// pointwise maximum of these maps over the composition domain, so the
// covering facet of a query is the argmax of all rows evaluated there. Ties
// resolve to the lowest facet position.
//
// Entry points:
//
//   - LowerHull, FacetEnergyEquations
//   - InsideConvexHull, Locate, LowerHullEnergies
//   - HullDistances, BarycentricCoordinates, HullDistanceCorrelations
//   - Analyzer, which caches the lower hull and its equations for one Hull
//
// All functions are pure. WithWorkers parallelizes per-row work without
// changing results.
package geometry
