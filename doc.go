// Package thermocore is a toolkit for convex-hull analysis of formation
// energies in multicomponent alloys.
//
// 🚀 What is in it?
//
//   - Lower hull: which hull facets face down the energy axis
//   - Locator: the covering lower facet and hull energy of any composition
//   - Hull distance: energy above the hull of every configuration
//   - Correlation projection: correlations that predict hull distance
//   - CASM I/O: query regrouping, basis.json / eci.json with ECI append
//   - Basis selection: orbit length filters for cluster functions
//
// ✨ Why thermocore?
//
//   - Deterministic – tie-breaks and facet order follow point indices
//   - Pluggable hull – any Qhull-style provider behind hull.Provider
//   - Pure Go – gonum for LP and determinants, no cgo
//
// Under the hood, everything is organized under these subpackages:
//
//	matrix/          — dense matrices, partial-pivot LU, Solve, Inverse, Det
//	hull/            — immutable Hull value, Provider, beneath-beyond Builder
//	geometry/        — LowerHull, Locate, HullDistances, correlations, Analyzer
//	casm/            — CASM query, basis and ECI files
//	basis/           — orbit-filter basis function selection
//	cmd/thermocore/  — the command-line front end
//
// Quick example:
//
//	h, _ := hull.FromCompositions(comps, energies)
//	dist, _ := geometry.HullDistances(comps, energies, geometry.WithHull(h))
package thermocore
