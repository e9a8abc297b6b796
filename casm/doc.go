// Package casm reads and writes the JSON artifacts of the CASM
// cluster-expansion code: query output (one record per configuration),
// basis.json and eci.json.
//
// Query data is regrouped by property so that compositions, correlations
// and formation energies come out as plain matrices and vectors ready for
// the geometry package. Basis data keeps every field it does not model, so
// a basis read, annotated with ECIs and written back is still valid input
// for CASM.
package casm
