// Package basis selects cluster basis functions from a CASM basis set by
// filtering whole orbits.
//
// An OrbitFilter looks at one orbit and returns a three-way Verdict. Filters
// that do not apply to an orbit (a pair filter looking at a triplet, say)
// return NotApplicable and take no part in the decision, so filters for
// different cluster sizes can be combined freely:
//
//	idx := basis.Select(b,
//		basis.MaxLength(2, 3.0),
//		basis.MaxLength(3, 3.5),
//	)
//
// Select returns linear function indices, ready for casm.AppendECIs.
package basis
