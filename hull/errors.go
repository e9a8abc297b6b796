// SPDX-License-Identifier: MIT

package hull

import "errors"

// Sentinel errors returned by New, Build and FromCompositions.
// Callers should match them with errors.Is; messages carry the "hull:" prefix.
var (
	// ErrEmptyInput is returned when no points (or no compositions) are given.
	ErrEmptyInput = errors.New("hull: empty input")

	// ErrDimensionMismatch signals ragged points, a dimension below 2, or a
	// simplex/equation whose length does not match the point dimension.
	ErrDimensionMismatch = errors.New("hull: dimension mismatch")

	// ErrDegenerateInput is returned when the points do not span a
	// full-dimensional region (collinear in 2D, coplanar in 3D, too few points).
	ErrDegenerateInput = errors.New("hull: points are not full-dimensional")

	// ErrNaNInf signals a non-finite coordinate or equation coefficient.
	ErrNaNInf = errors.New("hull: NaN or Inf encountered")

	// ErrIndexOutOfRange signals a vertex or simplex index outside the point set.
	ErrIndexOutOfRange = errors.New("hull: index out of range")
)
