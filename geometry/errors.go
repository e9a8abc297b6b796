// SPDX-License-Identifier: MIT

package geometry

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Sentinel errors. Match with errors.Is; failures that name offending rows
// or facets are wrapped in *IndexError.
var (
	ErrNilHull           = errors.New("geometry: nil hull")
	ErrEmptyInput        = errors.New("geometry: empty input")
	ErrDimensionMismatch = errors.New("geometry: dimension mismatch")
	ErrIndexOutOfRange   = errors.New("geometry: facet index out of range")
	ErrNoLowerHullFacets = errors.New("geometry: no lower hull facets found")
	ErrVerticalFacet     = errors.New("geometry: vertical hull facet encountered")
	ErrOutOfBounds       = errors.New("geometry: point outside hull composition bounds")
	ErrDegenerateSimplex = errors.New("geometry: degenerate simplex")
	ErrRankDeficient     = errors.New("geometry: hull points do not span composition space")
)

// IndexError reports the facet or point indices that caused Err.
type IndexError struct {
	Op      string
	Indices []int
	Err     error
}

func (e *IndexError) Error() string {
	parts := make([]string, len(e.Indices))
	for i, idx := range e.Indices {
		parts[i] = strconv.Itoa(idx)
	}

	return fmt.Sprintf("%s: %v: index %s", e.Op, e.Err, strings.Join(parts, ","))
}

func (e *IndexError) Unwrap() error { return e.Err }

func geometryErrorf(op string, err error) error {
	return fmt.Errorf("%s: %w", op, err)
}
