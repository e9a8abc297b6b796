// SPDX-License-Identifier: MIT

package geometry

import (
	"math"

	"github.com/katalvlaran/thermocore/hull"
)

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultTolerance separates lower from upper facets and flags vertical
	// facets (|energy coefficient| <= tolerance).
	DefaultTolerance = 1e-14

	// DefaultLPTolerance is passed to the simplex solver of InsideConvexHull.
	DefaultLPTolerance = 1e-10

	// DefaultWorkers keeps every operation synchronous.
	DefaultWorkers = 1
)

// ---------- Internal panic messages (no magic strings) ----------

const (
	panicToleranceInvalid   = "geometry: WithTolerance: tol must be finite, non-negative"
	panicLPToleranceInvalid = "geometry: WithLPTolerance: tol must be finite, positive"
	panicWorkersInvalid     = "geometry: WithWorkers: n must be >= 1"
	panicHullNil            = "geometry: WithHull: hull must not be nil"
	panicProviderNil        = "geometry: WithProvider: provider must not be nil"
)

// Option mutates internal options.
// Constructors panic only on nonsensical values (programmer error).
type Option func(*options)

type options struct {
	tolerance   float64
	lpTolerance float64
	workers     int
	facets      []int // explicit lower-hull facet indices; nil = derive
	hull        *hull.Hull
	provider    hull.Provider
}

// WithTolerance sets the lower-hull / vertical-facet tolerance.
func WithTolerance(tol float64) Option {
	if tol < 0 || math.IsNaN(tol) || math.IsInf(tol, 0) {
		panic(panicToleranceInvalid)
	}

	return func(o *options) { o.tolerance = tol }
}

// WithLPTolerance sets the reduced-cost tolerance of the feasibility LP.
func WithLPTolerance(tol float64) Option {
	if tol <= 0 || math.IsNaN(tol) || math.IsInf(tol, 0) {
		panic(panicLPToleranceInvalid)
	}

	return func(o *options) { o.lpTolerance = tol }
}

// WithWorkers fans row-wise work out over n goroutines.
func WithWorkers(n int) Option {
	if n < 1 {
		panic(panicWorkersInvalid)
	}

	return func(o *options) { o.workers = n }
}

// WithLowerHullFacets supplies already known lower-hull facet indices so
// they are not recomputed. The slice is copied.
func WithLowerHullFacets(facets []int) Option {
	cp := append([]int{}, facets...)

	return func(o *options) { o.facets = cp }
}

// WithHull supplies the hull for HullDistances and HullDistanceCorrelations.
// Without it, those operations build a hull from their own input.
func WithHull(h *hull.Hull) Option {
	if h == nil {
		panic(panicHullNil)
	}

	return func(o *options) { o.hull = h }
}

// WithProvider selects the Provider used when a hull has to be built.
// Defaults to hull.NewBuilder().
func WithProvider(p hull.Provider) Option {
	if p == nil {
		panic(panicProviderNil)
	}

	return func(o *options) { o.provider = p }
}

func gatherOptions(opts ...Option) options {
	o := options{
		tolerance:   DefaultTolerance,
		lpTolerance: DefaultLPTolerance,
		workers:     DefaultWorkers,
	}
	for _, opt := range opts {
		opt(&o)
	}
	if o.provider == nil {
		o.provider = hull.NewBuilder()
	}

	return o
}
