// SPDX-License-Identifier: MIT

package hull

import "math"

// DefaultEpsilon is the relative visibility tolerance of Builder. The
// absolute tolerance is DefaultEpsilon × max(1, largest coordinate extent).
const DefaultEpsilon = 1e-10

const panicEpsilonInvalid = "hull: WithEpsilon: eps must be finite, non-negative"

// Option configures a Builder.
// Constructors panic only on nonsensical values (programmer error).
type Option func(*Builder)

// WithEpsilon overrides the relative visibility tolerance.
// Panics if eps is negative, NaN or Inf.
func WithEpsilon(eps float64) Option {
	if eps < 0 || math.IsNaN(eps) || math.IsInf(eps, 0) {
		panic(panicEpsilonInvalid)
	}

	return func(b *Builder) { b.eps = eps }
}
