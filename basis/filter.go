package basis

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/katalvlaran/thermocore/casm"
)

// Verdict is the outcome of one filter on one orbit.
type Verdict int

const (
	// NotApplicable means the filter has no opinion on the orbit.
	NotApplicable Verdict = iota
	// Accept keeps the orbit, unless another filter rejects it.
	Accept
	// Reject drops the orbit.
	Reject
)

func (v Verdict) String() string {
	switch v {
	case NotApplicable:
		return "not-applicable"
	case Accept:
		return "accept"
	case Reject:
		return "reject"
	default:
		return "Verdict(" + strconv.Itoa(int(v)) + ")"
	}
}

// OrbitFilter judges a single orbit.
type OrbitFilter func(o casm.Orbit) Verdict

func verdict(ok bool) Verdict {
	if ok {
		return Accept
	}

	return Reject
}

// MaxLength accepts orbits of the given cluster size whose prototype
// max_length is at most max, and rejects the others of that size.
func MaxLength(size int, max float64) OrbitFilter {
	return func(o casm.Orbit) Verdict {
		if o.Prototype.Size() != size {
			return NotApplicable
		}

		return verdict(o.Prototype.MaxLength <= max)
	}
}

// MinLength accepts orbits of the given cluster size whose prototype
// min_length is at least min, and rejects the others of that size.
func MinLength(size int, min float64) OrbitFilter {
	return func(o casm.Orbit) Verdict {
		if o.Prototype.Size() != size {
			return NotApplicable
		}

		return verdict(o.Prototype.MinLength >= min)
	}
}

// ParseLengthFilter parses "max:SIZE:LENGTH" or "min:SIZE:LENGTH", e.g.
// "max:2:3.5" for pairs no longer than 3.5.
func ParseLengthFilter(expr string) (OrbitFilter, error) {
	parts := strings.Split(strings.TrimSpace(expr), ":")
	if len(parts) != 3 {
		return nil, fmt.Errorf("%q: want kind:size:length: %w", expr, ErrInvalidFilter)
	}
	size, err := strconv.Atoi(parts[1])
	if err != nil || size < 0 {
		return nil, fmt.Errorf("%q: bad cluster size: %w", expr, ErrInvalidFilter)
	}
	length, err := strconv.ParseFloat(parts[2], 64)
	if err != nil {
		return nil, fmt.Errorf("%q: bad length: %w", expr, ErrInvalidFilter)
	}

	switch strings.ToLower(parts[0]) {
	case "max":
		return MaxLength(size, length), nil
	case "min":
		return MinLength(size, length), nil
	default:
		return nil, fmt.Errorf("%q: unknown kind %q: %w", expr, parts[0], ErrInvalidFilter)
	}
}
