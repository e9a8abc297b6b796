package casm

import (
	"fmt"
	"math"
)

// DefaultZeroTolerance is the ZeroOut tolerance used by the CLI when none is
// configured.
const DefaultZeroTolerance = 1e-10

// PullECIs returns one ECI per cluster function, in file order; functions
// without an eci read as 0. CASM ECIs are not divided by multiplicity.
func PullECIs(b Basis) []float64 {
	var out []float64
	for _, o := range b.Orbits {
		for _, cf := range o.ClusterFunctions {
			if cf.ECI != nil {
				out = append(out, *cf.ECI)
			} else {
				out = append(out, 0)
			}
		}
	}

	return out
}

// PullMultiplicities returns the orbit multiplicity of every cluster
// function, aligned with PullECIs.
func PullMultiplicities(b Basis) []int {
	var out []int
	for _, o := range b.Orbits {
		for range o.ClusterFunctions {
			out = append(out, o.Mult)
		}
	}

	return out
}

// AppendECIs returns a deep copy of b with ecis written into the matching
// cluster functions.
//
// With indices == nil, ecis is dense: ecis[k] belongs to linear function
// index k. Otherwise ecis[i] belongs to linear function index indices[i].
// Only non-zero values are written; a cluster function that gets zero keeps
// whatever it had. Tolerance-based zeroing is left to ZeroOut.
func AppendECIs(ecis []float64, b Basis, indices []int) (Basis, error) {
	values := make(map[int]float64, len(ecis))
	if indices == nil {
		for i, v := range ecis {
			values[i] = v
		}
	} else {
		if len(indices) != len(ecis) {
			return Basis{}, fmt.Errorf("AppendECIs: %d ecis, %d indices: %w", len(ecis), len(indices), ErrLengthMismatch)
		}
		for i, idx := range indices {
			values[idx] = ecis[i]
		}
	}

	out := b.Clone()
	for i := range out.Orbits {
		cfs := out.Orbits[i].ClusterFunctions
		for j := range cfs {
			v := values[cfs[j].LinearFunctionIndex]
			if v != 0 {
				cfs[j].ECI = &v
			}
		}
	}

	return out, nil
}

// ZeroOut returns a copy of v with every |x| <= tol set to 0.
func ZeroOut(v []float64, tol float64) []float64 {
	out := make([]float64, len(v))
	for i, x := range v {
		if math.Abs(x) > tol {
			out[i] = x
		}
	}

	return out
}

// NonZeroMask reports, per entry, whether |x| > tol.
func NonZeroMask(v []float64, tol float64) []bool {
	mask := make([]bool, len(v))
	for i, x := range v {
		mask[i] = math.Abs(x) > tol
	}

	return mask
}

// UpscaleECIs scatters pruned values back to full length: the k-th true
// entry of mask receives pruned[k], every false entry is 0.
func UpscaleECIs(pruned []float64, mask []bool) ([]float64, error) {
	count := 0
	for _, m := range mask {
		if m {
			count++
		}
	}
	if count != len(pruned) {
		return nil, fmt.Errorf("UpscaleECIs: %d values, %d mask positions: %w", len(pruned), count, ErrLengthMismatch)
	}

	out := make([]float64, len(mask))
	k := 0
	for i, m := range mask {
		if m {
			out[i] = pruned[k]
			k++
		}
	}

	return out, nil
}
