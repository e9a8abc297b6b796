package basis

import "github.com/katalvlaran/thermocore/casm"

// Select returns, in file order, the linear function indices of every
// cluster function whose orbit is rejected by none of the filters. With no
// filters every index is returned.
func Select(b casm.Basis, filters ...OrbitFilter) []int {
	selected := make([]int, 0)
	for _, o := range b.Orbits {
		if rejected(o, filters) {
			continue
		}
		for _, cf := range o.ClusterFunctions {
			selected = append(selected, cf.LinearFunctionIndex)
		}
	}

	return selected
}

func rejected(o casm.Orbit, filters []OrbitFilter) bool {
	for _, f := range filters {
		if f(o) == Reject {
			return true
		}
	}

	return false
}
