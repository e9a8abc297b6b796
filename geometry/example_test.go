package geometry_test

import (
	"fmt"

	"github.com/katalvlaran/thermocore/geometry"
	"github.com/katalvlaran/thermocore/hull"
)

// ExampleLocate shows hull energies for a three-point binary system.
func ExampleLocate() {
	h, err := hull.FromCompositions(geometry.Column([]float64{0, 1, 2}), []float64{0, -1, 0})
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	_, energies, err := geometry.Locate(geometry.Column([]float64{0.5, 1, 1.5}), h)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	for _, e := range energies {
		fmt.Printf("%.2f\n", e)
	}
	// Output:
	// -0.50
	// -1.00
	// -0.50
}

// ExampleHullDistances builds the hull from the data itself.
func ExampleHullDistances() {
	comps := geometry.Column([]float64{0, 0.5, 1, 0.5})
	energies := []float64{0, -0.4, 0, -0.1}

	dist, err := geometry.HullDistances(comps, energies)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	for i, d := range dist {
		if d < 1e-9 {
			fmt.Printf("%d: on hull\n", i)
			continue
		}
		fmt.Printf("%d: %.2f above\n", i, d)
	}
	// Output:
	// 0: on hull
	// 1: on hull
	// 2: on hull
	// 3: 0.30 above
}
