package main

import (
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/thermocore/geometry"
)

type hullVertex struct {
	Index       int       `json:"index" yaml:"index"`
	Name        string    `json:"name" yaml:"name"`
	Composition []float64 `json:"composition" yaml:"composition"`
	Energy      float64   `json:"energy" yaml:"energy"`
}

type hullFacet struct {
	Vertices []int     `json:"vertices" yaml:"vertices"`
	Equation []float64 `json:"equation" yaml:"equation"`
}

type hullReport struct {
	Vertices []hullVertex `json:"vertices" yaml:"vertices"`
	Facets   []hullFacet  `json:"facets" yaml:"facets"`
}

func (r hullReport) Table() ([]string, [][]string) {
	rows := make([][]string, len(r.Vertices))
	for i, v := range r.Vertices {
		comp := make([]string, len(v.Composition))
		for j, x := range v.Composition {
			comp[j] = strconv.FormatFloat(x, 'g', -1, 64)
		}
		rows[i] = []string{strconv.Itoa(v.Index), v.Name, strings.Join(comp, ","), formatFloat(v.Energy)}
	}

	return []string{"INDEX", "NAME", "COMP", "ENERGY"}, rows
}

func hullCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "hull QUERY.json",
		Short: "List the lower convex hull vertices and facets of a CASM query",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ds, err := loadDataset(args[0], false, a.log)
			if err != nil {
				return err
			}
			opts := a.geometryOptions()
			h, err := geometry.SelfHull(ds.compositions, ds.energies, opts...)
			if err != nil {
				return err
			}
			an, err := geometry.NewAnalyzer(h, opts...)
			if err != nil {
				return err
			}
			lower := an.LowerHull()
			a.log.Info().Int("hull_vertices", len(h.Vertices())).
				Int("lower_vertices", len(lower.Vertices)).
				Int("lower_facets", len(lower.Facets)).Msg("hull built")

			var report hullReport
			for _, v := range lower.Vertices {
				report.Vertices = append(report.Vertices, hullVertex{
					Index:       ds.index[v],
					Name:        ds.names[v],
					Composition: ds.compositions[v],
					Energy:      ds.energies[v],
				})
			}
			eqs := an.Equations()
			for i, f := range lower.Facets {
				simplex := h.Simplex(f)
				verts := make([]int, len(simplex))
				for j, p := range simplex {
					verts[j] = ds.index[p]
				}
				report.Facets = append(report.Facets, hullFacet{Vertices: verts, Equation: eqs[i]})
			}

			return a.write(cmd, report)
		},
	}
}
