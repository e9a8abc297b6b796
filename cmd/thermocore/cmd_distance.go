package main

import (
	"github.com/spf13/cobra"

	"github.com/katalvlaran/thermocore/geometry"
)

type distanceReport struct {
	Names     []string  `json:"names" yaml:"names"`
	Distances []float64 `json:"distances" yaml:"distances"`
}

func (r distanceReport) Table() ([]string, [][]string) {
	rows := make([][]string, len(r.Names))
	for i, n := range r.Names {
		rows[i] = []string{n, formatFloat(r.Distances[i])}
	}

	return []string{"NAME", "HULL_DISTANCE"}, rows
}

func distanceCmd(a *app) *cobra.Command {
	var reference string
	cmd := &cobra.Command{
		Use:   "distance QUERY.json",
		Short: "Energy above the lower convex hull of every configuration",
		Long: `Energy above the lower convex hull of every configuration.

By default the hull is built from the same query. With --reference the hull
comes from a second query, and every configuration of QUERY.json must lie
within its composition range.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ds, err := loadDataset(args[0], false, a.log)
			if err != nil {
				return err
			}
			opts := a.geometryOptions()
			if reference != "" {
				ref, err := loadDataset(reference, false, a.log)
				if err != nil {
					return err
				}
				h, err := geometry.SelfHull(ref.compositions, ref.energies, opts...)
				if err != nil {
					return err
				}
				opts = append(opts, geometry.WithHull(h))
			}
			dist, err := geometry.HullDistances(ds.compositions, ds.energies, opts...)
			if err != nil {
				return err
			}

			return a.write(cmd, distanceReport{Names: ds.names, Distances: dist})
		},
	}
	cmd.Flags().StringVar(&reference, "reference", "", "query whose hull the distances are measured against")

	return cmd
}
