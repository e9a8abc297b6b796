package main

import (
	"strconv"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/thermocore/geometry"
)

type correlationReport struct {
	Names        []string    `json:"names" yaml:"names"`
	Correlations [][]float64 `json:"correlations" yaml:"correlations"`
}

func (r correlationReport) Table() ([]string, [][]string) {
	header := []string{"NAME"}
	if len(r.Correlations) > 0 {
		for j := range r.Correlations[0] {
			header = append(header, "C"+strconv.Itoa(j))
		}
	}
	rows := make([][]string, len(r.Names))
	for i, n := range r.Names {
		row := []string{n}
		for _, v := range r.Correlations[i] {
			row = append(row, formatFloat(v))
		}
		rows[i] = row
	}

	return header, rows
}

func correlationsCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "correlations QUERY.json",
		Short: "Project correlations onto hull-distance correlations",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ds, err := loadDataset(args[0], true, a.log)
			if err != nil {
				return err
			}
			out, err := geometry.HullDistanceCorrelations(ds.correlations, ds.compositions, ds.energies, a.geometryOptions()...)
			if err != nil {
				return err
			}

			return a.write(cmd, correlationReport{Names: ds.names, Correlations: out})
		},
	}
}
