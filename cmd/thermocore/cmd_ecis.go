package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/thermocore/basis"
	"github.com/katalvlaran/thermocore/casm"
)

func readECIs(path string) ([]float64, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var ecis []float64
	if err = json.Unmarshal(data, &ecis); err != nil {
		return nil, fmt.Errorf("%s: want a JSON array of numbers: %w", path, err)
	}

	return ecis, nil
}

func ecisCmd(a *app) *cobra.Command {
	var (
		basisPath string
		ecisPath  string
		outPath   string
		filters   []string
	)
	cmd := &cobra.Command{
		Use:   "ecis",
		Short: "Write fitted ECIs into a CASM basis.json",
		Long: `Write fitted ECIs into a CASM basis.json, producing an eci.json.

Without --filter the ECI vector is dense, one value per basis function.
With filters, ECIs belong to the selected basis functions in order, for
example --filter max:2:3.0 --filter max:3:3.5 keeps pairs up to 3.0 and
triplets up to 3.5. Values within zero_tolerance of 0 are not written.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			b, err := casm.ReadBasisFile(basisPath)
			if err != nil {
				return err
			}
			ecis, err := readECIs(ecisPath)
			if err != nil {
				return err
			}
			ecis = casm.ZeroOut(ecis, a.cfg.ZeroTolerance)

			var indices []int
			if len(filters) > 0 {
				fs := make([]basis.OrbitFilter, len(filters))
				for i, expr := range filters {
					if fs[i], err = basis.ParseLengthFilter(expr); err != nil {
						return err
					}
				}
				indices = basis.Select(b, fs...)
				a.log.Debug().Ints("selected", indices).Msg("basis functions selected")
			}
			out, err := casm.AppendECIs(ecis, b, indices)
			if err != nil {
				return err
			}

			nonZero := 0
			for _, m := range casm.NonZeroMask(ecis, 0) {
				if m {
					nonZero++
				}
			}
			a.log.Info().Int("ecis", len(ecis)).Int("non_zero", nonZero).Msg("ecis appended")

			if outPath == "" {
				return casm.WriteBasis(cmd.OutOrStdout(), out)
			}

			return casm.WriteBasisFile(outPath, out)
		},
	}
	f := cmd.Flags()
	f.StringVar(&basisPath, "basis", "", "CASM basis.json")
	f.StringVar(&ecisPath, "ecis", "", "JSON array of ECI values")
	f.StringVar(&outPath, "out", "", "output eci.json (default stdout)")
	f.StringArrayVar(&filters, "filter", nil, "orbit length filter kind:size:length, repeatable")
	_ = cmd.MarkFlagRequired("basis")
	_ = cmd.MarkFlagRequired("ecis")

	return cmd
}
