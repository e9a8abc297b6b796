package main

import (
	"errors"
	"fmt"
	"math"
	"strconv"

	"github.com/rs/zerolog"

	"github.com/katalvlaran/thermocore/casm"
)

var errNoEnergies = errors.New("no configuration has a formation energy")

// dataset is a query restricted to configurations with a calculated
// formation energy. index maps each row back to its query position.
type dataset struct {
	index        []int
	names        []string
	compositions [][]float64
	energies     []float64
	correlations [][]float64
}

func loadDataset(path string, withCorr bool, log zerolog.Logger) (dataset, error) {
	q, err := casm.ReadQueryFile(path)
	if err != nil {
		return dataset{}, err
	}
	energies, err := q.FormationEnergies()
	if err != nil {
		return dataset{}, fmt.Errorf("%s: %w", path, err)
	}
	keep := make([]int, 0, len(energies))
	for i, e := range energies {
		if !math.IsNaN(e) {
			keep = append(keep, i)
		}
	}
	if len(keep) == 0 {
		return dataset{}, fmt.Errorf("%s: %w", path, errNoEnergies)
	}
	if dropped := q.Len() - len(keep); dropped > 0 {
		log.Info().Str("query", path).Int("dropped", dropped).Msg("skipping configurations without formation energy")
	}
	if q, err = q.Subset(keep); err != nil {
		return dataset{}, fmt.Errorf("%s: %w", path, err)
	}

	ds := dataset{index: keep}
	if ds.energies, err = q.FormationEnergies(); err != nil {
		return dataset{}, fmt.Errorf("%s: %w", path, err)
	}
	if ds.compositions, err = q.Compositions(); err != nil {
		return dataset{}, fmt.Errorf("%s: %w", path, err)
	}
	if ds.names, err = q.Names(); err != nil {
		if !errors.Is(err, casm.ErrMissingKey) {
			return dataset{}, fmt.Errorf("%s: %w", path, err)
		}
		ds.names = make([]string, len(keep))
		for i, idx := range keep {
			ds.names[i] = strconv.Itoa(idx)
		}
	}
	if withCorr {
		if ds.correlations, err = q.Correlations(); err != nil {
			return dataset{}, fmt.Errorf("%s: %w", path, err)
		}
	}
	log.Debug().Str("query", path).Int("configurations", len(keep)).
		Int("axes", len(ds.compositions[0])).Msg("loaded query")

	return ds, nil
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', 6, 64)
}
