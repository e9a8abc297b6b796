package casm

import (
	"encoding/json"
	"fmt"
	"io"
	"math"
	"os"
	"sort"
)

// Well-known CASM query properties.
const (
	KeyName            = "name"
	KeyComp            = "comp"
	KeyCorr            = "corr"
	KeyFormationEnergy = "formation_energy"
)

// Query is CASM query output regrouped by property: one column of values,
// in configuration order, per key of the first record.
type Query struct {
	n       int
	columns map[string][]any
}

// RegroupQuery turns per-configuration records into per-property columns.
// The keys of the first record define the columns; any later record that
// lacks one of them fails with ErrMissingKey. Extra keys in later records
// are ignored.
func RegroupQuery(records []map[string]any) (Query, error) {
	if len(records) == 0 {
		return Query{}, ErrEmptyQuery
	}
	q := Query{n: len(records), columns: make(map[string][]any, len(records[0]))}
	for key := range records[0] {
		q.columns[key] = make([]any, len(records))
	}
	for i, rec := range records {
		for key, col := range q.columns {
			v, ok := rec[key]
			if !ok {
				return Query{}, fmt.Errorf("record %d: %q: %w", i, key, ErrMissingKey)
			}
			col[i] = v
		}
	}

	return q, nil
}

// ReadQuery decodes a CASM query JSON array and regroups it.
func ReadQuery(r io.Reader) (Query, error) {
	var records []map[string]any
	if err := json.NewDecoder(r).Decode(&records); err != nil {
		return Query{}, fmt.Errorf("casm: decode query: %w", err)
	}

	return RegroupQuery(records)
}

// ReadQueryFile reads a CASM query JSON file.
func ReadQueryFile(path string) (Query, error) {
	f, err := os.Open(path)
	if err != nil {
		return Query{}, err
	}
	defer f.Close()

	q, err := ReadQuery(f)
	if err != nil {
		return Query{}, fmt.Errorf("%s: %w", path, err)
	}

	return q, nil
}

// Len returns the number of configurations.
func (q Query) Len() int { return q.n }

// Keys returns the property names, sorted.
func (q Query) Keys() []string {
	keys := make([]string, 0, len(q.columns))
	for k := range q.columns {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	return keys
}

// Column returns a copy of the raw decoded values of key.
func (q Query) Column(key string) ([]any, error) {
	col, ok := q.columns[key]
	if !ok {
		return nil, fmt.Errorf("%q: %w", key, ErrMissingKey)
	}

	return append([]any(nil), col...), nil
}

// Matrix returns one row per configuration, flattening each (possibly
// nested) numeric array. CASM writes comp as a column vector [[x1],[x2]],
// so every composition comes out as a flat row [x1, x2]; corr loses its
// redundant dimension the same way. A scalar becomes a one-element row.
func (q Query) Matrix(key string) ([][]float64, error) {
	col, err := q.Column(key)
	if err != nil {
		return nil, err
	}
	out := make([][]float64, len(col))
	for i, v := range col {
		row, err := flatten(v, nil)
		if err != nil {
			return nil, fmt.Errorf("%q record %d: %w", key, i, err)
		}
		out[i] = row
	}

	return out, nil
}

func flatten(v any, dst []float64) ([]float64, error) {
	switch t := v.(type) {
	case float64:
		return append(dst, t), nil
	case json.Number:
		f, err := t.Float64()
		if err != nil {
			return nil, fmt.Errorf("%v: %w", err, ErrNotNumeric)
		}

		return append(dst, f), nil
	case []any:
		var err error
		for _, e := range t {
			if dst, err = flatten(e, dst); err != nil {
				return nil, err
			}
		}

		return dst, nil
	default:
		return nil, fmt.Errorf("%T: %w", v, ErrNotNumeric)
	}
}

// Floats returns a scalar numeric property; JSON null becomes NaN so that
// configurations without a calculated value can be masked out later.
func (q Query) Floats(key string) ([]float64, error) {
	col, err := q.Column(key)
	if err != nil {
		return nil, err
	}
	out, err := LabelMissing(col)
	if err != nil {
		return nil, fmt.Errorf("%q: %w", key, err)
	}

	return out, nil
}

// Strings returns a string property.
func (q Query) Strings(key string) ([]string, error) {
	col, err := q.Column(key)
	if err != nil {
		return nil, err
	}
	out := make([]string, len(col))
	for i, v := range col {
		s, ok := v.(string)
		if !ok {
			return nil, fmt.Errorf("%q record %d: %T: %w", key, i, v, ErrNotString)
		}
		out[i] = s
	}

	return out, nil
}

// Compositions returns the comp property as an n×d matrix.
func (q Query) Compositions() ([][]float64, error) { return q.Matrix(KeyComp) }

// Correlations returns the corr property as an n×k matrix.
func (q Query) Correlations() ([][]float64, error) { return q.Matrix(KeyCorr) }

// FormationEnergies returns formation_energy, with NaN for missing values.
func (q Query) FormationEnergies() ([]float64, error) { return q.Floats(KeyFormationEnergy) }

// Names returns the configuration names.
func (q Query) Names() ([]string, error) { return q.Strings(KeyName) }

// LabelMissing converts decoded JSON scalars to floats, mapping null to NaN.
func LabelMissing(values []any) ([]float64, error) {
	out := make([]float64, len(values))
	for i, v := range values {
		switch t := v.(type) {
		case nil:
			out[i] = math.NaN()
		case float64:
			out[i] = t
		case int:
			out[i] = float64(t)
		case json.Number:
			f, err := t.Float64()
			if err != nil {
				return nil, fmt.Errorf("value %d: %v: %w", i, err, ErrNotNumeric)
			}
			out[i] = f
		default:
			return nil, fmt.Errorf("value %d: %T: %w", i, v, ErrNotNumeric)
		}
	}

	return out, nil
}

// Subset returns a Query holding only the given configurations, in the
// given order. An index outside [0, Len()) fails with ErrIndexOutOfRange.
func (q Query) Subset(indices []int) (Query, error) {
	for _, i := range indices {
		if i < 0 || i >= q.n {
			return Query{}, fmt.Errorf("Subset: index %d of %d: %w", i, q.n, ErrIndexOutOfRange)
		}
	}
	out := Query{n: len(indices), columns: make(map[string][]any, len(q.columns))}
	for key, col := range q.columns {
		sub := make([]any, len(indices))
		for j, i := range indices {
			sub[j] = col[i]
		}
		out.columns[key] = sub
	}

	return out, nil
}
