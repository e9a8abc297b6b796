// Package output encodes CLI results as json, yaml, cbor or a text table.
package output

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/fxamacker/cbor/v2"
	"gopkg.in/yaml.v3"
)

// ErrUnknownFormat is returned for a format Write does not support.
var ErrUnknownFormat = errors.New("output: unknown format")

// ErrNotTabular is returned by the text format for values without a table
// rendering.
var ErrNotTabular = errors.New("output: value has no text table")

// Tabular values can be printed by the text format.
type Tabular interface {
	Table() (header []string, rows [][]string)
}

// encMode gives byte-identical cbor for equal results.
var encMode cbor.EncMode

func init() {
	var err error
	encOpts := cbor.EncOptions{
		Sort:          cbor.SortCanonical,
		IndefLength:   cbor.IndefLengthForbidden,
		NilContainers: cbor.NilContainerAsNull,
	}
	encMode, err = encOpts.EncMode()
	if err != nil {
		panic(fmt.Sprintf("output: cbor encoder mode: %v", err))
	}
}

// Write encodes v to w in the given format.
func Write(w io.Writer, format string, v any) error {
	switch strings.ToLower(format) {
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	case "yaml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return err
		}
		return enc.Close()
	case "cbor":
		return encMode.NewEncoder(w).Encode(v)
	case "text":
		t, ok := v.(Tabular)
		if !ok {
			return fmt.Errorf("%T: %w", v, ErrNotTabular)
		}
		return writeTable(w, t)
	default:
		return fmt.Errorf("%q: %w", format, ErrUnknownFormat)
	}
}

func writeTable(w io.Writer, t Tabular) error {
	header, rows := t.Table()
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	if len(header) > 0 {
		fmt.Fprintln(tw, strings.Join(header, "\t"))
	}
	for _, row := range rows {
		fmt.Fprintln(tw, strings.Join(row, "\t"))
	}

	return tw.Flush()
}
