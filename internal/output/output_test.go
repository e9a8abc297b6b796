package output_test

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/fxamacker/cbor/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/thermocore/internal/output"
)

type result struct {
	Names     []string  `json:"names" yaml:"names"`
	Distances []float64 `json:"distances" yaml:"distances"`
}

func (r result) Table() ([]string, [][]string) {
	rows := make([][]string, len(r.Names))
	for i, n := range r.Names {
		rows[i] = []string{n, "x"}
	}

	return []string{"NAME", "VALUE"}, rows
}

var sample = result{Names: []string{"SCEL1", "SCEL10_long"}, Distances: []float64{0, 0.25}}

func TestWrite_JSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, output.Write(&buf, "json", sample))

	var got result
	require.NoError(t, json.Unmarshal(buf.Bytes(), &got))
	assert.Equal(t, sample, got)
	assert.Contains(t, buf.String(), "\n  \"names\"")
}

func TestWrite_YAML(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, output.Write(&buf, "YAML", sample))

	var got result
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &got))
	assert.Equal(t, sample, got)
}

func TestWrite_CBORIsDeterministic(t *testing.T) {
	v := map[string]any{"b": 2, "a": []float64{1, 2}, "c": "x"}
	var first, second bytes.Buffer
	require.NoError(t, output.Write(&first, "cbor", v))
	require.NoError(t, output.Write(&second, "cbor", v))
	assert.Equal(t, first.Bytes(), second.Bytes())

	var got result
	var buf bytes.Buffer
	require.NoError(t, output.Write(&buf, "cbor", sample))
	require.NoError(t, cbor.Unmarshal(buf.Bytes(), &got))
	assert.Equal(t, sample, got)
}

func TestWrite_Text(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, output.Write(&buf, "text", sample))
	assert.Equal(t, "NAME         VALUE\nSCEL1        x\nSCEL10_long  x\n", buf.String())

	err := output.Write(&buf, "text", 42)
	assert.ErrorIs(t, err, output.ErrNotTabular)
}

func TestWrite_UnknownFormat(t *testing.T) {
	err := output.Write(&bytes.Buffer{}, "xml", sample)
	assert.ErrorIs(t, err, output.ErrUnknownFormat)
}
