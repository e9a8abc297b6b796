package casm_test

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/thermocore/casm"
)

func readBasis(t *testing.T) casm.Basis {
	t.Helper()
	b, err := casm.ReadBasisFile("testdata/basis.json")
	require.NoError(t, err)

	return b
}

func TestReadBasis(t *testing.T) {
	b := readBasis(t)
	require.Len(t, b.Orbits, 6)

	sizes := make([]int, len(b.Orbits))
	for i, o := range b.Orbits {
		sizes[i] = o.Prototype.Size()
	}
	assert.Equal(t, []int{0, 1, 2, 2, 3, 3}, sizes)

	pair := b.Orbits[2]
	assert.Equal(t, 6, pair.Mult)
	assert.Equal(t, 2.9, pair.Prototype.MaxLength)
	assert.Equal(t, []int{3, 4}, []int{
		pair.ClusterFunctions[0].LinearFunctionIndex,
		pair.ClusterFunctions[1].LinearFunctionIndex,
	})
	assert.Contains(t, pair.ClusterFunctions[0].Extra, `\Phi_{3}`)
	assert.Contains(t, b.Extra, "bspecs")
	assert.Contains(t, b.Extra, "site_functions")
	assert.Contains(t, b.Orbits[0].Prototype.Extra, "invariant_group")
}

// Unknown fields at every level must come back out unchanged.
func TestBasis_RoundTrip(t *testing.T) {
	raw, err := os.ReadFile("testdata/basis.json")
	require.NoError(t, err)

	b, err := casm.ReadBasis(bytes.NewReader(raw))
	require.NoError(t, err)
	var buf bytes.Buffer
	require.NoError(t, casm.WriteBasis(&buf, b))

	var want, got any
	require.NoError(t, json.Unmarshal(raw, &want))
	require.NoError(t, json.Unmarshal(buf.Bytes(), &got))
	assert.Equal(t, want, got)
}

func TestBasis_ECIRoundTrip(t *testing.T) {
	out, err := casm.AppendECIs([]float64{-0.75}, readBasis(t), []int{5})
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "eci.json")
	require.NoError(t, casm.WriteBasisFile(path, out))

	back, err := casm.ReadBasisFile(path)
	require.NoError(t, err)
	assert.Equal(t, []float64{0, 0, 0, 0, 0, -0.75, 0, 0}, casm.PullECIs(back))

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, 1, bytes.Count(raw, []byte(`"eci"`)))
}

func TestBasis_Clone(t *testing.T) {
	b := readBasis(t)
	c := b.Clone()

	v := 3.0
	c.Orbits[1].ClusterFunctions[0].ECI = &v
	c.Orbits[1].Mult = 99
	c.Extra["bspecs"][0] = 'X'
	c.Orbits[3].Prototype.Sites[0][1] = '9'

	assert.Nil(t, b.Orbits[1].ClusterFunctions[0].ECI)
	assert.Equal(t, 1, b.Orbits[1].Mult)
	assert.Equal(t, byte('{'), b.Extra["bspecs"][0])
	assert.Equal(t, byte('0'), b.Orbits[3].Prototype.Sites[0][1])
}

func TestReadBasis_Malformed(t *testing.T) {
	_, err := casm.ReadBasis(bytes.NewReader([]byte(`{"orbits": [{"mult": "one"}]}`)))
	assert.Error(t, err)

	_, err = casm.ReadBasisFile("testdata/missing.json")
	assert.Error(t, err)
}
