package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/thermocore/casm"
	"github.com/katalvlaran/thermocore/geometry"
)

func run(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	root := newRootCmd(&stdout, &stderr)
	root.SetArgs(args)
	err := root.Execute()

	return stdout.String(), stderr.String(), err
}

func TestHullCmd(t *testing.T) {
	out, logs, err := run(t, "hull", "testdata/binary.json", "--format", "json")
	require.NoError(t, err)
	assert.Contains(t, logs, "without formation energy")

	var report hullReport
	require.NoError(t, json.Unmarshal([]byte(out), &report))
	names := make([]string, len(report.Vertices))
	for i, v := range report.Vertices {
		names[i] = v.Name
	}
	assert.Equal(t, []string{"A", "AB", "B"}, names)
	require.Len(t, report.Facets, 2)
	for _, f := range report.Facets {
		assert.Len(t, f.Equation, 2)
	}
}

func TestHullCmd_Text(t *testing.T) {
	out, _, err := run(t, "hull", "testdata/binary.json")
	require.NoError(t, err)
	assert.Contains(t, out, "INDEX")
	assert.Contains(t, out, "-0.300000")
}

func TestDistanceCmd(t *testing.T) {
	out, _, err := run(t, "distance", "testdata/binary.json", "--format", "json", "--workers", "2")
	require.NoError(t, err)

	var report distanceReport
	require.NoError(t, json.Unmarshal([]byte(out), &report))
	assert.Equal(t, []string{"A", "A3B", "AB", "AB3", "B"}, report.Names)
	want := []float64{0, 0.05, 0, 0.1, 0}
	require.Len(t, report.Distances, len(want))
	for i := range want {
		assert.InDelta(t, want[i], report.Distances[i], 1e-9, report.Names[i])
	}
}

func TestDistanceCmd_Reference(t *testing.T) {
	_, _, err := run(t, "distance", "testdata/wide.json", "--reference", "testdata/binary.json")
	assert.ErrorIs(t, err, geometry.ErrOutOfBounds)
}

func TestCorrelationsCmd(t *testing.T) {
	out, _, err := run(t, "correlations", "testdata/binary.json", "--format", "json")
	require.NoError(t, err)

	var report correlationReport
	require.NoError(t, json.Unmarshal([]byte(out), &report))
	want := [][]float64{
		{0, 0, 0},
		{0, 0, 0.2},
		{0, 0, 0},
		{0, 0, -0.1},
		{0, 0, 0},
	}
	require.Len(t, report.Correlations, len(want))
	for i := range want {
		assert.InDeltaSlice(t, want[i], report.Correlations[i], 1e-9, report.Names[i])
	}
}

func TestECIsCmd_Filtered(t *testing.T) {
	dir := t.TempDir()
	ecis := filepath.Join(dir, "ecis.json")
	require.NoError(t, os.WriteFile(ecis, []byte("[1, 1e-12, 2, 3, 0, 4]"), 0o644))
	outPath := filepath.Join(dir, "eci.json")

	_, _, err := run(t, "ecis",
		"--basis", "../../casm/testdata/basis.json",
		"--ecis", ecis,
		"--filter", "max:2:3", "--filter", "max:3:3.5",
		"--out", outPath)
	require.NoError(t, err)

	b, err := casm.ReadBasisFile(outPath)
	require.NoError(t, err)
	assert.Equal(t, []float64{1, 0, 2, 3, 0, 0, 4, 0}, casm.PullECIs(b))
}

func TestECIsCmd_DenseToStdout(t *testing.T) {
	ecis := filepath.Join(t.TempDir(), "ecis.json")
	require.NoError(t, os.WriteFile(ecis, []byte("[0.5, 0, 0, 0, 0, 0, 0, -0.25]"), 0o644))

	out, _, err := run(t, "ecis", "--basis", "../../casm/testdata/basis.json", "--ecis", ecis)
	require.NoError(t, err)

	b, err := casm.ReadBasis(bytes.NewReader([]byte(out)))
	require.NoError(t, err)
	assert.Equal(t, []float64{0.5, 0, 0, 0, 0, 0, 0, -0.25}, casm.PullECIs(b))
}

func TestECIsCmd_LengthMismatch(t *testing.T) {
	ecis := filepath.Join(t.TempDir(), "ecis.json")
	require.NoError(t, os.WriteFile(ecis, []byte("[1, 2]"), 0o644))

	_, _, err := run(t, "ecis", "--basis", "../../casm/testdata/basis.json", "--ecis", ecis, "--filter", "max:2:3")
	assert.ErrorIs(t, err, casm.ErrLengthMismatch)
}

func TestRoot_ConfigAndFlags(t *testing.T) {
	cfgPath := filepath.Join(t.TempDir(), "thermocore.yaml")
	require.NoError(t, os.WriteFile(cfgPath, []byte("format: yaml\nlog_level: debug\n"), 0o644))

	out, logs, err := run(t, "--config", cfgPath, "distance", "testdata/binary.json")
	require.NoError(t, err)
	assert.Contains(t, out, "distances:")
	assert.Contains(t, logs, "configured")

	_, _, err = run(t, "--config", cfgPath, "--format", "xml", "distance", "testdata/binary.json")
	assert.Error(t, err)

	_, _, err = run(t, "distance", "testdata/missing.json")
	assert.Error(t, err)
}

func TestRoot_JSONLogs(t *testing.T) {
	_, logs, err := run(t, "--log-format", "json", "--log-level", "debug", "distance", "testdata/binary.json")
	require.NoError(t, err)

	lines := bytes.Split(bytes.TrimSpace([]byte(logs)), []byte("\n"))
	require.NotEmpty(t, lines)
	for _, line := range lines {
		var rec map[string]any
		require.NoError(t, json.Unmarshal(line, &rec), string(line))
		assert.Equal(t, "distance", rec["cmd"])
	}

	_, _, err = run(t, "--log-format", "xml", "distance", "testdata/binary.json")
	assert.Error(t, err)
}
