package config_test

import (
	"encoding/json"
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/katalvlaran/acotsp/config"
	"github.com/stretchr/testify/require"
)

func TestDefaultParameters(t *testing.T) {
	p := config.DefaultParameters()
	require.Equal(t, 280, p.NumAnts)
	require.Equal(t, 1.0, p.Alpha)
	require.Equal(t, 5.0, p.Beta)
	require.Equal(t, 0.02, p.EvaporationRate)
	require.Equal(t, 0.9, p.Q0)
	require.Equal(t, 0.1, p.Xi)
	require.Equal(t, config.Acs, p.Algorithm)
	require.Equal(t, math.MaxInt, p.MaxIterations)
	require.Equal(t, math.MaxInt, p.TimeLimit)
}

func TestParseAlgorithmUnknown(t *testing.T) {
	_, err := config.ParseAlgorithm("Bogus")
	require.ErrorIs(t, err, config.ErrUnknownAlgorithm)
}

func TestParametersUnmarshalDefaultsMissingFields(t *testing.T) {
	var p config.Parameters
	err := json.Unmarshal([]byte(`{"num_ants": 50}`), &p)
	require.NoError(t, err)

	require.Equal(t, 50, p.NumAnts)
	require.Equal(t, 5.0, p.Beta) // default, since beta was absent
	require.Equal(t, config.Acs, p.Algorithm)
}

func TestLoadRunDescriptionsMergesDefaults(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "runs.json")
	require.NoError(t, os.WriteFile(path, []byte(`[
		{"data_file": "a.tsp", "out_path": "out", "parameters": {"algorithm": "Mmas", "num_ants": 10}},
		{"data_file": "b.tsp", "out_path": "out", "num_runs": 3}
	]`), 0o644))

	runs, err := config.LoadRunDescriptions(path)
	require.NoError(t, err)
	require.Len(t, runs, 2)

	require.Equal(t, "a.tsp", runs[0].DataFile)
	require.Equal(t, 1, runs[0].NumRuns)
	require.Equal(t, config.Mmas, runs[0].Parameters.Algorithm)
	require.Equal(t, 10, runs[0].Parameters.NumAnts)
	require.Equal(t, 5.0, runs[0].Parameters.Beta)

	require.Equal(t, 3, runs[1].NumRuns)
	require.Equal(t, config.DefaultParameters(), runs[1].Parameters)
}

func TestLoadRunDescriptionsRejectsEmpty(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "runs.json")
	require.NoError(t, os.WriteFile(path, []byte(`[]`), 0o644))

	_, err := config.LoadRunDescriptions(path)
	require.ErrorIs(t, err, config.ErrEmptyRunDescriptions)
}

func TestLoadRunDescriptionsRejectsMissingDataFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "runs.json")
	require.NoError(t, os.WriteFile(path, []byte(`[{"out_path": "out"}]`), 0o644))

	_, err := config.LoadRunDescriptions(path)
	require.ErrorIs(t, err, config.ErrMissingDataFile)
}
