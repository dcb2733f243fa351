package config

import (
	"encoding/json"
	"fmt"
	"os"
)

// RunDescription is one requested solver run: which instance file to read,
// where to write the result log, how many repetitions, and the parameters
// to run with.
type RunDescription struct {
	DataFile   string     `json:"data_file"`
	OutPath    string     `json:"out_path"`
	NumRuns    int        `json:"num_runs"`
	Parameters Parameters `json:"parameters"`
}

// runDescriptionWire mirrors RunDescription with NumRuns optional, defaulted
// to 1 when absent or zero.
type runDescriptionWire struct {
	DataFile   string      `json:"data_file"`
	OutPath    string      `json:"out_path"`
	NumRuns    int         `json:"num_runs"`
	Parameters *Parameters `json:"parameters"`
}

// LoadRunDescriptions reads a JSON array of run descriptions from path.
// Any "parameters" object present is merged over DefaultParameters()
// field-by-field; a wholly absent "parameters" key yields the defaults.
func LoadRunDescriptions(path string) ([]RunDescription, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: reading %s: %w", path, err)
	}

	var wire []runDescriptionWire
	if err := json.Unmarshal(raw, &wire); err != nil {
		return nil, fmt.Errorf("config: parsing %s: %w", path, err)
	}
	if len(wire) == 0 {
		return nil, ErrEmptyRunDescriptions
	}

	runs := make([]RunDescription, 0, len(wire))
	for i, w := range wire {
		if w.DataFile == "" {
			return nil, fmt.Errorf("config: run %d: %w", i, ErrMissingDataFile)
		}
		numRuns := w.NumRuns
		if numRuns <= 0 {
			numRuns = 1
		}
		params := DefaultParameters()
		if w.Parameters != nil {
			params = *w.Parameters
		}
		runs = append(runs, RunDescription{
			DataFile:   w.DataFile,
			OutPath:    w.OutPath,
			NumRuns:    numRuns,
			Parameters: params,
		})
	}

	return runs, nil
}
