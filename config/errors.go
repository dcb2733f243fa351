package config

import "errors"

// Sentinel errors for configuration loading and validation.
var (
	// ErrUnknownAlgorithm indicates an "algorithm" field outside the five
	// recognised variants.
	ErrUnknownAlgorithm = errors.New("config: unknown algorithm")

	// ErrEmptyRunDescriptions indicates a run-description file parsed to an
	// empty list.
	ErrEmptyRunDescriptions = errors.New("config: run description file contains no runs")

	// ErrMissingDataFile indicates a run description with an empty
	// data_file field.
	ErrMissingDataFile = errors.New("config: run description missing data_file")
)
