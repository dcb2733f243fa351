// Package config loads and validates ACO run configuration: the algorithm
// selector and numeric knobs, and the run-description file that drives the
// CLI.
package config

import (
	"encoding/json"
	"fmt"
	"math"
)

// Algorithm selects which colony implementation a run uses.
type Algorithm int

const (
	// Mmas is the sequential Min-Max Ant System.
	Mmas Algorithm = iota
	// MmasPar is the parallel (errgroup-based) Min-Max Ant System.
	MmasPar
	// Acs is the sequential Ant Colony System.
	Acs
	// AcsParMaster is ACS with parallel construction and a deferred serial
	// local pheromone update on the master goroutine.
	AcsParMaster
	// AcsParSync is ACS with per-cell-locked concurrent local pheromone
	// updates during construction.
	AcsParSync
)

// String returns the algorithm's JSON/CLI name.
func (a Algorithm) String() string {
	switch a {
	case Mmas:
		return "Mmas"
	case MmasPar:
		return "MmasPar"
	case Acs:
		return "Acs"
	case AcsParMaster:
		return "AcsParMaster"
	case AcsParSync:
		return "AcsParSync"
	default:
		return fmt.Sprintf("Algorithm(%d)", int(a))
	}
}

// ParseAlgorithm maps a name to its Algorithm, or ErrUnknownAlgorithm.
func ParseAlgorithm(name string) (Algorithm, error) {
	switch name {
	case "Mmas":
		return Mmas, nil
	case "MmasPar":
		return MmasPar, nil
	case "Acs":
		return Acs, nil
	case "AcsParMaster":
		return AcsParMaster, nil
	case "AcsParSync":
		return AcsParSync, nil
	default:
		return 0, fmt.Errorf("%q: %w", name, ErrUnknownAlgorithm)
	}
}

// MarshalJSON renders the algorithm as its string name.
func (a Algorithm) MarshalJSON() ([]byte, error) {
	return json.Marshal(a.String())
}

// UnmarshalJSON parses the algorithm from its string name.
func (a *Algorithm) UnmarshalJSON(data []byte) error {
	var name string
	if err := json.Unmarshal(data, &name); err != nil {
		return err
	}
	parsed, err := ParseAlgorithm(name)
	if err != nil {
		return err
	}
	*a = parsed

	return nil
}

// Parameters holds every numeric and algorithmic knob for one ACO run.
// Fields are read-only once a run starts.
type Parameters struct {
	NumAnts         int       `json:"num_ants"`
	Alpha           float64   `json:"alpha"`
	Beta            float64   `json:"beta"`
	EvaporationRate float64   `json:"evaporation_rate"`
	Q0              float64   `json:"q_0"`
	Xi              float64   `json:"xi"`
	Algorithm       Algorithm `json:"algorithm"`
	MaxIterations   int       `json:"max_iterations"`
	TimeLimit       int       `json:"time_limit"`
}

// DefaultParameters returns the documented default parameter set.
func DefaultParameters() Parameters {
	return Parameters{
		NumAnts:         280,
		Alpha:           1.0,
		Beta:            5.0,
		EvaporationRate: 0.02,
		Q0:              0.9,
		Xi:              0.1,
		Algorithm:       Acs,
		MaxIterations:   math.MaxInt,
		TimeLimit:       math.MaxInt,
	}
}

// parametersWire mirrors Parameters but with every field a pointer, so that
// UnmarshalJSON can tell an explicitly-present-but-zero field apart from an
// absent one and default only the latter.
type parametersWire struct {
	NumAnts         *int       `json:"num_ants"`
	Alpha           *float64   `json:"alpha"`
	Beta            *float64   `json:"beta"`
	EvaporationRate *float64   `json:"evaporation_rate"`
	Q0              *float64   `json:"q_0"`
	Xi              *float64   `json:"xi"`
	Algorithm       *Algorithm `json:"algorithm"`
	MaxIterations   *int       `json:"max_iterations"`
	TimeLimit       *int       `json:"time_limit"`
}

// UnmarshalJSON fills any field absent from the JSON object with its default
// from DefaultParameters, rather than the field's Go zero value.
func (p *Parameters) UnmarshalJSON(data []byte) error {
	var wire parametersWire
	if err := json.Unmarshal(data, &wire); err != nil {
		return err
	}

	*p = DefaultParameters()
	if wire.NumAnts != nil {
		p.NumAnts = *wire.NumAnts
	}
	if wire.Alpha != nil {
		p.Alpha = *wire.Alpha
	}
	if wire.Beta != nil {
		p.Beta = *wire.Beta
	}
	if wire.EvaporationRate != nil {
		p.EvaporationRate = *wire.EvaporationRate
	}
	if wire.Q0 != nil {
		p.Q0 = *wire.Q0
	}
	if wire.Xi != nil {
		p.Xi = *wire.Xi
	}
	if wire.Algorithm != nil {
		p.Algorithm = *wire.Algorithm
	}
	if wire.MaxIterations != nil {
		p.MaxIterations = *wire.MaxIterations
	}
	if wire.TimeLimit != nil {
		p.TimeLimit = *wire.TimeLimit
	}

	return nil
}
