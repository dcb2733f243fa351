package main

import (
	"fmt"
	"math"
	"os"
	"time"

	"github.com/katalvlaran/acotsp/aco"
	"github.com/katalvlaran/acotsp/config"
	"github.com/katalvlaran/acotsp/instance"
	"github.com/katalvlaran/acotsp/tsplib"
	"github.com/rs/zerolog"
)

// runAll executes every run description in descs, independently: a failure
// in one does not prevent the others from running. It returns true if every
// run succeeded.
func runAll(descs []config.RunDescription, includeTour bool, log zerolog.Logger) bool {
	allOK := true
	for _, desc := range descs {
		if err := runDescription(desc, includeTour, log); err != nil {
			log.Error().Err(err).Str("data_file", desc.DataFile).Msg("run failed")
			allOK = false
		}
	}

	return allOK
}

// runDescription reads desc's instance once, then executes desc.NumRuns
// independent solver runs against it, writing one result log file per run.
func runDescription(desc config.RunDescription, includeTour bool, log zerolog.Logger) error {
	f, err := os.Open(desc.DataFile)
	if err != nil {
		return fmt.Errorf("opening %s: %w", desc.DataFile, err)
	}
	defer f.Close()

	data, err := tsplib.Read(f)
	if err != nil {
		return fmt.Errorf("reading %s: %w", desc.DataFile, err)
	}

	for i := 1; i <= desc.NumRuns; i++ {
		if err := runOnce(data, desc, i, includeTour, log); err != nil {
			log.Error().Err(err).Str("data_file", desc.DataFile).Int("run_index", i).Msg("run instance failed")
			return err
		}
	}

	return nil
}

// runOnce builds the colony named by desc.Parameters.Algorithm, runs it to
// termination, and writes its result log.
func runOnce(data *instance.Data, desc config.RunDescription, runIndex int, includeTour bool, log zerolog.Logger) error {
	params := desc.Parameters
	seed := uint64(runIndex) * 0x2545F4914F6CDD1D

	var colony aco.Colony
	switch params.Algorithm {
	case config.Mmas:
		colony = aco.NewMMASColony(data, params, seed, log)
	case config.MmasPar:
		colony = aco.NewMMASColonyPar(data, params, seed, log)
	case config.Acs:
		colony = aco.NewACSColony(data, params, seed, log)
	case config.AcsParMaster:
		colony = aco.NewACSColonyParMaster(data, params, seed, log)
	case config.AcsParSync:
		colony = aco.NewACSColonyParSync(data, params, seed, log)
	default:
		return fmt.Errorf("run %d: %w", runIndex, config.ErrUnknownAlgorithm)
	}

	timeLimit := time.Duration(math.MaxInt64)
	if params.TimeLimit < math.MaxInt64/int(time.Second) {
		timeLimit = time.Duration(params.TimeLimit) * time.Second
	}

	start := time.Now()
	resultLog := aco.Run(colony, params.MaxIterations, timeLimit, start, log)

	fileName := resultFileName(desc.OutPath, params.Algorithm, runIndex)
	out, err := os.Create(fileName)
	if err != nil {
		return fmt.Errorf("creating %s: %w", fileName, err)
	}
	defer out.Close()

	if resultLog.Len() == 0 {
		return nil
	}

	return writeResultLog(out, resultLog, includeTour)
}
