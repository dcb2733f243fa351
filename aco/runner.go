package aco

import (
	"time"

	"github.com/rs/zerolog"
)

// Run drives the iterate→construct→record→update loop: each iteration,
// advance the colony, construct the iteration-best ant, append it to the
// result log, then let the colony update its pheromones from the latest and
// best-so-far ants. Termination is checked only after at least one
// iteration has run, so the returned log always has at least one entry
// unless maxIterations or timeLimit is non-positive, in which case an empty
// log is returned immediately.
//
// start is the run's wall-clock anchor, threaded in explicitly rather than
// read from a global stopwatch, so elapsed time is reproducible in tests.
func Run(colony Colony, maxIterations int, timeLimit time.Duration, start time.Time, log zerolog.Logger) *ResultLog {
	capacity := maxIterations
	if capacity < 0 {
		capacity = 0
	}
	resultLog := NewResultLog(capacity, start)

	if maxIterations <= 0 || timeLimit <= 0 {
		return resultLog
	}

	log.Info().Time("start", start).Msg("run started")

	for {
		colony.NewIteration()
		bestIter := colony.ConstructSolutions()
		entry := resultLog.Push(bestIter, colony.Iteration())

		if entry.IsNewBest {
			log.Info().Int("iteration", entry.Iteration).Int("length", entry.Ant.Length).Msg("new best")
		} else {
			log.Debug().Int("iteration", entry.Iteration).Msg("iteration complete")
		}

		colony.UpdatePheromones(resultLog.LatestTour(), resultLog.BestTour())

		if colony.Iteration() > maxIterations || time.Since(start) >= timeLimit {
			break
		}
	}

	log.Info().
		Int("iterations", resultLog.Len()).
		Int("best_length", resultLog.BestLength()).
		Dur("elapsed", time.Since(start)).
		Msg("run finished")

	return resultLog
}
