package aco_test

import (
	"testing"
	"time"

	"github.com/katalvlaran/acotsp/aco"
	"github.com/katalvlaran/acotsp/config"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
)

// TestRunZeroMaxIterationsReturnsEmptyLog checks that max_iterations=0
// yields an empty log without constructing any ant.
func TestRunZeroMaxIterationsReturnsEmptyLog(t *testing.T) {
	d := square4(t)
	colony := aco.NewMMASColony(d, config.DefaultParameters(), 1, zerolog.Nop())

	log := aco.Run(colony, 0, time.Hour, time.Now(), zerolog.Nop())
	require.Equal(t, 0, log.Len())
}

// TestRunZeroTimeLimitReturnsEmptyLog mirrors the same boundary behavior for
// time_limit=0.
func TestRunZeroTimeLimitReturnsEmptyLog(t *testing.T) {
	d := square4(t)
	colony := aco.NewMMASColony(d, config.DefaultParameters(), 1, zerolog.Nop())

	log := aco.Run(colony, 1000, 0, time.Now(), zerolog.Nop())
	require.Equal(t, 0, log.Len())
}

// TestRunHaltsAtMaxIterations checks that the runner halts once the
// colony's iteration counter exceeds max_iterations: with a cap of 10 the
// loop records iterations 1 through 11 and then stops.
func TestRunHaltsAtMaxIterations(t *testing.T) {
	d := square4(t)
	params := config.DefaultParameters()
	params.NumAnts = 5
	colony := aco.NewMMASColony(d, params, 9, zerolog.Nop())

	log := aco.Run(colony, 10, time.Hour, time.Now(), zerolog.Nop())
	require.Equal(t, 11, log.Len())
}

// TestRunOnTwoCityInstance checks the N=2 boundary case: the only
// possible tour is [0,1], length 2*D[0,1].
func TestRunOnTwoCityInstance(t *testing.T) {
	d := twoCity(t, 7)
	params := config.DefaultParameters()
	params.NumAnts = 3
	colony := aco.NewACSColony(d, params, 4, zerolog.Nop())

	log := aco.Run(colony, 5, time.Hour, time.Now(), zerolog.Nop())
	require.Equal(t, 14, log.BestLength())
}

// TestConstructSolutionsSmoke checks that a single ConstructSolutions call
// returns a tour whose size equals N and whose length matches the sum
// recomputed from D.
func TestConstructSolutionsSmoke(t *testing.T) {
	d := square4(t)
	params := config.DefaultParameters()
	params.NumAnts = 6
	colony := aco.NewACSColony(d, params, 55, zerolog.Nop())

	colony.NewIteration()
	ant := colony.ConstructSolutions()
	require.Equal(t, 4, ant.Tour.Len())

	cities := ant.Tour.Cities()
	want := 0
	for k := 0; k < len(cities); k++ {
		i := cities[k]
		j := cities[(k+1)%len(cities)]
		want += d.D.At(j, i)
	}
	require.Equal(t, want, ant.Length)
}
