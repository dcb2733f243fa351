package aco_test

import (
	"testing"
	"time"

	"github.com/katalvlaran/acotsp/aco"
	"github.com/stretchr/testify/require"
)

func antOfLength(n int) aco.Ant {
	return aco.NewAnt(n, 0)
}

func TestResultLogFirstPushIsAlwaysNewBest(t *testing.T) {
	log := aco.NewResultLog(4, time.Now())
	ant := antOfLength(3)
	ant.Length = 50

	entry := log.Push(ant, 1)
	require.True(t, entry.IsNewBest)
	require.Equal(t, 50, log.BestLength())
}

func TestResultLogIsNewBestOnlyOnStrictImprovement(t *testing.T) {
	log := aco.NewResultLog(4, time.Now())

	a := antOfLength(3)
	a.Length = 50
	log.Push(a, 1)

	b := antOfLength(3)
	b.Length = 50
	entry := log.Push(b, 2)
	require.False(t, entry.IsNewBest) // not strictly better

	c := antOfLength(3)
	c.Length = 30
	entry = log.Push(c, 3)
	require.True(t, entry.IsNewBest)
	require.Equal(t, 30, log.BestLength())
}

// TestResultLogBestLengthNonIncreasing checks that BestLength never
// increases as entries are pushed.
func TestResultLogBestLengthNonIncreasing(t *testing.T) {
	log := aco.NewResultLog(5, time.Now())
	lengths := []int{80, 60, 70, 60, 40}

	prevBest := int(^uint(0) >> 1) // max int
	for i, l := range lengths {
		a := antOfLength(3)
		a.Length = l
		log.Push(a, i)
		require.LessOrEqual(t, log.BestLength(), prevBest)
		prevBest = log.BestLength()
	}
	require.Equal(t, 40, log.BestLength())
}

// TestResultLogLenMatchesIterationCount checks that Len tracks the number
// of pushed entries exactly.
func TestResultLogLenMatchesIterationCount(t *testing.T) {
	log := aco.NewResultLog(3, time.Now())
	for i := 0; i < 3; i++ {
		log.Push(antOfLength(3), i)
	}
	require.Equal(t, 3, log.Len())
}

func TestResultLogLatestTour(t *testing.T) {
	log := aco.NewResultLog(2, time.Now())
	a := antOfLength(3)
	a.Length = 10
	log.Push(a, 0)
	b := antOfLength(3)
	b.Length = 20
	log.Push(b, 1)

	require.Equal(t, 20, log.LatestTour().Length)
	require.Equal(t, 10, log.BestTour().Length)
}
