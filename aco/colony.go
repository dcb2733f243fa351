package aco

import (
	"fmt"
	"math"

	"github.com/katalvlaran/acotsp/instance"
	"github.com/katalvlaran/acotsp/matrix"
)

// Colony is the shared contract implemented by every algorithm variant.
// The runner instantiates exactly one concrete implementation per run,
// selected by config.Algorithm; dynamic dispatch through this interface is
// enough — no separate registry is needed.
type Colony interface {
	// NewIteration advances the iteration counter and performs any
	// per-iteration bookkeeping (MMAS stagnation/restart checks).
	NewIteration()

	// Iteration returns the current iteration counter.
	Iteration() int

	// ConstructSolutions builds num_ants candidate tours and returns the
	// best one. Callers must not depend on seeing the losing ants.
	ConstructSolutions() Ant

	// UpdatePheromones mutates τ and recomputes C from the iteration's
	// best-this-iteration and best-so-far ants.
	UpdatePheromones(bestThisIter, bestSoFar Ant)
}

// totalValue computes one combined-info entry τ^α · η^β, panicking with
// ErrNumericalAnomaly if the result is not finite and positive.
func totalValue(tau, eta, alpha, beta float64) float64 {
	v := math.Pow(tau, alpha) * math.Pow(eta, beta)
	if math.IsNaN(v) || math.IsInf(v, 0) || v <= 0 {
		panic(fmt.Errorf("%w: tau=%g eta=%g alpha=%g beta=%g", ErrNumericalAnomaly, tau, eta, alpha, beta))
	}

	return v
}

// computeHeuristicInfo fills η[i,j] = 1/(D[i,j]+0.1) for every i != j,
// leaving the diagonal at its zero value, which is never consulted.
func computeHeuristicInfo(d *instance.Data) *matrix.Dense[float64] {
	eta, err := matrix.NewDense[float64](d.N)
	if err != nil {
		panic(err)
	}
	for i := 0; i < d.N; i++ {
		for j := 0; j < d.N; j++ {
			if i == j {
				continue
			}
			eta.Set(j, i, 1.0/(float64(d.D.At(j, i))+0.1))
		}
	}

	return eta
}

// computeCombinedInfo computes η once and derives C = τ^α · η^β once, for
// i<j and mirrored to j<i.
func computeCombinedInfo(d *instance.Data, tau *matrix.Dense[float64], alpha, beta float64) (eta, c *matrix.Dense[float64]) {
	eta = computeHeuristicInfo(d)
	c, err := matrix.NewDense[float64](d.N)
	if err != nil {
		panic(err)
	}
	for i := 0; i < d.N; i++ {
		for j := i + 1; j < d.N; j++ {
			v := totalValue(tau.At(j, i), eta.At(j, i), alpha, beta)
			c.Set(j, i, v)
			c.Set(i, j, v)
		}
	}

	return eta, c
}

// recomputeCombinedInfo updates C in place from the current τ and η,
// mirrored.
func recomputeCombinedInfo(d *instance.Data, tau, eta, c *matrix.Dense[float64], alpha, beta float64) {
	for i := 0; i < d.N; i++ {
		for j := i + 1; j < d.N; j++ {
			v := totalValue(tau.At(j, i), eta.At(j, i), alpha, beta)
			c.Set(j, i, v)
			c.Set(i, j, v)
		}
	}
}

// tourLength sums D along consecutive pairs of tour plus the closing edge
// back to tour[0].
func tourLength(d *instance.Data, tour []int) int {
	length := 0
	for k := 0; k < len(tour)-1; k++ {
		length += d.D.At(tour[k+1], tour[k])
	}
	length += d.D.At(tour[0], tour[len(tour)-1])

	return length
}
