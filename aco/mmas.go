package aco

import (
	"math"
	"math/rand"
	"runtime"

	"github.com/katalvlaran/acotsp/config"
	"github.com/katalvlaran/acotsp/instance"
	"github.com/katalvlaran/acotsp/matrix"
	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"
)

// MMASRestartWindow is the number of iterations without a strictly better
// restart ant after which MMAS resets τ to trail_max. Kept as an internal
// tunable rather than a config.Parameters field.
const MMASRestartWindow = 150

// MMASRestartAntCadence is how often (in iterations) the restart ant, not
// the iteration-best ant, is used to reinforce τ.
const MMASRestartAntCadence = 25

// mmasAntConstruct builds one MMAS tour: start on a uniformly random city,
// then repeatedly choose the next city probabilistically from the
// combined-info matrix until every city has been visited, finally closing
// the tour.
func mmasAntConstruct(d *instance.Data, c *matrix.Dense[float64], rng *rand.Rand) Ant {
	start := rng.Intn(d.N)
	ant := NewAnt(d.N, start)
	for step := 1; step < d.N; step++ {
		next := chooseProbabilistically(ant.CurrCity, ant.Tour, c, d.N, rng)
		ant.Insert(next, d.D.At(next, ant.CurrCity))
	}
	ant.Length += d.D.At(ant.First(), ant.CurrCity)

	return ant
}

// MMASColony is the sequential Min-Max Ant System.
type MMASColony struct {
	d      *instance.Data
	params config.Parameters

	tau *matrix.Dense[float64]
	eta *matrix.Dense[float64]
	c   *matrix.Dense[float64]

	trailMin, trailMax float64
	restartAnt         *Ant
	restartIter        int
	iteration          int

	rng      *rand.Rand
	baseSeed uint64
	log      zerolog.Logger
}

// NewMMASColony initializes τ uniformly at trail_max (seeded from the
// nearest-neighbour tour length from city 0), computes η and C, and returns
// a ready-to-run sequential MMAS colony.
func NewMMASColony(d *instance.Data, params config.Parameters, seed uint64, log zerolog.Logger) *MMASColony {
	lnn := d.NearestNeighbourTourLength(0)
	trailMax := 1.0 / (params.EvaporationRate * float64(lnn))
	trailMin := trailMax / (2 * float64(d.N))

	tau, err := matrix.NewDenseFilled[float64](d.N, trailMax)
	if err != nil {
		panic(err)
	}
	for i := 0; i < d.N; i++ {
		tau.Set(i, i, math.Inf(1))
	}
	eta, c := computeCombinedInfo(d, tau, params.Alpha, params.Beta)

	return &MMASColony{
		d: d, params: params,
		tau: tau, eta: eta, c: c,
		trailMin: trailMin, trailMax: trailMax,
		rng: deriveRNG(seed, 0), baseSeed: seed,
		log: log,
	}
}

// NewIteration advances the iteration counter and applies the stagnation
// restart if the restart ant has not improved for MMASRestartWindow
// iterations.
func (m *MMASColony) NewIteration() {
	m.iteration++
	if m.iteration-m.restartIter >= MMASRestartWindow {
		m.restartAnt = nil
		m.tau.FillOffDiagonal(m.trailMax)
		recomputeCombinedInfo(m.d, m.tau, m.eta, m.c, m.params.Alpha, m.params.Beta)
		m.restartIter = m.iteration
		m.log.Info().Int("iteration", m.iteration).Msg("mmas stagnation restart")
	}
}

// Iteration returns the current iteration counter.
func (m *MMASColony) Iteration() int {
	return m.iteration
}

// ConstructSolutions builds params.NumAnts tours sequentially and returns
// the shortest.
func (m *MMASColony) ConstructSolutions() Ant {
	best := mmasAntConstruct(m.d, m.c, m.rng)
	for i := 1; i < m.params.NumAnts; i++ {
		ant := mmasAntConstruct(m.d, m.c, m.rng)
		if ant.Length < best.Length {
			best = ant
		}
	}

	return best
}

// UpdatePheromones performs restart-ant bookkeeping, bound recomputation,
// evaporation, reinforcement (by restart ant every MMASRestartAntCadence-th
// iteration, else by the iteration-best ant), clamping, and combined-info
// recomputation.
func (m *MMASColony) UpdatePheromones(bestThisIter, bestSoFar Ant) {
	if m.restartAnt == nil || bestThisIter.Length < m.restartAnt.Length {
		restartCopy := bestThisIter
		m.restartAnt = &restartCopy
		m.restartIter = m.iteration
	}

	m.trailMax = 1.0 / (m.params.EvaporationRate * float64(bestSoFar.Length))
	m.trailMin = m.trailMax / (2 * float64(m.d.N))

	rho := m.params.EvaporationRate
	for i := 0; i < m.d.N; i++ {
		for j := i + 1; j < m.d.N; j++ {
			v := m.tau.At(j, i) * (1 - rho)
			m.tau.Set(j, i, v)
			m.tau.Set(i, j, v)
		}
	}

	reinforceBy := bestThisIter
	if m.iteration%MMASRestartAntCadence == 0 {
		if m.restartAnt != nil {
			reinforceBy = *m.restartAnt
		} else {
			reinforceBy = bestSoFar
		}
	}
	reinforceEdges(m.tau, reinforceBy)

	for i := 0; i < m.d.N; i++ {
		for j := i + 1; j < m.d.N; j++ {
			v := clamp(m.tau.At(j, i), m.trailMin, m.trailMax)
			m.tau.Set(j, i, v)
			m.tau.Set(i, j, v)
		}
	}

	recomputeCombinedInfo(m.d, m.tau, m.eta, m.c, m.params.Alpha, m.params.Beta)
}

// reinforceEdges adds 1/ant.Length to τ along every consecutive edge of
// ant's tour, mirrored.
func reinforceEdges(tau *matrix.Dense[float64], ant Ant) {
	delta := 1.0 / float64(ant.Length)
	cities := ant.Tour.Cities()
	for k := 0; k < len(cities)-1; k++ {
		i := cities[k]
		j := cities[k+1]
		v := tau.At(j, i) + delta
		tau.Set(j, i, v)
		tau.Set(i, j, v)
	}
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}

	return v
}

// MMASColonyPar is the parallel MMAS variant: construction fans out across
// a bounded worker pool since τ and C are read-only between updates.
type MMASColonyPar struct {
	*MMASColony
}

// NewMMASColonyPar wraps a fresh sequential colony's state for parallel
// construction.
func NewMMASColonyPar(d *instance.Data, params config.Parameters, seed uint64, log zerolog.Logger) *MMASColonyPar {
	return &MMASColonyPar{MMASColony: NewMMASColony(d, params, seed, log)}
}

// ConstructSolutions builds params.NumAnts tours concurrently, bounded by a
// worker pool sized to GOMAXPROCS, each ant drawing from its own
// independently-derived RNG stream.
func (m *MMASColonyPar) ConstructSolutions() Ant {
	ants := make([]Ant, m.params.NumAnts)
	g := new(errgroup.Group)
	g.SetLimit(runtime.GOMAXPROCS(0))
	for i := 0; i < m.params.NumAnts; i++ {
		i := i
		g.Go(func() error {
			rng := deriveRNG(m.baseSeed, m.iteration*m.params.NumAnts+i+1)
			ants[i] = mmasAntConstruct(m.d, m.c, rng)

			return nil
		})
	}
	_ = g.Wait()

	best := ants[0]
	for _, ant := range ants[1:] {
		if ant.Length < best.Length {
			best = ant
		}
	}

	return best
}
