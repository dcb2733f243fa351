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

// acsAlpha is the implicit exponent ACS always uses for τ in its
// combined-info formula. ACS fixes α=1 regardless of config.Parameters.Alpha,
// which is still named for MMAS symmetry but never applied to ACS's own
// arithmetic.
const acsAlpha = 1.0

// acsLocalUpdate performs ACS's per-step contraction of τ[i,j] toward τ0,
// weighted by ξ, and recomputes C[i,j] from the new τ.
func acsLocalUpdate(tau, eta, c *matrix.Dense[float64], i, j int, tau0, xi, beta float64) {
	v := (1-xi)*tau.At(j, i) + xi*tau0
	tau.Set(j, i, v)
	tau.Set(i, j, v)
	cv := totalValue(v, eta.At(j, i), acsAlpha, beta)
	c.Set(j, i, cv)
	c.Set(i, j, cv)
}

// acsGlobalUpdate reinforces every edge of ant's closed tour, including the
// return edge to its first city, toward 1/ant.Length, blended by ρ, and
// recomputes C along those edges.
func acsGlobalUpdate(tau, eta, c *matrix.Dense[float64], ant Ant, rho, beta float64) {
	reinforcement := rho * (1.0 / float64(ant.Length))
	cities := ant.Tour.Cities()
	for k := 0; k < len(cities); k++ {
		i := cities[k]
		j := cities[(k+1)%len(cities)]
		v := (1-rho)*tau.At(j, i) + reinforcement
		tau.Set(j, i, v)
		tau.Set(i, j, v)
		cv := totalValue(v, eta.At(j, i), acsAlpha, beta)
		c.Set(j, i, cv)
		c.Set(i, j, cv)
	}
}

// ACSColony is the sequential Ant Colony System.
type ACSColony struct {
	d      *instance.Data
	params config.Parameters

	tau  *matrix.Dense[float64]
	eta  *matrix.Dense[float64]
	c    *matrix.Dense[float64]
	tau0 float64

	rng       *rand.Rand
	baseSeed  uint64
	iteration int
	log       zerolog.Logger
}

// NewACSColony initializes τ uniformly at τ0 (seeded from the
// nearest-neighbour tour length from city 0), computes η and C under the
// implicit α=1, and returns a ready-to-run sequential ACS colony.
func NewACSColony(d *instance.Data, params config.Parameters, seed uint64, log zerolog.Logger) *ACSColony {
	lnn := d.NearestNeighbourTourLength(0)
	tau0 := 1.0 / (float64(d.N) * float64(lnn))

	tau, err := matrix.NewDenseFilled[float64](d.N, tau0)
	if err != nil {
		panic(err)
	}
	for i := 0; i < d.N; i++ {
		tau.Set(i, i, math.Inf(1))
	}
	eta, c := computeCombinedInfo(d, tau, acsAlpha, params.Beta)

	return &ACSColony{
		d: d, params: params,
		tau: tau, eta: eta, c: c, tau0: tau0,
		rng: deriveRNG(seed, 0), baseSeed: seed,
		log: log,
	}
}

// NewIteration advances the iteration counter. ACS has no stagnation/restart
// bookkeeping.
func (a *ACSColony) NewIteration() {
	a.iteration++
}

// Iteration returns the current iteration counter.
func (a *ACSColony) Iteration() int {
	return a.iteration
}

// ConstructSolutions places params.NumAnts ants on random starting cities,
// then advances every ant one step at a time so each local pheromone update
// is visible to every ant still taking that same step.
func (a *ACSColony) ConstructSolutions() Ant {
	ants := make([]Ant, a.params.NumAnts)
	for k := range ants {
		ants[k] = NewAnt(a.d.N, a.rng.Intn(a.d.N))
	}

	for step := 1; step < a.d.N; step++ {
		for k := range ants {
			prev := ants[k].CurrCity
			next := acsStep(prev, ants[k].Tour, a.c, a.d.N, a.params.Q0, a.rng)
			ants[k].Insert(next, a.d.D.At(next, prev))
			acsLocalUpdate(a.tau, a.eta, a.c, prev, next, a.tau0, a.params.Xi, a.params.Beta)
		}
	}

	best := ants[0]
	best.Length += a.d.D.At(best.First(), best.CurrCity)
	for _, ant := range ants[1:] {
		ant.Length += a.d.D.At(ant.First(), ant.CurrCity)
		if ant.Length < best.Length {
			best = ant
		}
	}

	return best
}

// UpdatePheromones applies the ACS global update to best-so-far's edges
// only.
func (a *ACSColony) UpdatePheromones(_, bestSoFar Ant) {
	acsGlobalUpdate(a.tau, a.eta, a.c, bestSoFar, a.params.EvaporationRate, a.params.Beta)
}

// ACSColonyParMaster parallelizes construction across ants but defers the
// local pheromone update to the master goroutine between construction
// sub-steps, so every ant sees the same C during a given step — a
// controlled staleness relaxation, trading exactness for throughput.
type ACSColonyParMaster struct {
	*ACSColony
}

// NewACSColonyParMaster wraps a fresh sequential colony's state for
// master-update parallel construction.
func NewACSColonyParMaster(d *instance.Data, params config.Parameters, seed uint64, log zerolog.Logger) *ACSColonyParMaster {
	return &ACSColonyParMaster{ACSColony: NewACSColony(d, params, seed, log)}
}

type acsMove struct {
	ant  int
	prev int
	next int
}

// ConstructSolutions fans out the move-selection for every ant at a given
// step, then applies all of that step's insertions and local pheromone
// updates serially on the master before starting the next step.
func (a *ACSColonyParMaster) ConstructSolutions() Ant {
	ants := make([]Ant, a.params.NumAnts)
	for k := range ants {
		rng := deriveRNG(a.baseSeed, a.iteration*a.params.NumAnts+k+1)
		ants[k] = NewAnt(a.d.N, rng.Intn(a.d.N))
	}

	for step := 1; step < a.d.N; step++ {
		moves := make([]acsMove, a.params.NumAnts)
		g := new(errgroup.Group)
		g.SetLimit(runtime.GOMAXPROCS(0))
		for k := range ants {
			k := k
			g.Go(func() error {
				rng := deriveRNG(a.baseSeed, (a.iteration+1)*a.params.NumAnts*a.d.N+k*a.d.N+step)
				prev := ants[k].CurrCity
				next := acsStep(prev, ants[k].Tour, a.c, a.d.N, a.params.Q0, rng)
				moves[k] = acsMove{ant: k, prev: prev, next: next}

				return nil
			})
		}
		_ = g.Wait()

		for _, mv := range moves {
			ants[mv.ant].Insert(mv.next, a.d.D.At(mv.next, mv.prev))
			acsLocalUpdate(a.tau, a.eta, a.c, mv.prev, mv.next, a.tau0, a.params.Xi, a.params.Beta)
		}
	}

	best := ants[0]
	best.Length += a.d.D.At(best.First(), best.CurrCity)
	for _, ant := range ants[1:] {
		ant.Length += a.d.D.At(ant.First(), ant.CurrCity)
		if ant.Length < best.Length {
			best = ant
		}
	}

	return best
}

// ACSColonyParSync is ACS with per-cell-locked pheromone/combined-info
// matrices: every worker ant runs independently end-to-end, taking
// matrix.LockQuad on the arc it just traversed before applying its own
// local update.
type ACSColonyParSync struct {
	d      *instance.Data
	params config.Parameters

	pher *matrix.Sync
	eta  *matrix.Dense[float64]
	comb *matrix.Sync
	tau0 float64

	baseSeed  uint64
	iteration int
	log       zerolog.Logger
}

// NewACSColonyParSync initializes τ0 the same way as NewACSColony, but
// backs τ and C with per-cell-lockable matrix.Sync matrices.
func NewACSColonyParSync(d *instance.Data, params config.Parameters, seed uint64, log zerolog.Logger) *ACSColonyParSync {
	lnn := d.NearestNeighbourTourLength(0)
	tau0 := 1.0 / (float64(d.N) * float64(lnn))

	tauDense, err := matrix.NewDenseFilled[float64](d.N, tau0)
	if err != nil {
		panic(err)
	}
	for i := 0; i < d.N; i++ {
		tauDense.Set(i, i, math.Inf(1))
	}
	eta, combDense := computeCombinedInfo(d, tauDense, acsAlpha, params.Beta)

	return &ACSColonyParSync{
		d: d, params: params,
		pher: matrix.FromDense(tauDense), eta: eta, comb: matrix.FromDense(combDense), tau0: tau0,
		baseSeed: seed, log: log,
	}
}

// NewIteration advances the iteration counter.
func (a *ACSColonyParSync) NewIteration() {
	a.iteration++
}

// Iteration returns the current iteration counter.
func (a *ACSColonyParSync) Iteration() int {
	return a.iteration
}

// acsLocalUpdateSync performs the same contraction as acsLocalUpdate but
// against matrix.Sync matrices, acquiring all four mirrored cells atomically
// via matrix.LockQuad to avoid the (i,j)/(j,i) lock-order deadlock when two
// ants traverse arcs (a,b) and (b,a) concurrently.
func (a *ACSColonyParSync) acsLocalUpdateSync(i, j int) {
	q := matrix.LockQuad(a.pher, a.comb, i, j)
	v := (1-a.params.Xi)*q.Pheromone() + a.params.Xi*a.tau0
	q.SetPheromone(v)
	q.SetCombined(totalValue(v, a.eta.At(j, i), acsAlpha, a.params.Beta))
	q.Unlock()
}

// ConstructSolutions fans out one goroutine per ant; each runs its entire
// tour independently, locking per step only the four cells of the arc it
// just traversed (both mirrored τ cells and both mirrored C cells).
func (a *ACSColonyParSync) ConstructSolutions() Ant {
	ants := make([]Ant, a.params.NumAnts)
	g := new(errgroup.Group)
	g.SetLimit(runtime.GOMAXPROCS(0))
	for k := 0; k < a.params.NumAnts; k++ {
		k := k
		g.Go(func() error {
			rng := deriveRNG(a.baseSeed, a.iteration*a.params.NumAnts+k+1)
			ant := NewAnt(a.d.N, rng.Intn(a.d.N))
			for step := 1; step < a.d.N; step++ {
				prev := ant.CurrCity
				next := acsStep(prev, ant.Tour, a.comb, a.d.N, a.params.Q0, rng)
				ant.Insert(next, a.d.D.At(next, prev))
				a.acsLocalUpdateSync(prev, next)
			}
			ant.Length += a.d.D.At(ant.First(), ant.CurrCity)
			ants[k] = ant

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

// UpdatePheromones applies the ACS global update to best-so-far's edges
// only, including the return edge to its first city, run on the master
// after all workers have finished, so it may touch cells directly without
// LockQuad.
func (a *ACSColonyParSync) UpdatePheromones(_, bestSoFar Ant) {
	rho := a.params.EvaporationRate
	reinforcement := rho * (1.0 / float64(bestSoFar.Length))
	cities := bestSoFar.Tour.Cities()
	for k := 0; k < len(cities); k++ {
		i := cities[k]
		j := cities[(k+1)%len(cities)]
		v := (1-rho)*a.pher.Load(j, i) + reinforcement
		a.pher.Store(j, i, v)
		a.pher.Store(i, j, v)
		cv := totalValue(v, a.eta.At(j, i), acsAlpha, a.params.Beta)
		a.comb.Store(j, i, cv)
		a.comb.Store(i, j, cv)
	}
}
