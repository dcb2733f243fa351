package matrix

import "sync"

// cell is one independently lockable float64 entry.
type cell struct {
	mu    sync.RWMutex
	value float64
}

// Sync is a width×width float64 matrix in which every cell carries its own
// sync.RWMutex, so independent goroutines may hold locks on different cells
// at the same time.
//
// A *Sync is always shared by pointer across goroutines; Go's garbage
// collector makes an explicit reference-counted wrapper unnecessary.
type Sync struct {
	width int
	cells []cell
}

// NewSync allocates a width×width Sync matrix with every cell set to fill.
func NewSync(width int, fill float64) (*Sync, error) {
	if width <= 0 {
		return nil, ErrInvalidDimensions
	}
	s := &Sync{width: width, cells: make([]cell, width*width)}
	for i := range s.cells {
		s.cells[i].value = fill
	}

	return s, nil
}

// FromDense copies a *Dense[float64] into a freshly allocated Sync matrix.
func FromDense(d *Dense[float64]) *Sync {
	s := &Sync{width: d.width, cells: make([]cell, len(d.data))}
	for i, v := range d.data {
		s.cells[i].value = v
	}

	return s
}

func (s *Sync) index(col, row int) int {
	if col < 0 || col >= s.width || row < 0 || row >= s.width {
		panic(denseErrorf("Sync", col, row, ErrIndexOutOfBounds))
	}

	return row*s.width + col
}

// At is an alias for Load, so *Sync satisfies the same (col, row int) float64
// reader shape as *Dense[float64] for code that is agnostic to which backing
// matrix it reads from.
func (s *Sync) At(col, row int) float64 {
	return s.Load(col, row)
}

// Load atomically reads (col, row) under its own read lock.
func (s *Sync) Load(col, row int) float64 {
	c := &s.cells[s.index(col, row)]
	c.mu.RLock()
	v := c.value
	c.mu.RUnlock()

	return v
}

// Store atomically writes (col, row) under its own write lock.
func (s *Sync) Store(col, row int, v float64) {
	c := &s.cells[s.index(col, row)]
	c.mu.Lock()
	c.value = v
	c.mu.Unlock()
}

// arcOrder is the single process-wide mutex used solely to acquire the four
// cells touched by a symmetric-pair update ((i,j), (j,i) in one matrix and
// their mirrors in another) atomically, without each caller having to agree
// on a global cell-locking order. It is never held across the numeric
// computation that follows acquisition — only across the acquire step
// itself.
var arcOrder sync.Mutex

// QuadLock holds write locks on four cells — (i,j) and (j,i) in pheromones,
// (i,j) and (j,i) in combinedInfo — acquired atomically so that two
// goroutines racing to update arcs (a,b) and (b,a) concurrently can never
// deadlock waiting on each other's locks. Unlock releases all four, in
// reverse acquisition order.
type QuadLock struct {
	pherIJ, pherJI, combIJ, combJI *cell
}

// LockQuad acquires write locks on pheromones[i][j], pheromones[j][i],
// combinedInfo[i][j], and combinedInfo[j][i], in that order, under the
// protection of the package-wide arc-order mutex (held only for the
// acquisition, never for the caller's subsequent arithmetic).
func LockQuad(pheromones, combinedInfo *Sync, i, j int) *QuadLock {
	arcOrder.Lock()
	q := &QuadLock{
		pherIJ: &pheromones.cells[pheromones.index(i, j)],
		pherJI: &pheromones.cells[pheromones.index(j, i)],
		combIJ: &combinedInfo.cells[combinedInfo.index(i, j)],
		combJI: &combinedInfo.cells[combinedInfo.index(j, i)],
	}
	q.pherIJ.mu.Lock()
	q.pherJI.mu.Lock()
	q.combIJ.mu.Lock()
	q.combJI.mu.Lock()
	arcOrder.Unlock()

	return q
}

// SetPheromone writes both pheromone cells (they are always mirrored).
func (q *QuadLock) SetPheromone(v float64) {
	q.pherIJ.value = v
	q.pherJI.value = v
}

// Pheromone reads the (i,j) pheromone cell (== (j,i), already mirrored).
func (q *QuadLock) Pheromone() float64 {
	return q.pherIJ.value
}

// SetCombined writes both combined-info cells (they are always mirrored).
func (q *QuadLock) SetCombined(v float64) {
	q.combIJ.value = v
	q.combJI.value = v
}

// Unlock releases all four cells in reverse acquisition order.
func (q *QuadLock) Unlock() {
	q.combJI.mu.Unlock()
	q.combIJ.mu.Unlock()
	q.pherJI.mu.Unlock()
	q.pherIJ.mu.Unlock()
}

// Width returns the matrix's row/column count.
func (s *Sync) Width() int {
	return s.width
}

// Snapshot copies the Sync matrix into a plain Dense[float64], taking each
// cell's read lock in turn. The result is not a single atomic snapshot of
// the whole matrix (no global lock is held across the copy), which is
// acceptable here — it is only ever used for logging/inspection/tests, never
// on the ACO hot path.
func (s *Sync) Snapshot() *Dense[float64] {
	d, err := NewDense[float64](s.width)
	if err != nil {
		panic(err)
	}
	for i := range s.cells {
		s.cells[i].mu.RLock()
		d.data[i] = s.cells[i].value
		s.cells[i].mu.RUnlock()
	}

	return d
}
