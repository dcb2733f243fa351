// Package matrix provides the dense, flat-array square matrices the ACO engine
// builds its pheromone, heuristic, and combined-info fields on top of.
//
// Two shapes are offered:
//
//	Dense[T]  — a plain (col,row)-indexed flat matrix, no locking. Used for the
//	            distance matrix and for sequential/master-update colonies' τ/η/C.
//	Sync      — a float64 matrix with one sync.RWMutex-guarded cell per entry,
//	            plus LockQuad for acquiring the four cells touched by a
//	            symmetric-matrix update without risking an (i,j)/(j,i) deadlock.
//	            Used by the ACS "sync" parallel colony.
//
// Neither type resizes after construction.
package matrix
