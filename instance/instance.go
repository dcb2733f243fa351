// Package instance holds the immutable city/distance data an ACO run solves
// over: city count N and the N×N integer distance matrix D.
//
// Design principles:
//   - Deterministic, side-effect-free validation.
//   - No logging, no panics on malformed *input* — only sentinel errors.
//   - O(n²) worst case, no hidden allocations beyond what construction needs.
package instance

import (
	"errors"

	"github.com/katalvlaran/acotsp/matrix"
)

// MaxDistance is the self-loop sentinel stored at D[i,i]. math.MaxInt32 is
// used rather than math.MaxInt so that a closed-tour length sum (at most N
// additions of at most MaxDistance) never overflows a 64-bit int
// accumulator in practice while still being unmistakably larger than any
// real edge weight.
const MaxDistance = 1<<31 - 1

// Sentinel errors for instance validation.
var (
	// ErrTooFewCities indicates N < 2; a TSP tour is undefined below that.
	ErrTooFewCities = errors.New("instance: need at least 2 cities")

	// ErrAsymmetric indicates D[i][j] != D[j][i] for some i,j.
	ErrAsymmetric = errors.New("instance: distance matrix is not symmetric")

	// ErrBadDiagonal indicates D[i][i] != MaxDistance for some i.
	ErrBadDiagonal = errors.New("instance: diagonal must equal MaxDistance")
)

// Data is the immutable, read-only-shared holder of a TSP instance: N cities
// and their pairwise integer distances.
type Data struct {
	N int
	D *matrix.Dense[int]
}

// New validates d and wraps it in a Data. d must be square, symmetric, have
// every diagonal entry equal to MaxDistance, and have width >= 2.
//
// Complexity: O(N^2).
func New(d *matrix.Dense[int]) (*Data, error) {
	n := d.Width()
	if n < 2 {
		return nil, ErrTooFewCities
	}
	for row := 0; row < n; row++ {
		if d.At(row, row) != MaxDistance {
			return nil, ErrBadDiagonal
		}
		for col := row + 1; col < n; col++ {
			if d.At(col, row) != d.At(row, col) {
				return nil, ErrAsymmetric
			}
		}
	}

	return &Data{N: n, D: d}, nil
}

// NearestNeighbourTourLength builds a greedy nearest-neighbour tour starting
// at city `start` and returns its closed length, including the return edge
// to `start`. Used by MMAS/ACS initialization to seed trail_max/τ₀.
//
// Complexity: O(N^2).
func (d *Data) NearestNeighbourTourLength(start int) int {
	visited := make([]bool, d.N)
	visited[start] = true
	curr := start
	length := 0

	for visitedCount := 1; visitedCount < d.N; visitedCount++ {
		next := -1
		nextLen := MaxDistance
		row := d.D.Row(curr)
		for city, dist := range row {
			if !visited[city] && dist < nextLen {
				next = city
				nextLen = dist
			}
		}
		visited[next] = true
		length += nextLen
		curr = next
	}
	length += d.D.At(start, curr)

	return length
}
