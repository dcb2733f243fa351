package tsplib

import "math"

// Coord is a 2D Euclidean point as read from a NODE_COORD_SECTION.
type Coord struct {
	X, Y float64
}

// Euc2D computes the TSPLIB EUC_2D rounded Euclidean distance between a and
// b: nint(sqrt((ax-bx)^2 + (ay-by)^2)). TSPLIB's "round to nearest" (nint)
// uses ordinary round-half-away-from-zero, which math.Round already
// implements.
func Euc2D(a, b Coord) int {
	dx := a.X - b.X
	dy := a.Y - b.Y

	return int(math.Round(math.Sqrt(dx*dx + dy*dy)))
}
