package tsplib

import "errors"

// Sentinel errors returned while parsing a TSPLIB instance file.
var (
	// ErrMissingDimension indicates the file never declared DIMENSION.
	ErrMissingDimension = errors.New("tsplib: missing DIMENSION field")

	// ErrUnsupportedEdgeWeightType indicates an EDGE_WEIGHT_TYPE other than
	// EUC_2D, the only format this reader implements.
	ErrUnsupportedEdgeWeightType = errors.New("tsplib: only EDGE_WEIGHT_TYPE EUC_2D is supported")

	// ErrMissingCoordSection indicates the file has no NODE_COORD_SECTION.
	ErrMissingCoordSection = errors.New("tsplib: missing NODE_COORD_SECTION")

	// ErrMalformedCoordLine indicates a NODE_COORD_SECTION line could not be
	// parsed as "<index> <x> <y>". The reader also returns it for a
	// DIMENSION or EDGE_WEIGHT_TYPE header whose value is missing or, for
	// DIMENSION, not an integer.
	ErrMalformedCoordLine = errors.New("tsplib: malformed coordinate line")

	// ErrNodeCountMismatch indicates NODE_COORD_SECTION had a different
	// number of entries than DIMENSION declared.
	ErrNodeCountMismatch = errors.New("tsplib: node count does not match declared DIMENSION")
)
