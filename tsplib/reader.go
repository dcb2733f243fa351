// Package tsplib reads TSPLIB EUC_2D instance files into an instance.Data.
// Only the subset of the TSPLIB format this solver needs is supported:
// NAME/COMMENT/TYPE/DIMENSION/EDGE_WEIGHT_TYPE headers followed by a
// NODE_COORD_SECTION of "<index> <x> <y>" lines, terminated by EOF or a
// line starting with EOF.
package tsplib

import (
	"bufio"
	"io"
	"strconv"
	"strings"

	"github.com/katalvlaran/acotsp/instance"
	"github.com/katalvlaran/acotsp/matrix"
)

// Read parses a TSPLIB EUC_2D file from r and returns the resulting
// validated instance.Data.
func Read(r io.Reader) (*instance.Data, error) {
	dimension := -1
	sawEdgeWeightType := false
	coords := make(map[int]Coord)

	scanner := bufio.NewScanner(r)
	inCoordSection := false
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		if inCoordSection {
			if line == "EOF" || strings.HasPrefix(line, "EOF") {
				break
			}
			idx, c, err := parseCoordLine(line)
			if err != nil {
				return nil, err
			}
			coords[idx] = c
			continue
		}

		switch {
		case strings.HasPrefix(line, "DIMENSION"):
			v, err := parseKeyValue(line)
			if err != nil {
				return nil, err
			}
			dimension, err = strconv.Atoi(v)
			if err != nil {
				return nil, ErrMalformedCoordLine
			}
		case strings.HasPrefix(line, "EDGE_WEIGHT_TYPE"):
			v, err := parseKeyValue(line)
			if err != nil {
				return nil, err
			}
			if strings.TrimSpace(v) != "EUC_2D" {
				return nil, ErrUnsupportedEdgeWeightType
			}
			sawEdgeWeightType = true
		case strings.HasPrefix(line, "NODE_COORD_SECTION"):
			inCoordSection = true
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}

	if dimension < 0 {
		return nil, ErrMissingDimension
	}
	if !sawEdgeWeightType {
		return nil, ErrUnsupportedEdgeWeightType
	}
	if len(coords) == 0 {
		return nil, ErrMissingCoordSection
	}
	if len(coords) != dimension {
		return nil, ErrNodeCountMismatch
	}

	ordered := make([]Coord, dimension)
	for i := 0; i < dimension; i++ {
		c, ok := coords[i+1]
		if !ok {
			return nil, ErrNodeCountMismatch
		}
		ordered[i] = c
	}

	d, err := matrix.NewDense[int](dimension)
	if err != nil {
		return nil, err
	}
	for row := 0; row < dimension; row++ {
		for col := 0; col < dimension; col++ {
			if row == col {
				d.Set(col, row, instance.MaxDistance)
				continue
			}
			d.Set(col, row, Euc2D(ordered[row], ordered[col]))
		}
	}

	return instance.New(d)
}

// parseKeyValue splits a "KEY: value" or "KEY value" header line.
func parseKeyValue(line string) (string, error) {
	if idx := strings.IndexByte(line, ':'); idx >= 0 {
		return strings.TrimSpace(line[idx+1:]), nil
	}
	fields := strings.Fields(line)
	if len(fields) < 2 {
		return "", ErrMalformedCoordLine
	}

	return fields[1], nil
}

// parseCoordLine parses "<index> <x> <y>" into a 1-based node index and its
// coordinate.
func parseCoordLine(line string) (int, Coord, error) {
	fields := strings.Fields(line)
	if len(fields) < 3 {
		return 0, Coord{}, ErrMalformedCoordLine
	}
	idx, err := strconv.Atoi(fields[0])
	if err != nil {
		return 0, Coord{}, ErrMalformedCoordLine
	}
	x, err := strconv.ParseFloat(fields[1], 64)
	if err != nil {
		return 0, Coord{}, ErrMalformedCoordLine
	}
	y, err := strconv.ParseFloat(fields[2], 64)
	if err != nil {
		return 0, Coord{}, ErrMalformedCoordLine
	}

	return idx, Coord{X: x, Y: y}, nil
}
