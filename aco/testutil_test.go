package aco_test

import (
	"testing"

	"github.com/katalvlaran/acotsp/instance"
	"github.com/katalvlaran/acotsp/matrix"
	"github.com/stretchr/testify/require"
)

// square4 builds a 4-city square instance: corners at
// (0,0),(0,10),(10,10),(10,0), giving side length 10 and diagonal length 14
// (rounded Euclidean). Optimal tour length is 40 (the four sides).
func square4(t *testing.T) *instance.Data {
	t.Helper()

	const M = instance.MaxDistance
	d, err := matrix.NewDense[int](4)
	require.NoError(t, err)
	rows := [][]int{
		{M, 10, 14, 10},
		{10, M, 10, 14},
		{14, 10, M, 10},
		{10, 14, 10, M},
	}
	for row := 0; row < 4; row++ {
		for col := 0; col < 4; col++ {
			d.Set(col, row, rows[row][col])
		}
	}

	data, err := instance.New(d)
	require.NoError(t, err)

	return data
}

// twoCity builds a minimal 2-city instance with both edges set to dist.
func twoCity(t *testing.T, dist int) *instance.Data {
	t.Helper()

	const M = instance.MaxDistance
	d, err := matrix.NewDense[int](2)
	require.NoError(t, err)
	d.Set(0, 0, M)
	d.Set(1, 1, M)
	d.Set(1, 0, dist)
	d.Set(0, 1, dist)

	data, err := instance.New(d)
	require.NoError(t, err)

	return data
}
