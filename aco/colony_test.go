package aco

import (
	"math"
	"testing"

	"github.com/katalvlaran/acotsp/instance"
	"github.com/katalvlaran/acotsp/matrix"
	"github.com/stretchr/testify/require"
)

func testInstance(t *testing.T) *instance.Data {
	t.Helper()

	const M = instance.MaxDistance
	d, err := matrix.NewDense[int](3)
	require.NoError(t, err)
	rows := [][]int{
		{M, 1, 2},
		{1, M, 3},
		{2, 3, M},
	}
	for row := 0; row < 3; row++ {
		for col := 0; col < 3; col++ {
			d.Set(col, row, rows[row][col])
		}
	}
	data, err := instance.New(d)
	require.NoError(t, err)

	return data
}

func TestCombinedInfoSymmetric(t *testing.T) {
	d := testInstance(t)
	tau, err := matrix.NewDenseFilled[float64](3, 2.0)
	require.NoError(t, err)

	_, c := computeCombinedInfo(d, tau, 1.0, 5.0)
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			require.Equal(t, c.At(j, i), c.At(i, j))
		}
	}
}

func TestRecomputeCombinedInfoIdempotentWhenTauUnchanged(t *testing.T) {
	d := testInstance(t)
	tau, err := matrix.NewDenseFilled[float64](3, 2.0)
	require.NoError(t, err)

	eta, c := computeCombinedInfo(d, tau, 1.0, 5.0)
	before := append([]float64(nil), c.Row(0)...)

	recomputeCombinedInfo(d, tau, eta, c, 1.0, 5.0)
	require.InDeltaSlice(t, before, c.Row(0), 1e-12)
}

func TestTotalValueMatchesCombinedInfo(t *testing.T) {
	d := testInstance(t)
	tau, err := matrix.NewDenseFilled[float64](3, 2.0)
	require.NoError(t, err)

	eta, c := computeCombinedInfo(d, tau, 1.0, 5.0)
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			if i == j {
				continue
			}
			want := totalValue(tau.At(j, i), eta.At(j, i), 1.0, 5.0)
			require.InDelta(t, want, c.At(j, i), 1e-12)
		}
	}
}

func TestTourLengthClosedTour(t *testing.T) {
	d := testInstance(t)
	require.Equal(t, 1+3+2, tourLength(d, []int{0, 1, 2}))
}

func TestComputeHeuristicInfoFormula(t *testing.T) {
	d := testInstance(t)
	eta := computeHeuristicInfo(d)
	require.InDelta(t, 1.0/(1.0+0.1), eta.At(1, 0), 1e-12)
	require.True(t, math.IsNaN(eta.At(0, 0)) == false) // diagonal stays the zero value, never NaN
}
