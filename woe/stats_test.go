package woe

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestWeightAt_NilWeightsMeanOne(t *testing.T) {
	require.Equal(t, 1.0, weightAt(nil, 3))
	require.Equal(t, 2.5, weightAt([]float64{1, 2.5, 3}, 1))
}

func TestWeightedQuantileCuts_SplitsIntoEqualWeightGroups(t *testing.T) {
	pts := make([]point, 0, 10)
	for i := 1; i <= 10; i++ {
		pts = append(pts, point{x: float64(i), w: 1})
	}

	cuts := weightedQuantileCuts(pts, 2)
	require.Len(t, cuts, 1)
	require.InDelta(t, 5.5, cuts[0], 1e-9)
}

func TestWeightedQuantileCuts_DegenerateInputs(t *testing.T) {
	require.Nil(t, weightedQuantileCuts(nil, 4))
	require.Nil(t, weightedQuantileCuts([]point{{x: 1, w: 1}}, 1))
	require.Nil(t, weightedQuantileCuts([]point{{x: 1, w: 0}}, 2))
}

func TestWeightedQuantileCuts_CollapsesDuplicateBoundaries(t *testing.T) {
	pts := []point{{x: 1, w: 1}, {x: 1, w: 1}, {x: 1, w: 1}, {x: 2, w: 1}}
	cuts := weightedQuantileCuts(pts, 4)
	for i := 1; i < len(cuts); i++ {
		require.NotEqual(t, cuts[i-1], cuts[i])
	}
}

func TestGiniImpurity_PureGroupIsZero(t *testing.T) {
	require.Equal(t, 0.0, giniImpurity(10, 0))
	require.Equal(t, 0.0, giniImpurity(0, 0))
}

func TestGiniImpurity_BalancedGroupIsMax(t *testing.T) {
	require.InDelta(t, 0.5, giniImpurity(5, 5), 1e-9)
}

func TestSmoothedWoeIV_SymmetricRatesGiveZeroWoe(t *testing.T) {
	woeVal, ivVal := smoothedWoeIV(50, 50, 100, 100, 0.5, 2)
	require.InDelta(t, 0, woeVal, 1e-9)
	require.InDelta(t, 0, ivVal, 1e-9)
}

func TestSmoothedWoeIV_SkewedBinHasNonzeroIV(t *testing.T) {
	woeVal, ivVal := smoothedWoeIV(90, 10, 100, 100, 0.5, 2)
	require.Greater(t, woeVal, 0.0)
	require.Greater(t, ivVal, 0.0)
}

func TestGiniFromBins_PerfectSeparationIsOne(t *testing.T) {
	bins := []BinRecord{
		{WoE: -1, Events: 0, NonEvents: 50},
		{WoE: 1, Events: 50, NonEvents: 0},
	}
	g := giniFromBins(bins)
	require.InDelta(t, 1.0, g, 1e-9)
}

func TestGiniFromBins_NoSeparationIsZero(t *testing.T) {
	bins := []BinRecord{
		{WoE: 0, Events: 25, NonEvents: 25},
		{WoE: 0, Events: 25, NonEvents: 25},
	}
	g := giniFromBins(bins)
	require.InDelta(t, 0, g, 1e-9)
}

func TestGiniFromBins_DegenerateTotalsReturnZero(t *testing.T) {
	require.Equal(t, 0.0, giniFromBins([]BinRecord{{Events: 0, NonEvents: 0}}))
	require.False(t, math.IsNaN(giniFromBins(nil)))
}
