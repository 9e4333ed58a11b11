package woe

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
)

func scoredBins(t *testing.T, bins []BinRecord, totalEvent, totalNonEvent, smoothing float64) []BinRecord {
	t.Helper()
	rescoreBins(bins, totalEvent, totalNonEvent, smoothing)

	return bins
}

func TestGreedyTrendSolver_TrendNoneReturnsBaselineUnchanged(t *testing.T) {
	bins := []BinRecord{{Events: 1, NonEvents: 9}, {Events: 9, NonEvents: 1}}
	cfg := DefaultConfig()
	cfg.SolverTrend = TrendNone

	out, ok := GreedyTrendSolver{}.Refine(context.Background(), bins, 10, 10, cfg)
	require.True(t, ok)
	require.Equal(t, bins, out)
}

func TestGreedyTrendSolver_EnforcesAscendingTrend(t *testing.T) {
	// WoE order as given: low, high, low -- violates ascending.
	bins := scoredBins(t, []BinRecord{
		{Events: 1, NonEvents: 9},
		{Events: 9, NonEvents: 1},
		{Events: 1, NonEvents: 9},
	}, 11, 19, 0.5)
	cfg := DefaultConfig()
	cfg.UseSolver = true
	cfg.SolverTrend = TrendAsc

	out, ok := GreedyTrendSolver{}.Refine(context.Background(), bins, 11, 19, cfg)
	require.True(t, ok)
	require.True(t, woeNonDecreasing(out))
}

func TestGreedyTrendSolver_AutoPicksFeasibleHigherIV(t *testing.T) {
	bins := scoredBins(t, []BinRecord{
		{Events: 1, NonEvents: 9},
		{Events: 5, NonEvents: 5},
		{Events: 9, NonEvents: 1},
	}, 15, 15, 0.5)
	cfg := DefaultConfig()
	cfg.UseSolver = true
	cfg.SolverTrend = TrendAuto

	out, ok := GreedyTrendSolver{}.Refine(context.Background(), bins, 15, 15, cfg)
	require.True(t, ok)
	require.True(t, woeNonDecreasing(out) || woeNonIncreasing(out))
}

func TestGreedyTrendSolver_PeakFindsApex(t *testing.T) {
	bins := scoredBins(t, []BinRecord{
		{Events: 1, NonEvents: 9},
		{Events: 9, NonEvents: 1},
		{Events: 1, NonEvents: 9},
	}, 11, 19, 0.5)
	cfg := DefaultConfig()
	cfg.UseSolver = true
	cfg.SolverTrend = TrendPeak

	out, ok := GreedyTrendSolver{}.Refine(context.Background(), bins, 11, 19, cfg)
	require.True(t, ok)
	require.NotEmpty(t, out)
}

func TestEnforceTrend_SingleBinIsInfeasible(t *testing.T) {
	bins := scoredBins(t, []BinRecord{{Events: 5, NonEvents: 5}}, 5, 5, 0.5)
	cfg := DefaultConfig()
	cfg.MinBinSamples = 100

	out, ok := enforceTrend(bins, TrendAsc, 5, 5, cfg)
	require.False(t, ok)
	require.Nil(t, out)
}

func TestMergeAt_ShrinksSliceByOne(t *testing.T) {
	bins := []BinRecord{{Events: 1}, {Events: 2}, {Events: 3}}
	out := mergeAt(bins, 1)
	require.Len(t, out, 2)
	require.Equal(t, 1.0, out[0].Events)
	require.Equal(t, 5.0, out[1].Events)
}

func TestAnyBelow(t *testing.T) {
	bins := []BinRecord{{Count: 5}, {Count: 1}}
	require.True(t, anyBelow(bins, 2))
	require.False(t, anyBelow(bins, 1))
}
