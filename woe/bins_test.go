package woe

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestBuildBinsFromCuts_AssignsPointsToContiguousBins(t *testing.T) {
	pts := []point{
		{x: 1, y: 0, w: 1},
		{x: 2, y: 1, w: 1},
		{x: 10, y: 1, w: 1},
		{x: 11, y: 0, w: 1},
	}
	bins := buildBinsFromCuts(pts, []float64{5})

	require.Len(t, bins, 2)
	require.True(t, math.IsInf(*bins[0].LowerBound, -1))
	require.Equal(t, 5.0, *bins[0].UpperBound)
	require.Equal(t, 5.0, *bins[1].LowerBound)
	require.True(t, math.IsInf(*bins[1].UpperBound, 1))
	require.Equal(t, 1.0, bins[0].Events)
	require.Equal(t, 1.0, bins[0].NonEvents)
	require.Equal(t, 1.0, bins[1].Events)
	require.Equal(t, 1.0, bins[1].NonEvents)
}

func TestSingleBin_SpansEntireRangeAndSumsCounts(t *testing.T) {
	pts := []point{{x: 1, y: 1, w: 2}, {x: 5, y: 0, w: 3}}
	b := singleBin(pts)
	require.True(t, math.IsInf(*b.LowerBound, -1))
	require.True(t, math.IsInf(*b.UpperBound, 1))
	require.Equal(t, 2.0, b.Events)
	require.Equal(t, 3.0, b.NonEvents)
}

func TestMissingBin_CarriesLabelAndCounts(t *testing.T) {
	b := missingBin(4, 6)
	require.Equal(t, "MISSING", b.Label)
	require.Equal(t, 4.0, b.Events)
	require.Equal(t, 6.0, b.NonEvents)
}

func TestMergeTwo_PreservesOuterBounds(t *testing.T) {
	lo, hi := -1.0, 1.0
	mid := 0.0
	a := BinRecord{LowerBound: &lo, UpperBound: &mid, Events: 2, NonEvents: 3}
	b := BinRecord{LowerBound: &mid, UpperBound: &hi, Events: 4, NonEvents: 5}
	m := mergeTwo(a, b)
	require.Equal(t, &lo, m.LowerBound)
	require.Equal(t, &hi, m.UpperBound)
	require.Equal(t, 6.0, m.Events)
	require.Equal(t, 8.0, m.NonEvents)
}

func TestLabelBins_FormatsNumericBoundsAndSkipsAlreadyLabelled(t *testing.T) {
	bins := []BinRecord{
		{Label: "MISSING"},
		{LowerBound: ptrOf(math.Inf(-1)), UpperBound: ptrOf(2.5)},
		{LowerBound: ptrOf(2.5), UpperBound: ptrOf(math.Inf(1))},
	}
	labelBins(bins)

	require.Equal(t, "MISSING", bins[0].Label)
	require.Equal(t, "[-inf, 2.5)", bins[1].Label)
	require.Equal(t, "[2.5, +inf)", bins[2].Label)
}

func TestFormatBound(t *testing.T) {
	require.Equal(t, "-inf", formatBound(math.Inf(-1)))
	require.Equal(t, "+inf", formatBound(math.Inf(1)))
	require.Equal(t, "3.5", formatBound(3.5))
}
