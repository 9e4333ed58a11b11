package pipeline

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/lophi-data/lophi/columnstore"
)

func TestExceedsCeiling_BoundaryBehavior(t *testing.T) {
	require.False(t, exceedsCeiling(0, 0), "threshold=0 drops nothing at exactly zero")
	require.True(t, exceedsCeiling(0.01, 0))
	require.True(t, exceedsCeiling(1, 1), "threshold=1 drops everything eligible, including ratio=1")
	require.False(t, exceedsCeiling(1, 1.1))
}

func TestWeightedMissingRatio_Unweighted(t *testing.T) {
	valid := []bool{true, true, false, false}
	col := columnstore.NewFloat64Column("x", []float64{1, 2, 0, 0}, valid)
	require.InDelta(t, 0.5, weightedMissingRatio(col, nil), 1e-9)
}

func TestWeightedMissingRatio_Weighted(t *testing.T) {
	valid := []bool{true, false}
	col := columnstore.NewFloat64Column("x", []float64{1, 0}, valid)
	weights := []float64{3, 1}
	require.InDelta(t, 0.25, weightedMissingRatio(col, weights), 1e-9)
}

func TestWeightedMissingRatio_AllZeroWeightReturnsZero(t *testing.T) {
	valid := []bool{true, false}
	col := columnstore.NewFloat64Column("x", []float64{1, 0}, valid)
	weights := []float64{0, 0}
	require.Equal(t, 0.0, weightedMissingRatio(col, weights))
}

func TestMissingRatios_CoversEveryNonTargetNonWeightFeature(t *testing.T) {
	allValid := []bool{true, true, true, true}
	mostlyNull := []bool{true, false, false, false}

	target := columnstore.NewFloat64Column("target", []float64{0, 1, 0, 1}, allValid)
	sparse := columnstore.NewFloat64Column("sparse", []float64{1, 0, 0, 0}, mostlyNull)
	dense := columnstore.NewFloat64Column("dense", []float64{1, 2, 3, 4}, allValid)

	store, err := columnstore.New(target, sparse, dense)
	require.NoError(t, err)

	ratios := missingRatios(store, nil, "target", "")
	require.Len(t, ratios, 2)
	require.InDelta(t, 0.75, ratios["sparse"], 1e-9)
	require.InDelta(t, 0, ratios["dense"], 1e-9)
}

func TestMissingStage_SkipsTargetAndWeightAndDropsAboveThreshold(t *testing.T) {
	allValid := []bool{true, true, true, true}
	mostlyNull := []bool{true, false, false, false}

	target := columnstore.NewFloat64Column("target", []float64{0, 1, 0, 1}, allValid)
	weight := columnstore.NewFloat64Column("weight", []float64{1, 1, 1, 1}, allValid)
	sparse := columnstore.NewFloat64Column("sparse", []float64{1, 0, 0, 0}, mostlyNull)
	dense := columnstore.NewFloat64Column("dense", []float64{1, 2, 3, 4}, allValid)

	store, err := columnstore.New(target, weight, sparse, dense)
	require.NoError(t, err)

	drops := missingStage(store, nil, "target", "weight", 0.5)
	require.Len(t, drops, 1)
	require.Equal(t, "sparse", drops[0].FeatureName)
	require.InDelta(t, 0.75, drops[0].MissingRatio, 1e-9)
}
