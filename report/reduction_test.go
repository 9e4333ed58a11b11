package report

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/lophi-data/lophi/columnstore"
	"github.com/lophi-data/lophi/correlation"
	"github.com/lophi-data/lophi/pipeline"
	"github.com/lophi-data/lophi/woe"
)

func buildTestResult(t *testing.T) *pipeline.Result {
	t.Helper()

	valid := []bool{true, true, true}
	store, err := columnstore.New(
		columnstore.NewFloat64Column("target", []float64{0, 1, 0}, valid),
		columnstore.NewFloat64Column("kept_feature", []float64{1, 2, 3}, valid),
	)
	require.NoError(t, err)

	return &pipeline.Result{
		InitialColumnCount: 5,
		UserDropped:        []string{"id"},
		Missing:            []pipeline.MissingDrop{{FeatureName: "sparse_feature", MissingRatio: 0.9}},
		MissingRatios: map[string]float64{
			"sparse_feature":    0.9,
			"kept_feature":      0.0,
			"noisy_feature":     0.1,
			"redundant_feature": 0.0,
		},
		IV: []*woe.IvAnalysisRecord{
			{FeatureName: "kept_feature", IV: 0.1, Gini: 0.2, DropReason: woe.DropReasonNone},
			{FeatureName: "noisy_feature", IV: 0.001, Gini: 0.01, DropReason: woe.DropReasonLowIV},
			{FeatureName: "redundant_feature", IV: 0.08, Gini: 0.15, DropReason: woe.DropReasonNone},
		},
		Correlation: &correlation.Result{
			Matrix: correlation.NewMatrix([]string{"kept_feature", "redundant_feature"}),
			Dropped: []correlation.DropRecord{
				{
					FeatureName: "redundant_feature",
					CausedBy: []correlation.Pair{
						{FeatureA: "kept_feature", FeatureB: "redundant_feature", Rho: 0.92},
					},
				},
			},
		},
		Store: store,
	}
}

func TestBuildReductionReport_CountsAndStageDrops(t *testing.T) {
	result := buildTestResult(t)
	meta := NewMetadata(woe.DefaultConfig(), 0.3, 0.4, fixedNow())

	rr := BuildReductionReport(meta, result)
	require.Equal(t, 5, rr.InitialColumnCount)
	require.Equal(t, 2, rr.FinalColumnCount)
	require.Equal(t, []string{"id"}, rr.UserDropped)
	require.Len(t, rr.Missing, 1)
	require.Equal(t, "sparse_feature", rr.Missing[0].FeatureName)
	require.Len(t, rr.LowIV, 1)
	require.Equal(t, "noisy_feature", rr.LowIV[0].FeatureName)
	require.Len(t, rr.Correlation, 1)
	require.Equal(t, "redundant_feature", rr.Correlation[0].FeatureName)
	require.ElementsMatch(t, []string{"target", "kept_feature"}, rr.FinalColumns)
}

func TestBuildSummaryRows_OneRowPerFeatureWithCorrectDropReason(t *testing.T) {
	result := buildTestResult(t)
	rows := BuildSummaryRows(result)

	byName := make(map[string]SummaryRow, len(rows))
	for _, r := range rows {
		byName[r.Name] = r
	}

	require.Equal(t, "dropped", byName["sparse_feature"].InitialStatus)
	require.Equal(t, "missing", byName["sparse_feature"].DroppedBy)

	require.Equal(t, "dropped", byName["noisy_feature"].InitialStatus)
	require.Equal(t, "iv", byName["noisy_feature"].DroppedBy)

	require.Equal(t, "dropped", byName["redundant_feature"].InitialStatus)
	require.Equal(t, "correlation", byName["redundant_feature"].DroppedBy)
	require.Equal(t, "kept_feature: 0.92", byName["redundant_feature"].CorrelatedWith)

	require.Equal(t, "kept", byName["kept_feature"].InitialStatus)
	require.Empty(t, byName["kept_feature"].DroppedBy)
}

func TestFormatCorrelatedWith_NamesTheOtherFeatureRegardlessOfSide(t *testing.T) {
	pairs := []correlation.Pair{
		{FeatureA: "dropped", FeatureB: "survivorA", Rho: 0.9},
		{FeatureA: "survivorB", FeatureB: "dropped", Rho: 0.8},
	}
	require.Equal(t, "survivorA: 0.90 | survivorB: 0.80", formatCorrelatedWith("dropped", pairs))
}
