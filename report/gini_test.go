package report

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/lophi-data/lophi/woe"
)

func fixedNow() time.Time {
	return time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
}

func TestNewMetadata_CarriesThresholdsAndConvention(t *testing.T) {
	cfg := woe.DefaultConfig()
	cfg.IVThreshold = 0.05

	meta := NewMetadata(cfg, 0.3, 0.4, fixedNow())
	require.Equal(t, "ln(events/non_events)", meta.WoeConvention)
	require.Equal(t, "Quantile", meta.BinningStrategy)
	require.InDelta(t, 0.3, meta.Thresholds.Missing, 1e-9)
	require.InDelta(t, 0.05, meta.Thresholds.IV, 1e-9)
	require.InDelta(t, 0.4, meta.Thresholds.Correlation, 1e-9)
}

func numericBounds(lo, hi float64) (*float64, *float64) {
	return &lo, &hi
}

func TestBuildGiniAnalysis_SplitsMissingBinFromRegularBins(t *testing.T) {
	lo, hi := numericBounds(0, 10)
	records := []*woe.IvAnalysisRecord{
		{
			FeatureName: "income",
			Categorical: false,
			IV:          0.12,
			Gini:        0.3,
			Bins: []woe.BinRecord{
				{Label: "[0, 10)", LowerBound: lo, UpperBound: hi, Events: 10, NonEvents: 20, WoE: 0.1, IV: 0.05},
				{Label: "MISSING", Events: 1, NonEvents: 2, WoE: -0.2, IV: 0.01},
			},
			DropReason: woe.DropReasonNone,
		},
	}

	meta := NewMetadata(woe.DefaultConfig(), 0.3, 0.4, fixedNow())
	analysis := BuildGiniAnalysis(meta, records)
	require.Len(t, analysis.Features, 1)

	f := analysis.Features[0]
	require.Equal(t, "numeric", f.Type)
	require.Len(t, f.Bins, 1)
	require.NotNil(t, f.MissingBin)
	require.Equal(t, "MISSING", f.MissingBin.Label)
	require.False(t, f.Dropped)
}

func TestBuildGiniAnalysis_MarksDroppedFeaturesWithReason(t *testing.T) {
	records := []*woe.IvAnalysisRecord{
		{FeatureName: "noise", DropReason: woe.DropReasonLowIV},
	}

	meta := NewMetadata(woe.DefaultConfig(), 0.3, 0.4, fixedNow())
	analysis := BuildGiniAnalysis(meta, records)
	require.True(t, analysis.Features[0].Dropped)
	require.Equal(t, "LowIv", analysis.Features[0].DropReason)
}

func TestBuildBin_ComputesEventRateAndPopulationShare(t *testing.T) {
	b := woe.BinRecord{Events: 3, NonEvents: 1}
	bin := buildBin(b, 20)
	require.InDelta(t, 0.75, bin.EventRate, 1e-9)
	require.InDelta(t, 0.2, bin.PopulationShare, 1e-9)
}

func TestBuildBin_ZeroCountAndZeroTotalDoNotDivideByZero(t *testing.T) {
	bin := buildBin(woe.BinRecord{}, 0)
	require.Equal(t, 0.0, bin.EventRate)
	require.Equal(t, 0.0, bin.PopulationShare)
}
