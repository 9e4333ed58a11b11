package main

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/lophi-data/lophi/woe"
)

func TestPipelineConfig_TranslatesFlagsVerbatim(t *testing.T) {
	opts := DefaultRunOptions()
	opts.Target = "bad_flag"
	opts.WeightColumn = "wt"
	opts.DropColumns = "a, b ,c"
	opts.BinningStrategy = "CART"
	opts.SolverTrend = "asc"
	opts.MissingThreshold = 0.2

	cfg, err := opts.pipelineConfig()
	require.NoError(t, err)
	require.Equal(t, "bad_flag", cfg.TargetName)
	require.Equal(t, "wt", cfg.WeightName)
	require.Equal(t, []string{"a", "b", "c"}, cfg.DropColumns)
	require.Equal(t, woe.CART, cfg.WoE.BinningStrategy)
	require.Equal(t, woe.TrendAsc, cfg.WoE.SolverTrend)
	require.InDelta(t, 0.2, cfg.MissingThreshold, 1e-12)
}

func TestPipelineConfig_EventValuesOnlySetWhenFlagged(t *testing.T) {
	opts := DefaultRunOptions()
	opts.Target = "bad_flag"

	cfg, err := opts.pipelineConfig()
	require.NoError(t, err)
	require.Nil(t, cfg.EventValue)
	require.Nil(t, cfg.NonEventValue)

	opts.HasEventValue = true
	opts.EventValue = 1
	cfg, err = opts.pipelineConfig()
	require.NoError(t, err)
	require.NotNil(t, cfg.EventValue)
	require.InDelta(t, 1, *cfg.EventValue, 1e-12)
}

func TestPipelineConfig_RejectsUnknownBinningStrategy(t *testing.T) {
	opts := DefaultRunOptions()
	opts.Target = "bad_flag"
	opts.BinningStrategy = "bogus"

	_, err := opts.pipelineConfig()
	require.Error(t, err)
}

func TestPipelineConfig_RejectsUnknownSolverTrend(t *testing.T) {
	opts := DefaultRunOptions()
	opts.Target = "bad_flag"
	opts.SolverTrend = "bogus"

	_, err := opts.pipelineConfig()
	require.Error(t, err)
}

func TestParseCompression_RejectsUnknownCodec(t *testing.T) {
	_, err := parseCompression("brotli")
	require.Error(t, err)
}
