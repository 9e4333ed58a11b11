package main

import (
	"fmt"
	"strings"

	"github.com/lophi-data/lophi/format"
	"github.com/lophi-data/lophi/internal/errs"
	"github.com/lophi-data/lophi/pipeline"
	"github.com/lophi-data/lophi/woe"
)

func unknownFlagValueErr(flag, value string) error {
	return fmt.Errorf("%w: --%s=%q", errs.ErrUnknownFlagValue, flag, value)
}

// RunOptions holds every flag of the default pipeline command (spec.md §6
// "CLI surface").
type RunOptions struct {
	Input  string
	Target string
	Output string

	EventValue    float64
	HasEventValue bool
	NonEventValue float64
	HasNonEvent   bool

	MissingThreshold     float64
	GiniThreshold        float64
	CorrelationThreshold float64

	BinningStrategy    string
	GiniBins           int
	Prebins            int
	CartMinBinPct      float64
	MinCategorySamples float64

	UseSolver     bool
	SolverTrend   string
	SolverTimeout float64
	SolverGap     float64

	WeightColumn      string
	DropColumns       string
	InferSchemaLength int

	NoConfirm bool

	Compression string
}

// DefaultRunOptions mirrors pipeline.DefaultConfig()/woe.DefaultConfig()
// so the CLI's flag defaults and the library's programmatic defaults never
// drift apart.
func DefaultRunOptions() *RunOptions {
	cfg := pipeline.DefaultConfig()

	return &RunOptions{
		MissingThreshold:     cfg.MissingThreshold,
		GiniThreshold:        cfg.WoE.IVThreshold,
		CorrelationThreshold: cfg.CorrelationThreshold,
		BinningStrategy:      "quantile",
		GiniBins:             cfg.WoE.GiniBins,
		Prebins:              cfg.WoE.Prebins,
		CartMinBinPct:        cfg.WoE.CartMinBinPct,
		MinCategorySamples:   cfg.WoE.MinCategorySamples,
		UseSolver:            cfg.WoE.UseSolver,
		SolverTrend:          "none",
		SolverTimeout:        cfg.WoE.SolverTimeoutS,
		SolverGap:            cfg.WoE.SolverGap,
		InferSchemaLength:    10000,
		Compression:          "zstd",
	}
}

// pipelineConfig translates the flag surface into a pipeline.Config,
// independent of whether the underlying values are valid; validation
// happens once inside pipeline.Controller.Run via Config.Validate.
func (o *RunOptions) pipelineConfig() (pipeline.Config, error) {
	cfg := pipeline.DefaultConfig()
	cfg.TargetName = o.Target
	cfg.WeightName = o.WeightColumn
	cfg.MissingThreshold = o.MissingThreshold
	cfg.CorrelationThreshold = o.CorrelationThreshold

	if o.HasEventValue {
		v := o.EventValue
		cfg.EventValue = &v
	}
	if o.HasNonEvent {
		v := o.NonEventValue
		cfg.NonEventValue = &v
	}
	if o.DropColumns != "" {
		for _, name := range strings.Split(o.DropColumns, ",") {
			name = strings.TrimSpace(name)
			if name != "" {
				cfg.DropColumns = append(cfg.DropColumns, name)
			}
		}
	}

	strategy, err := parseBinningStrategy(o.BinningStrategy)
	if err != nil {
		return pipeline.Config{}, err
	}
	trend, err := parseSolverTrend(o.SolverTrend)
	if err != nil {
		return pipeline.Config{}, err
	}

	cfg.WoE.BinningStrategy = strategy
	cfg.WoE.GiniBins = o.GiniBins
	cfg.WoE.Prebins = o.Prebins
	cfg.WoE.CartMinBinPct = o.CartMinBinPct
	cfg.WoE.MinCategorySamples = o.MinCategorySamples
	cfg.WoE.UseSolver = o.UseSolver
	cfg.WoE.SolverTrend = trend
	cfg.WoE.SolverTimeoutS = o.SolverTimeout
	cfg.WoE.SolverGap = o.SolverGap
	cfg.WoE.IVThreshold = o.GiniThreshold

	return cfg, nil
}

func parseBinningStrategy(s string) (woe.BinningStrategy, error) {
	switch strings.ToLower(s) {
	case "quantile":
		return woe.Quantile, nil
	case "cart":
		return woe.CART, nil
	default:
		return 0, unknownFlagValueErr("binning-strategy", s)
	}
}

func parseSolverTrend(s string) (woe.SolverTrend, error) {
	switch strings.ToLower(s) {
	case "none", "":
		return woe.TrendNone, nil
	case "asc":
		return woe.TrendAsc, nil
	case "desc":
		return woe.TrendDesc, nil
	case "peak":
		return woe.TrendPeak, nil
	case "valley":
		return woe.TrendValley, nil
	case "auto":
		return woe.TrendAuto, nil
	default:
		return 0, unknownFlagValueErr("solver-trend", s)
	}
}

func parseCompression(s string) (format.CompressionType, error) {
	switch strings.ToLower(s) {
	case "zstd":
		return format.CompressionZstd, nil
	case "none":
		return format.CompressionNone, nil
	case "s2":
		return format.CompressionS2, nil
	case "lz4":
		return format.CompressionLZ4, nil
	default:
		return 0, unknownFlagValueErr("compression", s)
	}
}
