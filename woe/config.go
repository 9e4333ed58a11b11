package woe

import (
	"github.com/lophi-data/lophi/internal/errs"
	"github.com/lophi-data/lophi/internal/options"
)

// BinningStrategy selects the prebinning method for numeric features.
type BinningStrategy uint8

const (
	Quantile BinningStrategy = iota + 1
	CART
)

func (s BinningStrategy) String() string {
	switch s {
	case Quantile:
		return "Quantile"
	case CART:
		return "CART"
	default:
		return "Unknown"
	}
}

// SolverTrend constrains the WoE sequence's shape when MIP refinement is
// enabled.
type SolverTrend uint8

const (
	TrendNone SolverTrend = iota + 1
	TrendAsc
	TrendDesc
	TrendPeak
	TrendValley
	TrendAuto
)

func (t SolverTrend) String() string {
	switch t {
	case TrendNone:
		return "none"
	case TrendAsc:
		return "asc"
	case TrendDesc:
		return "desc"
	case TrendPeak:
		return "peak"
	case TrendValley:
		return "valley"
	case TrendAuto:
		return "auto"
	default:
		return "unknown"
	}
}

// Config holds every tunable of the numeric and categorical pipelines
// (spec.md §4.2 "Config options").
type Config struct {
	BinningStrategy BinningStrategy

	// GiniBins is the target bin count after the greedy merge (spec calls
	// this gini_bins since it fixes the granularity later Gini scoring sees).
	GiniBins int
	// Prebins is the initial quantile/CART leaf count, >= GiniBins.
	Prebins int
	// MinBinSamples is the minimum weighted count a surviving bin may hold.
	MinBinSamples float64
	// CartMinBinPct bounds a CART child's share of the finite bucket, in
	// percent: (0, 50].
	CartMinBinPct float64
	// MinCategorySamples is the rare-category merge threshold for the
	// categorical pipeline's OTHER bucket.
	MinCategorySamples float64
	// Smoothing is the Laplace smoothing constant applied to WoE/IV.
	Smoothing float64

	UseSolver      bool
	SolverTrend    SolverTrend
	SolverTimeoutS float64
	SolverGap      float64

	// IVThreshold is spec's "gini_threshold": features whose IV is below it
	// are recorded with DropReasonLowIV (their Gini is still computed).
	IVThreshold float64

	// LowCardinalityMax is the distinct-value ceiling at or below which an Int64
	// feature is analysed by the categorical pipeline instead of the
	// numeric one, per spec.md §3's "Int64 ... categorical (Utf8 or
	// low-cardinality Int)". Not itself specced with a number; chosen here
	// and recorded as an Open Question decision.
	LowCardinalityMax int
}

// DefaultConfig returns the spec's documented defaults.
func DefaultConfig() Config {
	return Config{
		BinningStrategy:    Quantile,
		GiniBins:           10,
		Prebins:            20,
		MinBinSamples:      1,
		CartMinBinPct:      5,
		MinCategorySamples: 1,
		Smoothing:          0.5,
		UseSolver:          false,
		SolverTrend:        TrendNone,
		SolverTimeoutS:     5,
		SolverGap:          0.01,
		IVThreshold:        0.02,
		LowCardinalityMax:  20,
	}
}

// Validate checks every domain constraint from spec.md's config table.
func (c Config) Validate() error {
	switch c.BinningStrategy {
	case Quantile, CART:
	default:
		return errs.ErrInvalidBinningStrategy
	}

	if c.GiniBins < 2 {
		return errs.ErrInvalidBinCount
	}
	if c.Prebins < c.GiniBins {
		return errs.ErrInvalidBinCount
	}
	if c.MinBinSamples < 1 {
		return errs.ErrInvalidThreshold
	}
	if c.CartMinBinPct <= 0 || c.CartMinBinPct > 50 {
		return errs.ErrInvalidThreshold
	}
	if c.MinCategorySamples < 1 {
		return errs.ErrInvalidThreshold
	}
	if c.Smoothing <= 0 {
		return errs.ErrInvalidThreshold
	}
	if c.LowCardinalityMax < 0 {
		return errs.ErrInvalidThreshold
	}
	if c.UseSolver {
		switch c.SolverTrend {
		case TrendNone, TrendAsc, TrendDesc, TrendPeak, TrendValley, TrendAuto:
		default:
			return errs.ErrInvalidSolverTrend
		}
		if c.SolverTimeoutS <= 0 || c.SolverGap <= 0 {
			return errs.ErrInvalidThreshold
		}
	}

	return nil
}

// Option is a functional option for Config, built on the generic
// internal/options.Option[T].
type Option = options.Option[*Config]

func WithBinningStrategy(s BinningStrategy) Option {
	return options.NoError(func(c *Config) { c.BinningStrategy = s })
}

func WithGiniBins(n int) Option {
	return options.NoError(func(c *Config) { c.GiniBins = n })
}

func WithPrebins(n int) Option {
	return options.NoError(func(c *Config) { c.Prebins = n })
}

func WithMinBinSamples(v float64) Option {
	return options.NoError(func(c *Config) { c.MinBinSamples = v })
}

func WithCartMinBinPct(v float64) Option {
	return options.NoError(func(c *Config) { c.CartMinBinPct = v })
}

func WithMinCategorySamples(v float64) Option {
	return options.NoError(func(c *Config) { c.MinCategorySamples = v })
}

func WithSmoothing(v float64) Option {
	return options.NoError(func(c *Config) { c.Smoothing = v })
}

func WithSolver(enabled bool) Option {
	return options.NoError(func(c *Config) { c.UseSolver = enabled })
}

func WithSolverTrend(t SolverTrend) Option {
	return options.NoError(func(c *Config) { c.SolverTrend = t })
}

func WithSolverTimeoutS(v float64) Option {
	return options.NoError(func(c *Config) { c.SolverTimeoutS = v })
}

func WithSolverGap(v float64) Option {
	return options.NoError(func(c *Config) { c.SolverGap = v })
}

func WithIVThreshold(v float64) Option {
	return options.NoError(func(c *Config) { c.IVThreshold = v })
}

func WithLowCardinalityMax(n int) Option {
	return options.NoError(func(c *Config) { c.LowCardinalityMax = n })
}

// NewConfig builds a Config from DefaultConfig plus options, validating the
// result.
func NewConfig(opts ...Option) (Config, error) {
	cfg := DefaultConfig()
	if err := options.Apply(&cfg, opts...); err != nil {
		return Config{}, err
	}

	return cfg, cfg.Validate()
}
