package pipeline

import (
	"github.com/lophi-data/lophi/internal/errs"
	"github.com/lophi-data/lophi/woe"
)

// Config holds every pipeline-controller tunable from spec.md §6's CLI
// surface that is not specific to a single stage's own Config (woe.Config
// covers the IV stage's own knobs).
type Config struct {
	TargetName    string
	WeightName    string // empty means unweighted
	EventValue    *float64
	NonEventValue *float64
	DropColumns   []string

	// MissingThreshold is the weighted null-ratio ceiling a feature may
	// not exceed to survive the missing stage (at 1.0, a feature whose
	// ratio reaches the ceiling is also dropped).
	MissingThreshold float64
	// CorrelationThreshold is the |ρ| ceiling no surviving pair may meet
	// or exceed after the correlation stage.
	CorrelationThreshold float64

	WoE woe.Config
}

// DefaultConfig returns spec.md §8's documented end-to-end defaults
// (missing=0.30, gini=0.05 via woe.Config.IVThreshold, corr=0.40).
func DefaultConfig() Config {
	cfg := woe.DefaultConfig()
	cfg.IVThreshold = 0.05

	return Config{
		MissingThreshold:     0.30,
		CorrelationThreshold: 0.40,
		WoE:                  cfg,
	}
}

// Validate checks every domain constraint spec.md §7 calls fatal at
// startup.
func (c Config) Validate() error {
	if c.TargetName == "" {
		return errs.ErrTargetColumnMissing
	}
	if c.MissingThreshold < 0 || c.MissingThreshold > 1 {
		return errs.ErrInvalidThreshold
	}
	if c.CorrelationThreshold < 0 || c.CorrelationThreshold > 1 {
		return errs.ErrInvalidThreshold
	}

	return c.WoE.Validate()
}
