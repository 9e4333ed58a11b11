// Package report assembles the auditable analysis artifacts spec.md §6
// names: gini_analysis.json (per-feature WoE/IV/Gini detail),
// reduction_report.json (the full pipeline record) and
// reduction_report.csv (one summary row per original feature), bundled
// into a compressed archive via the compress package.
package report

import "time"

// Thresholds records the configured cutoffs a run applied, for the
// report metadata header.
type Thresholds struct {
	Missing     float64 `json:"missing"`
	IV          float64 `json:"iv"`
	Correlation float64 `json:"correlation"`
}

// Metadata is gini_analysis.json's top-level "metadata" object, per
// spec.md §6's JSON schema.
type Metadata struct {
	Version         string     `json:"version"`
	Timestamp       time.Time  `json:"timestamp"`
	WoeConvention   string     `json:"woe_convention"`
	BinningStrategy string     `json:"binning_strategy"`
	Thresholds      Thresholds `json:"thresholds"`
}

// Bin is one feature bin's reporting view: WoE/IV contribution plus the
// counts and rates an analyst needs to audit it.
type Bin struct {
	Label           string   `json:"label"`
	Lo              *float64 `json:"lo,omitempty"`
	Hi              *float64 `json:"hi,omitempty"`
	EventCount      float64  `json:"event_count"`
	NonEventCount   float64  `json:"non_event_count"`
	EventRate       float64  `json:"event_rate"`
	PopulationShare float64  `json:"population_share"`
	WoE             float64  `json:"woe"`
	IVContribution  float64  `json:"iv_contribution"`
}

// Feature is one entry of gini_analysis.json's "features" array.
type Feature struct {
	Name       string  `json:"name"`
	Type       string  `json:"type"`
	Bins       []Bin   `json:"bins"`
	MissingBin *Bin    `json:"missing_bin,omitempty"`
	IV         float64 `json:"iv"`
	Gini       float64 `json:"gini"`
	Dropped    bool    `json:"dropped"`
	DropReason string  `json:"drop_reason,omitempty"`
}

// GiniAnalysis is the full gini_analysis.json document.
type GiniAnalysis struct {
	Metadata Metadata  `json:"metadata"`
	Features []Feature `json:"features"`
}

// StageDrop is one feature dropped at one named pipeline stage, for
// reduction_report.json's per-stage drop lists.
type StageDrop struct {
	FeatureName string  `json:"feature_name"`
	Reason      string  `json:"reason"`
	Metric      float64 `json:"metric,omitempty"`
}

// CorrelationDrop documents a redundancy-selection removal and the
// pairs that caused it.
type CorrelationDrop struct {
	FeatureName string            `json:"feature_name"`
	CausedBy    []CorrelationPair `json:"caused_by"`
}

// CorrelationPair is one high-|ρ| pair.
type CorrelationPair struct {
	FeatureA string  `json:"feature_a"`
	FeatureB string  `json:"feature_b"`
	Rho      float64 `json:"rho"`
}

// ReductionReport is the full pipeline record: parameters plus every
// stage's drop list, per spec.md §6's reduction_report.json.
type ReductionReport struct {
	Metadata Metadata `json:"metadata"`

	InitialColumnCount int `json:"initial_column_count"`
	FinalColumnCount   int `json:"final_column_count"`

	UserDropped  []string          `json:"user_dropped"`
	Missing      []StageDrop       `json:"missing_dropped"`
	LowIV        []StageDrop       `json:"iv_dropped"`
	Correlation  []CorrelationDrop `json:"correlation_dropped"`
	FinalColumns []string          `json:"final_columns"`
}

// SummaryRow is one reduction_report.csv row: a single original
// feature's fate across the whole pipeline.
type SummaryRow struct {
	Name           string
	InitialStatus  string // "kept" or "dropped"
	MissingRatio   float64
	HasMissing     bool
	IV             float64
	HasIV          bool
	Gini           float64
	HasGini        bool
	DroppedBy      string // "missing", "iv", "correlation", or "" if kept
	CorrelatedWith string // "featA: 0.92 | featB: 0.88"
}
