package woe

import "fmt"

// DropReason explains why a feature's record was excluded from further
// modelling, or DropReasonNone if it was kept.
type DropReason uint8

const (
	DropReasonNone DropReason = iota
	DropReasonLowIV
	DropReasonDegenerate
)

func (d DropReason) String() string {
	switch d {
	case DropReasonNone:
		return "None"
	case DropReasonLowIV:
		return "LowIv"
	case DropReasonDegenerate:
		return "Degenerate"
	default:
		return "Unknown"
	}
}

// BinRecord is one final bin: its boundary (numeric) or label (categorical),
// its weighted event/non-event counts, and its WoE/IV contribution.
type BinRecord struct {
	Label string // "MISSING", "OTHER", a category name, or a numeric range like "[0, 10)"

	// Lower/Upper bound numeric bins; both nil for MISSING and categorical
	// bins.
	LowerBound *float64
	UpperBound *float64

	Count     float64 // weighted row count
	Events    float64 // weighted event count
	NonEvents float64 // weighted non-event count

	WoE float64
	IV  float64
}

// IvAnalysisRecord is the per-feature outcome of the IV/WoE engine, the
// building block of the reduction report (spec.md §4.2 "top-level
// contract").
type IvAnalysisRecord struct {
	FeatureName     string
	Categorical     bool
	BinningStrategy BinningStrategy // zero value for categorical features
	SolverUsed      bool            // true if MIP refinement produced the final binning

	IV   float64
	Gini float64
	Bins []BinRecord

	DropReason DropReason
}

// String gives a one-line summary of the record.
func (r *IvAnalysisRecord) String() string {
	return fmt.Sprintf("IvAnalysisRecord{Feature: %s, IV: %.4f, Gini: %.4f, Bins: %d, DropReason: %s}",
		r.FeatureName, r.IV, r.Gini, len(r.Bins), r.DropReason)
}

// degenerateRecord builds the fixed IV=0/Gini=0 record spec.md's "Failure
// semantics" paragraph mandates for empty/zero-event/single-class features.
func degenerateRecord(name string, categorical bool, strategy BinningStrategy) *IvAnalysisRecord {
	return &IvAnalysisRecord{
		FeatureName:     name,
		Categorical:     categorical,
		BinningStrategy: strategy,
		DropReason:      DropReasonDegenerate,
	}
}
