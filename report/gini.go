package report

import (
	"time"

	"github.com/lophi-data/lophi/woe"
)

const reportVersion = "lophi/1"

// NewMetadata builds the shared metadata header stamped into both JSON
// documents.
func NewMetadata(cfg woe.Config, missingThreshold, correlationThreshold float64, now time.Time) Metadata {
	return Metadata{
		Version:         reportVersion,
		Timestamp:       now,
		WoeConvention:   "ln(events/non_events)",
		BinningStrategy: cfg.BinningStrategy.String(),
		Thresholds: Thresholds{
			Missing:     missingThreshold,
			IV:          cfg.IVThreshold,
			Correlation: correlationThreshold,
		},
	}
}

// BuildGiniAnalysis translates every feature's IvAnalysisRecord into the
// gini_analysis.json view (spec.md §6's JSON schema).
func BuildGiniAnalysis(meta Metadata, records []*woe.IvAnalysisRecord) *GiniAnalysis {
	features := make([]Feature, 0, len(records))
	for _, r := range records {
		features = append(features, buildFeature(r))
	}

	return &GiniAnalysis{Metadata: meta, Features: features}
}

func buildFeature(r *woe.IvAnalysisRecord) Feature {
	featureType := "numeric"
	if r.Categorical {
		featureType = "categorical"
	}

	total := totalWeight(r.Bins)

	f := Feature{
		Name:    r.FeatureName,
		Type:    featureType,
		IV:      r.IV,
		Gini:    r.Gini,
		Dropped: r.DropReason != woe.DropReasonNone,
	}
	if f.Dropped {
		f.DropReason = r.DropReason.String()
	}

	for _, b := range r.Bins {
		bin := buildBin(b, total)
		if b.Label == "MISSING" {
			missing := bin
			f.MissingBin = &missing

			continue
		}
		f.Bins = append(f.Bins, bin)
	}

	return f
}

func buildBin(b woe.BinRecord, total float64) Bin {
	count := b.Events + b.NonEvents
	eventRate := 0.0
	if count > 0 {
		eventRate = b.Events / count
	}
	share := 0.0
	if total > 0 {
		share = count / total
	}

	return Bin{
		Label:           b.Label,
		Lo:              b.LowerBound,
		Hi:              b.UpperBound,
		EventCount:      b.Events,
		NonEventCount:   b.NonEvents,
		EventRate:       eventRate,
		PopulationShare: share,
		WoE:             b.WoE,
		IVContribution:  b.IV,
	}
}

func totalWeight(bins []woe.BinRecord) float64 {
	var total float64
	for _, b := range bins {
		total += b.Events + b.NonEvents
	}

	return total
}
