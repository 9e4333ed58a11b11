package pipeline

import (
	"context"

	"github.com/lophi-data/lophi/columnstore"
	"github.com/lophi-data/lophi/woe"
)

// ivStage scores every remaining feature column against target and returns
// one IvAnalysisRecord per feature (spec.md §4.4 "iv_stage(config)").
func ivStage(ctx context.Context, store *columnstore.Store, target *columnstore.Target, weights []float64, cfg woe.Config, solver woe.Solver, targetName, weightName string) ([]*woe.IvAnalysisRecord, error) {
	engine := &woe.Engine{Config: cfg, Solver: solver}

	return engine.AnalyzeStore(ctx, store, target, weights, targetName, weightName)
}

// lowIVNames returns the features whose record carries a non-None drop
// reason, i.e. the ones the IV stage removes from the table.
func lowIVNames(records []*woe.IvAnalysisRecord) []string {
	var names []string
	for _, r := range records {
		if r.DropReason != woe.DropReasonNone {
			names = append(names, r.FeatureName)
		}
	}

	return names
}

// ivByFeatureName indexes records by name for the correlation stage's
// tie-break rule (spec.md §4.3 "ties broken by lower IV if available").
func ivByFeatureName(records []*woe.IvAnalysisRecord) map[string]float64 {
	out := make(map[string]float64, len(records))
	for _, r := range records {
		out[r.FeatureName] = r.IV
	}

	return out
}
