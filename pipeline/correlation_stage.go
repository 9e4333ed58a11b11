package pipeline

import (
	"context"

	"github.com/lophi-data/lophi/columnstore"
	"github.com/lophi-data/lophi/correlation"
)

// correlationStage runs the redundancy-selection engine over every
// surviving numeric feature (spec.md §4.4 "correlation_stage(threshold)").
// Target and weight are never eligible: they are excluded from the
// candidate name list before it ever reaches the correlation engine.
func correlationStage(ctx context.Context, store *columnstore.Store, weights []float64, ivByName map[string]float64, targetName, weightName string, threshold float64) (*correlation.Result, error) {
	var names []string
	for _, n := range store.NumericNames() {
		if n == targetName || n == weightName {
			continue
		}
		names = append(names, n)
	}
	if len(names) == 0 {
		return &correlation.Result{Matrix: correlation.NewMatrix(nil)}, nil
	}

	engine := correlation.NewEngine(threshold)

	return engine.Analyze(ctx, store, names, weights, ivByName)
}

// correlationDropNames flattens a correlation.Result's drop records into a
// plain name list for Store.Drop.
func correlationDropNames(result *correlation.Result) []string {
	names := make([]string, len(result.Dropped))
	for i, d := range result.Dropped {
		names[i] = d.FeatureName
	}

	return names
}
