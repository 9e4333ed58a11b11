package pipeline

import "github.com/lophi-data/lophi/columnstore"

// weightedMissingRatio is the fraction of total weight sitting on null
// rows of col (spec.md §4.4's "missing_stage(threshold)"). weights may be
// nil, meaning every row has weight 1.
func weightedMissingRatio(col *columnstore.Column, weights []float64) float64 {
	var missing, total float64
	for i, valid := range col.Valid {
		w := 1.0
		if weights != nil {
			w = weights[i]
		}
		total += w
		if !valid {
			missing += w
		}
	}
	if total <= 0 {
		return 0
	}

	return missing / total
}

// exceedsCeiling reports whether metric (bounded to [0, 1]) fails a
// ceiling threshold: survives at metric <= threshold, drops above it. The
// strict ">" keeps spec.md §8's "threshold = 0 drops nothing" true (a
// column with zero missing data is never > 0); the threshold >= 1 special
// case keeps "threshold = 1 drops everything eligible" true (a fully-null
// column's ratio can reach exactly 1, never strictly more).
func exceedsCeiling(metric, threshold float64) bool {
	if threshold >= 1 {
		return metric >= threshold
	}

	return metric > threshold
}

// missingStage scores every feature column (excluding target/weight) and
// returns those whose weighted missing ratio exceeds threshold (spec.md
// §4.4 "missing_stage(threshold)").
func missingStage(store *columnstore.Store, weights []float64, targetName, weightName string, threshold float64) []MissingDrop {
	var drops []MissingDrop
	for _, col := range store.Columns() {
		if col.Name == targetName || col.Name == weightName {
			continue
		}

		ratio := weightedMissingRatio(col, weights)
		if exceedsCeiling(ratio, threshold) {
			drops = append(drops, MissingDrop{FeatureName: col.Name, MissingRatio: ratio})
		}
	}

	return drops
}

// missingRatios scores every feature column (excluding target/weight)
// regardless of threshold, for the reduction report's per-feature
// missing_ratio column (spec.md §6 reduction_report.csv schema), which
// needs a ratio for every original feature, not just the ones dropped.
func missingRatios(store *columnstore.Store, weights []float64, targetName, weightName string) map[string]float64 {
	out := make(map[string]float64, store.NumCols())
	for _, col := range store.Columns() {
		if col.Name == targetName || col.Name == weightName {
			continue
		}
		out[col.Name] = weightedMissingRatio(col, weights)
	}

	return out
}
