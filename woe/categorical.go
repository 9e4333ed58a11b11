package woe

import "sort"

// AnalyzeCategorical runs spec.md §4.2's categorical pipeline: group by
// category, fold rare categories into OTHER, nulls into MISSING, then score
// WoE/IV exactly as the numeric pipeline's final step does. MIP refinement
// does not apply to categorical features.
func AnalyzeCategorical(name string, cats []string, valid []bool, y, w []float64, cfg Config) (*IvAnalysisRecord, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	type group struct{ events, nonEvents, count float64 }
	groups := make(map[string]*group)
	var missEvent, missNonEvent float64

	for i, c := range cats {
		weight := weightAt(w, i)
		if !valid[i] {
			if y[i] > 0 {
				missEvent += weight
			} else {
				missNonEvent += weight
			}

			continue
		}

		g, ok := groups[c]
		if !ok {
			g = &group{}
			groups[c] = g
		}
		g.count += weight
		if y[i] > 0 {
			g.events += weight
		} else {
			g.nonEvents += weight
		}
	}

	var otherEvent, otherNonEvent, otherCount float64
	bins := make([]BinRecord, 0, len(groups)+1)
	for label, g := range groups {
		if g.count < cfg.MinCategorySamples {
			otherEvent += g.events
			otherNonEvent += g.nonEvents
			otherCount += g.count

			continue
		}
		bins = append(bins, BinRecord{Label: label, Events: g.events, NonEvents: g.nonEvents, Count: g.count})
	}
	if otherCount > 0 {
		bins = append(bins, BinRecord{Label: "OTHER", Events: otherEvent, NonEvents: otherNonEvent, Count: otherCount})
	}
	// Map iteration order is random; sort for deterministic report output.
	// Gini ordering by event rate happens downstream via WoE sort.
	sort.Slice(bins, func(i, j int) bool { return bins[i].Label < bins[j].Label })

	totalEvent, totalNonEvent := missEvent, missNonEvent
	for _, b := range bins {
		totalEvent += b.Events
		totalNonEvent += b.NonEvents
	}

	if len(bins) == 0 || totalEvent <= 0 || totalNonEvent <= 0 {
		return degenerateRecord(name, true, 0), nil
	}

	final := bins
	if missEvent+missNonEvent > 0 {
		final = append(final, missingBin(missEvent, missNonEvent))
	}
	n := len(final)
	var ivSum float64
	for i := range final {
		final[i].WoE, final[i].IV = smoothedWoeIV(final[i].Events, final[i].NonEvents, totalEvent, totalNonEvent, cfg.Smoothing, n)
		final[i].Count = final[i].Events + final[i].NonEvents
		ivSum += final[i].IV
	}

	rec := &IvAnalysisRecord{
		FeatureName: name,
		Categorical: true,
		IV:          ivSum,
		Bins:        final,
	}
	if ivSum < cfg.IVThreshold {
		rec.DropReason = DropReasonLowIV
	}
	rec.Gini = giniFromBins(final)

	return rec, nil
}
