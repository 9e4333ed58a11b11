package correlation

// selectRedundant implements spec.md §4.3's redundancy selection: repeatedly
// remove the feature appearing in the most remaining high-|ρ| pairs until
// none remain.
func selectRedundant(pairs []Pair, ivByName map[string]float64) []DropRecord {
	remaining := append([]Pair(nil), pairs...)

	var drops []DropRecord
	for len(remaining) > 0 {
		counts := make(map[string]int, len(remaining)*2)
		for _, p := range remaining {
			counts[p.FeatureA]++
			counts[p.FeatureB]++
		}

		victim := pickVictim(counts, ivByName)

		var caused []Pair
		kept := remaining[:0:0]
		for _, p := range remaining {
			if p.FeatureA == victim || p.FeatureB == victim {
				caused = append(caused, p)

				continue
			}
			kept = append(kept, p)
		}
		remaining = kept

		drops = append(drops, DropRecord{FeatureName: victim, CausedBy: caused})
	}

	return drops
}

// pickVictim returns the highest-pair-count feature, ties broken by lower
// IV where both candidates have one, else by name.
func pickVictim(counts map[string]int, ivByName map[string]float64) string {
	best := ""
	bestCount := -1
	for name, c := range counts {
		switch {
		case c > bestCount:
			best, bestCount = name, c
		case c == bestCount && tieWins(name, best, ivByName):
			best = name
		}
	}

	return best
}

// tieWins reports whether candidate should replace incumbent as the
// tie-break winner (the feature to drop).
func tieWins(candidate, incumbent string, ivByName map[string]float64) bool {
	ivC, okC := ivByName[candidate]
	ivI, okI := ivByName[incumbent]
	if okC && okI && ivC != ivI {
		return ivC < ivI
	}

	return candidate < incumbent
}
