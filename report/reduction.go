package report

import (
	"fmt"
	"sort"

	"github.com/lophi-data/lophi/correlation"
	"github.com/lophi-data/lophi/pipeline"
	"github.com/lophi-data/lophi/woe"
)

// BuildReductionReport translates a completed pipeline.Result into the
// reduction_report.json document (spec.md §6 "full pipeline record
// including per-stage drops and parameters").
func BuildReductionReport(meta Metadata, result *pipeline.Result) *ReductionReport {
	missing := make([]StageDrop, len(result.Missing))
	for i, d := range result.Missing {
		missing[i] = StageDrop{FeatureName: d.FeatureName, Reason: "missing_ratio_exceeded", Metric: d.MissingRatio}
	}

	var lowIV []StageDrop
	for _, r := range result.IV {
		if r.DropReason == woe.DropReasonNone {
			continue
		}
		lowIV = append(lowIV, StageDrop{FeatureName: r.FeatureName, Reason: r.DropReason.String(), Metric: r.IV})
	}

	corr := make([]CorrelationDrop, len(result.Correlation.Dropped))
	for i, d := range result.Correlation.Dropped {
		pairs := make([]CorrelationPair, len(d.CausedBy))
		for j, p := range d.CausedBy {
			pairs[j] = CorrelationPair{FeatureA: p.FeatureA, FeatureB: p.FeatureB, Rho: p.Rho}
		}
		corr[i] = CorrelationDrop{FeatureName: d.FeatureName, CausedBy: pairs}
	}

	return &ReductionReport{
		Metadata:           meta,
		InitialColumnCount: result.InitialColumnCount,
		FinalColumnCount:   result.Store.NumCols(),
		UserDropped:        result.UserDropped,
		Missing:            missing,
		LowIV:              lowIV,
		Correlation:        corr,
		FinalColumns:       result.FinalNames(),
	}
}

// BuildSummaryRows assembles reduction_report.csv's rows: one per
// original feature (target/weight and user-dropped columns excluded,
// since those are not subject to the scoring stages), per spec.md §6's
// schema "name, initial_status, missing_ratio, iv, gini, dropped_by,
// correlated_with".
func BuildSummaryRows(result *pipeline.Result) []SummaryRow {
	ivByName := make(map[string]*woe.IvAnalysisRecord, len(result.IV))
	for _, r := range result.IV {
		ivByName[r.FeatureName] = r
	}

	missingByName := make(map[string]float64, len(result.Missing))
	for _, d := range result.Missing {
		missingByName[d.FeatureName] = d.MissingRatio
	}

	corrByName := make(map[string][]correlation.Pair, len(result.Correlation.Dropped))
	for _, d := range result.Correlation.Dropped {
		corrByName[d.FeatureName] = d.CausedBy
	}

	finalSet := make(map[string]struct{}, len(result.FinalNames()))
	for _, n := range result.FinalNames() {
		finalSet[n] = struct{}{}
	}

	names := make([]string, 0, len(result.MissingRatios))
	for name := range result.MissingRatios {
		names = append(names, name)
	}
	sort.Strings(names)

	rows := make([]SummaryRow, 0, len(names))
	for _, name := range names {
		row := SummaryRow{Name: name}

		if ratio, ok := missingByName[name]; ok {
			row.MissingRatio, row.HasMissing = ratio, true
			row.DroppedBy = "missing"
		} else if ratio, ok := result.MissingRatios[name]; ok {
			row.MissingRatio, row.HasMissing = ratio, true
		}

		if rec, ok := ivByName[name]; ok {
			row.IV, row.HasIV = rec.IV, true
			row.Gini, row.HasGini = rec.Gini, true
			if rec.DropReason != woe.DropReasonNone {
				row.DroppedBy = "iv"
			}
		}

		if pairs, ok := corrByName[name]; ok {
			row.DroppedBy = "correlation"
			row.CorrelatedWith = formatCorrelatedWith(name, pairs)
		}

		if _, kept := finalSet[name]; kept {
			row.InitialStatus = "kept"
		} else {
			row.InitialStatus = "dropped"
		}

		rows = append(rows, row)
	}

	return rows
}

// formatCorrelatedWith renders a drop's causing pairs as spec.md §6's
// "featA: 0.92 | featB: 0.88" summary string, naming the *other* feature
// in each pair (the dropped feature itself is never named).
func formatCorrelatedWith(dropped string, pairs []correlation.Pair) string {
	var out string
	for i, p := range pairs {
		other, rho := p.FeatureB, p.Rho
		if p.FeatureA != dropped {
			other = p.FeatureA
		}
		if i > 0 {
			out += " | "
		}
		out += formatPair(other, rho)
	}

	return out
}

func formatPair(feature string, rho float64) string {
	return fmt.Sprintf("%s: %.2f", feature, rho)
}
