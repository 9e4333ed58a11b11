package woe

import (
	"fmt"
	"math"
)

func ptrOf(v float64) *float64 { return &v }

// mergeTwo combines two adjacent numeric bins, preserving boundary
// continuity (a's lower bound, b's upper bound).
func mergeTwo(a, b BinRecord) BinRecord {
	return BinRecord{
		LowerBound: a.LowerBound,
		UpperBound: b.UpperBound,
		Events:     a.Events + b.Events,
		NonEvents:  a.NonEvents + b.NonEvents,
	}
}

// buildBinsFromCuts buckets sorted points into len(cuts)+1 contiguous
// numeric bins at the given interior cut points.
func buildBinsFromCuts(pts []point, cuts []float64) []BinRecord {
	bins := make([]BinRecord, len(cuts)+1)
	ci := 0
	for _, p := range pts {
		for ci < len(cuts) && p.x >= cuts[ci] {
			ci++
		}
		if p.y > 0 {
			bins[ci].Events += p.w
		} else {
			bins[ci].NonEvents += p.w
		}
	}

	lo := math.Inf(-1)
	for i := range bins {
		upper := math.Inf(1)
		if i < len(cuts) {
			upper = cuts[i]
		}
		bins[i].LowerBound = ptrOf(lo)
		bins[i].UpperBound = ptrOf(upper)
		lo = upper
	}

	return bins
}

// singleBin summarizes an entire finite bucket as one bin, used when it is
// too small to prebin (spec.md §4.2 step 1).
func singleBin(pts []point) BinRecord {
	b := BinRecord{LowerBound: ptrOf(math.Inf(-1)), UpperBound: ptrOf(math.Inf(1))}
	for _, p := range pts {
		if p.y > 0 {
			b.Events += p.w
		} else {
			b.NonEvents += p.w
		}
	}

	return b
}

func missingBin(eventW, nonEventW float64) BinRecord {
	return BinRecord{Label: "MISSING", Events: eventW, NonEvents: nonEventW}
}

// labelBins fills in the human-readable Label for numeric bins from their
// bounds; MISSING and categorical bins already carry an explicit label.
func labelBins(bins []BinRecord) {
	for i := range bins {
		if bins[i].Label != "" || bins[i].LowerBound == nil {
			continue
		}
		bins[i].Label = fmt.Sprintf("[%s, %s)", formatBound(*bins[i].LowerBound), formatBound(*bins[i].UpperBound))
	}
}

func formatBound(v float64) string {
	if math.IsInf(v, -1) {
		return "-inf"
	}
	if math.IsInf(v, 1) {
		return "+inf"
	}

	return fmt.Sprintf("%g", v)
}
