package woe

import (
	"context"
	"math"
	"sort"
)

// AnalyzeNumeric runs the full numeric pipeline of spec.md §4.2 for one
// feature: partition, prebin, merge, optional solver refinement, score.
// w may be nil, meaning every row has weight 1.
func AnalyzeNumeric(ctx context.Context, name string, x []float64, valid []bool, y, w []float64, cfg Config, solver Solver) (*IvAnalysisRecord, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	finite, missEvent, missNonEvent := partitionFinite(x, valid, y, w)

	totalEvent, totalNonEvent := missEvent, missNonEvent
	for _, p := range finite {
		if p.y > 0 {
			totalEvent += p.w
		} else {
			totalNonEvent += p.w
		}
	}

	if len(finite) == 0 || totalEvent <= 0 || totalNonEvent <= 0 {
		return degenerateRecord(name, false, cfg.BinningStrategy), nil
	}

	var bins []BinRecord
	finiteWeight := sumWeight(finite)
	if finiteWeight < 2*cfg.MinBinSamples {
		bins = []BinRecord{singleBin(finite)}
	} else {
		var cuts []float64
		if cfg.BinningStrategy == CART {
			cuts = cartCuts(finite, cfg.Prebins, cfg.MinBinSamples, cfg.CartMinBinPct)
		} else {
			cuts = weightedQuantileCuts(finite, cfg.Prebins)
		}
		if len(cuts) == 0 {
			bins = []BinRecord{singleBin(finite)}
		} else {
			bins = buildBinsFromCuts(finite, cuts)
		}
	}

	merged := mergeBins(bins, totalEvent, totalNonEvent, cfg.Smoothing, cfg.GiniBins, cfg.MinBinSamples)

	solverUsed := false
	if cfg.UseSolver && solver != nil && len(merged) > 1 {
		if refined, ok := solver.Refine(ctx, merged, totalEvent, totalNonEvent, cfg); ok {
			merged = refined
			solverUsed = true
		}
	}

	final := merged
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
	labelBins(final)

	rec := &IvAnalysisRecord{
		FeatureName:     name,
		BinningStrategy: cfg.BinningStrategy,
		SolverUsed:      solverUsed,
		IV:              ivSum,
		Bins:            final,
	}
	if ivSum < cfg.IVThreshold {
		rec.DropReason = DropReasonLowIV
	}
	rec.Gini = giniFromBins(final)

	return rec, nil
}

func partitionFinite(x []float64, valid []bool, y, w []float64) (finite []point, missEvent, missNonEvent float64) {
	for i, xi := range x {
		weight := weightAt(w, i)
		if !valid[i] {
			if y[i] > 0 {
				missEvent += weight
			} else {
				missNonEvent += weight
			}

			continue
		}
		finite = append(finite, point{x: xi, y: y[i], w: weight})
	}
	sort.Slice(finite, func(i, j int) bool { return finite[i].x < finite[j].x })

	return finite, missEvent, missNonEvent
}

func sumWeight(pts []point) float64 {
	var s float64
	for _, p := range pts {
		s += p.w
	}

	return s
}

// mergeBins implements spec.md §4.2 step 3: greedy bottom-up merge to
// gini_bins, always finishing any merge the min_bin_samples floor still
// demands even past that target.
func mergeBins(bins []BinRecord, totalEvent, totalNonEvent, smoothing float64, giniBins int, minBinSamples float64) []BinRecord {
	rescoreBins(bins, totalEvent, totalNonEvent, smoothing)

	for {
		n := len(bins)
		if n <= 1 {
			break
		}
		if n <= giniBins && !anyBelow(bins, minBinSamples) {
			break
		}

		bestIdx, bestLoss := -1, math.Inf(1)
		for i := 0; i < n-1; i++ {
			merged := mergeTwo(bins[i], bins[i+1])
			_, mergedIV := smoothedWoeIV(merged.Events, merged.NonEvents, totalEvent, totalNonEvent, smoothing, n-1)
			loss := (bins[i].IV + bins[i+1].IV) - mergedIV
			if loss < bestLoss {
				bestLoss, bestIdx = loss, i
			}
		}

		bins = mergeAt(bins, bestIdx)
		rescoreBins(bins, totalEvent, totalNonEvent, smoothing)
	}

	return bins
}

// cartCuts grows a binary tree of at most prebins leaves on the finite
// bucket, splitting on whichever leaf's best candidate boundary yields the
// largest weighted Gini-impurity reduction (spec.md §4.2 step 2, CART).
func cartCuts(pts []point, prebins int, minBinSamples, cartMinBinPct float64) []float64 {
	total := sumWeight(pts)
	minChild := math.Max(minBinSamples, cartMinBinPct/100*total)

	type leaf struct{ lo, hi int }
	leaves := []leaf{{0, len(pts)}}

	for len(leaves) < prebins {
		bestLeaf, bestSplit, bestGain := -1, -1, math.Inf(-1)
		for li, lf := range leaves {
			split, gain, ok := bestCartSplit(pts[lf.lo:lf.hi], minChild)
			if ok && gain > bestGain {
				bestLeaf, bestSplit, bestGain = li, lf.lo+split, gain
			}
		}
		if bestLeaf == -1 {
			break
		}

		lf := leaves[bestLeaf]
		next := make([]leaf, 0, len(leaves)+1)
		next = append(next, leaves[:bestLeaf]...)
		next = append(next, leaf{lf.lo, bestSplit}, leaf{bestSplit, lf.hi})
		next = append(next, leaves[bestLeaf+1:]...)
		leaves = next
	}

	sort.Slice(leaves, func(i, j int) bool { return leaves[i].lo < leaves[j].lo })

	cuts := make([]float64, 0, len(leaves)-1)
	for i := 0; i < len(leaves)-1; i++ {
		cuts = append(cuts, (pts[leaves[i].hi-1].x+pts[leaves[i+1].lo].x)/2)
	}

	return cuts
}

// bestCartSplit returns the index (relative to pts) of the best admissible
// split, i.e. pts[:idx] and pts[idx:], maximising weighted Gini reduction.
func bestCartSplit(pts []point, minChild float64) (idx int, gain float64, ok bool) {
	n := len(pts)
	if n < 2 {
		return 0, 0, false
	}

	var totalEvent, totalNonEvent float64
	for _, p := range pts {
		if p.y > 0 {
			totalEvent += p.w
		} else {
			totalNonEvent += p.w
		}
	}
	total := totalEvent + totalNonEvent
	if total <= 0 {
		return 0, 0, false
	}
	parentImpurity := giniImpurity(totalEvent, totalNonEvent)

	var cumEvent, cumNonEvent float64
	bestIdx, bestGain := -1, math.Inf(-1)
	for i := 0; i < n-1; i++ {
		if pts[i].y > 0 {
			cumEvent += pts[i].w
		} else {
			cumNonEvent += pts[i].w
		}
		if pts[i].x == pts[i+1].x {
			continue // never split between equal values
		}

		leftW := cumEvent + cumNonEvent
		rightW := total - leftW
		if leftW < minChild || rightW < minChild {
			continue
		}

		leftImpurity := giniImpurity(cumEvent, cumNonEvent)
		rightImpurity := giniImpurity(totalEvent-cumEvent, totalNonEvent-cumNonEvent)
		weighted := (leftW/total)*leftImpurity + (rightW/total)*rightImpurity
		g := parentImpurity - weighted
		if g > bestGain {
			bestGain, bestIdx = g, i+1
		}
	}
	if bestIdx == -1 {
		return 0, 0, false
	}

	return bestIdx, bestGain, true
}
