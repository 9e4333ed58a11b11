package woe

import (
	"context"
	"fmt"
	"sort"

	"golang.org/x/sync/errgroup"

	"github.com/lophi-data/lophi/columnstore"
	"github.com/lophi-data/lophi/internal/errs"
)

// Engine runs the per-feature IV/WoE scan of spec.md §4.2 across every
// feature column in a Store, against one mapped Target and an optional
// weight vector. Per-feature work is embarrassingly parallel: each feature
// is scored independently on its own goroutine.
type Engine struct {
	Config Config
	Solver Solver
}

// NewEngine builds an Engine with the given configuration and the default
// GreedyTrendSolver, used only when cfg.UseSolver is true.
func NewEngine(cfg Config) *Engine {
	return &Engine{Config: cfg, Solver: GreedyTrendSolver{}}
}

// AnalyzeStore scores every column in store except target and weight
// (named by column name) against target, returning one IvAnalysisRecord
// per feature in store order. A single feature's failure aborts the whole
// scan; per-feature statistical degeneracy does not, it surfaces as a
// dropped record instead (spec.md §4.2 "Failure semantics").
func (e *Engine) AnalyzeStore(ctx context.Context, store *columnstore.Store, target *columnstore.Target, weights []float64, targetName, weightName string) ([]*IvAnalysisRecord, error) {
	cols := store.Columns()
	records := make([]*IvAnalysisRecord, len(cols))

	group, gctx := errgroup.WithContext(ctx)
	for i, col := range cols {
		if col.Name == targetName || col.Name == weightName {
			continue
		}

		i, col := i, col
		group.Go(func() error {
			rec, err := e.AnalyzeColumn(gctx, col, target, weights)
			if err != nil {
				return fmt.Errorf("feature %q: %w", col.Name, err)
			}
			records[i] = rec

			return nil
		})
	}
	if err := group.Wait(); err != nil {
		return nil, err
	}

	out := make([]*IvAnalysisRecord, 0, len(records))
	for _, r := range records {
		if r != nil {
			out = append(out, r)
		}
	}

	return out, nil
}

// AnalyzeColumn scores a single feature column. Rows excluded by the
// target mapping (target.Included[i] == false) take no part in scoring;
// rows included but null in the feature fall into the MISSING bin.
func (e *Engine) AnalyzeColumn(ctx context.Context, col *columnstore.Column, target *columnstore.Target, weights []float64) (*IvAnalysisRecord, error) {
	if col.Len() != len(target.Included) {
		return nil, fmt.Errorf("%w: feature %q has %d rows, target has %d", errs.ErrLengthMismatch, col.Name, col.Len(), len(target.Included))
	}

	idx := make([]int, 0, col.Len())
	for i, included := range target.Included {
		if included {
			idx = append(idx, i)
		}
	}
	if len(idx) == 0 {
		return nil, fmt.Errorf("%w: feature %q", errs.ErrTargetAllExcluded, col.Name)
	}

	y := make([]float64, len(idx))
	w := make([]float64, len(idx))
	for j, i := range idx {
		if target.Event[i] {
			y[j] = 1
		}
		if weights == nil {
			w[j] = 1
		} else {
			w[j] = weights[i]
		}
	}

	if e.categorical(col) {
		cats, valid, err := col.AsUtf8()
		if err != nil {
			return nil, err
		}

		return AnalyzeCategorical(col.Name, selectStrings(cats, idx), selectBools(valid, idx), y, w, e.Config)
	}

	if !col.Type.IsNumeric() {
		return nil, fmt.Errorf("%w: feature %q", errs.ErrColumnTypeMismatch, col.Name)
	}

	x, valid, err := col.AsFloat64()
	if err != nil {
		return nil, err
	}

	return AnalyzeNumeric(ctx, col.Name, selectFloats(x, idx), selectBools(valid, idx), y, w, e.Config, e.Solver)
}

// categorical decides whether col should be routed to the categorical
// pipeline: Utf8 always is, Int64 is when its distinct valid-value count
// is at or below cfg.LowCardinalityMax (spec.md §3's "low-cardinality
// Int"), every other numeric type never is.
func (e *Engine) categorical(col *columnstore.Column) bool {
	if col.Type == columnstore.Utf8 {
		return true
	}
	if col.Type != columnstore.Int64 {
		return false
	}

	vals, valid, err := col.AsFloat64()
	if err != nil {
		return false
	}

	seen := make(map[float64]struct{})
	for i, v := range vals {
		if !valid[i] {
			continue
		}
		seen[v] = struct{}{}
		if len(seen) > e.Config.LowCardinalityMax {
			return false
		}
	}

	return true
}

func selectFloats(vals []float64, idx []int) []float64 {
	out := make([]float64, len(idx))
	for j, i := range idx {
		out[j] = vals[i]
	}

	return out
}

func selectStrings(vals []string, idx []int) []string {
	out := make([]string, len(idx))
	for j, i := range idx {
		out[j] = vals[i]
	}

	return out
}

func selectBools(vals []bool, idx []int) []bool {
	out := make([]bool, len(idx))
	for j, i := range idx {
		out[j] = vals[i]
	}

	return out
}

// SortRecords orders records by feature name for deterministic report
// output (store column order is already deterministic, but callers that
// merge results across stores need an explicit tiebreak).
func SortRecords(records []*IvAnalysisRecord) {
	sort.Slice(records, func(i, j int) bool { return records[i].FeatureName < records[j].FeatureName })
}
