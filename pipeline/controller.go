package pipeline

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/lophi-data/lophi/columnstore"
	"github.com/lophi-data/lophi/internal/errs"
	"github.com/lophi-data/lophi/woe"
)

// Controller runs the fixed, single-threaded stage sequence of spec.md
// §4.4 over an already-loaded Store. Logging follows the teacher pack's
// start.go shape: a *log.Logger injected by the caller, one line per
// stage transition and per non-fatal per-feature degeneracy.
type Controller struct {
	Config Config
	Logger *log.Logger
	Solver woe.Solver
}

// NewController builds a Controller. A nil logger defaults to a
// stderr-backed *log.Logger, matching cmd/dca/main.go's top-level
// log.Print usage.
func NewController(cfg Config, logger *log.Logger) *Controller {
	if logger == nil {
		logger = log.New(os.Stderr, "lophi: ", log.LstdFlags)
	}

	return &Controller{Config: cfg, Logger: logger, Solver: woe.GreedyTrendSolver{}}
}

// Run executes load-time validation plus the four-stage pipeline over
// store, returning the full Result. store is never mutated in place;
// each stage's pruning produces a new Store (spec.md §5 "Shared state":
// the Column Store is read-only during a stage).
func (c *Controller) Run(ctx context.Context, store *columnstore.Store) (*Result, error) {
	if err := c.Config.Validate(); err != nil {
		return nil, err
	}
	if store.NumCols() == 0 {
		return nil, errs.ErrEmptyColumnStore
	}

	targetCol, err := store.Column(c.Config.TargetName)
	if err != nil {
		return nil, fmt.Errorf("%w: %q", errs.ErrTargetColumnMissing, c.Config.TargetName)
	}
	target, err := columnstore.MapTarget(targetCol, c.Config.EventValue, c.Config.NonEventValue)
	if err != nil {
		return nil, err
	}

	var weightCol *columnstore.Column
	if c.Config.WeightName != "" {
		weightCol, err = store.Column(c.Config.WeightName)
		if err != nil {
			return nil, fmt.Errorf("%w: %q", errs.ErrWeightColumnMissing, c.Config.WeightName)
		}
	}
	weights, err := columnstore.ResolveWeights(weightCol)
	if err != nil {
		return nil, err
	}

	result := &Result{InitialColumnCount: store.NumCols()}
	c.Logger.Printf("stage=load rows=%d cols=%d", store.Rows(), store.NumCols())

	if len(c.Config.DropColumns) > 0 {
		store = store.Drop(c.Config.DropColumns...)
		result.UserDropped = c.Config.DropColumns
		c.Logger.Printf("stage=user-drop count=%d", len(c.Config.DropColumns))
	}

	result.MissingRatios = missingRatios(store, weights, c.Config.TargetName, c.Config.WeightName)
	missingDrops := missingStage(store, weights, c.Config.TargetName, c.Config.WeightName, c.Config.MissingThreshold)
	result.Missing = missingDrops
	store = store.Drop(missingNames(missingDrops)...)
	c.Logger.Printf("stage=missing dropped=%d", len(missingDrops))

	ivRecords, err := ivStage(ctx, store, target, weights, c.Config.WoE, c.Solver, c.Config.TargetName, c.Config.WeightName)
	if err != nil {
		return nil, err
	}
	result.IV = ivRecords
	for _, r := range ivRecords {
		if r.DropReason == woe.DropReasonDegenerate {
			c.Logger.Printf("feature=%s degenerate", r.FeatureName)
		}
		if r.SolverUsed {
			c.Logger.Printf("feature=%s solver-refined", r.FeatureName)
		}
	}
	ivDrops := lowIVNames(ivRecords)
	store = store.Drop(ivDrops...)
	c.Logger.Printf("stage=iv dropped=%d", len(ivDrops))

	corrResult, err := correlationStage(ctx, store, weights, ivByFeatureName(ivRecords), c.Config.TargetName, c.Config.WeightName, c.Config.CorrelationThreshold)
	if err != nil {
		return nil, err
	}
	result.Correlation = corrResult
	store = store.Drop(correlationDropNames(corrResult)...)
	c.Logger.Printf("stage=correlation dropped=%d", len(corrResult.Dropped))

	result.Store = store

	return result, nil
}

func missingNames(drops []MissingDrop) []string {
	names := make([]string, len(drops))
	for i, d := range drops {
		names[i] = d.FeatureName
	}

	return names
}
