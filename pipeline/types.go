package pipeline

import (
	"github.com/lophi-data/lophi/columnstore"
	"github.com/lophi-data/lophi/correlation"
	"github.com/lophi-data/lophi/woe"
)

// MissingDrop records one feature dropped by the missing stage.
type MissingDrop struct {
	FeatureName  string
	MissingRatio float64
}

// Result is the full record of one pipeline run: every stage's drop list
// plus the final, pruned Store.
type Result struct {
	InitialColumnCount int

	UserDropped []string
	Missing     []MissingDrop
	// MissingRatios carries every original feature's weighted missing
	// ratio, not just the ones the missing stage dropped; the reduction
	// report needs a value for every surviving or dropped feature alike.
	MissingRatios map[string]float64
	IV            []*woe.IvAnalysisRecord
	Correlation   *correlation.Result

	Store *columnstore.Store
}

// FinalNames returns the surviving feature names plus target/weight, in
// Store order.
func (r *Result) FinalNames() []string {
	return r.Store.Names()
}
