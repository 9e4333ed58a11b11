package correlation

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/lophi-data/lophi/columnstore"
	"github.com/lophi-data/lophi/internal/errs"
)

// Engine computes the correlation matrix and redundancy selection of
// spec.md §4.3 over a fixed set of numeric feature names. The outer pair
// loop is parallel (spec's "Parallelism" clause), one Welford pairStat per
// pair so sharding is trivial, mirroring the errgroup fan-out shape
// solidcoredata-dca's start package uses for independent concurrent work.
type Engine struct {
	Threshold float64
}

// NewEngine builds an Engine at the given |ρ| drop threshold.
func NewEngine(threshold float64) *Engine {
	return &Engine{Threshold: threshold}
}

// Analyze scores every pair among names and selects features to drop.
// weights may be nil (every row weight 1). ivByName supplies the
// redundancy-selection tie-break metric; a name absent from it falls back
// to alphabetical order.
func (e *Engine) Analyze(ctx context.Context, store *columnstore.Store, names []string, weights []float64, ivByName map[string]float64) (*Result, error) {
	if len(names) == 0 {
		return nil, errs.ErrNoNumericFeatures
	}

	values := make([][]float64, len(names))
	valid := make([][]bool, len(names))
	for i, name := range names {
		col, err := store.Column(name)
		if err != nil {
			return nil, err
		}
		v, ok, err := col.AsFloat64()
		if err != nil {
			return nil, fmt.Errorf("feature %q: %w", name, err)
		}
		values[i] = v
		valid[i] = ok
	}

	m := NewMatrix(names)

	// A constant (zero-variance) column reports a 0 diagonal rather than
	// NewMatrix's default 1, per spec.md §4.3.
	for i, name := range names {
		if isConstantColumn(values[i], valid[i]) {
			if err := m.Set(i, i, 0); err != nil {
				return nil, fmt.Errorf("feature %q: %w", name, err)
			}
		}
	}

	type job struct{ i, j int }
	jobs := make([]job, 0, len(names)*(len(names)-1)/2)
	for i := 0; i < len(names); i++ {
		for j := i + 1; j < len(names); j++ {
			jobs = append(jobs, job{i, j})
		}
	}

	group, _ := errgroup.WithContext(ctx)
	for _, jb := range jobs {
		jb := jb
		group.Go(func() error {
			rho := pairRho(values[jb.i], valid[jb.i], values[jb.j], valid[jb.j], weights)

			return m.Set(jb.i, jb.j, rho)
		})
	}
	if err := group.Wait(); err != nil {
		return nil, err
	}

	pairs := highPairs(m, e.Threshold)
	dropped := selectRedundant(pairs, ivByName)

	return &Result{Matrix: m, Pairs: pairs, Dropped: dropped}, nil
}

// isConstantColumn reports whether every valid value of a column is the
// same, i.e. it has zero variance (spec.md §4.3's 0-diagonal case).
func isConstantColumn(a []float64, aValid []bool) bool {
	var s pairStat
	for i := range a {
		if !aValid[i] {
			continue
		}
		s.update(a[i], a[i], 1)
	}

	return s.m2A <= 0
}

// pairRho folds one feature pair's jointly-valid rows into a pairStat and
// finalizes ρ.
func pairRho(a []float64, aValid []bool, b []float64, bValid []bool, weights []float64) float64 {
	var s pairStat
	for i := range a {
		if !aValid[i] || !bValid[i] {
			continue
		}
		w := 1.0
		if weights != nil {
			w = weights[i]
		}
		s.update(a[i], b[i], w)
	}

	return s.rho()
}

// highPairs collects every pair at or above the |ρ| threshold, in matrix
// (i, j) order.
func highPairs(m *Matrix, threshold float64) []Pair {
	var out []Pair
	for i := 0; i < len(m.Names); i++ {
		for j := i + 1; j < len(m.Names); j++ {
			rho := m.Data[i][j]
			if abs(rho) >= threshold {
				out = append(out, Pair{FeatureA: m.Names[i], FeatureB: m.Names[j], Rho: rho})
			}
		}
	}

	return out
}

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}

	return v
}
