package correlation

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/lophi-data/lophi/columnstore"
)

func TestEngine_Analyze_FindsCorrelatedPairAndDropsOne(t *testing.T) {
	n := 50
	a := make([]float64, n)
	b := make([]float64, n) // b == 2*a, perfectly correlated with a
	c := make([]float64, n) // independent-ish of a/b
	valid := make([]bool, n)
	for i := 0; i < n; i++ {
		a[i] = float64(i)
		b[i] = float64(i) * 2
		c[i] = float64((i*37 + 11) % 13)
		valid[i] = true
	}

	store, err := columnstore.New(
		columnstore.NewFloat64Column("a", a, valid),
		columnstore.NewFloat64Column("b", b, valid),
		columnstore.NewFloat64Column("c", c, valid),
	)
	require.NoError(t, err)

	e := NewEngine(0.95)
	result, err := e.Analyze(context.Background(), store, []string{"a", "b", "c"}, nil, nil)
	require.NoError(t, err)

	rho, err := result.Matrix.AtName("a", "b")
	require.NoError(t, err)
	require.InDelta(t, 1.0, rho, 1e-6)

	require.Len(t, result.Pairs, 1)
	require.Len(t, result.Dropped, 1)

	survivors := result.Survivors()
	require.Len(t, survivors, 2)
	require.Contains(t, survivors, "c")
}

func TestEngine_Analyze_NoFeaturesErrors(t *testing.T) {
	store, err := columnstore.New()
	require.NoError(t, err)

	e := NewEngine(0.9)
	_, err = e.Analyze(context.Background(), store, nil, nil, nil)
	require.Error(t, err)
}

func TestEngine_Analyze_PairwiseCompleteExcludesNullRows(t *testing.T) {
	a := []float64{1, 2, 3, 4, 0}
	b := []float64{2, 4, 6, 8, 100} // last row null in a, would break correlation if included
	validA := []bool{true, true, true, true, false}
	validB := []bool{true, true, true, true, true}

	store, err := columnstore.New(
		columnstore.NewFloat64Column("a", a, validA),
		columnstore.NewFloat64Column("b", b, validB),
	)
	require.NoError(t, err)

	e := NewEngine(0.5)
	result, err := e.Analyze(context.Background(), store, []string{"a", "b"}, nil, nil)
	require.NoError(t, err)

	rho, err := result.Matrix.AtName("a", "b")
	require.NoError(t, err)
	require.InDelta(t, 1.0, rho, 1e-9)
}

func TestEngine_Analyze_NoHighPairsDropsNothing(t *testing.T) {
	n := 30
	a := make([]float64, n)
	b := make([]float64, n)
	valid := make([]bool, n)
	for i := 0; i < n; i++ {
		a[i] = float64(i)
		b[i] = float64((i*53 + 7) % 17)
		valid[i] = true
	}

	store, err := columnstore.New(
		columnstore.NewFloat64Column("a", a, valid),
		columnstore.NewFloat64Column("b", b, valid),
	)
	require.NoError(t, err)

	e := NewEngine(0.999)
	result, err := e.Analyze(context.Background(), store, []string{"a", "b"}, nil, nil)
	require.NoError(t, err)
	require.Empty(t, result.Dropped)
}

// TestEngine_Analyze_ConstantColumnHasZeroDiagonal pins spec.md §4.3's
// diagonal rule: ρ_ii = 1 for a non-constant column, 0 for a zero-variance
// one.
func TestEngine_Analyze_ConstantColumnHasZeroDiagonal(t *testing.T) {
	n := 20
	a := make([]float64, n)
	constant := make([]float64, n)
	valid := make([]bool, n)
	for i := 0; i < n; i++ {
		a[i] = float64(i)
		constant[i] = 7
		valid[i] = true
	}

	store, err := columnstore.New(
		columnstore.NewFloat64Column("a", a, valid),
		columnstore.NewFloat64Column("constant", constant, valid),
	)
	require.NoError(t, err)

	e := NewEngine(0.9)
	result, err := e.Analyze(context.Background(), store, []string{"a", "constant"}, nil, nil)
	require.NoError(t, err)

	rhoAA, err := result.Matrix.AtName("a", "a")
	require.NoError(t, err)
	require.Equal(t, 1.0, rhoAA)

	rhoConstant, err := result.Matrix.AtName("constant", "constant")
	require.NoError(t, err)
	require.Equal(t, 0.0, rhoConstant)
}
