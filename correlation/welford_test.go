package correlation

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPairStat_PerfectPositiveCorrelation(t *testing.T) {
	var s pairStat
	for i := 1; i <= 10; i++ {
		s.update(float64(i), float64(i), 1)
	}
	require.InDelta(t, 1.0, s.rho(), 1e-9)
}

func TestPairStat_PerfectNegativeCorrelation(t *testing.T) {
	var s pairStat
	for i := 1; i <= 10; i++ {
		s.update(float64(i), float64(-i), 1)
	}
	require.InDelta(t, -1.0, s.rho(), 1e-9)
}

func TestPairStat_NoCorrelation(t *testing.T) {
	var s pairStat
	xs := []float64{1, 2, 3, 4, 5, 6}
	ys := []float64{3, 1, 4, 1, 5, 9}
	for i := range xs {
		s.update(xs[i], ys[i], 1)
	}
	require.Less(t, math.Abs(s.rho()), 1.0)
}

func TestPairStat_ZeroVarianceColumnYieldsZeroNeverNaN(t *testing.T) {
	var s pairStat
	for i := 1; i <= 5; i++ {
		s.update(3.0, float64(i), 1) // column a is constant
	}
	r := s.rho()
	require.Equal(t, 0.0, r)
	require.False(t, math.IsNaN(r))
}

func TestPairStat_ZeroRowsYieldsZero(t *testing.T) {
	var s pairStat
	require.Equal(t, 0.0, s.rho())
}

func TestPairStat_IgnoresNonPositiveWeight(t *testing.T) {
	var s pairStat
	s.update(1, 1, 0)
	s.update(100, -100, -5)
	require.Equal(t, 0.0, s.weight)
}

func TestPairStat_ClampsToUnitInterval(t *testing.T) {
	var s pairStat
	for i := 1; i <= 20; i++ {
		x := float64(i)
		// tiny floating-point noise that could push |rho| slightly past 1.
		s.update(x, x*1.0000000000001, 1)
	}
	r := s.rho()
	require.LessOrEqual(t, r, 1.0)
	require.GreaterOrEqual(t, r, -1.0)
}

func TestPairStat_MergeMatchesSinglePass(t *testing.T) {
	xs := []float64{1, 2, 3, 4, 5, 6, 7, 8}
	ys := []float64{2, 1, 4, 3, 6, 5, 8, 7}

	var whole pairStat
	for i := range xs {
		whole.update(xs[i], ys[i], 1)
	}

	var left, right pairStat
	for i := 0; i < 4; i++ {
		left.update(xs[i], ys[i], 1)
	}
	for i := 4; i < 8; i++ {
		right.update(xs[i], ys[i], 1)
	}
	merged := left.merge(&right)

	require.InDelta(t, whole.rho(), merged.rho(), 1e-9)
}
