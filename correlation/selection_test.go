package correlation

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSelectRedundant_NoPairsDropsNothing(t *testing.T) {
	drops := selectRedundant(nil, nil)
	require.Empty(t, drops)
}

func TestSelectRedundant_RemovesHighestDegreeFeatureFirst(t *testing.T) {
	// "b" appears in two pairs, "a" and "c" in one each.
	pairs := []Pair{
		{FeatureA: "a", FeatureB: "b", Rho: 0.9},
		{FeatureA: "b", FeatureB: "c", Rho: 0.9},
	}
	drops := selectRedundant(pairs, nil)
	require.Len(t, drops, 1)
	require.Equal(t, "b", drops[0].FeatureName)
	require.Len(t, drops[0].CausedBy, 2)
}

func TestSelectRedundant_TerminatesWhenNoPairRemains(t *testing.T) {
	pairs := []Pair{
		{FeatureA: "a", FeatureB: "b", Rho: 0.95},
	}
	drops := selectRedundant(pairs, nil)
	require.Len(t, drops, 1)
	require.Equal(t, "a", drops[0].FeatureName) // tie on count=1, "a" < "b"
}

func TestSelectRedundant_TieBrokenByLowerIV(t *testing.T) {
	pairs := []Pair{
		{FeatureA: "x", FeatureB: "y", Rho: 0.9},
	}
	iv := map[string]float64{"x": 0.5, "y": 0.1}
	drops := selectRedundant(pairs, iv)
	require.Equal(t, "y", drops[0].FeatureName)
}

func TestSelectRedundant_ChainEventuallyClearsAllPairs(t *testing.T) {
	pairs := []Pair{
		{FeatureA: "a", FeatureB: "b", Rho: 0.9},
		{FeatureA: "c", FeatureB: "d", Rho: 0.9},
		{FeatureA: "b", FeatureB: "c", Rho: 0.9},
	}
	drops := selectRedundant(pairs, nil)
	require.NotEmpty(t, drops)

	remaining := append([]Pair(nil), pairs...)
	dropped := make(map[string]struct{})
	for _, d := range drops {
		dropped[d.FeatureName] = struct{}{}
	}
	for _, p := range remaining {
		_, dA := dropped[p.FeatureA]
		_, dB := dropped[p.FeatureB]
		require.True(t, dA || dB)
	}
}
