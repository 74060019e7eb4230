package automaton_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arborix/partkit/automaton"
)

func TestSelectEmptyVector(t *testing.T) {
	_, err := automaton.Select(automaton.Vector{}, rand.New(rand.NewSource(1)))
	require.ErrorIs(t, err, automaton.ErrEmptyVector)
}

func TestSelectSingleton(t *testing.T) {
	idx, err := automaton.Select(automaton.Vector{1}, rand.New(rand.NewSource(1)))
	require.NoError(t, err)
	require.Equal(t, 0, idx)
}

func TestSelectNearDeterministicShortcut(t *testing.T) {
	p := automaton.Vector{0.0000001, 0.9999999}
	idx, err := automaton.Select(p, rand.New(rand.NewSource(1)))
	require.NoError(t, err)
	require.Equal(t, 1, idx)
}

// TestSelectSamplerFidelity verifies spec §8 property 7: for a fixed p, the
// empirical frequency of sampled actions over many draws converges to p.
func TestSelectSamplerFidelity(t *testing.T) {
	p := automaton.Vector{0.1, 0.3, 0.05, 0.4, 0.15}
	const n = 100000
	counts := make([]int, len(p))

	rng := rand.New(rand.NewSource(42))
	for i := 0; i < n; i++ {
		idx, err := automaton.Select(p, rng)
		require.NoError(t, err)
		counts[idx]++
	}

	// chi-squared goodness-of-fit statistic against the expected frequencies.
	chiSq := 0.0
	for i, want := range p {
		expected := want * float64(n)
		diff := float64(counts[i]) - expected
		chiSq += diff * diff / expected
	}

	// 4 degrees of freedom (5 categories - 1); the 0.01 critical value is
	// 13.277 — well above what a correctly-distributed sampler should see at
	// n=100000, leaving ample slack against flaky failures.
	require.Less(t, chiSq, 13.277, "sampled frequencies diverge from p: counts=%v", counts)
}

func TestSelectAllMassOnOneIndex(t *testing.T) {
	p := automaton.Vector{0, 0, 1, 0}
	rng := rand.New(rand.NewSource(7))
	for i := 0; i < 50; i++ {
		idx, err := automaton.Select(p, rng)
		require.NoError(t, err)
		require.Equal(t, 2, idx)
	}
}
