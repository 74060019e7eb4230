package automaton_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arborix/partkit/automaton"
)

func TestUpdatePreservesSimplex(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	const k = 6
	p := automaton.Uniform(k)

	for step := 1; step <= 50; step++ {
		signal := automaton.Zero(k)
		for i := range signal {
			signal[i] = rng.Float64() * 10
		}
		require.NoError(t, automaton.Update(p, signal, step, 290, automaton.DefaultAlpha, automaton.DefaultBeta))
		require.True(t, p.IsSimplex(), "p not a simplex after step %d: %v (sum=%f)", step, p, p.Sum())
	}
}

func TestUpdateResetsSignal(t *testing.T) {
	p := automaton.Uniform(3)
	signal := automaton.Vector{1, 5, 2}
	require.NoError(t, automaton.Update(p, signal, 10, 290, automaton.DefaultAlpha, automaton.DefaultBeta))
	require.Equal(t, automaton.Vector{0, 0, 0}, signal)
}

func TestUpdateLengthMismatch(t *testing.T) {
	p := automaton.Uniform(3)
	signal := automaton.Zero(2)
	err := automaton.Update(p, signal, 1, 290, automaton.DefaultAlpha, automaton.DefaultBeta)
	require.ErrorIs(t, err, automaton.ErrLengthMismatch)
}

func TestUpdateRewardsDominantAction(t *testing.T) {
	p := automaton.Uniform(4)
	signal := automaton.Vector{0, 0, 10, 0}
	require.NoError(t, automaton.Update(p, signal, 5, 290, automaton.DefaultAlpha, automaton.DefaultBeta))
	require.Equal(t, 2, p.ArgMax(), "probability mass should shift toward the rewarded action")
}

func TestUpdateSingleCandidateIsNoop(t *testing.T) {
	p := automaton.Vector{1}
	signal := automaton.Vector{3}
	require.NoError(t, automaton.Update(p, signal, 1, 290, automaton.DefaultAlpha, automaton.DefaultBeta))
	require.InDelta(t, 1.0, p[0], automaton.SimplexTolerance)
}
