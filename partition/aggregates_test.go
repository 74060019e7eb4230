package partition

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestAggregatesResetProposeStageClearsPerSuperstepFields(t *testing.T) {
	a := NewAggregates(3)
	a.AddDemand(1, 5)
	a.AddState(2.5)
	a.AddLocality(4, 1)

	a.ResetProposeStage()

	require.Equal(t, 0.0, a.State)
	require.Equal(t, int64(0), a.LocalEdges)
	require.Equal(t, int64(0), a.CutEdges)

	// Demand is untouched by ResetProposeStage; it is the migrate stage's own
	// field to clear.
	require.Equal(t, []int64{0, 5, 0}, a.Demand)
}

func TestAggregatesResetMigrateStageClearsDemandOnly(t *testing.T) {
	a := NewAggregates(2)
	a.AddDemand(0, 3)
	a.AddState(1.0)

	a.ResetMigrateStage()

	require.Equal(t, []int64{0, 0}, a.Demand)
	require.Equal(t, 1.0, a.State, "ResetMigrateStage must not touch propose-stage fields")
}

func TestAggregatesSnapshotsAreDefensiveCopies(t *testing.T) {
	a := NewAggregates(2)
	a.AddDemand(0, 3)
	snap := a.SnapshotDemand()
	snap[0] = 999
	require.Equal(t, int64(3), a.Demand[0], "mutating the snapshot must not affect the live Demand slice")
}

func TestSpeculativeLoadShiftIsRelativeToSeed(t *testing.T) {
	s := newSpeculativeLoad([]int64{10, 20, 30})
	s.Shift(0, 2, 4)
	require.Equal(t, int64(6), s.At(0))
	require.Equal(t, int64(20), s.At(1))
	require.Equal(t, int64(34), s.At(2))
}

func TestMigrationLedgerFrozenIsUnaffectedByRecord(t *testing.T) {
	l := newMigrationLedger([]int64{10, 20, 30})
	before := append([]int64(nil), l.Frozen()...)

	l.Record(0, 2, 4)
	l.Record(2, 1, 1)

	require.Equal(t, before, l.Frozen(), "Record must never mutate the frozen snapshot vertices read admission against")
}

func TestMigrationLedgerCommitToFoldsDeltasIntoPersistentLoad(t *testing.T) {
	a := NewAggregates(3)
	a.Load = []int64{10, 20, 30}

	l := newMigrationLedger(a.SnapshotLoad())
	l.Record(0, 2, 4) // Load[0] -= 4, Load[2] += 4
	l.Record(1, 2, 1) // Load[1] -= 1, Load[2] += 1

	l.CommitTo(a)

	require.Equal(t, []int64{6, 19, 35}, a.Load)
	require.Equal(t, 2, a.Migrations)
}

func TestMigrationLedgerCommitToIsOneShotPerSuperstep(t *testing.T) {
	a := NewAggregates(2)
	a.Load = []int64{5, 5}

	l := newMigrationLedger(a.SnapshotLoad())
	l.Record(0, 1, 2)
	l.CommitTo(a)

	require.Equal(t, []int64{3, 7}, a.Load)
	require.Equal(t, 1, a.Migrations)
}
