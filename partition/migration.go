package partition

import (
	"context"

	"github.com/arborix/partkit/automaton"
	"github.com/arborix/partkit/bsp"
)

// admissionProbabilities computes p_admit[i] for every candidate partition
// (spec §4.3 step 3) against load, the superstep's frozen Load snapshot
// (spec §5: admission reads the prior barrier's committed aggregate value,
// not a live one mutated by migrations already recorded this superstep).
// Demand is read live since it is only ever written during the preceding
// propose superstep, which has already passed its own barrier by the time
// any migrate-stage activation runs.
func (co *Coordinator) admissionProbabilities(load []int64) []float64 {
	demand := co.agg.SnapshotDemand()
	out := make([]float64, len(load))
	for i := range out {
		if demand[i] == 0 {
			continue
		}
		remain := float64(co.totalCapacity) - float64(load[i])
		if remain <= 0 {
			continue
		}
		p := remain / float64(demand[i])
		if p > 1 {
			p = 1
		}
		out[i] = p
	}
	return out
}

// migrateStage implements admission/migration (spec §4.3), run at every
// even superstep s>=3.
func migrateStage(co *Coordinator, ctx context.Context, superstep int, v bsp.VertexID, inbox []bsp.Message, send func(bsp.VertexID, interface{})) error {
	vs := co.vertexState(v)
	if vs == nil {
		return ErrVertexNotFound
	}

	ledger := co.migrationForSuperstep(superstep)
	admit := co.admissionProbabilities(ledger.Frozen())

	// Step 1: signal absorption.
	signal := vs.Signal(co.arena)
	for _, m := range inbox {
		env, ok := m.Body.(envelope)
		if !ok || env.Kind != kindSignal {
			return ErrProtocolViolation
		}
		p := env.Msg.Partition
		if int(p) < 0 || int(p) >= len(signal) {
			continue
		}
		if p == vs.NewPartition || admit[p] > 0 {
			signal[p] += env.Msg.Signal
		}
	}

	// Step 2: LA probability update (also resets the signal accumulator).
	if err := automaton.Update(vs.Probability(co.arena), signal, superstep, co.cfg.MaxIterations, co.cfg.Alpha, co.cfg.Beta); err != nil {
		return err
	}

	// Steps 3-4: decide migration.
	if vs.NewPartition == vs.CurrentPartition {
		return nil
	}
	u := vs.RNG().Float64()
	if u < admit[vs.NewPartition] {
		from := vs.CurrentPartition
		vs.CurrentPartition = vs.NewPartition
		ledger.Record(int(from), int(vs.CurrentPartition), vs.NumDirectedEdges)

		for id := range vs.Neighbors.Entries() {
			send(id, envelope{Msg: Message{SourceID: v, Partition: vs.CurrentPartition, Signal: 0.0}, Kind: kindLabel})
		}
		return nil
	}

	// Rejected: revert the proposal.
	vs.NewPartition = vs.CurrentPartition
	return nil
}
