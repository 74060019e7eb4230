package partition

import (
	"context"

	"github.com/arborix/partkit/bsp"
)

// seedStage runs at superstep 2: the Initializer for a fresh partitioning,
// or the Rescaler when Config.Repartition != 0 (spec §4.1/§4.5).
func seedStage(co *Coordinator, ctx context.Context, superstep int, v bsp.VertexID, inbox []bsp.Message, send func(bsp.VertexID, interface{})) error {
	vs := co.vertexState(v)
	if vs == nil {
		return ErrVertexNotFound
	}

	if co.cfg.Repartition != 0 {
		rescaleVertex(co, vs)
	} else {
		initializeVertex(co, vs)
	}

	co.agg.mu.Lock()
	co.agg.Load[vs.CurrentPartition] += vs.NumDirectedEdges
	co.agg.mu.Unlock()

	for id := range vs.Neighbors.Entries() {
		send(id, envelope{Msg: Message{SourceID: v, Partition: vs.CurrentPartition, Signal: 0.0}, Kind: kindLabel})
	}
	return nil
}

// initializeVertex draws a fresh uniform label when no prior partition was
// supplied, or keeps the input's prior label otherwise ("preserved" init,
// spec §6 vertex-value format).
func initializeVertex(co *Coordinator, vs *VertexState) {
	if vs.CurrentPartition < 0 {
		k := co.cfg.K()
		vs.CurrentPartition = int16(vs.rng.Intn(k))
	}
	vs.NewPartition = vs.CurrentPartition
}

// rescaleVertex implements the Rescaler (spec §4.1): Δ<0 relabels vertices
// that fell in a removed partition uniformly among the survivors; Δ>0
// migrates each vertex into a new partition with probability Δ/(k+Δ).
func rescaleVertex(co *Coordinator, vs *VertexState) {
	newK := co.cfg.K()
	delta := co.cfg.Repartition

	if vs.CurrentPartition < 0 {
		// No prior label to rescale from — fall back to a fresh draw.
		vs.CurrentPartition = int16(vs.rng.Intn(newK))
		vs.NewPartition = vs.CurrentPartition
		return
	}

	if delta < 0 {
		if int(vs.CurrentPartition) >= newK {
			vs.CurrentPartition = int16(vs.rng.Intn(newK))
		}
	} else if delta > 0 {
		p := float64(delta) / float64(newK)
		if vs.rng.Float64() < p {
			// grow: land in one of the Δ newly-added partitions
			// [oldK, newK).
			oldK := newK - delta
			vs.CurrentPartition = int16(oldK + vs.rng.Intn(delta))
		}
	}
	vs.NewPartition = vs.CurrentPartition
}
