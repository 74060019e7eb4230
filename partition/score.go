package partition

import (
	"context"
	"math"

	"github.com/arborix/partkit/automaton"
	"github.com/arborix/partkit/bsp"
)

// ceil3 rounds x up to 3 decimal places (spec §4.2's ceil₃).
func ceil3(x float64) float64 {
	return math.Ceil(x*1000) / 1000
}

// proposeStage implements score-and-propose (spec §4.2), run at every odd
// superstep s>=3.
func proposeStage(co *Coordinator, ctx context.Context, superstep int, v bsp.VertexID, inbox []bsp.Message, send func(bsp.VertexID, interface{})) error {
	vs := co.vertexState(v)
	if vs == nil {
		return ErrVertexNotFound
	}
	vs.receivedThisRound = len(inbox) > 0

	// Step 1: absorb migration-announcement messages from the previous
	// (migration) superstep.
	for _, m := range inbox {
		env, ok := m.Body.(envelope)
		if !ok || env.Kind != kindLabel {
			return ErrProtocolViolation
		}
		vs.Neighbors.Notify(env.Msg.SourceID, env.Msg.Partition)
	}

	k := co.cfg.K()
	entries := vs.Neighbors.Entries()

	// Step 2: tally neighborhood label frequency and locality/cut counts.
	partitionFrequency := make([]float64, k)
	var totalLabels float64
	var local, cut int64
	for _, e := range entries {
		if e.Partition >= 0 && int(e.Partition) < k {
			partitionFrequency[e.Partition] += float64(e.Weight)
			totalLabels += float64(e.Weight)
		}
		if e.Directed {
			if e.Partition == vs.CurrentPartition {
				local++
			} else {
				cut++
			}
		}
	}
	co.agg.AddLocality(local, cut)

	lpa := make([]float64, k)
	if totalLabels > 0 {
		for i := range lpa {
			lpa[i] = partitionFrequency[i] / totalLabels
		}
	} // else: isolated vertex, lpa stays all zero (spec §4.2 edge case)

	// Step 3: score each candidate partition.
	spec := co.speculativeForSuperstep(superstep)
	pf := make([]float64, k)
	for i := 0; i < k; i++ {
		w := ceil3(float64(spec.At(i)) / float64(co.totalCapacity))
		pf[i] = co.cfg.Lambda - w
	}
	normalizePenalty(pf)

	score := make([]float64, k)
	for i := 0; i < k; i++ {
		score[i] = (pf[i] + lpa[i]) / 2
	}

	// Step 4: argmax, ties broken by first occurrence.
	maxPartition := int16(argmaxFloat(score))

	// Step 5: LA action selection picks the actual proposal.
	laIdx, err := automaton.Select(vs.Probability(co.arena), vs.RNG())
	if err != nil {
		return err
	}
	newPartition := int16(laIdx)
	vs.NewPartition = newPartition

	// Step 6: broadcast + self-reinforcement. Open Question 3: the
	// reinforced/broadcast target is configurable between the argmax score
	// (observed default) and the LA sample.
	reinforced := maxPartition
	if !co.cfg.ReinforceArgmax {
		reinforced = newPartition
	}
	vs.Signal(co.arena)[reinforced]++
	for id := range entries {
		send(id, envelope{Msg: Message{SourceID: v, Partition: reinforced, Signal: 1.0}, Kind: kindSignal})
	}

	// Step 7: demand accounting, only if proposing a real move while active.
	if newPartition != vs.CurrentPartition && vs.receivedThisRound {
		co.agg.AddDemand(int(newPartition), vs.NumDirectedEdges)
		spec.Shift(int(vs.CurrentPartition), int(newPartition), vs.NumDirectedEdges)
	}

	// Step 8: aggregate convergence-proxy state at the vertex's *current*
	// partition.
	co.agg.AddState(score[vs.CurrentPartition])

	return nil
}

// normalizePenalty applies spec §4.2 step 3's two-pass normalization: a
// min-max pass to [0,1] only if some component is negative, then a
// sum-normalize pass so Σpf==1.
func normalizePenalty(pf []float64) {
	hasNegative := false
	min, max := pf[0], pf[0]
	for _, x := range pf {
		if x < 0 {
			hasNegative = true
		}
		if x < min {
			min = x
		}
		if x > max {
			max = x
		}
	}
	if hasNegative && max > min {
		for i := range pf {
			pf[i] = (pf[i] - min) / (max - min)
		}
	}

	sum := 0.0
	for _, x := range pf {
		sum += x
	}
	if sum == 0 {
		uniform := 1.0 / float64(len(pf))
		for i := range pf {
			pf[i] = uniform
		}
		return
	}
	for i := range pf {
		pf[i] /= sum
	}
}

// argmaxFloat returns the index of the largest value, ties broken by first
// occurrence.
func argmaxFloat(v []float64) int {
	best := 0
	for i := 1; i < len(v); i++ {
		if v[i] > v[best] {
			best = i
		}
	}
	return best
}
