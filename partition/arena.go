package partition

import "github.com/arborix/partkit/automaton"

// laArena is the "arena + index" realization of Design Notes §9: every
// vertex's laProbability and laSignal rows live in two contiguous slabs
// (probabilities, signals) rather than one heap allocation per vertex,
// indexed by a dense row number assigned once in NewCoordinator. Row
// slices returned by Probability/Signal alias directly into the slab, so LA
// reads/writes stay cache-local the way the teacher's adjacency-list
// dense-map trades pointer chasing for index lookup.
type laArena struct {
	k             int
	probabilities []float64 // len == rows*k
	signals       []float64 // len == rows*k
	rows          int
}

// newLAArena allocates an arena for n vertices with k candidate partitions
// each, seeding every row to the uniform distribution and a zeroed signal
// accumulator (spec §4.5 Initializer semantics).
func newLAArena(n, k int) *laArena {
	a := &laArena{
		k:             k,
		probabilities: make([]float64, n*k),
		signals:       make([]float64, n*k),
		rows:          n,
	}
	for row := 0; row < n; row++ {
		p := a.Probability(row)
		uniform := 1.0 / float64(k)
		for i := range p {
			p[i] = uniform
		}
	}
	return a
}

// Probability returns the row-th vertex's laProbability slice, aliasing the
// arena's backing array.
func (a *laArena) Probability(row int) automaton.Vector {
	start := row * a.k
	return automaton.Vector(a.probabilities[start : start+a.k])
}

// Signal returns the row-th vertex's laSignal slice, aliasing the arena's
// backing array.
func (a *laArena) Signal(row int) automaton.Vector {
	start := row * a.k
	return automaton.Vector(a.signals[start : start+a.k])
}
