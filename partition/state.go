package partition

import (
	"math/rand"

	"github.com/arborix/partkit/automaton"
)

// VertexState is the per-vertex state of spec §3, owned exclusively by the
// coordinator's activation of that vertex ID. CurrentPartition is -1 before
// Initializer/Rescaler runs at superstep 2.
type VertexState struct {
	ID                int64
	CurrentPartition  int16
	NewPartition      int16
	NumDirectedEdges  int64
	Neighbors         *NeighborCache
	rng               *rand.Rand
	row               int // dense index into the shared laArena
	receivedThisRound bool
}

// Probability returns this vertex's laProbability vector, aliasing the
// owning laArena's backing slab.
func (v *VertexState) Probability(arena *laArena) automaton.Vector {
	return arena.Probability(v.row)
}

// Signal returns this vertex's laSignal accumulator, aliasing the owning
// laArena's backing slab.
func (v *VertexState) Signal(arena *laArena) automaton.Vector {
	return arena.Signal(v.row)
}

// RNG returns this vertex's private, deterministically-seeded RNG stream
// (spec §5: "reproducibility requires per-agent seeding derived from vertex
// ID"). Never share this across goroutines.
func (v *VertexState) RNG() *rand.Rand {
	return v.rng
}

// seedRNG derives a deterministic stream keyed by (runSeed, vertex ID),
// mixing with a SplitMix64-style avalanche so nearby vertex IDs or run seeds
// don't produce correlated streams.
func seedRNG(runSeed int64, vertexID int64) *rand.Rand {
	return rand.New(rand.NewSource(mixSeed(runSeed, vertexID)))
}

func mixSeed(a, b int64) int64 {
	x := uint64(a) ^ (uint64(b) + 0x9e3779b97f4a7c15)
	x += 0x9e3779b97f4a7c15
	x = (x ^ (x >> 30)) * 0xbf58476d1ce4e5b9
	x = (x ^ (x >> 27)) * 0x94d049bb133111eb
	x ^= x >> 31
	return int64(x)
}
