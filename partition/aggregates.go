package partition

import "sync"

// Aggregates holds the global, per-superstep-reduced values spec §3 lists:
// per-partition load and demand, the convergence-proxy state sum, migration
// count, and the locality/cut tallies. Each field is a typed reducer handle
// (Design Notes §9) rather than a string-keyed lookup — one Aggregates
// value is opened once per Coordinator run and threaded through every
// superstep, with ResetProposeStage and ResetMigrateStage clearing each
// stage's per-superstep-write fields at that stage's barrier.
type Aggregates struct {
	mu sync.Mutex

	Load []int64 // persists across supersteps; Σ Load == DirectedEdges

	Demand []int64 // reset each superstep

	State float64 // convergence proxy, reset each superstep

	Migrations int // cumulative across the whole run

	LocalEdges int64 // reset each superstep
	CutEdges   int64 // reset each superstep

	DirectedEdges int64 // persistent, set once by NewCoordinator from Graph.TotalDirectedEdges
}

// NewAggregates allocates an Aggregates sized for k candidate partitions.
func NewAggregates(k int) *Aggregates {
	return &Aggregates{
		Load:   make([]int64, k),
		Demand: make([]int64, k),
	}
}

// ResetProposeStage clears the fields score-and-propose writes (State,
// LocalEdges, CutEdges) once the propose superstep's barrier has passed and
// its values have been read out.
func (a *Aggregates) ResetProposeStage() {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.State = 0
	a.LocalEdges = 0
	a.CutEdges = 0
}

// ResetMigrateStage clears Demand once the migrate superstep's barrier has
// passed and admission for that superstep is done with it.
func (a *Aggregates) ResetMigrateStage() {
	a.mu.Lock()
	defer a.mu.Unlock()
	for i := range a.Demand {
		a.Demand[i] = 0
	}
}

// AddDemand accumulates demand for partition i (spec §4.2 step 7).
func (a *Aggregates) AddDemand(i int, n int64) {
	a.mu.Lock()
	a.Demand[i] += n
	a.mu.Unlock()
}

// AddState accumulates a vertex's currentState into the convergence proxy.
func (a *Aggregates) AddState(s float64) {
	a.mu.Lock()
	a.State += s
	a.mu.Unlock()
}

// AddLocality accumulates per-vertex locality/cut tallies (spec §4.2 step 2).
func (a *Aggregates) AddLocality(local, cut int64) {
	a.mu.Lock()
	a.LocalEdges += local
	a.CutEdges += cut
	a.mu.Unlock()
}

// SnapshotLoad returns a defensive copy of the persistent Load vector, used
// to seed each superstep's speculativeLoad.
func (a *Aggregates) SnapshotLoad() []int64 {
	a.mu.Lock()
	defer a.mu.Unlock()
	out := make([]int64, len(a.Load))
	copy(out, a.Load)
	return out
}

// SnapshotDemand returns a defensive copy of Demand, read by the admission
// stage once score-and-propose has finished for the superstep.
func (a *Aggregates) SnapshotDemand() []int64 {
	a.mu.Lock()
	defer a.mu.Unlock()
	out := make([]int64, len(a.Demand))
	copy(out, a.Demand)
	return out
}

// speculativeLoad is the "speculative local load" object Design Notes §9
// calls for: score-and-propose mutates this local, per-superstep copy of
// Load so that successive vertex activations within the same stage observe
// each other's tentative effect (spec §4.2 step 7), without touching the
// persistent Aggregates.Load that only the admission stage commits to.
type speculativeLoad struct {
	mu   sync.Mutex
	load []int64
}

// newSpeculativeLoad seeds a speculativeLoad from a snapshot of the
// persistent Load.
func newSpeculativeLoad(base []int64) *speculativeLoad {
	cp := make([]int64, len(base))
	copy(cp, base)
	return &speculativeLoad{load: cp}
}

// At returns the current speculative load for partition i.
func (s *speculativeLoad) At(i int) int64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.load[i]
}

// Shift moves n units of load from "from" to "to" (spec §4.2 step 7:
// "optimistically shift load[newPartition] += n, load[currentPartition] -= n").
func (s *speculativeLoad) Shift(from, to int, n int64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.load[from] -= n
	s.load[to] += n
}

// migrationLedger is the migrate stage's counterpart to speculativeLoad: it
// freezes Load once per migrate superstep so every vertex's
// admissionProbabilities call reads the same values regardless of goroutine
// scheduling order, and buffers that superstep's migration deltas separately
// instead of writing them straight through to the persistent Load. Spec §5
// scopes within-superstep load visibility to the propose stage's
// speculativeLoad only — every other aggregate read, including admission,
// must see the prior barrier's committed value — so the frozen snapshot
// here is never updated by Record; only CommitTo, called once at the
// superstep's barrier, folds the buffered deltas into Aggregates.Load.
type migrationLedger struct {
	frozen []int64 // snapshot taken once at construction; never mutated again

	mu    sync.Mutex
	delta []int64
	count int
}

// newMigrationLedger seeds a migrationLedger from a snapshot of the
// persistent Load.
func newMigrationLedger(base []int64) *migrationLedger {
	frozen := make([]int64, len(base))
	copy(frozen, base)
	return &migrationLedger{frozen: frozen, delta: make([]int64, len(base))}
}

// Frozen returns the superstep's frozen Load snapshot. Safe for concurrent
// use: the returned slice is never written to after construction.
func (l *migrationLedger) Frozen() []int64 {
	return l.frozen
}

// Record buffers one successful migration's load delta (spec §4.3 step 4)
// without touching the frozen snapshot other vertices are still reading.
func (l *migrationLedger) Record(from, to int, n int64) {
	l.mu.Lock()
	l.delta[from] -= n
	l.delta[to] += n
	l.count++
	l.mu.Unlock()
}

// CommitTo folds this superstep's buffered deltas into a's persistent Load
// and migration count. Called once, at the migrate superstep's barrier.
func (l *migrationLedger) CommitTo(a *Aggregates) {
	l.mu.Lock()
	defer l.mu.Unlock()
	a.mu.Lock()
	for i, d := range l.delta {
		a.Load[i] += d
	}
	a.Migrations += l.count
	a.mu.Unlock()
}
