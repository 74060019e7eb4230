package partition

import (
	"context"
	"math"
	"sync"

	"github.com/arborix/partkit/bsp"
	"github.com/arborix/partkit/graphmodel"
)

// stage tags each superstep with the protocol step it runs (Design Notes §9:
// a tagged stage enum plus a static dispatch table, replacing a dynamic
// per-superstep type switch scattered through the run loop).
type stage int8

const (
	stageSetup   stage = iota // supersteps 0-1: graph already reconciled synchronously, nothing to do per vertex
	stageSeed                 // superstep 2: Initializer or Rescaler
	stagePropose              // odd supersteps >=3: score-and-propose
	stageMigrate              // even supersteps >=3: admission/migration
)

// stageForSuperstep maps a superstep index to its stage (spec §4's fixed
// superstep layout).
func stageForSuperstep(s int) stage {
	switch {
	case s < 2:
		return stageSetup
	case s == 2:
		return stageSeed
	case s%2 == 1:
		return stagePropose
	default:
		return stageMigrate
	}
}

// stageDispatch is the static dispatch table Design Notes §9 calls for,
// keyed by stage rather than resolved through a runtime type switch.
var stageDispatch = map[stage]func(co *Coordinator, ctx context.Context, superstep int, v bsp.VertexID, inbox []bsp.Message, send func(bsp.VertexID, interface{})) error{
	stageSeed:    seedStage,
	stagePropose: proposeStage,
	stageMigrate: migrateStage,
}

// Result is the summary spec §6 reports once a run halts: the final
// partition assignment plus the aggregate quality counters.
type Result struct {
	Partitions map[int64]int16

	Migrations    int
	Supersteps    int
	DirectedEdges int64
	CutEdges      int64
	LocalEdgesPct float64

	// MaxNormalizedLoadMilli, ImbalanceMilli and ScoreMilli are reported in
	// thousandths to match spec §6's fixed-precision output columns.
	MaxNormalizedLoadMilli int64
	ImbalanceMilli         int64
	ScoreMilli             int64
}

// Coordinator owns one partitioning run end to end: it builds VertexState
// and the laArena from a reconciled graphmodel.Graph, then drives them
// through bsp.Run's superstep loop with the stage dispatch table above.
type Coordinator struct {
	cfg   Config
	graph *graphmodel.Graph

	agg   *Aggregates
	arena *laArena
	conv  *ConvergenceDetector

	states map[int64]*VertexState

	totalCapacity int64
	runSeed       int64

	specMu        sync.Mutex
	specSuperstep int
	speculative   *speculativeLoad

	migMu        sync.Mutex
	migSuperstep int
	migLedger    *migrationLedger

	finishedSupersteps int
	lastState          float64
	lastLocal, lastCut int64

	log Logger
}

// CoordinatorOption configures optional Coordinator behavior not carried by
// Config, following the same functional-options convention as Config itself.
type CoordinatorOption func(*Coordinator)

// WithLogger attaches a Logger to the coordinator. Unset, or given a nil l,
// Coordinator logs nothing.
func WithLogger(l Logger) CoordinatorOption {
	return func(co *Coordinator) {
		if l != nil {
			co.log = l
		}
	}
}

// WithPriorPartitions seeds CurrentPartition for every vertex present in
// priors (spec §6 vertex-value input format), leaving every other vertex at
// -1 for a fresh Initializer draw at superstep 2. Vertex IDs with no
// corresponding graph vertex are ignored.
func WithPriorPartitions(priors map[int64]int16) CoordinatorOption {
	return func(co *Coordinator) {
		for id, p := range priors {
			if vs, ok := co.states[id]; ok {
				vs.CurrentPartition = p
				vs.NewPartition = p
			}
		}
	}
}

// NewCoordinator reconciles g in place, seeds every vertex's state and LA
// row, and returns a Coordinator ready for Run. cfg must already be valid
// (see NewConfig).
func NewCoordinator(g *graphmodel.Graph, cfg Config, runSeed int64, opts ...CoordinatorOption) (*Coordinator, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	graphmodel.Reconcile(g)

	k := cfg.K()
	ids := g.VertexIDs()
	arena := newLAArena(len(ids), k)
	agg := NewAggregates(k)
	agg.DirectedEdges = int64(g.TotalDirectedEdges())

	states := make(map[int64]*VertexState, len(ids))
	for row, id := range ids {
		degree := g.Degree(id)
		nc := NewNeighborCache(degree)
		for _, nb := range g.Neighbors(id) {
			nc.Seed(nb.ID, nb.Directed, nb.Weight)
		}
		states[id] = &VertexState{
			ID:               id,
			CurrentPartition: -1,
			NewPartition:     -1,
			NumDirectedEdges: int64(g.NumDirectedEdges(id)),
			Neighbors:        nc,
			rng:              seedRNG(runSeed, id),
			row:              row,
		}
	}

	co := &Coordinator{
		cfg:           cfg,
		graph:         g,
		agg:           agg,
		arena:         arena,
		conv:          NewConvergenceDetector(cfg.WindowSize, cfg.ConvergenceThreshold, cfg.EnforceConvergence),
		states:        states,
		runSeed:       runSeed,
		specSuperstep: -1,
		migSuperstep:  -1,
		totalCapacity: totalCapacityFor(agg.DirectedEdges, cfg),
		log:           noopLogger{},
	}
	for _, opt := range opts {
		opt(co)
	}
	co.log.Infof("coordinator ready: %d vertices, k=%d, totalCapacity=%d", len(ids), k, co.totalCapacity)
	return co, nil
}

// totalCapacityFor computes totalCapacity = round(directedEdges*(1+ε)/(k+Δ))
// (spec §3).
func totalCapacityFor(directedEdges int64, cfg Config) int64 {
	k := float64(cfg.K())
	return int64(math.Round(float64(directedEdges) * (1 + cfg.AdditionalCapacity) / k))
}

// vertexState looks up v's state. Safe for concurrent reads: the map is
// built once in NewCoordinator and never written to again.
func (co *Coordinator) vertexState(v bsp.VertexID) *VertexState {
	return co.states[v]
}

// speculativeForSuperstep returns the superstep's speculativeLoad, lazily
// seeding a fresh one from the persistent Load the first time any vertex
// activation asks for it during that superstep (every score-and-propose
// activation within a superstep shares one instance; the next superstep
// gets its own, reseeded from whatever the admission stage committed).
func (co *Coordinator) speculativeForSuperstep(s int) *speculativeLoad {
	co.specMu.Lock()
	defer co.specMu.Unlock()
	if co.specSuperstep != s {
		co.speculative = newSpeculativeLoad(co.agg.SnapshotLoad())
		co.specSuperstep = s
	}
	return co.speculative
}

// migrationForSuperstep returns the superstep's migrationLedger, lazily
// freezing a fresh one from the persistent Load the first time any vertex
// activation asks for it during that superstep — mirroring
// speculativeForSuperstep so every vertex's admission decision in a migrate
// superstep reads the same Load regardless of how many other vertices in
// the same superstep have already migrated.
func (co *Coordinator) migrationForSuperstep(s int) *migrationLedger {
	co.migMu.Lock()
	defer co.migMu.Unlock()
	if co.migSuperstep != s {
		co.migLedger = newMigrationLedger(co.agg.SnapshotLoad())
		co.migSuperstep = s
	}
	return co.migLedger
}

// compute is the bsp.Compute entry point: it looks up the stage for the
// current superstep and dispatches through stageDispatch, treating an
// unmapped stage (setup) as a no-op.
func (co *Coordinator) compute(ctx context.Context, superstep int, v bsp.VertexID, inbox []bsp.Message, send func(bsp.VertexID, interface{})) error {
	fn, ok := stageDispatch[stageForSuperstep(superstep)]
	if !ok {
		return nil
	}
	return fn(co, ctx, superstep, v, inbox, send)
}

// halt is consulted once per superstep, after its barrier. It finalizes and
// resets the per-superstep Aggregates fields for the stage that just ran,
// feeds the convergence detector, and reports whether the run should stop.
func (co *Coordinator) halt(s int) bool {
	switch stageForSuperstep(s) {
	case stagePropose:
		co.agg.mu.Lock()
		co.lastState = co.agg.State
		co.lastLocal = co.agg.LocalEdges
		co.lastCut = co.agg.CutEdges
		co.agg.mu.Unlock()
		co.agg.ResetProposeStage()
		co.conv.Observe(co.lastState)
		co.log.Debugf("superstep %d (propose): state=%.4f local=%d cut=%d", s, co.lastState, co.lastLocal, co.lastCut)
	case stageMigrate:
		co.migMu.Lock()
		ledger := co.migLedger
		co.migMu.Unlock()
		if ledger != nil {
			ledger.CommitTo(co.agg)
		}
		co.agg.ResetMigrateStage()
	}
	co.finishedSupersteps = s + 1

	if s >= co.cfg.MaxIterations-1 {
		co.log.Infof("halting at superstep %d: maxIterations reached", s)
		return true
	}
	if co.conv.Halt() {
		co.log.Infof("halting at superstep %d: convergence threshold met", s)
		return true
	}
	return false
}

// Run drives the full partitioning run to completion or to the first
// propagated vertex-compute error. maxIterations should be at least 3 so the
// Initializer/Rescaler superstep (2) always executes before the
// score-and-propose / admission alternation begins.
func (co *Coordinator) Run(ctx context.Context) (Result, error) {
	vertices := make([]bsp.VertexID, 0, len(co.states))
	for id := range co.states {
		vertices = append(vertices, id)
	}

	maxSuperstep := co.cfg.MaxIterations - 1
	if maxSuperstep < 2 {
		maxSuperstep = 2
	}

	err := bsp.Run(ctx, vertices, maxSuperstep, co.compute, co.halt)

	partitions := make(map[int64]int16, len(co.states))
	for id, vs := range co.states {
		partitions[id] = vs.CurrentPartition
	}

	total := co.lastLocal + co.lastCut
	localPct := 0.0
	if total > 0 {
		localPct = float64(co.lastLocal) / float64(total)
	}

	load := co.agg.SnapshotLoad()
	maxNorm, minNorm := 0.0, math.MaxFloat64
	for _, l := range load {
		norm := float64(l) / float64(co.totalCapacity)
		if norm > maxNorm {
			maxNorm = norm
		}
		if norm < minNorm {
			minNorm = norm
		}
	}
	if len(load) == 0 {
		minNorm = 0
	}

	result := Result{
		Partitions:             partitions,
		Migrations:             co.agg.Migrations,
		Supersteps:             co.finishedSupersteps,
		DirectedEdges:          co.agg.DirectedEdges,
		CutEdges:               co.lastCut,
		LocalEdgesPct:          localPct,
		MaxNormalizedLoadMilli: int64(math.Round(maxNorm * 1000)),
		ImbalanceMilli:         int64(math.Round((maxNorm - minNorm) * 1000)),
		ScoreMilli:             int64(math.Round(co.lastState * 1000)),
	}
	return result, err
}
