// Package partition implements edge-balanced k-way graph partitioning by
// label propagation augmented with per-vertex learning automata.
//
// What: Coordinator takes a reconciled graphmodel.Graph and a Config and
// drives every vertex through a fixed sequence of superstep stages —
// reconciliation, initialization or rescaling, then an alternating
// score-and-propose / admission-and-migration loop — until either
// Config.MaxIterations supersteps have run or (when Config.EnforceConvergence
// is set) the convergence detector's relative-improvement rule fires.
//
// Why: plain label propagation converges on locality but ignores partition
// capacity; a single global load counter introduces contention and stale
// reads across concurrent vertex activations. This package's answer is two
// teacher-shaped pieces: a per-superstep speculativeLoad that lets
// score-and-propose activations see each other's tentative moves without a
// shared global counter, and a per-vertex learning automaton (package
// automaton) that adapts each vertex's own migration propensity from the
// reward/penalty signal its neighbors broadcast.
//
// Determinism: every vertex owns a private *rand.Rand stream seeded from
// (run seed, vertex ID) via a SplitMix64-style mix (state.go), so each
// vertex's sequence of random draws is the same across runs with the same
// seed. The scores a vertex computes are not independent of scheduling:
// score-and-propose activations in one superstep share the speculativeLoad,
// which activations that ran earlier in that superstep may already have
// shifted, so bsp.Run's goroutine scheduling order can change the argmax a
// vertex broadcasts and, through the learning automata, later proposals.
//
// Usage:
//
//	g := graphmodel.NewGraph()
//	// ... load edges ...
//	cfg, err := partition.NewConfig(partition.WithNumberOfPartitions(16))
//	co, err := partition.NewCoordinator(g, cfg, seed)
//	result, err := co.Run(context.Background())
package partition
