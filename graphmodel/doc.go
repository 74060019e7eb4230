// Package graphmodel is the graph data model consumed by the partition
// engine: a directed multigraph with integer vertex IDs, per-edge weights,
// and a directed-present flag distinguishing raw-input edges from the
// reciprocal edges added to symmetrize the adjacency.
//
// What
//
//   - Graph: vertex set + per-vertex neighbor adjacency, safe for concurrent
//     use via split vertex/adjacency locks.
//   - Reconcile: the superstep-1 edge reconciler (spec §4.7) that fills in
//     missing reverse edges so the graph can be treated as undirected.
//   - EdgeValue: the 3-byte persisted edge payload (partition || weight).
//
// Why
//
//   - Partitioning needs a symmetric adjacency for locality scoring, but the
//     input is a directed edge list; Reconcile bridges the two without
//     losing which edges were actually present in the input (needed for the
//     load/locality accounting in partition.VertexState).
//
// Determinism
//
//	Neighbors returns a snapshot in map-iteration order; callers that need a
//	stable order (golden tests) should sort the result by ID.
package graphmodel
