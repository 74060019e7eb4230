// Package partkit partitions a large directed graph into k roughly
// capacity-balanced pieces while maximizing edge locality.
//
// The engine runs label propagation augmented with a per-vertex learning
// automaton over a bulk-synchronous vertex program: each vertex alternates
// between proposing a candidate partition from its neighborhood's label
// frequency and a capacity-aware penalty term, and having that proposal
// admitted or rejected against the partitions' remaining headroom.
//
// Everything under this module is organized into subpackages:
//
//	graphmodel/ — the directed adjacency partkit operates on
//	automaton/  — the learning-automaton probability simplex and update rule
//	bsp/        — the minimal bulk-synchronous superstep runner
//	partition/  — Coordinator, Config, and the score/admission/rescale stages
//	ioformat/   — the text input/output formats
//	cmd/partkit — a CLI driver over those packages
//
// go get github.com/arborix/partkit/partition
package partkit
