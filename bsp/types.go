// Package bsp is the boundary this module draws around the bulk-synchronous
// graph execution framework that spec.md §1 treats as an external
// collaborator: "vertex/edge iteration, message delivery, aggregator
// reduction, and superstep barriers" are described only through the
// interfaces they expose here. Run is the minimal concurrent
// implementation of those interfaces this module needs to actually execute
// partition.Coordinator end-to-end in tests and the CLI driver — it is not a
// general-purpose substitute for a production BSP framework.
package bsp

import "context"

// VertexID identifies a vertex across the BSP interfaces.
type VertexID = int64

// Message is an opaque payload delivered to a vertex at the start of its
// next activation. Concrete message types (partition.Message) are carried as
// the Body.
type Message struct {
	To   VertexID
	Body interface{}
}

// Compute is the per-vertex activation callback Run invokes once per
// superstep for every vertex it was given, whether or not the vertex has
// inbound messages. inbox holds every message addressed to v from the previous
// superstep, in unspecified order — spec §5 requires implementations not
// depend on neighbor arrival order. send enqueues a message for delivery at
// the start of the next superstep. Returning an error aborts the whole run.
type Compute func(ctx context.Context, superstep int, v VertexID, inbox []Message, send func(to VertexID, body interface{})) error

// Aggregator is a commutative-associative reducer: values written during
// superstep s are visible to vertex code only from superstep s+1 onward
// (spec §5's "write-accumulate during a superstep, read-only during the
// next").
type Aggregator interface {
	// Reset clears the aggregator for a new superstep's writes.
	Reset()
}
