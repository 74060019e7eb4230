package graphmodel

// AddVertex registers v in the graph if it is not already present.
// Idempotent. Complexity: O(1) amortized.
func (g *Graph) AddVertex(v int64) {
	g.muVert.Lock()
	defer g.muVert.Unlock()
	if _, ok := g.vertices[v]; ok {
		return
	}
	g.vertices[v] = struct{}{}

	g.muAdj.Lock()
	g.ensureRecord(v)
	g.muAdj.Unlock()
}

// HasVertex reports whether v has been registered.
func (g *Graph) HasVertex(v int64) bool {
	g.muVert.RLock()
	defer g.muVert.RUnlock()
	_, ok := g.vertices[v]
	return ok
}

// NumVertices returns the number of registered vertices.
func (g *Graph) NumVertices() int {
	g.muVert.RLock()
	defer g.muVert.RUnlock()
	return len(g.vertices)
}

// ensureRecord lazily creates the adjacency row for v. Caller must hold muAdj.
func (g *Graph) ensureRecord(v int64) *vertexRecord {
	rec, ok := g.adj[v]
	if !ok {
		rec = &vertexRecord{neighbors: make(map[int64]*Neighbor)}
		g.adj[v] = rec
	}
	return rec
}

// AddEdge records one directed-present edge from -> to with the given
// weight, as read from the raw input. It touches only from's adjacency row
// — the reciprocal entry on to's side (needed to treat the adjacency as
// undirected for partitioning) is filled in by Reconcile, not here. weight<=0
// uses DefaultWeight (spec §6: edgeWeight default 1). Self-loops are
// rejected: they carry no locality signal since a vertex always shares its
// own label. Complexity: O(1) amortized.
func (g *Graph) AddEdge(from, to int64, weight int8) error {
	if from == to {
		return ErrSelfLoop
	}
	if weight <= 0 {
		weight = DefaultWeight
	}

	g.AddVertex(from)
	g.AddVertex(to)

	g.muAdj.Lock()
	defer g.muAdj.Unlock()

	fr := g.ensureRecord(from)
	if n, ok := fr.neighbors[to]; ok {
		n.Weight = weight
		n.Directed = true
	} else {
		fr.neighbors[to] = &Neighbor{ID: to, Weight: weight, Directed: true, Partition: -1}
		g.directedEdges++
	}

	return nil
}

// Neighbors returns a snapshot slice of v's incident edges. The returned
// Neighbor values are copies; mutating them has no effect on the graph —
// use Notify to record a migrated label.
func (g *Graph) Neighbors(v int64) []Neighbor {
	g.muAdj.RLock()
	defer g.muAdj.RUnlock()

	rec, ok := g.adj[v]
	if !ok {
		return nil
	}
	out := make([]Neighbor, 0, len(rec.neighbors))
	for _, n := range rec.neighbors {
		out = append(out, *n)
	}
	return out
}

// Degree returns the number of incident edges (directed-present or not).
func (g *Graph) Degree(v int64) int {
	g.muAdj.RLock()
	defer g.muAdj.RUnlock()
	rec, ok := g.adj[v]
	if !ok {
		return 0
	}
	return len(rec.neighbors)
}

// NumDirectedEdges returns the count of incident edges on v that were
// directed-present (present in the raw input), used by the coordinator to
// seed VertexState.NumDirectedEdges.
func (g *Graph) NumDirectedEdges(v int64) int {
	g.muAdj.RLock()
	defer g.muAdj.RUnlock()
	rec, ok := g.adj[v]
	if !ok {
		return 0
	}
	n := 0
	for _, nb := range rec.neighbors {
		if nb.Directed {
			n++
		}
	}
	return n
}

// TotalDirectedEdges returns the persistent directedEdges aggregator
// (spec §3: Σ load[i] = total directed-present edges).
func (g *Graph) TotalDirectedEdges() int {
	g.muAdj.RLock()
	defer g.muAdj.RUnlock()
	return g.directedEdges
}

// VertexIDs returns a snapshot of all registered vertex IDs, unordered.
func (g *Graph) VertexIDs() []int64 {
	g.muVert.RLock()
	defer g.muVert.RUnlock()
	out := make([]int64, 0, len(g.vertices))
	for id := range g.vertices {
		out = append(out, id)
	}
	return out
}

// Notify records that neighbor's current label is partition, updating the
// cached edge.partition field on v's side only (spec §3: "Edge state's
// partition field is mutated only when a neighbor migrates"). No-op if v
// has no edge to neighbor.
func (g *Graph) Notify(v, neighbor int64, partition int16) {
	g.muAdj.Lock()
	defer g.muAdj.Unlock()
	rec, ok := g.adj[v]
	if !ok {
		return
	}
	if n, ok := rec.neighbors[neighbor]; ok {
		n.Partition = partition
	}
}
