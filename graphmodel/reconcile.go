package graphmodel

// Reconcile implements the superstep-1 edge reconciler (spec §4.7): it
// symmetrizes the adjacency built from raw directed input so that the
// engine can treat the graph as undirected for partitioning.
//
// Conceptually each vertex u "sends its ID" to every neighbor it already
// holds (superstep 0), and each recipient v "reconciles" (superstep 1): if v
// already held its own edge back to u — meaning the raw input listed both
// u->v and v->u as separate edges — both copies are already directed-present
// and nothing changes. Otherwise v gets a new reverse entry toward u, marked
// directed-absent (Directed=false) and carrying DefaultWeight: the entry is
// synthetic, not observed input, so it does not inherit the forward edge's
// weight.
//
// Reconcile is idempotent: running it again on an already-reciprocated graph
// touches nothing, since every neighbor already has a matching back-entry.
// Complexity: O(V + E).
func Reconcile(g *Graph) {
	g.muAdj.Lock()
	defer g.muAdj.Unlock()

	// Snapshot the pre-reconciliation edges so additions made while
	// reconciling one vertex don't get re-visited as if they were raw input.
	type pending struct {
		from, to int64
	}
	var toAdd []pending

	for from, rec := range g.adj {
		for to, n := range rec.neighbors {
			if !n.Directed {
				continue // a reconciliation-added entry, not raw input
			}
			back, ok := g.adj[to]
			if ok {
				if _, exists := back.neighbors[from]; exists {
					continue // already reciprocated (possibly by earlier raw input)
				}
			}
			toAdd = append(toAdd, pending{from: to, to: from})
		}
	}

	for _, p := range toAdd {
		rec := g.ensureRecord(p.from)
		if _, exists := rec.neighbors[p.to]; exists {
			continue
		}
		rec.neighbors[p.to] = &Neighbor{ID: p.to, Weight: DefaultWeight, Directed: false, Partition: -1}
	}
}
