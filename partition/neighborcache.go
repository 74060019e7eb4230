package partition

import lru "github.com/hashicorp/golang-lru/v2"

// neighborEntry is the cached state of one incident edge, mirroring
// graphmodel.Neighbor but mutable only through NeighborCache.Notify (Design
// Notes §9's "explicit neighbor label cache" abstraction — never mutate an
// edge value reached via range iteration).
type neighborEntry struct {
	Directed  bool
	Weight    int8
	Partition int16
}

// NeighborCache is the write-once-per-migration cache of a vertex's
// neighbor labels (spec §4.2 step 1 / Design Notes §9). It is backed by
// github.com/hashicorp/golang-lru/v2, sized exactly to the vertex's degree
// so no entry is ever actually evicted — every incident neighbor fits — but
// all reads/writes still go through the cache's synchronized Get/Add rather
// than a bare map, giving score-and-propose a single seam to instrument or
// bound should a future high-degree vertex need one.
type NeighborCache struct {
	cache *lru.Cache[int64, neighborEntry]
}

// NewNeighborCache builds a cache sized to degree (the vertex's incident
// edge count). degree<=0 is treated as 1 to satisfy the LRU constructor.
func NewNeighborCache(degree int) *NeighborCache {
	size := degree
	if size <= 0 {
		size = 1
	}
	c, _ := lru.New[int64, neighborEntry](size) // size>0 here, error impossible
	return &NeighborCache{cache: c}
}

// Seed registers an incident edge's initial state (called once per neighbor
// when the vertex is initialized from graphmodel.Graph.Neighbors).
func (n *NeighborCache) Seed(neighborID int64, directed bool, weight int8) {
	n.cache.Add(neighborID, neighborEntry{Directed: directed, Weight: weight, Partition: -1})
}

// Notify records that neighborID's current label is partition. No-op if
// neighborID was never seeded (not actually incident to this vertex).
func (n *NeighborCache) Notify(neighborID int64, partition int16) {
	e, ok := n.cache.Get(neighborID)
	if !ok {
		return
	}
	e.Partition = partition
	n.cache.Add(neighborID, e)
}

// Entries returns a snapshot of every cached neighbor's (ID, entry).
func (n *NeighborCache) Entries() map[int64]neighborEntry {
	out := make(map[int64]neighborEntry, n.cache.Len())
	for _, id := range n.cache.Keys() {
		if e, ok := n.cache.Peek(id); ok {
			out[id] = e
		}
	}
	return out
}

// Len returns the number of cached neighbors (the vertex's degree).
func (n *NeighborCache) Len() int {
	return n.cache.Len()
}
