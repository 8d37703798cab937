package solver

// searchNode is the per-node record of the cached adjacency graph. One record
// exists per reachable node; it is created at build time and mutated in place
// across queries. The transient fields (costs, predecessor, open flag) are
// only meaningful while visitedGeneration matches the solver's current query
// generation - stale records are never cleared, just outdated.
type searchNode[N comparable] struct {
	id        N
	neighbors []*searchNode[N]

	costFromStart      float64
	estimatedRemaining float64
	predecessor        *searchNode[N]
	open               bool

	destinationGeneration uint64
	visitedGeneration     uint64

	slot int
}

// QueueSlot returns the record's current heap position.
func (n *searchNode[N]) QueueSlot() int {
	return n.slot
}

// SetQueueSlot records the heap position; maintained by the queue only.
func (n *searchNode[N]) SetQueueSlot(slot int) {
	n.slot = slot
}

// estimatedTotal is the ordering key for the open set.
func (n *searchNode[N]) estimatedTotal() float64 {
	return n.costFromStart + n.estimatedRemaining
}
