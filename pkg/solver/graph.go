package solver

import "time"

// Graph is the capability the embedding application supplies to describe its
// problem space. N identifies a location and only needs equality and stable
// hashing; C is an arbitrary per-query context value handed through to the
// cost callbacks unchanged.
type Graph[N comparable, C any] interface {
	// Neighbors returns all nodes reachable from node in exactly one step.
	// Only consulted while the adjacency graph is being built.
	Neighbors(node N) []N
	// Cost returns the non-negative cost of stepping from one node to a
	// direct neighbor. May return +Inf to forbid the step for this query.
	Cost(from N, to N, ctx C) float64
	// HeuristicCost estimates the total cost between two possibly
	// non-adjacent nodes. It should never overestimate the true cost if the
	// solver is to return minimal paths.
	HeuristicCost(from N, to N, ctx C) float64
}

// PathResult holds the outcome of a single query. The path runs from the
// first step after the start node through the chosen destination; on failure
// it is empty and Cost is +Inf.
type PathResult[N comparable] struct {
	Path             []N
	Cost             float64
	NodesTouched     int
	NodesReprocessed int
	PeakQueueSize    int
	Duration         time.Duration
}

// Found reports whether the query connected the start to a destination. A
// start-equals-destination query counts as found with an empty, non-nil path.
func (r PathResult[N]) Found() bool {
	return r.Path != nil
}
