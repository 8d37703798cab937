package solver

import "errors"

// Errors reported by the solver and its queue. Callers match them with
// errors.Is; the wrapped messages carry the offending node or slot.
var (
	// ErrGraphNotBuilt is returned when a query arrives before BuildAdjacencyGraph.
	ErrGraphNotBuilt = errors.New("adjacency graph not built")
	// ErrNodeNotInGraph is returned when a start or destination node is not part of the cached graph.
	ErrNodeNotInGraph = errors.New("node not in adjacency graph")
	// ErrEmptyDestinationSet is returned when a query names no destinations.
	ErrEmptyDestinationSet = errors.New("empty destination set")
	// ErrEmptyQueue is returned when dequeueing from an empty queue.
	ErrEmptyQueue = errors.New("queue is empty")
	// ErrInvalidQueuePosition is returned when an item's recorded slot does not match the queue.
	ErrInvalidQueuePosition = errors.New("invalid queue position")
)
