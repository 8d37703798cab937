package solver

// See: [wikipedia](https://en.wikipedia.org/wiki/A*_search_algorithm#Pseudocode)

import (
	"fmt"
	"math"
	"time"

	"k8s.io/klog/v2"
)

// PathSolver caches a traversal graph once and answers many shortest-path
// queries against it. It is fully synchronous and not safe for concurrent
// use: the generation counter and all per-node records are shared mutable
// state.
type PathSolver[N comparable, C any] struct {
	graph      Graph[N, C]
	nodes      map[N]*searchNode[N]
	generation uint64

	// lifetime counters, aggregated over all queries.
	totalQueries     uint64
	totalDuration    time.Duration
	totalTouched     uint64
	totalReprocessed uint64
	peakQueueSize    int
}

// NewPathSolver initializes a solver for the given client graph. The graph is
// consulted for neighbor enumeration during builds and for edge and heuristic
// costs during queries; it is never mutated.
func NewPathSolver[N comparable, C any](graph Graph[N, C]) *PathSolver[N, C] {
	return &PathSolver[N, C]{graph: graph}
}

// BuildAdjacencyGraph discards any previously cached graph and rebuilds it by
// breadth-first traversal from the seed set. Edge costs and heuristics are
// not evaluated here - they may depend on per-query context.
func (s *PathSolver[N, C]) BuildAdjacencyGraph(seeds ...N) {
	s.ClearAdjacencyGraph()
	s.nodes = make(map[N]*searchNode[N])
	discovered := make(map[N][]N)

	var queue []N
	for _, seed := range seeds {
		if _, ok := s.nodes[seed]; ok {
			continue
		}
		s.nodes[seed] = &searchNode[N]{id: seed, slot: invalidSlot}
		queue = append(queue, seed)
	}
	for len(queue) > 0 {
		id := queue[0]
		queue = queue[1:]
		neighbors := s.graph.Neighbors(id)
		discovered[id] = neighbors
		for _, neighbor := range neighbors {
			if _, ok := s.nodes[neighbor]; ok {
				continue
			}
			s.nodes[neighbor] = &searchNode[N]{id: neighbor, slot: invalidSlot}
			queue = append(queue, neighbor)
		}
	}

	// second pass: resolve neighbor ids to direct references, so queries
	// never consult the client's neighbor enumeration again.
	for id, node := range s.nodes {
		ids := discovered[id]
		node.neighbors = make([]*searchNode[N], len(ids))
		for i, neighbor := range ids {
			node.neighbors[i] = s.nodes[neighbor]
		}
	}
	klog.V(2).Infof("Built adjacency graph with %d nodes from %d seed(s).", len(s.nodes), len(seeds))
}

// ClearAdjacencyGraph drops the cached graph and severs the node-to-node
// references so the records become eligible for reclamation.
func (s *PathSolver[N, C]) ClearAdjacencyGraph() {
	for _, node := range s.nodes {
		node.neighbors = nil
		node.predecessor = nil
	}
	s.nodes = nil
}

// FindPathTo answers a single-destination query.
func (s *PathSolver[N, C]) FindPathTo(start N, destination N, ctx C) (PathResult[N], error) {
	return s.FindPath(start, []N{destination}, ctx)
}

// FindPath runs one A* query from start to the nearest of the given
// destinations. A query that connects to no destination is not an error; the
// result then carries no path and a cost of +Inf.
func (s *PathSolver[N, C]) FindPath(start N, destinations []N, ctx C) (PathResult[N], error) {
	began := time.Now()
	if s.nodes == nil {
		return PathResult[N]{}, ErrGraphNotBuilt
	}
	startNode, ok := s.nodes[start]
	if !ok {
		return PathResult[N]{}, fmt.Errorf("%w: start %v", ErrNodeNotInGraph, start)
	}
	if len(destinations) == 0 {
		return PathResult[N]{}, ErrEmptyDestinationSet
	}
	targets := make([]*searchNode[N], len(destinations))
	for i, destination := range destinations {
		node, ok := s.nodes[destination]
		if !ok {
			return PathResult[N]{}, fmt.Errorf("%w: destination %v", ErrNodeNotInGraph, destination)
		}
		targets[i] = node
	}

	// a new generation implicitly invalidates all per-node state left over
	// from earlier queries.
	s.generation++
	generation := s.generation
	for _, target := range targets {
		target.destinationGeneration = generation
	}

	open := NewIndexedQueue(func(a, b *searchNode[N]) bool {
		return a.estimatedTotal() < b.estimatedTotal()
	})
	startNode.visitedGeneration = generation
	startNode.costFromStart = 0
	startNode.estimatedRemaining = s.lowestEstimate(start, destinations, ctx)
	startNode.predecessor = nil
	startNode.open = true
	open.Enqueue(startNode)

	touched := 1
	reprocessed := 0
	peak := 1
	var arrival *searchNode[N]

	for open.Len() > 0 {
		current, err := open.Dequeue()
		if err != nil {
			return PathResult[N]{}, err
		}
		current.open = false
		if math.IsInf(current.costFromStart, 1) {
			// only infinite-cost entries remain; with non-negative costs
			// nothing reachable is left.
			break
		}
		if current.destinationGeneration == generation {
			arrival = current
			break
		}
		for _, neighbor := range current.neighbors {
			candidate := current.costFromStart + s.graph.Cost(current.id, neighbor.id, ctx)
			if neighbor.visitedGeneration != generation {
				neighbor.visitedGeneration = generation
				neighbor.costFromStart = candidate
				neighbor.estimatedRemaining = s.lowestEstimate(neighbor.id, destinations, ctx)
				neighbor.predecessor = current
				neighbor.open = true
				open.Enqueue(neighbor)
				touched++
			} else if candidate < neighbor.costFromStart {
				neighbor.costFromStart = candidate
				neighbor.predecessor = current
				if neighbor.open {
					if err := open.AdjustPriority(neighbor); err != nil {
						return PathResult[N]{}, err
					}
				} else {
					// a closed node turned out cheaper - the heuristic
					// oversold the remaining cost somewhere.
					neighbor.open = true
					open.Enqueue(neighbor)
					reprocessed++
				}
			}
			if open.Len() > peak {
				peak = open.Len()
			}
		}
	}

	result := PathResult[N]{
		Cost:             math.Inf(1),
		NodesTouched:     touched,
		NodesReprocessed: reprocessed,
		PeakQueueSize:    peak,
	}
	if arrival != nil {
		result.Cost = arrival.costFromStart
		result.Path = tracePath(arrival, startNode)
	} else {
		klog.Warningf("Could not find path from %v to %v", start, destinations)
	}
	result.Duration = time.Since(began)

	s.totalQueries++
	s.totalDuration += result.Duration
	s.totalTouched += uint64(touched)
	s.totalReprocessed += uint64(reprocessed)
	if peak > s.peakQueueSize {
		s.peakQueueSize = peak
	}
	klog.V(2).Infof("Query %d touched %d node(s), reprocessed %d, cost %f.", generation, touched, reprocessed, result.Cost)
	return result, nil
}

// lowestEstimate returns the smallest heuristic estimate from a node to any
// of the requested destinations.
func (s *PathSolver[N, C]) lowestEstimate(from N, destinations []N, ctx C) float64 {
	best := math.Inf(1)
	for _, destination := range destinations {
		if estimate := s.graph.HeuristicCost(from, destination, ctx); estimate < best {
			best = estimate
		}
	}
	return best
}

// tracePath walks the predecessor links from the arrival record back to the
// start and reverses the sequence. The start node itself is not included;
// arrival == start yields an empty path.
func tracePath[N comparable](arrival, start *searchNode[N]) []N {
	path := make([]N, 0)
	for node := arrival; node != start; node = node.predecessor {
		path = append(path, node.id)
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path
}

// GraphSize returns the number of nodes in the cached adjacency graph.
func (s *PathSolver[N, C]) GraphSize() int {
	return len(s.nodes)
}

// TotalQueries returns the number of queries answered over the solver's lifetime.
func (s *PathSolver[N, C]) TotalQueries() uint64 {
	return s.totalQueries
}

// TotalDuration returns the accumulated time spent answering queries.
func (s *PathSolver[N, C]) TotalDuration() time.Duration {
	return s.totalDuration
}

// TotalNodesTouched returns the number of node initializations over all queries.
func (s *PathSolver[N, C]) TotalNodesTouched() uint64 {
	return s.totalTouched
}

// TotalNodesReprocessed returns how often a closed node had to be reopened.
func (s *PathSolver[N, C]) TotalNodesReprocessed() uint64 {
	return s.totalReprocessed
}

// PeakQueueSize returns the largest open set seen over all queries.
func (s *PathSolver[N, C]) PeakQueueSize() int {
	return s.peakQueueSize
}

// Summary returns a human-readable digest of the lifetime counters.
func (s *PathSolver[N, C]) Summary() string {
	return fmt.Sprintf(
		"solved %d queries in %v - %d node(s) touched, %d reprocessed, peak open set %d",
		s.totalQueries, s.totalDuration, s.totalTouched, s.totalReprocessed, s.peakQueueSize)
}
