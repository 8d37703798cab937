// Package metrics defines the Prometheus instruments published by the demo
// and benchmark drivers. 'promauto' registers them on the default registry,
// so importing this package is all the wiring a binary needs before serving
// promhttp.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// QueriesTotal counts answered queries, labeled by world and outcome
	// ("found" or "unreachable").
	QueriesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "pathsolver_queries_total",
			Help: "Total number of path queries answered",
		},
		[]string{"world", "outcome"},
	)

	// QueryDuration measures per-query latency. Buckets cover trivial
	// lookups up to large-board searches.
	QueryDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "pathsolver_query_duration_seconds",
			Help:    "Duration of path queries in seconds",
			Buckets: []float64{0.00001, 0.00005, 0.0001, 0.0005, 0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1},
		},
		[]string{"world"},
	)

	// NodesTouched counts per-query node initializations.
	NodesTouched = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "pathsolver_nodes_touched_total",
			Help: "Total number of search nodes initialized",
		},
		[]string{"world"},
	)

	// NodesReprocessed counts closed nodes that had to be reopened.
	NodesReprocessed = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "pathsolver_nodes_reprocessed_total",
			Help: "Total number of closed search nodes that were reopened",
		},
		[]string{"world"},
	)

	// OpenSetPeak tracks the largest open set seen so far.
	OpenSetPeak = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "pathsolver_open_set_peak",
			Help: "Largest priority queue size observed",
		},
		[]string{"world"},
	)
)
