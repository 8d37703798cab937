package main

import (
	"flag"
	"fmt"
	"io"
	"math/rand"
	"net/http"
	"os"
	"time"

	"github.com/gridnav/pathsolver/pkg/common"
	"github.com/gridnav/pathsolver/pkg/metrics"
	"github.com/gridnav/pathsolver/pkg/solver"
	"github.com/gridnav/pathsolver/pkg/worlds/grid"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"k8s.io/klog/v2"
)

var config string

func main() {
	klog.InitFlags(nil)
	klog.Info("Hello from your friendly shortest-path demo...")

	// config stuff.
	flag.Parse()
	cfg, err := common.ParseConfig(config)
	if err != nil {
		klog.Fatalf("Error loading demo config: %v", err)
	}

	// set logFile
	if cfg.Generic.LogFile != "" {
		err := flag.Set("logtostderr", "false")
		if err != nil {
			klog.Fatalf("Error setting flag logtostderr: %v", err)
		}
		err = flag.Set("alsologtostderr", "true")
		if err != nil {
			klog.Fatalf("Error setting flag alsologtostderr: %v", err)
		}

		logFile, err := os.OpenFile(cfg.Generic.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0600)
		if err != nil {
			klog.Fatalf("Failed to open log file: %v", err)
		}
		defer logFile.Close()

		multiWriter := io.MultiWriter(os.Stdout, logFile)
		klog.SetOutput(multiWriter)
		defer func() {
			klog.Flush()
		}()
		klog.Infof("Successfuly added to klog output the log file: %s", cfg.Generic.LogFile)
	}

	// expose the prometheus metrics.
	if cfg.Generic.MetricsEndpoint != "" {
		go func() {
			http.Handle("/metrics", promhttp.Handler())
			err := http.ListenAndServe(cfg.Generic.MetricsEndpoint, nil)
			if err != nil {
				klog.Errorf("Error serving metrics: %v", err)
			}
		}()
		klog.Infof("Serving metrics on %s.", cfg.Generic.MetricsEndpoint)
	}

	// the world and the solver on top of it.
	rng := rand.New(rand.NewSource(cfg.World.Seed))
	board := newDemoBoard(cfg.World, rng)
	s := solver.NewPathSolver[grid.Cell, grid.Context](board)
	s.BuildAdjacencyGraph(grid.Cell{X: 0, Y: 0})
	klog.Infof("Cached %d of %d cells.", s.GraphSize(), cfg.World.Width*cfg.World.Height)

	// recently answered queries are served from a TTL cache.
	cache, done := common.NewCache[float64](cfg.Generic.ResultCacheTTL, time.Duration(cfg.Generic.ResultCacheTick))
	defer close(done)

	ctx := grid.Context{HeuristicWeight: cfg.Queries.HeuristicWeight}
	for i := 0; i < cfg.Queries.Count; i++ {
		start := randomOpenCell(board, rng)
		goal := randomOpenCell(board, rng)
		key := fmt.Sprintf("%v->%v", start, goal)
		if cost, ok := cache.Get(key); ok {
			klog.V(2).Infof("Cache hit for %s (cost %f).", key, cost)
			continue
		}
		result, err := s.FindPathTo(start, goal, ctx)
		if err != nil {
			klog.Fatalf("Error solving %s: %v", key, err)
		}
		observe(result)
		if result.Found() {
			cache.Put(key, result.Cost)
		}
	}

	klog.Info(s.Summary())
}

// newDemoBoard creates a board with randomly blocked cells.
func newDemoBoard(cfg common.WorldConfig, rng *rand.Rand) *grid.Board {
	board := grid.NewBoard(cfg.Width, cfg.Height)
	for y := 0; y < cfg.Height; y++ {
		for x := 0; x < cfg.Width; x++ {
			if x == 0 && y == 0 {
				// keep the build seed open.
				continue
			}
			if rng.Float64() < cfg.ObstacleRatio {
				board.Block(grid.Cell{X: x, Y: y})
			}
		}
	}
	return board
}

// randomOpenCell picks an unblocked cell on the board.
func randomOpenCell(board *grid.Board, rng *rand.Rand) grid.Cell {
	for {
		cell := grid.Cell{X: rng.Intn(board.Width()), Y: rng.Intn(board.Height())}
		if !board.Blocked(cell) {
			return cell
		}
	}
}

// observe records one query result in the prometheus instruments.
func observe(result solver.PathResult[grid.Cell]) {
	outcome := "found"
	if !result.Found() {
		outcome = "unreachable"
	}
	metrics.QueriesTotal.WithLabelValues("grid", outcome).Inc()
	metrics.QueryDuration.WithLabelValues("grid").Observe(result.Duration.Seconds())
	metrics.NodesTouched.WithLabelValues("grid").Add(float64(result.NodesTouched))
	metrics.NodesReprocessed.WithLabelValues("grid").Add(float64(result.NodesReprocessed))
	metrics.OpenSetPeak.WithLabelValues("grid").Set(float64(result.PeakQueueSize))
}

func init() {
	flag.StringVar(&config, "config", "defaults.json", "Path to configuration file.")
}
