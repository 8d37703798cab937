package main

import (
	"container/heap"
	"flag"
	"fmt"
	"math/rand"
	"os"
	"sort"

	"github.com/gridnav/pathsolver/pkg/pqueue"
	"github.com/gridnav/pathsolver/pkg/solver"
	"github.com/gridnav/pathsolver/pkg/worlds/grid"

	"gonum.org/v1/gonum/stat"
	"gopkg.in/yaml.v3"
	"k8s.io/klog/v2"
)

var scenarios string

// Scenario describes one benchmark workload.
type Scenario struct {
	Name            string  `yaml:"name"`
	Width           int     `yaml:"width"`
	Height          int     `yaml:"height"`
	ObstacleRatio   float64 `yaml:"obstacle_ratio"`
	Queries         int     `yaml:"queries"`
	HeuristicWeight float64 `yaml:"heuristic_weight"`
	Seed            int64   `yaml:"seed"`
}

// scenarioFile is the on-disk layout of a scenario bundle.
type scenarioFile struct {
	Scenarios []Scenario `yaml:"scenarios"`
}

// report aggregates the latencies of one scenario run.
type report struct {
	scenario    Scenario
	meanSeconds float64
	stdSeconds  float64
	p50Seconds  float64
	p99Seconds  float64
	unreachable int
	reprocessed uint64
}

// loadScenarios reads and validates a YAML scenario bundle.
func loadScenarios(filename string) ([]Scenario, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("unable to read scenario file: %s", err)
	}
	var file scenarioFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("unable to parse scenario file: %s", err)
	}
	if len(file.Scenarios) == 0 {
		return nil, fmt.Errorf("scenario file holds no scenarios")
	}
	for _, scenario := range file.Scenarios {
		if scenario.Width <= 0 || scenario.Height <= 0 || scenario.Queries <= 0 {
			return nil, fmt.Errorf("invalid scenario %q", scenario.Name)
		}
		if scenario.ObstacleRatio < 0.0 || scenario.ObstacleRatio >= 1.0 {
			return nil, fmt.Errorf("invalid obstacle ratio in scenario %q", scenario.Name)
		}
	}
	return file.Scenarios, nil
}

// run executes one scenario and summarizes its latencies.
func run(scenario Scenario) report {
	rng := rand.New(rand.NewSource(scenario.Seed))
	board := grid.NewBoard(scenario.Width, scenario.Height)
	for y := 0; y < scenario.Height; y++ {
		for x := 0; x < scenario.Width; x++ {
			if x == 0 && y == 0 {
				continue
			}
			if rng.Float64() < scenario.ObstacleRatio {
				board.Block(grid.Cell{X: x, Y: y})
			}
		}
	}

	s := solver.NewPathSolver[grid.Cell, grid.Context](board)
	s.BuildAdjacencyGraph(grid.Cell{X: 0, Y: 0})

	ctx := grid.Context{HeuristicWeight: scenario.HeuristicWeight}
	latencies := make([]float64, 0, scenario.Queries)
	unreachable := 0
	for i := 0; i < scenario.Queries; i++ {
		start := randomOpenCell(board, rng)
		goal := randomOpenCell(board, rng)
		result, err := s.FindPathTo(start, goal, ctx)
		if err != nil {
			klog.Fatalf("Error solving in scenario %q: %v", scenario.Name, err)
		}
		latencies = append(latencies, result.Duration.Seconds())
		if !result.Found() {
			unreachable++
		}
	}

	sort.Float64s(latencies)
	return report{
		scenario:    scenario,
		meanSeconds: stat.Mean(latencies, nil),
		stdSeconds:  stat.StdDev(latencies, nil),
		p50Seconds:  stat.Quantile(0.5, stat.Empirical, latencies, nil),
		p99Seconds:  stat.Quantile(0.99, stat.Empirical, latencies, nil),
		unreachable: unreachable,
		reprocessed: s.TotalNodesReprocessed(),
	}
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

func main() {
	klog.InitFlags(nil)
	flag.Parse()

	all, err := loadScenarios(scenarios)
	if err != nil {
		klog.Fatalf("Error loading scenarios: %v", err)
	}
	klog.Infof("Running %d scenario(s)...", len(all))

	// rank reports by mean latency, fastest first.
	ranked := make(pqueue.PriorityQueue[report], 0)
	heap.Init(&ranked)
	for _, scenario := range all {
		result := run(scenario)
		heap.Push(&ranked, pqueue.NewItem(result, result.meanSeconds))
	}

	fmt.Printf("%-24s %12s %12s %12s %12s %12s %12s\n",
		"scenario", "mean", "stddev", "p50", "p99", "unreachable", "reprocessed")
	for ranked.Len() > 0 {
		r := heap.Pop(&ranked).(*pqueue.Item[report]).Value()
		fmt.Printf("%-24s %12.6f %12.6f %12.6f %12.6f %12d %12d\n",
			r.scenario.Name, r.meanSeconds, r.stdSeconds, r.p50Seconds, r.p99Seconds, r.unreachable, r.reprocessed)
	}
}

func init() {
	flag.StringVar(&scenarios, "scenarios", "scenarios.yaml", "Path to a YAML scenario file.")
}
