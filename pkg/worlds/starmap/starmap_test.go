package starmap

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/gridnav/pathsolver/pkg/solver"
)

// newTestChart returns a small chart with a dogleg route between sol and rigel.
func newTestChart() *Chart {
	chart := NewChart()
	chart.AddStar("sol", Position{X: 0.0, Y: 0.0, Z: 0.0})
	chart.AddStar("vega", Position{X: 3.0, Y: 4.0, Z: 0.0})
	chart.AddStar("rigel", Position{X: 6.0, Y: 8.0, Z: 0.0})
	chart.AddStar("deneb", Position{X: 20.0, Y: 0.0, Z: 0.0})
	chart.AddLane("sol", "vega")
	chart.AddLane("vega", "rigel")
	chart.AddLane("sol", "deneb")
	return chart
}

func TestAddLane(t *testing.T) {
	chart := newTestChart()
	assert.Contains(t, chart.Neighbors("sol"), StarID("vega"))
	assert.Contains(t, chart.Neighbors("vega"), StarID("sol"))
	assert.Empty(t, chart.Neighbors("unknown"))

	// lanes to uncharted stars are dropped.
	chart.AddLane("sol", "uncharted")
	assert.Len(t, chart.Neighbors("sol"), 2)
}

func TestCost(t *testing.T) {
	chart := newTestChart()
	assert.Equal(t, 5.0, chart.Cost("sol", "vega", Context{}))
	assert.Equal(t, 10.0, chart.Cost("sol", "vega", Context{FuelRate: 2.0}))
	assert.True(t, math.IsInf(chart.Cost("sol", "uncharted", Context{}), 1))
}

func TestHeuristicCost(t *testing.T) {
	chart := newTestChart()
	// straight line sol->rigel; the lanes via vega cover the same distance.
	assert.Equal(t, 10.0, chart.HeuristicCost("sol", "rigel", Context{}))
}

func TestSolverIntegration(t *testing.T) {
	chart := newTestChart()
	s := solver.NewPathSolver[StarID, Context](chart)
	s.BuildAdjacencyGraph("sol")
	assert.Equal(t, 4, s.GraphSize())

	result, err := s.FindPathTo("sol", "rigel", Context{})
	assert.NoError(t, err)
	assert.Equal(t, []StarID{"vega", "rigel"}, result.Path)
	assert.Equal(t, 10.0, result.Cost)

	// doubling the fuel rate doubles the cost, not the route.
	result, err = s.FindPathTo("sol", "rigel", Context{FuelRate: 2.0})
	assert.NoError(t, err)
	assert.Equal(t, []StarID{"vega", "rigel"}, result.Path)
	assert.Equal(t, 20.0, result.Cost)
}
