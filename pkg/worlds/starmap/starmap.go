// Package starmap adapts a chart of stars connected by jump lanes to the
// solver's graph capability.
package starmap

import "math"

// StarID names a star on the chart.
type StarID string

// Position is a star's location in 3D space, in light years.
type Position struct {
	X float64
	Y float64
	Z float64
}

// Context carries per-query tuning.
type Context struct {
	// FuelRate converts light years into cost units. Values <= 0 are treated
	// as 1.0.
	FuelRate float64
}

func (ctx Context) rate() float64 {
	if ctx.FuelRate <= 0 {
		return 1.0
	}
	return ctx.FuelRate
}

// Chart holds stars and the jump lanes between them.
type Chart struct {
	positions map[StarID]Position
	lanes     map[StarID][]StarID
}

// NewChart initializes an empty chart.
func NewChart() *Chart {
	return &Chart{
		positions: make(map[StarID]Position),
		lanes:     make(map[StarID][]StarID),
	}
}

// AddStar places a star on the chart, replacing any previous position.
func (c *Chart) AddStar(id StarID, position Position) {
	c.positions[id] = position
}

// AddLane connects two stars with a bidirectional jump lane. Both stars must
// already be on the chart; unknown endpoints are ignored with no lane added.
func (c *Chart) AddLane(a, b StarID) {
	if _, ok := c.positions[a]; !ok {
		return
	}
	if _, ok := c.positions[b]; !ok {
		return
	}
	c.lanes[a] = append(c.lanes[a], b)
	c.lanes[b] = append(c.lanes[b], a)
}

// Stars returns the number of stars on the chart.
func (c *Chart) Stars() int {
	return len(c.positions)
}

// Neighbors returns all stars reachable from id over one jump lane.
func (c *Chart) Neighbors(id StarID) []StarID {
	return c.lanes[id]
}

// Cost returns the fuel cost of the lane between two adjacent stars.
func (c *Chart) Cost(from StarID, to StarID, ctx Context) float64 {
	return ctx.rate() * c.distance(from, to)
}

// HeuristicCost estimates the remaining cost as the straight-line distance;
// lanes can never be shorter, so the estimate never overestimates.
func (c *Chart) HeuristicCost(from StarID, to StarID, ctx Context) float64 {
	return ctx.rate() * c.distance(from, to)
}

// distance returns the Euclidean distance between two stars, or +Inf when
// either star is unknown.
func (c *Chart) distance(from StarID, to StarID) float64 {
	a, ok := c.positions[from]
	if !ok {
		return math.Inf(1)
	}
	b, ok := c.positions[to]
	if !ok {
		return math.Inf(1)
	}
	dx := a.X - b.X
	dy := a.Y - b.Y
	dz := a.Z - b.Z
	return math.Sqrt(dx*dx + dy*dy + dz*dz)
}
