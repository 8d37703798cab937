// Package grid adapts a rectangular tile board with 4-directional movement to
// the solver's graph capability.
package grid

import "math"

// Cell identifies one tile on the board.
type Cell struct {
	X int
	Y int
}

// Context carries per-query tuning for costs and estimates.
type Context struct {
	// HeuristicWeight scales the Manhattan estimate. Values <= 0 are treated
	// as 1.0; 1.0 never overestimates on a unit-cost board, larger values
	// deliberately do.
	HeuristicWeight float64
}

func (ctx Context) weight() float64 {
	if ctx.HeuristicWeight <= 0 {
		return 1.0
	}
	return ctx.HeuristicWeight
}

// Board is a width x height tile board with blocked cells. Blocked cells stay
// part of the adjacency so they can be addressed as (unreachable) query
// targets; stepping into or out of them costs +Inf.
type Board struct {
	width   int
	height  int
	blocked map[Cell]bool
}

// NewBoard initializes an open board of the given dimensions.
func NewBoard(width, height int) *Board {
	return &Board{
		width:   width,
		height:  height,
		blocked: make(map[Cell]bool),
	}
}

// Width returns the board's width.
func (b *Board) Width() int {
	return b.width
}

// Height returns the board's height.
func (b *Board) Height() int {
	return b.height
}

// Contains reports whether the cell lies on the board.
func (b *Board) Contains(cell Cell) bool {
	return cell.X >= 0 && cell.X < b.width && cell.Y >= 0 && cell.Y < b.height
}

// Block marks cells as impassable.
func (b *Board) Block(cells ...Cell) {
	for _, cell := range cells {
		b.blocked[cell] = true
	}
}

// Blocked reports whether a cell is impassable.
func (b *Board) Blocked(cell Cell) bool {
	return b.blocked[cell]
}

// Neighbors returns the in-bounds 4-directional neighbors of a cell.
func (b *Board) Neighbors(cell Cell) []Cell {
	candidates := [4]Cell{
		{cell.X, cell.Y - 1},
		{cell.X - 1, cell.Y},
		{cell.X + 1, cell.Y},
		{cell.X, cell.Y + 1},
	}
	neighbors := make([]Cell, 0, 4)
	for _, candidate := range candidates {
		if b.Contains(candidate) {
			neighbors = append(neighbors, candidate)
		}
	}
	return neighbors
}

// Cost returns the unit step cost, or +Inf when either endpoint is blocked.
func (b *Board) Cost(from Cell, to Cell, _ Context) float64 {
	if b.blocked[from] || b.blocked[to] {
		return math.Inf(1)
	}
	return 1.0
}

// HeuristicCost estimates the remaining cost as the weighted Manhattan
// distance.
func (b *Board) HeuristicCost(from Cell, to Cell, ctx Context) float64 {
	return ctx.weight() * float64(abs(from.X-to.X)+abs(from.Y-to.Y))
}

func abs(value int) int {
	if value < 0 {
		return -value
	}
	return value
}
