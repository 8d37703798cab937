package grid

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNeighbors(t *testing.T) {
	board := NewBoard(8, 8)
	assert.Len(t, board.Neighbors(Cell{X: 3, Y: 3}), 4)
	assert.Len(t, board.Neighbors(Cell{X: 0, Y: 0}), 2)
	assert.Len(t, board.Neighbors(Cell{X: 0, Y: 3}), 3)
	assert.NotContains(t, board.Neighbors(Cell{X: 7, Y: 7}), Cell{X: 8, Y: 7})
}

func TestNeighborsIncludeBlockedCells(t *testing.T) {
	// blocked cells stay addressable; only their step cost forbids entry.
	board := NewBoard(8, 8)
	board.Block(Cell{X: 3, Y: 2})
	assert.Contains(t, board.Neighbors(Cell{X: 3, Y: 3}), Cell{X: 3, Y: 2})
}

func TestCost(t *testing.T) {
	board := NewBoard(8, 8)
	board.Block(Cell{X: 1, Y: 0})
	assert.Equal(t, 1.0, board.Cost(Cell{X: 0, Y: 0}, Cell{X: 0, Y: 1}, Context{}))
	assert.True(t, math.IsInf(board.Cost(Cell{X: 0, Y: 0}, Cell{X: 1, Y: 0}, Context{}), 1))
	assert.True(t, math.IsInf(board.Cost(Cell{X: 1, Y: 0}, Cell{X: 0, Y: 0}, Context{}), 1))
}

func TestHeuristicCost(t *testing.T) {
	board := NewBoard(8, 8)
	from := Cell{X: 0, Y: 0}
	to := Cell{X: 7, Y: 7}
	assert.Equal(t, 14.0, board.HeuristicCost(from, to, Context{}))
	assert.Equal(t, 14.0, board.HeuristicCost(from, to, Context{HeuristicWeight: 1.0}))
	assert.Equal(t, 28.0, board.HeuristicCost(from, to, Context{HeuristicWeight: 2.0}))
}

func TestContains(t *testing.T) {
	board := NewBoard(4, 4)
	assert.True(t, board.Contains(Cell{X: 0, Y: 0}))
	assert.True(t, board.Contains(Cell{X: 3, Y: 3}))
	assert.False(t, board.Contains(Cell{X: 4, Y: 0}))
	assert.False(t, board.Contains(Cell{X: 0, Y: -1}))
}
