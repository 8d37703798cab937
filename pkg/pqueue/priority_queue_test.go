package pqueue

import (
	"container/heap"
	"testing"
)

// Tests for success.

// TestLenForSuccess tests for success.
func TestLenForSuccess(_ *testing.T) {
	queue := make(PriorityQueue[string], 0)
	heap.Init(&queue)
	queue.Len()
}

// TestPushForSuccess tests for success.
func TestPushForSuccess(_ *testing.T) {
	queue := make(PriorityQueue[string], 0)
	heap.Init(&queue)
	heap.Push(&queue, NewItem("item0", 1.0))
}

// TestPopForSuccess tests for success.
func TestPopForSuccess(_ *testing.T) {
	queue := make(PriorityQueue[string], 0)
	heap.Init(&queue)
	heap.Push(&queue, NewItem("item0", 1.0))
	heap.Pop(&queue)
}

// Test for failure.

// N/A

// Test for sanity.

// TestPushPopForSanity tests for sanity.
func TestPushPopForSanity(t *testing.T) {
	queue := make(PriorityQueue[int], 0)
	heap.Init(&queue)

	// push elements on heap and ...
	for i, val := range []float64{3.0, 0.0, 3.0, 5.0, 2.0} {
		heap.Push(&queue, NewItem(i, val))
	}

	// ... now pop them again.
	for _, expected := range []float64{0.0, 2.0, 3.0, 3.0, 5.0} {
		item := heap.Pop(&queue).(*Item[int])
		if item.Priority() != expected {
			t.Errorf("Expected '%f' got: '%f'.", expected, item.Priority())
		}
	}
}
