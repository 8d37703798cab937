// Package pqueue offers a small general-purpose min priority queue. It trades
// the indexed-repositioning optimization of the solver's internal queue for
// simplicity; use it when priorities never change after insertion.
package pqueue

// See: https://pkg.go.dev/container/heap priority queue example.

import "container/heap"

// Item represents an entity in the queue.
type Item[T any] struct {
	value    T
	priority float64
	index    int
}

// NewItem wraps a value with its priority.
func NewItem[T any](value T, priority float64) *Item[T] {
	return &Item[T]{value: value, priority: priority, index: -1}
}

// Value returns the wrapped value.
func (item *Item[T]) Value() T {
	return item.value
}

// Priority returns the item's priority.
func (item *Item[T]) Priority() float64 {
	return item.priority
}

// PriorityQueue is a min priority queue.
type PriorityQueue[T any] []*Item[T]

// Len returns the length of the queue.
func (queue PriorityQueue[T]) Len() int {
	return len(queue)
}

// Less determines an item with the lowest priority.
func (queue PriorityQueue[T]) Less(i, j int) bool {
	return queue[i].priority < queue[j].priority
}

// Swap swaps two items in the queue.
func (queue PriorityQueue[T]) Swap(i, j int) {
	queue[i], queue[j] = queue[j], queue[i]
	queue[i].index = i
	queue[j].index = j
}

// Push adds an item to the queue.
func (queue *PriorityQueue[T]) Push(x any) {
	n := len(*queue)
	item := x.(*Item[T])
	item.index = n
	*queue = append(*queue, item)
}

// Pop returns the item with the lowest priority from the queue.
func (queue *PriorityQueue[T]) Pop() any {
	old := *queue
	n := len(old)
	item := old[n-1]
	old[n-1] = nil  // avoid memory leak
	item.index = -1 // for safety
	*queue = old[0 : n-1]
	return item
}

var _ heap.Interface = (*PriorityQueue[int])(nil)
