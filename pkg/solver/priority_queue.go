package solver

// See: https://pkg.go.dev/container/heap priority queue example - this queue
// differs from it in that items carry their own heap slot, so repositioning
// after an external priority change needs no search through the backing array.

import "fmt"

// invalidSlot marks an item that is currently not held by any queue.
const invalidSlot = -1

// QueueItem is the capability an element has to offer so the queue can record
// the element's position on the element itself. Implementations store the
// slot verbatim and must not modify it on their own.
type QueueItem interface {
	QueueSlot() int
	SetQueueSlot(slot int)
}

// HigherPriority reports whether a should leave the queue before b. It has to
// define a strict ordering; equal items must report false both ways.
type HigherPriority[T QueueItem] func(a, b T) bool

// IndexedQueue is an array-backed binary min-heap. All operations are
// O(log n); AdjustPriority reads the item's own recorded slot instead of
// searching. The queue only ever holds elements it placed itself, so there is
// no duplicate detection and no removal by value.
type IndexedQueue[T QueueItem] struct {
	items  []T
	higher HigherPriority[T]
}

// NewIndexedQueue initializes an empty queue with the given ordering.
func NewIndexedQueue[T QueueItem](higher HigherPriority[T]) *IndexedQueue[T] {
	return &IndexedQueue[T]{higher: higher}
}

// Len returns the number of items currently enqueued.
func (q *IndexedQueue[T]) Len() int {
	return len(q.items)
}

// Enqueue appends the item and sifts it towards the root.
func (q *IndexedQueue[T]) Enqueue(item T) {
	item.SetQueueSlot(len(q.items))
	q.items = append(q.items, item)
	q.siftUp(len(q.items) - 1)
}

// Dequeue removes and returns the highest-priority item.
func (q *IndexedQueue[T]) Dequeue() (T, error) {
	var zero T
	if len(q.items) == 0 {
		return zero, ErrEmptyQueue
	}
	root := q.items[0]
	last := len(q.items) - 1
	q.items[0] = q.items[last]
	q.items[0].SetQueueSlot(0)
	q.items[last] = zero // avoid memory leak
	q.items = q.items[:last]
	root.SetQueueSlot(invalidSlot)
	if len(q.items) > 1 {
		q.siftDown(0)
	}
	return root, nil
}

// AdjustPriority repositions an item whose priority the caller just changed.
// The item must still be enqueued with a correct recorded slot; the slot is
// validated against the current size before anything is moved.
func (q *IndexedQueue[T]) AdjustPriority(item T) error {
	slot := item.QueueSlot()
	if slot < 0 || slot >= len(q.items) {
		return fmt.Errorf("%w: slot %d with %d items", ErrInvalidQueuePosition, slot, len(q.items))
	}
	if !q.siftUp(slot) {
		q.siftDown(slot)
	}
	return nil
}

// siftUp moves the item at slot towards the root while it beats its parent.
// It reports whether the item moved.
func (q *IndexedQueue[T]) siftUp(slot int) bool {
	moved := false
	for slot > 0 {
		parent := (slot - 1) / 2
		if !q.higher(q.items[slot], q.items[parent]) {
			break
		}
		q.swap(slot, parent)
		slot = parent
		moved = true
	}
	return moved
}

// siftDown moves the item at slot towards the leaves while either child beats
// it. Ties between the children go to the left child; the right child is only
// taken when it strictly beats the left one.
func (q *IndexedQueue[T]) siftDown(slot int) {
	for {
		child := 2*slot + 1
		if child >= len(q.items) {
			return
		}
		if right := child + 1; right < len(q.items) && q.higher(q.items[right], q.items[child]) {
			child = right
		}
		if !q.higher(q.items[child], q.items[slot]) {
			return
		}
		q.swap(slot, child)
		slot = child
	}
}

// swap exchanges two slots and keeps the recorded positions in sync.
func (q *IndexedQueue[T]) swap(i, j int) {
	q.items[i], q.items[j] = q.items[j], q.items[i]
	q.items[i].SetQueueSlot(i)
	q.items[j].SetQueueSlot(j)
}
