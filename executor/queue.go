// File: executor/queue.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package executor

import "github.com/eapache/queue"

// ReadyQueue is the FIFO work queue the resolver appends to and the
// external dispatcher drains. It is not safe for concurrent use; like the
// collection, it belongs to the executor's loop goroutine.
type ReadyQueue struct {
	q *queue.Queue
}

// NewReadyQueue creates an empty queue.
func NewReadyQueue() *ReadyQueue {
	return &ReadyQueue{q: queue.New()}
}

// Push appends an item.
func (rq *ReadyQueue) Push(item WorkItem) {
	rq.q.Add(item)
}

// Pop removes and returns the oldest item; ok is false when empty.
func (rq *ReadyQueue) Pop() (item WorkItem, ok bool) {
	if rq.q.Length() == 0 {
		return WorkItem{}, false
	}
	return rq.q.Remove().(WorkItem), true
}

// Peek returns the oldest item without removing it.
func (rq *ReadyQueue) Peek() (item WorkItem, ok bool) {
	if rq.q.Length() == 0 {
		return WorkItem{}, false
	}
	return rq.q.Peek().(WorkItem), true
}

// Len reports the number of queued items.
func (rq *ReadyQueue) Len() int {
	return rq.q.Length()
}
