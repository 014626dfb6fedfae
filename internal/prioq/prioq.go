// Package prioq implements a minimal min-heap priority queue keyed by a
// caller-supplied projection function.
//
// It exists to support charset's disjoint decomposition, which queues the
// boundary code points of every input range and drains them in ascending
// order. The queue
// has no notion of stability: elements with equal keys come off in
// unspecified order, which is fine because every caller in this module
// treats equal-key elements as interchangeable.
package prioq

import "container/heap"

// Queue is a priority queue over values of type T, ordered ascending by the
// result of key applied to each value. K must be ordered so elements can be
// compared without a caller-supplied comparator.
type Queue[T any, K interface {
	~int | ~int32 | ~int64 | ~uint | ~uint32 | ~uint64 | ~float32 | ~float64 | ~string
}] struct {
	h   queueHeap[T, K]
	key func(T) K
}

// New creates an empty Queue ordered by key.
func New[T any, K interface {
	~int | ~int32 | ~int64 | ~uint | ~uint32 | ~uint64 | ~float32 | ~float64 | ~string
}](key func(T) K) *Queue[T, K] {
	return &Queue[T, K]{key: key}
}

// Len reports the number of items currently queued.
func (q *Queue[T, K]) Len() int {
	return len(q.h)
}

// Push adds one or more items to the queue.
func (q *Queue[T, K]) Push(items ...T) {
	for _, item := range items {
		heap.Push(&q.h, entry[T, K]{value: item, key: q.key(item)})
	}
}

// Pop removes and returns the item with the smallest key.
// Pop panics if the queue is empty; callers must check Len first.
func (q *Queue[T, K]) Pop() T {
	e := heap.Pop(&q.h).(entry[T, K])
	return e.value
}

// Peek returns the item with the smallest key without removing it.
// The second return value is false if the queue is empty.
func (q *Queue[T, K]) Peek() (T, bool) {
	var zero T
	if len(q.h) == 0 {
		return zero, false
	}
	return q.h[0].value, true
}

type entry[T any, K interface {
	~int | ~int32 | ~int64 | ~uint | ~uint32 | ~uint64 | ~float32 | ~float64 | ~string
}] struct {
	value T
	key   K
}

// queueHeap implements container/heap.Interface over entry[T, K].
type queueHeap[T any, K interface {
	~int | ~int32 | ~int64 | ~uint | ~uint32 | ~uint64 | ~float32 | ~float64 | ~string
}] []entry[T, K]

func (h queueHeap[T, K]) Len() int            { return len(h) }
func (h queueHeap[T, K]) Less(i, j int) bool  { return h[i].key < h[j].key }
func (h queueHeap[T, K]) Swap(i, j int)       { h[i], h[j] = h[j], h[i] }
func (h *queueHeap[T, K]) Push(x interface{}) { *h = append(*h, x.(entry[T, K])) }
func (h *queueHeap[T, K]) Pop() interface{} {
	old := *h
	n := len(old)
	item := old[n-1]
	*h = old[:n-1]
	return item
}
