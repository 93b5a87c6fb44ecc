package frontier

import (
	"container/heap"

	"golang.org/x/exp/constraints"
)

type entry[T any, P constraints.Ordered] struct {
	item     T
	priority P
	seq      uint64
}

type entryHeap[T any, P constraints.Ordered] []entry[T, P]

func (h entryHeap[T, P]) Len() int { return len(h) }

func (h entryHeap[T, P]) Less(i, j int) bool {
	if h[i].priority != h[j].priority {
		return h[i].priority < h[j].priority
	}
	return h[i].seq < h[j].seq
}

func (h entryHeap[T, P]) Swap(i, j int) { h[i], h[j] = h[j], h[i] }

func (h *entryHeap[T, P]) Push(x any) {
	*h = append(*h, x.(entry[T, P]))
}

func (h *entryHeap[T, P]) Pop() any {
	old := *h
	n := len(old)
	e := old[n-1]
	old[n-1] = entry[T, P]{}
	*h = old[:n-1]
	return e
}

// PriorityQueue pops the item with the lowest priority first. The same item
// may be pushed several times with different priorities; stale copies are
// left for the caller to discard. Equal priorities pop in insertion order.
type PriorityQueue[T any, P constraints.Ordered] struct {
	heap entryHeap[T, P]
	seq  uint64
}

func NewPriorityQueue[T any, P constraints.Ordered]() *PriorityQueue[T, P] {
	return &PriorityQueue[T, P]{}
}

func (pq *PriorityQueue[T, P]) Push(item T, priority P) {
	heap.Push(&pq.heap, entry[T, P]{item: item, priority: priority, seq: pq.seq})
	pq.seq++
}

func (pq *PriorityQueue[T, P]) Pop() T {
	item, _ := pq.PopWithPriority()
	return item
}

// PopWithPriority removes the lowest priority item and returns it together
// with the priority it was pushed with.
func (pq *PriorityQueue[T, P]) PopWithPriority() (T, P) {
	if len(pq.heap) == 0 {
		panic(ErrEmpty)
	}
	e := heap.Pop(&pq.heap).(entry[T, P])
	return e.item, e.priority
}

// Peek returns the lowest priority item without removing it. ok is false
// when the queue is empty.
func (pq *PriorityQueue[T, P]) Peek() (item T, priority P, ok bool) {
	if len(pq.heap) == 0 {
		return item, priority, false
	}
	return pq.heap[0].item, pq.heap[0].priority, true
}

func (pq *PriorityQueue[T, P]) IsEmpty() bool {
	return len(pq.heap) == 0
}

func (pq *PriorityQueue[T, P]) Len() int {
	return len(pq.heap)
}
