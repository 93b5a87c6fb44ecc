package frontier

// Queue is a FIFO frontier. Items are identified by the key function given
// to NewQueue, which backs Contains.
type Queue[T any, K comparable] struct {
	items   []T
	head    int
	key     func(T) K
	members membership[K]
}

func NewQueue[T any, K comparable](key func(T) K) *Queue[T, K] {
	return &Queue[T, K]{
		key:     key,
		members: make(membership[K]),
	}
}

func (q *Queue[T, K]) Push(item T) {
	q.items = append(q.items, item)
	q.members.add(q.key(item))
}

func (q *Queue[T, K]) Pop() T {
	if q.head == len(q.items) {
		panic(ErrEmpty)
	}
	item := q.items[q.head]
	var zero T
	q.items[q.head] = zero
	q.head++
	// Reclaim the consumed prefix once it dominates the backing array.
	if q.head > 32 && q.head*2 >= len(q.items) {
		q.items = append([]T(nil), q.items[q.head:]...)
		q.head = 0
	}
	q.members.remove(q.key(item))
	return item
}

func (q *Queue[T, K]) IsEmpty() bool {
	return q.head == len(q.items)
}

func (q *Queue[T, K]) Len() int {
	return len(q.items) - q.head
}

// Contains reports whether an item with key k is currently queued.
func (q *Queue[T, K]) Contains(k K) bool {
	return q.members[k] > 0
}
