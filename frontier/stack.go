package frontier

// Stack is a LIFO frontier. Items are identified by the key function given
// to NewStack, which backs Contains.
type Stack[T any, K comparable] struct {
	items   []T
	key     func(T) K
	members membership[K]
}

func NewStack[T any, K comparable](key func(T) K) *Stack[T, K] {
	return &Stack[T, K]{
		key:     key,
		members: make(membership[K]),
	}
}

func (s *Stack[T, K]) Push(item T) {
	s.items = append(s.items, item)
	s.members.add(s.key(item))
}

func (s *Stack[T, K]) Pop() T {
	if len(s.items) == 0 {
		panic(ErrEmpty)
	}
	last := len(s.items) - 1
	item := s.items[last]
	var zero T
	s.items[last] = zero
	s.items = s.items[:last]
	s.members.remove(s.key(item))
	return item
}

func (s *Stack[T, K]) IsEmpty() bool {
	return len(s.items) == 0
}

func (s *Stack[T, K]) Len() int {
	return len(s.items)
}

// Contains reports whether an item with key k is currently on the stack.
func (s *Stack[T, K]) Contains(k K) bool {
	return s.members[k] > 0
}
