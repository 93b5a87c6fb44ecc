package frontier

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func identity(s string) string { return s }

var (
	_ Frontier[string] = (*Stack[string, string])(nil)
	_ Frontier[string] = (*Queue[string, string])(nil)
)

func TestStack(t *testing.T) {
	s := NewStack(identity)
	require.True(t, s.IsEmpty())

	s.Push("a")
	s.Push("b")
	s.Push("c")
	assert.Equal(t, 3, s.Len())
	assert.True(t, s.Contains("b"))

	assert.Equal(t, "c", s.Pop())
	assert.Equal(t, "b", s.Pop())
	assert.False(t, s.Contains("b"), "popped items should leave the stack")
	assert.Equal(t, "a", s.Pop())
	assert.True(t, s.IsEmpty())
}

func TestQueue(t *testing.T) {
	q := NewQueue(identity)
	for _, v := range []string{"a", "b", "c"} {
		q.Push(v)
	}
	assert.True(t, q.Contains("a"))
	assert.Equal(t, "a", q.Pop())
	assert.False(t, q.Contains("a"))
	assert.Equal(t, "b", q.Pop())
	q.Push("d")
	assert.Equal(t, "c", q.Pop())
	assert.Equal(t, "d", q.Pop())
	assert.True(t, q.IsEmpty())
	assert.Equal(t, 0, q.Len())
}

func TestQueueCompaction(t *testing.T) {
	q := NewQueue(func(i int) int { return i })
	for i := 0; i < 200; i++ {
		q.Push(i)
	}
	for i := 0; i < 150; i++ {
		require.Equal(t, i, q.Pop())
	}
	assert.Equal(t, 50, q.Len())
	for i := 200; i < 210; i++ {
		q.Push(i)
	}
	for i := 150; i < 210; i++ {
		require.Equal(t, i, q.Pop())
	}
	assert.True(t, q.IsEmpty())
}

func TestContainsWithDuplicates(t *testing.T) {
	s := NewStack(identity)
	s.Push("x")
	s.Push("x")
	s.Pop()
	assert.True(t, s.Contains("x"), "one copy is still held")
	s.Pop()
	assert.False(t, s.Contains("x"))
}

func TestPriorityQueueOrder(t *testing.T) {
	pq := NewPriorityQueue[string, float64]()
	pq.Push("five", 5)
	pq.Push("one", 1)
	pq.Push("three", 3)
	pq.Push("one-again", 1)

	item, p, ok := pq.Peek()
	require.True(t, ok)
	assert.Equal(t, "one", item)
	assert.Equal(t, 1.0, p)

	var got []string
	for !pq.IsEmpty() {
		got = append(got, pq.Pop())
	}
	assert.Equal(t, []string{"one", "one-again", "three", "five"}, got,
		"equal priorities should pop in insertion order")
}

func TestPriorityQueueDuplicateItems(t *testing.T) {
	pq := NewPriorityQueue[string, int]()
	pq.Push("s", 10)
	pq.Push("s", 2)
	assert.Equal(t, 2, pq.Len())

	item, p := pq.PopWithPriority()
	assert.Equal(t, "s", item)
	assert.Equal(t, 2, p)
	item, p = pq.PopWithPriority()
	assert.Equal(t, "s", item)
	assert.Equal(t, 10, p)
}

func TestPopEmptyPanics(t *testing.T) {
	assert.PanicsWithValue(t, ErrEmpty, func() { NewStack(identity).Pop() })
	assert.PanicsWithValue(t, ErrEmpty, func() { NewQueue(identity).Pop() })
	assert.PanicsWithValue(t, ErrEmpty, func() { NewPriorityQueue[string, int]().Pop() })

	_, _, ok := NewPriorityQueue[string, int]().Peek()
	assert.False(t, ok)
}
