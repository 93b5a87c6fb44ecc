package search

import (
	"fmt"

	"github.com/timewinder-dev/seeker/frontier"
)

// discipline decides the order in which discovered nodes are expanded and
// which successors are admitted to the frontier.
type discipline[S comparable, A any] interface {
	push(n Node[S, A]) error
	pop() Node[S, A]
	isEmpty() bool
	len() int
	admit(state S, expanded map[S]struct{}) bool
}

func nodeState[S comparable, A any](n Node[S, A]) S {
	return n.State
}

// lifo and fifo skip successors already waiting in the frontier, which
// bounds frontier growth.
type lifo[S comparable, A any] struct {
	stack *frontier.Stack[Node[S, A], S]
}

func newLIFO[S comparable, A any]() *lifo[S, A] {
	return &lifo[S, A]{stack: frontier.NewStack(nodeState[S, A])}
}

func (d *lifo[S, A]) push(n Node[S, A]) error { d.stack.Push(n); return nil }
func (d *lifo[S, A]) pop() Node[S, A]        { return d.stack.Pop() }
func (d *lifo[S, A]) isEmpty() bool          { return d.stack.IsEmpty() }
func (d *lifo[S, A]) len() int               { return d.stack.Len() }

func (d *lifo[S, A]) admit(state S, expanded map[S]struct{}) bool {
	_, done := expanded[state]
	return !done && !d.stack.Contains(state)
}

type fifo[S comparable, A any] struct {
	queue *frontier.Queue[Node[S, A], S]
}

func newFIFO[S comparable, A any]() *fifo[S, A] {
	return &fifo[S, A]{queue: frontier.NewQueue(nodeState[S, A])}
}

func (d *fifo[S, A]) push(n Node[S, A]) error { d.queue.Push(n); return nil }
func (d *fifo[S, A]) pop() Node[S, A]        { return d.queue.Pop() }
func (d *fifo[S, A]) isEmpty() bool          { return d.queue.IsEmpty() }
func (d *fifo[S, A]) len() int               { return d.queue.Len() }

func (d *fifo[S, A]) admit(state S, expanded map[S]struct{}) bool {
	_, done := expanded[state]
	return !done && !d.queue.Contains(state)
}

// ordered admits every unexpanded successor and relies on the template
// discarding stale duplicates when they are popped.
type ordered[S comparable, A any] struct {
	queue    *frontier.PriorityQueue[Node[S, A], float64]
	priority func(Node[S, A]) (float64, error)
}

func newOrdered[S comparable, A any](priority func(Node[S, A]) (float64, error)) *ordered[S, A] {
	return &ordered[S, A]{
		queue:    frontier.NewPriorityQueue[Node[S, A], float64](),
		priority: priority,
	}
}

func (d *ordered[S, A]) push(n Node[S, A]) error {
	p, err := d.priority(n)
	if err != nil {
		return err
	}
	d.queue.Push(n, p)
	return nil
}

func (d *ordered[S, A]) pop() Node[S, A] { return d.queue.Pop() }
func (d *ordered[S, A]) isEmpty() bool   { return d.queue.IsEmpty() }
func (d *ordered[S, A]) len() int        { return d.queue.Len() }

func (d *ordered[S, A]) admit(state S, expanded map[S]struct{}) bool {
	_, done := expanded[state]
	return !done
}

func pathCost[S comparable, A any](n Node[S, A]) (float64, error) {
	return n.Cost, nil
}

func pathCostPlus[S comparable, A any](p Problem[S, A], h Heuristic[S, A]) func(Node[S, A]) (float64, error) {
	return func(n Node[S, A]) (float64, error) {
		est, err := h(n.State, p)
		if err != nil {
			return 0, fmt.Errorf("heuristic: %w", err)
		}
		if est < 0 {
			return 0, fmt.Errorf("%w: %v for state %v", ErrNegativeHeuristic, est, n.State)
		}
		return n.Cost + est, nil
	}
}
