// Package search implements single-agent graph search over a pluggable
// state-space model: depth-first, breadth-first, uniform-cost and A*.
//
// All four algorithms share one template and differ only in the frontier
// discipline used to order expansion. Every variant is a graph search: a
// state is expanded at most once.
package search

// Successor is one outgoing transition of a state.
type Successor[S comparable, A any] struct {
	State  S
	Action A
	Cost   float64
}

// Problem is the state-space model consumed by the search engines. The
// engines never look inside S; they only compare states and hand them back.
// Step costs must be non-negative.
type Problem[S comparable, A any] interface {
	StartState() S
	IsGoal(state S) (bool, error)
	Successors(state S) ([]Successor[S, A], error)
	CostOfActions(actions []A) (float64, error)
}

// Node is a frontier entry: a state together with the path that reached it.
// Nodes are never mutated after creation.
type Node[S comparable, A any] struct {
	State   S
	Actions []A
	Cost    float64
}

// child builds the node reached by taking succ from n. The action slice is
// copied so siblings never share a backing array.
func (n Node[S, A]) child(succ Successor[S, A]) Node[S, A] {
	actions := make([]A, len(n.Actions), len(n.Actions)+1)
	copy(actions, n.Actions)
	return Node[S, A]{
		State:   succ.State,
		Actions: append(actions, succ.Action),
		Cost:    n.Cost + succ.Cost,
	}
}
