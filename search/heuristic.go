package search

// Heuristic estimates the remaining cost from a state to the nearest goal of
// the problem. It should be admissible for A* to return optimal paths; the
// engine only rejects negative estimates.
type Heuristic[S comparable, A any] func(state S, problem Problem[S, A]) (float64, error)

// NullHeuristic estimates zero for every state. A* with it behaves exactly
// like uniform-cost search.
func NullHeuristic[S comparable, A any](S, Problem[S, A]) (float64, error) {
	return 0, nil
}
