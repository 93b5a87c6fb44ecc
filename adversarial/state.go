// Package adversarial picks the next action for agent 0 of a turn-based game
// by searching the game tree to a fixed number of plies. Agent 0 maximizes;
// agents 1..N-1 move after it in round-robin order and are modeled by a
// Combiner: minimizing opponents (minimax), minimizing opponents with
// alpha-beta pruning, or uniformly random opponents (expectimax).
package adversarial

// State is the game model consumed by the searchers. Successor must not
// modify the receiver.
type State[A any] interface {
	NumAgents() int
	LegalActions(agent int) ([]A, error)
	Successor(agent int, action A) (State[A], error)
	IsWin() (bool, error)
	IsLose() (bool, error)
}

// Evaluation scores a state from agent 0's point of view; higher is better.
type Evaluation[A any] func(State[A]) (float64, error)

// terminal reports whether the game is over in s.
func terminal[A any](s State[A]) (bool, error) {
	win, err := s.IsWin()
	if err != nil || win {
		return win, err
	}
	return s.IsLose()
}
