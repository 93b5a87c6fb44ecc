package adversarial

import (
	"fmt"
	"math/rand"
	"strings"
)

type Algorithm int

const (
	MinimaxSearch Algorithm = iota
	AlphaBetaSearch
	ExpectimaxSearch
	ReflexAgent
)

func (a Algorithm) String() string {
	switch a {
	case MinimaxSearch:
		return "minimax"
	case AlphaBetaSearch:
		return "alphabeta"
	case ExpectimaxSearch:
		return "expectimax"
	case ReflexAgent:
		return "reflex"
	}
	return fmt.Sprintf("Algorithm(%d)", int(a))
}

func ParseAlgorithm(name string) (Algorithm, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "minimax":
		return MinimaxSearch, nil
	case "alphabeta", "alpha-beta":
		return AlphaBetaSearch, nil
	case "expectimax":
		return ExpectimaxSearch, nil
	case "reflex":
		return ReflexAgent, nil
	}
	return 0, fmt.Errorf("unknown game algorithm %q", name)
}

// NewDecider builds the decider for alg. depth is ignored by the reflex
// agent and rng by every other algorithm.
func NewDecider[A any](alg Algorithm, depth int, evaluate Evaluation[A], rng *rand.Rand, opts ...Option[A]) (Decider[A], error) {
	switch alg {
	case MinimaxSearch:
		return NewMinimax(depth, evaluate, opts...), nil
	case AlphaBetaSearch:
		return NewAlphaBeta(depth, evaluate, opts...), nil
	case ExpectimaxSearch:
		return NewExpectimax(depth, evaluate, opts...), nil
	case ReflexAgent:
		return NewReflex(evaluate, rng), nil
	}
	return nil, fmt.Errorf("unsupported game algorithm %s", alg)
}
