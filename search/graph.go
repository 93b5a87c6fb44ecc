package search

import (
	"errors"
	"fmt"
	"time"
)

var (
	ErrNegativeCost      = errors.New("negative step cost")
	ErrNegativeHeuristic = errors.New("negative heuristic estimate")
	ErrExpansionLimit    = errors.New("expansion limit reached")
)

// Statistics describes the work done by one search.
type Statistics struct {
	Expanded    int // States popped and expanded
	Generated   int // Successors admitted to the frontier
	Duplicates  int // Stale frontier entries discarded on pop
	MaxFrontier int
	Duration    time.Duration
}

// Result is the outcome of a search. When no goal is reachable Found is
// false and Actions is empty; that is a normal outcome, not an error.
type Result[A any] struct {
	Actions    []A
	Cost       float64
	Found      bool
	Statistics Statistics
}

func DepthFirst[S comparable, A any](p Problem[S, A], opts ...Option) (*Result[A], error) {
	return graphSearch(p, discipline[S, A](newLIFO[S, A]()), DepthFirstSearch, opts)
}

func BreadthFirst[S comparable, A any](p Problem[S, A], opts ...Option) (*Result[A], error) {
	return graphSearch(p, discipline[S, A](newFIFO[S, A]()), BreadthFirstSearch, opts)
}

func UniformCost[S comparable, A any](p Problem[S, A], opts ...Option) (*Result[A], error) {
	return graphSearch(p, discipline[S, A](newOrdered(pathCost[S, A])), UniformCostSearch, opts)
}

// AStar orders the frontier by path cost plus h. A nil heuristic is the
// NullHeuristic.
func AStar[S comparable, A any](p Problem[S, A], h Heuristic[S, A], opts ...Option) (*Result[A], error) {
	if h == nil {
		h = NullHeuristic[S, A]
	}
	return graphSearch(p, discipline[S, A](newOrdered(pathCostPlus(p, h))), AStarSearch, opts)
}

// Solve dispatches to the named algorithm. h is only consulted by A*.
func Solve[S comparable, A any](p Problem[S, A], alg Algorithm, h Heuristic[S, A], opts ...Option) (*Result[A], error) {
	switch alg {
	case DepthFirstSearch:
		return DepthFirst(p, opts...)
	case BreadthFirstSearch:
		return BreadthFirst(p, opts...)
	case UniformCostSearch:
		return UniformCost(p, opts...)
	case AStarSearch:
		return AStar(p, h, opts...)
	}
	return nil, fmt.Errorf("unsupported search algorithm %s", alg)
}

func graphSearch[S comparable, A any](p Problem[S, A], frontier discipline[S, A], alg Algorithm, opts []Option) (*Result[A], error) {
	cfg := defaultSettings()
	for _, o := range opts {
		o(&cfg)
	}
	logger := cfg.logger.With().Str("algorithm", alg.String()).Logger()

	began := time.Now()
	result := &Result[A]{Actions: []A{}}
	stats := &result.Statistics
	finish := func() *Result[A] {
		stats.Duration = time.Since(began)
		return result
	}

	expanded := make(map[S]struct{})
	if err := frontier.push(Node[S, A]{State: p.StartState(), Actions: []A{}}); err != nil {
		return nil, err
	}
	stats.Generated++
	stats.MaxFrontier = 1

	for !frontier.isEmpty() {
		n := frontier.pop()
		if _, done := expanded[n.State]; done {
			stats.Duplicates++
			continue
		}
		if cfg.maxExpansions > 0 && stats.Expanded >= cfg.maxExpansions {
			logger.Warn().Int("expanded", stats.Expanded).Msg("expansion limit reached")
			return finish(), fmt.Errorf("%w: %d states", ErrExpansionLimit, stats.Expanded)
		}
		expanded[n.State] = struct{}{}
		stats.Expanded++

		goal, err := p.IsGoal(n.State)
		if err != nil {
			return nil, fmt.Errorf("goal test: %w", err)
		}
		if goal {
			result.Actions = n.Actions
			result.Cost = n.Cost
			result.Found = true
			logger.Debug().
				Int("expanded", stats.Expanded).
				Int("length", len(n.Actions)).
				Float64("cost", n.Cost).
				Msg("goal reached")
			return finish(), nil
		}

		succs, err := p.Successors(n.State)
		if err != nil {
			return nil, fmt.Errorf("successors: %w", err)
		}
		logger.Trace().Int("successors", len(succs)).Float64("cost", n.Cost).Msg("expanding")
		for _, succ := range succs {
			if succ.Cost < 0 {
				return nil, fmt.Errorf("%w: %v from %v via %v", ErrNegativeCost, succ.Cost, n.State, succ.Action)
			}
			if !frontier.admit(succ.State, expanded) {
				continue
			}
			if err := frontier.push(n.child(succ)); err != nil {
				return nil, err
			}
			stats.Generated++
		}
		if l := frontier.len(); l > stats.MaxFrontier {
			stats.MaxFrontier = l
		}
	}

	logger.Debug().Int("expanded", stats.Expanded).Msg("search space exhausted")
	return finish(), nil
}
