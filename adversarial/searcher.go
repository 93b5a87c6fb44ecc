package adversarial

import (
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

var (
	ErrInvalidDepth = errors.New("depth must not be negative")
	ErrTooFewAgents = errors.New("game needs at least two agents")
)

// Statistics describes the work done by one decision.
type Statistics struct {
	Nodes       int // Game-tree nodes visited, root included
	Evaluations int
	Cutoffs     int
	MaxDepth    int // Deepest node reached, in single-agent moves from the root
	Duration    time.Duration
}

// Decision is the outcome of searching from a root state. HasAction is false
// when the root is terminal, in which case Value is the root's evaluation.
type Decision[A any] struct {
	Action     A
	HasAction  bool
	Value      float64
	Statistics Statistics
}

// Decider chooses agent 0's next action.
type Decider[A any] interface {
	Decide(root State[A]) (*Decision[A], error)
}

type Option[A any] func(*Searcher[A])

// WithVisit registers a callback run on every visited game-tree node.
func WithVisit[A any](fn func(state State[A], agent, plies int)) Option[A] {
	return func(s *Searcher[A]) {
		s.visit = fn
	}
}

func WithLogger[A any](l zerolog.Logger) Option[A] {
	return func(s *Searcher[A]) {
		s.logger = l
	}
}

// Searcher runs depth-limited game-tree search. It holds no per-search state
// and may be reused.
type Searcher[A any] struct {
	depth    int
	evaluate Evaluation[A]
	combiner Combiner
	visit    func(State[A], int, int)
	logger   zerolog.Logger
}

// New builds a searcher that looks depth plies ahead. One ply is a full
// round in which every agent moves once.
func New[A any](combiner Combiner, depth int, evaluate Evaluation[A], opts ...Option[A]) *Searcher[A] {
	s := &Searcher[A]{
		depth:    depth,
		evaluate: evaluate,
		combiner: combiner,
		logger:   log.Logger,
	}
	for _, o := range opts {
		o(s)
	}
	return s
}

func NewMinimax[A any](depth int, evaluate Evaluation[A], opts ...Option[A]) *Searcher[A] {
	return New(Combiner(Min{}), depth, evaluate, opts...)
}

func NewAlphaBeta[A any](depth int, evaluate Evaluation[A], opts ...Option[A]) *Searcher[A] {
	return New(Combiner(PrunedMin{}), depth, evaluate, opts...)
}

func NewExpectimax[A any](depth int, evaluate Evaluation[A], opts ...Option[A]) *Searcher[A] {
	return New(Combiner(Expectation{}), depth, evaluate, opts...)
}

// run carries the bookkeeping of one Decide call.
type run[A any] struct {
	*Searcher[A]
	agents int
	stats  Statistics
}

func (s *Searcher[A]) Decide(root State[A]) (*Decision[A], error) {
	if s.depth < 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidDepth, s.depth)
	}
	agents := root.NumAgents()
	if agents < 2 {
		return nil, fmt.Errorf("%w: got %d", ErrTooFewAgents, agents)
	}

	began := time.Now()
	r := &run[A]{Searcher: s, agents: agents}
	d := &Decision[A]{}
	value, picked, err := r.maximize(root, s.depth, FullWindow())
	if err != nil {
		return nil, err
	}
	d.Value = value
	if picked.index >= 0 {
		d.HasAction = true
		d.Action = picked.action
	}
	r.stats.Duration = time.Since(began)
	d.Statistics = r.stats

	s.logger.Debug().
		Str("combiner", s.combiner.Name()).
		Int("depth", s.depth).
		Float64("value", d.Value).
		Int("nodes", r.stats.Nodes).
		Int("cutoffs", r.stats.Cutoffs).
		Msg("decision")
	return d, nil
}

// Value returns the game-theoretic value of root without the action.
func (s *Searcher[A]) Value(root State[A]) (float64, error) {
	d, err := s.Decide(root)
	if err != nil {
		return 0, err
	}
	return d.Value, nil
}

type choice[A any] struct {
	index  int
	action A
}

func (r *run[A]) reached(level int) {
	if level > r.stats.MaxDepth {
		r.stats.MaxDepth = level
	}
}

func (r *run[A]) leaf(state State[A]) (float64, error) {
	r.stats.Evaluations++
	v, err := r.evaluate(state)
	if err != nil {
		return 0, fmt.Errorf("evaluation: %w", err)
	}
	return v, nil
}

// maximize handles agent 0's turn. The returned choice has index -1 when
// the node was terminal.
func (r *run[A]) maximize(state State[A], plies int, w Window) (float64, choice[A], error) {
	r.stats.Nodes++
	r.reached((r.depth - plies) * r.agents)
	if r.visit != nil {
		r.visit(state, 0, plies)
	}
	none := choice[A]{index: -1}

	over, err := terminal(state)
	if err != nil {
		return 0, none, err
	}
	if over || plies == 0 {
		v, err := r.leaf(state)
		return v, none, err
	}
	actions, err := state.LegalActions(0)
	if err != nil {
		return 0, none, fmt.Errorf("legal actions of agent 0: %w", err)
	}
	if len(actions) == 0 {
		v, err := r.leaf(state)
		return v, none, err
	}

	best := math.Inf(-1)
	picked := none
	for i, a := range actions {
		next, err := state.Successor(0, a)
		if err != nil {
			return 0, none, fmt.Errorf("successor of agent 0: %w", err)
		}
		v, err := r.opponent(next, 1, plies, w)
		if err != nil {
			return 0, none, err
		}
		if v > best || picked.index < 0 {
			best = v
			picked = choice[A]{index: i, action: a}
		}
		if r.combiner.Prunes() {
			if best > w.Beta {
				r.stats.Cutoffs++
				return best, picked, nil
			}
			w.Alpha = math.Max(w.Alpha, best)
		}
	}
	return best, picked, nil
}

// opponent handles the turn of a non-maximizing agent.
func (r *run[A]) opponent(state State[A], agent, plies int, w Window) (float64, error) {
	r.stats.Nodes++
	r.reached((r.depth-plies)*r.agents + agent)
	if r.visit != nil {
		r.visit(state, agent, plies)
	}
	over, err := terminal(state)
	if err != nil {
		return 0, err
	}
	if over {
		return r.leaf(state)
	}
	actions, err := state.LegalActions(agent)
	if err != nil {
		return 0, fmt.Errorf("legal actions of agent %d: %w", agent, err)
	}
	if len(actions) == 0 {
		return r.leaf(state)
	}

	child := func(i int, w Window) (float64, error) {
		next, err := state.Successor(agent, actions[i])
		if err != nil {
			return 0, fmt.Errorf("successor of agent %d: %w", agent, err)
		}
		if agent == r.agents-1 {
			v, _, err := r.maximize(next, plies-1, w)
			return v, err
		}
		return r.opponent(next, agent+1, plies, w)
	}
	v, cut, err := r.combiner.Fold(len(actions), w, child)
	if cut {
		r.stats.Cutoffs++
	}
	return v, err
}
