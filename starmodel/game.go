package starmodel

import (
	"fmt"

	"go.starlark.net/starlark"

	"github.com/timewinder-dev/seeker/adversarial"
	"github.com/timewinder-dev/seeker/cas"
)

// GameFuncs names the model functions backing a game.
type GameFuncs struct {
	Start        string
	NumAgents    string
	LegalActions string
	Successor    string
	IsWin        string
	IsLose       string
}

func DefaultGameFuncs() GameFuncs {
	return GameFuncs{
		Start:        "start",
		NumAgents:    "num_agents",
		LegalActions: "legal_actions",
		Successor:    "successor",
		IsWin:        "is_win",
		IsLose:       "is_lose",
	}
}

type Game struct {
	mod   *Module
	funcs GameFuncs
}

func (m *Module) Game(funcs GameFuncs) (*Game, error) {
	for _, name := range []string{funcs.Start, funcs.NumAgents, funcs.LegalActions, funcs.Successor, funcs.IsWin, funcs.IsLose} {
		if !m.Has(name) {
			return nil, fmt.Errorf("%w: %s", ErrMissingFunction, name)
		}
	}
	return &Game{mod: m, funcs: funcs}, nil
}

func (g *Game) Module() *Module { return g.mod }

// Root builds the state returned by the model's start function. The number
// of agents is read once, from the root.
func (g *Game) Root() (*GameState, error) {
	v, err := g.mod.call(g.funcs.Start)
	if err != nil {
		return nil, err
	}
	h, err := g.mod.intern(v)
	if err != nil {
		return nil, fmt.Errorf("start state: %w", err)
	}
	n, err := g.mod.call(g.funcs.NumAgents, v)
	if err != nil {
		return nil, err
	}
	agents, err := starlark.AsInt32(n)
	if err != nil {
		return nil, fmt.Errorf("%w: %s returned %s", ErrBadReturn, g.funcs.NumAgents, n.String())
	}
	return &GameState{game: g, hash: h, value: v, agents: agents}, nil
}

// Evaluation wraps the model function name as an evaluation function.
// Scores are memoized per state.
func (g *Game) Evaluation(name string, cacheSize int) (adversarial.Evaluation[string], error) {
	if !g.mod.Has(name) {
		return nil, fmt.Errorf("%w: evaluation %s", ErrMissingFunction, name)
	}
	cache := cas.NewLRUCache[float64](cacheSize)
	return func(s adversarial.State[string]) (float64, error) {
		gs, ok := s.(*GameState)
		if !ok {
			return 0, fmt.Errorf("evaluation %s: foreign state %T", name, s)
		}
		return cache.GetOrCompute(gs.hash, func() (float64, error) {
			return g.mod.callNumber(name, gs.value)
		})
	}, nil
}

// GameState is one position of a scripted game.
type GameState struct {
	game   *Game
	hash   cas.Hash
	value  starlark.Value
	agents int
}

var _ adversarial.State[string] = (*GameState)(nil)

func (s *GameState) Hash() cas.Hash { return s.hash }

func (s *GameState) String() string { return s.value.String() }

func (s *GameState) NumAgents() int { return s.agents }

func (s *GameState) LegalActions(agent int) ([]string, error) {
	name := s.game.funcs.LegalActions
	ret, err := s.game.mod.call(name, s.value, starlark.MakeInt(agent))
	if err != nil {
		return nil, err
	}
	var out []string
	err = iterate(name, ret, func(_ int, item starlark.Value) error {
		a, err := actionName(name, item)
		if err != nil {
			return err
		}
		out = append(out, a)
		return nil
	})
	return out, err
}

func (s *GameState) Successor(agent int, action string) (adversarial.State[string], error) {
	v, err := s.game.mod.call(s.game.funcs.Successor, s.value, starlark.MakeInt(agent), starlark.String(action))
	if err != nil {
		return nil, err
	}
	h, err := s.game.mod.intern(v)
	if err != nil {
		return nil, fmt.Errorf("successor state: %w", err)
	}
	// Equal content may come back as a different value; keep the interned one.
	stored, err := s.game.mod.State(h)
	if err != nil {
		return nil, err
	}
	return &GameState{game: s.game, hash: h, value: stored, agents: s.agents}, nil
}

func (s *GameState) IsWin() (bool, error) {
	return s.game.mod.callBool(s.game.funcs.IsWin, s.value)
}

func (s *GameState) IsLose() (bool, error) {
	return s.game.mod.callBool(s.game.funcs.IsLose, s.value)
}
