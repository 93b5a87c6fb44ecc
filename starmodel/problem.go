package starmodel

import (
	"fmt"

	"go.starlark.net/starlark"

	"github.com/timewinder-dev/seeker/cas"
	"github.com/timewinder-dev/seeker/search"
)

// ProblemFuncs names the model functions backing a search problem.
type ProblemFuncs struct {
	Start         string
	IsGoal        string
	Successors    string
	CostOfActions string // Optional
}

func DefaultProblemFuncs() ProblemFuncs {
	return ProblemFuncs{
		Start:         "start",
		IsGoal:        "is_goal",
		Successors:    "successors",
		CostOfActions: "cost_of_actions",
	}
}

// Problem is a search problem defined by a model file. States are the
// hashes of the interned Starlark values.
type Problem struct {
	mod   *Module
	funcs ProblemFuncs
	start cas.Hash
}

var _ search.Problem[cas.Hash, string] = (*Problem)(nil)

func (m *Module) Problem(funcs ProblemFuncs) (*Problem, error) {
	for _, name := range []string{funcs.Start, funcs.IsGoal, funcs.Successors} {
		if !m.Has(name) {
			return nil, fmt.Errorf("%w: %s", ErrMissingFunction, name)
		}
	}
	v, err := m.call(funcs.Start)
	if err != nil {
		return nil, err
	}
	start, err := m.intern(v)
	if err != nil {
		return nil, fmt.Errorf("start state: %w", err)
	}
	return &Problem{mod: m, funcs: funcs, start: start}, nil
}

func (p *Problem) Module() *Module { return p.mod }

func (p *Problem) StartState() cas.Hash { return p.start }

func (p *Problem) IsGoal(h cas.Hash) (bool, error) {
	v, err := p.mod.State(h)
	if err != nil {
		return false, err
	}
	return p.mod.callBool(p.funcs.IsGoal, v)
}

func (p *Problem) Successors(h cas.Hash) ([]search.Successor[cas.Hash, string], error) {
	v, err := p.mod.State(h)
	if err != nil {
		return nil, err
	}
	ret, err := p.mod.call(p.funcs.Successors, v)
	if err != nil {
		return nil, err
	}
	var out []search.Successor[cas.Hash, string]
	err = iterate(p.funcs.Successors, ret, func(i int, item starlark.Value) error {
		triple, ok := item.(starlark.Tuple)
		if !ok || triple.Len() != 3 {
			return fmt.Errorf("%w: %s item %d is %s, want (state, action, cost)",
				ErrBadReturn, p.funcs.Successors, i, item.String())
		}
		next, err := p.mod.intern(triple[0])
		if err != nil {
			return fmt.Errorf("successor %d: %w", i, err)
		}
		cost, ok := starlark.AsFloat(triple[2])
		if !ok {
			return fmt.Errorf("%w: %s item %d cost is %s", ErrBadReturn, p.funcs.Successors, i, triple[2].Type())
		}
		action, err := actionName(p.funcs.Successors, triple[1])
		if err != nil {
			return err
		}
		out = append(out, search.Successor[cas.Hash, string]{
			State:  next,
			Action: action,
			Cost:   cost,
		})
		return nil
	})
	return out, err
}

// CostOfActions calls the model's cost function when it defines one and
// otherwise replays the actions from the start state, summing step costs.
func (p *Problem) CostOfActions(actions []string) (float64, error) {
	if p.funcs.CostOfActions != "" && p.mod.Has(p.funcs.CostOfActions) {
		return p.mod.callNumber(p.funcs.CostOfActions, actionList(actions))
	}
	state := p.start
	total := 0.0
	for i, a := range actions {
		succs, err := p.Successors(state)
		if err != nil {
			return 0, err
		}
		found := false
		for _, s := range succs {
			if s.Action == a {
				state = s.State
				total += s.Cost
				found = true
				break
			}
		}
		if !found {
			return 0, fmt.Errorf("action %d (%s) is not legal", i, a)
		}
	}
	return total, nil
}

// Heuristic wraps the model function name as an A* heuristic. Estimates are
// memoized per state.
func (p *Problem) Heuristic(name string, cacheSize int) (search.Heuristic[cas.Hash, string], error) {
	if name == "" {
		return search.NullHeuristic[cas.Hash, string], nil
	}
	if !p.mod.Has(name) {
		return nil, fmt.Errorf("%w: heuristic %s", ErrMissingFunction, name)
	}
	cache := cas.NewLRUCache[float64](cacheSize)
	return func(h cas.Hash, _ search.Problem[cas.Hash, string]) (float64, error) {
		return cache.GetOrCompute(h, func() (float64, error) {
			v, err := p.mod.State(h)
			if err != nil {
				return 0, err
			}
			return p.mod.callNumber(name, v)
		})
	}, nil
}

// Describe renders a state for reports.
func (p *Problem) Describe(h cas.Hash) string {
	v, err := p.mod.State(h)
	if err != nil {
		return h.String()
	}
	return v.String()
}
