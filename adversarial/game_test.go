package adversarial

import (
	"errors"
	"fmt"
	"hash/fnv"
)

// tree is an explicit game tree. Turn order is implied by depth; the tree
// ignores the agent index apart from checking it.
type tree struct {
	id      string
	agents  int
	value   float64
	win     bool
	lose    bool
	actions []string
	kids    []*tree
}

func leaf(id string, value float64) *tree {
	return &tree{id: id, value: value}
}

func node(id string, kids ...*tree) *tree {
	t := &tree{id: id}
	for i, k := range kids {
		t.actions = append(t.actions, fmt.Sprintf("%s%d", id, i))
		t.kids = append(t.kids, k)
	}
	return t
}

// withAgents sets the agent count on every node of the tree.
func (t *tree) withAgents(n int) *tree {
	t.agents = n
	for _, k := range t.kids {
		k.withAgents(n)
	}
	return t
}

func (t *tree) NumAgents() int                        { return t.agents }
func (t *tree) LegalActions(agent int) ([]string, error) { return t.actions, nil }
func (t *tree) IsWin() (bool, error)                  { return t.win, nil }
func (t *tree) IsLose() (bool, error)                 { return t.lose, nil }

func (t *tree) Successor(agent int, action string) (State[string], error) {
	for i, a := range t.actions {
		if a == action {
			return t.kids[i], nil
		}
	}
	return nil, fmt.Errorf("no action %q at %s", action, t.id)
}

func treeValue(s State[string]) (float64, error) {
	return s.(*tree).value, nil
}

// generated is an implicit uniform game tree whose leaf values come from a
// hash of the path, giving plenty of ties among siblings.
type generated struct {
	agents    int
	branching []int // Per agent
	seed      string
	path      string
}

func (g generated) NumAgents() int { return g.agents }

func (g generated) LegalActions(agent int) ([]string, error) {
	if agent >= g.agents {
		return nil, errors.New("agent out of range")
	}
	out := make([]string, g.branching[agent])
	for i := range out {
		out[i] = fmt.Sprintf("%d.%d", agent, i)
	}
	return out, nil
}

func (g generated) Successor(agent int, action string) (State[string], error) {
	g.path = g.path + "/" + action
	return g, nil
}

func (g generated) hash() uint32 {
	h := fnv.New32a()
	h.Write([]byte(g.seed + g.path))
	return h.Sum32()
}

func (g generated) IsWin() (bool, error)  { return g.path != "" && g.hash()%29 == 0, nil }
func (g generated) IsLose() (bool, error) { return g.path != "" && g.hash()%31 == 0, nil }

func generatedValue(s State[string]) (float64, error) {
	return float64(s.(generated).hash() % 20), nil
}
