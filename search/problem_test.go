package search

import (
	"fmt"
	"math"
)

type edge struct {
	to     string
	action string
	cost   float64
}

// graph is a small explicit digraph used as a Problem in tests.
type graph struct {
	start string
	goals map[string]bool
	edges map[string][]edge
}

func newGraph(start string, goals ...string) *graph {
	g := &graph{start: start, goals: map[string]bool{}, edges: map[string][]edge{}}
	for _, goal := range goals {
		g.goals[goal] = true
	}
	return g
}

func (g *graph) link(from, to string, cost float64) *graph {
	g.edges[from] = append(g.edges[from], edge{to: to, action: from + "->" + to, cost: cost})
	return g
}

func (g *graph) StartState() string { return g.start }

func (g *graph) IsGoal(s string) (bool, error) { return g.goals[s], nil }

func (g *graph) Successors(s string) ([]Successor[string, string], error) {
	var out []Successor[string, string]
	for _, e := range g.edges[s] {
		out = append(out, Successor[string, string]{State: e.to, Action: e.action, Cost: e.cost})
	}
	return out, nil
}

func (g *graph) CostOfActions(actions []string) (float64, error) {
	state := g.start
	total := 0.0
	for _, a := range actions {
		found := false
		for _, e := range g.edges[state] {
			if e.action == a {
				state = e.to
				total += e.cost
				found = true
				break
			}
		}
		if !found {
			return 0, fmt.Errorf("illegal action %q from %q", a, state)
		}
	}
	return total, nil
}

// replay follows actions from the start and returns the final state.
func (g *graph) replay(actions []string) (string, error) {
	state := g.start
	for _, a := range actions {
		next := ""
		for _, e := range g.edges[state] {
			if e.action == a {
				next = e.to
				break
			}
		}
		if next == "" {
			return "", fmt.Errorf("illegal action %q from %q", a, state)
		}
		state = next
	}
	return state, nil
}

type cell struct{ x, y int }

// maze is an open grid with walls; each move costs 1.
type maze struct {
	width, height int
	walls         map[cell]bool
	start, goal   cell
}

var moves = []struct {
	name   string
	dx, dy int
}{
	{"north", 0, 1}, {"south", 0, -1}, {"east", 1, 0}, {"west", -1, 0},
}

func (m *maze) StartState() cell { return m.start }

func (m *maze) IsGoal(c cell) (bool, error) { return c == m.goal, nil }

func (m *maze) Successors(c cell) ([]Successor[cell, string], error) {
	var out []Successor[cell, string]
	for _, mv := range moves {
		next := cell{c.x + mv.dx, c.y + mv.dy}
		if next.x < 0 || next.y < 0 || next.x >= m.width || next.y >= m.height || m.walls[next] {
			continue
		}
		out = append(out, Successor[cell, string]{State: next, Action: mv.name, Cost: 1})
	}
	return out, nil
}

func (m *maze) CostOfActions(actions []string) (float64, error) {
	return float64(len(actions)), nil
}

func manhattan(c cell, p Problem[cell, string]) (float64, error) {
	goal := p.(*maze).goal
	return math.Abs(float64(c.x-goal.x)) + math.Abs(float64(c.y-goal.y)), nil
}

func newMaze() *maze {
	m := &maze{width: 7, height: 5, walls: map[cell]bool{}, start: cell{0, 0}, goal: cell{6, 4}}
	for y := 0; y < 4; y++ {
		m.walls[cell{3, y}] = true
	}
	return m
}
