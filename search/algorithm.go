package search

import (
	"fmt"
	"strings"
)

type Algorithm int

const (
	DepthFirstSearch Algorithm = iota
	BreadthFirstSearch
	UniformCostSearch
	AStarSearch
)

func (a Algorithm) String() string {
	switch a {
	case DepthFirstSearch:
		return "dfs"
	case BreadthFirstSearch:
		return "bfs"
	case UniformCostSearch:
		return "ucs"
	case AStarSearch:
		return "astar"
	}
	return fmt.Sprintf("Algorithm(%d)", int(a))
}

// ParseAlgorithm accepts the short names printed by String as well as a few
// long forms.
func ParseAlgorithm(name string) (Algorithm, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "dfs", "depth-first", "depthfirst":
		return DepthFirstSearch, nil
	case "bfs", "breadth-first", "breadthfirst":
		return BreadthFirstSearch, nil
	case "ucs", "uniform-cost", "uniformcost":
		return UniformCostSearch, nil
	case "astar", "a*", "a-star":
		return AStarSearch, nil
	}
	return 0, fmt.Errorf("unknown search algorithm %q", name)
}
