package model

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/timewinder-dev/seeker/starmodel"
)

func runSpec(t *testing.T, spec, star string) *Result {
	t.Helper()
	path := writeSpec(t, t.TempDir(), "case", spec, star)
	s, err := LoadSpecFromFile(path)
	require.NoError(t, err)
	exec, err := s.BuildExecutor()
	require.NoError(t, err)
	res, err := exec.Run(context.Background())
	require.NoError(t, err)
	return res
}

func TestSearchRuns(t *testing.T) {
	for _, alg := range []string{"dfs", "bfs", "ucs", "astar"} {
		t.Run(alg, func(t *testing.T) {
			res := runSpec(t, `
[search]
algorithm = "`+alg+`"
heuristic = "remaining"

[expect]
found = true
cost = 6.0
length = 3
`, corridorModel)
			assert.True(t, res.Success(), "%v", res.Violations)
			assert.Equal(t, []string{"fwd", "fwd", "fwd"}, res.Actions)
			assert.Equal(t, alg, res.Algorithm)
			assert.Equal(t, 4, res.Statistics.States)
			assert.NotEmpty(t, res.RunID)
		})
	}
}

func TestSearchViolations(t *testing.T) {
	res := runSpec(t, `
[expect]
found = true
cost = 5.0
length = 4
`, corridorModel)
	assert.False(t, res.Success())
	require.Len(t, res.Violations, 2)
	assert.Equal(t, "cost", res.Violations[0].Field)
	assert.Equal(t, "6", res.Violations[0].Got)
	assert.Equal(t, "length", res.Violations[1].Field)
}

func TestSearchUnreachable(t *testing.T) {
	res := runSpec(t, `
[search]
algorithm = "bfs"

[expect]
found = false
length = 0
`, `
def start():
    return 0

def is_goal(s):
    return False

def successors(s):
    return [((s + 1) % 3, "step", 1)]
`)
	assert.True(t, res.Success(), "%v", res.Violations)
	assert.False(t, res.Found)
	assert.Equal(t, 3, res.Statistics.Expanded)
}

func TestSearchExpansionLimit(t *testing.T) {
	res := runSpec(t, `
[search]
algorithm = "bfs"
max_expansions = 2
`, corridorModel)
	assert.True(t, res.Truncated)
	assert.False(t, res.Found)
}

func TestGameRuns(t *testing.T) {
	cases := []struct {
		alg    string
		action string
		value  float64
	}{
		{"minimax", "a", 3},
		{"alphabeta", "a", 3},
		{"expectimax", "b", 5.5},
	}
	for _, tc := range cases {
		t.Run(tc.alg, func(t *testing.T) {
			res := runSpec(t, `
[model]
kind = "game"

[game]
algorithm = "`+tc.alg+`"
depth = 1
`, scenarioGame)
			assert.True(t, res.Found)
			assert.Equal(t, tc.action, res.Action)
			assert.Equal(t, tc.value, res.Value)
			assert.Positive(t, res.Statistics.Evaluations)
		})
	}
}

func TestReflexIsSeeded(t *testing.T) {
	spec := `
[model]
kind = "game"

[game]
algorithm = "reflex"
seed = 7
`
	tied := `
def start():
    return 0

def num_agents(s):
    return 2

def legal_actions(s, agent):
    return ["x", "y", "z"] if s == 0 else []

def successor(s, agent, action):
    return {"x": 1, "y": 2, "z": 3}[action]

def is_win(s):
    return False

def is_lose(s):
    return False

def evaluate(s):
    return 0 if s == 3 else 1
`
	first := runSpec(t, spec, tied)
	second := runSpec(t, spec, tied)
	assert.Contains(t, []string{"x", "y"}, first.Action)
	assert.Equal(t, first.Action, second.Action)
	assert.Equal(t, 1.0, first.Value)
}

func TestModelErrorIsReturned(t *testing.T) {
	path := writeSpec(t, t.TempDir(), "broken", "", `
def start():
    return 0

def is_goal(s):
    return False

def successors(s):
    return [(s + 1, "up", -1)]
`)
	s, err := LoadSpecFromFile(path)
	require.NoError(t, err)
	exec, err := s.BuildExecutor()
	require.NoError(t, err)
	_, err = exec.Run(context.Background())
	assert.Error(t, err)
}

func TestMissingHeuristic(t *testing.T) {
	path := writeSpec(t, t.TempDir(), "nohint", "[search]\nheuristic = \"nope\"\n", corridorModel)
	s, err := LoadSpecFromFile(path)
	require.NoError(t, err)
	exec, err := s.BuildExecutor()
	require.NoError(t, err)
	_, err = exec.Run(context.Background())
	assert.ErrorIs(t, err, starmodel.ErrMissingFunction)
}

func TestRunHonoursCancelledContext(t *testing.T) {
	path := writeSpec(t, t.TempDir(), "corridor", "", corridorModel)
	s, err := LoadSpecFromFile(path)
	require.NoError(t, err)
	exec, err := s.BuildExecutor()
	require.NoError(t, err)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = exec.Run(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestGameDepthZeroEvaluatesRoot(t *testing.T) {
	res := runSpec(t, `
[model]
kind = "game"

[game]
algorithm = "minimax"
depth = 0

[expect]
found = false
value = 0.0
`, scenarioGame)
	assert.True(t, res.Success(), "%v", res.Violations)
	assert.Equal(t, 1, res.Statistics.Evaluations)
}
