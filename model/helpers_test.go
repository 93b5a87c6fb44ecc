package model

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

const corridorModel = `
def start():
    return 0

def is_goal(s):
    return s == 3

def successors(s):
    out = []
    if s < 3:
        out.append((s + 1, "fwd", 2))
    if s > 0:
        out.append((s - 1, "back", 2))
    return out

def remaining(s):
    return 2 * (3 - s)
`

const scenarioGame = `
def start():
    return ""

def num_agents(s):
    return 2

def legal_actions(s, agent):
    if len(s) >= 2:
        return []
    return ["a", "b"]

def successor(s, agent, action):
    return s + action

def is_win(s):
    return False

def is_lose(s):
    return False

SCORES = {"aa": 3, "ab": 7, "ba": 2, "bb": 9}

def evaluate(s):
    return SCORES.get(s, 0)
`

// writeSpec writes a spec and its model into dir and returns the spec path.
func writeSpec(t *testing.T, dir, name, spec, star string) string {
	t.Helper()
	path := filepath.Join(dir, name+".toml")
	require.NoError(t, os.WriteFile(path, []byte(spec), 0o644))
	if star != "" {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name+".star"), []byte(star), 0o644))
	}
	return path
}
