package adversarial

import (
	"math"

	"gonum.org/v1/gonum/stat"
)

// Window is the alpha-beta search window. It is passed by value so that a
// bound tightened in one branch is never seen by a sibling branch.
type Window struct {
	Alpha float64
	Beta  float64
}

// FullWindow is the window of the root call.
func FullWindow() Window {
	return Window{Alpha: math.Inf(-1), Beta: math.Inf(1)}
}

// ChildFunc evaluates the i-th child of a node under window w.
type ChildFunc func(i int, w Window) (float64, error)

// Combiner decides how the children of a non-maximizing agent combine into
// that agent's value.
type Combiner interface {
	Name() string
	// Fold combines n children, evaluated lazily through child.
	Fold(n int, w Window, child ChildFunc) (value float64, cut bool, err error)
	// Prunes reports whether the maximizer may stop early on a beta cut.
	Prunes() bool
}

// Min assumes every opponent picks the child worst for agent 0.
type Min struct{}

func (Min) Name() string { return "minimax" }
func (Min) Prunes() bool { return false }

func (Min) Fold(n int, w Window, child ChildFunc) (float64, bool, error) {
	v := math.Inf(1)
	for i := 0; i < n; i++ {
		cv, err := child(i, w)
		if err != nil {
			return 0, false, err
		}
		if cv < v {
			v = cv
		}
	}
	return v, false, nil
}

// PrunedMin is Min with alpha-beta pruning. Cuts use strict inequalities so
// that equal-valued siblings are still explored and the chosen root action
// matches plain minimax.
type PrunedMin struct{}

func (PrunedMin) Name() string { return "alphabeta" }
func (PrunedMin) Prunes() bool { return true }

func (PrunedMin) Fold(n int, w Window, child ChildFunc) (float64, bool, error) {
	v := math.Inf(1)
	for i := 0; i < n; i++ {
		cv, err := child(i, w)
		if err != nil {
			return 0, false, err
		}
		if cv < v {
			v = cv
		}
		if v < w.Alpha {
			return v, true, nil
		}
		w.Beta = math.Min(w.Beta, v)
	}
	return v, false, nil
}

// Expectation models opponents that choose uniformly at random among their
// legal actions. Every child is needed, so nothing is pruned.
type Expectation struct{}

func (Expectation) Name() string { return "expectimax" }
func (Expectation) Prunes() bool { return false }

func (Expectation) Fold(n int, w Window, child ChildFunc) (float64, bool, error) {
	values := make([]float64, n)
	for i := range values {
		cv, err := child(i, w)
		if err != nil {
			return 0, false, err
		}
		values[i] = cv
	}
	return stat.Mean(values, nil), false, nil
}
