package adversarial

import (
	"fmt"
	"math/rand"
	"time"
)

// Reflex looks a single move ahead: it scores the successor of every legal
// action of agent 0 and picks uniformly at random among the best.
type Reflex[A any] struct {
	evaluate Evaluation[A]
	rng      *rand.Rand
}

// NewReflex builds a reflex decider. A nil rng is seeded from the clock.
func NewReflex[A any](evaluate Evaluation[A], rng *rand.Rand) *Reflex[A] {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &Reflex[A]{evaluate: evaluate, rng: rng}
}

func (r *Reflex[A]) Decide(root State[A]) (*Decision[A], error) {
	began := time.Now()
	d := &Decision[A]{}
	d.Statistics.Nodes = 1

	actions, err := root.LegalActions(0)
	if err != nil {
		return nil, fmt.Errorf("legal actions of agent 0: %w", err)
	}
	if len(actions) == 0 {
		v, err := r.evaluate(root)
		if err != nil {
			return nil, fmt.Errorf("evaluation: %w", err)
		}
		d.Value = v
		d.Statistics.Evaluations = 1
		d.Statistics.Duration = time.Since(began)
		return d, nil
	}

	var bestIdx []int
	for i, a := range actions {
		next, err := root.Successor(0, a)
		if err != nil {
			return nil, fmt.Errorf("successor of agent 0: %w", err)
		}
		d.Statistics.Nodes++
		d.Statistics.MaxDepth = 1
		d.Statistics.Evaluations++
		v, err := r.evaluate(next)
		if err != nil {
			return nil, fmt.Errorf("evaluation: %w", err)
		}
		switch {
		case len(bestIdx) == 0 || v > d.Value:
			d.Value = v
			bestIdx = append(bestIdx[:0], i)
		case v == d.Value:
			bestIdx = append(bestIdx, i)
		}
	}
	d.Action = actions[bestIdx[r.rng.Intn(len(bestIdx))]]
	d.HasAction = true
	d.Statistics.Duration = time.Since(began)
	return d, nil
}
