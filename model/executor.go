package model

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/timewinder-dev/seeker/adversarial"
	"github.com/timewinder-dev/seeker/cas"
	"github.com/timewinder-dev/seeker/search"
	"github.com/timewinder-dev/seeker/starmodel"
)

// An Executor is the context and entrypoint for running one spec against
// its loaded model. Executors are not safe for concurrent use.
type Executor struct {
	ID        uuid.UUID
	Spec      *Spec
	Module    *starmodel.Module
	CacheSize int // Per-run memo of heuristic and evaluation values
	Logger    zerolog.Logger
}

func NewExecutor(spec *Spec, mod *starmodel.Module) *Executor {
	id := uuid.New()
	return &Executor{
		ID:        id,
		Spec:      spec,
		Module:    mod,
		CacheSize: 10000,
		Logger: log.With().
			Str("run", id.String()).
			Str("spec", spec.Name()).
			Logger(),
	}
}

// Run executes the spec and checks its expectations. Model errors are
// returned as errors; unmet expectations are Violations in the result.
func (e *Executor) Run(ctx context.Context) (*Result, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	start := time.Now()
	res := &Result{
		RunID:     e.ID.String(),
		Name:      e.Spec.Name(),
		Kind:      e.Spec.Model.Kind,
		Algorithm: e.Spec.AlgorithmName(),
	}
	e.Logger.Debug().Str("kind", res.Kind).Str("algorithm", res.Algorithm).Msg("starting run")

	var err error
	switch e.Spec.Model.Kind {
	case KindSearch:
		err = e.runSearch(res)
	case KindGame:
		err = e.runGame(res)
	default:
		err = fmt.Errorf("%w: unknown kind %q", ErrInvalidSpec, e.Spec.Model.Kind)
	}
	if err != nil {
		return nil, err
	}
	res.Statistics.States = e.Module.StateCount()
	res.Statistics.Duration = time.Since(start)
	res.Violations = e.Spec.Expect.Check(res)
	e.Logger.Info().
		Bool("success", res.Success()).
		Int("states", res.Statistics.States).
		Dur("elapsed", res.Statistics.Duration).
		Msg("run finished")
	return res, nil
}

func (e *Executor) runSearch(res *Result) error {
	alg, err := search.ParseAlgorithm(e.Spec.Search.Algorithm)
	if err != nil {
		return err
	}
	p, err := e.Module.Problem(e.Spec.Functions.problemFuncs())
	if err != nil {
		return err
	}
	var h search.Heuristic[cas.Hash, string] = search.NullHeuristic[cas.Hash, string]
	if alg == search.AStarSearch {
		h, err = p.Heuristic(e.Spec.Search.Heuristic, e.CacheSize)
		if err != nil {
			return err
		}
	}
	opts := []search.Option{search.WithLogger(e.Logger)}
	if e.Spec.Search.MaxExpansions > 0 {
		opts = append(opts, search.WithMaxExpansions(e.Spec.Search.MaxExpansions))
	}

	out, err := search.Solve[cas.Hash, string](p, alg, h, opts...)
	if errors.Is(err, search.ErrExpansionLimit) && out != nil {
		e.Logger.Warn().Int("limit", e.Spec.Search.MaxExpansions).Msg("search stopped at the expansion limit")
		res.Truncated = true
		err = nil
	}
	if err != nil {
		return err
	}
	res.Found = out.Found
	res.Actions = out.Actions
	res.Cost = out.Cost
	res.Statistics.Expanded = out.Statistics.Expanded
	res.Statistics.Generated = out.Statistics.Generated
	res.Statistics.Duplicates = out.Statistics.Duplicates
	res.Statistics.MaxFrontier = out.Statistics.MaxFrontier
	return nil
}

func (e *Executor) runGame(res *Result) error {
	alg, err := adversarial.ParseAlgorithm(e.Spec.Game.Algorithm)
	if err != nil {
		return err
	}
	g, err := e.Module.Game(e.Spec.Functions.gameFuncs())
	if err != nil {
		return err
	}
	eval, err := g.Evaluation(e.Spec.Game.Evaluation, e.CacheSize)
	if err != nil {
		return err
	}
	root, err := g.Root()
	if err != nil {
		return err
	}
	rng := rand.New(rand.NewSource(e.Spec.Game.Seed))
	decider, err := adversarial.NewDecider(alg, *e.Spec.Game.Depth, eval, rng,
		adversarial.WithLogger[string](e.Logger))
	if err != nil {
		return err
	}
	d, err := decider.Decide(root)
	if err != nil {
		return err
	}
	res.Found = d.HasAction
	if d.HasAction {
		res.Action = d.Action
		res.Actions = []string{d.Action}
	}
	res.Value = d.Value
	res.Statistics.Nodes = d.Statistics.Nodes
	res.Statistics.Evaluations = d.Statistics.Evaluations
	res.Statistics.Cutoffs = d.Statistics.Cutoffs
	res.Statistics.MaxDepth = d.Statistics.MaxDepth
	return nil
}
