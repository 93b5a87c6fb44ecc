package model

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/timewinder-dev/seeker/adversarial"
	"github.com/timewinder-dev/seeker/search"
	"github.com/timewinder-dev/seeker/starmodel"
)

const (
	KindSearch = "search"
	KindGame   = "game"
)

var ErrInvalidSpec = errors.New("invalid run spec")

// Spec is a run spec: which model to load, what to run on it and what the
// run is expected to produce.
type Spec struct {
	Model     ModelSpec     `toml:"model"`
	Search    SearchSpec    `toml:"search"`
	Game      GameSpec      `toml:"game"`
	Functions FunctionsSpec `toml:"functions"`
	Expect    Expectations  `toml:"expect"`

	// Path of the spec file itself, empty when parsed from a reader.
	Path string `toml:"-"`
}

type ModelSpec struct {
	File string `toml:",omitempty"`
	Kind string `toml:",omitempty"`
}

type SearchSpec struct {
	Algorithm     string `toml:",omitempty"`
	Heuristic     string `toml:",omitempty"`
	MaxExpansions int    `toml:"max_expansions,omitempty"`
}

type GameSpec struct {
	Algorithm  string `toml:",omitempty"`
	Depth      *int   `toml:",omitempty"` // Full rounds; 0 evaluates the root
	Evaluation string `toml:",omitempty"`
	Seed       int64  `toml:",omitempty"`
}

// FunctionsSpec renames the model functions a run calls. Empty fields keep
// the conventional names.
type FunctionsSpec struct {
	Start         string `toml:"start,omitempty"`
	IsGoal        string `toml:"is_goal,omitempty"`
	Successors    string `toml:"successors,omitempty"`
	CostOfActions string `toml:"cost_of_actions,omitempty"`
	NumAgents     string `toml:"num_agents,omitempty"`
	LegalActions  string `toml:"legal_actions,omitempty"`
	Successor     string `toml:"successor,omitempty"`
	IsWin         string `toml:"is_win,omitempty"`
	IsLose        string `toml:"is_lose,omitempty"`
}

// Expectations are optional assertions on the outcome of a run. Unset
// fields are not checked.
type Expectations struct {
	Found  *bool    `toml:"found,omitempty"`
	Cost   *float64 `toml:"cost,omitempty"`
	Length *int     `toml:"length,omitempty"`
	Action *string  `toml:"action,omitempty"`
	Value  *float64 `toml:"value,omitempty"`
}

func parseSpec(f io.Reader) (*Spec, error) {
	var out Spec
	_, err := toml.NewDecoder(f).Decode(&out)
	if err != nil {
		return nil, err
	}
	out.applyDefaults()
	return &out, nil
}

// ParseSpec decodes a spec that has no file of its own; the model file, if
// relative, stays relative to the working directory.
func ParseSpec(r io.Reader) (*Spec, error) {
	s, err := parseSpec(r)
	if err != nil {
		return nil, err
	}
	return s, s.Validate()
}

func LoadSpecFromFile(path string) (*Spec, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	fi, err := f.Stat()
	if err != nil {
		return nil, err
	}
	s, err := parseSpec(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	if s.Model.File == "" {
		parts := strings.Split(fi.Name(), ".")
		parts = parts[:len(parts)-1]
		parts = append(parts, "star")
		s.Model.File = strings.Join(parts, ".")
	}
	filedir := filepath.Dir(path)
	if !filepath.IsAbs(s.Model.File) {
		s.Model.File = filepath.Clean(filepath.Join(filedir, s.Model.File))
	}
	s.Path = path
	return s, s.Validate()
}

func (s *Spec) applyDefaults() {
	if s.Model.Kind == "" {
		s.Model.Kind = KindSearch
	}
	if s.Search.Algorithm == "" {
		s.Search.Algorithm = search.AStarSearch.String()
	}
	if s.Game.Algorithm == "" {
		s.Game.Algorithm = adversarial.AlphaBetaSearch.String()
	}
	if s.Game.Depth == nil {
		depth := 2
		s.Game.Depth = &depth
	}
	if s.Game.Evaluation == "" {
		s.Game.Evaluation = "evaluate"
	}
}

// Validate checks the fields that can be checked without loading the model.
func (s *Spec) Validate() error {
	switch s.Model.Kind {
	case KindSearch:
		if _, err := search.ParseAlgorithm(s.Search.Algorithm); err != nil {
			return fmt.Errorf("%w: %w", ErrInvalidSpec, err)
		}
		if s.Search.MaxExpansions < 0 {
			return fmt.Errorf("%w: max_expansions %d", ErrInvalidSpec, s.Search.MaxExpansions)
		}
	case KindGame:
		if _, err := adversarial.ParseAlgorithm(s.Game.Algorithm); err != nil {
			return fmt.Errorf("%w: %w", ErrInvalidSpec, err)
		}
		if s.Game.Depth == nil || *s.Game.Depth < 0 {
			return fmt.Errorf("%w: depth must be set and not negative", ErrInvalidSpec)
		}
	default:
		return fmt.Errorf("%w: unknown kind %q", ErrInvalidSpec, s.Model.Kind)
	}
	return nil
}

// Name is the spec file's base name without extension.
func (s *Spec) Name() string {
	p := s.Path
	if p == "" {
		p = s.Model.File
	}
	base := filepath.Base(p)
	return strings.TrimSuffix(base, filepath.Ext(base))
}

// AlgorithmName is the algorithm the spec's kind will run.
func (s *Spec) AlgorithmName() string {
	if s.Model.Kind == KindGame {
		return s.Game.Algorithm
	}
	return s.Search.Algorithm
}

func (f FunctionsSpec) problemFuncs() starmodel.ProblemFuncs {
	out := starmodel.DefaultProblemFuncs()
	override(&out.Start, f.Start)
	override(&out.IsGoal, f.IsGoal)
	override(&out.Successors, f.Successors)
	override(&out.CostOfActions, f.CostOfActions)
	return out
}

func (f FunctionsSpec) gameFuncs() starmodel.GameFuncs {
	out := starmodel.DefaultGameFuncs()
	override(&out.Start, f.Start)
	override(&out.NumAgents, f.NumAgents)
	override(&out.LegalActions, f.LegalActions)
	override(&out.Successor, f.Successor)
	override(&out.IsWin, f.IsWin)
	override(&out.IsLose, f.IsLose)
	return out
}

func override(dst *string, v string) {
	if v != "" {
		*dst = v
	}
}

// BuildExecutor loads the model and prepares a run.
func (s *Spec) BuildExecutor() (*Executor, error) {
	mod, err := starmodel.Load(s.Model.File)
	if err != nil {
		return nil, err
	}
	return NewExecutor(s, mod), nil
}
