// Package starmodel loads state-space models and games written in Starlark
// and adapts them to the search and adversarial interfaces.
//
// Scripted states are interned in a content-addressed store; the search
// engines only ever see their cas.Hash.
package starmodel

import (
	"errors"
	"fmt"
	"os"

	"github.com/rs/zerolog/log"
	"go.starlark.net/starlark"
	"go.starlark.net/syntax"

	"github.com/timewinder-dev/seeker/cas"
)

var (
	ErrMissingFunction = errors.New("function not defined by model")
	ErrBadReturn       = errors.New("unexpected return value")
	ErrUnknownState    = errors.New("state not interned by this model")
)

// Module is one executed model file. A Module owns a single Starlark thread
// and must not be shared between goroutines.
type Module struct {
	Name    string
	thread  *starlark.Thread
	globals starlark.StringDict
	states  *cas.MemoryCAS[starlark.Value]
}

// Load executes the model file at path.
func Load(path string) (*Module, error) {
	src, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return LoadSource(path, src)
}

// LoadSource executes src as a model named name.
func LoadSource(name string, src any) (*Module, error) {
	thread := &starlark.Thread{
		Name: name,
		Print: func(_ *starlark.Thread, msg string) {
			log.Info().Str("model", name).Msg(msg)
		},
	}
	opts := &syntax.FileOptions{}
	globals, err := starlark.ExecFileOptions(opts, thread, name, src, predeclared())
	if err != nil {
		return nil, fmt.Errorf("executing model %s: %w", name, err)
	}
	globals.Freeze()
	return &Module{
		Name:    name,
		thread:  thread,
		globals: globals,
		states:  cas.NewMemoryCAS[starlark.Value](canonical),
	}, nil
}

// Has reports whether the model defines a callable with the given name.
func (m *Module) Has(name string) bool {
	_, ok := m.globals[name].(starlark.Callable)
	return ok
}

// Functions lists the callables the model defines.
func (m *Module) Functions() []string {
	var out []string
	for _, name := range m.globals.Keys() {
		if _, ok := m.globals[name].(starlark.Callable); ok {
			out = append(out, name)
		}
	}
	return out
}

func (m *Module) call(name string, args ...starlark.Value) (starlark.Value, error) {
	fn, ok := m.globals[name].(starlark.Callable)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrMissingFunction, name)
	}
	v, err := starlark.Call(m.thread, fn, starlark.Tuple(args), nil)
	if err != nil {
		return nil, fmt.Errorf("calling %s: %w", name, err)
	}
	return v, nil
}

// intern freezes v and stores it, returning its content hash.
func (m *Module) intern(v starlark.Value) (cas.Hash, error) {
	v.Freeze()
	return m.states.Put(v)
}

// State returns the Starlark value behind a hash produced by this module.
func (m *Module) State(h cas.Hash) (starlark.Value, error) {
	v, ok := m.states.Get(h)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownState, h)
	}
	return v, nil
}

// StateCount is the number of distinct states seen so far.
func (m *Module) StateCount() int {
	return m.states.Len()
}

func (m *Module) callNumber(name string, args ...starlark.Value) (float64, error) {
	v, err := m.call(name, args...)
	if err != nil {
		return 0, err
	}
	f, ok := starlark.AsFloat(v)
	if !ok {
		return 0, fmt.Errorf("%w: %s returned %s, want a number", ErrBadReturn, name, v.Type())
	}
	return f, nil
}

func (m *Module) callBool(name string, args ...starlark.Value) (bool, error) {
	v, err := m.call(name, args...)
	if err != nil {
		return false, err
	}
	return bool(v.Truth()), nil
}

// actionName unwraps a Starlark action. Actions must be strings so they
// can be handed back to the model unchanged.
func actionName(fn string, v starlark.Value) (string, error) {
	s, ok := v.(starlark.String)
	if !ok {
		return "", fmt.Errorf("%w: %s returned action %s of type %s, want a string", ErrBadReturn, fn, v.String(), v.Type())
	}
	return string(s), nil
}

func actionList(actions []string) *starlark.List {
	vals := make([]starlark.Value, len(actions))
	for i, a := range actions {
		vals[i] = starlark.String(a)
	}
	return starlark.NewList(vals)
}

func iterate(name string, v starlark.Value, each func(i int, item starlark.Value) error) error {
	iter := starlark.Iterate(v)
	if iter == nil {
		return fmt.Errorf("%w: %s returned %s, want a sequence", ErrBadReturn, name, v.Type())
	}
	defer iter.Done()
	var item starlark.Value
	for i := 0; iter.Next(&item); i++ {
		if err := each(i, item); err != nil {
			return err
		}
	}
	return nil
}
