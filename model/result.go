package model

import "time"

// Result is the outcome of one run.
//
// For searches Actions is the plan and Cost its total cost. For games
// Action is agent 0's chosen move, Value the root's backed-up value and
// Found reports whether the root had a move to make.
type Result struct {
	RunID     string
	Name      string
	Kind      string
	Algorithm string

	Found     bool
	Truncated bool // Search stopped at max_expansions
	Actions   []string
	Cost      float64
	Action    string
	Value     float64

	Statistics Statistics
	Violations []Violation
}

func (r *Result) Success() bool {
	return len(r.Violations) == 0
}

// Statistics merges the counters of both engines; the ones that do not
// apply to a run stay zero.
type Statistics struct {
	States int // Distinct model states interned

	Expanded    int
	Generated   int
	Duplicates  int
	MaxFrontier int

	Nodes       int
	Evaluations int
	Cutoffs     int
	MaxDepth    int

	Duration time.Duration
}

// Violation is an expectation the run did not meet.
type Violation struct {
	Field string
	Want  string
	Got   string
}

func (v Violation) String() string {
	return "expected " + v.Field + " " + v.Want + ", got " + v.Got
}
