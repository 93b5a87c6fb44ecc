package model

// Job is one spec file queued for a batch worker.
type Job struct {
	Index int // Position in the batch, preserved in the outcomes
	Path  string
}

// Outcome is what a worker produced for a Job. Err is set when the spec
// could not be loaded or the model failed; expectation failures live in
// Result.Violations.
type Outcome struct {
	Path   string
	Result *Result
	Err    error
}

func (o Outcome) Success() bool {
	return o.Err == nil && o.Result != nil && o.Result.Success()
}
