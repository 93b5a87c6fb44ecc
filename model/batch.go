package model

import (
	"context"
	"runtime"
	"sync"
	"sync/atomic"

	"github.com/gookit/color"
	"github.com/rs/zerolog/log"
)

// Batch runs independent specs on a fixed pool of workers. Every job loads
// its own model, so workers share nothing but the queue.
type Batch struct {
	Workers  int
	Reporter Reporter

	// Override, when set, adjusts each spec after it is loaded.
	Override func(*Spec)

	completed int64
}

// NewBatch creates a batch runner. workers <= 0 means one per CPU.
func NewBatch(workers int, reporter Reporter) *Batch {
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	if reporter == nil {
		reporter = &SilentReporter{}
	}
	return &Batch{Workers: workers, Reporter: reporter}
}

// Run executes every spec and returns one outcome per path, in order.
// After ctx is cancelled queued jobs are not started and report ctx's error.
func (b *Batch) Run(ctx context.Context, paths []string) []Outcome {
	outcomes := make([]Outcome, len(paths))
	jobs := make(chan Job, b.Workers*2)
	atomic.StoreInt64(&b.completed, 0)

	var wg sync.WaitGroup
	for i := 0; i < b.Workers; i++ {
		wg.Add(1)
		go b.worker(ctx, i, jobs, outcomes, &wg)
	}

	for i, p := range paths {
		jobs <- Job{Index: i, Path: p}
	}
	close(jobs)
	wg.Wait()
	return outcomes
}

// worker writes only its own jobs' slots of outcomes.
func (b *Batch) worker(ctx context.Context, workerID int, jobs <-chan Job, outcomes []Outcome, wg *sync.WaitGroup) {
	defer wg.Done()
	for job := range jobs {
		o := Outcome{Path: job.Path}
		if err := ctx.Err(); err != nil {
			o.Err = err
		} else {
			o.Result, o.Err = b.runOne(ctx, job.Path)
		}
		outcomes[job.Index] = o

		n := atomic.AddInt64(&b.completed, 1)
		if o.Err != nil {
			log.Error().Err(o.Err).Int("worker", workerID).Str("spec", job.Path).Msg("run failed")
		}
		b.Reporter.Printf("%s [%d] %s\n", progressMark(o), n, job.Path)
	}
}

func (b *Batch) runOne(ctx context.Context, path string) (*Result, error) {
	spec, err := LoadSpecFromFile(path)
	if err != nil {
		return nil, err
	}
	if b.Override != nil {
		b.Override(spec)
		if err := spec.Validate(); err != nil {
			return nil, err
		}
	}
	exec, err := spec.BuildExecutor()
	if err != nil {
		return nil, err
	}
	return exec.Run(ctx)
}

func progressMark(o Outcome) string {
	if o.Success() {
		return color.Green.Sprint("✓")
	}
	return color.Red.Sprint("✗")
}
