// Package workerpool runs a bounded set of independent jobs to completion and
// collects their results. Unlike a long-lived background queue, a Pool has a
// known, finite job list up front (one job per academic year) and callers
// block until every job has finished — there is no retry: each job is a pure
// function of its own state and reruns are never attempted automatically.
package workerpool

import (
	"context"
	"sync"

	"go.uber.org/zap"
)

// Job is one unit of work submitted to a Pool. Run must not mutate state
// shared with any other Job — the Pool guarantees concurrent execution but
// not serialization, so isolation is the caller's responsibility.
type Job struct {
	Name string
	Run  func(ctx context.Context) (any, error)
}

// Result pairs a Job's name with its outcome.
type Result struct {
	Name  string
	Value any
	Err   error
}

// Config governs pool concurrency.
type Config struct {
	Workers int
	Logger  *zap.Logger
}

// Pool runs a fixed batch of jobs with bounded concurrency.
type Pool struct {
	workers int
	logger  *zap.Logger
}

// New builds a Pool. Workers <= 0 defaults to 1.
func New(cfg Config) *Pool {
	if cfg.Workers <= 0 {
		cfg.Workers = 1
	}
	if cfg.Logger == nil {
		cfg.Logger = zap.NewNop()
	}
	return &Pool{workers: cfg.Workers, logger: cfg.Logger}
}

// Run executes every job, at most p.workers concurrently, and returns one
// Result per job in submission order. It blocks until every started job has
// finished; once ctx is cancelled, jobs not yet started are skipped and
// return ctx.Err() as their error.
func (p *Pool) Run(ctx context.Context, jobs []Job) []Result {
	results := make([]Result, len(jobs))
	sem := make(chan struct{}, p.workers)
	var wg sync.WaitGroup

	for i, job := range jobs {
		i, job := i, job
		select {
		case <-ctx.Done():
			results[i] = Result{Name: job.Name, Err: ctx.Err()}
			continue
		default:
		}

		wg.Add(1)
		sem <- struct{}{}
		go func() {
			defer wg.Done()
			defer func() { <-sem }()

			value, err := job.Run(ctx)
			if err != nil {
				p.logger.Warn("workerpool job failed", zap.String("job", job.Name), zap.Error(err))
			} else {
				p.logger.Debug("workerpool job completed", zap.String("job", job.Name))
			}
			results[i] = Result{Name: job.Name, Value: value, Err: err}
		}()
	}

	wg.Wait()
	return results
}
