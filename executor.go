// Copyright 2024 The langid Authors.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//    http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package langid

import (
	"context"
	"runtime"

	"golang.org/x/sync/errgroup"
	"golang.org/x/sync/semaphore"
)

// Executor runs a batch of independent units of work, one per candidate
// language's model load and score (spec.md §8 concurrency model),
// bounding how many run at once so a large candidate set doesn't open
// hundreds of mmap'd model files simultaneously.
type Executor interface {
	// Run invokes fn once per index in [0, n). It returns the first
	// non-nil error any fn returns, after waiting for the rest to
	// finish or be canceled.
	Run(ctx context.Context, n int, fn func(ctx context.Context, i int) error) error
}

// boundedExecutor runs work across a worker pool bounded by maxConcurrency,
// grounded on the same errgroup+semaphore pairing the teacher uses to
// fan work out across shards: a semaphore throttles how many goroutines
// run at once, an errgroup collects the first error and cancels the rest.
type boundedExecutor struct {
	maxConcurrency int64
}

// NewExecutor returns an Executor that runs up to maxConcurrency units of
// work at once. maxConcurrency <= 0 defaults to GOMAXPROCS.
func NewExecutor(maxConcurrency int) Executor {
	if maxConcurrency <= 0 {
		maxConcurrency = runtime.GOMAXPROCS(0)
	}
	return &boundedExecutor{maxConcurrency: int64(maxConcurrency)}
}

func (e *boundedExecutor) Run(ctx context.Context, n int, fn func(ctx context.Context, i int) error) error {
	if n == 0 {
		return nil
	}
	sem := semaphore.NewWeighted(e.maxConcurrency)
	g, ctx := errgroup.WithContext(ctx)

	for i := 0; i < n; i++ {
		i := i
		if err := sem.Acquire(ctx, 1); err != nil {
			if werr := g.Wait(); werr != nil {
				return werr
			}
			return err
		}
		g.Go(func() error {
			defer sem.Release(1)
			return fn(ctx, i)
		})
	}

	return g.Wait()
}

// synchronousExecutor runs work sequentially on the calling goroutine,
// used by tests that need deterministic ordering of model loads and
// error propagation.
type synchronousExecutor struct{}

// NewSynchronousExecutor returns an Executor that runs every unit of work
// in order on the calling goroutine.
func NewSynchronousExecutor() Executor { return synchronousExecutor{} }

func (synchronousExecutor) Run(ctx context.Context, n int, fn func(ctx context.Context, i int) error) error {
	for i := 0; i < n; i++ {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := fn(ctx, i); err != nil {
			return err
		}
	}
	return nil
}
