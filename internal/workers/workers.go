package workers

import (
	"context"
	"sync"
)

// Workers aggregates background workers and runs them concurrently.
type Workers struct {
	workers []Worker
}

// NewWorkers returns an aggregate over the given workers.
func NewWorkers(workers ...Worker) *Workers {
	return &Workers{workers: workers}
}

// Run starts every worker in its own goroutine and blocks until all of
// them return, which happens when the context is cancelled.
func (w *Workers) Run(ctx context.Context) {
	var wg sync.WaitGroup
	for _, worker := range w.workers {
		wg.Add(1)
		go func(worker Worker) {
			defer wg.Done()
			worker.Run(ctx)
		}(worker)
	}
	wg.Wait()
}
