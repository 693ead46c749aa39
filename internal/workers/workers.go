package workers

import "context"

// Workers aggregates background workers so the server can start them with a
// single call.
type Workers struct {
	workers []Worker
}

// NewWorkers constructs a Workers aggregate from the given workers.
func NewWorkers(workers ...Worker) *Workers {
	return &Workers{workers: workers}
}

// Run launches every registered worker in its own goroutine and returns
// immediately. Workers stop when ctx is cancelled.
func (w *Workers) Run(ctx context.Context) {
	for _, worker := range w.workers {
		go worker.Run(ctx)
	}
}
