package service

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/openepg/getchannels/internal/logging"
	"github.com/openepg/getchannels/internal/models"
)

// Result is the outcome of one finished task.
type Result struct {
	TaskID string
	Source models.Source
	Count  int
	Err    error
}

// String renders the outcome the way the run log reports it.
func (r Result) String() string {
	if r.Err != nil {
		return fmt.Sprintf("%s FAILED: %v", r.Source.Filename, r.Err)
	}
	return fmt.Sprintf("%s → %d channels", r.Source.Filename, r.Count)
}

// Run executes tasks with at most limit running concurrently and streams
// results in completion order. limit must be at least 1. The returned channel
// is closed once every task has reported; task failures land in Result.Err
// and never stop sibling tasks.
func Run(ctx context.Context, log *logging.Logger, tasks []Task, limit int) <-chan Result {
	results := make(chan Result, len(tasks))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(limit)
	for _, t := range tasks {
		t := t // capture
		g.Go(func() error {
			log.Info("Starting → %s", t.Source().Name)
			count, err := t.Run(ctx)
			results <- Result{TaskID: t.ID(), Source: t.Source(), Count: count, Err: err}
			return nil // Continue with other tasks
		})
	}
	go func() {
		g.Wait()
		close(results)
	}()
	return results
}
