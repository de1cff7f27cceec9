// Copyright 2026 l3montree GmbH.
// SPDX-License-Identifier: 	AGPL-3.0-or-later

package daemons

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/l3montree-dev/threadline/monitoring"
	"github.com/l3montree-dev/threadline/shared"
	"golang.org/x/sync/errgroup"
)

// JobWorker executes runnable jobs. It polls on a fixed interval and
// additionally wakes up whenever a job gets enqueued on the broker.
type JobWorker struct {
	jobService   shared.JobService
	broker       shared.PubSubBroker
	concurrency  int
	batchSize    int
	pollInterval time.Duration
}

func NewJobWorker(jobService shared.JobService, broker shared.PubSubBroker) *JobWorker {
	concurrency := shared.EnvInt("JOB_WORKER_CONCURRENCY", 4)
	if concurrency < 1 {
		concurrency = 1
	}
	return &JobWorker{
		jobService:   jobService,
		broker:       broker,
		concurrency:  concurrency,
		batchSize:    concurrency * 8,
		pollInterval: 10 * time.Second,
	}
}

func (w *JobWorker) wakeups() <-chan map[string]any {
	if w.broker == nil {
		return nil
	}
	ch, err := w.broker.Subscribe(shared.JobsEnqueued)
	if err != nil {
		// polling alone still drains the queue, just slower
		slog.Warn("could not subscribe to enqueued jobs", "err", err)
		return nil
	}
	return ch
}

// Run blocks until ctx is cancelled.
func (w *JobWorker) Run(ctx context.Context) {
	wake := w.wakeups()
	ticker := time.NewTicker(w.pollInterval)
	defer ticker.Stop()

	slog.Info("job worker started", "concurrency", w.concurrency, "pollInterval", w.pollInterval)
	w.drain(ctx)
	for {
		select {
		case <-ctx.Done():
			slog.Info("job worker stopped")
			return
		case <-ticker.C:
		case msg, ok := <-wake:
			if !ok {
				wake = nil
				continue
			}
			slog.Debug("woken up by enqueued job", "jobID", msg["jobID"])
		}
		w.drain(ctx)
	}
}

// jobs which keep failing to persist stay runnable, this bounds a single pass
const maxBatchesPerPass = 10

// drain reclaims abandoned jobs and executes runnable jobs until none are left.
func (w *JobWorker) drain(ctx context.Context) {
	if n, err := w.jobService.ReclaimStale(); err != nil {
		slog.Error("could not reclaim stale jobs", "err", err)
	} else if n > 0 {
		slog.Info("reclaimed stale jobs", "count", n)
	}
	for i := 0; i < maxBatchesPerPass && ctx.Err() == nil; i++ {
		n := w.runBatch(ctx)
		if n < w.batchSize {
			return
		}
	}
}

// runBatch executes one batch of runnable jobs and returns its size.
func (w *JobWorker) runBatch(ctx context.Context) int {
	jobs, err := w.jobService.ListRunnable(w.batchSize)
	if err != nil {
		slog.Error("could not list runnable jobs", "err", err)
		return 0
	}
	monitoring.WorkerBatchSize.Observe(float64(len(jobs)))
	if len(jobs) == 0 {
		return 0
	}

	group, groupCtx := errgroup.WithContext(ctx)
	group.SetLimit(w.concurrency)
	for _, job := range jobs {
		jobID := job.ID
		group.Go(func() error {
			defer func() {
				if r := recover(); r != nil {
					monitoring.RecoverAndAlert("job execution panicked", fmt.Errorf("job %s: %v", jobID, r))
				}
			}()
			if _, err := w.jobService.Execute(groupCtx, jobID); err != nil {
				// one broken job must not cancel the rest of the batch
				slog.Error("could not execute job", "jobID", jobID, "err", err)
			}
			return nil
		})
	}
	_ = group.Wait()
	return len(jobs)
}
