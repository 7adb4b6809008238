package workers

import (
	"context"

	"eggslist_backend/internal/logger"
)

// Job is a deferred unit of work (an email send, an image resize).
type Job struct {
	Name string
	Run  func(ctx context.Context) error
}

// Outbox runs deferred jobs on background goroutines so that email
// delivery and image processing never execute inside the request path.
// Jobs are best-effort: a failed job is logged and dropped, matching the
// fire-and-forget contract of the collaborators it fronts.
type Outbox struct {
	jobs chan Job
}

func NewOutbox(buffer int) *Outbox {
	if buffer <= 0 {
		buffer = 256
	}
	return &Outbox{
		jobs: make(chan Job, buffer),
	}
}

// Start launches n workers that drain the queue until ctx is cancelled.
func (o *Outbox) Start(ctx context.Context, n int) {
	if n <= 0 {
		n = 2
	}
	for i := 0; i < n; i++ {
		go o.worker(ctx)
	}
}

func (o *Outbox) worker(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			logger.Info("outbox worker stopped")
			return
		case job := <-o.jobs:
			if err := job.Run(ctx); err != nil {
				logger.Error("outbox job failed", "job", job.Name, "error", err)
			}
		}
	}
}

// Enqueue queues a job without blocking the caller. When the queue is
// full the job is dropped with a log line rather than stalling a request.
func (o *Outbox) Enqueue(job Job) {
	select {
	case o.jobs <- job:
	default:
		logger.Warn("outbox queue full, dropping job", "job", job.Name)
	}
}
