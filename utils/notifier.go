package utils

import (
	"context"
	"log"
	"time"
)

// Email delivery is best-effort: jobs are handed to a background worker,
// retried a few times with linear backoff, and dropped with a log line if
// they still fail. A notification must never block or fail the operation
// that triggered it.

const (
	notifyQueueSize  = 256
	notifyMaxRetries = 3
)

type EmailJob struct {
	To           string
	Subject      string
	Data         EmailData
	TemplatePath string
}

var notifyQueue = make(chan EmailJob, notifyQueueSize)

// Notify enqueues an email job without blocking the caller. When the queue
// is full the job is dropped.
func Notify(job EmailJob) {
	select {
	case notifyQueue <- job:
	default:
		log.Printf("notifier: queue full, dropping %q to %s", job.Subject, job.To)
	}
}

// StartNotifier launches the worker that drains the email queue. It runs
// until ctx is cancelled.
func StartNotifier(ctx context.Context) {
	go func() {
		for {
			select {
			case <-ctx.Done():
				return
			case job := <-notifyQueue:
				deliver(job)
			}
		}
	}()
}

func deliver(job EmailJob) {
	var err error
	for attempt := 1; attempt <= notifyMaxRetries; attempt++ {
		if err = SendEmail(job.To, job.Subject, job.Data, job.TemplatePath); err == nil {
			return
		}
		log.Printf("notifier: sending %q to %s failed (attempt %d): %v", job.Subject, job.To, attempt, err)
		time.Sleep(time.Duration(attempt) * time.Second)
	}
	log.Printf("notifier: giving up on %q to %s: %v", job.Subject, job.To, err)
}
