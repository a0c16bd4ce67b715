package notify

import (
	"context"
	"log"
)

// Sender delivers one HTML email. The Graph client satisfies this; tests
// substitute a mock.
type Sender interface {
	SendMail(ctx context.Context, to, subject, htmlBody string) error
}

// Job is one email to deliver.
type Job struct {
	To      string
	Subject string
	HTML    string
}

// WorkerPool delivers emails in the background. Delivery failures are
// logged and dropped: by the time an email is dispatched the booking has
// already succeeded, so notification is best-effort.
type WorkerPool struct {
	size   int
	jobs   chan Job
	sender Sender
}

// NewWorkerPool creates a pool with the given number of workers.
func NewWorkerPool(size int, sender Sender) *WorkerPool {
	if size <= 0 {
		size = 1
	}
	return &WorkerPool{
		size:   size,
		jobs:   make(chan Job, size*4),
		sender: sender,
	}
}

// Start launches the worker goroutines.
func (wp *WorkerPool) Start(ctx context.Context) {
	for i := 0; i < wp.size; i++ {
		go wp.worker(ctx, i)
	}
}

func (wp *WorkerPool) worker(ctx context.Context, id int) {
	log.Printf("email worker %d started", id)
	for {
		select {
		case job := <-wp.jobs:
			if err := wp.sender.SendMail(ctx, job.To, job.Subject, job.HTML); err != nil {
				log.Printf("email send to %s failed (booking unaffected): %v", job.To, err)
				continue
			}
			log.Printf("email sent to %s", job.To)
		case <-ctx.Done():
			log.Printf("email worker %d shutting down", id)
			return
		}
	}
}

// Dispatch queues a job without blocking the request path. If the queue is
// full the job is dropped with a log line rather than stalling a booking
// response.
func (wp *WorkerPool) Dispatch(job Job) {
	select {
	case wp.jobs <- job:
	default:
		log.Printf("email queue full; dropping message to %s", job.To)
	}
}

// Jobs exposes the queue for tests.
func (wp *WorkerPool) Jobs() chan Job { return wp.jobs }
