package notifier

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"sundar_marbles/internal/lib/logger/sl"
	"sundar_marbles/internal/metrics"
)

type job struct {
	subject string
	body    string
}

// Dispatcher queues notification emails onto a bounded channel drained
// by a fixed worker pool. Submission never blocks the caller: when the
// queue is full the job is dropped and logged. Delivery failures are
// logged and counted, never surfaced to the request path.
type Dispatcher struct {
	log     *slog.Logger
	mailer  Mailer
	jobs    chan job
	timeout time.Duration

	wg       sync.WaitGroup
	stopOnce sync.Once
}

func NewDispatcher(log *slog.Logger, mailer Mailer, workers, queueSize int) *Dispatcher {
	if workers < 1 {
		workers = 1
	}
	if queueSize < 1 {
		queueSize = 16
	}

	d := &Dispatcher{
		log:     log,
		mailer:  mailer,
		jobs:    make(chan job, queueSize),
		timeout: 30 * time.Second,
	}

	d.wg.Add(workers)
	for i := 0; i < workers; i++ {
		go d.worker()
	}

	log.Info("notification dispatcher started",
		slog.Int("workers", workers),
		slog.Int("queue", queueSize),
	)

	return d
}

// Enqueue submits a notification for background delivery. It returns
// immediately; a full queue drops the job.
func (d *Dispatcher) Enqueue(subject, body string) {
	select {
	case d.jobs <- job{subject: subject, body: body}:
	default:
		d.log.Warn("notification queue full, dropping email", slog.String("subject", subject))
		metrics.NotificationEmailsTotal.WithLabelValues("dropped").Inc()
	}
}

func (d *Dispatcher) worker() {
	defer d.wg.Done()

	for j := range d.jobs {
		ctx, cancel := context.WithTimeout(context.Background(), d.timeout)
		err := d.mailer.Send(ctx, j.subject, j.body)
		cancel()

		if err != nil {
			d.log.Error("notification email failed", slog.String("subject", j.subject), sl.Err(err))
			metrics.NotificationEmailsTotal.WithLabelValues("failed").Inc()
			continue
		}

		metrics.NotificationEmailsTotal.WithLabelValues("sent").Inc()
	}
}

// Stop closes the queue and waits for in-flight deliveries to finish.
func (d *Dispatcher) Stop() {
	d.stopOnce.Do(func() {
		close(d.jobs)
	})
	d.wg.Wait()
}
