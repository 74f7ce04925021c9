package async

import (
	"context"
	"fmt"
	"sync"
	"time"

	"log/slog"

	"github.com/healthtrack-labs/healthtrack/constants"
	"github.com/healthtrack-labs/healthtrack/internal/common"
	"github.com/healthtrack-labs/healthtrack/internal/pipeline"
)

// Notifier delivers the job outcome back to the sender over chat.
type Notifier interface {
	SendText(ctx context.Context, to, body string) error
}

// DocumentQueue runs pipeline jobs on a bounded worker pool so webhook
// handlers can acknowledge delivery immediately. Chat platforms retry
// undelivered events aggressively; acknowledging before processing
// keeps retries from piling up behind slow extractions.
type DocumentQueue struct {
	proc     *pipeline.Processor
	notifier Notifier
	logger   *slog.Logger
	workers  int
	timeout  time.Duration

	ch   chan DocumentJob
	wg   sync.WaitGroup
	once sync.Once

	mu     sync.Mutex
	closed bool
}

type Option func(*DocumentQueue)

func WithWorkers(n int) Option {
	return func(q *DocumentQueue) {
		if n > 0 {
			q.workers = n
		}
	}
}
func WithQueueSize(n int) Option {
	return func(q *DocumentQueue) {
		if n > 0 {
			q.ch = make(chan DocumentJob, n)
		}
	}
}
func WithProcessTimeout(d time.Duration) Option {
	return func(q *DocumentQueue) {
		if d > 0 {
			q.timeout = d
		}
	}
}

func NewDocumentQueue(proc *pipeline.Processor, notifier Notifier, logger *slog.Logger, opts ...Option) *DocumentQueue {
	if logger == nil {
		logger = slog.Default()
	}
	q := &DocumentQueue{
		proc:     proc,
		notifier: notifier,
		logger:   logger,
		workers:  4,
		timeout:  3 * time.Minute,
		ch:       make(chan DocumentJob, 256),
	}
	for _, o := range opts {
		o(q)
	}
	q.start()
	return q
}

func (q *DocumentQueue) start() {
	q.once.Do(func() {
		for i := 0; i < q.workers; i++ {
			q.wg.Add(1)
			go func(workerID int) {
				defer q.wg.Done()
				q.logger.Info("worker started", "worker_id", workerID)

				for job := range q.ch {
					ctx, cancel := context.WithTimeout(context.Background(), q.timeout)
					result, err := q.proc.ProcessUpload(ctx, job.PatientID, job.Filename, job.MIMEType, job.Data)

					if err != nil {
						q.logger.Error("processing failed", "worker_id", workerID, "message_id", job.MessageID, "error", err)
						q.notify(ctx, job, common.UserMessage(err))
					} else {
						q.logger.Info("processed document successfully",
							"worker_id", workerID, "message_id", job.MessageID,
							"kind", result.Extracted.Kind, "records", len(result.Records))
						q.notify(ctx, job, outcomeMessage(result))
					}
					cancel()
				}

				q.logger.Info("worker stopped", "worker_id", workerID)
			}(i + 1)
		}
	})
}

func (q *DocumentQueue) notify(ctx context.Context, job DocumentJob, body string) {
	if q.notifier == nil || job.ReplyTo == "" {
		return
	}
	if err := q.notifier.SendText(ctx, job.ReplyTo, body); err != nil {
		q.logger.Error("outcome notification failed", "message_id", job.MessageID, "error", err)
	}
}

func outcomeMessage(result *pipeline.ProcessResult) string {
	switch result.Extracted.Kind {
	case constants.KindHealthRecord:
		return "Your test report was saved. You can review the results on your trends page."
	case constants.KindImagingResult:
		return "Your imaging report was saved. You can review it on your imaging page."
	case constants.KindPrescription:
		return "Your prescription was saved. Medication reminders will follow the course schedule."
	default:
		return fmt.Sprintf("Your document was saved (%d records).", len(result.Records))
	}
}

func (q *DocumentQueue) Enqueue(_ context.Context, job DocumentJob) error {
	q.mu.Lock()
	defer q.mu.Unlock()
	if q.closed {
		q.logger.Warn("cannot enqueue: queue is shutting down", "message_id", job.MessageID)
		return nil
	}
	select {
	case q.ch <- job:
		q.logger.Info("queued document for processing", "message_id", job.MessageID, "bytes", len(job.Data))
	default:
		q.logger.Warn("queue full, applying backpressure", "message_id", job.MessageID)
		q.ch <- job
	}
	return nil
}

func (q *DocumentQueue) Shutdown(ctx context.Context) {
	q.mu.Lock()
	if q.closed {
		q.mu.Unlock()
		return
	}
	q.closed = true
	close(q.ch)
	q.mu.Unlock()

	done := make(chan struct{})
	go func() { defer close(done); q.wg.Wait() }()

	select {
	case <-ctx.Done():
		q.logger.Warn("shutdown interrupted by context")
	case <-done:
		q.logger.Info("queue drained, shutdown complete")
	}
}
