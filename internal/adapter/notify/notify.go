// Package notify dispatches workflow notifications asynchronously.
// Delivery failures are logged and never reported back to the caller.
package notify

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/semaphore"

	"github.com/heartmarshall/dossier-backend/internal/domain"
)

// Message is a notification addressed to users.
type Message struct {
	Recipients []uuid.UUID
	Subject    string
	Body       string
}

// Sender delivers a message, e.g. by email.
type Sender interface {
	Send(ctx context.Context, msg Message) error
}

// Dispatcher runs deliveries in the background with bounded concurrency.
type Dispatcher struct {
	log     *slog.Logger
	sender  Sender
	sem     *semaphore.Weighted
	timeout time.Duration
	wg      sync.WaitGroup
}

// NewDispatcher creates a dispatcher with at most concurrency deliveries in flight.
func NewDispatcher(log *slog.Logger, sender Sender, concurrency int64, timeout time.Duration) *Dispatcher {
	return &Dispatcher{
		log:     log.With("component", "notify"),
		sender:  sender,
		sem:     semaphore.NewWeighted(concurrency),
		timeout: timeout,
	}
}

// ReviewRequested notifies the reviewer and the optional approver that a
// project entered review. It returns immediately.
func (d *Dispatcher) ReviewRequested(ctx context.Context, req domain.ReviewRequest) {
	recipients := []uuid.UUID{req.ReviewerID}
	if req.ApproverID != nil && *req.ApproverID != req.ReviewerID {
		recipients = append(recipients, *req.ApproverID)
	}

	body := fmt.Sprintf("Project %q (%s) was submitted for review.", req.ProjectName, req.ProjectID)
	if req.Message != nil && *req.Message != "" {
		body += "\n\n" + *req.Message
	}

	d.dispatch(ctx, Message{
		Recipients: recipients,
		Subject:    "Review requested: " + req.ProjectName,
		Body:       body,
	})
}

func (d *Dispatcher) dispatch(ctx context.Context, msg Message) {
	// Detached from the request: the transaction already committed and the
	// response must not wait for delivery.
	bg := context.WithoutCancel(ctx)

	d.wg.Add(1)
	go func() {
		defer d.wg.Done()

		sendCtx, cancel := context.WithTimeout(bg, d.timeout)
		defer cancel()

		if err := d.sem.Acquire(sendCtx, 1); err != nil {
			d.log.WarnContext(sendCtx, "notification dropped", slog.String("subject", msg.Subject), slog.String("error", err.Error()))
			return
		}
		defer d.sem.Release(1)

		if err := d.sender.Send(sendCtx, msg); err != nil {
			d.log.ErrorContext(sendCtx, "notification failed",
				slog.String("subject", msg.Subject),
				slog.Int("recipients", len(msg.Recipients)),
				slog.String("error", err.Error()),
			)
		}
	}()
}

// Wait blocks until all in-flight deliveries finish or ctx is done.
func (d *Dispatcher) Wait(ctx context.Context) error {
	done := make(chan struct{})
	go func() {
		d.wg.Wait()
		close(done)
	}()
	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// LogSender writes messages to the log instead of delivering them.
type LogSender struct {
	log *slog.Logger
}

// NewLogSender creates a LogSender.
func NewLogSender(log *slog.Logger) *LogSender {
	return &LogSender{log: log}
}

// Send logs msg.
func (s *LogSender) Send(ctx context.Context, msg Message) error {
	ids := make([]string, len(msg.Recipients))
	for i, id := range msg.Recipients {
		ids[i] = id.String()
	}
	s.log.InfoContext(ctx, "notification",
		slog.Any("recipients", ids),
		slog.String("subject", msg.Subject),
	)
	return nil
}
