package audit

import (
	"context"
	"log/slog"
)

// Sink receives events from the worker. Implementations must be safe for a
// single consumer goroutine.
type Sink interface {
	Append(ctx context.Context, event Event) error
	Close() error
}

// Worker consumes audit events from a channel and appends them to a sink.
// Sink failures are logged, not fatal: the catalog keeps serving when the
// audit backend is down.
type Worker struct {
	sink   Sink
	inbox  <-chan Event
	logger *slog.Logger
}

func NewWorker(sink Sink, inbox <-chan Event, logger *slog.Logger) *Worker {
	return &Worker{sink: sink, inbox: inbox, logger: logger}
}

func (w *Worker) Run(ctx context.Context) error {
	for {
		select {
		case <-ctx.Done():
			w.drain()
			return ctx.Err()
		case event := <-w.inbox:
			w.append(ctx, event)
		}
	}
}

// drain flushes whatever is still buffered at shutdown.
func (w *Worker) drain() {
	for {
		select {
		case event := <-w.inbox:
			w.append(context.Background(), event)
		default:
			return
		}
	}
}

func (w *Worker) append(ctx context.Context, event Event) {
	if err := w.sink.Append(ctx, event); err != nil {
		w.logger.Error("failed to append audit event",
			"error", err, "action", event.Action, "entity", event.Entity)
	}
}

// LogSink writes events to the application log. It is the fallback sink
// when no broker is configured.
type LogSink struct {
	logger *slog.Logger
}

func NewLogSink(logger *slog.Logger) *LogSink {
	return &LogSink{logger: logger}
}

func (s *LogSink) Append(_ context.Context, event Event) error {
	s.logger.Info("audit",
		"action", event.Action, "entity", event.Entity, "entity_id", event.EntityID,
		"actor", event.Actor, "request_id", event.RequestID)
	return nil
}

func (s *LogSink) Close() error { return nil }
