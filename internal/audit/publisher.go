package audit

import (
	"context"
	"log/slog"
	"time"

	"voterguide/pkg/requestcontext"
)

// Publisher hands events to the background worker over a buffered channel.
// Emit never blocks the request path: when the buffer is full the event is
// dropped and logged.
type Publisher struct {
	inbox  chan<- Event
	logger *slog.Logger
}

func NewPublisher(inbox chan<- Event, logger *slog.Logger) *Publisher {
	return &Publisher{inbox: inbox, logger: logger}
}

func (p *Publisher) Emit(ctx context.Context, event Event) error {
	if event.Timestamp.IsZero() {
		event.Timestamp = time.Now()
	}
	if event.RequestID == "" {
		event.RequestID = requestcontext.RequestID(ctx)
	}
	select {
	case p.inbox <- event:
	default:
		p.logger.Warn("audit inbox full, dropping event",
			"action", event.Action, "entity", event.Entity, "entity_id", event.EntityID)
	}
	return nil
}
