package audit

import (
	"context"
	"io"
	"log/slog"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"voterguide/pkg/requestcontext"
)

type memorySink struct {
	mu     sync.Mutex
	events []Event
	closed bool
}

func (s *memorySink) Append(_ context.Context, event Event) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.events = append(s.events, event)
	return nil
}

func (s *memorySink) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.closed = true
	return nil
}

func (s *memorySink) snapshot() []Event {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]Event(nil), s.events...)
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestPublisherStampsEvents(t *testing.T) {
	inbox := make(chan Event, 1)
	publisher := NewPublisher(inbox, discardLogger())

	ctx := requestcontext.WithRequestID(context.Background(), "req-42")
	require.NoError(t, publisher.Emit(ctx, Event{
		Action:   ActionCreated,
		Entity:   "seat",
		EntityID: "abc",
		Actor:    "editor",
	}))

	event := <-inbox
	assert.Equal(t, "req-42", event.RequestID)
	assert.False(t, event.Timestamp.IsZero())
}

func TestPublisherDropsWhenFull(t *testing.T) {
	inbox := make(chan Event, 1)
	publisher := NewPublisher(inbox, discardLogger())

	require.NoError(t, publisher.Emit(context.Background(), Event{Action: ActionCreated}))
	// Buffer is full; this must not block.
	require.NoError(t, publisher.Emit(context.Background(), Event{Action: ActionUpdated}))

	assert.Len(t, inbox, 1)
}

func TestWorkerAppendsAndDrainsOnShutdown(t *testing.T) {
	inbox := make(chan Event, 8)
	sink := &memorySink{}
	worker := NewWorker(sink, inbox, discardLogger())

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- worker.Run(ctx) }()

	publisher := NewPublisher(inbox, discardLogger())
	for _, action := range []string{ActionCreated, ActionUpdated, ActionDeleted} {
		require.NoError(t, publisher.Emit(ctx, Event{Action: action, Entity: "measure"}))
	}

	require.Eventually(t, func() bool {
		return len(sink.snapshot()) == 3
	}, time.Second, 10*time.Millisecond)

	// Anything still buffered at cancellation is flushed, not lost.
	require.NoError(t, publisher.Emit(ctx, Event{Action: ActionCreated, Entity: "seat"}))
	cancel()

	require.ErrorIs(t, <-done, context.Canceled)
	assert.GreaterOrEqual(t, len(sink.snapshot()), 3)
}
