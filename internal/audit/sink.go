package audit

import (
	"context"
	"log/slog"
	"sync"
)

// Sink persists audit events. Implementations must be safe for concurrent use.
type Sink interface {
	Append(ctx context.Context, event Event) error
}

// LogSink writes events as structured log lines. It is the fallback when the
// primary sink is failing and the default when no broker is configured.
type LogSink struct {
	logger *slog.Logger
}

func NewLogSink(logger *slog.Logger) *LogSink {
	return &LogSink{logger: logger}
}

func (s *LogSink) Append(ctx context.Context, event Event) error {
	s.logger.InfoContext(ctx, string(event.Action),
		"log_type", "audit",
		"event_id", event.ID,
		"subject", event.Subject,
		"name", event.Name,
		"zone_id", event.ZoneID,
		"keeper_id", event.KeeperID,
		"request_id", event.RequestID,
		"timestamp", event.Timestamp,
	)
	return nil
}

// InMemorySink keeps events in append order.
type InMemorySink struct {
	mu     sync.RWMutex
	events []Event
}

func NewInMemorySink() *InMemorySink {
	return &InMemorySink{}
}

func (s *InMemorySink) Append(_ context.Context, event Event) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.events = append(s.events, event)
	return nil
}

// Events returns a copy of everything appended so far.
func (s *InMemorySink) Events() []Event {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]Event{}, s.events...)
}
