package audit

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
)

// ErrBufferFull is returned by Emit when the worker cannot keep up.
var ErrBufferFull = errors.New("audit buffer full")

const defaultBufferSize = 256

// Publisher hands events to a Worker over a bounded channel so request paths
// never wait on the sink.
type Publisher struct {
	inbox chan Event
}

type PublisherOption func(*Publisher)

func WithBufferSize(n int) PublisherOption {
	return func(p *Publisher) {
		if n > 0 {
			p.inbox = make(chan Event, n)
		}
	}
}

func NewPublisher(opts ...PublisherOption) *Publisher {
	p := &Publisher{inbox: make(chan Event, defaultBufferSize)}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Emit stamps the event and enqueues it without blocking.
func (p *Publisher) Emit(_ context.Context, event Event) error {
	if event.ID == "" {
		event.ID = uuid.NewString()
	}
	if event.Timestamp.IsZero() {
		event.Timestamp = time.Now()
	}
	select {
	case p.inbox <- event:
		return nil
	default:
		return ErrBufferFull
	}
}

// Inbox exposes the receive side for a Worker.
func (p *Publisher) Inbox() <-chan Event {
	return p.inbox
}
