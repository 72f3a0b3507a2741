package audit

import (
	"context"
	"log/slog"

	"menagerie/pkg/platform/circuit"
)

// Worker consumes audit events from a channel and persists them. Failed
// appends go to the fallback sink, and the breaker tracks whether the primary
// sink has recovered.
type Worker struct {
	primary  Sink
	fallback Sink
	inbox    <-chan Event
	breaker  *circuit.Breaker
	logger   *slog.Logger
}

func NewWorker(primary, fallback Sink, inbox <-chan Event, logger *slog.Logger) *Worker {
	return &Worker{
		primary:  primary,
		fallback: fallback,
		inbox:    inbox,
		breaker:  circuit.New("audit-sink", circuit.WithFailureThreshold(5), circuit.WithSuccessThreshold(2)),
		logger:   logger,
	}
}

// Run blocks until ctx is cancelled, then drains whatever is still buffered.
func (w *Worker) Run(ctx context.Context) error {
	for {
		select {
		case <-ctx.Done():
			w.drain(context.WithoutCancel(ctx))
			return nil
		case event := <-w.inbox:
			w.handle(ctx, event)
		}
	}
}

func (w *Worker) drain(ctx context.Context) {
	for {
		select {
		case event := <-w.inbox:
			w.handle(ctx, event)
		default:
			return
		}
	}
}

func (w *Worker) handle(ctx context.Context, event Event) {
	err := w.primary.Append(ctx, event)
	if err == nil {
		if _, change := w.breaker.RecordSuccess(); change.Closed {
			w.logger.InfoContext(ctx, "audit sink recovered", "breaker", w.breaker.Name())
		}
		return
	}

	_, change := w.breaker.RecordFailure()
	if change.Opened {
		w.logger.WarnContext(ctx, "audit sink failing, using fallback", "breaker", w.breaker.Name(), "error", err)
	}
	if w.fallback == nil {
		w.logger.ErrorContext(ctx, "audit event dropped", "action", event.Action, "error", err)
		return
	}
	if ferr := w.fallback.Append(ctx, event); ferr != nil {
		w.logger.ErrorContext(ctx, "audit fallback failed", "action", event.Action, "error", ferr)
	}
}
