package service

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"menagerie/internal/audit"
	"menagerie/internal/zoo/models"
	zoometrics "menagerie/internal/zoo/metrics"
	id "menagerie/pkg/domain"
	dErrors "menagerie/pkg/domain-errors"
	"menagerie/pkg/platform/sentinel"
	"menagerie/pkg/requestcontext"
)

//go:generate mockgen -source=service.go -destination=mocks/mocks.go -package=mocks

// ZoneStore persists zones. Save inserts when the zone has no id and updates
// otherwise; a taken name surfaces as sentinel.ErrAlreadyUsed.
type ZoneStore interface {
	FindByID(ctx context.Context, zoneID id.ZoneID) (*models.Zone, error)
	FindAll(ctx context.Context) ([]*models.Zone, error)
	Save(ctx context.Context, zone *models.Zone) (*models.Zone, error)
	Delete(ctx context.Context, zoneID id.ZoneID) error
}

// CreatureStore persists creatures. Reads return the creature with its Zone populated.
type CreatureStore interface {
	FindByID(ctx context.Context, creatureID id.CreatureID) (*models.Creature, error)
	FindAll(ctx context.Context) ([]*models.Creature, error)
	Save(ctx context.Context, creature *models.Creature) (*models.Creature, error)
	Delete(ctx context.Context, creatureID id.CreatureID) error
	CountByZoneID(ctx context.Context, zoneID id.ZoneID) (int, error)
}

type AuditPublisher interface {
	Emit(ctx context.Context, event audit.Event) error
}

type serviceConfig struct {
	logger         *slog.Logger
	auditPublisher AuditPublisher
	metrics        *zoometrics.Metrics
}

type Option func(*serviceConfig)

func WithLogger(logger *slog.Logger) Option {
	return func(c *serviceConfig) {
		c.logger = logger
	}
}

func WithAuditPublisher(publisher AuditPublisher) Option {
	return func(c *serviceConfig) {
		c.auditPublisher = publisher
	}
}

func WithMetrics(m *zoometrics.Metrics) Option {
	return func(c *serviceConfig) {
		c.metrics = m
	}
}

func newConfig(opts []Option) *serviceConfig {
	cfg := &serviceConfig{}
	for _, opt := range opts {
		opt(cfg)
	}
	if cfg.logger == nil {
		cfg.logger = slog.New(slog.DiscardHandler)
	}
	return cfg
}

var tracer = otel.Tracer("menagerie/internal/zoo/service")

func startSpan(ctx context.Context, name string) (context.Context, trace.Span) {
	return tracer.Start(ctx, name)
}

// finishSpan records err on span (if any) and ends it.
func finishSpan(span trace.Span, err error) {
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, string(dErrors.CodeOf(err)))
	}
	span.End()
}

// auditEmitter writes an audit log line and forwards the event to the
// publisher. Publish failures are logged, never returned: the state change
// has already been committed.
type auditEmitter struct {
	logger    *slog.Logger
	publisher AuditPublisher
}

func newAuditEmitter(logger *slog.Logger, publisher AuditPublisher) *auditEmitter {
	return &auditEmitter{logger: logger, publisher: publisher}
}

func (e *auditEmitter) emit(ctx context.Context, event audit.Event) {
	event.RequestID = requestcontext.RequestID(ctx)
	event.KeeperID = requestcontext.KeeperID(ctx)
	if event.Timestamp.IsZero() {
		event.Timestamp = requestcontext.Now(ctx)
	}

	e.logger.InfoContext(ctx, string(event.Action),
		"log_type", "audit",
		"subject", event.Subject,
		"name", event.Name,
		"request_id", event.RequestID,
	)
	if e.publisher == nil {
		return
	}
	if err := e.publisher.Emit(ctx, event); err != nil {
		e.logger.WarnContext(ctx, "failed to publish audit event",
			"action", event.Action,
			"error", err,
		)
	}
}

func observe(m *zoometrics.Metrics, operation string, start time.Time) {
	if m != nil {
		m.ObserveOperation(operation, start)
	}
}

// wrapZoneErr translates store errors for zone lookups and writes.
func wrapZoneErr(err error, action string) error {
	var de *dErrors.Error
	switch {
	case errors.As(err, &de):
		return err
	case errors.Is(err, sentinel.ErrNotFound):
		return dErrors.New(dErrors.CodeNotFound, "zone not found")
	default:
		return dErrors.Wrap(err, dErrors.CodeInternal, "failed to "+action)
	}
}

// wrapCreatureErr translates store errors for creature lookups and writes.
func wrapCreatureErr(err error, action string) error {
	var de *dErrors.Error
	switch {
	case errors.As(err, &de):
		return err
	case errors.Is(err, sentinel.ErrNotFound):
		return dErrors.New(dErrors.CodeNotFound, "creature not found")
	case errors.Is(err, sentinel.ErrInvalidState):
		// the referenced zone disappeared between lookup and write
		return dErrors.New(dErrors.CodeNotFound, "zone not found")
	default:
		return dErrors.Wrap(err, dErrors.CodeInternal, "failed to "+action)
	}
}

// invariantToValidation maps constructor invariant failures onto the
// validation code for API responses.
func invariantToValidation(err error) error {
	if dErrors.HasCode(err, dErrors.CodeInvariantViolation) {
		return dErrors.New(dErrors.CodeValidation, err.Error())
	}
	return err
}
