package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"menagerie/internal/audit"
	zoometrics "menagerie/internal/zoo/metrics"
	"menagerie/internal/zoo/models"
	id "menagerie/pkg/domain"
	dErrors "menagerie/pkg/domain-errors"
	"menagerie/pkg/platform/sentinel"
	"menagerie/pkg/requestcontext"
)

// CreatureCounter reports zone occupancy.
type CreatureCounter interface {
	CountByZoneID(ctx context.Context, zoneID id.ZoneID) (int, error)
}

// ZoneService orchestrates zone lifecycle management.
type ZoneService struct {
	zones        ZoneStore
	creatures    CreatureCounter
	auditEmitter *auditEmitter
	metrics      *zoometrics.Metrics
}

func NewZoneService(zones ZoneStore, creatures CreatureCounter, opts ...Option) *ZoneService {
	cfg := newConfig(opts)
	return &ZoneService{
		zones:        zones,
		creatures:    creatures,
		auditEmitter: newAuditEmitter(cfg.logger, cfg.auditPublisher),
		metrics:      cfg.metrics,
	}
}

// Create persists a new zone. Name uniqueness is left to the store so
// concurrent creates cannot both pass a pre-check.
func (s *ZoneService) Create(ctx context.Context, req *models.CreateZoneRequest) (_ *models.Zone, err error) {
	ctx, span := startSpan(ctx, "ZoneService.Create")
	defer func() { finishSpan(span, err) }()
	defer observe(s.metrics, "zone.create", time.Now())

	if err := req.Validate(); err != nil {
		return nil, err
	}

	z, err := models.NewZone(req.Name, req.Description, *req.Capacity, requestcontext.Now(ctx))
	if err != nil {
		return nil, invariantToValidation(err)
	}

	saved, err := s.zones.Save(ctx, z)
	if err != nil {
		return nil, s.translateSaveErr(err, z.Name, "create zone")
	}

	s.auditEmitter.emit(ctx, audit.Event{
		Action:  audit.ActionZoneCreated,
		Subject: "zone:" + saved.ID.String(),
		Name:    saved.Name,
		ZoneID:  saved.ID.String(),
	})
	if s.metrics != nil {
		s.metrics.IncrementZoneCreated()
	}
	return saved, nil
}

// Get returns a zone by id.
func (s *ZoneService) Get(ctx context.Context, zoneID id.ZoneID) (_ *models.Zone, err error) {
	ctx, span := startSpan(ctx, "ZoneService.Get")
	defer func() { finishSpan(span, err) }()

	z, err := s.zones.FindByID(ctx, zoneID)
	if err != nil {
		return nil, wrapZoneErr(err, "load zone")
	}
	return z, nil
}

// List returns every zone in store order.
func (s *ZoneService) List(ctx context.Context) (_ []*models.Zone, err error) {
	ctx, span := startSpan(ctx, "ZoneService.List")
	defer func() { finishSpan(span, err) }()

	zones, err := s.zones.FindAll(ctx)
	if err != nil {
		return nil, wrapZoneErr(err, "list zones")
	}
	return zones, nil
}

// Update applies the present fields of req to an existing zone.
func (s *ZoneService) Update(ctx context.Context, zoneID id.ZoneID, req *models.UpdateZoneRequest) (_ *models.Zone, err error) {
	ctx, span := startSpan(ctx, "ZoneService.Update")
	defer func() { finishSpan(span, err) }()
	defer observe(s.metrics, "zone.update", time.Now())

	if err := req.Validate(); err != nil {
		return nil, err
	}

	existing, err := s.zones.FindByID(ctx, zoneID)
	if err != nil {
		return nil, wrapZoneErr(err, "load zone")
	}

	merged := models.MergeZone(*existing, *req, requestcontext.Now(ctx))
	saved, err := s.zones.Save(ctx, &merged)
	if err != nil {
		return nil, s.translateSaveErr(err, merged.Name, "update zone")
	}

	s.auditEmitter.emit(ctx, audit.Event{
		Action:  audit.ActionZoneUpdated,
		Subject: "zone:" + saved.ID.String(),
		Name:    saved.Name,
		ZoneID:  saved.ID.String(),
	})
	return saved, nil
}

// Delete removes a zone that has no creatures.
func (s *ZoneService) Delete(ctx context.Context, zoneID id.ZoneID) (err error) {
	ctx, span := startSpan(ctx, "ZoneService.Delete")
	defer func() { finishSpan(span, err) }()
	defer observe(s.metrics, "zone.delete", time.Now())

	z, err := s.zones.FindByID(ctx, zoneID)
	if err != nil {
		return wrapZoneErr(err, "load zone")
	}

	count, err := s.creatures.CountByZoneID(ctx, zoneID)
	if err != nil {
		return dErrors.Wrap(err, dErrors.CodeInternal, "failed to count creatures")
	}
	if count > 0 {
		if s.metrics != nil {
			s.metrics.IncrementDeleteBlocked("zone")
		}
		return occupiedZoneErr(z.Name, count)
	}

	if err := s.zones.Delete(ctx, zoneID); err != nil {
		if errors.Is(err, sentinel.ErrInvalidState) {
			// a creature was assigned after the count
			return dErrors.New(dErrors.CodeInvariantViolation, fmt.Sprintf("cannot delete zone %s: it still has creatures", z.Name))
		}
		return wrapZoneErr(err, "delete zone")
	}

	s.auditEmitter.emit(ctx, audit.Event{
		Action:  audit.ActionZoneDeleted,
		Subject: "zone:" + zoneID.String(),
		Name:    z.Name,
		ZoneID:  zoneID.String(),
	})
	return nil
}

// FindSummary returns one summary per zone, in store order, with live creature counts.
func (s *ZoneService) FindSummary(ctx context.Context) (_ []models.ZoneSummary, err error) {
	ctx, span := startSpan(ctx, "ZoneService.FindSummary")
	defer func() { finishSpan(span, err) }()
	defer observe(s.metrics, "zone.summary", time.Now())

	zones, err := s.zones.FindAll(ctx)
	if err != nil {
		return nil, wrapZoneErr(err, "list zones")
	}

	summaries := make([]models.ZoneSummary, 0, len(zones))
	for _, z := range zones {
		count, err := s.creatures.CountByZoneID(ctx, z.ID)
		if err != nil {
			return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to count creatures")
		}
		summaries = append(summaries, models.NewZoneSummary(z, count))
	}
	return summaries, nil
}

func (s *ZoneService) translateSaveErr(err error, name, action string) error {
	if errors.Is(err, sentinel.ErrAlreadyUsed) {
		return dErrors.New(dErrors.CodeConflict, "Zone name already exists: "+name)
	}
	return wrapZoneErr(err, action)
}

func occupiedZoneErr(name string, count int) error {
	noun := "creatures"
	if count == 1 {
		noun = "creature"
	}
	return dErrors.New(dErrors.CodeInvariantViolation,
		fmt.Sprintf("cannot delete zone %s: it still has %d %s", name, count, noun))
}
