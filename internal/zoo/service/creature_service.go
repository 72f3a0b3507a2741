package service

import (
	"context"
	"time"

	"menagerie/internal/audit"
	zoometrics "menagerie/internal/zoo/metrics"
	"menagerie/internal/zoo/models"
	id "menagerie/pkg/domain"
	dErrors "menagerie/pkg/domain-errors"
	"menagerie/pkg/requestcontext"
)

// ZoneFinder resolves zones referenced by creatures.
type ZoneFinder interface {
	FindByID(ctx context.Context, zoneID id.ZoneID) (*models.Zone, error)
}

// CreatureService orchestrates creature lifecycle management.
type CreatureService struct {
	creatures    CreatureStore
	zones        ZoneFinder
	auditEmitter *auditEmitter
	metrics      *zoometrics.Metrics
}

func NewCreatureService(creatures CreatureStore, zones ZoneFinder, opts ...Option) *CreatureService {
	cfg := newConfig(opts)
	return &CreatureService{
		creatures:    creatures,
		zones:        zones,
		auditEmitter: newAuditEmitter(cfg.logger, cfg.auditPublisher),
		metrics:      cfg.metrics,
	}
}

// GetByID returns a creature with its zone.
func (s *CreatureService) GetByID(ctx context.Context, creatureID id.CreatureID) (_ *models.Creature, err error) {
	ctx, span := startSpan(ctx, "CreatureService.GetByID")
	defer func() { finishSpan(span, err) }()

	c, err := s.creatures.FindByID(ctx, creatureID)
	if err != nil {
		return nil, wrapCreatureErr(err, "load creature")
	}
	return c, nil
}

// GetAll returns every creature, unfiltered.
func (s *CreatureService) GetAll(ctx context.Context) (_ []*models.Creature, err error) {
	ctx, span := startSpan(ctx, "CreatureService.GetAll")
	defer func() { finishSpan(span, err) }()

	creatures, err := s.creatures.FindAll(ctx)
	if err != nil {
		return nil, wrapCreatureErr(err, "list creatures")
	}
	return creatures, nil
}

// Create registers a creature in an existing zone. A missing zoneId is
// rejected before any store is consulted.
func (s *CreatureService) Create(ctx context.Context, req *models.CreateCreatureRequest) (_ *models.Creature, err error) {
	ctx, span := startSpan(ctx, "CreatureService.Create")
	defer func() { finishSpan(span, err) }()
	defer observe(s.metrics, "creature.create", time.Now())

	if req.ZoneID == nil {
		return nil, dErrors.New(dErrors.CodeBadRequest, "zoneId is required")
	}
	if err := req.Validate(); err != nil {
		return nil, err
	}

	zone, err := s.zones.FindByID(ctx, *req.ZoneID)
	if err != nil {
		return nil, wrapZoneErr(err, "load zone")
	}

	c, err := models.NewCreature(req.Name, req.Species, *req.Size, *req.DangerLevel, req.HealthStatus, zone, requestcontext.Now(ctx))
	if err != nil {
		return nil, invariantToValidation(err)
	}

	saved, err := s.creatures.Save(ctx, c)
	if err != nil {
		return nil, wrapCreatureErr(err, "create creature")
	}
	if saved.Zone == nil {
		saved.AttachZone(zone)
	}

	s.auditEmitter.emit(ctx, audit.Event{
		Action:  audit.ActionCreatureCreated,
		Subject: "creature:" + saved.ID.String(),
		Name:    saved.Name,
		ZoneID:  saved.ZoneID.String(),
	})
	if s.metrics != nil {
		s.metrics.IncrementCreatureCreated()
	}
	return saved, nil
}

// Update overwrites the present fields of req. When zoneId is present the
// new zone is resolved and attached.
func (s *CreatureService) Update(ctx context.Context, creatureID id.CreatureID, req *models.UpdateCreatureRequest) (_ *models.Creature, err error) {
	ctx, span := startSpan(ctx, "CreatureService.Update")
	defer func() { finishSpan(span, err) }()
	defer observe(s.metrics, "creature.update", time.Now())

	if err := req.Validate(); err != nil {
		return nil, err
	}

	existing, err := s.creatures.FindByID(ctx, creatureID)
	if err != nil {
		return nil, wrapCreatureErr(err, "load creature")
	}

	merged := models.MergeCreature(*existing, *req, requestcontext.Now(ctx))
	if req.ZoneID != nil {
		zone, err := s.zones.FindByID(ctx, *req.ZoneID)
		if err != nil {
			return nil, wrapZoneErr(err, "load zone")
		}
		merged.AttachZone(zone)
	}

	saved, err := s.creatures.Save(ctx, &merged)
	if err != nil {
		return nil, wrapCreatureErr(err, "update creature")
	}
	if saved.Zone == nil {
		saved.Zone = merged.Zone
	}

	s.auditEmitter.emit(ctx, audit.Event{
		Action:  audit.ActionCreatureUpdated,
		Subject: "creature:" + saved.ID.String(),
		Name:    saved.Name,
		ZoneID:  saved.ZoneID.String(),
	})
	return saved, nil
}

// Delete removes a creature unless its health status is critical.
func (s *CreatureService) Delete(ctx context.Context, creatureID id.CreatureID) (err error) {
	ctx, span := startSpan(ctx, "CreatureService.Delete")
	defer func() { finishSpan(span, err) }()
	defer observe(s.metrics, "creature.delete", time.Now())

	c, err := s.creatures.FindByID(ctx, creatureID)
	if err != nil {
		return wrapCreatureErr(err, "load creature")
	}
	if err := c.CanDelete(); err != nil {
		if s.metrics != nil {
			s.metrics.IncrementDeleteBlocked("creature")
		}
		return err
	}

	if err := s.creatures.Delete(ctx, creatureID); err != nil {
		return wrapCreatureErr(err, "delete creature")
	}

	s.auditEmitter.emit(ctx, audit.Event{
		Action:  audit.ActionCreatureDeleted,
		Subject: "creature:" + creatureID.String(),
		Name:    c.Name,
		ZoneID:  c.ZoneID.String(),
	})
	return nil
}
