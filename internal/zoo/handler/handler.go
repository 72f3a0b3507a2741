package handler

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"menagerie/internal/platform/middleware"
	"menagerie/internal/zoo/models"
	id "menagerie/pkg/domain"
	dErrors "menagerie/pkg/domain-errors"
	"menagerie/pkg/platform/httputil"
)

//go:generate mockgen -source=handler.go -destination=mocks/mocks.go -package=mocks ZoneService,CreatureService

// ZoneService defines the zone operations exposed over HTTP.
type ZoneService interface {
	Create(ctx context.Context, req *models.CreateZoneRequest) (*models.Zone, error)
	Get(ctx context.Context, zoneID id.ZoneID) (*models.Zone, error)
	List(ctx context.Context) ([]*models.Zone, error)
	Update(ctx context.Context, zoneID id.ZoneID, req *models.UpdateZoneRequest) (*models.Zone, error)
	Delete(ctx context.Context, zoneID id.ZoneID) error
	FindSummary(ctx context.Context) ([]models.ZoneSummary, error)
}

// CreatureService defines the creature operations exposed over HTTP.
type CreatureService interface {
	GetByID(ctx context.Context, creatureID id.CreatureID) (*models.Creature, error)
	GetAll(ctx context.Context) ([]*models.Creature, error)
	Create(ctx context.Context, req *models.CreateCreatureRequest) (*models.Creature, error)
	Update(ctx context.Context, creatureID id.CreatureID, req *models.UpdateCreatureRequest) (*models.Creature, error)
	Delete(ctx context.Context, creatureID id.CreatureID) error
}

// Handler serves the zone and creature REST endpoints.
type Handler struct {
	zones     ZoneService
	creatures CreatureService
	logger    *slog.Logger
	keepers   middleware.KeeperValidator
}

// New creates a Handler. When keepers is nil mutating routes are public.
func New(zones ZoneService, creatures CreatureService, logger *slog.Logger, keepers middleware.KeeperValidator) *Handler {
	return &Handler{
		zones:     zones,
		creatures: creatures,
		logger:    logger,
		keepers:   keepers,
	}
}

// Register mounts the /api routes on r.
func (h *Handler) Register(r chi.Router) {
	r.Route("/api/zones", func(r chi.Router) {
		r.Get("/", h.handleListZones)
		r.Get("/summary", h.handleZoneSummary)
		r.Get("/{id}", h.handleGetZone)
		r.Group(func(r chi.Router) {
			h.requireKeeper(r)
			r.Post("/", h.handleCreateZone)
			r.Put("/{id}", h.handleUpdateZone)
			r.Delete("/{id}", h.handleDeleteZone)
		})
	})

	r.Route("/api/creatures", func(r chi.Router) {
		r.Get("/", h.handleListCreatures)
		r.Get("/{id}", h.handleGetCreature)
		r.Group(func(r chi.Router) {
			h.requireKeeper(r)
			r.Post("/", h.handleCreateCreature)
			r.Put("/{id}", h.handleUpdateCreature)
			r.Delete("/{id}", h.handleDeleteCreature)
		})
	})
}

func (h *Handler) requireKeeper(r chi.Router) {
	if h.keepers != nil {
		r.Use(middleware.RequireKeeper(h.keepers, h.logger))
	}
}

// writeError logs at a level matching the failure and writes the error envelope.
func (h *Handler) writeError(w http.ResponseWriter, r *http.Request, msg string, err error) {
	ctx := r.Context()
	if dErrors.CodeOf(err) == dErrors.CodeInternal {
		h.logger.ErrorContext(ctx, msg,
			"error", err,
			"request_id", middleware.GetRequestID(ctx),
		)
	} else {
		h.logger.WarnContext(ctx, msg,
			"error", err,
			"request_id", middleware.GetRequestID(ctx),
		)
	}
	httputil.WriteError(w, err)
}
