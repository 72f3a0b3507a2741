// Package zoo wires the zone and creature bounded context: stores, services
// and the HTTP handler.
package zoo

import (
	"log/slog"

	"menagerie/internal/platform/middleware"
	"menagerie/internal/zoo/handler"
	"menagerie/internal/zoo/service"
	creaturestore "menagerie/internal/zoo/store/creature"
	zonestore "menagerie/internal/zoo/store/zone"
)

// ZoneService exposes zone orchestration.
type ZoneService = service.ZoneService

// CreatureService exposes creature orchestration.
type CreatureService = service.CreatureService

// Handler wires HTTP endpoints to both services.
type Handler = handler.Handler

// Stores bundles the persistence gateways for one backend.
type Stores struct {
	Zones     service.ZoneStore
	Creatures service.CreatureStore
}

// NewInMemoryStores returns process-local stores sharing one zone map.
func NewInMemoryStores() Stores {
	zones := zonestore.NewInMemory()
	return Stores{
		Zones:     zones,
		Creatures: creaturestore.NewInMemory(zones),
	}
}

// NewServices constructs both services over the same stores.
func NewServices(stores Stores, opts ...service.Option) (*ZoneService, *CreatureService) {
	zones := service.NewZoneService(stores.Zones, stores.Creatures, opts...)
	creatures := service.NewCreatureService(stores.Creatures, stores.Zones, opts...)
	return zones, creatures
}

// NewHandler constructs the REST handler. A nil keepers validator leaves
// mutating routes open.
func NewHandler(zones *ZoneService, creatures *CreatureService, logger *slog.Logger, keepers middleware.KeeperValidator) *Handler {
	return handler.New(zones, creatures, logger, keepers)
}
