package creature

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"menagerie/internal/zoo/models"
	id "menagerie/pkg/domain"
	"menagerie/pkg/platform/sentinel"
)

// ZoneFinder resolves the zone a creature references so reads come back with
// the Zone populated.
type ZoneFinder interface {
	FindByID(ctx context.Context, zoneID id.ZoneID) (*models.Zone, error)
}

// InMemory is a mutex-guarded creature store that keeps insertion order.
type InMemory struct {
	mu        sync.RWMutex
	zones     ZoneFinder
	nextID    id.CreatureID
	creatures map[id.CreatureID]*models.Creature
	order     []id.CreatureID
}

func NewInMemory(zones ZoneFinder) *InMemory {
	return &InMemory{
		zones:     zones,
		creatures: make(map[id.CreatureID]*models.Creature),
	}
}

func (s *InMemory) FindByID(ctx context.Context, creatureID id.CreatureID) (*models.Creature, error) {
	s.mu.RLock()
	c, ok := s.creatures[creatureID]
	var clone models.Creature
	if ok {
		clone = *c
	}
	s.mu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("creature %s: %w", creatureID, sentinel.ErrNotFound)
	}
	if err := s.hydrate(ctx, &clone); err != nil {
		return nil, err
	}
	return &clone, nil
}

func (s *InMemory) FindAll(ctx context.Context) ([]*models.Creature, error) {
	s.mu.RLock()
	out := make([]*models.Creature, 0, len(s.order))
	for _, creatureID := range s.order {
		clone := *s.creatures[creatureID]
		out = append(out, &clone)
	}
	s.mu.RUnlock()

	for _, c := range out {
		if err := s.hydrate(ctx, c); err != nil {
			return nil, err
		}
	}
	return out, nil
}

// Save inserts c when it has no id and updates it otherwise. The referenced
// zone must exist.
func (s *InMemory) Save(ctx context.Context, c *models.Creature) (*models.Creature, error) {
	zone, err := s.zones.FindByID(ctx, c.ZoneID)
	if err != nil {
		if errors.Is(err, sentinel.ErrNotFound) {
			return nil, fmt.Errorf("creature zone %s: %w", c.ZoneID, sentinel.ErrInvalidState)
		}
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	stored := *c
	stored.Zone = nil
	if stored.ID.IsNil() {
		s.nextID++
		stored.ID = s.nextID
		s.order = append(s.order, stored.ID)
	} else if _, ok := s.creatures[stored.ID]; !ok {
		return nil, fmt.Errorf("creature %s: %w", stored.ID, sentinel.ErrNotFound)
	}
	s.creatures[stored.ID] = &stored

	clone := stored
	clone.Zone = zone
	return &clone, nil
}

func (s *InMemory) Delete(_ context.Context, creatureID id.CreatureID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.creatures[creatureID]; !ok {
		return fmt.Errorf("creature %s: %w", creatureID, sentinel.ErrNotFound)
	}
	delete(s.creatures, creatureID)
	for i, existing := range s.order {
		if existing == creatureID {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
	return nil
}

func (s *InMemory) CountByZoneID(_ context.Context, zoneID id.ZoneID) (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	count := 0
	for _, c := range s.creatures {
		if c.ZoneID == zoneID {
			count++
		}
	}
	return count, nil
}

func (s *InMemory) hydrate(ctx context.Context, c *models.Creature) error {
	zone, err := s.zones.FindByID(ctx, c.ZoneID)
	if err != nil {
		if errors.Is(err, sentinel.ErrNotFound) {
			return nil
		}
		return fmt.Errorf("load creature zone: %w", err)
	}
	c.Zone = zone
	return nil
}
