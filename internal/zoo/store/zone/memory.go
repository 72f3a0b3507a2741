package zone

import (
	"context"
	"fmt"
	"sync"

	"menagerie/internal/zoo/models"
	id "menagerie/pkg/domain"
	"menagerie/pkg/platform/sentinel"
)

// InMemory is a mutex-guarded zone store that keeps insertion order.
// Names are unique and compared case-sensitively.
type InMemory struct {
	mu     sync.RWMutex
	nextID id.ZoneID
	zones  map[id.ZoneID]*models.Zone
	order  []id.ZoneID
}

func NewInMemory() *InMemory {
	return &InMemory{zones: make(map[id.ZoneID]*models.Zone)}
}

func (s *InMemory) FindByID(_ context.Context, zoneID id.ZoneID) (*models.Zone, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	z, ok := s.zones[zoneID]
	if !ok {
		return nil, fmt.Errorf("zone %s: %w", zoneID, sentinel.ErrNotFound)
	}
	clone := *z
	return &clone, nil
}

func (s *InMemory) FindAll(_ context.Context) ([]*models.Zone, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]*models.Zone, 0, len(s.order))
	for _, zoneID := range s.order {
		clone := *s.zones[zoneID]
		out = append(out, &clone)
	}
	return out, nil
}

// Save inserts z when it has no id and updates it otherwise.
func (s *InMemory) Save(_ context.Context, z *models.Zone) (*models.Zone, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !z.ID.IsNil() {
		if _, ok := s.zones[z.ID]; !ok {
			return nil, fmt.Errorf("zone %s: %w", z.ID, sentinel.ErrNotFound)
		}
	}
	for _, existing := range s.zones {
		if existing.Name == z.Name && existing.ID != z.ID {
			return nil, fmt.Errorf("zone name %q: %w", z.Name, sentinel.ErrAlreadyUsed)
		}
	}

	stored := *z
	if stored.ID.IsNil() {
		s.nextID++
		stored.ID = s.nextID
		s.order = append(s.order, stored.ID)
	}
	s.zones[stored.ID] = &stored

	clone := stored
	return &clone, nil
}

func (s *InMemory) Delete(_ context.Context, zoneID id.ZoneID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.zones[zoneID]; !ok {
		return fmt.Errorf("zone %s: %w", zoneID, sentinel.ErrNotFound)
	}
	delete(s.zones, zoneID)
	for i, existing := range s.order {
		if existing == zoneID {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
	return nil
}
