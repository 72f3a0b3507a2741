package models

import (
	"time"

	id "menagerie/pkg/domain"
	dErrors "menagerie/pkg/domain-errors"
)

// HealthStatusCritical is the health status that blocks deletion.
// Matching is exact and case-sensitive.
const HealthStatusCritical = "critical"

const (
	MinCreatureSize = 0.1
	MinDangerLevel  = 1
	MaxDangerLevel  = 5
)

// Creature is an animal assigned to exactly one zone.
//
// Invariants:
//   - Name, Species and HealthStatus are non-blank
//   - Size >= 0.1
//   - DangerLevel is within [1,5]
//   - ZoneID references an existing zone at write time
//
// Zone is a non-owning reference populated by the store on reads and by the
// service on writes; deleting a creature never touches its zone.
type Creature struct {
	ID           id.CreatureID `json:"id"`
	Name         string        `json:"name"`
	Species      string        `json:"species"`
	Size         float64       `json:"size"`
	DangerLevel  int           `json:"dangerLevel"`
	HealthStatus string        `json:"healthStatus"`
	ZoneID       id.ZoneID     `json:"zoneId"`
	Zone         *Zone         `json:"zone,omitempty"`
	CreatedAt    time.Time     `json:"createdAt"`
	UpdatedAt    time.Time     `json:"updatedAt"`
}

// NewCreature builds an unsaved creature attached to zone.
func NewCreature(name, species string, size float64, dangerLevel int, healthStatus string, zone *Zone, now time.Time) (*Creature, error) {
	if zone == nil {
		return nil, dErrors.New(dErrors.CodeInvariantViolation, "creature zone is required")
	}
	c := &Creature{
		Name:         name,
		Species:      species,
		Size:         size,
		DangerLevel:  dangerLevel,
		HealthStatus: healthStatus,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	c.AttachZone(zone)
	if err := c.checkInvariants(); err != nil {
		return nil, err
	}
	return c, nil
}

// AttachZone replaces the creature's zone reference.
func (c *Creature) AttachZone(zone *Zone) {
	c.Zone = zone
	c.ZoneID = zone.ID
}

// IsCritical reports whether the creature is in critical health.
func (c *Creature) IsCritical() bool {
	return c.HealthStatus == HealthStatusCritical
}

// CanDelete returns an error when the creature's state blocks deletion.
func (c *Creature) CanDelete() error {
	if c.IsCritical() {
		return dErrors.New(dErrors.CodeInvariantViolation, "cannot delete creature "+c.Name+": health status is critical")
	}
	return nil
}

func (c *Creature) checkInvariants() error {
	switch {
	case isBlank(c.Name):
		return dErrors.New(dErrors.CodeInvariantViolation, "creature name cannot be blank")
	case isBlank(c.Species):
		return dErrors.New(dErrors.CodeInvariantViolation, "creature species cannot be blank")
	case isBlank(c.HealthStatus):
		return dErrors.New(dErrors.CodeInvariantViolation, "creature health status cannot be blank")
	case c.Size < MinCreatureSize:
		return dErrors.New(dErrors.CodeInvariantViolation, sizeMessage)
	case c.DangerLevel < MinDangerLevel || c.DangerLevel > MaxDangerLevel:
		return dErrors.New(dErrors.CodeInvariantViolation, dangerLevelMessage)
	}
	return nil
}
