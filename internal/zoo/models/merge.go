package models

import "time"

// MergeZone applies the non-nil fields of req to a copy of existing.
func MergeZone(existing Zone, req UpdateZoneRequest, now time.Time) Zone {
	merged := existing
	if req.Name != nil {
		merged.Name = *req.Name
	}
	if req.Description != nil {
		merged.Description = *req.Description
	}
	if req.Capacity != nil {
		merged.Capacity = *req.Capacity
	}
	merged.UpdatedAt = now
	return merged
}

// MergeCreature applies the non-nil fields of req to a copy of existing.
// When req moves the creature to another zone the stale Zone reference is
// dropped; callers attach the resolved zone with AttachZone.
func MergeCreature(existing Creature, req UpdateCreatureRequest, now time.Time) Creature {
	merged := existing
	if req.Name != nil {
		merged.Name = *req.Name
	}
	if req.Species != nil {
		merged.Species = *req.Species
	}
	if req.Size != nil {
		merged.Size = *req.Size
	}
	if req.DangerLevel != nil {
		merged.DangerLevel = *req.DangerLevel
	}
	if req.HealthStatus != nil {
		merged.HealthStatus = *req.HealthStatus
	}
	if req.ZoneID != nil && *req.ZoneID != existing.ZoneID {
		merged.ZoneID = *req.ZoneID
		merged.Zone = nil
	}
	merged.UpdatedAt = now
	return merged
}
