package models

import id "menagerie/pkg/domain"

// ZoneSummary is a read-only projection of a zone and its occupancy.
// It is computed on demand and never persisted.
type ZoneSummary struct {
	ID             id.ZoneID `json:"id"`
	Name           string    `json:"name"`
	Description    string    `json:"description"`
	Capacity       int       `json:"capacity"`
	CreaturesCount int64     `json:"creaturesCount"`
}

// NewZoneSummary projects z with its current creature count.
func NewZoneSummary(z *Zone, creatures int) ZoneSummary {
	return ZoneSummary{
		ID:             z.ID,
		Name:           z.Name,
		Description:    z.Description,
		Capacity:       z.Capacity,
		CreaturesCount: int64(creatures),
	}
}
