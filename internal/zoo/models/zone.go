package models

import (
	"time"
	"unicode/utf8"

	id "menagerie/pkg/domain"
	dErrors "menagerie/pkg/domain-errors"
)

// MaxZoneDescriptionLength bounds Zone.Description in characters.
const MaxZoneDescriptionLength = 255

// Zone is an enclosure that creatures are assigned to.
//
// Invariants:
//   - Name is non-blank and unique across zones (enforced by the store)
//   - Description is at most 255 characters
//   - Capacity is at least 1
//   - A zone cannot be deleted while any creature references it
type Zone struct {
	ID          id.ZoneID `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Capacity    int       `json:"capacity"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// NewZone builds an unsaved zone. The store assigns the ID.
func NewZone(name, description string, capacity int, now time.Time) (*Zone, error) {
	z := &Zone{
		Name:        name,
		Description: description,
		Capacity:    capacity,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := z.checkInvariants(); err != nil {
		return nil, err
	}
	return z, nil
}

func (z *Zone) checkInvariants() error {
	if isBlank(z.Name) {
		return dErrors.New(dErrors.CodeInvariantViolation, "zone name cannot be blank")
	}
	if utf8.RuneCountInString(z.Description) > MaxZoneDescriptionLength {
		return dErrors.New(dErrors.CodeInvariantViolation, "zone description must be 255 characters or less")
	}
	if z.Capacity < 1 {
		return dErrors.New(dErrors.CodeInvariantViolation, "zone capacity must be at least 1")
	}
	return nil
}
