package models

import (
	"strings"
	"unicode/utf8"

	id "menagerie/pkg/domain"
	dErrors "menagerie/pkg/domain-errors"
)

const (
	blankMessage       = "must not be blank"
	requiredMessage    = "must not be null"
	sizeMessage        = "size must be at least 0.1"
	dangerLevelMessage = "dangerLevel must be between 1 and 5"
	capacityMessage    = "capacity must be at least 1"
	descriptionMessage = "description must be at most 255 characters"
)

// Request values are stored exactly as sent. Blank checks look at the trimmed
// value but never rewrite it, so " critical " stays distinct from "critical".

// CreateZoneRequest is the payload for creating a zone.
type CreateZoneRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Capacity    *int   `json:"capacity"`
}

// Validate checks field constraints. It never consults the store.
func (r *CreateZoneRequest) Validate() error {
	var v violations
	v.notBlank("name", r.Name)
	v.maxRunes("description", r.Description, MaxZoneDescriptionLength, descriptionMessage)
	if r.Capacity == nil {
		v.add("capacity", requiredMessage)
	} else {
		v.minInt("capacity", *r.Capacity, 1, capacityMessage)
	}
	return v.err()
}

// UpdateZoneRequest is a partial update; nil fields are left unchanged.
type UpdateZoneRequest struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
	Capacity    *int    `json:"capacity"`
}

// Validate checks present fields against the same bounds as CreateZoneRequest.
func (r *UpdateZoneRequest) Validate() error {
	var v violations
	if r.Name != nil {
		v.notBlank("name", *r.Name)
	}
	if r.Description != nil {
		v.maxRunes("description", *r.Description, MaxZoneDescriptionLength, descriptionMessage)
	}
	if r.Capacity != nil {
		v.minInt("capacity", *r.Capacity, 1, capacityMessage)
	}
	return v.err()
}

// CreateCreatureRequest is the payload for creating a creature.
type CreateCreatureRequest struct {
	Name         string     `json:"name"`
	Species      string     `json:"species"`
	Size         *float64   `json:"size"`
	DangerLevel  *int       `json:"dangerLevel"`
	HealthStatus string     `json:"healthStatus"`
	ZoneID       *id.ZoneID `json:"zoneId"`
}

// Validate checks field constraints. It never consults the store.
func (r *CreateCreatureRequest) Validate() error {
	var v violations
	v.notBlank("name", r.Name)
	v.notBlank("species", r.Species)
	if r.Size == nil {
		v.add("size", requiredMessage)
	} else {
		v.minSize("size", *r.Size)
	}
	if r.DangerLevel == nil {
		v.add("dangerLevel", requiredMessage)
	} else {
		v.dangerLevel("dangerLevel", *r.DangerLevel)
	}
	v.notBlank("healthStatus", r.HealthStatus)
	if r.ZoneID == nil {
		v.add("zoneId", requiredMessage)
	}
	return v.err()
}

// UpdateCreatureRequest is a partial update; nil fields are left unchanged.
type UpdateCreatureRequest struct {
	Name         *string    `json:"name"`
	Species      *string    `json:"species"`
	Size         *float64   `json:"size"`
	DangerLevel  *int       `json:"dangerLevel"`
	HealthStatus *string    `json:"healthStatus"`
	ZoneID       *id.ZoneID `json:"zoneId"`
}

// Validate checks present fields; absent fields are not validated.
func (r *UpdateCreatureRequest) Validate() error {
	var v violations
	if r.Name != nil {
		v.notBlank("name", *r.Name)
	}
	if r.Species != nil {
		v.notBlank("species", *r.Species)
	}
	if r.Size != nil {
		v.minSize("size", *r.Size)
	}
	if r.DangerLevel != nil {
		v.dangerLevel("dangerLevel", *r.DangerLevel)
	}
	if r.HealthStatus != nil {
		v.notBlank("healthStatus", *r.HealthStatus)
	}
	return v.err()
}

// violations accumulates field errors in declaration order.
type violations []dErrors.FieldError

func (v *violations) add(field, message string) {
	*v = append(*v, dErrors.FieldError{Field: field, Message: message})
}

func (v *violations) notBlank(field, value string) {
	if isBlank(value) {
		v.add(field, blankMessage)
	}
}

func (v *violations) maxRunes(field, value string, limit int, message string) {
	if utf8.RuneCountInString(value) > limit {
		v.add(field, message)
	}
}

func (v *violations) minInt(field string, value, limit int, message string) {
	if value < limit {
		v.add(field, message)
	}
}

func (v *violations) minSize(field string, value float64) {
	if value < MinCreatureSize {
		v.add(field, sizeMessage)
	}
}

func (v *violations) dangerLevel(field string, value int) {
	if value < MinDangerLevel || value > MaxDangerLevel {
		v.add(field, dangerLevelMessage)
	}
}

func (v violations) err() error {
	if len(v) == 0 {
		return nil
	}
	return dErrors.Validation(v...)
}

func isBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}
