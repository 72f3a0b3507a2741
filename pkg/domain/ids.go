// Package domain holds typed identifiers shared across bounded contexts.
//
// Identifiers are positive 64-bit integers assigned by the persistence layer.
// The zero value means "not yet persisted".
package domain

import (
	"strconv"
	"strings"

	dErrors "menagerie/pkg/domain-errors"
)

// maxIDLength bounds the textual form accepted from path parameters.
const maxIDLength = 19

type (
	ZoneID     int64
	CreatureID int64
)

func (id ZoneID) String() string     { return strconv.FormatInt(int64(id), 10) }
func (id CreatureID) String() string { return strconv.FormatInt(int64(id), 10) }

// IsNil reports whether the id has not been assigned.
func (id ZoneID) IsNil() bool { return id == 0 }

// IsNil reports whether the id has not been assigned.
func (id CreatureID) IsNil() bool { return id == 0 }

// ParseZoneID parses a zone identifier from untrusted input.
func ParseZoneID(s string) (ZoneID, error) {
	v, err := parsePositiveID(s, "zone")
	return ZoneID(v), err
}

// ParseCreatureID parses a creature identifier from untrusted input.
func ParseCreatureID(s string) (CreatureID, error) {
	v, err := parsePositiveID(s, "creature")
	return CreatureID(v), err
}

func parsePositiveID(s, kind string) (int64, error) {
	if s == "" || len(s) > maxIDLength {
		return 0, dErrors.New(dErrors.CodeInvalidInput, "invalid "+kind+" id")
	}
	if strings.TrimLeft(s, "0123456789") != "" {
		return 0, dErrors.New(dErrors.CodeInvalidInput, "invalid "+kind+" id")
	}
	v, err := strconv.ParseInt(s, 10, 64)
	if err != nil || v <= 0 {
		return 0, dErrors.New(dErrors.CodeInvalidInput, "invalid "+kind+" id")
	}
	return v, nil
}
