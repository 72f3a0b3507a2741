package models

import (
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	dErrors "menagerie/pkg/domain-errors"
)

func TestNewZone_Invariants(t *testing.T) {
	now := time.Now()

	z, err := NewZone("Bosque", "Frondosa", 80, now)
	require.NoError(t, err)
	assert.True(t, z.ID.IsNil())
	assert.Equal(t, now, z.CreatedAt)

	for name, tc := range map[string]struct {
		name, description string
		capacity          int
	}{
		"blank name":         {" ", "", 1},
		"long description":   {"Bosque", strings.Repeat("a", 256), 1},
		"capacity below one": {"Bosque", "", 0},
	} {
		t.Run(name, func(t *testing.T) {
			_, err := NewZone(tc.name, tc.description, tc.capacity, now)
			require.Error(t, err)
			assert.True(t, dErrors.HasCode(err, dErrors.CodeInvariantViolation))
		})
	}
}

func TestNewCreature_AttachesZone(t *testing.T) {
	zone := &Zone{ID: 2, Name: "Desierto", Capacity: 10}

	c, err := NewCreature("Fénix", "Ave", 1.0, 5, "stable", zone, time.Now())
	require.NoError(t, err)
	assert.Equal(t, zone.ID, c.ZoneID)
	assert.Equal(t, "Desierto", c.Zone.Name)

	_, err = NewCreature("Fénix", "Ave", 1.0, 5, "stable", nil, time.Now())
	assert.True(t, dErrors.HasCode(err, dErrors.CodeInvariantViolation))

	_, err = NewCreature("Fénix", "Ave", 0.05, 5, "stable", zone, time.Now())
	assert.True(t, dErrors.HasCode(err, dErrors.CodeInvariantViolation))

	_, err = NewCreature("Fénix", "Ave", 1.0, 6, "stable", zone, time.Now())
	assert.True(t, dErrors.HasCode(err, dErrors.CodeInvariantViolation))
}

func TestCreature_CanDelete(t *testing.T) {
	t.Run("critical blocks deletion", func(t *testing.T) {
		c := &Creature{Name: "Fénix", HealthStatus: HealthStatusCritical}
		err := c.CanDelete()
		require.Error(t, err)
		assert.True(t, dErrors.HasCode(err, dErrors.CodeInvariantViolation))
	})

	// Matching is exact; other spellings do not block.
	for _, status := range []string{"stable", "Critical", "CRITICAL", " critical"} {
		t.Run(status, func(t *testing.T) {
			c := &Creature{HealthStatus: status}
			assert.NoError(t, c.CanDelete())
		})
	}
}

func TestNewZoneSummary(t *testing.T) {
	z := &Zone{ID: 10, Name: "Bosque", Description: "Frondosa", Capacity: 80}
	s := NewZoneSummary(z, 3)

	assert.Equal(t, ZoneSummary{ID: 10, Name: "Bosque", Description: "Frondosa", Capacity: 80, CreaturesCount: 3}, s)
}

func TestZoneJSONAlwaysCarriesDescription(t *testing.T) {
	zone := &Zone{ID: 4, Name: "Pradera", Capacity: 12}

	raw, err := json.Marshal(zone)
	require.NoError(t, err)
	var fields map[string]any
	require.NoError(t, json.Unmarshal(raw, &fields))
	assert.Contains(t, fields, "description")
	assert.Equal(t, "", fields["description"])

	raw, err = json.Marshal(NewZoneSummary(zone, 0))
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal(raw, &fields))
	assert.Contains(t, fields, "description")
}
