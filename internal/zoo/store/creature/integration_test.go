//go:build integration

package creature_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"menagerie/internal/zoo/models"
	"menagerie/internal/zoo/store/creature"
	"menagerie/internal/zoo/store/zone"
	id "menagerie/pkg/domain"
	"menagerie/pkg/platform/sentinel"
	"menagerie/pkg/testutil/containers"
)

type creatureStore interface {
	FindByID(ctx context.Context, creatureID id.CreatureID) (*models.Creature, error)
	FindAll(ctx context.Context) ([]*models.Creature, error)
	Save(ctx context.Context, c *models.Creature) (*models.Creature, error)
	Delete(ctx context.Context, creatureID id.CreatureID) error
	CountByZoneID(ctx context.Context, zoneID id.ZoneID) (int, error)
}

type zoneStore interface {
	FindByID(ctx context.Context, zoneID id.ZoneID) (*models.Zone, error)
	Save(ctx context.Context, z *models.Zone) (*models.Zone, error)
}

// storeSuite runs the same behaviour checks against each durable backend.
type storeSuite struct {
	suite.Suite
	reset     func()
	zones     zoneStore
	creatures creatureStore
}

func (s *storeSuite) SetupTest() {
	s.reset()
}

func (s *storeSuite) saveZone(name string) *models.Zone {
	now := time.Now().UTC().Truncate(time.Microsecond)
	z, err := s.zones.Save(context.Background(), &models.Zone{Name: name, Capacity: 10, CreatedAt: now, UpdatedAt: now})
	s.Require().NoError(err)
	return z
}

func (s *storeSuite) newCreature(name string, zoneID id.ZoneID) *models.Creature {
	now := time.Now().UTC().Truncate(time.Microsecond)
	return &models.Creature{
		Name: name, Species: "Ave", Size: 1.5, DangerLevel: 4, HealthStatus: "stable",
		ZoneID: zoneID, CreatedAt: now, UpdatedAt: now,
	}
}

func (s *storeSuite) TestLifecycle() {
	ctx := context.Background()
	bosque := s.saveZone("Bosque")
	desert := s.saveZone("Desierto")

	saved, err := s.creatures.Save(ctx, s.newCreature("Fénix", bosque.ID))
	s.Require().NoError(err)
	s.Require().NotNil(saved.Zone)
	s.Equal("Bosque", saved.Zone.Name)

	found, err := s.creatures.FindByID(ctx, saved.ID)
	s.Require().NoError(err)
	s.Equal(1.5, found.Size)
	s.Equal("Bosque", found.Zone.Name)

	count, err := s.creatures.CountByZoneID(ctx, bosque.ID)
	s.Require().NoError(err)
	s.Equal(1, count)

	found.ZoneID = desert.ID
	moved, err := s.creatures.Save(ctx, found)
	s.Require().NoError(err)
	s.Equal("Desierto", moved.Zone.Name)

	count, err = s.creatures.CountByZoneID(ctx, bosque.ID)
	s.Require().NoError(err)
	s.Zero(count)

	all, err := s.creatures.FindAll(ctx)
	s.Require().NoError(err)
	s.Len(all, 1)

	s.Require().NoError(s.creatures.Delete(ctx, saved.ID))
	_, err = s.creatures.FindByID(ctx, saved.ID)
	s.ErrorIs(err, sentinel.ErrNotFound)

	count, err = s.creatures.CountByZoneID(ctx, desert.ID)
	s.Require().NoError(err)
	s.Zero(count)
}

func (s *storeSuite) TestUnknownZone() {
	_, err := s.creatures.Save(context.Background(), s.newCreature("Ghost", 999))
	s.ErrorIs(err, sentinel.ErrInvalidState)
}

func TestPostgresCreatureStore(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}
	pg := containers.GetManager().GetPostgres(t)
	s := &storeSuite{
		zones:     zone.NewPostgres(pg.DB),
		creatures: creature.NewPostgres(pg.DB),
	}
	s.reset = func() {
		s.Require().NoError(pg.TruncateTables(context.Background(), "creatures", "zones"))
	}
	suite.Run(t, s)
}

func TestRedisCreatureStore(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}
	rc := containers.GetManager().GetRedis(t)
	zones := zone.NewRedis(rc.Client)
	s := &storeSuite{
		zones:     zones,
		creatures: creature.NewRedis(rc.Client, zones),
	}
	s.reset = func() {
		s.Require().NoError(rc.FlushAll(context.Background()))
	}
	suite.Run(t, s)
}
