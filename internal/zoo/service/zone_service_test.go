package service

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"menagerie/internal/audit"
	"menagerie/internal/zoo/models"
	"menagerie/internal/zoo/service/mocks"
	id "menagerie/pkg/domain"
	dErrors "menagerie/pkg/domain-errors"
	"menagerie/pkg/platform/sentinel"
	"menagerie/pkg/requestcontext"
)

type ZoneServiceSuite struct {
	suite.Suite
	ctx       context.Context
	ctrl      *gomock.Controller
	zones     *mocks.MockZoneStore
	creatures *mocks.MockCreatureStore
	publisher *mocks.MockAuditPublisher
	service   *ZoneService
	now       time.Time
}

func (s *ZoneServiceSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.zones = mocks.NewMockZoneStore(s.ctrl)
	s.creatures = mocks.NewMockCreatureStore(s.ctrl)
	s.publisher = mocks.NewMockAuditPublisher(s.ctrl)
	s.service = NewZoneService(s.zones, s.creatures, WithAuditPublisher(s.publisher))
	s.now = time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC)
	s.ctx = requestcontext.WithTime(context.Background(), s.now)
	s.ctx = requestcontext.WithRequestID(s.ctx, "req-zone")
}

func TestZoneServiceSuite(t *testing.T) {
	suite.Run(t, new(ZoneServiceSuite))
}

func (s *ZoneServiceSuite) bosque() *models.Zone {
	return &models.Zone{ID: 10, Name: "Bosque", Description: "Bosque encantado", Capacity: 5, CreatedAt: s.now, UpdatedAt: s.now}
}

func (s *ZoneServiceSuite) TestCreate() {
	s.Run("persists a trimmed zone and emits an audit event", func() {
		capacity := 5
		req := &models.CreateZoneRequest{Name: "  Bosque ", Description: "Bosque encantado", Capacity: &capacity}

		s.zones.EXPECT().Save(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, z *models.Zone) (*models.Zone, error) {
				assert.Equal(s.T(), "Bosque", z.Name)
				assert.True(s.T(), z.ID.IsNil())
				assert.Equal(s.T(), s.now, z.CreatedAt)
				saved := *z
				saved.ID = 10
				return &saved, nil
			})
		s.publisher.EXPECT().Emit(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, e audit.Event) error {
				assert.Equal(s.T(), audit.ActionZoneCreated, e.Action)
				assert.Equal(s.T(), "zone:10", e.Subject)
				assert.Equal(s.T(), "req-zone", e.RequestID)
				return nil
			})

		z, err := s.service.Create(s.ctx, req)
		require.NoError(s.T(), err)
		assert.Equal(s.T(), id.ZoneID(10), z.ID)
		assert.Equal(s.T(), "Bosque", z.Name)
	})

	s.Run("rejects invalid input without touching the store", func() {
		capacity := 0
		req := &models.CreateZoneRequest{Name: "   ", Capacity: &capacity}

		_, err := s.service.Create(s.ctx, req)
		require.Error(s.T(), err)
		assert.True(s.T(), dErrors.HasCode(err, dErrors.CodeValidation))
		fields := dErrors.FieldsOf(err)
		require.Len(s.T(), fields, 2)
		assert.Equal(s.T(), "name", fields[0].Field)
		assert.Equal(s.T(), "capacity", fields[1].Field)
	})

	s.Run("translates a taken name into a conflict", func() {
		capacity := 3
		req := &models.CreateZoneRequest{Name: "Bosque", Capacity: &capacity}
		s.zones.EXPECT().Save(gomock.Any(), gomock.Any()).
			Return(nil, fmt.Errorf("insert zone: %w", sentinel.ErrAlreadyUsed))

		_, err := s.service.Create(s.ctx, req)
		require.Error(s.T(), err)
		assert.True(s.T(), dErrors.HasCode(err, dErrors.CodeConflict))
		assert.Contains(s.T(), err.Error(), "Zone name already exists: Bosque")
	})

	s.Run("wraps unexpected store failures as internal", func() {
		capacity := 3
		req := &models.CreateZoneRequest{Name: "Bosque", Capacity: &capacity}
		s.zones.EXPECT().Save(gomock.Any(), gomock.Any()).Return(nil, errors.New("connection reset"))

		_, err := s.service.Create(s.ctx, req)
		assert.True(s.T(), dErrors.HasCode(err, dErrors.CodeInternal))
	})

	s.Run("audit publish failure does not fail the request", func() {
		capacity := 3
		req := &models.CreateZoneRequest{Name: "Pantano", Capacity: &capacity}
		s.zones.EXPECT().Save(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, z *models.Zone) (*models.Zone, error) {
				saved := *z
				saved.ID = 11
				return &saved, nil
			})
		s.publisher.EXPECT().Emit(gomock.Any(), gomock.Any()).Return(audit.ErrBufferFull)

		z, err := s.service.Create(s.ctx, req)
		require.NoError(s.T(), err)
		assert.Equal(s.T(), id.ZoneID(11), z.ID)
	})
}

func (s *ZoneServiceSuite) TestGet() {
	s.Run("returns the stored zone", func() {
		s.zones.EXPECT().FindByID(gomock.Any(), id.ZoneID(10)).Return(s.bosque(), nil)

		z, err := s.service.Get(s.ctx, 10)
		require.NoError(s.T(), err)
		assert.Equal(s.T(), "Bosque", z.Name)
	})

	s.Run("missing zone is not found", func() {
		s.zones.EXPECT().FindByID(gomock.Any(), id.ZoneID(99)).
			Return(nil, fmt.Errorf("zone 99: %w", sentinel.ErrNotFound))

		_, err := s.service.Get(s.ctx, 99)
		assert.True(s.T(), dErrors.HasCode(err, dErrors.CodeNotFound))
		assert.Equal(s.T(), "zone not found", err.Error())
	})
}

func (s *ZoneServiceSuite) TestList() {
	s.zones.EXPECT().FindAll(gomock.Any()).Return([]*models.Zone{s.bosque()}, nil)

	zones, err := s.service.List(s.ctx)
	require.NoError(s.T(), err)
	require.Len(s.T(), zones, 1)
	assert.Equal(s.T(), id.ZoneID(10), zones[0].ID)
}

func (s *ZoneServiceSuite) TestUpdate() {
	s.Run("applies present fields only", func() {
		capacity := 8
		req := &models.UpdateZoneRequest{Capacity: &capacity}
		s.zones.EXPECT().FindByID(gomock.Any(), id.ZoneID(10)).Return(s.bosque(), nil)
		s.zones.EXPECT().Save(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, z *models.Zone) (*models.Zone, error) {
				assert.Equal(s.T(), "Bosque", z.Name)
				assert.Equal(s.T(), "Bosque encantado", z.Description)
				assert.Equal(s.T(), 8, z.Capacity)
				return z, nil
			})
		s.publisher.EXPECT().Emit(gomock.Any(), gomock.Any()).Return(nil)

		z, err := s.service.Update(s.ctx, 10, req)
		require.NoError(s.T(), err)
		assert.Equal(s.T(), 8, z.Capacity)
	})

	s.Run("missing zone is not found and nothing is saved", func() {
		name := "Nuevo"
		s.zones.EXPECT().FindByID(gomock.Any(), id.ZoneID(42)).
			Return(nil, sentinel.ErrNotFound)

		_, err := s.service.Update(s.ctx, 42, &models.UpdateZoneRequest{Name: &name})
		assert.True(s.T(), dErrors.HasCode(err, dErrors.CodeNotFound))
	})

	s.Run("renaming onto a taken name conflicts", func() {
		name := "Pantano"
		s.zones.EXPECT().FindByID(gomock.Any(), id.ZoneID(10)).Return(s.bosque(), nil)
		s.zones.EXPECT().Save(gomock.Any(), gomock.Any()).Return(nil, sentinel.ErrAlreadyUsed)

		_, err := s.service.Update(s.ctx, 10, &models.UpdateZoneRequest{Name: &name})
		assert.True(s.T(), dErrors.HasCode(err, dErrors.CodeConflict))
	})

	s.Run("blank name is rejected before loading", func() {
		name := "  "
		_, err := s.service.Update(s.ctx, 10, &models.UpdateZoneRequest{Name: &name})
		assert.True(s.T(), dErrors.HasCode(err, dErrors.CodeValidation))
	})
}

func (s *ZoneServiceSuite) TestDelete() {
	s.Run("deletes an empty zone exactly once", func() {
		s.zones.EXPECT().FindByID(gomock.Any(), id.ZoneID(10)).Return(s.bosque(), nil)
		s.creatures.EXPECT().CountByZoneID(gomock.Any(), id.ZoneID(10)).Return(0, nil)
		s.zones.EXPECT().Delete(gomock.Any(), id.ZoneID(10)).Return(nil).Times(1)
		s.publisher.EXPECT().Emit(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, e audit.Event) error {
				assert.Equal(s.T(), audit.ActionZoneDeleted, e.Action)
				assert.Equal(s.T(), "Bosque", e.Name)
				return nil
			})

		require.NoError(s.T(), s.service.Delete(s.ctx, 10))
	})

	s.Run("occupied zone is never deleted", func() {
		s.zones.EXPECT().FindByID(gomock.Any(), id.ZoneID(10)).Return(s.bosque(), nil)
		s.creatures.EXPECT().CountByZoneID(gomock.Any(), id.ZoneID(10)).Return(3, nil)
		s.zones.EXPECT().Delete(gomock.Any(), gomock.Any()).Times(0)

		err := s.service.Delete(s.ctx, 10)
		require.Error(s.T(), err)
		assert.True(s.T(), dErrors.HasCode(err, dErrors.CodeInvariantViolation))
		assert.Equal(s.T(), "cannot delete zone Bosque: it still has 3 creatures", err.Error())
	})

	s.Run("singular message for one creature", func() {
		s.zones.EXPECT().FindByID(gomock.Any(), id.ZoneID(10)).Return(s.bosque(), nil)
		s.creatures.EXPECT().CountByZoneID(gomock.Any(), id.ZoneID(10)).Return(1, nil)

		err := s.service.Delete(s.ctx, 10)
		assert.Equal(s.T(), "cannot delete zone Bosque: it still has 1 creature", err.Error())
	})

	s.Run("missing zone is not found and never counted", func() {
		s.zones.EXPECT().FindByID(gomock.Any(), id.ZoneID(77)).Return(nil, sentinel.ErrNotFound)

		err := s.service.Delete(s.ctx, 77)
		assert.True(s.T(), dErrors.HasCode(err, dErrors.CodeNotFound))
	})

	s.Run("creature assigned after the count blocks the delete", func() {
		s.zones.EXPECT().FindByID(gomock.Any(), id.ZoneID(10)).Return(s.bosque(), nil)
		s.creatures.EXPECT().CountByZoneID(gomock.Any(), id.ZoneID(10)).Return(0, nil)
		s.zones.EXPECT().Delete(gomock.Any(), id.ZoneID(10)).
			Return(fmt.Errorf("delete zone: %w", sentinel.ErrInvalidState))

		err := s.service.Delete(s.ctx, 10)
		assert.True(s.T(), dErrors.HasCode(err, dErrors.CodeInvariantViolation))
	})
}

func (s *ZoneServiceSuite) TestFindSummary() {
	s.Run("counts creatures per zone in store order", func() {
		pantano := &models.Zone{ID: 11, Name: "Pantano", Capacity: 2}
		s.zones.EXPECT().FindAll(gomock.Any()).Return([]*models.Zone{s.bosque(), pantano}, nil)
		gomock.InOrder(
			s.creatures.EXPECT().CountByZoneID(gomock.Any(), id.ZoneID(10)).Return(3, nil),
			s.creatures.EXPECT().CountByZoneID(gomock.Any(), id.ZoneID(11)).Return(0, nil),
		)

		summaries, err := s.service.FindSummary(s.ctx)
		require.NoError(s.T(), err)
		require.Len(s.T(), summaries, 2)
		assert.Equal(s.T(), models.ZoneSummary{
			ID: 10, Name: "Bosque", Description: "Bosque encantado", Capacity: 5, CreaturesCount: 3,
		}, summaries[0])
		assert.Equal(s.T(), int64(0), summaries[1].CreaturesCount)
	})

	s.Run("empty store yields an empty list", func() {
		s.zones.EXPECT().FindAll(gomock.Any()).Return(nil, nil)

		summaries, err := s.service.FindSummary(s.ctx)
		require.NoError(s.T(), err)
		assert.NotNil(s.T(), summaries)
		assert.Empty(s.T(), summaries)
	})

	s.Run("count failure is internal", func() {
		s.zones.EXPECT().FindAll(gomock.Any()).Return([]*models.Zone{s.bosque()}, nil)
		s.creatures.EXPECT().CountByZoneID(gomock.Any(), id.ZoneID(10)).Return(0, errors.New("timeout"))

		_, err := s.service.FindSummary(s.ctx)
		assert.True(s.T(), dErrors.HasCode(err, dErrors.CodeInternal))
	})
}
