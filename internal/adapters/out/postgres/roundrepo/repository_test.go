package roundrepo_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	postgres_adapter "freight/internal/adapters/out/postgres"
	"freight/internal/adapters/out/postgres/roundrepo"
	"freight/internal/core/domain/model/kernel"
	"freight/internal/core/domain/model/round"
	"freight/internal/pkg/errs"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
)

var plannedFor = time.Date(2024, 10, 2, 0, 0, 0, 0, time.UTC)

type MockAggregateTracker struct {
	mock.Mock
}

func (m *MockAggregateTracker) TrackAggregate(id kernel.UUID, aggregate any) {
	m.Called(id, aggregate)
}

type RoundRepositoryTestSuite struct {
	suite.Suite
	db   *gorm.DB
	repo *roundrepo.GormRoundRepository
}

func (suite *RoundRepositoryTestSuite) SetupTest() {
	db, err := postgres_adapter.Open(context.Background(), postgres_adapter.ConnectionConfig{
		Driver: postgres_adapter.DriverSQLite,
		DSN:    fmt.Sprintf("file:%s?mode=memory&cache=shared", kernel.NewUUID()),
	})
	suite.Require().NoError(err)
	suite.Require().NoError(postgres_adapter.Migrate(db))

	tracker := &MockAggregateTracker{}
	tracker.On("TrackAggregate", mock.Anything, mock.Anything).Return()

	suite.db = db
	suite.repo = roundrepo.NewGormRoundRepository(db, tracker)
}

func (suite *RoundRepositoryTestSuite) TearDownTest() {
	sqlDB, err := suite.db.DB()
	suite.Require().NoError(err)
	suite.Require().NoError(sqlDB.Close())
}

func (suite *RoundRepositoryTestSuite) addRound(members ...kernel.UUID) *round.Round {
	created, err := round.NewRound(kernel.NewUUID(), round.NewRoundCode(), plannedFor, "north loop", plannedFor)
	suite.Require().NoError(err)
	for _, id := range members {
		_, err = created.AddShipment(id, plannedFor)
		suite.Require().NoError(err)
	}
	suite.Require().NoError(suite.repo.Add(context.Background(), created))
	return created
}

func (suite *RoundRepositoryTestSuite) TestAddAndGetByCode() {
	first, second := kernel.NewUUID(), kernel.NewUUID()
	created := suite.addRound(first, second)

	loaded, err := suite.repo.GetByCode(context.Background(), created.Code())
	suite.Require().NoError(err)
	suite.Equal(created.ID(), loaded.ID())
	suite.Equal(round.Planned, loaded.Status())
	suite.Equal("north loop", loaded.Comment())
	suite.True(plannedFor.Equal(loaded.Date()))

	memberships := loaded.Memberships()
	suite.Require().Len(memberships, 2)
	suite.Equal(first, memberships[0].ShipmentID())
	suite.Equal(1, memberships[0].Position())
	suite.Equal(2, memberships[1].Position())
}

func (suite *RoundRepositoryTestSuite) TestUpdateSyncsMembershipsWithoutRenumbering() {
	ctx := context.Background()
	first, second, third := kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID()
	created := suite.addRound(first, second)

	suite.Require().NoError(created.RemoveShipment(first))
	_, err := created.AddShipment(third, plannedFor)
	suite.Require().NoError(err)
	driverID := kernel.NewUUID()
	suite.Require().NoError(created.AssignCrew(&driverID, nil))
	suite.Require().NoError(suite.repo.Update(ctx, created))

	loaded, err := suite.repo.GetByCode(ctx, created.Code())
	suite.Require().NoError(err)
	memberships := loaded.Memberships()
	suite.Require().Len(memberships, 2)
	suite.Equal(second, memberships[0].ShipmentID())
	suite.Equal(2, memberships[0].Position())
	suite.Equal(third, memberships[1].ShipmentID())
	suite.Equal(3, memberships[1].Position())
	suite.Require().NotNil(loaded.DriverID())
	suite.Equal(driverID, *loaded.DriverID())
	suite.Nil(loaded.VehicleID())
}

func (suite *RoundRepositoryTestSuite) TestFindActiveByShipmentIgnoresCancelledRounds() {
	ctx := context.Background()
	member := kernel.NewUUID()
	cancelled := suite.addRound(member)
	suite.Require().NoError(cancelled.ChangeStatus(round.Cancelled))
	suite.Require().NoError(suite.repo.Update(ctx, cancelled))

	_, err := suite.repo.FindActiveByShipment(ctx, member)
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)

	active := suite.addRound(member)
	found, err := suite.repo.FindActiveByShipment(ctx, member)
	suite.Require().NoError(err)
	suite.Equal(active.Code(), found.Code())
}

func (suite *RoundRepositoryTestSuite) TestDeleteRemovesMemberships() {
	ctx := context.Background()
	member := kernel.NewUUID()
	created := suite.addRound(member)

	suite.Require().NoError(suite.repo.Delete(ctx, created.ID()))

	_, err := suite.repo.GetByCode(ctx, created.Code())
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)

	var remaining int64
	suite.Require().NoError(suite.db.Model(&roundrepo.MembershipDTO{}).Count(&remaining).Error)
	suite.Zero(remaining)

	suite.Require().ErrorIs(suite.repo.Delete(ctx, created.ID()), errs.ErrObjectNotFound)
}

func TestRoundRepositorySuite(t *testing.T) {
	suite.Run(t, new(RoundRepositoryTestSuite))
}
