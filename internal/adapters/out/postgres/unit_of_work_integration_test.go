package postgres_test

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	postgres_adapter "freight/internal/adapters/out/postgres"
	"freight/internal/core/domain/model/identity"
	"freight/internal/core/domain/model/kernel"
	"freight/internal/core/domain/model/load"
	"freight/internal/core/domain/model/offer"
	"freight/internal/core/domain/services"
	"freight/internal/core/ports"
	"freight/internal/testutil"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

var now = time.Date(2026, 3, 14, 9, 30, 0, 0, time.UTC)

// MockEventPublisher records what the unit of work publishes after commit.
type MockEventPublisher struct {
	mock.Mock
}

func (m *MockEventPublisher) Publish(ctx context.Context, events ...kernel.DomainEvent) error {
	args := m.Called(ctx, events)
	return args.Error(0)
}

// UnitOfWorkIntegrationTestSuite provides integration testing for the GORM-based
// Unit of Work implementation with a real PostgreSQL database.
type UnitOfWorkIntegrationTestSuite struct {
	suite.Suite
	pg        *testutil.Postgres
	publisher *MockEventPublisher
	factory   ports.UnitOfWorkFactory
	shipper   identity.Shipper
}

func (suite *UnitOfWorkIntegrationTestSuite) SetupSuite() {
	pg, err := testutil.StartPostgres(context.Background())
	suite.Require().NoError(err)
	suite.pg = pg
}

// SetupTest ensures clean database state and a fresh publisher mock before each test.
func (suite *UnitOfWorkIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.pg.Truncate())

	suite.publisher = new(MockEventPublisher)
	suite.factory = postgres_adapter.NewGormUnitOfWorkFactory(suite.pg.DB, suite.publisher, nil)

	shipper, err := identity.NewShipper(kernel.NewUUID(), "Acme Foods")
	suite.Require().NoError(err)
	suite.shipper = shipper
}

func (suite *UnitOfWorkIntegrationTestSuite) TearDownSuite() {
	suite.Require().NoError(suite.pg.Terminate(context.Background()))
}

func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWorkFactory_Create() {
	uow1 := suite.factory.Create()
	uow2 := suite.factory.Create()

	suite.NotSame(uow1, uow2, "Factory should create separate instances")
	suite.NotNil(uow1.LoadRepository())
	suite.NotNil(uow1.OfferRepository())
	suite.NotNil(uow1.ChatRepository())
}

func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_TransactionLifecycle() {
	ctx := context.Background()
	uow := suite.factory.Create()

	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.Begin(ctx), "Multiple begin calls should be safe")
	suite.Require().NoError(uow.Commit(ctx))

	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.Rollback(ctx))

	suite.publisher.AssertNotCalled(suite.T(), "Publish", mock.Anything, mock.Anything)
}

func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_TransactionErrors() {
	ctx := context.Background()
	uow := suite.factory.Create()

	suite.Error(uow.Commit(ctx), "Should error when committing without active transaction")
	suite.Error(uow.Rollback(ctx), "Should error when rolling back without active transaction")
}

func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_CommitPublishesEvents() {
	ctx := context.Background()
	l := suite.createPostedLoad()

	suite.publisher.On("Publish", mock.Anything, mock.MatchedBy(func(events []kernel.DomainEvent) bool {
		return len(events) == 1 &&
			events[0].EventName() == load.EventLoadPosted &&
			events[0].AggregateID().IsEqual(l.ID())
	})).Return(nil).Once()

	uow := suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.LoadRepository().Add(ctx, l))
	suite.Require().NoError(uow.Commit(ctx))

	suite.Empty(l.DomainEvents(), "Published events should be cleared")
	suite.assertLoadCount(1)
	suite.publisher.AssertExpectations(suite.T())
}

func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_PublishFailureKeepsCommit() {
	ctx := context.Background()
	l := suite.createPostedLoad()
	suite.publisher.On("Publish", mock.Anything, mock.Anything).Return(errors.New("broker down")).Once()

	uow := suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.LoadRepository().Add(ctx, l))
	suite.Require().NoError(uow.Commit(ctx))

	suite.assertLoadCount(1)
	suite.publisher.AssertExpectations(suite.T())
}

func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_RollbackDiscardsWritesAndEvents() {
	ctx := context.Background()
	l := suite.createPostedLoad()
	carrier := suite.newCarrier("Road Runner LLC")

	uow := suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.LoadRepository().Add(ctx, l))
	_, err := uow.OfferRepository().Upsert(ctx, suite.newOffer(l, carrier, 150000))
	suite.Require().NoError(err)
	suite.Require().NoError(uow.Rollback(ctx))

	suite.assertLoadCount(0)
	var offers int64
	suite.Require().NoError(suite.pg.DB.Table("offers").Count(&offers).Error)
	suite.Zero(offers)
	suite.publisher.AssertNotCalled(suite.T(), "Publish", mock.Anything, mock.Anything)
}

func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_SameAggregateTrackedTwicePublishedOnce() {
	ctx := context.Background()
	l := suite.addPostedLoad()

	var published []kernel.DomainEvent
	suite.publisher.On("Publish", mock.Anything, mock.Anything).
		Run(func(args mock.Arguments) {
			published = args.Get(1).([]kernel.DomainEvent)
		}).
		Return(nil).Once()

	uow := suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))
	locked, err := uow.LoadRepository().GetForUpdate(ctx, l.ID())
	suite.Require().NoError(err)
	suite.Require().NoError(locked.RequestTransition(load.Cancelled, suite.shipper, now))
	suite.Require().NoError(uow.LoadRepository().Update(ctx, locked, load.Posted))
	uow.(*postgres_adapter.GormUnitOfWork).TrackAggregate(locked.ID(), locked)
	suite.Require().NoError(uow.Commit(ctx))

	suite.Require().Len(published, 1)
	suite.Equal(load.EventLoadStatusChanged, published[0].EventName())
	suite.publisher.AssertExpectations(suite.T())
}

// TestUnitOfWork_ConcurrentAcceptance races two acceptances on one load. The row lock
// serializes them, so exactly one binds its carrier and the other sees the load
// already assigned.
func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_ConcurrentAcceptance() {
	ctx := context.Background()
	l := suite.addPostedLoad()

	first, err := suite.factory.Create().OfferRepository().Upsert(ctx, suite.newOffer(l, suite.newCarrier("A"), 150000))
	suite.Require().NoError(err)
	second, err := suite.factory.Create().OfferRepository().Upsert(ctx, suite.newOffer(l, suite.newCarrier("B"), 140000))
	suite.Require().NoError(err)

	suite.publisher.On("Publish", mock.Anything, mock.Anything).Return(nil)

	negotiator := services.NewNegotiator()
	accept := func(offerID kernel.UUID) error {
		uow := suite.factory.Create()
		if err := uow.Begin(ctx); err != nil {
			return err
		}
		defer func() { _ = uow.Rollback(ctx) }()

		stored, err := uow.LoadRepository().GetForUpdate(ctx, l.ID())
		if err != nil {
			return err
		}
		o, err := uow.OfferRepository().GetForUpdate(ctx, offerID)
		if err != nil {
			return err
		}
		expected := stored.Status()
		if err := negotiator.Resolve(stored, o, offer.Accepted, suite.shipper, now); err != nil {
			return err
		}
		if err := uow.LoadRepository().Update(ctx, stored, expected); err != nil {
			return err
		}
		if err := uow.OfferRepository().Update(ctx, o); err != nil {
			return err
		}
		return uow.Commit(ctx)
	}

	var wg sync.WaitGroup
	results := make([]error, 2)
	for i, id := range []kernel.UUID{first.ID(), second.ID()} {
		wg.Add(1)
		go func(i int, id kernel.UUID) {
			defer wg.Done()
			results[i] = accept(id)
		}(i, id)
	}
	wg.Wait()

	var wins, losses int
	for _, err := range results {
		switch {
		case err == nil:
			wins++
		case errors.Is(err, load.ErrLoadAlreadyAssigned):
			losses++
		default:
			suite.Failf("unexpected error", "%v", err)
		}
	}
	suite.Equal(1, wins)
	suite.Equal(1, losses)

	stored, err := suite.factory.Create().LoadRepository().Get(ctx, l.ID())
	suite.Require().NoError(err)
	suite.Equal(load.Assigned, stored.Status())

	var accepted int64
	suite.Require().NoError(suite.pg.DB.Table("offers").
		Where("load_id = ? AND status = ?", l.ID().Bytes(), offer.Accepted.String()).
		Count(&accepted).Error)
	suite.Equal(int64(1), accepted)
}

func (suite *UnitOfWorkIntegrationTestSuite) createPostedLoad() *load.Load {
	details, err := load.NewDetails("Dallas, TX", "Tulsa, OK", now.Add(24*time.Hour), time.Time{}, 42000, "reefer", "")
	suite.Require().NoError(err)
	rate, _ := kernel.NewMoney(185000)
	l, err := load.NewLoad(kernel.NewUUID(), suite.shipper, details, rate, now)
	suite.Require().NoError(err)
	return l
}

// addPostedLoad stores a load outside of any unit of work, so nothing is published.
func (suite *UnitOfWorkIntegrationTestSuite) addPostedLoad() *load.Load {
	l := suite.createPostedLoad()
	suite.Require().NoError(suite.factory.Create().LoadRepository().Add(context.Background(), l))
	l.ClearDomainEvents()
	return l
}

func (suite *UnitOfWorkIntegrationTestSuite) newCarrier(company string) identity.Carrier {
	c, err := identity.NewCarrier(kernel.NewUUID(), company, "MC-"+company)
	suite.Require().NoError(err)
	return c
}

func (suite *UnitOfWorkIntegrationTestSuite) newOffer(l *load.Load, carrier identity.Carrier, cents int64) *offer.Offer {
	amount, _ := kernel.NewMoney(cents)
	o, err := offer.NewOffer(kernel.NewUUID(), l.ID(), carrier, amount, "", now)
	suite.Require().NoError(err)
	return o
}

func (suite *UnitOfWorkIntegrationTestSuite) assertLoadCount(expected int64) {
	var count int64
	suite.Require().NoError(suite.pg.DB.Table("loads").Count(&count).Error)
	suite.Equal(expected, count)
}

func TestUnitOfWorkIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(UnitOfWorkIntegrationTestSuite))
}
