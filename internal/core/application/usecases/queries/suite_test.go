package queries_test

import (
	"context"
	"testing"
	"time"

	"freight/internal/adapters/out/postgres/chatrepo"
	"freight/internal/adapters/out/postgres/loadrepo"
	"freight/internal/adapters/out/postgres/offerrepo"
	"freight/internal/core/domain/model/chat"
	"freight/internal/core/domain/model/identity"
	"freight/internal/core/domain/model/kernel"
	"freight/internal/core/domain/model/load"
	"freight/internal/core/domain/model/offer"
	"freight/internal/testutil"

	"github.com/stretchr/testify/suite"
)

var now = time.Date(2026, 3, 14, 9, 30, 0, 0, time.UTC)

// QueryHandlersTestSuite runs every read-side handler against one PostgreSQL container.
type QueryHandlersTestSuite struct {
	suite.Suite
	pg        *testutil.Postgres
	loadRepo  *loadrepo.GormLoadRepository
	offerRepo *offerrepo.GormOfferRepository
	chatRepo  *chatrepo.GormChatRepository

	shipper identity.Shipper
	carrier identity.Carrier
	other   identity.Carrier
	admin   identity.Admin
}

func (suite *QueryHandlersTestSuite) SetupSuite() {
	pg, err := testutil.StartPostgres(context.Background())
	suite.Require().NoError(err)
	suite.pg = pg

	suite.loadRepo = loadrepo.NewGormLoadRepository(pg.DB, nil)
	suite.offerRepo = offerrepo.NewGormOfferRepository(pg.DB)
	suite.chatRepo = chatrepo.NewGormChatRepository(pg.DB)

	suite.shipper, err = identity.NewShipper(kernel.NewUUID(), "Acme Foods")
	suite.Require().NoError(err)
	suite.carrier, err = identity.NewCarrier(kernel.NewUUID(), "Road Runner LLC", "MC-100")
	suite.Require().NoError(err)
	suite.other, err = identity.NewCarrier(kernel.NewUUID(), "Lone Star Haulers", "MC-200")
	suite.Require().NoError(err)
	suite.admin, err = identity.NewAdmin(kernel.NewUUID())
	suite.Require().NoError(err)
}

func (suite *QueryHandlersTestSuite) TearDownSuite() {
	suite.Require().NoError(suite.pg.Terminate(context.Background()))
}

func (suite *QueryHandlersTestSuite) SetupTest() {
	suite.Require().NoError(suite.pg.Truncate())
}

func (suite *QueryHandlersTestSuite) addPostedLoad(postedAt time.Time) *load.Load {
	details, err := load.NewDetails("Dallas, TX", "Tulsa, OK", postedAt.Add(24*time.Hour), time.Time{}, 42000, "reefer", "dock 4")
	suite.Require().NoError(err)
	rate, err := kernel.NewMoney(185000)
	suite.Require().NoError(err)
	l, err := load.NewLoad(kernel.NewUUID(), suite.shipper, details, rate, postedAt)
	suite.Require().NoError(err)
	suite.Require().NoError(suite.loadRepo.Add(context.Background(), l))
	return l
}

// addAssignedLoad stores a load bound to suite.carrier.
func (suite *QueryHandlersTestSuite) addAssignedLoad() *load.Load {
	l := suite.addPostedLoad(now)
	amount, err := kernel.NewMoney(150000)
	suite.Require().NoError(err)
	suite.Require().NoError(l.Assign(suite.carrier.ID(), amount, suite.shipper, now))
	suite.Require().NoError(suite.loadRepo.Update(context.Background(), l, load.Posted))
	return l
}

func (suite *QueryHandlersTestSuite) addOffer(l *load.Load, carrier identity.Carrier, cents int64, at time.Time) *offer.Offer {
	amount, err := kernel.NewMoney(cents)
	suite.Require().NoError(err)
	o, err := offer.NewOffer(kernel.NewUUID(), l.ID(), carrier, amount, "can pick up early", at)
	suite.Require().NoError(err)
	stored, err := suite.offerRepo.Upsert(context.Background(), o)
	suite.Require().NoError(err)
	return stored
}

func (suite *QueryHandlersTestSuite) addMessage(l *load.Load, sender identity.Identity, text string, at time.Time) *chat.Message {
	m, err := chat.NewMessage(kernel.NewUUID(), l.ID(), sender, text, at)
	suite.Require().NoError(err)
	suite.Require().NoError(suite.chatRepo.Append(context.Background(), m))
	return m
}

func TestQueryHandlersTestSuite(t *testing.T) {
	suite.Run(t, new(QueryHandlersTestSuite))
}
