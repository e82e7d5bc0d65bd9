package queries_test

import (
	"context"
	"time"

	"freight/internal/core/application/usecases/queries"
	"freight/internal/core/domain/model/identity"
	"freight/internal/core/domain/model/kernel"
	"freight/internal/core/domain/model/offer"
	"freight/internal/pkg/errs"
)

func (suite *QueryHandlersTestSuite) TestListOffers_NewestFirstWithCarrierInfo() {
	ctx := context.Background()
	l := suite.addPostedLoad(now)
	older := suite.addOffer(l, suite.carrier, 150000, now)
	newer := suite.addOffer(l, suite.other, 140000, now.Add(time.Hour))

	handler := queries.NewListOffersQueryHandler(suite.pg.DB, suite.loadRepo)

	for _, caller := range []identity.Identity{suite.shipper, suite.admin} {
		query, err := queries.NewListOffersQuery(l.ID(), caller)
		suite.Require().NoError(err)

		offers, err := handler.Handle(ctx, query)
		suite.Require().NoError(err)
		suite.Require().Len(offers, 2)

		suite.True(offers[0].ID.IsEqual(newer.ID()))
		suite.True(offers[1].ID.IsEqual(older.ID()))
		suite.Equal("Lone Star Haulers", offers[0].CarrierCompany)
		suite.Equal("MC-200", offers[0].CarrierMCNumber)
		suite.Equal(int64(140000), offers[0].Amount.Cents())
		suite.Equal(offer.Pending, offers[0].Status)
		suite.True(offers[0].LoadID.IsEqual(l.ID()))
	}
}

func (suite *QueryHandlersTestSuite) TestListOffers_EmptyLoad() {
	l := suite.addPostedLoad(now)
	query, err := queries.NewListOffersQuery(l.ID(), suite.shipper)
	suite.Require().NoError(err)

	offers, err := queries.NewListOffersQueryHandler(suite.pg.DB, suite.loadRepo).Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.NotNil(offers)
	suite.Empty(offers)
}

func (suite *QueryHandlersTestSuite) TestListOffers_CarrierCannotEnumerate() {
	l := suite.addPostedLoad(now)
	suite.addOffer(l, suite.carrier, 150000, now)

	query, err := queries.NewListOffersQuery(l.ID(), suite.carrier)
	suite.Require().NoError(err)

	_, err = queries.NewListOffersQueryHandler(suite.pg.DB, suite.loadRepo).Handle(context.Background(), query)

	suite.Require().ErrorIs(err, queries.ErrOffersNotVisible)
	suite.Require().ErrorIs(err, errs.ErrUnauthorized)
}

func (suite *QueryHandlersTestSuite) TestListOffers_UnknownLoad() {
	query, err := queries.NewListOffersQuery(kernel.NewUUID(), suite.admin)
	suite.Require().NoError(err)

	_, err = queries.NewListOffersQueryHandler(suite.pg.DB, suite.loadRepo).Handle(context.Background(), query)

	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}
