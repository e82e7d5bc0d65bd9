package queries_test

import (
	"context"

	"freight/internal/core/application/usecases/queries"
	"freight/internal/core/domain/model/identity"
	"freight/internal/core/domain/model/kernel"
	"freight/internal/core/domain/model/load"
	"freight/internal/pkg/errs"
)

func (suite *QueryHandlersTestSuite) TestGetLoad_Visibility() {
	ctx := context.Background()
	handler := queries.NewGetLoadQueryHandler(suite.loadRepo)
	posted := suite.addPostedLoad(now)
	assigned := suite.addAssignedLoad()

	stranger, err := identity.NewShipper(kernel.NewUUID(), "Other Foods")
	suite.Require().NoError(err)

	testCases := []struct {
		name    string
		load    *load.Load
		caller  identity.Identity
		visible bool
	}{
		{"owner of posted load", posted, suite.shipper, true},
		{"any carrier while posted", posted, suite.other, true},
		{"admin", assigned, suite.admin, true},
		{"bound carrier", assigned, suite.carrier, true},
		{"owner of assigned load", assigned, suite.shipper, true},
		{"unbound carrier after assignment", assigned, suite.other, false},
		{"another shipper", posted, stranger, false},
	}

	for _, tc := range testCases {
		suite.Run(tc.name, func() {
			query, err := queries.NewGetLoadQuery(tc.load.ID(), tc.caller)
			suite.Require().NoError(err)

			resp, err := handler.Handle(ctx, query)
			if !tc.visible {
				suite.Require().ErrorIs(err, queries.ErrLoadNotVisible)
				return
			}
			suite.Require().NoError(err)
			suite.True(resp.ID.IsEqual(tc.load.ID()))
			suite.Equal(tc.load.Number(), resp.Number)
		})
	}
}

func (suite *QueryHandlersTestSuite) TestGetLoad_AssignedView() {
	l := suite.addAssignedLoad()
	query, err := queries.NewGetLoadQuery(l.ID(), suite.carrier)
	suite.Require().NoError(err)

	resp, err := queries.NewGetLoadQueryHandler(suite.loadRepo).Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.Equal(load.Assigned, resp.Status)
	suite.Require().NotNil(resp.CarrierID)
	suite.True(resp.CarrierID.IsEqual(suite.carrier.ID()))
	suite.Equal(int64(150000), resp.Rate.Cents())
	suite.NotNil(resp.AssignedAt)
	suite.Nil(resp.DeliverBy)
	suite.Equal("dock 4", resp.Notes)
}

func (suite *QueryHandlersTestSuite) TestGetLoad_NotFound() {
	query, err := queries.NewGetLoadQuery(kernel.NewUUID(), suite.admin)
	suite.Require().NoError(err)

	_, err = queries.NewGetLoadQueryHandler(suite.loadRepo).Handle(context.Background(), query)

	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}
