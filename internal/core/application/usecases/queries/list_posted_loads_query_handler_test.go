package queries_test

import (
	"context"
	"time"

	"freight/internal/core/application/usecases/queries"
)

func (suite *QueryHandlersTestSuite) TestListPostedLoads_NewestFirstOnlyPosted() {
	ctx := context.Background()
	older := suite.addPostedLoad(now)
	newer := suite.addPostedLoad(now.Add(time.Hour))
	suite.addAssignedLoad()

	query, err := queries.NewListPostedLoadsQuery(suite.carrier, 0)
	suite.Require().NoError(err)

	board, err := queries.NewListPostedLoadsQueryHandler(suite.pg.DB).Handle(ctx, query)

	suite.Require().NoError(err)
	suite.Require().Len(board, 2)
	suite.True(board[0].ID.IsEqual(newer.ID()))
	suite.True(board[1].ID.IsEqual(older.ID()))
	suite.Equal("Dallas, TX", board[0].Origin)
	suite.Equal(int64(185000), board[0].Rate.Cents())
	suite.Equal(42000, board[0].WeightLbs)
	suite.Nil(board[0].DeliverBy)
}

func (suite *QueryHandlersTestSuite) TestListPostedLoads_Limit() {
	for i := range 3 {
		suite.addPostedLoad(now.Add(time.Duration(i) * time.Minute))
	}

	query, err := queries.NewListPostedLoadsQuery(suite.shipper, 2)
	suite.Require().NoError(err)

	board, err := queries.NewListPostedLoadsQueryHandler(suite.pg.DB).Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.Len(board, 2)
}
