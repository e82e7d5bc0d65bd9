package queries_test

import (
	"context"
	"time"

	"freight/internal/core/application/usecases/queries"
	"freight/internal/core/domain/model/identity"
	"freight/internal/core/domain/services"
	"freight/internal/pkg/errs"
)

func (suite *QueryHandlersTestSuite) TestGetChatMessages_AscendingWithCursor() {
	ctx := context.Background()
	l := suite.addAssignedLoad()
	first := suite.addMessage(l, suite.shipper, "when can you load?", now)
	second := suite.addMessage(l, suite.carrier, "tomorrow 6am", now.Add(time.Minute))
	third := suite.addMessage(l, suite.admin, "noted", now.Add(2*time.Minute))

	handler := queries.NewGetChatMessagesQueryHandler(suite.pg.DB, suite.loadRepo)

	query, err := queries.NewGetChatMessagesQuery(l.ID(), suite.carrier, nil)
	suite.Require().NoError(err)
	all, err := handler.Handle(ctx, query)
	suite.Require().NoError(err)
	suite.Require().Len(all, 3)
	suite.True(all[0].ID.IsEqual(first.ID()))
	suite.True(all[1].ID.IsEqual(second.ID()))
	suite.True(all[2].ID.IsEqual(third.ID()))
	suite.Equal(identity.RoleAdmin, all[2].SenderRole)

	since := second.CreatedAt()
	query, err = queries.NewGetChatMessagesQuery(l.ID(), suite.shipper, &since)
	suite.Require().NoError(err)
	newer, err := handler.Handle(ctx, query)
	suite.Require().NoError(err)
	suite.Require().Len(newer, 1)
	suite.True(newer[0].ID.IsEqual(third.ID()))
	suite.Equal("noted", newer[0].Text)
}

func (suite *QueryHandlersTestSuite) TestGetChatMessages_Gate() {
	ctx := context.Background()
	handler := queries.NewGetChatMessagesQueryHandler(suite.pg.DB, suite.loadRepo)

	posted := suite.addPostedLoad(now)
	query, err := queries.NewGetChatMessagesQuery(posted.ID(), suite.shipper, nil)
	suite.Require().NoError(err)
	_, err = handler.Handle(ctx, query)
	suite.Require().ErrorIs(err, services.ErrChatClosed)

	assigned := suite.addAssignedLoad()
	query, err = queries.NewGetChatMessagesQuery(assigned.ID(), suite.other, nil)
	suite.Require().NoError(err)
	_, err = handler.Handle(ctx, query)
	suite.Require().ErrorIs(err, errs.ErrUnauthorized)
}
