package http_test

import (
	"context"

	"freight/internal/core/application/usecases/commands"
	"freight/internal/core/application/usecases/queries"
	"freight/internal/core/domain/model/chat"
	"freight/internal/core/domain/model/load"
	"freight/internal/core/domain/model/offer"

	"github.com/stretchr/testify/mock"
)

type MockCreateLoad struct{ mock.Mock }

func (m *MockCreateLoad) Handle(ctx context.Context, cmd commands.CreateLoadCommand) (*load.Load, error) {
	args := m.Called(ctx, cmd)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*load.Load), args.Error(1)
}

type MockRequestLoadTransition struct{ mock.Mock }

func (m *MockRequestLoadTransition) Handle(ctx context.Context, cmd commands.RequestLoadTransitionCommand) (*load.Load, error) {
	args := m.Called(ctx, cmd)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*load.Load), args.Error(1)
}

type MockSubmitOffer struct{ mock.Mock }

func (m *MockSubmitOffer) Handle(ctx context.Context, cmd commands.SubmitOfferCommand) (*offer.Offer, error) {
	args := m.Called(ctx, cmd)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*offer.Offer), args.Error(1)
}

type MockResolveOffer struct{ mock.Mock }

func (m *MockResolveOffer) Handle(ctx context.Context, cmd commands.ResolveOfferCommand) (*offer.Offer, error) {
	args := m.Called(ctx, cmd)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*offer.Offer), args.Error(1)
}

type MockPostChatMessage struct{ mock.Mock }

func (m *MockPostChatMessage) Handle(ctx context.Context, cmd commands.PostChatMessageCommand) (*chat.Message, error) {
	args := m.Called(ctx, cmd)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*chat.Message), args.Error(1)
}

type MockGetLoad struct{ mock.Mock }

func (m *MockGetLoad) Handle(ctx context.Context, q queries.GetLoadQuery) (queries.GetLoadQueryResponse, error) {
	args := m.Called(ctx, q)
	return args.Get(0).(queries.GetLoadQueryResponse), args.Error(1)
}

type MockListPostedLoads struct{ mock.Mock }

func (m *MockListPostedLoads) Handle(ctx context.Context, q queries.ListPostedLoadsQuery) ([]queries.ListPostedLoadsQueryResponse, error) {
	args := m.Called(ctx, q)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]queries.ListPostedLoadsQueryResponse), args.Error(1)
}

type MockListOffers struct{ mock.Mock }

func (m *MockListOffers) Handle(ctx context.Context, q queries.ListOffersQuery) ([]queries.ListOffersQueryResponse, error) {
	args := m.Called(ctx, q)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]queries.ListOffersQueryResponse), args.Error(1)
}

type MockGetChatMessages struct{ mock.Mock }

func (m *MockGetChatMessages) Handle(ctx context.Context, q queries.GetChatMessagesQuery) ([]queries.GetChatMessagesQueryResponse, error) {
	args := m.Called(ctx, q)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]queries.GetChatMessagesQueryResponse), args.Error(1)
}
