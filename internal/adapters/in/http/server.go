// Package http exposes the freight core over REST. Handlers translate JSON and path
// parameters into commands and queries, take the caller identity from the bearer
// token, and map typed domain errors to status codes.
package http

import (
	"context"
	"log/slog"

	"freight/internal/core/application/usecases/commands"
	"freight/internal/core/application/usecases/queries"
	"freight/internal/core/domain/model/chat"
	"freight/internal/core/domain/model/load"
	"freight/internal/core/domain/model/offer"

	"github.com/labstack/echo/v4"
)

type CreateLoadHandler interface {
	Handle(ctx context.Context, command commands.CreateLoadCommand) (*load.Load, error)
}

type RequestLoadTransitionHandler interface {
	Handle(ctx context.Context, command commands.RequestLoadTransitionCommand) (*load.Load, error)
}

type SubmitOfferHandler interface {
	Handle(ctx context.Context, command commands.SubmitOfferCommand) (*offer.Offer, error)
}

type ResolveOfferHandler interface {
	Handle(ctx context.Context, command commands.ResolveOfferCommand) (*offer.Offer, error)
}

type PostChatMessageHandler interface {
	Handle(ctx context.Context, command commands.PostChatMessageCommand) (*chat.Message, error)
}

type GetLoadHandler interface {
	Handle(ctx context.Context, query queries.GetLoadQuery) (queries.GetLoadQueryResponse, error)
}

type ListPostedLoadsHandler interface {
	Handle(ctx context.Context, query queries.ListPostedLoadsQuery) ([]queries.ListPostedLoadsQueryResponse, error)
}

type ListOffersHandler interface {
	Handle(ctx context.Context, query queries.ListOffersQuery) ([]queries.ListOffersQueryResponse, error)
}

type GetChatMessagesHandler interface {
	Handle(ctx context.Context, query queries.GetChatMessagesQuery) ([]queries.GetChatMessagesQueryResponse, error)
}

// Handlers groups the use cases the server dispatches to.
type Handlers struct {
	CreateLoad            CreateLoadHandler
	RequestLoadTransition RequestLoadTransitionHandler
	SubmitOffer           SubmitOfferHandler
	ResolveOffer          ResolveOfferHandler
	PostChatMessage       PostChatMessageHandler

	GetLoad         GetLoadHandler
	ListPostedLoads ListPostedLoadsHandler
	ListOffers      ListOffersHandler
	GetChatMessages GetChatMessagesHandler
}

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	handlers Handlers
	logger   *slog.Logger
}

// NewServer creates a server over the given use cases. A nil logger falls back to slog.Default.
func NewServer(handlers Handlers, logger *slog.Logger) *Server {
	if logger == nil {
		logger = slog.Default()
	}
	return &Server{
		handlers: handlers,
		logger:   logger.With("component", "http"),
	}
}

// Register mounts the API routes on g. The group is expected to carry the
// authentication middleware; every route reads the caller from it.
func (s *Server) Register(g *echo.Group) {
	g.POST("/loads", s.CreateLoad)
	g.GET("/loads", s.ListPostedLoads)
	g.GET("/loads/:loadId", s.GetLoad)
	g.PATCH("/loads/:loadId", s.RequestLoadTransition)

	g.POST("/loads/:loadId/offers", s.CreateOffer)
	g.GET("/loads/:loadId/offers", s.ListOffers)
	g.POST("/offers/:offerId/resolution", s.ResolveOffer)

	g.GET("/loads/:loadId/messages", s.GetChatMessages)
	g.POST("/loads/:loadId/messages", s.PostChatMessage)
}
