package cmd

import (
	"log/slog"

	"freight/internal/adapters/out/postgres"
	"freight/internal/adapters/out/postgres/loadrepo"
	"freight/internal/core/application/usecases/commands"
	"freight/internal/core/application/usecases/queries"
	"freight/internal/core/ports"

	"gorm.io/gorm"
)

type CompositionRoot struct {
	gormDB     *gorm.DB
	uowFactory *postgres.GormUnitOfWorkFactory
}

func NewCompositionRoot(_ Config, gormDB *gorm.DB, publisher ports.EventPublisher, logger *slog.Logger) CompositionRoot {
	return CompositionRoot{
		gormDB:     gormDB,
		uowFactory: postgres.NewGormUnitOfWorkFactory(gormDB, publisher, logger),
	}
}

func (c *CompositionRoot) CreateCreateLoadCommandHandler() commands.CreateLoadCommandHandler {
	var f commands.LoadUoWFactory = FuncLoadUoWFactory(func() commands.LoadUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateLoadCommandHandler(f)
}

func (c *CompositionRoot) CreateRequestLoadTransitionCommandHandler() commands.RequestLoadTransitionCommandHandler {
	var f commands.LoadUoWFactory = FuncLoadUoWFactory(func() commands.LoadUoW {
		return c.uowFactory.Create()
	})
	return commands.NewRequestLoadTransitionCommandHandler(f)
}

func (c *CompositionRoot) CreateSubmitOfferCommandHandler() commands.SubmitOfferCommandHandler {
	var f commands.MarketUoWFactory = FuncMarketUoWFactory(func() commands.MarketUoW {
		return c.uowFactory.Create()
	})
	return commands.NewSubmitOfferCommandHandler(f)
}

func (c *CompositionRoot) CreateResolveOfferCommandHandler() commands.ResolveOfferCommandHandler {
	var f commands.MarketUoWFactory = FuncMarketUoWFactory(func() commands.MarketUoW {
		return c.uowFactory.Create()
	})
	return commands.NewResolveOfferCommandHandler(f)
}

func (c *CompositionRoot) CreatePostChatMessageCommandHandler() commands.PostChatMessageCommandHandler {
	var f commands.ChatUoWFactory = FuncChatUoWFactory(func() commands.ChatUoW {
		return c.uowFactory.Create()
	})
	return commands.NewPostChatMessageCommandHandler(f)
}

func (c *CompositionRoot) CreateRejectStaleOffersCommandHandler() commands.RejectStaleOffersCommandHandler {
	var f commands.OfferUoWFactory = FuncOfferUoWFactory(func() commands.OfferUoW {
		return c.uowFactory.Create()
	})
	return commands.NewRejectStaleOffersCommandHandler(f)
}

func (c *CompositionRoot) CreateGetLoadQueryHandler() queries.GetLoadQueryHandler {
	return queries.NewGetLoadQueryHandler(c.loadReader())
}

func (c *CompositionRoot) CreateListPostedLoadsQueryHandler() queries.ListPostedLoadsQueryHandler {
	return queries.NewListPostedLoadsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateListOffersQueryHandler() queries.ListOffersQueryHandler {
	return queries.NewListOffersQueryHandler(c.gormDB, c.loadReader())
}

func (c *CompositionRoot) CreateGetChatMessagesQueryHandler() queries.GetChatMessagesQueryHandler {
	return queries.NewGetChatMessagesQueryHandler(c.gormDB, c.loadReader())
}

// loadReader reads loads outside of any transaction; nothing it returns is tracked.
func (c *CompositionRoot) loadReader() queries.LoadReader {
	return loadrepo.NewGormLoadRepository(c.gormDB, nil)
}

type FuncLoadUoWFactory func() commands.LoadUoW

func (f FuncLoadUoWFactory) Create() commands.LoadUoW {
	return f()
}

type FuncMarketUoWFactory func() commands.MarketUoW

func (f FuncMarketUoWFactory) Create() commands.MarketUoW {
	return f()
}

type FuncChatUoWFactory func() commands.ChatUoW

func (f FuncChatUoWFactory) Create() commands.ChatUoW {
	return f()
}

type FuncOfferUoWFactory func() commands.OfferUoW

func (f FuncOfferUoWFactory) Create() commands.OfferUoW {
	return f()
}
