// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS architecture.
// All commands follow a consistent pattern: validation, transaction management, and persistence.
package commands

import (
	"context"

	"freight/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command handlers.
// Each handler asks only for the repositories it touches.
type (
	// TxManager handles database transaction lifecycle.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// LoadRepoFactory provides access to load repository within a transaction.
	LoadRepoFactory interface {
		LoadRepository() ports.LoadRepository
	}

	// OfferRepoFactory provides access to offer repository within a transaction.
	OfferRepoFactory interface {
		OfferRepository() ports.OfferRepository
	}

	// ChatRepoFactory provides access to chat repository within a transaction.
	ChatRepoFactory interface {
		ChatRepository() ports.ChatRepository
	}

	// LoadUoW manages transactions for load-only operations.
	LoadUoW interface {
		TxManager
		LoadRepoFactory
	}

	// LoadUoWFactory creates new load unit of work instances.
	LoadUoWFactory interface {
		Create() LoadUoW
	}

	// OfferUoW manages transactions for offer-only operations such as the sweep.
	OfferUoW interface {
		TxManager
		OfferRepoFactory
	}

	// OfferUoWFactory creates new offer unit of work instances.
	OfferUoWFactory interface {
		Create() OfferUoW
	}

	// MarketUoW manages transactions that read a load and write its offers.
	//
	// Example:
	//   uow := factory.Create()
	//   err := uow.Begin(ctx)
	//   defer uow.Rollback(ctx)
	//
	//   l, err := uow.LoadRepository().GetForUpdate(ctx, loadID)
	//   o, err := uow.OfferRepository().GetForUpdate(ctx, offerID)
	//   // ... resolve
	//
	//   err = uow.Commit(ctx)
	MarketUoW interface {
		TxManager
		LoadRepoFactory
		OfferRepoFactory
	}

	// MarketUoWFactory creates new market unit of work instances.
	MarketUoWFactory interface {
		Create() MarketUoW
	}

	// ChatUoW manages transactions that check a load and append to its chat.
	ChatUoW interface {
		TxManager
		LoadRepoFactory
		ChatRepoFactory
	}

	// ChatUoWFactory creates new chat unit of work instances.
	ChatUoWFactory interface {
		Create() ChatUoW
	}
)
