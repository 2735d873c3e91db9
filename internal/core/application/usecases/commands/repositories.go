// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS architecture.
// All commands follow a consistent pattern: validation, transaction management, and persistence.
package commands

import (
	"context"

	"hyperlocal/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command handlers.
// Each handler depends only on the repositories it touches.
type (
	// TxManager handles database transaction lifecycle.
	// Ensures atomic operations across multiple repository calls.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	UserRepoFactory interface {
		UserRepository() ports.UserRepository
	}

	StoreRepoFactory interface {
		StoreRepository() ports.StoreRepository
	}

	ProductRepoFactory interface {
		ProductRepository() ports.ProductRepository
	}

	CartRepoFactory interface {
		CartRepository() ports.CartRepository
	}

	OrderRepoFactory interface {
		OrderRepository() ports.OrderRepository
	}

	SettlementRepoFactory interface {
		SettlementRepository() ports.SettlementRepository
	}

	ContentRepoFactory interface {
		ContentRepository() ports.ContentRepository
	}

	OutboxRepoFactory interface {
		OutboxRepository() ports.OutboxRepository
	}

	// UserUoW manages transactions for account operations.
	UserUoW interface {
		TxManager
		UserRepoFactory
	}

	UserUoWFactory interface {
		Create() UserUoW
	}

	// CatalogUoW manages transactions for store and product changes.
	CatalogUoW interface {
		TxManager
		StoreRepoFactory
		ProductRepoFactory
	}

	CatalogUoWFactory interface {
		Create() CatalogUoW
	}

	// CartUoW manages cart mutations, which read products to validate the chosen variant.
	CartUoW interface {
		TxManager
		CartRepoFactory
		ProductRepoFactory
	}

	CartUoWFactory interface {
		Create() CartUoW
	}

	// CheckoutUoW spans the cart, its store, the catalog and the new order so that placing
	// an order and emptying the cart commit together.
	//
	// Example:
	//   uow := factory.Create()
	//   err := uow.Begin(ctx)
	//   defer uow.Rollback(ctx)
	//
	//   c, err := uow.CartRepository().Get(ctx, customerID)
	//   // ... place the order
	//   err = uow.OrderRepository().Add(ctx, o)
	//   err = uow.CartRepository().Save(ctx, c)
	//
	//   err = uow.Commit(ctx)
	CheckoutUoW interface {
		TxManager
		CartRepoFactory
		StoreRepoFactory
		ProductRepoFactory
		OrderRepoFactory
	}

	CheckoutUoWFactory interface {
		Create() CheckoutUoW
	}

	// OrderUoW manages transactions for order-only operations.
	// Used by every status transition after checkout.
	OrderUoW interface {
		TxManager
		OrderRepoFactory
	}

	OrderUoWFactory interface {
		Create() OrderUoW
	}

	// SettlementUoW reads the requesting user and writes settlement rows.
	SettlementUoW interface {
		TxManager
		UserRepoFactory
		SettlementRepoFactory
	}

	SettlementUoWFactory interface {
		Create() SettlementUoW
	}

	ContentUoW interface {
		TxManager
		ContentRepoFactory
	}

	ContentUoWFactory interface {
		Create() ContentUoW
	}

	// OutboxUoW manages the relay's read-publish-acknowledge cycle.
	OutboxUoW interface {
		TxManager
		OutboxRepoFactory
	}

	OutboxUoWFactory interface {
		Create() OutboxUoW
	}
)
