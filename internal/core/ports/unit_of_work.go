// Package ports defines the contracts between the marketplace core and its adapters:
// repositories bound to a unit of work, the event publisher, auth primitives and the optional
// search index.
package ports

import (
	"context"
)

// UnitOfWorkFactory hands every command its own transaction.
type UnitOfWorkFactory interface {
	Create() UnitOfWork
}

// UnitOfWork scopes the repositories to one transaction. Commands call Begin, defer Rollback
// and finish with Commit; a Rollback after Commit reports an error and changes nothing.
type UnitOfWork interface {
	Begin(ctx context.Context) error
	Commit(ctx context.Context) error
	Rollback(ctx context.Context) error

	UserRepository() UserRepository
	StoreRepository() StoreRepository
	ProductRepository() ProductRepository
	CartRepository() CartRepository
	OrderRepository() OrderRepository
	SettlementRepository() SettlementRepository
	ContentRepository() ContentRepository
	OutboxRepository() OutboxRepository
}
