// Package postgres provides the GORM-based Unit of Work and database bootstrap.
//
// A unit of work keeps one transaction open across every repository it hands out, so a
// checkout that inserts an order, bumps the store counter and empties the cart commits or
// fails as a whole:
//
//	uow := factory.Create()
//	if err := uow.Begin(ctx); err != nil {
//	    return err
//	}
//	defer func() { _ = uow.Rollback(ctx) }()
//
//	if err := uow.OrderRepository().Add(ctx, o); err != nil {
//	    return err
//	}
//	if err := uow.CartRepository().Save(ctx, c); err != nil {
//	    return err
//	}
//
//	return uow.Commit(ctx)
//
// Each UnitOfWork instance must be used by a single goroutine. Concurrent operations create
// their own instance through the factory.
package postgres

import (
	"context"

	"hyperlocal/internal/adapters/out/postgres/cartrepo"
	"hyperlocal/internal/adapters/out/postgres/catalogrepo"
	"hyperlocal/internal/adapters/out/postgres/contentrepo"
	"hyperlocal/internal/adapters/out/postgres/orderrepo"
	"hyperlocal/internal/adapters/out/postgres/outboxrepo"
	"hyperlocal/internal/adapters/out/postgres/settlementrepo"
	"hyperlocal/internal/adapters/out/postgres/userrepo"
	"hyperlocal/internal/core/domain/model/kernel"
	"hyperlocal/internal/core/ports"

	"gorm.io/gorm"
)

// trackedAggregate is an aggregate written during the unit of work.
type trackedAggregate struct {
	ID        kernel.UUID
	Aggregate any
}

// GormUnitOfWorkFactory hands every business operation a fresh unit of work.
type GormUnitOfWorkFactory struct {
	db *gorm.DB
}

func NewGormUnitOfWorkFactory(db *gorm.DB) *GormUnitOfWorkFactory {
	return &GormUnitOfWorkFactory{db: db}
}

func (f *GormUnitOfWorkFactory) Create() ports.UnitOfWork {
	return &GormUnitOfWork{
		db:                f.db,
		trackedAggregates: make([]trackedAggregate, 0),
	}
}

// GormUnitOfWork coordinates one database transaction and records the aggregates written
// through its repositories.
type GormUnitOfWork struct {
	db                *gorm.DB
	tx                *gorm.DB
	trackedAggregates []trackedAggregate
}

// Begin starts the transaction. Calling it again while a transaction is open is a no-op.
func (uow *GormUnitOfWork) Begin(ctx context.Context) error {
	if uow.tx != nil {
		return nil
	}

	uow.tx = uow.db.WithContext(ctx).Begin()
	if uow.tx.Error != nil {
		err := uow.tx.Error
		uow.tx = nil
		return err
	}

	return nil
}

// Commit finalizes the transaction. Without an open transaction it returns
// gorm.ErrInvalidTransaction.
func (uow *GormUnitOfWork) Commit(_ context.Context) error {
	if uow.tx == nil {
		return gorm.ErrInvalidTransaction
	}

	err := uow.tx.Commit().Error
	uow.tx = nil
	return err
}

// Rollback discards the transaction. Handlers defer it unconditionally, so after a successful
// Commit it returns gorm.ErrInvalidTransaction and changes nothing.
func (uow *GormUnitOfWork) Rollback(_ context.Context) error {
	if uow.tx == nil {
		return gorm.ErrInvalidTransaction
	}

	err := uow.tx.Rollback().Error
	uow.tx = nil
	return err
}

// conn is the open transaction, or the plain connection when none is active.
func (uow *GormUnitOfWork) conn() *gorm.DB {
	if uow.tx != nil {
		return uow.tx
	}
	return uow.db
}

func (uow *GormUnitOfWork) UserRepository() ports.UserRepository {
	return userrepo.NewGormUserRepository(uow.conn(), uow)
}

func (uow *GormUnitOfWork) StoreRepository() ports.StoreRepository {
	return catalogrepo.NewGormStoreRepository(uow.conn(), uow)
}

func (uow *GormUnitOfWork) ProductRepository() ports.ProductRepository {
	return catalogrepo.NewGormProductRepository(uow.conn(), uow)
}

func (uow *GormUnitOfWork) CartRepository() ports.CartRepository {
	return cartrepo.NewGormCartRepository(uow.conn(), uow)
}

// OrderRepository writes history and outbox rows through the same transaction as the order.
func (uow *GormUnitOfWork) OrderRepository() ports.OrderRepository {
	return orderrepo.NewGormOrderRepository(uow.conn(), uow)
}

func (uow *GormUnitOfWork) SettlementRepository() ports.SettlementRepository {
	return settlementrepo.NewGormSettlementRepository(uow.conn(), uow)
}

func (uow *GormUnitOfWork) ContentRepository() ports.ContentRepository {
	return contentrepo.NewGormContentRepository(uow.conn())
}

func (uow *GormUnitOfWork) OutboxRepository() ports.OutboxRepository {
	return outboxrepo.NewGormOutboxRepository(uow.conn())
}

// TrackAggregate is called by repositories after a successful write.
func (uow *GormUnitOfWork) TrackAggregate(id kernel.UUID, aggregate any) {
	uow.trackedAggregates = append(uow.trackedAggregates, trackedAggregate{
		ID:        id,
		Aggregate: aggregate,
	})
}

// TrackedCount reports how many aggregates were written through this unit of work.
func (uow *GormUnitOfWork) TrackedCount() int {
	return len(uow.trackedAggregates)
}
