package ports

import (
	"context"

	"hyperlocal/internal/core/domain/model/kernel"
	"hyperlocal/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
type OrderRepository interface {
	// Add persists a new order together with its pending status changes (history rows and
	// outbox events). A duplicate order number yields errs.ErrObjectAlreadyExists.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists status and agent changes with a compare-and-set on the version the order
	// was loaded at. When another writer got there first it returns errs.ErrVersionIsInvalid and
	// writes nothing.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order by id with its item snapshot.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// GetMany loads the given orders, newest first. Unknown ids are skipped.
	GetMany(ctx context.Context, ids []kernel.UUID) ([]*order.Order, error)

	// NumberExists reports whether an order number is taken.
	NumberExists(ctx context.Context, number order.Number) (bool, error)
}
