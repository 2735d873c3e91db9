package ports

import (
	"context"

	"hyperlocal/internal/core/domain/model/catalog"
	"hyperlocal/internal/core/domain/model/kernel"
)

// StoreRepository defines the persistence contract for stores.
type StoreRepository interface {
	Add(ctx context.Context, aggregate *catalog.Store) error
	// Update writes the merchant editable fields. The order count is never written from the
	// aggregate.
	Update(ctx context.Context, aggregate *catalog.Store) error
	Get(ctx context.Context, id kernel.UUID) (*catalog.Store, error)
	// IncrementOrders adds one to the store's order count in storage, so concurrent checkouts
	// never overwrite each other's increment.
	IncrementOrders(ctx context.Context, id kernel.UUID) error
}

// ProductRepository defines the persistence contract for products with their variants and
// sizes.
type ProductRepository interface {
	Add(ctx context.Context, aggregate *catalog.Product) error
	Get(ctx context.Context, id kernel.UUID) (*catalog.Product, error)
	// GetMany returns the products that exist among ids, in no particular order.
	GetMany(ctx context.Context, ids []kernel.UUID) ([]*catalog.Product, error)
}
