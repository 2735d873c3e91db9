package ports

import (
	"context"
	"time"

	"hyperlocal/internal/core/domain/model/cart"
	"hyperlocal/internal/core/domain/model/kernel"
)

// CartRepository stores one cart per user.
type CartRepository interface {
	// Get returns the user's cart or errs.ErrObjectNotFound when none was saved yet.
	Get(ctx context.Context, userID kernel.UUID) (*cart.Cart, error)
	// Save replaces the stored cart with the aggregate's current lines.
	Save(ctx context.Context, aggregate *cart.Cart) error
	// DeleteStale removes carts not touched since before and reports how many were removed.
	DeleteStale(ctx context.Context, before time.Time) (int64, error)
}
