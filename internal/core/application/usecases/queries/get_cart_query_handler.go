package queries

import (
	"context"
	"errors"
	"time"

	"hyperlocal/internal/core/domain/model/cart"
	"hyperlocal/internal/core/domain/model/kernel"
	"hyperlocal/internal/core/ports"
	"hyperlocal/internal/pkg/errs"
)

// GetCartQueryHandler recomputes the summary on every read; nothing is cached. A user without a
// stored cart gets the empty summary.
type GetCartQueryHandler struct {
	uowFactory ports.UnitOfWorkFactory
	policy     cart.Policy
}

func NewGetCartQueryHandler(uowFactory ports.UnitOfWorkFactory, policy cart.Policy) GetCartQueryHandler {
	return GetCartQueryHandler{uowFactory: uowFactory, policy: policy}
}

func (h GetCartQueryHandler) Handle(ctx context.Context, query GetCartQuery) (cart.Summary, error) {
	if err := query.Validate(); err != nil {
		return cart.Summary{}, err
	}

	uow := h.uowFactory.Create()
	c, err := uow.CartRepository().Get(ctx, query.userID)
	if errors.Is(err, errs.ErrObjectNotFound) {
		c, err = cart.NewCart(query.userID, time.Now())
	}
	if err != nil {
		return cart.Summary{}, err
	}

	seen := map[kernel.UUID]bool{}
	var ids []kernel.UUID
	for _, l := range c.Lines() {
		if !seen[l.ProductID()] {
			seen[l.ProductID()] = true
			ids = append(ids, l.ProductID())
		}
	}

	lookup := cart.ProductLookup{}
	if len(ids) > 0 {
		products, err := uow.ProductRepository().GetMany(ctx, ids)
		if err != nil {
			return cart.Summary{}, err
		}
		for _, p := range products {
			lookup[p.ID()] = p
		}
	}

	return c.Price(h.policy, lookup), nil
}
