package commands

import (
	"context"
	"errors"
	"fmt"
	"time"

	"hyperlocal/internal/core/domain/model/cart"
	"hyperlocal/internal/core/domain/model/kernel"
	"hyperlocal/internal/core/domain/model/order"
	"hyperlocal/internal/core/domain/services"
	"hyperlocal/internal/core/ports"
	"hyperlocal/internal/pkg/errs"
)

const maxOrderNumberAttempts = 5

// ErrOrderNumberExhausted is returned when no free order number was found.
var ErrOrderNumberExhausted = errors.New("could not allocate a free order number")

// CheckoutCommandHandler places an order from the customer's cart.
// The cart is re-priced from current catalog prices at the distance saved on the cart (unless
// the command names one), the OTP is drawn once and bound to the order, the store's order count
// is incremented in storage and the cart is emptied, all in one transaction.
type CheckoutCommandHandler struct {
	uowFactory CheckoutUoWFactory
	placer     services.OrderPlacer
}

// NewCheckoutCommandHandler creates a checkout handler. The placer holds the pricing policy,
// so the same policy must back the cart summary endpoint.
func NewCheckoutCommandHandler(uowFactory CheckoutUoWFactory, placer services.OrderPlacer) CheckoutCommandHandler {
	return CheckoutCommandHandler{
		uowFactory: uowFactory,
		placer:     placer,
	}
}

// Handle places the order and returns nothing; the order ID is fixed by the command.
//
// Example:
//
//	cmd, _ := NewCheckoutCommand(orderID, customerID, address, lat, lng, nil)
//	err := handler.Handle(ctx, cmd)
//	switch {
//	case errors.Is(err, services.ErrCartIsEmpty):
//	    // nothing to order
//	case errors.Is(err, services.ErrStoreIsClosed):
//	    // store stopped taking orders
//	case errors.Is(err, ErrOrderNumberExhausted):
//	    // retry later
//	}
func (h CheckoutCommandHandler) Handle(ctx context.Context, cmd CheckoutCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	otp, err := order.NewOTP()
	if err != nil {
		return err
	}

	now := time.Now()
	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	cartRepo := uow.CartRepository()
	c, err := cartRepo.Get(ctx, cmd.CustomerID())
	if errors.Is(err, errs.ErrObjectNotFound) {
		return services.ErrCartIsEmpty
	}
	if err != nil {
		return err
	}
	if c.IsEmpty() {
		return services.ErrCartIsEmpty
	}

	storeRepo := uow.StoreRepository()
	store, err := storeRepo.Get(ctx, *c.StoreID())
	if err != nil {
		return err
	}

	products, err := lookupProducts(ctx, uow.ProductRepository(), c)
	if err != nil {
		return err
	}

	orderRepo := uow.OrderRepository()
	number, err := allocateNumber(ctx, orderRepo)
	if err != nil {
		return err
	}

	o, err := h.placer.Place(services.PlaceRequest{
		OrderID:    cmd.OrderID(),
		Number:     number,
		OTP:        otp,
		CustomerID: cmd.CustomerID(),
		Cart:       c,
		Store:      store,
		Products:   products,
		Address:    cmd.Address(),
		Location:   cmd.Location(),
		DistanceKm: cmd.DistanceKm(),
		Now:        now,
	})
	if err != nil {
		return err
	}

	if err = orderRepo.Add(ctx, o); err != nil {
		return err
	}

	if err = storeRepo.IncrementOrders(ctx, store.ID()); err != nil {
		return err
	}

	c.Clear(now)
	if err = cartRepo.Save(ctx, c); err != nil {
		return err
	}

	return uow.Commit(ctx)
}

func lookupProducts(ctx context.Context, repo ports.ProductRepository, c *cart.Cart) (cart.ProductLookup, error) {
	ids := make([]kernel.UUID, 0, len(c.Lines()))
	for _, l := range c.Lines() {
		ids = append(ids, l.ProductID())
	}

	found, err := repo.GetMany(ctx, ids)
	if err != nil {
		return nil, err
	}

	lookup := make(cart.ProductLookup, len(found))
	for _, p := range found {
		lookup[p.ID()] = p
	}
	return lookup, nil
}

func allocateNumber(ctx context.Context, repo ports.OrderRepository) (order.Number, error) {
	for range maxOrderNumberAttempts {
		n, err := order.NewNumber()
		if err != nil {
			return "", err
		}
		taken, err := repo.NumberExists(ctx, n)
		if err != nil {
			return "", err
		}
		if !taken {
			return n, nil
		}
	}
	return "", fmt.Errorf("%w after %d attempts", ErrOrderNumberExhausted, maxOrderNumberAttempts)
}
