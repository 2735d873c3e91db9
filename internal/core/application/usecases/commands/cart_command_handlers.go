package commands

import (
	"context"
	"errors"
	"time"

	"hyperlocal/internal/core/domain/model/cart"
	"hyperlocal/internal/core/domain/model/kernel"
	"hyperlocal/internal/core/ports"
	"hyperlocal/internal/pkg/errs"
)

// loadCart returns the user's stored cart or a fresh empty one.
func loadCart(ctx context.Context, repo ports.CartRepository, userID kernel.UUID, now time.Time) (*cart.Cart, error) {
	c, err := repo.Get(ctx, userID)
	if errors.Is(err, errs.ErrObjectNotFound) {
		return cart.NewCart(userID, now)
	}
	return c, err
}

// AddCartItemCommandHandler checks the chosen variant and size against the catalog before
// adding the line, so a cart never holds a choice the product does not offer.
type AddCartItemCommandHandler struct {
	uowFactory CartUoWFactory
}

// NewAddCartItemCommandHandler creates a handler over carts and the product catalog.
func NewAddCartItemCommandHandler(uowFactory CartUoWFactory) AddCartItemCommandHandler {
	return AddCartItemCommandHandler{uowFactory: uowFactory}
}

// Handle adds the line to the user's cart, creating the cart on first use.
// The product's price for the chosen variant and size must resolve; otherwise the catalog error
// is returned and the cart is left as it was. Adding the same variant and size again raises the
// quantity of the existing line.
func (h AddCartItemCommandHandler) Handle(ctx context.Context, cmd AddCartItemCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	now := time.Now()
	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	product, err := uow.ProductRepository().Get(ctx, cmd.ProductID())
	if err != nil {
		return err
	}
	if _, err = product.PriceFor(cmd.VariantID(), cmd.SizeID()); err != nil {
		return err
	}

	cartRepo := uow.CartRepository()
	c, err := loadCart(ctx, cartRepo, cmd.UserID(), now)
	if err != nil {
		return err
	}

	if _, err = c.AddItem(product.ID(), product.StoreID(), cmd.VariantID(), cmd.SizeID(), cmd.Quantity(), now); err != nil {
		return err
	}

	if err = cartRepo.Save(ctx, c); err != nil {
		return err
	}

	return uow.Commit(ctx)
}

// UpdateCartItemCommandHandler changes the quantity of one cart line.
type UpdateCartItemCommandHandler struct {
	uowFactory CartUoWFactory
}

func NewUpdateCartItemCommandHandler(uowFactory CartUoWFactory) UpdateCartItemCommandHandler {
	return UpdateCartItemCommandHandler{uowFactory: uowFactory}
}

// Handle sets the line quantity. A quantity of zero removes the line.
func (h UpdateCartItemCommandHandler) Handle(ctx context.Context, cmd UpdateCartItemCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	return mutateCart(ctx, h.uowFactory, cmd.UserID(), func(c *cart.Cart, now time.Time) error {
		return c.UpdateQuantity(cmd.LineID(), cmd.Quantity(), now)
	})
}

// ClearCartCommandHandler empties a cart and keeps the saved distance.
type ClearCartCommandHandler struct {
	uowFactory CartUoWFactory
}

func NewClearCartCommandHandler(uowFactory CartUoWFactory) ClearCartCommandHandler {
	return ClearCartCommandHandler{uowFactory: uowFactory}
}

func (h ClearCartCommandHandler) Handle(ctx context.Context, cmd ClearCartCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	return mutateCart(ctx, h.uowFactory, cmd.UserID(), func(c *cart.Cart, now time.Time) error {
		c.Clear(now)
		return nil
	})
}

// SetCartDistanceCommandHandler stores the delivery distance the cart summary is priced at.
// Checkout uses the same distance unless the checkout request names another one.
type SetCartDistanceCommandHandler struct {
	uowFactory CartUoWFactory
}

// NewSetCartDistanceCommandHandler creates a handler for cart distance updates.
func NewSetCartDistanceCommandHandler(uowFactory CartUoWFactory) SetCartDistanceCommandHandler {
	return SetCartDistanceCommandHandler{uowFactory: uowFactory}
}

func (h SetCartDistanceCommandHandler) Handle(ctx context.Context, cmd SetCartDistanceCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	return mutateCart(ctx, h.uowFactory, cmd.UserID(), func(c *cart.Cart, now time.Time) error {
		return c.SetDistance(cmd.DistanceKm(), now)
	})
}

func mutateCart(
	ctx context.Context,
	factory CartUoWFactory,
	userID kernel.UUID,
	fn func(*cart.Cart, time.Time) error,
) error {
	now := time.Now()
	uow := factory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	cartRepo := uow.CartRepository()
	c, err := loadCart(ctx, cartRepo, userID, now)
	if err != nil {
		return err
	}

	if err = fn(c, now); err != nil {
		return err
	}

	if err = cartRepo.Save(ctx, c); err != nil {
		return err
	}

	return uow.Commit(ctx)
}

// PurgeStaleCartsCommandHandler deletes abandoned carts and reports how many were removed.
type PurgeStaleCartsCommandHandler struct {
	uowFactory CartUoWFactory
}

func NewPurgeStaleCartsCommandHandler(uowFactory CartUoWFactory) PurgeStaleCartsCommandHandler {
	return PurgeStaleCartsCommandHandler{uowFactory: uowFactory}
}

// Handle deletes carts last touched before cmd.Before() and returns the count.
//
// Example:
//
//	cmd, _ := NewPurgeStaleCartsCommand(time.Now(), 30*24*time.Hour)
//	removed, err := handler.Handle(ctx, cmd)
func (h PurgeStaleCartsCommandHandler) Handle(ctx context.Context, cmd PurgeStaleCartsCommand) (int64, error) {
	if err := cmd.Validate(); err != nil {
		return 0, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return 0, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	removed, err := uow.CartRepository().DeleteStale(ctx, cmd.Before())
	if err != nil {
		return 0, err
	}

	if err = uow.Commit(ctx); err != nil {
		return 0, err
	}
	return removed, nil
}
