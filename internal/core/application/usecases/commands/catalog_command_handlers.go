package commands

import (
	"context"
	"time"

	"hyperlocal/internal/core/domain/model/catalog"
	"hyperlocal/internal/core/domain/model/kernel"
	"hyperlocal/internal/core/ports"
	"hyperlocal/internal/pkg/errs"
	"hyperlocal/internal/pkg/logging"
)

// CreateStoreCommandHandler registers a store for a merchant.
type CreateStoreCommandHandler struct {
	uowFactory CatalogUoWFactory
}

func NewCreateStoreCommandHandler(uowFactory CatalogUoWFactory) CreateStoreCommandHandler {
	return CreateStoreCommandHandler{uowFactory: uowFactory}
}

// Handle builds the store from the command and adds it. New stores start open with no orders.
func (h CreateStoreCommandHandler) Handle(ctx context.Context, cmd CreateStoreCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	store, err := catalog.NewStore(cmd.StoreID(), cmd.OwnerID(), cmd.Name(), cmd.Address(), cmd.Location(),
		cmd.ImageURL(), cmd.WorkingHours(), time.Now())
	if err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.StoreRepository().Add(ctx, store); err != nil {
		return err
	}

	return uow.Commit(ctx)
}

// UpdateStoreCommandHandler applies a merchant's patch to a store they own; admins may patch
// any store. Only the name, open flag and working hours are written, so a patch never overwrites
// the order count kept by checkout.
type UpdateStoreCommandHandler struct {
	uowFactory CatalogUoWFactory
}

// NewUpdateStoreCommandHandler creates a handler for store patches.
func NewUpdateStoreCommandHandler(uowFactory CatalogUoWFactory) UpdateStoreCommandHandler {
	return UpdateStoreCommandHandler{uowFactory: uowFactory}
}

func (h UpdateStoreCommandHandler) Handle(ctx context.Context, cmd UpdateStoreCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	storeRepo := uow.StoreRepository()
	store, err := storeRepo.Get(ctx, cmd.StoreID())
	if err != nil {
		return err
	}

	if err = store.Update(cmd.ActorID(), cmd.Role(), cmd.Patch()); err != nil {
		return err
	}

	if err = storeRepo.Update(ctx, store); err != nil {
		return err
	}

	return uow.Commit(ctx)
}

// CreateProductCommandHandler stores a product under a store the actor may sell from and,
// when a search index is configured, indexes it after commit. Indexing failures are logged
// and do not fail the command.
type CreateProductCommandHandler struct {
	uowFactory CatalogUoWFactory
	index      ports.ProductSearchIndex
}

// NewCreateProductCommandHandler accepts a nil index.
func NewCreateProductCommandHandler(uowFactory CatalogUoWFactory, index ports.ProductSearchIndex) CreateProductCommandHandler {
	return CreateProductCommandHandler{uowFactory: uowFactory, index: index}
}

// Handle stores the product and then indexes it. Returns errs.ErrForbidden when the actor
// neither owns the store nor is an admin.
func (h CreateProductCommandHandler) Handle(ctx context.Context, cmd CreateProductCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	store, err := uow.StoreRepository().Get(ctx, cmd.StoreID())
	if err != nil {
		return err
	}
	if cmd.Role() != kernel.RoleAdmin && !store.IsOwnedBy(cmd.ActorID()) {
		return errs.NewForbiddenError("add products to store " + store.ID().String())
	}

	product, err := catalog.NewProduct(cmd.ProductID(), store.ID(), store.MerchantID(), cmd.Name(),
		cmd.Description(), cmd.BaseType(), cmd.ImageURL(), cmd.Variants(), time.Now())
	if err != nil {
		return err
	}

	if err = uow.ProductRepository().Add(ctx, product); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	if h.index != nil {
		if err = h.index.Index(ctx, product); err != nil {
			logging.FromContext(ctx).Warn("product indexing failed",
				"product_id", product.ID().String(), "error", err)
		}
	}
	return nil
}
